package evaluator

import "testing"

func BenchmarkEvaluateSevenCards(b *testing.B) {
	cards := MustParseCards("AcKc9c2h3hQc7c")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(cards); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateFiveCards(b *testing.B) {
	cards := MustParseCards("AsKsQsJsTs")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Evaluate(cards); err != nil {
			b.Fatal(err)
		}
	}
}
