package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerengine/internal/board"
	"github.com/lox/pokerengine/internal/card"
	"github.com/lox/pokerengine/internal/deck"
	"github.com/lox/pokerengine/internal/equity"
	"github.com/lox/pokerengine/internal/evaluator"
	"github.com/lox/pokerengine/internal/gametree"
	"github.com/lox/pokerengine/internal/handset"
	"github.com/lox/pokerengine/internal/rangenotation"
	"github.com/lox/pokerengine/internal/rangepkg"
)

type CLI struct {
	Hero         string   `help:"Hero's fixed hand, e.g. 'AhKh'"`
	HeroRange    string   `name:"hero-range" help:"Hero's range in range notation, e.g. 'TT+,AKs' (overrides --hero)"`
	Villain      []string `help:"A villain's fixed hand (repeatable)"`
	VillainRange []string `name:"villain-range" help:"A villain's range in range notation (repeatable)"`
	Board        string   `short:"b" help:"Community board cards, e.g. 'Td7s8h'"`
	Iterations   int      `short:"i" help:"Monte Carlo iterations" default:"10000"`
	Seed         int64    `help:"Random seed" default:"1"`
	Workers      int      `help:"Concurrent simulation workers" default:"4"`

	Tree         bool    `help:"Build and print a game-tree summary instead of running equity"`
	MaxDepth     int     `name:"max-depth" help:"Game tree expansion depth" default:"3"`
	BetFractions string  `name:"bet-fractions" help:"Comma-separated pot-fraction bet sizes" default:"0.25,0.5,1.0"`
	StartStack   int     `name:"start-stack" help:"Starting stack size per seat for --tree mode" default:"200"`
	Pot          int     `help:"Starting pot size for --tree mode" default:"0"`
	Seats        int     `help:"Number of seats for --tree mode" default:"2"`
	Verbose      bool    `short:"v" help:"Verbose diagnostic logging"`
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	tieStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	boardCards, err := parseBoard(cli.Board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing board: %v\n", err)
		ctx.Exit(1)
	}

	if cli.Tree {
		if err := runTreeMode(cli, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			ctx.Exit(1)
		}
		return
	}

	heroRange, err := heroRangeFromCLI(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing hero range: %v\n", err)
		ctx.Exit(1)
	}

	opponentRanges, err := villainRangesFromCLI(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing villain ranges: %v\n", err)
		ctx.Exit(1)
	}

	b, err := board.New(boardCards...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building board: %v\n", err)
		ctx.Exit(1)
	}

	logger.Debug("running equity simulation", "iterations", cli.Iterations, "workers", cli.Workers, "seed", cli.Seed)

	start := time.Now()
	result, err := equity.Run(context.Background(), equity.Config{
		HeroRange:      heroRange,
		Board:          b,
		OpponentRanges: opponentRanges,
		Iterations:     cli.Iterations,
		Seed:           cli.Seed,
		Workers:        cli.Workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		ctx.Exit(1)
	}
	duration := time.Since(start)

	displayEquityResult(result, boardCards, cli.Iterations, duration)
}

func parseBoard(s string) ([]card.Card, error) {
	if s == "" {
		return nil, nil
	}
	cards, err := evaluator.ParseCards(s)
	if err != nil {
		return nil, err
	}
	if len(cards) > board.MaxCards {
		return nil, fmt.Errorf("board cannot have more than %d cards", board.MaxCards)
	}
	return cards, nil
}

// heroRangeFromCLI builds the hero's range: --hero-range takes precedence
// over a fixed --hero hand, matched as a single-combo range of weight 1.
func heroRangeFromCLI(cli CLI) (*rangepkg.Range, error) {
	if cli.HeroRange != "" {
		return rangenotation.Parse(cli.HeroRange)
	}
	if cli.Hero == "" {
		return nil, fmt.Errorf("one of --hero or --hero-range is required")
	}
	cards, err := evaluator.ParseCards(cli.Hero)
	if err != nil {
		return nil, err
	}
	if len(cards) != 2 {
		return nil, fmt.Errorf("--hero must contain exactly 2 cards, got %d", len(cards))
	}
	r := rangepkg.New()
	r.AddCombo(cards[0], cards[1], 1.0)
	return r, nil
}

// villainRangesFromCLI builds one range per villain: every --villain
// fixed hand becomes a single-combo range, followed by every
// --villain-range notation, each in the order it was given.
func villainRangesFromCLI(cli CLI) ([]*rangepkg.Range, error) {
	var ranges []*rangepkg.Range

	for i, v := range cli.Villain {
		cards, err := evaluator.ParseCards(v)
		if err != nil {
			return nil, fmt.Errorf("villain %d: %w", i+1, err)
		}
		if len(cards) != 2 {
			return nil, fmt.Errorf("villain %d: must contain exactly 2 cards, got %d", i+1, len(cards))
		}
		r := rangepkg.New()
		r.AddCombo(cards[0], cards[1], 1.0)
		ranges = append(ranges, r)
	}

	for i, notation := range cli.VillainRange {
		r, err := rangenotation.Parse(notation)
		if err != nil {
			return nil, fmt.Errorf("villain range %d: %w", i+1, err)
		}
		ranges = append(ranges, r)
	}

	if len(ranges) == 0 {
		return nil, fmt.Errorf("at least one of --villain or --villain-range is required")
	}
	return ranges, nil
}

func displayEquityResult(result equity.Result, boardCards []card.Card, iterations int, duration time.Duration) {
	if len(boardCards) > 0 {
		fmt.Printf("%s\n", headerStyle.Render("board"))
		fmt.Printf("%s\n\n", formatCards(boardCards))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("equity"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		handStyle.Render(fmt.Sprintf("%.2f%%", result.Equity()*100)),
		winStyle.Render(fmt.Sprintf("%.2f%%", result.WinRate()*100)),
		tieStyle.Render(fmt.Sprintf("%.2f%%", result.TieRate()*100)),
		fmt.Sprintf("%.2f%%", result.LossRate()*100))
	w.Flush()

	fmt.Printf("\n%d iterations in %v\n", iterations, duration.Truncate(time.Millisecond))
}

func formatCards(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// runTreeMode builds a bounded game tree from a fresh decision point
// (every seat starting the hand with StartStack chips, the board holding
// any --board cards) and prints a summary of its shape instead of running
// equity.
func runTreeMode(cli CLI, logger *log.Logger) error {
	fractions, err := parseBetFractions(cli.BetFractions)
	if err != nil {
		return fmt.Errorf("parsing bet fractions: %w", err)
	}

	root, err := newDecisionState(cli)
	if err != nil {
		return fmt.Errorf("building root decision state: %w", err)
	}

	builder, err := gametree.NewGameTreeBuilder(gametree.GameTreeBuilderConfig{
		BetFractions: fractions,
		MaxDepth:     cli.MaxDepth,
	})
	if err != nil {
		return fmt.Errorf("configuring game tree builder: %w", err)
	}

	logger.Debug("building game tree", "seats", cli.Seats, "maxDepth", cli.MaxDepth, "betFractions", fractions)

	start := time.Now()
	tree, err := builder.BuildTree(root)
	if err != nil {
		return fmt.Errorf("building game tree: %w", err)
	}
	duration := time.Since(start)

	displayTreeSummary(tree, duration)
	return nil
}

func parseBetFractions(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	fractions := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bet fraction %q: %w", p, err)
		}
		fractions = append(fractions, f)
	}
	if len(fractions) == 0 {
		return nil, fmt.Errorf("no bet fractions given")
	}
	return fractions, nil
}

// newDecisionState assembles a fresh preflop DecisionState from scratch,
// dealing each seat a hand off a shuffled deck and seeding the pot with
// any --pot chips as dead money. Position labels follow a standard
// heads-up-and-beyond naming (Button, Small Blind, Big Blind, then UTG,
// UTG+1, ...).
func newDecisionState(cli CLI) (gametree.DecisionState, error) {
	if cli.Seats < 2 {
		return gametree.DecisionState{}, fmt.Errorf("--seats must be at least 2, got %d", cli.Seats)
	}

	boardCards, err := parseBoard(cli.Board)
	if err != nil {
		return gametree.DecisionState{}, err
	}
	b, err := board.New(boardCards...)
	if err != nil {
		return gametree.DecisionState{}, err
	}

	d := deck.New(rand.New(rand.NewSource(cli.Seed)))
	d.Shuffle()
	d.Remove(boardCards...)

	players := make([]gametree.PlayerState, cli.Seats)
	for i := 0; i < cli.Seats; i++ {
		hole, err := d.DealN(2)
		if err != nil {
			return gametree.DecisionState{}, fmt.Errorf("dealing seat %d: %w", i, err)
		}
		hand, err := handset.New(hole[0], hole[1])
		if err != nil {
			return gametree.DecisionState{}, fmt.Errorf("seat %d hand: %w", i, err)
		}
		stack, err := handset.NewStack(cli.StartStack)
		if err != nil {
			return gametree.DecisionState{}, fmt.Errorf("seat %d stack: %w", i, err)
		}
		players[i] = gametree.PlayerState{
			ID:         i,
			Stack:      stack,
			Hand:       hand,
			StillToAct: true,
			Position:   positionLabel(i, cli.Seats),
		}
	}

	pot := handset.NewPot()
	if cli.Pot > 0 {
		pot.AddContribution(-1, cli.Pot)
	}

	return gametree.DecisionState{
		Street:             gametree.Preflop,
		CurrentPlayerIndex: 0,
		LastAggressorIndex: gametree.NoAggressor,
		FirstToActIndex:    0,
		Players:            players,
		Pot:                pot,
		Board:              b,
		Deck:               d,
	}, nil
}

// positionLabel names a seat's position for a table of size seats. Heads
// up uses Button/Big Blind; larger tables follow Button, Small Blind, Big
// Blind, then UTG, UTG+1, ... around the table.
func positionLabel(seat, seats int) string {
	if seats == 2 {
		if seat == 0 {
			return "Button"
		}
		return "Big Blind"
	}
	switch seat {
	case 0:
		return "Button"
	case 1:
		return "Small Blind"
	case 2:
		return "Big Blind"
	default:
		n := seat - 2
		if n == 1 {
			return "UTG"
		}
		return fmt.Sprintf("UTG+%d", n-1)
	}
}

func displayTreeSummary(root *gametree.GameTreeNode, duration time.Duration) {
	var decisions, chances, terminals int
	countNodes(root, &decisions, &chances, &terminals)

	fmt.Printf("%s\n", headerStyle.Render("game tree"))
	fmt.Printf("root street: %s\n", root.State.Street)
	fmt.Printf("decision nodes: %d\n", decisions)
	fmt.Printf("chance nodes: %d\n", chances)
	fmt.Printf("terminal nodes: %d\n", terminals)

	if root.Kind == gametree.Decision && len(root.Children) > 0 {
		fmt.Printf("\n%s\n", categoryStyle.Render("root actions"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, edge := range root.Children {
			fmt.Fprintf(w, "%s\t-> %s\n", edge.Action, edge.Child.Kind)
		}
		w.Flush()
	}

	fmt.Printf("\nbuilt in %v\n", duration.Truncate(time.Millisecond))
}

func countNodes(n *gametree.GameTreeNode, decisions, chances, terminals *int) {
	switch n.Kind {
	case gametree.Decision:
		*decisions++
	case gametree.Chance:
		*chances++
	case gametree.Terminal:
		*terminals++
	}
	for _, edge := range n.Children {
		countNodes(edge.Child, decisions, chances, terminals)
	}
}
