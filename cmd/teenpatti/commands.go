package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"teenpatti-server/internal/rng"
	"teenpatti-server/pkg/deck"
	"teenpatti-server/pkg/teenpatti"
	"unicode"

	"golang.org/x/term"
)

type RankCmd struct {
	Cards []string `arg:"" required:"" help:"Three cards, e.g. 'As Kd 10c'"`
}

func (c *RankCmd) Run() error {
	line, err := rankLine(splitCards(c.Cards))
	if err != nil {
		return err
	}

	fmt.Println(line)
	return nil
}

type DealCmd struct {
	Count int `short:"n" default:"1" help:"Number of hands to deal"`
}

func (c *DealCmd) Run() error {
	if c.Count < 1 {
		return errors.New("count must be at least one")
	}

	for i := 0; i < c.Count; i++ {
		hand := teenpatti.Deal(rng.Crypto{})
		stats, err := teenpatti.Instance().Stats(hand)
		if err != nil {
			return err
		}

		fmt.Println(statsLine(stats))
	}

	return nil
}

type DeckCmd struct{}

func (c *DeckCmd) Run() error {
	for _, line := range deckLines() {
		fmt.Println(line)
	}

	return nil
}

type DemoCmd struct{}

var demoHands = [][]string{
	{"A♠", "K♠", "Q♠"},
	{"A♠", "A♥", "A♦"},
	{"2♣", "3♣", "4♣"},
	{"10♣", "10♦", "3♠"},
	{"K♠", "Q♥", "9♦"},
}

func (c *DemoCmd) Run() error {
	for _, cards := range demoHands {
		line, err := rankLine(cards)
		if err != nil {
			return err
		}

		fmt.Println(line)
	}

	return nil
}

type InteractiveCmd struct{}

func (c *InteractiveCmd) Run() error {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		fmt.Println("Enter three cards per line, e.g. 'As Kd 10c'. Ctrl-D to quit.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		out, err := rankLine(splitCards([]string{line}))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Println(out)
	}

	if interactive {
		fmt.Println("")
	}

	return scanner.Err()
}

// splitCards breaks arguments on commas and whitespace so hands may be
// passed as separate arguments, one quoted string, or a comma list
func splitCards(args []string) []string {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}

	return tokens
}

func rankLine(tokens []string) (string, error) {
	hand, err := teenpatti.ParseHand(tokens)
	if err != nil {
		return "", err
	}

	stats, err := teenpatti.Instance().Stats(hand)
	if err != nil {
		return "", err
	}

	return statsLine(stats), nil
}

func statsLine(stats *teenpatti.HandStats) string {
	return fmt.Sprintf("Input hand [%s] -> %s, Rank %d of %d (Top %.3f%% have better hands)",
		strings.Join(stats.Hand, " "), stats.Category, stats.Rank, stats.TotalHands, stats.PercentBetter)
}

func deckLines() []string {
	bySuit := make(map[deck.Suit][]string)
	for _, card := range deck.New().Cards {
		bySuit[card.Suit] = append(bySuit[card.Suit], card.String())
	}

	lines := make([]string, len(deck.Suits))
	for i, suit := range deck.Suits {
		lines[i] = fmt.Sprintf("%s: %s", suit, strings.Join(bySuit[suit], " "))
	}

	return lines
}
