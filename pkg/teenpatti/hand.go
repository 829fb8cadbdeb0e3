package teenpatti

import (
	"fmt"
	"strings"
	"teenpatti-server/pkg/deck"
)

// HandSize is the number of cards in a Teen Patti hand
const HandSize = 3

// Hand is a three-card Teen Patti hand
type Hand [HandSize]*deck.Card

// HandSizeError is an error when a hand does not have exactly three cards
type HandSizeError int

func (e HandSizeError) Error() string {
	return fmt.Sprintf("a hand must have exactly %d cards, got %d", HandSize, int(e))
}

// DuplicateCardError is an error when the same card appears more than once in a hand
type DuplicateCardError string

func (e DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card in hand: %s", string(e))
}

// NewHand builds a hand from exactly three distinct cards
func NewHand(cards []*deck.Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, HandSizeError(len(cards))
	}

	var hand Hand
	for i, card := range cards {
		for j := 0; j < i; j++ {
			if cards[j].Equal(card) {
				return Hand{}, DuplicateCardError(card.String())
			}
		}

		hand[i] = card
	}

	return hand, nil
}

// ParseHand builds a hand from card tokens like ["As", "K♥", "10d"]
func ParseHand(tokens []string) (Hand, error) {
	if len(tokens) != HandSize {
		return Hand{}, HandSizeError(len(tokens))
	}

	cards := make([]*deck.Card, len(tokens))
	for i, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			return Hand{}, err
		}

		cards[i] = card
	}

	return NewHand(cards)
}

// Cards returns the cards in the hand
func (h Hand) Cards() []*deck.Card {
	return h[:]
}

// Strings returns the display form of each card, i.e., ["A♠" "K♠" "Q♠"]
func (h Hand) Strings() []string {
	s := make([]string, len(h))
	for i, card := range h {
		s[i] = card.String()
	}

	return s
}

func (h Hand) String() string {
	return strings.Join(h.Strings(), " ")
}
