package teenpatti

import (
	"teenpatti-server/pkg/deck"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mustHand builds a hand from a fixture string like "As,Ks,Qs"
func mustHand(s string) Hand {
	hand, err := NewHand(deck.CardsFromString(s))
	if err != nil {
		panic(err)
	}

	return hand
}

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	hand, err := NewHand(deck.CardsFromString("As,Ks,Qs"))
	a.NoError(err)
	a.Equal(deck.Ace, hand[0].Rank)
	a.Equal(deck.Queen, hand[2].Rank)

	_, err = NewHand(deck.CardsFromString("As,Ks"))
	var sizeErr HandSizeError
	a.ErrorAs(err, &sizeErr)
	a.Equal(HandSizeError(2), sizeErr)
	a.EqualError(err, "a hand must have exactly 3 cards, got 2")

	_, err = NewHand(deck.CardsFromString("As,Ks,Qs,Js"))
	a.ErrorAs(err, &sizeErr)
	a.Equal(HandSizeError(4), sizeErr)

	_, err = NewHand(nil)
	a.ErrorAs(err, &sizeErr)
	a.Equal(HandSizeError(0), sizeErr)

	_, err = NewHand(deck.CardsFromString("As,Ks,As"))
	var dupErr DuplicateCardError
	a.ErrorAs(err, &dupErr)
	a.EqualError(err, "duplicate card in hand: A♠")
}

func TestParseHand(t *testing.T) {
	a := assert.New(t)

	hand, err := ParseHand([]string{"A♠", "k♥", "10d"})
	a.NoError(err)
	a.Equal("A♠ K♥ 10♦", hand.String())

	_, err = ParseHand([]string{"A♠", "K♥"})
	var sizeErr HandSizeError
	a.ErrorAs(err, &sizeErr)

	_, err = ParseHand([]string{"A♠", "K♥", "bogus"})
	var malformed deck.MalformedCardError
	a.ErrorAs(err, &malformed)
	a.Equal(deck.MalformedCardError("bogus"), malformed)

	_, err = ParseHand([]string{"A♠", "As", "K♥"})
	var dupErr DuplicateCardError
	a.ErrorAs(err, &dupErr)
}

func TestHand_Strings(t *testing.T) {
	a := assert.New(t)

	hand := mustHand("As,10d,2c")
	a.Equal([]string{"A♠", "10♦", "2♣"}, hand.Strings())
	a.Equal("A♠ 10♦ 2♣", hand.String())
	a.Equal(3, len(hand.Cards()))
	a.Equal("As,10d,2c", deck.CardsToString(hand.Cards()))
}
