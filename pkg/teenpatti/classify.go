package teenpatti

import (
	"sort"
	"teenpatti-server/pkg/deck"
)

// Classify returns the category the hand belongs to
func Classify(hand Hand) Category {
	values := sortedValues(hand)

	uniqueRanks := 1
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			uniqueRanks++
		}
	}

	if uniqueRanks == 1 {
		return Trail
	}

	isSeq := isSequence(values)
	isFlush := hand[0].Suit == hand[1].Suit && hand[1].Suit == hand[2].Suit

	if isSeq && isFlush {
		return PureSequence
	}

	if isSeq {
		return Sequence
	}

	if isFlush {
		return Color
	}

	if uniqueRanks == 2 {
		return Pair
	}

	return HighCard
}

// sortedValues returns the card ranks in ascending order
func sortedValues(hand Hand) [HandSize]int {
	var values [HandSize]int
	for i, card := range hand {
		values[i] = card.Rank
	}

	sort.Ints(values[:])
	return values
}

// isSequence reports whether ascending rank values form a run
// The wheel (A-2-3) counts as a run with the ace played low
func isSequence(values [HandSize]int) bool {
	if values == [HandSize]int{2, 3, deck.Ace} {
		return true
	}

	return values[0]+1 == values[1] && values[1]+1 == values[2]
}
