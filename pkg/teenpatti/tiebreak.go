package teenpatti

import "teenpatti-server/pkg/deck"

// TieKey breaks ties between hands in the same category
// Keys compare lexicographically and unused positions are zero
type TieKey [HandSize]int

// TieBreakKey returns the tie-break key for a hand already classified as category
func TieBreakKey(hand Hand, category Category) TieKey {
	values := sortedValues(hand)

	switch category {
	case Trail:
		return TieKey{values[0], 0, 0}
	case PureSequence, Sequence:
		if values == [HandSize]int{2, 3, deck.Ace} {
			// the wheel plays the ace low, so the three leads
			return TieKey{3, 2, 1}
		}

		return TieKey{values[2], values[1], values[0]}
	case Pair:
		// with exactly two distinct ranks, the middle of the sorted
		// values is always the paired rank
		pairVal := values[1]
		kicker := values[0]
		if kicker == pairVal {
			kicker = values[2]
		}

		return TieKey{pairVal, kicker, 0}
	default:
		return TieKey{values[2], values[1], values[0]}
	}
}
