package teenpatti

import "teenpatti-server/pkg/deck"

// TotalHands is the number of distinct three-card hands in a 52-card deck,
// i.e., 52 choose 3
const TotalHands = 22100

// AllHands returns every three-card combination from an unshuffled deck.
// Combinations are emitted in deck order, so the result is deterministic.
func AllHands() []Hand {
	cards := deck.New().Cards

	hands := make([]Hand, 0, TotalHands)
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			for k := j + 1; k < len(cards); k++ {
				hands = append(hands, Hand{cards[i], cards[j], cards[k]})
			}
		}
	}

	return hands
}
