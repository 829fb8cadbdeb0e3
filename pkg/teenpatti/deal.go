package teenpatti

import (
	"teenpatti-server/internal/rng"
	"teenpatti-server/pkg/deck"
)

// Deal shuffles a fresh deck with the generator and deals a single hand
func Deal(g rng.Generator) Hand {
	d := deck.New()
	d.ShuffleWith(g)

	var hand Hand
	for i := range hand {
		card, err := d.Draw()
		if err != nil {
			// a full deck cannot run out after three draws
			panic(err)
		}

		hand[i] = card
	}

	return hand
}
