package mux

import (
	"net/http"
	"teenpatti-server/pkg/deck"
)

type deckSuit struct {
	Suit  deck.Suit `json:"suit"`
	Cards []string  `json:"cards"`
}

type deckResponse struct {
	Suits []deckSuit `json:"suits"`
}

// deckPayload groups the 52-card deck by suit for display
func deckPayload() deckResponse {
	bySuit := make(map[deck.Suit][]string)
	for _, card := range deck.New().Cards {
		bySuit[card.Suit] = append(bySuit[card.Suit], card.String())
	}

	payload := deckResponse{Suits: make([]deckSuit, len(deck.Suits))}
	for i, suit := range deck.Suits {
		payload.Suits[i] = deckSuit{Suit: suit, Cards: bySuit[suit]}
	}

	return payload
}

func (m *Mux) getDeck() http.HandlerFunc {
	payload := deckPayload()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
