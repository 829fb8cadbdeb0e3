package mux

import (
	"net/http"
	"teenpatti-server/internal/config"
	"teenpatti-server/internal/metrics"
	"teenpatti-server/pkg/history"
	"teenpatti-server/pkg/teenpatti"
)

type postRankPayload struct {
	Hand []string `json:"hand"`
}

func (m *Mux) postRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRankPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		hand, err := teenpatti.ParseHand(pp.Hand)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		stats, err := teenpatti.Instance().Stats(hand)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		metrics.RecordRankLookup("api")
		if config.Instance().HistoryEnabled() {
			history.Record(hand, stats, remoteAddr(r))
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// gorilla/mux v1.8 clears its method-mismatch error when a later route matches
// the request method, so the 405 for non-POST methods has to be its own route
func (m *Mux) rankMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", http.MethodPost)
		writeJSONError(w, http.StatusMethodNotAllowed, nil)
	}
}
