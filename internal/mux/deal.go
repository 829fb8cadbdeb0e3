package mux

import (
	"net/http"
	"teenpatti-server/internal/metrics"
	"teenpatti-server/internal/rng"
	"teenpatti-server/pkg/teenpatti"
)

// getDeal deals a random hand and returns its stats
func (m *Mux) getDeal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hand := teenpatti.Deal(rng.Crypto{})
		stats, err := teenpatti.Instance().Stats(hand)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		metrics.RecordRankLookup("api")
		writeJSON(w, http.StatusOK, stats)
	}
}
