package mux

import (
	"net/http"
	"teenpatti-server/internal/config"
	"teenpatti-server/pkg/teenpatti"
)

type healthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	TotalHands int    `json:"totalHands"`
	History    bool   `json:"history"`
}

func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:     "OK",
		Version:    m.version,
		TotalHands: teenpatti.TotalHands,
		History:    config.Instance().HistoryEnabled(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
