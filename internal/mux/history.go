package mux

import (
	"net/http"
	"teenpatti-server/pkg/history"

	"github.com/gorilla/mux"
)

func (m *Mux) getHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		evaluations, err := history.GetEvaluations(r.Context(), offset, limit)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluations)
	}
}

func (m *Mux) getHistoryID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evaluation, err := history.GetEvaluationByID(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, evaluation)
	}
}
