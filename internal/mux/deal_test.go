package mux

import (
	"net/http/httptest"
	"teenpatti-server/pkg/teenpatti"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDealHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var stats teenpatti.HandStats
	assertGet(t, ts, "/api/deal", &stats, 200)

	assert.Len(t, stats.Hand, teenpatti.HandSize)
	assert.GreaterOrEqual(t, stats.Rank, 1)
	assert.LessOrEqual(t, stats.Rank, teenpatti.TotalHands)
	assert.Equal(t, teenpatti.TotalHands, stats.TotalHands)

	// the dealt hand ranks to the same spot when submitted back
	var again teenpatti.HandStats
	assertPost(t, ts, "/api/rank", postRankPayload{Hand: stats.Hand}, &again, 200)
	assert.Equal(t, stats.Rank, again.Rank)
	assert.Equal(t, stats.Category, again.Category)
}
