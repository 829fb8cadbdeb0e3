package mux

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"teenpatti-server/pkg/teenpatti"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var stats teenpatti.HandStats
	assertPost(t, ts, "/api/rank", postRankPayload{Hand: []string{"As", "Ks", "Qs"}}, &stats, 200)
	assert.Equal(t, []string{"A♠", "K♠", "Q♠"}, stats.Hand)
	assert.Equal(t, "Pure Sequence", stats.Category)
	assert.Equal(t, 53, stats.Rank)
	assert.Equal(t, teenpatti.TotalHands, stats.TotalHands)
	assert.InDelta(t, 0.235294, stats.PercentBetter, 0.000001)

	assertPost(t, ts, "/api/rank", postRankPayload{Hand: []string{"A♠", "A♥", "A♦"}}, &stats, 200)
	assert.Equal(t, "Trail", stats.Category)
	assert.Equal(t, 1, stats.Rank)
	assert.Equal(t, 0.0, stats.PercentBetter)
}

func TestRankHandler_badRequest(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/api/rank", postRankPayload{Hand: []string{"As", "Ks"}}, &errObj, 400)
	assert.Equal(t, "a hand must have exactly 3 cards, got 2", errObj.Message)

	assertPost(t, ts, "/api/rank", postRankPayload{Hand: []string{"As", "Ks", "bogus"}}, &errObj, 400)
	assert.Equal(t, "could not parse card: bogus", errObj.Message)

	assertPost(t, ts, "/api/rank", postRankPayload{Hand: []string{"As", "Ks", "A♠"}}, &errObj, 400)
	assert.Equal(t, "duplicate card in hand: A♠", errObj.Message)

	assertPost(t, ts, "/api/rank", "{not json", &errObj, 400)
	assert.Equal(t, 400, errObj.StatusCode)
}

func TestRankHandler_contentType(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/rank", strings.NewReader("{}"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	var errObj errorResponse
	assertDo(t, req, &errObj, 415)
	assert.Equal(t, "Unsupported Media Type", errObj.Message)
}
