package mux

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"teenpatti-server/pkg/teenpatti"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsStats(t *testing.T, res *wsResponse) *teenpatti.HandStats {
	t.Helper()

	b, err := json.Marshal(res.Data)
	require.NoError(t, err)

	var stats teenpatti.HandStats
	require.NoError(t, json.Unmarshal(b, &stats))
	return &stats
}

func TestWSHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	send := func(payload *wsPayload) *wsResponse {
		t.Helper()
		require.NoError(t, conn.WriteJSON(payload))

		var res wsResponse
		require.NoError(t, conn.ReadJSON(&res))
		return &res
	}

	res := send(&wsPayload{Action: "rank", Hand: []string{"As", "Ks", "Qs"}, Context: "req-1"})
	assert.Equal(t, "stats", res.Key)
	assert.Equal(t, "Pure Sequence", res.Value)
	assert.Equal(t, "req-1", res.Context)

	stats := wsStats(t, res)
	assert.Equal(t, 53, stats.Rank)
	assert.Equal(t, teenpatti.TotalHands, stats.TotalHands)

	res = send(&wsPayload{Action: "rank", Hand: []string{"bogus", "Ks", "Qs"}, Context: "req-2"})
	assert.Equal(t, "error", res.Key)
	assert.Equal(t, "could not parse card: bogus", res.Value)
	assert.Equal(t, "req-2", res.Context)

	res = send(&wsPayload{Action: "deal"})
	assert.Equal(t, "stats", res.Key)

	stats = wsStats(t, res)
	assert.Len(t, stats.Hand, teenpatti.HandSize)
	assert.GreaterOrEqual(t, stats.Rank, 1)
	assert.LessOrEqual(t, stats.Rank, teenpatti.TotalHands)

	res = send(&wsPayload{Action: "deck"})
	assert.Equal(t, "deck", res.Key)

	res = send(&wsPayload{Action: "shuffle"})
	assert.Equal(t, "error", res.Key)
	assert.Equal(t, "unknown action: shuffle", res.Value)
}
