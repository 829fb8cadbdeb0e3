package metrics

import (
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHandler(t *testing.T) {
	a := assert.New(t)

	RecordHTTPRequest("/api/rank", http.MethodPost, http.StatusOK, time.Millisecond*5)
	RecordRankLookup("api")
	WebsocketConnected()
	WebsocketDisconnected()

	ts := httptest.NewServer(Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	a.NoError(err)
	defer resp.Body.Close()

	a.Equal(http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	a.NoError(err)

	exposition := string(body)
	a.Contains(exposition, `teenpatti_http_requests_total{method="POST",route="/api/rank",status="200"} 1`)
	a.Contains(exposition, `teenpatti_rank_lookups_total{source="api"} 1`)
	a.Contains(exposition, "teenpatti_ws_sessions 0")
	a.Contains(exposition, "teenpatti_rank_fallback_scans_total 0")
	a.Contains(exposition, "teenpatti_rank_table_build_seconds")
	a.Contains(exposition, "teenpatti_http_request_duration_seconds_bucket")

	// the private registry keeps the default Go collectors out
	a.NotContains(exposition, "go_goroutines")
}
