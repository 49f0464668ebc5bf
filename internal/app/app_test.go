package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-dashboard/internal/config"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		ServiceName:         "fantasy-dashboard-api",
		HTTPAddr:            ":0",
		ReadTimeout:         time.Second,
		WriteTimeout:        time.Second,
		CORSAllowedOrigins:  []string{"*"},
		KickbaseBaseURL:     "http://127.0.0.1:1",
		KickbaseTransport:   "nethttp",
		KickbaseTimeout:     time.Second,
		KickbaseMaxAttempts: 1,
		KickbaseBackoffBase: time.Millisecond,
		SquadFanoutWorkers:  2,
	}
}

func TestNewHTTPServer_StatsDisabled(t *testing.T) {
	t.Parallel()

	srv, cleanup, err := NewHTTPServer(context.Background(), testConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"statsEnabled":false`)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stats/players/42/seasons", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, nil)
	require.Error(t, err)
}
