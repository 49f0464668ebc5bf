package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
)

func TestForwardBearer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		wantToken  string
		wantStatus int
	}{
		{name: "no header", header: "", wantToken: "", wantStatus: http.StatusOK},
		{name: "bearer", header: "Bearer abc.def", wantToken: "abc.def", wantStatus: http.StatusOK},
		{name: "case insensitive scheme", header: "bearer abc", wantToken: "abc", wantStatus: http.StatusOK},
		{name: "basic scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			handler := ForwardBearer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = bearerTokenFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantToken, seen)
		})
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	}))

	t.Run("keeps inbound id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "req-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
		assert.Equal(t, "req-123", seen)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "has space")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		got := rec.Header().Get(requestIDHeader)
		assert.Len(t, got, 36)
		assert.Equal(t, got, seen)
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	handler := RateLimit(0.5, 1, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/leagues", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, call("10.0.0.1:5000").Code)

	limited := call("10.0.0.1:5001")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "2", limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	handler := RateLimit(0, 0, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for range 20 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/leagues", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNormalizeIP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "203.0.113.7", normalizeIP("203.0.113.7, 10.0.0.1"))
	assert.Equal(t, "10.0.0.1", normalizeIP("10.0.0.1:4321"))
	assert.Equal(t, "", normalizeIP("not-an-ip"))
}
