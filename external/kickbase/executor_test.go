package kickbase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executors() map[string]Executor {
	return map[string]Executor{
		TransportNetHTTP:  NewNetHTTPExecutor(nil, time.Second),
		TransportFastHTTP: NewFastHTTPExecutor(nil, time.Second),
	}
}

func TestExecutors_ReturnStatusAndBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "v", r.Header.Get("X-Test"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, `{"message": "short and stout"}`)
	}))
	t.Cleanup(server.Close)

	for name, executor := range executors() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			outcome, err := executor.Execute(t.Context(), Request{
				Method: http.MethodGet,
				URL:    server.URL + "/x",
				Header: http.Header{"X-Test": []string{"v"}},
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusTeapot, outcome.StatusCode)
			assert.Equal(t, `{"message": "short and stout"}`, outcome.Body)
		})
	}
}

func TestExecutors_ConnectionFailureIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	for name, executor := range executors() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := executor.Execute(t.Context(), Request{Method: http.MethodGet, URL: url})
			require.Error(t, err)

			var transportErr *TransportError
			assert.True(t, errors.As(err, &transportErr))
		})
	}
}

func TestExecutors_OversizedBodyIsTransportError(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("a", maxResponseBytes+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	for name, executor := range executors() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := executor.Execute(t.Context(), Request{Method: http.MethodGet, URL: server.URL})
			require.Error(t, err)

			var transportErr *TransportError
			assert.True(t, errors.As(err, &transportErr))
		})
	}
}

func TestNetHTTPExecutor_BodyAtLimitIsKept(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("a", maxResponseBytes)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	outcome, err := NewNetHTTPExecutor(nil, 5*time.Second).Execute(t.Context(), Request{Method: http.MethodGet, URL: server.URL})
	require.NoError(t, err)
	assert.Len(t, outcome.Body, maxResponseBytes)
}

func TestFastHTTPExecutor_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewFastHTTPExecutor(nil, time.Second).Execute(ctx, Request{Method: http.MethodGet, URL: "http://127.0.0.1:1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewExecutorSelectsTransport(t *testing.T) {
	t.Parallel()

	_, isFast := NewExecutor(TransportFastHTTP, time.Second).(*FastHTTPExecutor)
	assert.True(t, isFast)
	_, isNet := NewExecutor("", time.Second).(*NetHTTPExecutor)
	assert.True(t, isNet)
}
