package kickbase

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 8 << 20

// Request is one outbound call. The executor never interprets it.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Outcome is the raw upstream answer: status code and body text.
type Outcome struct {
	StatusCode int
	Body       string
}

// Executor performs a single HTTP exchange. Any failure below the HTTP layer
// (DNS, connect, TLS, reset, timeout, unreadable body) surfaces as a *TransportError.
type Executor interface {
	Execute(ctx context.Context, req Request) (Outcome, error)
}

// TransportError marks a failure that produced no HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "kickbase transport: " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NetHTTPExecutor runs requests through net/http with otel client spans.
type NetHTTPExecutor struct {
	client *http.Client
}

func NewNetHTTPExecutor(client *http.Client, timeout time.Duration) *NetHTTPExecutor {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	if client.Timeout <= 0 {
		client.Timeout = defaultTimeout
	}
	if client.Transport == nil {
		client.Transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	return &NetHTTPExecutor{client: client}
}

func (e *NetHTTPExecutor) Execute(ctx context.Context, req Request) (Outcome, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return Outcome{}, &TransportError{Op: "build request", Err: err}
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return Outcome{}, &TransportError{Op: "send request", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return Outcome{}, &TransportError{Op: "read response body", Err: crerr.WithStack(err)}
	}
	if len(raw) > maxResponseBytes {
		return Outcome{}, &TransportError{
			Op:  "read response body",
			Err: crerr.Newf("response body exceeds %d bytes", maxResponseBytes),
		}
	}

	return Outcome{StatusCode: resp.StatusCode, Body: string(raw)}, nil
}
