// Package kickbase talks to the Kickbase v4 API and turns its terse payloads
// into the dashboard domain model.
package kickbase

import "time"

const (
	defaultBaseURL      = "https://api.kickbase.com"
	defaultImageBaseURL = "https://kickbase.b-cdn.net/"
	defaultTimeout      = 15 * time.Second
	defaultBackoffBase  = 300 * time.Millisecond

	minAttempts     = 1
	maxAttemptsCap  = 3
	defaultAttempts = 3

	// staleClientCode and staleClientMessage identify the upstream answer
	// telling us the client build is too old to be served.
	staleClientCode    = 11
	staleClientMessage = "ClientTooOld"
)

// Transport names accepted by NewExecutor.
const (
	TransportNetHTTP  = "nethttp"
	TransportFastHTTP = "fasthttp"
)

// NewExecutor picks the transport implementation by name, defaulting to net/http.
func NewExecutor(name string, timeout time.Duration) Executor {
	if name == TransportFastHTTP {
		return NewFastHTTPExecutor(nil, timeout)
	}
	return NewNetHTTPExecutor(nil, timeout)
}
