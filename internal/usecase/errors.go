package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrAuthenticationMissing  = errors.New("authentication missing")
	ErrAuthenticationRejected = errors.New("authentication rejected")

	ErrStaleClientRejected   = errors.New("upstream rejected client version")
	ErrUpstreamUnavailable   = errors.New("upstream unavailable")
	ErrUpstreamShapeMismatch = errors.New("upstream response shape mismatch")
	ErrUpstreamRejected      = errors.New("upstream rejected request")
)
