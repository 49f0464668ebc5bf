package kickbase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

// FetchError is the terminal failure of a request. It unwraps to one of the
// usecase sentinels so callers can branch with errors.Is. A canceled request
// carries no sentinel, only the context error.
type FetchError struct {
	Kind     ResponseKind
	Status   int
	Message  string
	Attempts int
	Cause    error
}

func (e *FetchError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("kickbase %s after %d attempts (status %d): %s", e.Kind, e.Attempts, e.Status, e.Message)
	}
	return fmt.Sprintf("kickbase %s (status %d): %s", e.Kind, e.Status, e.Message)
}

func (e *FetchError) Unwrap() []error {
	var errs []error
	if sentinel := e.sentinel(); sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func (e *FetchError) sentinel() error {
	switch e.Kind {
	case KindUpstreamStaleClient:
		return usecase.ErrStaleClientRejected
	case KindCanceled:
		return nil
	case KindUpstreamError:
		if isAuthStatus(e.Status) {
			return usecase.ErrAuthenticationRejected
		}
		if e.Status == http.StatusNotFound {
			return usecase.ErrNotFound
		}
		return usecase.ErrUpstreamRejected
	default:
		return usecase.ErrUpstreamUnavailable
	}
}

func isAuthStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

func isCanceled(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == KindCanceled
}

func shapeMismatch(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", usecase.ErrUpstreamShapeMismatch, path, fmt.Sprintf(format, args...))
}
