package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "fantasy-dashboard"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	writeStatusError(ctx, w, mapped.HTTPStatus, mapped.Status, mapped.Reason, err.Error())
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeStatusError(ctx, w, http.StatusInternalServerError, "INTERNAL", "internalError", "internal server error")
}

func writeStatusError(ctx context.Context, w http.ResponseWriter, httpStatus int, status, reason, msg string) {
	ctx, span := startSpan(ctx, "httpapi.writeStatusError")
	defer span.End()

	writeJSON(ctx, w, httpStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    httpStatus,
			Message: msg,
			Status:  status,
			Errors: []googleErrorItem{
				{
					Domain:  errorDomain,
					Reason:  reason,
					Message: msg,
				},
			},
		},
	})
}

func mapError(ctx context.Context, err error) mappedError {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "invalidInput",
			Status:     "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrAuthenticationMissing):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "authenticationMissing",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrAuthenticationRejected):
		return mappedError{
			HTTPStatus: http.StatusUnauthorized,
			Reason:     "authenticationRejected",
			Status:     "UNAUTHENTICATED",
		}
	case errors.Is(err, usecase.ErrStaleClientRejected):
		return mappedError{
			HTTPStatus: http.StatusBadRequest,
			Reason:     "staleClient",
			Status:     "FAILED_PRECONDITION",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			HTTPStatus: http.StatusNotFound,
			Reason:     "notFound",
			Status:     "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrUpstreamShapeMismatch):
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Reason:     "upstreamShapeMismatch",
			Status:     "UNKNOWN",
		}
	case errors.Is(err, usecase.ErrUpstreamRejected):
		return mappedError{
			HTTPStatus: http.StatusBadGateway,
			Reason:     "upstreamRejected",
			Status:     "UNKNOWN",
		}
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "upstreamUnavailable",
			Status:     "UNAVAILABLE",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			HTTPStatus: http.StatusServiceUnavailable,
			Reason:     "dependencyUnavailable",
			Status:     "UNAVAILABLE",
		}
	default:
		return mappedError{
			HTTPStatus: http.StatusInternalServerError,
			Reason:     "internalError",
			Status:     "INTERNAL",
		}
	}
}
