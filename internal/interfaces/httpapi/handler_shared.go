package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

var requestJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func (h *Handler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := requestJSON.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// intQuery reads an optional non-negative integer query parameter. Absent means 0.
func intQuery(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func int64Query(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func boolQuery(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func int64Path(r *http.Request, name string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(r.PathValue(name)), 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

// positionQuery accepts GK, DEF, MID, FWD in any case or the numeric codes 1..4.
func positionQuery(r *http.Request) (player.Position, error) {
	raw := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("position")))
	if raw == "" {
		return player.PositionUnknown, nil
	}
	if code, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if position := player.ParsePosition(code); position != player.PositionUnknown {
			return position, nil
		}
	}
	for _, position := range []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender,
		player.PositionMidfielder,
		player.PositionForward,
	} {
		if raw == position.String() {
			return position, nil
		}
	}
	return player.PositionUnknown, fmt.Errorf("%w: unknown position %q", usecase.ErrInvalidInput, raw)
}
