package httpapi

import "net/http"

func (h *Handler) ListPlayerSeasonPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSeasonPoints")
	defer span.End()

	playerID := r.PathValue("playerID")
	items, err := h.statsService.PlayerSeasonPoints(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player season points failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayerMatchdayPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerMatchdayPoints")
	defer span.End()

	seasonID, err := int64Path(r, "seasonID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	items, err := h.statsService.PlayerMatchdayPoints(ctx, playerID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player matchday points failed", "player_id", playerID, "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayerMarketValues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerMarketValues")
	defer span.End()

	days, err := intQuery(r, "days")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	items, err := h.statsService.PlayerMarketValues(ctx, playerID, days)
	if err != nil {
		h.logger.WarnContext(ctx, "list player market values failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClubFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubFixtures")
	defer span.End()

	seasonID, err := int64Query(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	clubID := r.PathValue("clubID")
	items, err := h.statsService.ClubFixtures(ctx, clubID, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list club fixtures failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
