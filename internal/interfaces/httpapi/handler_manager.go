package httpapi

import "net/http"

func (h *Handler) GetManagerSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerSquad")
	defer span.End()

	leagueID, userID := r.PathValue("leagueID"), r.PathValue("userID")
	squad, err := h.managerService.Squad(ctx, bearerTokenFromContext(ctx), leagueID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager squad failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squad)
}

func (h *Handler) GetManagerLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerLineup")
	defer span.End()

	day, err := intQuery(r, "day")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID, userID := r.PathValue("leagueID"), r.PathValue("userID")
	lineup, err := h.managerService.Lineup(ctx, bearerTokenFromContext(ctx), leagueID, userID, day)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager lineup failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineup)
}

func (h *Handler) GetManagerPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerPerformance")
	defer span.End()

	leagueID, userID := r.PathValue("leagueID"), r.PathValue("userID")
	perf, err := h.managerService.Performance(ctx, bearerTokenFromContext(ctx), leagueID, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager performance failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, perf)
}

func (h *Handler) GetManagerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerDashboard")
	defer span.End()

	day, err := intQuery(r, "day")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID, userID := r.PathValue("leagueID"), r.PathValue("userID")
	dashboard, err := h.managerService.Dashboard(ctx, bearerTokenFromContext(ctx), leagueID, userID, day)
	if err != nil {
		h.logger.ErrorContext(ctx, "get manager dashboard failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboard)
}
