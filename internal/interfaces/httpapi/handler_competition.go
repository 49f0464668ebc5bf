package httpapi

import "net/http"

func (h *Handler) GetCompetitionTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionTable")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	rows, err := h.competitionService.Table(ctx, bearerTokenFromContext(ctx), competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get competition table failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetTeamProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamProfile")
	defer span.End()

	competitionID, teamID := r.PathValue("competitionID"), r.PathValue("teamID")
	profile, err := h.competitionService.TeamProfile(ctx, bearerTokenFromContext(ctx), competitionID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team profile failed", "competition_id", competitionID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profile)
}

func (h *Handler) GetMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchday")
	defer span.End()

	day, err := intQuery(r, "day")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	competitionID := r.PathValue("competitionID")
	md, err := h.competitionService.Matchday(ctx, bearerTokenFromContext(ctx), competitionID, day)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchday failed", "competition_id", competitionID, "day", day, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, md)
}

// GetTeamIdentity answers from the static club table, no token needed.
func (h *Handler) GetTeamIdentity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamIdentity")
	defer span.End()

	identity, err := h.competitionService.TeamIdentity(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, identity)
}
