package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.List(ctx, bearerTokenFromContext(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagues)
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	overview, err := h.leagueService.Overview(ctx, bearerTokenFromContext(ctx), leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league overview failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) GetLeagueRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueRanking")
	defer span.End()

	day, err := intQuery(r, "day")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	rows, err := h.leagueService.Ranking(ctx, bearerTokenFromContext(ctx), leagueID, day)
	if err != nil {
		h.logger.WarnContext(ctx, "get league ranking failed", "league_id", leagueID, "day", day, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetLeagueMarket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueMarket")
	defer span.End()

	filter, err := marketFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	listings, err := h.leagueService.Market(ctx, bearerTokenFromContext(ctx), leagueID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "get league market failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, listings)
}

func marketFilterFromQuery(r *http.Request) (usecase.MarketFilter, error) {
	position, err := positionQuery(r)
	if err != nil {
		return usecase.MarketFilter{}, err
	}
	maxPrice, err := int64Query(r, "maxPrice")
	if err != nil {
		return usecase.MarketFilter{}, err
	}
	onlyFree, err := boolQuery(r, "onlyFree")
	if err != nil {
		return usecase.MarketFilter{}, err
	}

	return usecase.MarketFilter{
		Position:  position,
		MaxPrice:  maxPrice,
		OnlyFree:  onlyFree,
		SortByAsk: strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("sort")), "ask"),
	}, nil
}

func (h *Handler) ListLeagueSquads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueSquads")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	squads, err := h.managerService.LeagueSquads(ctx, bearerTokenFromContext(ctx), leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list league squads failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squads)
}
