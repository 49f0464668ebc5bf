package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

type Handler struct {
	sessionService     *usecase.SessionService
	leagueService      *usecase.LeagueService
	managerService     *usecase.ManagerService
	competitionService *usecase.CompetitionService
	statsService       *usecase.StatsService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	sessionService *usecase.SessionService,
	leagueService *usecase.LeagueService,
	managerService *usecase.ManagerService,
	competitionService *usecase.CompetitionService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		sessionService:     sessionService,
		leagueService:      leagueService,
		managerService:     managerService,
		competitionService: competitionService,
		statsService:       statsService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:       "ok",
		StatsEnabled: h.statsService.Enabled(),
	})
}

type healthDTO struct {
	Status       string `json:"status"`
	StatsEnabled bool   `json:"statsEnabled"`
}
