package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-dashboard/external/kickbase"
	"github.com/riskibarqy/fantasy-dashboard/internal/config"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/stats"
	"github.com/riskibarqy/fantasy-dashboard/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-dashboard/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/logging"
	"github.com/riskibarqy/fantasy-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-dashboard/internal/usecase"
)

// NewHTTPServer wires the Kickbase client, the services and the optional
// stats store behind the HTTP router. The returned cleanup closes whatever
// the server opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	provider := kickbase.NewClient(kickbase.ClientConfig{
		BaseURL:      cfg.KickbaseBaseURL,
		ImageBaseURL: cfg.KickbaseCDNBaseURL,
		Transport:    cfg.KickbaseTransport,
		Timeout:      cfg.KickbaseTimeout,
		MaxAttempts:  cfg.KickbaseMaxAttempts,
		BackoffBase:  cfg.KickbaseBackoffBase,
		RateLimitRPS: cfg.KickbaseRateLimitRPS,
		Logger:       logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.KickbaseCircuitEnabled,
			FailureThreshold: cfg.KickbaseCircuitFailureCount,
			OpenTimeout:      cfg.KickbaseCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.KickbaseCircuitHalfOpenMaxReq,
		},
	})

	cleanup := func() error { return nil }

	// statsRepo stays a nil interface when the store is off so the service
	// reports it as unavailable.
	var statsRepo stats.Repository
	if cfg.StatsEnabled {
		db, err := openStatsDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		statsRepo = postgres.NewStatsRepository(db)
		cleanup = db.Close
		logger.Info("stats store connected", "db_name", dbNameFromURL(cfg.DBURL))
	} else {
		logger.Info("stats store disabled", "reason", "STATS_ENABLED=false")
	}

	handler := httpapi.NewHandler(
		usecase.NewSessionService(provider),
		usecase.NewLeagueService(provider),
		usecase.NewManagerService(provider, cfg.SquadFanoutWorkers),
		usecase.NewCompetitionService(provider),
		usecase.NewStatsService(statsRepo),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.HTTPRateLimitRPS,
		RateLimitBurst:     cfg.HTTPRateLimitBurst,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
