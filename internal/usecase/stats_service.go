package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/stats"
)

const (
	defaultMarketValueDays = 90
	maxMarketValueDays     = 365
)

// StatsService reads the optional historical store. A nil repository means
// the store is not configured.
type StatsService struct {
	repo stats.Repository
}

func NewStatsService(repo stats.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) Enabled() bool {
	return s != nil && s.repo != nil
}

func (s *StatsService) PlayerSeasonPoints(ctx context.Context, playerID string) ([]stats.SeasonPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerSeasonPoints")
	defer span.End()

	if err := s.requireStore(); err != nil {
		return nil, err
	}
	playerID, err := requireID("player id", playerID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListSeasonPoints(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list season points: %w", err)
	}
	return items, nil
}

func (s *StatsService) PlayerMatchdayPoints(ctx context.Context, playerID string, seasonID int64) ([]stats.MatchdayPoints, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerMatchdayPoints")
	defer span.End()

	if err := s.requireStore(); err != nil {
		return nil, err
	}
	playerID, err := requireID("player id", playerID)
	if err != nil {
		return nil, err
	}
	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	items, err := s.repo.ListMatchdayPoints(ctx, playerID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matchday points: %w", err)
	}
	return items, nil
}

// PlayerMarketValues returns the last days of samples, 90 by default, capped at a year.
func (s *StatsService) PlayerMarketValues(ctx context.Context, playerID string, days int) ([]stats.MarketValuePoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerMarketValues")
	defer span.End()

	if err := s.requireStore(); err != nil {
		return nil, err
	}
	playerID, err := requireID("player id", playerID)
	if err != nil {
		return nil, err
	}
	switch {
	case days < 0:
		return nil, fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	case days == 0:
		days = defaultMarketValueDays
	case days > maxMarketValueDays:
		days = maxMarketValueDays
	}
	items, err := s.repo.ListMarketValues(ctx, playerID, days)
	if err != nil {
		return nil, fmt.Errorf("list market values: %w", err)
	}
	return items, nil
}

// ClubFixtures lists a club's games. seasonID 0 returns every stored season.
func (s *StatsService) ClubFixtures(ctx context.Context, clubID string, seasonID int64) ([]stats.ClubFixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ClubFixtures")
	defer span.End()

	if err := s.requireStore(); err != nil {
		return nil, err
	}
	clubID, err := requireID("club id", clubID)
	if err != nil {
		return nil, err
	}
	if seasonID < 0 {
		return nil, fmt.Errorf("%w: season id must not be negative", ErrInvalidInput)
	}
	items, err := s.repo.ListClubFixtures(ctx, clubID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list club fixtures: %w", err)
	}
	return items, nil
}

func (s *StatsService) requireStore() error {
	if !s.Enabled() {
		return fmt.Errorf("%w: statistics store is not configured", ErrDependencyUnavailable)
	}
	return nil
}
