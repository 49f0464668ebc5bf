package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/manager"
)

type ManagerService struct {
	provider      Provider
	fanoutWorkers int
}

func NewManagerService(provider Provider, fanoutWorkers int) *ManagerService {
	if fanoutWorkers < 1 {
		fanoutWorkers = defaultFanoutWorkers
	}
	return &ManagerService{provider: provider, fanoutWorkers: fanoutWorkers}
}

func (s *ManagerService) Squad(ctx context.Context, token, leagueID, userID string) (manager.Squad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Squad")
	defer span.End()

	leagueID, userID, err := requireLeagueAndUser(leagueID, userID)
	if err != nil {
		return manager.Squad{}, err
	}
	squad, err := s.provider.ManagerSquad(ctx, token, leagueID, userID)
	if err != nil {
		return manager.Squad{}, fmt.Errorf("get manager squad: %w", err)
	}
	return squad, nil
}

func (s *ManagerService) Lineup(ctx context.Context, token, leagueID, userID string, dayNumber int) (manager.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Lineup")
	defer span.End()

	leagueID, userID, err := requireLeagueAndUser(leagueID, userID)
	if err != nil {
		return manager.Lineup{}, err
	}
	lineup, err := s.provider.ManagerLineup(ctx, token, leagueID, userID, dayNumber)
	if err != nil {
		return manager.Lineup{}, fmt.Errorf("get manager lineup: %w", err)
	}
	return lineup, nil
}

func (s *ManagerService) Performance(ctx context.Context, token, leagueID, userID string) (manager.Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Performance")
	defer span.End()

	leagueID, userID, err := requireLeagueAndUser(leagueID, userID)
	if err != nil {
		return manager.Performance{}, err
	}
	perf, err := s.provider.ManagerPerformance(ctx, token, leagueID, userID)
	if err != nil {
		return manager.Performance{}, fmt.Errorf("get manager performance: %w", err)
	}
	return perf, nil
}

func requireLeagueAndUser(leagueID, userID string) (string, string, error) {
	leagueID, err := requireID("league id", leagueID)
	if err != nil {
		return "", "", err
	}
	userID, err = requireID("user id", userID)
	if err != nil {
		return "", "", err
	}
	return leagueID, userID, nil
}
