package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/manager"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
)

// ManagerDashboard joins the squad with the fielded lineup and season history.
type ManagerDashboard struct {
	Squad       manager.Squad       `json:"squad"`
	Lineup      manager.Lineup      `json:"lineup"`
	Performance manager.Performance `json:"performance"`
	Starters    []player.Player     `json:"starters"`
	Bench       []player.Player     `json:"bench"`
	SquadValue  int64               `json:"squadValue"`
}

// Dashboard fetches squad, lineup and performance concurrently. The first
// failure cancels the other calls.
func (s *ManagerService) Dashboard(ctx context.Context, token, leagueID, userID string, dayNumber int) (ManagerDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Dashboard")
	defer span.End()

	leagueID, userID, err := requireLeagueAndUser(leagueID, userID)
	if err != nil {
		return ManagerDashboard{}, err
	}

	var (
		squad  manager.Squad
		lineup manager.Lineup
		perf   manager.Performance
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		squad, err = s.provider.ManagerSquad(ctx, token, leagueID, userID)
		if err != nil {
			return fmt.Errorf("get manager squad: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		lineup, err = s.provider.ManagerLineup(ctx, token, leagueID, userID, dayNumber)
		if err != nil {
			return fmt.Errorf("get manager lineup: %w", err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		perf, err = s.provider.ManagerPerformance(ctx, token, leagueID, userID)
		if err != nil {
			return fmt.Errorf("get manager performance: %w", err)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return ManagerDashboard{}, err
	}

	return buildManagerDashboard(squad, lineup, perf), nil
}

func buildManagerDashboard(squad manager.Squad, lineup manager.Lineup, perf manager.Performance) ManagerDashboard {
	dashboard := ManagerDashboard{
		Squad:       squad,
		Lineup:      lineup,
		Performance: perf,
		Starters:    make([]player.Player, 0, len(lineup.StartingPlayerIDs)),
		Bench:       make([]player.Player, 0, len(squad.Players)),
	}
	for _, p := range squad.Players {
		dashboard.SquadValue += p.MarketValue
		if lineup.Starts(p.ID) {
			dashboard.Starters = append(dashboard.Starters, p)
			continue
		}
		dashboard.Bench = append(dashboard.Bench, p)
	}
	return dashboard
}
