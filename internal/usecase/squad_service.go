package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/manager"
)

const defaultFanoutWorkers = 4

// LeagueSquad is one ranking row with that manager's squad.
type LeagueSquad struct {
	Manager league.RankingRow `json:"manager"`
	Squad   manager.Squad     `json:"squad"`
}

// LeagueSquads loads the squad of every ranked manager on a bounded worker
// pool. Results keep ranking order.
func (s *ManagerService) LeagueSquads(ctx context.Context, token, leagueID string) ([]LeagueSquad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.LeagueSquads")
	defer span.End()

	leagueID, err := requireID("league id", leagueID)
	if err != nil {
		return nil, err
	}

	ranking, err := s.provider.LeagueRanking(ctx, token, leagueID, 0)
	if err != nil {
		return nil, fmt.Errorf("get league ranking: %w", err)
	}
	if len(ranking) == 0 {
		return []LeagueSquad{}, nil
	}

	pool, err := ants.NewPool(min(s.fanoutWorkers, len(ranking)))
	if err != nil {
		return nil, fmt.Errorf("create squad worker pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]LeagueSquad, len(ranking))
	errs := make([]error, len(ranking))
	var workers sync.WaitGroup
	for i, row := range ranking {
		results[i].Manager = row
		workers.Add(1)
		submitErr := pool.Submit(func() {
			defer workers.Done()
			squad, err := s.provider.ManagerSquad(ctx, token, leagueID, row.UserID)
			if err != nil {
				errs[i] = fmt.Errorf("get squad of manager %s: %w", row.UserID, err)
				cancel()
				return
			}
			results[i].Squad = squad
		})
		if submitErr != nil {
			workers.Done()
			errs[i] = fmt.Errorf("submit squad task: %w", submitErr)
			cancel()
			break
		}
	}
	workers.Wait()

	if err := firstError(errs); err != nil {
		return nil, err
	}
	return results, nil
}

// firstError prefers a real failure over the cancellations it caused.
func firstError(errs []error) error {
	var canceled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) {
			if canceled == nil {
				canceled = err
			}
			continue
		}
		return err
	}
	return canceled
}
