package usecase

import (
	"context"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/manager"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/user"
)

// Provider is the fantasy-football upstream. Implementations own transport,
// retries and normalization, and fail with the sentinels in errors.go.
type Provider interface {
	Login(ctx context.Context, email, password string) (user.Session, error)
	Leagues(ctx context.Context, token string) ([]league.League, error)
	LeagueOverview(ctx context.Context, token, leagueID string) (league.Overview, error)
	LeagueRanking(ctx context.Context, token, leagueID string, dayNumber int) ([]league.RankingRow, error)
	LeagueMarket(ctx context.Context, token, leagueID string) ([]player.MarketListing, error)
	ManagerSquad(ctx context.Context, token, leagueID, userID string) (manager.Squad, error)
	ManagerPerformance(ctx context.Context, token, leagueID, userID string) (manager.Performance, error)
	ManagerLineup(ctx context.Context, token, leagueID, userID string, dayNumber int) (manager.Lineup, error)
	CompetitionTable(ctx context.Context, token, competitionID string) ([]team.StandingRow, error)
	TeamProfile(ctx context.Context, token, competitionID, teamID string) (team.Profile, error)
	Matchday(ctx context.Context, token, competitionID string, day int) (matchday.Matchday, error)
}
