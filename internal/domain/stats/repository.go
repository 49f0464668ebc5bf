package stats

import "context"

// Repository reads the historical statistics store.
type Repository interface {
	ListSeasonPoints(ctx context.Context, playerID string) ([]SeasonPoints, error)
	ListMatchdayPoints(ctx context.Context, playerID string, seasonID int64) ([]MatchdayPoints, error)
	ListMarketValues(ctx context.Context, playerID string, days int) ([]MarketValuePoint, error)
	ListClubFixtures(ctx context.Context, clubID string, seasonID int64) ([]ClubFixture, error)
}
