package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/stats"
	qb "github.com/riskibarqy/fantasy-dashboard/internal/platform/querybuilder"
)

// StatsRepository reads historical player and club statistics.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ stats.Repository = (*StatsRepository)(nil)

func (r *StatsRepository) ListSeasonPoints(ctx context.Context, playerID string) ([]stats.SeasonPoints, error) {
	query, args, err := seasonPointsQuery(playerID).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list season points query: %w", err)
	}

	var rows []seasonPointsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list season points: %w", err)
	}

	out := make([]stats.SeasonPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.SeasonPoints{
			PlayerID:      row.PlayerID,
			SeasonID:      row.SeasonID,
			SeasonName:    row.SeasonName,
			Points:        row.Points,
			MatchesPlayed: row.MatchesPlayed,
			AveragePoints: row.AveragePoints,
			MinutesPlayed: row.MinutesPlayed,
			Goals:         row.Goals,
			Assists:       row.Assists,
		})
	}
	return out, nil
}

func (r *StatsRepository) ListMatchdayPoints(ctx context.Context, playerID string, seasonID int64) ([]stats.MatchdayPoints, error) {
	query, args, err := matchdayPointsQuery(playerID, seasonID).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matchday points query: %w", err)
	}

	var rows []matchdayPointsRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matchday points: %w", err)
	}

	out := make([]stats.MatchdayPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.MatchdayPoints(row))
	}
	return out, nil
}

func (r *StatsRepository) ListMarketValues(ctx context.Context, playerID string, days int) ([]stats.MarketValuePoint, error) {
	query, args, err := marketValuesQuery(playerID, days).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list market values query: %w", err)
	}

	var rows []marketValueRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list market values: %w", err)
	}

	out := make([]stats.MarketValuePoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.MarketValuePoint{
			PlayerID:    row.PlayerID,
			RecordedOn:  row.RecordedOn.UTC(),
			MarketValue: row.MarketValue,
		})
	}
	return out, nil
}

func (r *StatsRepository) ListClubFixtures(ctx context.Context, clubID string, seasonID int64) ([]stats.ClubFixture, error) {
	query, args, err := clubFixturesQuery(clubID, seasonID).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list club fixtures query: %w", err)
	}

	var rows []clubFixtureRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list club fixtures: %w", err)
	}

	out := make([]stats.ClubFixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFixtureFromRow(row))
	}
	return out, nil
}

func clubFixtureFromRow(row clubFixtureRow) stats.ClubFixture {
	return stats.ClubFixture{
		ClubID:       row.ClubID,
		SeasonID:     row.SeasonID,
		Matchday:     row.Matchday,
		OpponentID:   row.OpponentID,
		IsHome:       row.IsHome,
		GoalsFor:     nullInt64Ptr(row.GoalsFor),
		GoalsAgainst: nullInt64Ptr(row.GoalsAgainst),
		KickoffAt:    nullTimePtr(row.KickoffAt),
	}
}

func seasonPointsQuery(playerID string) *qb.SelectBuilder {
	return qb.Select(
		"player_id",
		"season_id",
		"season_name",
		"points",
		"matches_played",
		"average_points",
		"minutes_played",
		"goals",
		"assists",
	).From("player_season_points").
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("season_id DESC")
}

func matchdayPointsQuery(playerID string, seasonID int64) *qb.SelectBuilder {
	return qb.Select("player_id", "season_id", "matchday", "points", "minutes_played").
		From("player_matchday_points").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("season_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("matchday ASC")
}

func marketValuesQuery(playerID string, days int) *qb.SelectBuilder {
	return qb.Select("player_id", "recorded_on", "market_value").
		From("player_market_values").
		Where(
			qb.Eq("player_id", playerID),
			qb.Expr("recorded_on > CURRENT_DATE - ?::integer", days),
		).
		OrderBy("recorded_on ASC")
}

// clubFixturesQuery spans every stored season when seasonID is 0.
func clubFixturesQuery(clubID string, seasonID int64) *qb.SelectBuilder {
	b := qb.Select(
		"club_id",
		"season_id",
		"matchday",
		"opponent_id",
		"is_home",
		"goals_for",
		"goals_against",
		"kickoff_at",
	).From("club_fixtures").
		Where(qb.Eq("club_id", clubID), qb.IsNull("deleted_at"))
	if seasonID > 0 {
		b = b.Where(qb.Eq("season_id", seasonID))
	}
	return b.OrderBy("season_id DESC", "matchday ASC")
}
