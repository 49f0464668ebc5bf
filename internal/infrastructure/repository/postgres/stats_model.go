package postgres

import (
	"database/sql"
	"time"
)

type seasonPointsRow struct {
	PlayerID      string `db:"player_id"`
	SeasonID      int64  `db:"season_id"`
	SeasonName    string `db:"season_name"`
	Points        int64  `db:"points"`
	MatchesPlayed int64  `db:"matches_played"`
	AveragePoints int64  `db:"average_points"`
	MinutesPlayed int64  `db:"minutes_played"`
	Goals         int64  `db:"goals"`
	Assists       int64  `db:"assists"`
}

type matchdayPointsRow struct {
	PlayerID string `db:"player_id"`
	SeasonID int64  `db:"season_id"`
	Matchday int64  `db:"matchday"`
	Points   int64  `db:"points"`
	Minutes  int64  `db:"minutes_played"`
}

type marketValueRow struct {
	PlayerID    string    `db:"player_id"`
	RecordedOn  time.Time `db:"recorded_on"`
	MarketValue int64     `db:"market_value"`
}

type clubFixtureRow struct {
	ClubID       string        `db:"club_id"`
	SeasonID     int64         `db:"season_id"`
	Matchday     int64         `db:"matchday"`
	OpponentID   string        `db:"opponent_id"`
	IsHome       bool          `db:"is_home"`
	GoalsFor     sql.NullInt64 `db:"goals_for"`
	GoalsAgainst sql.NullInt64 `db:"goals_against"`
	KickoffAt    sql.NullTime  `db:"kickoff_at"`
}
