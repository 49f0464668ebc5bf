package stats

import "time"

// SeasonPoints is a player's fantasy total for one season.
type SeasonPoints struct {
	PlayerID      string `json:"playerId"`
	SeasonID      int64  `json:"seasonId"`
	SeasonName    string `json:"seasonName"`
	Points        int64  `json:"points"`
	MatchesPlayed int64  `json:"matchesPlayed"`
	AveragePoints int64  `json:"averagePoints"`
	MinutesPlayed int64  `json:"minutesPlayed"`
	Goals         int64  `json:"goals"`
	Assists       int64  `json:"assists"`
}

// MatchdayPoints is a player's fantasy score on one matchday.
type MatchdayPoints struct {
	PlayerID string `json:"playerId"`
	SeasonID int64  `json:"seasonId"`
	Matchday int64  `json:"matchday"`
	Points   int64  `json:"points"`
	Minutes  int64  `json:"minutes"`
}

// MarketValuePoint is a daily market value sample.
type MarketValuePoint struct {
	PlayerID    string    `json:"playerId"`
	RecordedOn  time.Time `json:"recordedOn"`
	MarketValue int64     `json:"marketValue"`
}

// ClubFixture is one played or scheduled game of a club.
type ClubFixture struct {
	ClubID       string     `json:"clubId"`
	SeasonID     int64      `json:"seasonId"`
	Matchday     int64      `json:"matchday"`
	OpponentID   string     `json:"opponentId"`
	IsHome       bool       `json:"isHome"`
	GoalsFor     *int64     `json:"goalsFor,omitempty"`
	GoalsAgainst *int64     `json:"goalsAgainst,omitempty"`
	KickoffAt    *time.Time `json:"kickoffAt,omitempty"`
}
