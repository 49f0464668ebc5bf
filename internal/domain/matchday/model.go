package matchday

import (
	"time"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

// MatchStatus is the upstream game state code.
type MatchStatus int

const (
	MatchStatusScheduled MatchStatus = iota
	MatchStatusLive
	MatchStatusFinished
)

func ParseMatchStatus(code int64) MatchStatus {
	switch MatchStatus(code) {
	case MatchStatusLive, MatchStatusFinished:
		return MatchStatus(code)
	default:
		return MatchStatusScheduled
	}
}

// Match is one fixture of a matchday. Goals stay nil until kickoff.
type Match struct {
	ID         string        `json:"id"`
	HomeTeamID string        `json:"homeTeamId"`
	AwayTeamID string        `json:"awayTeamId"`
	Home       team.Identity `json:"home"`
	Away       team.Identity `json:"away"`
	HomeGoals  *int64        `json:"homeGoals,omitempty"`
	AwayGoals  *int64        `json:"awayGoals,omitempty"`
	KickoffAt  *time.Time    `json:"kickoffAt,omitempty"`
	Status     MatchStatus   `json:"status"`
}

// Matchday is the fixture list of one competition round.
type Matchday struct {
	Day     int64   `json:"day"`
	Matches []Match `json:"matches"`
}
