package manager

import "github.com/riskibarqy/fantasy-dashboard/internal/domain/player"

// Squad is every player a manager owns in one league.
type Squad struct {
	ManagerUserID string          `json:"managerUserId"`
	ManagerName   string          `json:"managerName,omitempty"`
	ManagerImage  string          `json:"managerImage,omitempty"`
	Players       []player.Player `json:"players"`
}

// Lineup is the set of players a manager fields on a matchday.
type Lineup struct {
	UserID            string   `json:"userId"`
	StartingPlayerIDs []string `json:"startingPlayerIds"`
}

func (l Lineup) Starts(playerID string) bool {
	for _, id := range l.StartingPlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// MatchdayPoints is the score of one matchday inside a season.
type MatchdayPoints struct {
	Day    int64 `json:"day"`
	Points int64 `json:"points"`
}

// SeasonPerformance is a manager's record for one season.
type SeasonPerformance struct {
	SeasonID       string           `json:"seasonId"`
	SeasonName     string           `json:"seasonName,omitempty"`
	Points         int64            `json:"points"`
	Placement      int64            `json:"placement"`
	TeamValue      int64            `json:"teamValue"`
	MatchdayPoints []MatchdayPoints `json:"matchdayPoints"`
}

// Performance is the season history of one manager.
type Performance struct {
	UserID  string              `json:"userId"`
	Seasons []SeasonPerformance `json:"seasons"`
}
