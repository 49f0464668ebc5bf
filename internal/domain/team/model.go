package team

import "github.com/riskibarqy/fantasy-dashboard/internal/domain/player"

// Identity is the display name and crest of a club.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// StandingRow is one club line of the competition table.
type StandingRow struct {
	TeamID            string `json:"teamId"`
	TeamName          string `json:"teamName"`
	Played            int64  `json:"played"`
	Points            int64  `json:"points"`
	PlacementCurrent  int64  `json:"placementCurrent"`
	PlacementPrevious int64  `json:"placementPrevious"`
	GoalDifference    int64  `json:"goalDifference"`
	LogoPath          string `json:"logoPath,omitempty"`
}

// Movement is how many places the club climbed since the previous matchday.
// Zero when either placement is unknown.
func (r StandingRow) Movement() int64 {
	if r.PlacementCurrent <= 0 || r.PlacementPrevious <= 0 {
		return 0
	}
	return r.PlacementPrevious - r.PlacementCurrent
}

// Profile is the club page: record, value and player pool.
type Profile struct {
	TeamID    string          `json:"teamId"`
	TeamName  string          `json:"teamName"`
	LogoPath  string          `json:"logoPath,omitempty"`
	Value     int64           `json:"value"`
	Wins      int64           `json:"wins"`
	Draws     int64           `json:"draws"`
	Losses    int64           `json:"losses"`
	Placement int64           `json:"placement"`
	Players   []player.Player `json:"players"`
}
