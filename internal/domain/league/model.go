package league

// League is a private manager league the user belongs to.
type League struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int64  `json:"memberCount"`
	Image       string `json:"image,omitempty"`
}

// Overview is the league header shown on the dashboard landing page.
type Overview struct {
	League
	CompetitionID string `json:"competitionId"`
	CurrentDay    int64  `json:"currentDay"`
	IsAdmin       bool   `json:"isAdmin"`
	Budget        int64  `json:"budget"`
	TeamValue     int64  `json:"teamValue"`
}

// RankingRow is one manager line in the league table.
type RankingRow struct {
	UserID            string `json:"userId"`
	Name              string `json:"name"`
	IsAdmin           bool   `json:"isAdmin"`
	SeasonPoints      int64  `json:"seasonPoints"`
	SeasonPlacement   int64  `json:"seasonPlacement"`
	MatchdayPoints    int64  `json:"matchdayPoints"`
	MatchdayPlacement int64  `json:"matchdayPlacement"`
	TeamValue         int64  `json:"teamValue"`
	ProfileImage      string `json:"profileImage,omitempty"`
}
