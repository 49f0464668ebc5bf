package player

// Position is the pitch role of a player. Upstream encodes it as 1..4.
type Position int

const (
	PositionUnknown Position = iota
	PositionGoalkeeper
	PositionDefender
	PositionMidfielder
	PositionForward
)

// ParsePosition maps the upstream code, anything outside 1..4 is unknown.
func ParsePosition(code int64) Position {
	if code < int64(PositionGoalkeeper) || code > int64(PositionForward) {
		return PositionUnknown
	}
	return Position(code)
}

func (p Position) String() string {
	switch p {
	case PositionGoalkeeper:
		return "GK"
	case PositionDefender:
		return "DEF"
	case PositionMidfielder:
		return "MID"
	case PositionForward:
		return "FWD"
	default:
		return "UNKNOWN"
	}
}

// Status is the availability flag of a player.
type Status int

const (
	StatusFit Status = iota
	StatusInjured
	StatusDoubtful
	StatusSuspended
)

// ParseStatus maps the upstream code. Codes the dashboard does not know
// collapse into StatusSuspended so the player is never shown as fit.
func ParseStatus(code int64) Status {
	if code < int64(StatusFit) || code > int64(StatusSuspended) {
		return StatusSuspended
	}
	return Status(code)
}

// Player is the canonical player card shared by squads, markets and team profiles.
type Player struct {
	ID               string   `json:"id"`
	FirstName        string   `json:"firstName,omitempty"`
	LastName         string   `json:"lastName"`
	TeamID           string   `json:"teamId"`
	Position         Position `json:"position"`
	Status           Status   `json:"status"`
	MarketValue      int64    `json:"marketValue"`
	TotalPoints      int64    `json:"totalPoints"`
	MarketValueDelta int64    `json:"marketValueDelta"`
	ImagePath        string   `json:"imagePath,omitempty"`
}

func (p Player) DisplayName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
