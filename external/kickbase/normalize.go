package kickbase

import (
	"cmp"
	"slices"
	"strings"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

// Key priority lists. Upstream abbreviations come first, the canonical JSON
// name last, so normalizing an already canonical object is a no-op.
var (
	playerIDKeys          = []string{"i", "pi", "id"}
	playerFirstNameKeys   = []string{"fn", "firstName"}
	playerLastNameKeys    = []string{"ln", "n", "pn", "lastName"}
	playerTeamIDKeys      = []string{"tid", "teamId"}
	playerPositionKeys    = []string{"pos", "position"}
	playerStatusKeys      = []string{"st", "status"}
	playerMarketValueKeys = []string{"mv", "marketValue"}
	playerPointsKeys      = []string{"p", "tp", "totalPoints"}
	playerValueDeltaKeys  = []string{"mvgl", "tfhmvt", "marketValueDelta"}
	playerImageKeys       = []string{"pim", "imagePath"}
)

// Normalizer maps decoded upstream payloads to domain types. It is pure:
// missing or mistyped fields become zero values, never errors.
type Normalizer struct {
	imageBase string
}

func NewNormalizer(imageBase string) Normalizer {
	if strings.TrimSpace(imageBase) == "" {
		imageBase = defaultImageBaseURL
	}
	return Normalizer{imageBase: imageBase}
}

func (n Normalizer) image(raw string) string {
	return resolveImage(n.imageBase, raw)
}

func (n Normalizer) Player(raw any) player.Player {
	obj, _ := asObject(raw)
	return n.player(obj, "")
}

func (n Normalizer) player(obj object, fallbackTeamID string) player.Player {
	p := player.Player{
		ID:               obj.str(playerIDKeys...),
		FirstName:        obj.str(playerFirstNameKeys...),
		LastName:         obj.str(playerLastNameKeys...),
		TeamID:           obj.str(playerTeamIDKeys...),
		Position:         player.ParsePosition(obj.int64(playerPositionKeys...)),
		Status:           player.ParseStatus(obj.int64(playerStatusKeys...)),
		MarketValue:      obj.amount(playerMarketValueKeys...),
		TotalPoints:      obj.int64(playerPointsKeys...),
		MarketValueDelta: obj.int64(playerValueDeltaKeys...),
		ImagePath:        n.image(obj.str(playerImageKeys...)),
	}
	if p.TeamID == "" {
		p.TeamID = fallbackTeamID
	}
	return p
}

func (n Normalizer) players(items []any, fallbackTeamID string) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		out = append(out, n.player(obj, fallbackTeamID))
	}
	return out
}

func (n Normalizer) MarketListing(raw any) player.MarketListing {
	obj, _ := asObject(raw)
	listing := player.MarketListing{
		Player:             n.player(obj, ""),
		AskingPrice:        obj.amount("prc", "askingPrice"),
		SecondsUntilExpiry: max(obj.int64("exs", "secondsUntilExpiry"), 0),
		ValueTrend:         valueTrend(obj),
		Seller:             n.seller(obj),
	}
	if avg, ok := obj.optionalInt64("ap", "averagePoints"); ok {
		listing.AveragePoints = &avg
	}
	return listing
}

// valueTrend treats an absent or blank field like code 0.
func valueTrend(obj object) player.ValueTrend {
	value, ok := obj.lookup("mvt", "valueTrend")
	if !ok {
		return player.ValueTrendFlat
	}
	if text, isText := value.(string); isText {
		if strings.TrimSpace(text) == "" {
			return player.ValueTrendFlat
		}
		if code, numeric := toInt64(text); numeric {
			return player.ParseValueTrendCode(code)
		}
		return player.ParseValueTrend(strings.TrimSpace(text))
	}
	code, numeric := toInt64(value)
	if !numeric {
		return player.ValueTrendUnknown
	}
	return player.ParseValueTrendCode(code)
}

func (n Normalizer) seller(obj object) *player.SellerRef {
	raw, ok := obj.child("u", "seller")
	if !ok {
		return nil
	}
	seller := player.SellerRef{
		ID:           raw.str("i", "id"),
		Name:         raw.str("n", "unm", "name"),
		ProfileImage: n.image(raw.str("uim", "profileImage")),
	}
	if seller.ID == "" && seller.Name == "" {
		return nil
	}
	return &seller
}

func (n Normalizer) League(raw any) league.League {
	obj, _ := asObject(raw)
	return league.League{
		ID:          obj.str("id", "i"),
		Name:        obj.str("name", "n"),
		MemberCount: max(obj.int64("mu", "mc", "memberCount"), 0),
		Image:       n.image(obj.str("ci", "f", "image")),
	}
}

func (n Normalizer) leagues(items []any) []league.League {
	out := make([]league.League, 0, len(items))
	for _, item := range items {
		l := n.League(item)
		if l.ID == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (n Normalizer) LeagueOverview(raw any, leagueID string) league.Overview {
	obj, _ := asObject(raw)
	overview := league.Overview{
		League:        n.League(raw),
		CompetitionID: obj.str("cpi", "competitionId"),
		CurrentDay:    obj.int64("day", "md", "currentDay"),
		IsAdmin:       obj.boolean("adm", "isAdmin"),
		Budget:        obj.int64("b", "bs", "budget"),
		TeamValue:     obj.amount("tv", "teamValue"),
	}
	if overview.Name == "" {
		overview.Name = obj.str("lnm")
	}
	if overview.ID == "" {
		overview.ID = leagueID
	}
	return overview
}

func (n Normalizer) RankingRow(raw any) league.RankingRow {
	obj, _ := asObject(raw)
	return league.RankingRow{
		UserID:            obj.str("i", "id", "userId"),
		Name:              obj.str("n", "name"),
		IsAdmin:           obj.boolean("adm", "isAdmin"),
		SeasonPoints:      obj.int64("sp", "seasonPoints"),
		SeasonPlacement:   obj.int64("spl", "seasonPlacement"),
		MatchdayPoints:    obj.int64("mdp", "matchdayPoints"),
		MatchdayPlacement: obj.int64("mdpl", "matchdayPlacement"),
		TeamValue:         obj.amount("tv", "teamValue"),
		ProfileImage:      n.image(obj.str("uim", "profileImage")),
	}
}

// StandingRow falls back to the static team table for name and logo.
func (n Normalizer) StandingRow(raw any) team.StandingRow {
	obj, _ := asObject(raw)
	row := team.StandingRow{
		TeamID:            obj.str("tid", "i", "teamId"),
		TeamName:          obj.str("tn", "n", "teamName"),
		Played:            obj.int64("mc", "played"),
		Points:            obj.int64("cp", "sp", "points"),
		PlacementCurrent:  obj.int64("cpl", "placementCurrent"),
		PlacementPrevious: obj.int64("pcpl", "placementPrevious"),
		GoalDifference:    obj.int64("gd", "goalDifference"),
		LogoPath:          n.image(obj.str("tim", "logoPath")),
	}
	if row.TeamName == "" || row.LogoPath == "" {
		identity := team.Lookup(row.TeamID)
		if row.TeamName == "" {
			row.TeamName = identity.Name
		}
		if row.LogoPath == "" {
			row.LogoPath = identity.Logo
		}
	}
	return row
}

// StandingTable normalizes and orders rows by current placement. Rows with an
// unknown placement go last, ties keep upstream order.
func (n Normalizer) StandingTable(items []any) []team.StandingRow {
	rows := make([]team.StandingRow, 0, len(items))
	for _, item := range items {
		if _, ok := asObject(item); !ok {
			continue
		}
		rows = append(rows, n.StandingRow(item))
	}
	slices.SortStableFunc(rows, func(a, b team.StandingRow) int {
		return cmp.Compare(placementRank(a.PlacementCurrent), placementRank(b.PlacementCurrent))
	})
	return rows
}

func placementRank(placement int64) int64 {
	if placement <= 0 {
		return 1 << 62
	}
	return placement
}

func (n Normalizer) TeamProfile(raw any, teamID string) team.Profile {
	obj, _ := asObject(raw)
	profile := team.Profile{
		TeamID:    obj.str("tid", "teamId"),
		TeamName:  obj.str("tn", "teamName"),
		LogoPath:  n.image(obj.str("tim", "logoPath")),
		Value:     obj.amount("tv", "value"),
		Wins:      obj.int64("tw", "wins"),
		Draws:     obj.int64("td", "draws"),
		Losses:    obj.int64("tl", "losses"),
		Placement: obj.int64("pl", "placement"),
	}
	if profile.TeamID == "" {
		profile.TeamID = teamID
	}
	identity := team.Lookup(profile.TeamID)
	if profile.TeamName == "" {
		profile.TeamName = identity.Name
	}
	if profile.LogoPath == "" {
		profile.LogoPath = identity.Logo
	}
	items, _ := obj.list("it", "players")
	profile.Players = n.players(items, profile.TeamID)
	return profile
}
