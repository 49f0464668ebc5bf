package kickbase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-dashboard/internal/domain/league"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/player"
)

const testCDN = "https://cdn.test/"

// decode mimics what the requester hands to normalizers.
func decode(t *testing.T, raw string) any {
	t.Helper()
	got := Classify(Outcome{StatusCode: 200, Body: raw})
	require.Equal(t, KindOk, got.Kind, got.Message)
	return got.Data
}

func TestNormalizerPlayer_KeyPriority(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	got := n.Player(decode(t, `{
		"i": 101, "pi": "ignored", "fn": "Jamal", "ln": "Musiala", "n": "ignored",
		"tid": 2, "pos": 3, "st": 0, "mv": 120000000, "p": 187, "mvgl": -250000,
		"pim": "content/file/abc.png"
	}`))

	assert.Equal(t, player.Player{
		ID:               "101",
		FirstName:        "Jamal",
		LastName:         "Musiala",
		TeamID:           "2",
		Position:         player.PositionMidfielder,
		Status:           player.StatusFit,
		MarketValue:      120000000,
		TotalPoints:      187,
		MarketValueDelta: -250000,
		ImagePath:        "https://cdn.test/content/file/abc.png",
	}, got)
}

func TestNormalizerPlayer_FallbackKeysAndDefaults(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	got := n.Player(decode(t, `{"pi": "7", "n": "Kane", "tp": 12, "tfhmvt": 5, "pos": 9, "st": 42, "mv": -5, "fn": null}`))

	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Kane", got.LastName)
	assert.Equal(t, "", got.FirstName)
	assert.Equal(t, "", got.TeamID)
	assert.Equal(t, int64(12), got.TotalPoints)
	assert.Equal(t, int64(5), got.MarketValueDelta)
	assert.Equal(t, player.PositionUnknown, got.Position)
	assert.Equal(t, player.StatusSuspended, got.Status)
	assert.Equal(t, int64(0), got.MarketValue)
	assert.Equal(t, "", got.ImagePath)
}

func TestNormalizerPlayer_NonObjectInput(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	assert.Equal(t, player.Player{}, n.Player("nope"))
	assert.Equal(t, player.Player{}, n.Player(nil))
}

func TestNormalizerPlayer_RoundTripIsIdempotent(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	first := n.Player(decode(t, `{"i": "55", "fn": "Florian", "ln": "Wirtz", "tid": "7", "pos": 3, "st": 1, "mv": 99, "p": 10, "mvgl": 3, "pim": "https://img.test/wirtz.png"}`))

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	second := n.Player(decode(t, string(raw)))

	assert.Equal(t, first, second)
}

func TestNormalizerMarketListing(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	got := n.MarketListing(decode(t, `{
		"i": "9", "ln": "Sané", "prc": 15000000, "exs": 3600, "mvt": 1, "ap": 6,
		"u": {"i": 44, "n": "Ada", "uim": "u/44.png"}
	}`))

	assert.Equal(t, "9", got.ID)
	assert.Equal(t, int64(15000000), got.AskingPrice)
	assert.Equal(t, int64(3600), got.SecondsUntilExpiry)
	assert.Equal(t, player.ValueTrendUp, got.ValueTrend)
	require.NotNil(t, got.AveragePoints)
	assert.Equal(t, int64(6), *got.AveragePoints)
	require.NotNil(t, got.Seller)
	assert.Equal(t, player.SellerRef{ID: "44", Name: "Ada", ProfileImage: "https://cdn.test/u/44.png"}, *got.Seller)
}

func TestNormalizerMarketListing_TrendAndSellerVariants(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	tests := []struct {
		raw    string
		trend  player.ValueTrend
		seller bool
	}{
		{raw: `{"i": "1"}`, trend: player.ValueTrendFlat},
		{raw: `{"i": "1", "mvt": null}`, trend: player.ValueTrendFlat},
		{raw: `{"i": "1", "mvt": " "}`, trend: player.ValueTrendFlat},
		{raw: `{"i": "1", "mvt": 0, "u": null}`, trend: player.ValueTrendFlat},
		{raw: `{"i": "1", "mvt": 2}`, trend: player.ValueTrendDown},
		{raw: `{"i": "1", "mvt": 7, "u": {}}`, trend: player.ValueTrendUnknown},
		{raw: `{"i": "1", "mvt": "1", "u": {"i": "3"}}`, trend: player.ValueTrendUp, seller: true},
	}
	for _, tc := range tests {
		got := n.MarketListing(decode(t, tc.raw))
		assert.Equal(t, tc.trend, got.ValueTrend, tc.raw)
		assert.Equal(t, tc.seller, got.Seller != nil, tc.raw)
		assert.Nil(t, got.AveragePoints, tc.raw)
	}
}

func TestNormalizerMarketListing_RoundTripIsIdempotent(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	first := n.MarketListing(decode(t, `{"i": "9", "ln": "Sané", "prc": 15, "exs": 60, "mvt": 2, "ap": 4, "u": {"i": 1, "n": "Bo"}}`))

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	second := n.MarketListing(decode(t, string(raw)))

	assert.Equal(t, first, second)
}

func TestNormalizerLeague(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)

	got := n.League(decode(t, `{"i": "L1", "n": "Office", "mu": 12, "f": "league/l1.png"}`))
	assert.Equal(t, league.League{ID: "L1", Name: "Office", MemberCount: 12, Image: "https://cdn.test/league/l1.png"}, got)

	got = n.League(decode(t, `{"id": "L2", "name": "Family", "mc": 4, "ci": "https://x.test/a.png", "f": "ignored.png"}`))
	assert.Equal(t, "https://x.test/a.png", got.Image)
	assert.Equal(t, int64(4), got.MemberCount)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, got, n.League(decode(t, string(raw))))
}

func TestNormalizerStandingTable_SortsAndFallsBack(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	items := decode(t, `{"it": [
		{"tid": "3", "tn": "BVB", "cpl": 2, "pcpl": 1, "cp": 30, "mc": 12, "gd": 10},
		{"tid": "999", "cpl": 3, "cp": 20},
		{"tid": "2", "cpl": 1, "cp": 33, "tim": "teams/2.png"},
		{"tid": "5"}
	]}`).(map[string]any)["it"].([]any)

	rows := n.StandingTable(items)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"2", "3", "999", "5"}, []string{rows[0].TeamID, rows[1].TeamID, rows[2].TeamID, rows[3].TeamID})
	assert.Equal(t, "FC Bayern München", rows[0].TeamName)
	assert.Equal(t, "https://cdn.test/teams/2.png", rows[0].LogoPath)
	assert.Equal(t, "BVB", rows[1].TeamName)
	assert.Equal(t, "Team ID: 999", rows[2].TeamName)
	assert.Equal(t, "", rows[2].LogoPath)
	assert.Equal(t, int64(-1), rows[1].Movement())
}

func TestNormalizerTeamProfile_PlayersInheritTeam(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	got := n.TeamProfile(decode(t, `{"tv": 900, "tw": 8, "td": 2, "tl": 1, "pl": 1, "it": [{"i": "1", "ln": "Kane"}, {"i": "2", "tid": "40"}, 7]}`), "2")

	assert.Equal(t, "2", got.TeamID)
	assert.Equal(t, "FC Bayern München", got.TeamName)
	assert.Equal(t, int64(900), got.Value)
	require.Len(t, got.Players, 2)
	assert.Equal(t, "2", got.Players[0].TeamID)
	assert.Equal(t, "40", got.Players[1].TeamID)
}

func TestNormalizerLineup(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	entries := decode(t, `{"us": [
		{"i": "u1", "lp": ["1", "2"]},
		{"i": "u2", "lp": [10, null, "", "12", {"i": 13}]}
	]}`).(map[string]any)["us"].([]any)

	got, found := n.Lineup(entries, "u2")
	require.True(t, found)
	assert.Equal(t, []string{"10", "12", "13"}, got.StartingPlayerIDs)

	got, found = n.Lineup(entries, "u9")
	assert.False(t, found)
	assert.Equal(t, "u9", got.UserID)
	assert.Empty(t, got.StartingPlayerIDs)
}

func TestNormalizerMatchday_Resolution(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	raw := decode(t, `{"cmd": 2, "it": [
		[{"day": 1, "it": [{"mi": "a", "t1": "2", "t2": "3", "t1g": 2, "t2g": 0, "st": 2, "dt": "2026-08-22T18:30:00Z"}]}],
		[{"day": 2, "it": [{"mi": "b", "t1": "999", "t2": "2", "st": 0}]}, {"day": 3, "it": []}]
	]}`)

	md, ok := n.Matchday(raw, 1)
	require.True(t, ok)
	assert.Equal(t, int64(1), md.Day)
	require.Len(t, md.Matches, 1)
	match := md.Matches[0]
	assert.Equal(t, "FC Bayern München", match.Home.Name)
	assert.Equal(t, "Borussia Dortmund", match.Away.Name)
	require.NotNil(t, match.HomeGoals)
	assert.Equal(t, int64(2), *match.HomeGoals)
	require.NotNil(t, match.KickoffAt)
	assert.Equal(t, time.Date(2026, 8, 22, 18, 30, 0, 0, time.UTC), *match.KickoffAt)

	md, ok = n.Matchday(raw, 0)
	require.True(t, ok)
	assert.Equal(t, int64(2), md.Day)
	assert.Equal(t, "Team ID: 999", md.Matches[0].Home.Name)
	assert.Nil(t, md.Matches[0].HomeGoals)

	md, ok = n.Matchday(decode(t, `{"it": [{"day": 5, "it": []}, {"day": 6, "it": []}]}`), 40)
	require.True(t, ok)
	assert.Equal(t, int64(5), md.Day)

	_, ok = n.Matchday(decode(t, `{"it": []}`), 1)
	assert.False(t, ok)
}

func TestNormalizerPerformance(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	got := n.Performance(decode(t, `{"it": [{"sid": "2025", "sn": "2025/2026", "p": 1500, "pl": 2, "tv": -3, "ph": [{"day": 1, "p": 80}, {"md": 2, "points": 60}]}]}`), "u1")

	assert.Equal(t, "u1", got.UserID)
	require.Len(t, got.Seasons, 1)
	season := got.Seasons[0]
	assert.Equal(t, "2025", season.SeasonID)
	assert.Equal(t, int64(0), season.TeamValue)
	require.Len(t, season.MatchdayPoints, 2)
	assert.Equal(t, int64(2), season.MatchdayPoints[1].Day)
	assert.Equal(t, int64(60), season.MatchdayPoints[1].Points)
}

func TestNormalizerSquad(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(testCDN)
	got := n.Squad(decode(t, `{"unm": "Ada", "uim": "u/1.png", "it": [{"i": "1"}, {"i": "2"}]}`), "u1")

	assert.Equal(t, "u1", got.ManagerUserID)
	assert.Equal(t, "Ada", got.ManagerName)
	assert.Equal(t, "https://cdn.test/u/1.png", got.ManagerImage)
	assert.Len(t, got.Players, 2)
}

func TestResolveImage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", resolveImage(testCDN, "  "))
	assert.Equal(t, "https://x/y.png", resolveImage(testCDN, "https://x/y.png"))
	assert.Equal(t, "http://x/y.png", resolveImage(testCDN, "http://x/y.png"))
	assert.Equal(t, "https://cdn.test/a/b.png", resolveImage(testCDN, "/a/b.png"))
	assert.Equal(t, "https://cdn.test/a/b.png", resolveImage("https://cdn.test", "a/b.png"))
}
