package kickbase

import (
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/matchday"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/team"
)

// flattenMatchdays accepts both a flat list of matchday objects and a list
// of lists, which the endpoint returns grouped by season half.
func flattenMatchdays(items []any) []object {
	out := make([]object, 0, len(items))
	for _, item := range items {
		if obj, ok := asObject(item); ok {
			out = append(out, obj)
			continue
		}
		nested, ok := item.([]any)
		if !ok {
			continue
		}
		for _, inner := range nested {
			if obj, ok := asObject(inner); ok {
				out = append(out, obj)
			}
		}
	}
	return out
}

// Matchday resolves the requested day, then the current day announced by the
// payload, then the first listed day. ok is false only when no day exists.
func (n Normalizer) Matchday(raw any, day int64) (matchday.Matchday, bool) {
	obj, _ := asObject(raw)
	items, _ := obj.list("it", "matchdays")
	entries := flattenMatchdays(items)
	if len(entries) == 0 {
		return matchday.Matchday{}, false
	}

	pick := func(want int64) (object, bool) {
		if want <= 0 {
			return nil, false
		}
		for _, entry := range entries {
			if entry.int64("day", "md") == want {
				return entry, true
			}
		}
		return nil, false
	}

	entry, ok := pick(day)
	if !ok {
		entry, ok = pick(obj.int64("day", "cmd", "currentDay"))
	}
	if !ok {
		entry = entries[0]
	}
	return n.matchdayFromEntry(entry), true
}

func (n Normalizer) matchdayFromEntry(entry object) matchday.Matchday {
	items, _ := entry.list("it", "matches")
	md := matchday.Matchday{
		Day:     entry.int64("day", "md"),
		Matches: make([]matchday.Match, 0, len(items)),
	}
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		md.Matches = append(md.Matches, n.match(obj))
	}
	return md
}

func (n Normalizer) match(obj object) matchday.Match {
	m := matchday.Match{
		ID:         obj.str("mi", "i", "id"),
		HomeTeamID: obj.str("t1", "homeTeamId"),
		AwayTeamID: obj.str("t2", "awayTeamId"),
		KickoffAt:  obj.timestamp("dt", "kickoffAt"),
		Status:     matchday.ParseMatchStatus(obj.int64("st", "status")),
	}
	m.Home = team.Lookup(m.HomeTeamID)
	m.Away = team.Lookup(m.AwayTeamID)
	if goals, ok := obj.optionalInt64("t1g", "homeGoals"); ok {
		m.HomeGoals = &goals
	}
	if goals, ok := obj.optionalInt64("t2g", "awayGoals"); ok {
		m.AwayGoals = &goals
	}
	return m
}
