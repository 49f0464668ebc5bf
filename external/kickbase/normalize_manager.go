package kickbase

import (
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/manager"
	"github.com/riskibarqy/fantasy-dashboard/internal/domain/user"
)

func (n Normalizer) Squad(raw any, userID string) manager.Squad {
	obj, _ := asObject(raw)
	owner, ok := obj.child("u", "manager")
	if !ok {
		owner = obj
	}
	squad := manager.Squad{
		ManagerUserID: owner.str("i", "u", "managerUserId"),
		ManagerName:   owner.str("unm", "n", "managerName"),
		ManagerImage:  n.image(owner.str("uim", "managerImage")),
	}
	if userID != "" {
		squad.ManagerUserID = userID
	}
	items, _ := obj.list("it", "players")
	squad.Players = n.players(items, "")
	return squad
}

// Lineup picks the entry for userID out of a team-center ranking list.
// ok is false when the user has no entry.
func (n Normalizer) Lineup(entries []any, userID string) (manager.Lineup, bool) {
	for _, item := range entries {
		entry, isObject := asObject(item)
		if !isObject || entry.str("i", "u", "userId") != userID {
			continue
		}
		return lineupFromEntry(entry, userID), true
	}
	return manager.Lineup{UserID: userID, StartingPlayerIDs: []string{}}, false
}

func lineupFromEntry(entry object, userID string) manager.Lineup {
	slots, _ := entry.list("lp", "startingPlayerIds")
	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		var id string
		if nested, ok := asObject(slot); ok {
			id = nested.str(playerIDKeys...)
		} else {
			id, _ = toText(slot)
		}
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return manager.Lineup{UserID: userID, StartingPlayerIDs: ids}
}

func (n Normalizer) Performance(raw any, userID string) manager.Performance {
	obj, _ := asObject(raw)
	items, _ := obj.list("it", "seasons")
	perf := manager.Performance{UserID: userID, Seasons: make([]manager.SeasonPerformance, 0, len(items))}
	if perf.UserID == "" {
		perf.UserID = obj.str("u", "userId")
	}
	for _, item := range items {
		season, ok := asObject(item)
		if !ok {
			continue
		}
		perf.Seasons = append(perf.Seasons, seasonPerformance(season))
	}
	return perf
}

func seasonPerformance(season object) manager.SeasonPerformance {
	days, _ := season.list("ph", "matchdayPoints")
	out := manager.SeasonPerformance{
		SeasonID:       season.str("sid", "seasonId"),
		SeasonName:     season.str("sn", "seasonName"),
		Points:         season.int64("p", "sp", "points"),
		Placement:      season.int64("pl", "spl", "placement"),
		TeamValue:      season.amount("tv", "teamValue"),
		MatchdayPoints: make([]manager.MatchdayPoints, 0, len(days)),
	}
	for _, item := range days {
		day, ok := asObject(item)
		if !ok {
			continue
		}
		out.MatchdayPoints = append(out.MatchdayPoints, manager.MatchdayPoints{
			Day:    day.int64("day", "md"),
			Points: day.int64("p", "points"),
		})
	}
	return out
}

// Session maps the login payload. The token presence is checked by the caller.
func (n Normalizer) Session(raw any) user.Session {
	obj, _ := asObject(raw)
	profile, _ := obj.child("u", "profile")
	items, _ := obj.list("srvl", "leagues")
	return user.Session{
		Credentials: user.Credentials{BearerToken: obj.str("tkn", "token")},
		Profile: user.Profile{
			ID:           profile.str("id", "i"),
			Name:         profile.str("name", "n"),
			Email:        profile.str("em", "email"),
			ProfileImage: n.image(profile.str("uim", "profile", "profileImage")),
		},
		Leagues: n.leagues(items),
	}
}
