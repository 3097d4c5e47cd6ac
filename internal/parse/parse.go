package parse

import (
	"fmt"
	"sort"
	"strings"
)

// Bovada nests live info under one of several keys depending on the sport
// and the endpoint version. Liveness checks them in this order.
var liveObjectKeys = []string{"liveGame", "liveStatus", "liveData"}

// The score extractor historically probed a different order. Kept as-is:
// changing it changes which object wins when an event carries several.
var scoreObjectKeys = []string{"liveGame", "liveData", "liveStatus"}

// FlattenEvents normalizes the two known top-level payload shapes into a
// flat event list. Most endpoints answer with a list of competitions, each
// holding "events"; some answer with a single object. Anything else is
// treated as "no events", never as an error.
func FlattenEvents(payload any) []map[string]any {
	events := make([]map[string]any, 0)

	if list, ok := asList(payload); ok {
		for _, item := range list {
			competition, ok := asObject(item)
			if !ok {
				continue
			}
			evs, ok := asList(competition["events"])
			if !ok {
				continue
			}
			for _, e := range evs {
				if event, ok := asObject(e); ok {
					events = append(events, event)
				}
			}
		}
		return events
	}

	if obj, ok := asObject(payload); ok {
		evs, ok := asList(obj["events"])
		if !ok {
			return events
		}
		for _, e := range evs {
			if event, ok := asObject(e); ok {
				events = append(events, event)
			}
		}
	}

	return events
}

// IsLive reports whether an event looks in-play. Bovada marks live games in
// several places and none of them reliably; any one signal is enough, no
// signal at all means not live.
func IsLive(event map[string]any) bool {
	status := stringField(event, "status")
	if status == "" {
		status = stringField(event, "state")
	}
	status = strings.ToUpper(status)
	if strings.Contains(status, "LIVE") || strings.Contains(status, "IN_PROGRESS") {
		return true
	}

	if live, ok := event["live"].(bool); ok && live {
		return true
	}

	// A nested live object counts by presence alone. Some payloads ship an
	// empty placeholder, which over-reports; tolerated.
	for _, key := range liveObjectKeys {
		if _, ok := asObject(event[key]); ok {
			return true
		}
	}

	return false
}

// Matchup builds the display title for an event. Competitor names first,
// then the event description, then a literal fallback.
func Matchup(event map[string]any) string {
	if comps, ok := asList(event["competitors"]); ok && len(comps) >= 2 {
		var away, home string
		if c, ok := asObject(comps[0]); ok {
			away = stringField(c, "name")
		}
		if c, ok := asObject(comps[1]); ok {
			home = stringField(c, "name")
		}
		if away != "" && home != "" {
			return away + " vs " + home
		}
	}

	for _, key := range []string{"description", "shortDescription"} {
		if desc := strings.TrimSpace(stringField(event, key)); desc != "" {
			return desc
		}
	}

	return "Unknown matchup"
}

// Score extracts a live score as "away-home". The live object is probed
// first (nested score object, then flat fields), competitors last. Index 0
// is taken as away and 1 as home per Bovada's usual ordering; the feed does
// not actually guarantee that.
func Score(event map[string]any) (string, bool) {
	if live, ok := firstObject(event, scoreObjectKeys...); ok {
		if score, ok := asObject(live["score"]); ok {
			home := firstValue(score, "home", "homeScore")
			away := firstValue(score, "away", "awayScore")
			if home != nil && away != nil {
				return formatValue(away) + "-" + formatValue(home), true
			}
		}

		home := live["homeScore"]
		away := live["awayScore"]
		if home != nil && away != nil {
			return formatValue(away) + "-" + formatValue(home), true
		}
	}

	comps, ok := asList(event["competitors"])
	if !ok || len(comps) < 2 {
		return "", false
	}

	// Every competitor must carry a score, otherwise the whole pattern is
	// rejected - a partial score reads as garbage.
	scores := make([]any, 0, len(comps))
	for _, c := range comps {
		comp, ok := asObject(c)
		if !ok {
			return "", false
		}
		s := firstValue(comp, "score", "points")
		if s == nil {
			return "", false
		}
		scores = append(scores, s)
	}

	return formatValue(scores[0]) + "-" + formatValue(scores[1]), true
}

// MainTotal finds the main game total (Over/Under) inside displayGroups.
// Groups named "Game Lines" are inspected first; the first "Total" market
// that resolves a line wins.
func MainTotal(event map[string]any) (string, bool) {
	displayGroups, ok := asList(event["displayGroups"])
	if !ok {
		return "", false
	}

	// Stable partition: "Game Lines" groups float to the front, relative
	// order inside both halves is preserved.
	groups := make([]any, len(displayGroups))
	copy(groups, displayGroups)
	sort.SliceStable(groups, func(i, j int) bool {
		return groupRank(groups[i]) < groupRank(groups[j])
	})

	for _, g := range groups {
		group, ok := asObject(g)
		if !ok {
			continue
		}
		markets, ok := asList(group["markets"])
		if !ok {
			continue
		}

		for _, m := range markets {
			market, ok := asObject(m)
			if !ok {
				continue
			}
			mdesc := strings.ToLower(strings.TrimSpace(stringField(market, "description")))
			if mdesc != "total" {
				continue
			}

			outcomes, ok := asList(market["outcomes"])
			if !ok || len(outcomes) < 2 {
				continue
			}

			var line, over, under any

			for _, o := range outcomes {
				outcome, ok := asObject(o)
				if !ok {
					continue
				}
				odesc := strings.ToLower(strings.TrimSpace(stringField(outcome, "description")))

				pts := firstValue(outcome, "handicap", "points")
				if pts == nil {
					pts = field(outcome, "price", "handicap")
				}
				if pts != nil {
					line = pts // last outcome wins
				}

				priceAm := field(outcome, "price", "american")
				if strings.Contains(odesc, "over") {
					over = priceAm
				} else if strings.Contains(odesc, "under") {
					under = priceAm
				}
			}

			if line == nil {
				// Sometimes the line sits at market level.
				line = firstValue(market, "handicap", "points")
			}
			if line == nil {
				continue
			}

			if over != nil && under != nil {
				return fmt.Sprintf("O/U %s (O %s, U %s)", formatValue(line), formatValue(over), formatValue(under)), true
			}
			return "O/U " + formatValue(line), true
		}
	}

	return "", false
}

func groupRank(v any) int {
	if g, ok := asObject(v); ok && stringField(g, "description") == "Game Lines" {
		return 0
	}
	return 1
}
