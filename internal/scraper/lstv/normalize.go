package lstv

import (
	"regexp"
	"strings"
)

// lstvTeamNames maps LiveSoccerTV team names (lowercased) to
// football-data.org short names so scraped records line up with
// fixtures.
var lstvTeamNames = map[string]string{
	"arsenal":                 "Arsenal",
	"aston villa":             "Aston Villa",
	"afc bournemouth":         "Bournemouth",
	"bournemouth":             "Bournemouth",
	"brentford":               "Brentford",
	"brighton & hove albion":  "Brighton Hove",
	"brighton hove albion":    "Brighton Hove",
	"brighton":                "Brighton Hove",
	"burnley":                 "Burnley",
	"chelsea":                 "Chelsea",
	"crystal palace":          "Crystal Palace",
	"everton":                 "Everton",
	"fulham":                  "Fulham",
	"ipswich town":            "Ipswich",
	"ipswich":                 "Ipswich",
	"leeds united":            "Leeds United",
	"leeds":                   "Leeds United",
	"leicester city":          "Leicester",
	"leicester":               "Leicester",
	"liverpool":               "Liverpool",
	"manchester city":         "Man City",
	"man city":                "Man City",
	"manchester united":       "Man United",
	"man united":              "Man United",
	"newcastle united":        "Newcastle",
	"newcastle":               "Newcastle",
	"nottingham forest":       "Nottingham",
	"nott'm forest":           "Nottingham",
	"southampton":             "Southampton",
	"sunderland":              "Sunderland",
	"tottenham hotspur":       "Tottenham",
	"tottenham":               "Tottenham",
	"west ham united":         "West Ham",
	"west ham":                "West Ham",
	"wolverhampton wanderers": "Wolverhampton",
	"wolves":                  "Wolverhampton",
}

// NormalizeTeam converts a LiveSoccerTV team name to the
// football-data.org short name, falling back to the trimmed input.
func NormalizeTeam(name string) string {
	if short, ok := lstvTeamNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return short
	}
	return strings.TrimSpace(name)
}

// Matches "Arsenal 3 - 0 Chelsea" style titles for played games.
var scoreLineRe = regexp.MustCompile(`^(.+?)\s+\d+\s*-\s*\d+\s+(.+)$`)

// ParseMatchTitle splits a LiveSoccerTV match title into normalized
// (home, away) short names. Handles "Arsenal vs Chelsea" and
// "Arsenal 3 - 0 Chelsea". Returns ok=false for anything else.
func ParseMatchTitle(title string) (home, away string, ok bool) {
	var homeRaw, awayRaw string
	if m := scoreLineRe.FindStringSubmatch(title); m != nil {
		homeRaw, awayRaw = m[1], m[2]
	} else if before, after, found := strings.Cut(title, " vs "); found {
		homeRaw, awayRaw = before, after
	} else {
		return "", "", false
	}
	return NormalizeTeam(homeRaw), NormalizeTeam(awayRaw), true
}
