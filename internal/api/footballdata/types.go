package footballdata

// Wire types for the football-data.org v4 responses. Only the fields
// the mapper reads are declared.

type teamsResponse struct {
	Teams []apiTeam `json:"teams"`
}

type apiTeam struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type matchesResponse struct {
	Matches []apiMatch `json:"matches"`
}

type apiMatch struct {
	ID       int      `json:"id"`
	UTCDate  string   `json:"utcDate"`
	Status   string   `json:"status"`
	Matchday int      `json:"matchday"`
	HomeTeam apiTeam  `json:"homeTeam"`
	AwayTeam apiTeam  `json:"awayTeam"`
	Score    apiScore `json:"score"`
}

type apiScore struct {
	FullTime apiScorePair `json:"fullTime"`
}

type apiScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
