package export

import "github.com/andrewkoo/veesee/internal/models"

// The JSON schema here is the durable contract with the front-end and
// must stay stable across runs.

const timeLayout = "2006-01-02T15:04:05Z"

type teamJSON struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

func newTeamJSON(t models.Team) teamJSON {
	return teamJSON{
		ID:        t.ID,
		Name:      t.Name,
		ShortName: t.ShortName,
		TLA:       t.TLA,
		Crest:     t.Crest,
	}
}

type matchJSON struct {
	ID          int           `json:"id"`
	HomeTeam    string        `json:"home_team"`
	HomeTeamTLA string        `json:"home_team_tla"`
	AwayTeam    string        `json:"away_team"`
	AwayTeamTLA string        `json:"away_team_tla"`
	UTCKickoff  string        `json:"utc_kickoff"`
	Matchday    int           `json:"matchday"`
	Status      string        `json:"status"`
	HomeScore   *int          `json:"home_score"`
	AwayScore   *int          `json:"away_score"`
	Title       string        `json:"title"`
	IsLive      bool          `json:"is_live"`
	Broadcast   broadcastJSON `json:"broadcast"`
}

type broadcastJSON struct {
	Source          string           `json:"source"`
	BroadcasterName string           `json:"broadcaster_name"`
	Channels        []channelRefJSON `json:"channels"`
}

type channelRefJSON struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

func newMatchJSON(m models.Match) matchJSON {
	b := broadcastJSON{
		Source:   string(models.SourceNone),
		Channels: []channelRefJSON{},
	}
	if m.Broadcast != nil {
		b.Source = string(m.Broadcast.Source)
		b.BroadcasterName = m.Broadcast.Broadcaster
		for _, ch := range m.Broadcast.Channels {
			b.Channels = append(b.Channels, channelRefJSON{Number: ch.Number, Label: ch.Name})
		}
	}
	return matchJSON{
		ID:          m.ID,
		HomeTeam:    m.HomeTeam.ShortName,
		HomeTeamTLA: m.HomeTeam.TLA,
		AwayTeam:    m.AwayTeam.ShortName,
		AwayTeamTLA: m.AwayTeam.TLA,
		UTCKickoff:  m.UTCDate.UTC().Format(timeLayout),
		Matchday:    m.Matchday,
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Title:       m.Title(),
		IsLive:      m.Live(),
		Broadcast:   b,
	}
}

type channelJSON struct {
	Number      string `json:"number"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	HasPlayback bool   `json:"has_playback"`
}

func newChannelJSON(ch models.Channel) channelJSON {
	return channelJSON{
		Number:      ch.Number,
		Name:        ch.Name,
		Category:    ch.Category,
		HasPlayback: ch.HasPlayback,
	}
}

type metadataJSON struct {
	ExportedAt string `json:"exported_at"`
	TotalGames int    `json:"total_games"`
	TotalTeams int    `json:"total_teams"`
	LatestGame string `json:"latest_game"`
	Source     string `json:"source"`
}
