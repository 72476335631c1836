package models

import "time"

// Team is a Premier League club as reported by football-data.org.
// Teams are immutable once loaded.
type Team struct {
	ID        int
	Name      string
	ShortName string
	TLA       string
	Crest     string
}

// MatchStatus values mirror the football-data.org status field.
const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
)

// Match is a single fixture. Broadcast is nil until the resolution
// pipeline has run; everything else is immutable after mapping.
type Match struct {
	ID        int
	UTCDate   time.Time
	Status    string
	Matchday  int
	HomeTeam  Team
	AwayTeam  Team
	HomeScore *int
	AwayScore *int
	Broadcast *BroadcastAssignment
}

// Upcoming reports whether the match is still to be played as of now.
func (m Match) Upcoming(now time.Time) bool {
	switch m.Status {
	case StatusScheduled, StatusTimed:
		return !m.UTCDate.Before(now)
	}
	return false
}

// Live reports whether the match is currently in play.
func (m Match) Live() bool {
	return m.Status == StatusInPlay || m.Status == StatusPaused
}

// Title is the "Home vs Away" display string used across surfaces.
func (m Match) Title() string {
	return m.HomeTeam.ShortName + " vs " + m.AwayTeam.ShortName
}

// Channel is one fixed-numbered Heat app channel. Number stays a string
// because the channel list uses it as an opaque label ("870").
type Channel struct {
	Number      string
	Name        string
	Category    string
	HasPlayback bool
}

// Source tags where a BroadcastAssignment came from.
type Source string

const (
	// SourceScraped means the assignment traces to a non-empty scraped
	// broadcaster record.
	SourceScraped Source = "scraped"
	// SourceHeuristic means no scraped record was available and the
	// estimator supplied the broadcaster.
	SourceHeuristic Source = "heuristic"
	// SourceNone means no broadcaster could be determined at all.
	SourceNone Source = "none"
)

// BroadcastAssignment is the resolved answer for one match: which
// broadcaster(s) carry it and on which Heat channels. A known
// broadcaster with an empty channel set is a valid partial result;
// SourceNone always carries an empty assignment.
type BroadcastAssignment struct {
	Source      Source
	Broadcaster string
	Channels    []Channel
}

// Empty reports whether nothing at all was resolved.
func (a BroadcastAssignment) Empty() bool {
	return a.Broadcaster == "" && len(a.Channels) == 0
}

// ScrapedRecord is the raw per-match broadcaster listing obtained from
// a secondary web source. Names are US network names as scraped.
type ScrapedRecord struct {
	Networks []string
}
