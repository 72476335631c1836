package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/andrewkoo/veesee/internal/models"
)

func sampleData() ([]models.Team, []models.Match, []models.Channel) {
	arsenal := models.Team{ID: 57, Name: "Arsenal FC", ShortName: "Arsenal", TLA: "ARS"}
	chelsea := models.Team{ID: 61, Name: "Chelsea FC", ShortName: "Chelsea", TLA: "CHE"}

	usa := models.Channel{Number: "174", Name: "USA Network", Category: "National", HasPlayback: true}
	sky := models.Channel{Number: "870", Name: "Sky Sports Premier League", Category: "Sports"}

	match := models.Match{
		ID:       1001,
		UTCDate:  time.Date(2026, 9, 5, 17, 30, 0, 0, time.UTC),
		Status:   models.StatusScheduled,
		Matchday: 3,
		HomeTeam: arsenal,
		AwayTeam: chelsea,
		Broadcast: &models.BroadcastAssignment{
			Source:      models.SourceScraped,
			Broadcaster: "NBC",
			Channels:    []models.Channel{usa},
		},
	}

	return []models.Team{arsenal, chelsea}, []models.Match{match}, []models.Channel{usa, sky}
}

func export(t *testing.T, dir string) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 24, 6, 30, 0, 0, time.UTC))
	e := NewExporter(dir, clock, nil)

	teams, matches, chs := sampleData()
	if err := e.Export(teams, matches, chs); err != nil {
		t.Fatalf("export failed: %v", err)
	}
}

func TestExportWritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	export(t, dir)

	for _, name := range []string{"teams.json", "schedule.json", "channels.json", "metadata.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func TestExportIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	export(t, dir)
	first := readAll(t, dir)
	export(t, dir)
	second := readAll(t, dir)

	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Fatalf("%s changed between identical runs", name)
		}
	}
}

func TestExportScheduleSchema(t *testing.T) {
	dir := t.TempDir()
	export(t, dir)

	raw, err := os.ReadFile(filepath.Join(dir, "schedule.json"))
	if err != nil {
		t.Fatalf("reading schedule: %v", err)
	}

	var doc []map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("schedule.json is not valid JSON: %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("expected 1 match, got %d", len(doc))
	}

	m := doc[0]
	for _, key := range []string{"home_team", "away_team", "utc_kickoff", "matchday", "status", "broadcast"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("schedule entry missing %q: %v", key, m)
		}
	}
	if m["utc_kickoff"] != "2026-09-05T17:30:00Z" {
		t.Fatalf("unexpected kickoff %v", m["utc_kickoff"])
	}

	b, ok := m["broadcast"].(map[string]any)
	if !ok {
		t.Fatalf("broadcast is not an object: %v", m["broadcast"])
	}
	if b["source"] != "scraped" || b["broadcaster_name"] != "NBC" {
		t.Fatalf("unexpected broadcast: %v", b)
	}
	chs, ok := b["channels"].([]any)
	if !ok || len(chs) != 1 {
		t.Fatalf("unexpected broadcast channels: %v", b["channels"])
	}
	ch := chs[0].(map[string]any)
	if ch["number"] != "174" || ch["label"] != "USA Network" {
		t.Fatalf("unexpected channel ref: %v", ch)
	}
}

func TestExportUnresolvedMatchHasNoneSource(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 24, 6, 30, 0, 0, time.UTC))
	e := NewExporter(dir, clock, nil)

	m := models.Match{ID: 1, UTCDate: time.Date(2026, 9, 5, 14, 0, 0, 0, time.UTC), Status: models.StatusScheduled}
	if err := e.Export(nil, []models.Match{m}, nil); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "schedule.json"))
	if err != nil {
		t.Fatalf("reading schedule: %v", err)
	}
	var doc []struct {
		Broadcast struct {
			Source   string `json:"source"`
			Channels []any  `json:"channels"`
		} `json:"broadcast"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("schedule.json is not valid JSON: %v", err)
	}
	if doc[0].Broadcast.Source != "none" {
		t.Fatalf("expected none source, got %q", doc[0].Broadcast.Source)
	}
	if len(doc[0].Broadcast.Channels) != 0 {
		t.Fatalf("expected empty channels, got %v", doc[0].Broadcast.Channels)
	}
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	out := make(map[string][]byte)
	for _, name := range []string{"teams.json", "schedule.json", "channels.json", "metadata.json"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		out[name] = raw
	}
	return out
}
