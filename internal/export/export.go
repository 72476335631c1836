// Package export writes the resolved schedule to flat JSON files for
// the static front-end. The files are the only durable artifact of a
// run and are fully overwritten each time.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"

	"github.com/andrewkoo/veesee/internal/models"
)

// Exporter serializes teams, matches and channels into the output
// directory. Serialization is deterministic: identical inputs produce
// byte-identical teams.json, schedule.json and channels.json, which is
// what the automated update workflow diffs to decide whether to
// publish. Only metadata.json carries a timestamp.
type Exporter struct {
	outputDir string
	clock     clockwork.Clock
	logger    *slog.Logger
}

func NewExporter(outputDir string, clock clockwork.Clock, logger *slog.Logger) *Exporter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{outputDir: outputDir, clock: clock, logger: logger}
}

// Export writes teams.json, schedule.json, channels.json and
// metadata.json.
func (e *Exporter) Export(teams []models.Team, matches []models.Match, channels []models.Channel) error {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	teamsDoc := make([]teamJSON, 0, len(teams))
	for _, t := range teams {
		teamsDoc = append(teamsDoc, newTeamJSON(t))
	}

	scheduleDoc := make([]matchJSON, 0, len(matches))
	latestGame := ""
	for _, m := range matches {
		mj := newMatchJSON(m)
		if mj.UTCKickoff > latestGame {
			latestGame = mj.UTCKickoff
		}
		scheduleDoc = append(scheduleDoc, mj)
	}

	channelsDoc := make([]channelJSON, 0, len(channels))
	for _, ch := range channels {
		channelsDoc = append(channelsDoc, newChannelJSON(ch))
	}

	meta := metadataJSON{
		ExportedAt: e.clock.Now().UTC().Format(timeLayout),
		TotalGames: len(scheduleDoc),
		TotalTeams: len(teamsDoc),
		LatestGame: latestGame,
		Source:     "football-data.org API",
	}

	files := []struct {
		name string
		data any
	}{
		{"teams.json", teamsDoc},
		{"schedule.json", scheduleDoc},
		{"channels.json", channelsDoc},
		{"metadata.json", meta},
	}
	for _, f := range files {
		path := filepath.Join(e.outputDir, f.name)
		n, err := writeJSON(path, f.data)
		if err != nil {
			return err
		}
		e.logger.Info("wrote export file", "path", path, "bytes", n)
	}

	e.logger.Info("export complete", "games", meta.TotalGames, "teams", meta.TotalTeams, "latest_game", latestGame)
	return nil
}

func writeJSON(path string, v any) (int, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return len(raw), nil
}
