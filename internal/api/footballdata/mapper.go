package footballdata

import (
	"time"

	"github.com/andrewkoo/veesee/internal/models"
)

func mapTeam(t apiTeam) models.Team {
	name := t.Name
	if name == "" {
		name = "TBD"
	}
	short := t.ShortName
	if short == "" {
		short = name
	}
	return models.Team{
		ID:        t.ID,
		Name:      name,
		ShortName: short,
		TLA:       t.TLA,
		Crest:     t.Crest,
	}
}

func mapMatch(m apiMatch) (models.Match, error) {
	utcDate, err := time.Parse("2006-01-02T15:04:05Z", m.UTCDate)
	if err != nil {
		return models.Match{}, err
	}

	status := m.Status
	if status == "" {
		status = "UNKNOWN"
	}

	return models.Match{
		ID:        m.ID,
		UTCDate:   utcDate,
		Status:    status,
		Matchday:  m.Matchday,
		HomeTeam:  mapTeam(m.HomeTeam),
		AwayTeam:  mapTeam(m.AwayTeam),
		HomeScore: m.Score.FullTime.Home,
		AwayScore: m.Score.FullTime.Away,
	}, nil
}
