// Package service orchestrates fixture retrieval, broadcast
// reconciliation, and the team/"all" query surface.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/andrewkoo/veesee/internal/api/footballdata"
	"github.com/andrewkoo/veesee/internal/broadcast"
	"github.com/andrewkoo/veesee/internal/models"
	"github.com/andrewkoo/veesee/internal/repository/memory"
	"github.com/andrewkoo/veesee/internal/scraper/lstv"
)

const (
	teamsCacheTTL = 24 * time.Hour
	indexCacheTTL = 6 * time.Hour
)

// ScrapeSource produces the scraped broadcast index. It never fails:
// missing data comes back as an empty index.
type ScrapeSource interface {
	Scrape(ctx context.Context) lstv.Index
}

// ScheduleService resolves fixtures to annotated matches and answers
// the team/"all" queries the CLI and bot surfaces expose.
type ScheduleService struct {
	source     footballdata.Source
	scraper    ScrapeSource // nil when scraping is disabled
	repo       *memory.Repository
	reconciler *broadcast.Reconciler
	clock      clockwork.Clock
	logger     *slog.Logger
}

func NewScheduleService(source footballdata.Source, scraper ScrapeSource, repo *memory.Repository, reconciler *broadcast.Reconciler, clock clockwork.Clock, logger *slog.Logger) *ScheduleService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{
		source:     source,
		scraper:    scraper,
		repo:       repo,
		reconciler: reconciler,
		clock:      clock,
		logger:     logger,
	}
}

// Teams returns all league teams, cached for a day.
func (s *ScheduleService) Teams(ctx context.Context) ([]models.Team, error) {
	teams, updated := s.repo.GetTeams()
	if teams != nil && s.clock.Now().Sub(updated) <= teamsCacheTTL {
		return teams, nil
	}

	teams, err := s.source.GetTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching teams: %w", err)
	}
	s.repo.SaveTeams(teams, s.clock.Now())
	return teams, nil
}

// broadcastIndex returns the scraped broadcast index, scraping at most
// once per cache window. Scraping disabled means an empty index.
func (s *ScheduleService) broadcastIndex(ctx context.Context) lstv.Index {
	if s.scraper == nil {
		return nil
	}
	idx, updated := s.repo.GetIndex()
	if idx != nil && s.clock.Now().Sub(updated) <= indexCacheTTL {
		return idx
	}

	s.logger.Info("scraping broadcast listings")
	idx = s.scraper.Scrape(ctx)
	s.logger.Info("scraped broadcast listings", "matches", len(idx))
	s.repo.SaveIndex(idx, s.clock.Now())
	return idx
}

// ResolveAll attaches a broadcast assignment to every fixture,
// preserving the upstream (chronological) order. A fixture with an
// unknown team is logged and still resolved: one bad record must not
// abort the run.
func (s *ScheduleService) ResolveAll(fixtures []models.Match, idx lstv.Index) []models.Match {
	resolved := make([]models.Match, len(fixtures))
	for i, m := range fixtures {
		if unknownTeam(m.HomeTeam) || unknownTeam(m.AwayTeam) {
			s.logger.Warn("fixture has unknown team, resolving anyway",
				"match", m.Title(), "kickoff", m.UTCDate)
		}

		var rec *models.ScrapedRecord
		if idx != nil {
			rec = idx.Lookup(m.HomeTeam.ShortName, m.AwayTeam.ShortName, m.UTCDate.Format("2006-01-02"))
		}

		a := s.reconciler.Reconcile(m, rec)
		m.Broadcast = &a
		resolved[i] = m
	}
	return resolved
}

func unknownTeam(t models.Team) bool {
	return t.ID == 0 || t.Name == "TBD"
}

// AllUpcoming returns every scheduled match with kickoff from now on,
// kickoff-ascending, fully resolved.
func (s *ScheduleService) AllUpcoming(ctx context.Context) ([]models.Match, error) {
	fixtures, err := s.source.GetMatches(ctx, footballdata.MatchFilter{Status: models.StatusScheduled})
	if err != nil {
		return nil, fmt.Errorf("error fetching upcoming matches: %w", err)
	}

	resolved := s.ResolveAll(fixtures, s.broadcastIndex(ctx))

	now := s.clock.Now()
	out := make([]models.Match, 0, len(resolved))
	for _, m := range resolved {
		if m.Upcoming(now) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ForTeam returns the upcoming matches in which the named team plays.
// The name may be a full name, a partial name, or a TLA; an unmatched
// name yields a TeamNotFoundError so interactive callers can re-prompt.
func (s *ScheduleService) ForTeam(ctx context.Context, name string) (models.Team, []models.Match, error) {
	team, err := s.FindTeam(ctx, name)
	if err != nil {
		return models.Team{}, nil, err
	}

	all, err := s.AllUpcoming(ctx)
	if err != nil {
		return models.Team{}, nil, err
	}

	var out []models.Match
	for _, m := range all {
		if m.HomeTeam.ID == team.ID || m.AwayTeam.ID == team.ID {
			out = append(out, m)
		}
	}
	return team, out, nil
}

// AllSeason returns every match of the current season (all statuses),
// fully resolved. Used by the export step.
func (s *ScheduleService) AllSeason(ctx context.Context) ([]models.Match, error) {
	fixtures, err := s.source.GetMatches(ctx, footballdata.MatchFilter{})
	if err != nil {
		return nil, fmt.Errorf("error fetching season matches: %w", err)
	}
	return s.ResolveAll(fixtures, s.broadcastIndex(ctx)), nil
}

// FindTeam matches a search term against team names: exact TLA first,
// then case-insensitive substring, then Levenshtein similarity as a
// typo net.
func (s *ScheduleService) FindTeam(ctx context.Context, name string) (models.Team, error) {
	teams, err := s.Teams(ctx)
	if err != nil {
		return models.Team{}, err
	}

	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return models.Team{}, &TeamNotFoundError{Query: name}
	}

	for _, t := range teams {
		if query == strings.ToLower(t.TLA) {
			return t, nil
		}
	}
	for _, t := range teams {
		if strings.Contains(strings.ToLower(t.Name), query) ||
			strings.Contains(strings.ToLower(t.ShortName), query) {
			return t, nil
		}
	}

	var best *models.Team
	bestScore := 0.0
	const threshold = 0.6
	for i, t := range teams {
		short := strings.ToLower(t.ShortName)
		distance := fuzzy.LevenshteinDistance(query, short)
		maxLen := float64(max(len(query), len(short)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = &teams[i]
		}
	}
	if best == nil {
		return models.Team{}, &TeamNotFoundError{Query: name}
	}
	return *best, nil
}
