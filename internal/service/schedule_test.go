package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/andrewkoo/veesee/internal/api/footballdata"
	"github.com/andrewkoo/veesee/internal/broadcast"
	"github.com/andrewkoo/veesee/internal/channels"
	"github.com/andrewkoo/veesee/internal/models"
	"github.com/andrewkoo/veesee/internal/repository/memory"
	"github.com/andrewkoo/veesee/internal/scraper/lstv"
)

var fixedNow = time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)

type fakeSource struct {
	teams      []models.Team
	matches    []models.Match
	err        error
	teamCalls  int
	matchCalls int
}

func (f *fakeSource) GetTeams(ctx context.Context) ([]models.Team, error) {
	f.teamCalls++
	return f.teams, f.err
}

func (f *fakeSource) GetMatches(ctx context.Context, filter footballdata.MatchFilter) ([]models.Match, error) {
	f.matchCalls++
	return f.matches, f.err
}

type fakeScraper struct {
	idx   lstv.Index
	calls int
}

func (f *fakeScraper) Scrape(ctx context.Context) lstv.Index {
	f.calls++
	return f.idx
}

var (
	arsenal = models.Team{ID: 57, Name: "Arsenal FC", ShortName: "Arsenal", TLA: "ARS"}
	manCity = models.Team{ID: 65, Name: "Manchester City FC", ShortName: "Man City", TLA: "MCI"}
	everton = models.Team{ID: 62, Name: "Everton FC", ShortName: "Everton", TLA: "EVE"}
	fulham  = models.Team{ID: 63, Name: "Fulham FC", ShortName: "Fulham", TLA: "FUL"}
)

func scheduled(id int, kick time.Time, home, away models.Team) models.Match {
	return models.Match{ID: id, UTCDate: kick, Status: models.StatusScheduled, Matchday: 3, HomeTeam: home, AwayTeam: away}
}

func newTestService(src footballdata.Source, scr ScrapeSource) *ScheduleService {
	clock := clockwork.NewFakeClockAt(fixedNow)
	dir := channels.Default()
	rec := broadcast.NewReconciler(dir, broadcast.NewEstimator([]int{57, 61, 64, 65, 66, 73}), 21, clock, nil)
	return NewScheduleService(src, scr, memory.NewRepository(), rec, clock, nil)
}

func TestResolveAllPreservesOrderAndResolvesEveryMatch(t *testing.T) {
	m1 := scheduled(1, fixedNow.AddDate(0, 0, 2), arsenal, manCity)
	m2 := scheduled(2, fixedNow.AddDate(0, 0, 3), everton, fulham)
	s := newTestService(&fakeSource{}, nil)

	resolved := s.ResolveAll([]models.Match{m1, m2}, nil)

	if len(resolved) != 2 || resolved[0].ID != 1 || resolved[1].ID != 2 {
		t.Fatalf("fixture order not preserved: %+v", resolved)
	}
	for _, m := range resolved {
		if m.Broadcast == nil {
			t.Fatalf("match %d has no broadcast assignment", m.ID)
		}
		if m.Broadcast.Source != models.SourceHeuristic {
			t.Fatalf("match %d: expected heuristic with no index, got %s", m.ID, m.Broadcast.Source)
		}
	}
}

func TestResolveAllUsesScrapedIndex(t *testing.T) {
	kick := fixedNow.AddDate(0, 0, 5)
	m := scheduled(1, kick, arsenal, manCity)

	idx := make(lstv.Index)
	idx.Add("Arsenal", "Man City", kick.Format("2006-01-02"), []string{"Sky Sports Premier League"})

	s := newTestService(&fakeSource{}, nil)
	resolved := s.ResolveAll([]models.Match{m}, idx)

	got := resolved[0].Broadcast
	if got.Source != models.SourceScraped {
		t.Fatalf("expected scraped source, got %s", got.Source)
	}
	if len(got.Channels) == 0 || got.Channels[0].Number != "870" {
		t.Fatalf("expected channel 870, got %+v", got.Channels)
	}
}

func TestResolveAllUnknownTeamStillResolved(t *testing.T) {
	m := scheduled(1, fixedNow.AddDate(0, 0, 2), models.Team{ID: 0, Name: "TBD", ShortName: "TBD"}, fulham)
	s := newTestService(&fakeSource{}, nil)

	resolved := s.ResolveAll([]models.Match{m}, nil)
	if len(resolved) != 1 {
		t.Fatalf("match with unknown team was dropped")
	}
	if resolved[0].Broadcast == nil {
		t.Fatal("match with unknown team was not reconciled")
	}
}

func TestAllUpcomingFiltersAndSorts(t *testing.T) {
	past := scheduled(1, fixedNow.AddDate(0, 0, -1), everton, fulham)
	finished := models.Match{ID: 2, UTCDate: fixedNow.AddDate(0, 0, 1), Status: models.StatusFinished, HomeTeam: arsenal, AwayTeam: fulham}
	soon := scheduled(3, fixedNow.AddDate(0, 0, 2), arsenal, manCity)
	later := scheduled(4, fixedNow.AddDate(0, 0, 9), everton, manCity)

	src := &fakeSource{matches: []models.Match{past, finished, soon, later}}
	s := newTestService(src, nil)

	got, err := s.AllUpcoming(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 4 {
		t.Fatalf("unexpected upcoming set: %+v", got)
	}
}

func TestAllUpcomingPropagatesFetchFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	s := newTestService(src, nil)

	if _, err := s.AllUpcoming(context.Background()); err == nil {
		t.Fatal("expected fetch failure to be fatal")
	}
}

func TestForTeamIsCaseInsensitive(t *testing.T) {
	kick := fixedNow.AddDate(0, 0, 2)
	src := &fakeSource{
		teams:   []models.Team{arsenal, everton, fulham, manCity},
		matches: []models.Match{scheduled(1, kick, arsenal, manCity), scheduled(2, kick.Add(time.Hour), everton, fulham)},
	}
	s := newTestService(src, nil)

	_, lower, err := s.ForTeam(context.Background(), "arsenal")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	_, upper, err := s.ForTeam(context.Background(), "Arsenal")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(lower) != 1 || len(upper) != 1 || lower[0].ID != upper[0].ID {
		t.Fatalf("case changed the result: %+v vs %+v", lower, upper)
	}
}

func TestForTeamNotFoundIsTyped(t *testing.T) {
	src := &fakeSource{teams: []models.Team{arsenal, everton}}
	s := newTestService(src, nil)

	_, _, err := s.ForTeam(context.Background(), "Nonexistent FC")
	if err == nil {
		t.Fatal("expected a not-found error")
	}
	nf, ok := AsTeamNotFound(err)
	if !ok {
		t.Fatalf("expected TeamNotFoundError, got %v", err)
	}
	if nf.Query != "Nonexistent FC" {
		t.Fatalf("unexpected query in error: %q", nf.Query)
	}
}

func TestFindTeamByTLAAndFuzzy(t *testing.T) {
	src := &fakeSource{teams: []models.Team{arsenal, everton, fulham, manCity}}
	s := newTestService(src, nil)

	byTLA, err := s.FindTeam(context.Background(), "ars")
	if err != nil || byTLA.ID != arsenal.ID {
		t.Fatalf("expected Arsenal by TLA, got %+v (%v)", byTLA, err)
	}

	// One typo, no substring match: the Levenshtein net catches it.
	fuzzyHit, err := s.FindTeam(context.Background(), "evreton")
	if err != nil || fuzzyHit.ID != everton.ID {
		t.Fatalf("expected Everton by fuzzy match, got %+v (%v)", fuzzyHit, err)
	}
}

func TestTeamsAreCached(t *testing.T) {
	src := &fakeSource{teams: []models.Team{arsenal}}
	s := newTestService(src, nil)

	if _, err := s.Teams(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := s.Teams(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if src.teamCalls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", src.teamCalls)
	}
}

func TestScrapeRunsOncePerWindow(t *testing.T) {
	kick := fixedNow.AddDate(0, 0, 2)
	src := &fakeSource{matches: []models.Match{scheduled(1, kick, arsenal, manCity)}}
	scr := &fakeScraper{idx: make(lstv.Index)}
	s := newTestService(src, scr)

	if _, err := s.AllUpcoming(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := s.AllUpcoming(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if scr.calls != 1 {
		t.Fatalf("expected 1 scrape, got %d", scr.calls)
	}
}
