package lstv

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type fakeFetcher struct {
	pages map[string]string // substring of URL -> page
	urls  []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	for key, page := range f.pages {
		if strings.Contains(url, key) {
			return page, nil
		}
	}
	return "", errors.New("not found")
}

func TestScrapeVisitsCompetitionAndDailyPages(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{pages: map[string]string{
		"premier-league": `<a href="/match/1/">Arsenal vs Chelsea</a><a href="/channels/1/">NBC</a>`,
		"2026-08-25":     `<a href="/match/2/">Everton vs Fulham</a><a href="/channels/2/">Peacock</a>`,
	}}
	s := NewScraper(fetcher, 3, 0, clockwork.NewFakeClockAt(now), nil)

	idx := s.Scrape(context.Background())

	if len(fetcher.urls) != 4 {
		t.Fatalf("expected competition page + 3 daily pages, got %v", fetcher.urls)
	}
	if !strings.Contains(fetcher.urls[0], "premier-league") {
		t.Fatalf("competition page must be scraped first, got %s", fetcher.urls[0])
	}
	if !strings.Contains(fetcher.urls[1], "2026-08-24") {
		t.Fatalf("daily pages must start today, got %s", fetcher.urls[1])
	}

	if rec := idx.Lookup("Arsenal", "Chelsea", ""); rec == nil {
		t.Fatal("expected a record from the competition page")
	}
	if rec := idx.Lookup("Everton", "Fulham", "2026-08-25"); rec == nil {
		t.Fatal("expected a record from the daily page")
	}
}

func TestScrapeDegradesToEmptyIndexOnFetchFailure(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{} // every fetch fails
	s := NewScraper(fetcher, 2, 0, clockwork.NewFakeClockAt(now), nil)

	idx := s.Scrape(context.Background())
	if len(idx) != 0 {
		t.Fatalf("expected an empty index, got %v", idx)
	}
}

func TestScrapeStopsOnCancelledContext(t *testing.T) {
	now := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{pages: map[string]string{
		"premier-league": `<a href="/match/1/">Arsenal vs Chelsea</a><a href="/channels/1/">NBC</a>`,
	}}
	s := NewScraper(fetcher, 30, time.Second, clockwork.NewFakeClockAt(now), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	idx := s.Scrape(ctx)
	// The competition page was already fetched; the cancelled context
	// stops the daily loop but the partial index survives.
	if rec := idx.Lookup("Arsenal", "Chelsea", ""); rec == nil {
		t.Fatal("expected the partial index to survive cancellation")
	}
	if len(fetcher.urls) != 1 {
		t.Fatalf("expected only the competition page, got %v", fetcher.urls)
	}
}
