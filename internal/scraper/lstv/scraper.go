package lstv

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	competitionURL = "https://www.livesoccertv.com/competitions/england/premier-league/"
	scheduleURL    = "https://www.livesoccertv.com/schedules/%s/"
)

// Scraper collects US broadcast data for the upcoming window. Any page
// that cannot be fetched or parsed is skipped with a warning; the worst
// case is an empty index, never an error.
type Scraper struct {
	fetcher    PageFetcher
	windowDays int
	rateLimit  time.Duration
	clock      clockwork.Clock
	logger     *slog.Logger
}

func NewScraper(fetcher PageFetcher, windowDays int, rateLimit time.Duration, clock clockwork.Clock, logger *slog.Logger) *Scraper {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scraper{
		fetcher:    fetcher,
		windowDays: windowDays,
		rateLimit:  rateLimit,
		clock:      clock,
		logger:     logger,
	}
}

// Scrape builds the broadcast index: first the competition overview
// page (next few matchdays), then a daily schedule page per day in the
// window to catch matches the overview does not show yet.
func (s *Scraper) Scrape(ctx context.Context) Index {
	idx := make(Index)

	s.scrapePage(ctx, competitionURL, "", idx)
	before := len(idx)
	s.logger.Info("scraped competition page", "matches", before)

	today := s.clock.Now().UTC()
	for i := 0; i < s.windowDays; i++ {
		if err := s.sleep(ctx); err != nil {
			s.logger.Warn("scrape cancelled", "error", err)
			return idx
		}
		date := today.AddDate(0, 0, i).Format("2006-01-02")
		url := urlForDate(date)
		s.scrapePage(ctx, url, date, idx)
	}
	if added := len(idx) - before; added > 0 {
		s.logger.Info("daily schedule pages added matches", "added", added)
	}

	return idx
}

func (s *Scraper) scrapePage(ctx context.Context, url, date string, idx Index) {
	pageHTML, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn("could not fetch broadcast page", "url", url, "error", err)
		return
	}
	if err := parsePage(pageHTML, date, idx); err != nil {
		s.logger.Warn("could not parse broadcast page", "url", url, "error", err)
	}
}

func (s *Scraper) sleep(ctx context.Context) error {
	if s.rateLimit <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(s.rateLimit):
		return nil
	}
}

func urlForDate(date string) string {
	return fmt.Sprintf(scheduleURL, date)
}
