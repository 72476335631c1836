package broadcast

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/andrewkoo/veesee/internal/channels"
	"github.com/andrewkoo/veesee/internal/models"
)

// resolver is one strategy in the reconciliation chain. It returns
// ok=false when it has nothing to contribute, letting the next strategy
// run.
type resolver interface {
	Resolve(m models.Match, rec *models.ScrapedRecord) (models.BroadcastAssignment, bool)
}

// Reconciler merges scraped broadcaster records with heuristic
// estimates, trying an ordered chain of resolvers until one yields a
// non-empty assignment. Scraped data always outranks the heuristic.
type Reconciler struct {
	chain      []resolver
	clock      clockwork.Clock
	windowDays int
	logger     *slog.Logger
}

// NewReconciler wires the standard chain: scraped record first, then
// the heuristic estimator. windowDays is the horizon within which
// scraped data is expected to exist; a miss inside the window is logged
// but is never an error.
func NewReconciler(dir *channels.Directory, est *Estimator, windowDays int, clock clockwork.Clock, logger *slog.Logger) *Reconciler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		chain: []resolver{
			&scrapedResolver{dir: dir},
			&heuristicResolver{dir: dir, est: est},
		},
		clock:      clock,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Reconcile resolves the broadcast assignment for one match. It is
// total: when no strategy resolves anything the result is an empty
// assignment tagged SourceNone, never a fabricated one.
func (r *Reconciler) Reconcile(m models.Match, rec *models.ScrapedRecord) models.BroadcastAssignment {
	if rec == nil || len(rec.Networks) == 0 {
		if days := r.daysUntilKickoff(m); days >= 0 && days <= r.windowDays {
			// Inside the scrape horizon we expected data; its absence is
			// a missed opportunity, not a failure.
			r.logger.Debug("no scraped broadcast record inside scrape window",
				"match", m.Title(), "days_until_kickoff", days)
		}
		rec = nil
	}

	for _, res := range r.chain {
		if a, ok := res.Resolve(m, rec); ok {
			return a
		}
	}
	return models.BroadcastAssignment{Source: models.SourceNone}
}

func (r *Reconciler) daysUntilKickoff(m models.Match) int {
	return int(m.UTCDate.Sub(r.clock.Now()) / (24 * time.Hour))
}

// scrapedResolver translates every scraped broadcaster name through the
// directory and unions their channel sets. A record listing multiple
// broadcasters keeps all of them: downstream consumers see every
// viewing option. A name the directory does not know still keeps the
// broadcaster string with an empty channel set.
type scrapedResolver struct {
	dir *channels.Directory
}

func (s *scrapedResolver) Resolve(_ models.Match, rec *models.ScrapedRecord) (models.BroadcastAssignment, bool) {
	if rec == nil || len(rec.Networks) == 0 {
		return models.BroadcastAssignment{}, false
	}

	var names []string
	seenName := make(map[string]bool)
	var chs []models.Channel
	seenCh := make(map[string]bool)

	for _, network := range rec.Networks {
		network = strings.TrimSpace(network)
		if network == "" {
			continue
		}
		if !seenName[network] {
			seenName[network] = true
			names = append(names, network)
		}
		for _, ch := range s.dir.Lookup(network) {
			if !seenCh[ch.Number] {
				seenCh[ch.Number] = true
				chs = append(chs, ch)
			}
		}
	}
	if len(names) == 0 {
		return models.BroadcastAssignment{}, false
	}

	return models.BroadcastAssignment{
		Source:      models.SourceScraped,
		Broadcaster: strings.Join(names, " / "),
		Channels:    chs,
	}, true
}

// heuristicResolver falls back to the estimator and translates its
// broadcaster through the same directory. The partial-success
// allowance applies to real scraped data only: a guess that maps to no
// channel yields nothing, ending the chain at SourceNone.
type heuristicResolver struct {
	dir *channels.Directory
	est *Estimator
}

func (h *heuristicResolver) Resolve(m models.Match, _ *models.ScrapedRecord) (models.BroadcastAssignment, bool) {
	e := h.est.Estimate(m)
	chs := h.dir.Lookup(e.Broadcaster)
	if len(chs) == 0 {
		return models.BroadcastAssignment{}, false
	}
	return models.BroadcastAssignment{
		Source:      models.SourceHeuristic,
		Broadcaster: e.Broadcaster,
		Channels:    chs,
	}, true
}
