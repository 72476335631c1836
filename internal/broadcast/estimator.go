// Package broadcast resolves which Heat channels carry a match, merging
// scraped broadcaster records with a deterministic heuristic fallback.
package broadcast

import (
	"time"

	"github.com/andrewkoo/veesee/internal/models"
)

// Confidence tiers for heuristic estimates. Ordinal, not probabilities.
const (
	ConfidenceHigh   = 3
	ConfidenceMedium = 2
	ConfidenceLow    = 1
)

// Estimate is a heuristic broadcaster guess for a match with no scraped
// record.
type Estimate struct {
	Broadcaster string
	Confidence  int
}

// Estimator guesses the likely US broadcaster from kickoff slot, day of
// week, and marquee-club involvement. Estimate is pure and total: the
// same match attributes always yield the same result.
type Estimator struct {
	marquee map[int]bool
}

// NewEstimator builds an estimator with the given marquee team ID set.
func NewEstimator(marqueeIDs []int) *Estimator {
	m := make(map[int]bool, len(marqueeIDs))
	for _, id := range marqueeIDs {
		m[id] = true
	}
	return &Estimator{marquee: m}
}

// Marquee reports whether a team is in the configured marquee set.
func (e *Estimator) Marquee(t models.Team) bool {
	return e.marquee[t.ID]
}

// Estimate applies NBC's US EPL broadcast patterns (2022-2028 deal):
// the Saturday 12:30 PM ET slot is the NBC marquee game, Big Six
// clashes land on USA Network, weekend morning windows split between
// USA Network and Peacock, midweek featured games go to USA Network.
//
// ET is approximated as a fixed UTC-5 offset; exact DST boundaries do
// not change which tier a slot falls into.
func (e *Estimator) Estimate(m models.Match) Estimate {
	marqueeClash := e.marquee[m.HomeTeam.ID] && e.marquee[m.AwayTeam.ID]
	hasMarquee := e.marquee[m.HomeTeam.ID] || e.marquee[m.AwayTeam.ID]

	etHour := (m.UTCDate.Hour() - 5 + 24) % 24
	day := m.UTCDate.Weekday()
	weekend := day == time.Saturday || day == time.Sunday
	midweek := day == time.Tuesday || day == time.Wednesday || day == time.Thursday

	switch {
	case weekend && etHour == 12 && m.UTCDate.Minute() >= 15:
		return Estimate{Broadcaster: "NBC (Marquee)", Confidence: ConfidenceHigh}
	case marqueeClash:
		return Estimate{Broadcaster: "USA Network (Big Six)", Confidence: ConfidenceHigh}
	case weekend && etHour >= 7 && etHour <= 10:
		if hasMarquee {
			return Estimate{Broadcaster: "USA Network (Featured)", Confidence: ConfidenceMedium}
		}
		return Estimate{Broadcaster: "Peacock / Sky Sports", Confidence: ConfidenceLow}
	case weekend && etHour >= 11:
		return Estimate{Broadcaster: "USA Network", Confidence: ConfidenceMedium}
	case midweek:
		if hasMarquee {
			return Estimate{Broadcaster: "USA Network (Midweek)", Confidence: ConfidenceMedium}
		}
		return Estimate{Broadcaster: "Peacock / BT Sport", Confidence: ConfidenceLow}
	}

	return Estimate{Broadcaster: "NBC / USA Network", Confidence: ConfidenceLow}
}
