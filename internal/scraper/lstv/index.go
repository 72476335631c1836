package lstv

import (
	"strings"

	"github.com/andrewkoo/veesee/internal/models"
)

// Key identifies one match in the index. Date is the UTC kickoff date
// (YYYY-MM-DD) when the source page carried one, otherwise empty —
// LiveSoccerTV's competition overview lists matches without dates.
type Key struct {
	Home string
	Away string
	Date string
}

// Index maps matches to their scraped US broadcaster names.
type Index map[Key][]string

// Add records networks for a match. Existing entries win: the
// competition overview page is scraped first and takes priority over
// daily schedule pages, matching the page freshness order.
func (idx Index) Add(home, away, date string, networks []string) {
	if len(networks) == 0 {
		return
	}
	k := Key{Home: normKey(home), Away: normKey(away), Date: date}
	if _, ok := idx[k]; ok {
		return
	}
	idx[k] = networks
}

// Lookup returns the scraped record for a match, trying the dated key
// first and falling back to the undated one. Absent is a normal result.
func (idx Index) Lookup(home, away, date string) *models.ScrapedRecord {
	h, a := normKey(home), normKey(away)
	if networks, ok := idx[Key{Home: h, Away: a, Date: date}]; ok {
		return &models.ScrapedRecord{Networks: networks}
	}
	if networks, ok := idx[Key{Home: h, Away: a}]; ok {
		return &models.ScrapedRecord{Networks: networks}
	}
	return nil
}

func normKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
