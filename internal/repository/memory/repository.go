// Package memory caches per-run upstream data so interactive surfaces
// do not re-fetch on every query. Nothing here survives the process.
package memory

import (
	"sync"
	"time"

	"github.com/andrewkoo/veesee/internal/models"
	"github.com/andrewkoo/veesee/internal/scraper/lstv"
)

type Repository struct {
	mu           sync.RWMutex
	teams        []models.Team
	teamsUpdated time.Time
	index        lstv.Index
	indexUpdated time.Time
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveTeams(teams []models.Team, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = teams
	r.teamsUpdated = now
}

// GetTeams returns the cached teams and when they were stored. A nil
// slice means nothing is cached yet.
func (r *Repository) GetTeams() ([]models.Team, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.teams, r.teamsUpdated
}

func (r *Repository) SaveIndex(idx lstv.Index, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = idx
	r.indexUpdated = now
}

// GetIndex returns the cached scraped broadcast index and when it was
// stored. A nil index means no scrape has run yet.
func (r *Repository) GetIndex() (lstv.Index, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index, r.indexUpdated
}
