package footballdata

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrewkoo/veesee/internal/models"
)

// MatchFilter narrows a GetMatches call. Zero values mean "no filter".
type MatchFilter struct {
	Status   string
	Matchday int
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
}

// GetTeams returns all teams in the configured competition's current
// season, sorted by name.
func (c *Client) GetTeams(ctx context.Context) ([]models.Team, error) {
	var resp teamsResponse
	endpoint := fmt.Sprintf("/competitions/%s/teams", c.Config.Competition)
	if err := c.get(ctx, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	teams := make([]models.Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		teams = append(teams, mapTeam(t))
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

// GetMatches returns competition matches sorted by kickoff time.
// Broadcast assignments are left unresolved.
func (c *Client) GetMatches(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	params := map[string]string{}
	if filter.Status != "" {
		params["status"] = filter.Status
	}
	if filter.Matchday > 0 {
		params["matchday"] = fmt.Sprintf("%d", filter.Matchday)
	}
	if filter.DateFrom != "" {
		params["dateFrom"] = filter.DateFrom
	}
	if filter.DateTo != "" {
		params["dateTo"] = filter.DateTo
	}

	var resp matchesResponse
	endpoint := fmt.Sprintf("/competitions/%s/matches", c.Config.Competition)
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, fmt.Errorf("fetching matches: %w", err)
	}

	matches := make([]models.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		mapped, err := mapMatch(m)
		if err != nil {
			return nil, fmt.Errorf("mapping match %d: %w", m.ID, err)
		}
		matches = append(matches, mapped)
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].UTCDate.Before(matches[j].UTCDate) })
	return matches, nil
}
