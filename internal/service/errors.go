package service

import (
	"errors"
	"fmt"
)

// TeamNotFoundError reports a team-name query with no match. It is a
// normal result for interactive callers, not a failure of the run.
type TeamNotFoundError struct {
	Query string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("team not found: %s", e.Query)
}

// AsTeamNotFound attempts to unwrap an error into a TeamNotFoundError.
func AsTeamNotFound(err error) (*TeamNotFoundError, bool) {
	var nfErr *TeamNotFoundError
	if errors.As(err, &nfErr) {
		return nfErr, true
	}
	return nil, false
}
