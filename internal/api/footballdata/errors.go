package footballdata

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError captures 429 responses from football-data.org. The
// free tier allows 10 calls a minute; hitting the limit is fatal for
// the run because a partial fixture list cannot be trusted.
type RateLimitError struct {
	StatusCode int
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("football-data.org rate limited (status=%d, retry after %s)", e.StatusCode, e.RetryAfter)
	}
	return fmt.Sprintf("football-data.org rate limited (status=%d)", e.StatusCode)
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
