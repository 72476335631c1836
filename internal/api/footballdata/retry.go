package footballdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/andrewkoo/veesee/internal/models"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 500 * time.Millisecond
)

// Source is the fixture-source contract the pipeline consumes.
type Source interface {
	GetTeams(ctx context.Context) ([]models.Team, error)
	GetMatches(ctx context.Context, filter MatchFilter) ([]models.Match, error)
}

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with retry/backoff behavior. Rate-limit
// errors are not retried: hammering a rate-limited API only digs the
// hole deeper, and the run treats them as fatal anyway.
type retryingSource struct {
	inner       Source
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps the given source with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSource(inner Source, logger *slog.Logger, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &retryingSource{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) GetTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := r.retry(ctx, "teams", func() error {
		var err error
		teams, err = r.inner.GetTeams(ctx)
		return err
	})
	return teams, err
}

func (r *retryingSource) GetMatches(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	var matches []models.Match
	err := r.retry(ctx, "matches", func() error {
		var err error
		matches, err = r.inner.GetMatches(ctx, filter)
		return err
	})
	return matches, err
}

func (r *retryingSource) retry(ctx context.Context, what string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if _, ok := AsRateLimitError(err); ok {
			break
		}
		if attempt == r.maxAttempts {
			break
		}

		r.logger.Warn("fixture fetch retry", "what", what, "attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logger.Warn("fixture fetch failed", "what", what, "error", lastErr)
	return lastErr
}
