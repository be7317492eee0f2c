// Package ratelimit paces outbound requests to respect the Fingrid Open Data
// API quota (10 requests/minute).
package ratelimit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Pacer enforces a fixed minimum interval between requests. The interval is a
// simple, predictable compliance strategy for a known constant quota, not
// adaptive backoff: a 429 reaching the caller means the policy already failed
// and is treated as user-actionable.
type Pacer struct {
	limiter  *rate.Limiter
	interval time.Duration
	logger   zerolog.Logger
}

// NewPacer creates a pacer with the given inter-request interval. The first
// wait on a fresh pacer returns immediately; subsequent waits block until the
// interval has elapsed since the previous request.
func NewPacer(interval time.Duration, logger zerolog.Logger) *Pacer {
	return &Pacer{
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		interval: interval,
		logger:   logger,
	}
}

// Interval returns the configured inter-request interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks the calling goroutine until the next request is allowed. It
// returns early only when ctx is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter.Tokens() < 1 {
		p.logger.Debug().
			Dur("interval", p.interval).
			Msg("Pacing before next request")
	}
	return p.limiter.Wait(ctx)
}
