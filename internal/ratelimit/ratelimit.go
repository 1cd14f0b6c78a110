// Package ratelimit paces streams and throttles periodic events.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces a stream to a number of entries per second.
type Limiter struct {
	limiter *rate.Limiter
}

// New uses 0 or negative limit for no rate limiting.
func New(perSecond float64) *Limiter {
	if perSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	// burst of 1: the first entry passes, the rest are spaced out evenly
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(perSecond), 1)}
}

// Wait blocks until the next entry may pass or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Limit returns the configured rate, or 0 when unlimited.
func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}

// Throttle admits at most one event per period, measured against times
// supplied by the caller. It is not safe for concurrent use.
type Throttle struct {
	period  time.Duration
	limiter *rate.Limiter
}

// NewThrottle returns a throttle whose period starts at now. A non-positive
// period never admits an event.
func NewThrottle(period time.Duration, now time.Time) *Throttle {
	t := &Throttle{period: period}
	t.Reset(now)
	return t
}

// Reset starts a new period at now.
func (t *Throttle) Reset(now time.Time) {
	if t.period <= 0 {
		return
	}
	t.limiter = rate.NewLimiter(rate.Every(t.period), 1)
	// spend the initial token so the first event waits a full period
	t.limiter.AllowN(now, 1)
}

// AllowAt reports whether a full period has passed since the last admitted
// event or Reset, and if so starts the next period at now.
func (t *Throttle) AllowAt(now time.Time) bool {
	if t.period <= 0 {
		return false
	}
	return t.limiter.AllowN(now, 1)
}

func (t *Throttle) Period() time.Duration {
	return t.period
}
