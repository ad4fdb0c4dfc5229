package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter allows up to limit events per window for each key. Buckets refill continuously.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	entries map[string]*entry
	now     func() time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(x *Limiter) {
		x.now = now
	}
}

func New(limit int, window time.Duration, options ...Option) *Limiter {
	x := &Limiter{
		limit:   limit,
		window:  window,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// Allow reports whether one more event for key fits in the budget and consumes it if so.
// A non-positive limit disables limiting.
func (x *Limiter) Allow(key string) bool {
	if x.limit <= 0 {
		return true
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	now := x.now()
	e, ok := x.entries[key]
	if !ok {
		e = &entry{
			limiter: rate.NewLimiter(rate.Every(x.window/time.Duration(x.limit)), x.limit),
		}
		x.entries[key] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Sweep drops keys that have been idle for longer than one window. It returns the number of removed keys.
func (x *Limiter) Sweep() int {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := x.now()
	removed := 0
	for key, e := range x.entries {
		if now.Sub(e.lastSeen) > x.window {
			delete(x.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (x *Limiter) Len() int {
	x.mu.Lock()
	defer x.mu.Unlock()
	return len(x.entries)
}

// Run calls Sweep every interval until ctx is canceled.
func (x *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			x.Sweep()
		}
	}
}
