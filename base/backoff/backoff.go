// Package backoff sleeps between attempts of a polling or retry loop.
package backoff

import (
	"context"
	"math"
	"time"
)

const maxDuration = time.Duration(math.MaxInt64)

// Strategy returns the wait before attempt n+1, start is the first wait
type Strategy func(n int, start time.Duration) time.Duration

// Backoff is not safe for concurrent use
type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     Strategy
}

// NewBackoff caps every wait at limit, 0 means uncapped
func NewBackoff(strategy Strategy, start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.nextDuration()
}

// Count is the number of completed waits
func (b *Backoff) Count() int {
	return b.count
}

// Backoff sleeps NextDuration. It returns the context error, leaving the
// schedule untouched, when ctx ends first.
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.NextDuration)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.nextDuration()
	return nil
}

func (b *Backoff) nextDuration() time.Duration {
	d := b.strategy(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

// Exponential doubles the wait, starting at start
func Exponential(n int, start time.Duration) time.Duration {
	d := start << uint(n)
	if d < 0 || d>>uint(n) != start {
		return maxDuration
	}
	return d
}

// Linear waits n times start, so the first attempt is immediate
func Linear(n int, start time.Duration) time.Duration {
	return time.Duration(n) * start
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(Exponential, start, limit)
}

func NewLinear(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(Linear, start, limit)
}
