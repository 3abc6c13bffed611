package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 5*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)

	want := []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 5 * time.Millisecond, 5 * time.Millisecond}
	for _, w := range want {
		req.NoError(b.Backoff(context.Background()))
		req.Equal(w, b.NextDuration)
	}

	req.Equal(4, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Millisecond, b.NextDuration)
	req.Equal(time.Duration(0), b.LastDuration)
}

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 0)
	req.Equal(time.Duration(0), b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(time.Millisecond, b.NextDuration)
}

func TestBackoffCancelled(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	req.ErrorIs(b.Backoff(c), context.Canceled)
	req.Equal(time.Hour, b.NextDuration)
	req.Equal(0, b.Count())
}

func TestExponentialDoesNotOverflow(t *testing.T) {
	req := require.New(t)
	req.Equal(8*time.Millisecond, Exponential(3, time.Millisecond))
	req.Equal(maxDuration, Exponential(64, time.Millisecond))
	req.Equal(maxDuration, Exponential(40, time.Hour))

	b := NewExponential(time.Hour, 2*time.Hour)
	for i := 1; i < 80; i++ {
		b.count = i
		req.Equal(2*time.Hour, b.nextDuration())
	}
}
