package ethereum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThrottledClientTokens(t *testing.T) {
	req := require.New(t)
	c := NewTrottledClient(nil, 2)

	t1, err := c.before(context.Background())
	req.NoError(err)
	t2, err := c.before(context.Background())
	req.NoError(err)
	req.NotEqual(t1, t2)
	req.Equal(0, len(c.tokens))

	// no token left, a cancelled context gives up instead of blocking
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	t3, err := c.before(ctx)
	req.ErrorIs(err, context.Canceled)
	req.Equal(0, t3)
	c.after(t3)
	req.Equal(0, len(c.tokens))

	c.after(t1)
	c.after(t2)
	req.Equal(2, len(c.tokens))
}

func TestThrottledClientMinimumOne(t *testing.T) {
	req := require.New(t)
	c := NewTrottledClient(nil, 0)
	req.Equal(1, cap(c.tokens))
}
