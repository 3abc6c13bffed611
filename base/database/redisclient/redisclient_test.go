package redisclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftdapp/base/ctx"
)

func TestPoolSize(t *testing.T) {
	req := require.New(t)

	idle, active := poolSize(0)
	req.Equal(defaultMaxIdle, idle)
	req.Equal(defaultMaxActive, active)

	idle, active = poolSize(8)
	req.Equal(runtime.NumCPU()*8, active)
	req.Equal(active/4, idle)

	_, active = poolSize(0.001)
	req.Equal(1, active)
}

func TestConnectUnreachable(t *testing.T) {
	req := require.New(t)

	// nothing listens on port 1
	_, err := Connect(ctx.Background(), Config{Uri: "127.0.0.1:1", Attempts: 1})
	req.Error(err)
}
