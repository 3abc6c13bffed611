package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PODNAME", "")
	t.Setenv("APP_NAME", "")

	host, err := os.Hostname()
	req.NoError(err)
	req.Equal(host, PodName())
	req.Equal("nftdapp", AppName())

	t.Setenv("PODNAME", "dapp-6868d88fbd-bz8zv")
	t.Setenv("APP_NAME", "dapp")
	t.Setenv("ENV_NAME", "sepolia")
	req.Equal("dapp-6868d88fbd-bz8zv", PodName())
	req.Equal("dapp", AppName())
	req.Equal("sepolia", EnvName())
}
