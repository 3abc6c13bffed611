package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/mocks"
	"github.com/x-xyz/nftdapp/service/chain"
	redisMocks "github.com/x-xyz/nftdapp/service/redis/mocks"
)

func TestPingChain(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	backend := &mocks.EthClientRepo{}
	backend.On("BlockNumber", mock.Anything).Return(uint64(100), nil).Once()
	chainService := chain.NewClientWithBackends(map[domain.ChainId]domain.EthClientRepo{31337: backend})

	req.NoError(New(chainService, 31337, nil).PingChain(c))
	req.ErrorIs(New(chainService, 1, nil).PingChain(c), chain.ErrUnsupportedChain)

	rpcErr := errors.New("connection refused")
	backend.On("BlockNumber", mock.Anything).Return(uint64(0), rpcErr).Once()
	req.ErrorIs(New(chainService, 31337, nil).PingChain(c), rpcErr)
	backend.AssertExpectations(t)
}

func TestPingCache(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	// memory cache only
	memOnly := New(nil, 31337, nil)
	req.False(memOnly.HasCache())
	req.NoError(memOnly.PingCache(c))

	r := &redisMocks.Service{}
	r.On("Set", mock.Anything, "healthcheck:testset", []byte("1"), mock.Anything).Return(nil).Once()
	withRedis := New(nil, 31337, r)
	req.True(withRedis.HasCache())
	req.NoError(withRedis.PingCache(c))
	r.AssertExpectations(t)
}
