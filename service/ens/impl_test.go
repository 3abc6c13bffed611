package ens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/keys"
	"github.com/x-xyz/nftdapp/domain/mocks"
	"github.com/x-xyz/nftdapp/service/cache"
	"github.com/x-xyz/nftdapp/service/cache/provider/primitive"
)

type ensSuite struct {
	suite.Suite

	backend *mocks.EthClientRepo
	cache   cache.Service
	im      *impl
}

func (s *ensSuite) SetupTest() {
	s.backend = &mocks.EthClientRepo{}
	s.cache = cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxEns,
		Cache: primitive.NewPrimitive("ens", 1),
	})
	s.im = New(&Config{Backend: s.backend, Cache: s.cache}).(*impl)
}

func (s *ensSuite) TearDownTest() {
	// every case is answered without touching the chain
	s.backend.AssertExpectations(s.T())
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestResolveHexAddress() {
	res, err := s.im.Resolve(ctx.Background(), " 0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872 ")
	s.Require().NoError(err)
	s.Equal(domain.Address("0x020ca66c30bec2c4fe3861a94e4db4a498a35872"), res)
}

func (s *ensSuite) TestResolveInvalidName() {
	_, err := s.im.Resolve(ctx.Background(), "not-a-name")
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *ensSuite) TestResolveCached() {
	address := domain.Address("0x020ca66c30bec2c4fe3861a94e4db4a498a35872")
	s.Require().NoError(s.cache.Set(ctx.Background(), keys.RedisKey("resolve", "machibigbrother.eth"), address))

	res, err := s.im.Resolve(ctx.Background(), "MachiBigBrother.eth")
	s.Require().NoError(err)
	s.Equal(address, res)
}

func (s *ensSuite) TestReverseResolveCached() {
	address := domain.Address("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	s.Require().NoError(s.cache.Set(ctx.Background(), keys.RedisKey("reverse-resolve", address.ToLowerStr()), "machibigbrother.eth"))

	res, err := s.im.ReverseResolve(ctx.Background(), address)
	s.Require().NoError(err)
	s.Equal("machibigbrother.eth", res)
}
