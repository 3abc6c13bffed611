package repository

import (
	"time"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	hcdomain "github.com/x-xyz/nftdapp/domain/healthcheck"
	"github.com/x-xyz/nftdapp/domain/keys"
	"github.com/x-xyz/nftdapp/service/chain"
	"github.com/x-xyz/nftdapp/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	chainService chain.Client
	chainId      domain.ChainId
	redisCache   redis.Service
}

// New creates new healthCheckRepo. redisCache is nil when snapshots are kept
// in memory.
func New(
	chainService chain.Client,
	chainId domain.ChainId,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		chainService: chainService,
		chainId:      chainId,
		redisCache:   redisCache,
	}
}

func (im *impl) PingChain(context ctx.Ctx) error {
	backend, err := im.chainService.Backend(im.chainId)
	if err != nil {
		context.WithField("chainId", im.chainId).Error("active network not connected")
		return err
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := backend.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("ping rpc error")
		return err
	}
	return nil
}

func (im *impl) HasCache() bool {
	return im.redisCache != nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
