package repository

import (
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
	"github.com/x-xyz/nftdapp/service/cache"
)

type snapshotRepo struct {
	cache cache.Service
}

// NewSnapshotRepo stores snapshots as json in cache, one entry per SnapshotId
func NewSnapshotRepo(cache cache.Service) nft.SnapshotRepo {
	return &snapshotRepo{cache: cache}
}

func (r *snapshotRepo) Get(c ctx.Ctx, id nft.SnapshotId) (*nft.Snapshot, error) {
	s := &nft.Snapshot{}
	if err := r.cache.Get(c, id.Key(), s); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("cache.Get failed")
		return nil, err
	}
	return s, nil
}

func (r *snapshotRepo) Put(c ctx.Ctx, s *nft.Snapshot) error {
	if err := r.cache.Set(c, s.Id().Key(), s); err != nil {
		c.WithFields(log.Fields{
			"id":  s.Id(),
			"err": err,
		}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (r *snapshotRepo) Del(c ctx.Ctx, id nft.SnapshotId) error {
	if err := r.cache.Del(c, id.Key()); err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("cache.Del failed")
		return err
	}
	return nil
}
