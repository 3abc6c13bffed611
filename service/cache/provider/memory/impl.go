package memory

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/service/cache/provider"
)

const (
	shards      = 16
	headerBytes = 8
)

// impl keeps values of any size in process. Each value is prefixed with its
// expiry in unix nanoseconds, 0 when it only leaves with the life window.
type impl struct {
	name  string
	cache *bigcache.BigCache
	now   func() time.Time
}

// NewMemory allocates an unbounded in-process store. Entries older than
// lifeWindow are dropped whatever their ttl, a superseded value is released
// at the same point.
func NewMemory(name string, lifeWindow time.Duration) (provider.Provider, error) {
	cfg := bigcache.DefaultConfig(lifeWindow)
	cfg.Shards = shards
	cfg.MaxEntriesInWindow = 256
	cfg.MaxEntrySize = 16 * 1024
	cfg.CleanWindow = time.Minute
	cfg.HardMaxCacheSize = 0
	c, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return &impl{name: name, cache: c, now: time.Now}, nil
}

func MustMemory(name string, lifeWindow time.Duration) provider.Provider {
	p, err := NewMemory(name, lifeWindow)
	if err != nil {
		panic(err)
	}
	return p
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	entry, err := im.cache.Get(key)
	if err == bigcache.ErrEntryNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("bigcache.Get failed")
		return nil, 0, err
	}
	if len(entry) < headerBytes {
		return nil, 0, provider.ErrNotFound
	}
	var left time.Duration
	if expireAt := int64(binary.BigEndian.Uint64(entry[:headerBytes])); expireAt > 0 {
		left = time.Unix(0, expireAt).Sub(im.now())
		if left <= 0 {
			return nil, 0, provider.ErrNotFound
		}
	}
	return entry[headerBytes:], left, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	entry := make([]byte, headerBytes+len(value))
	if ttl > 0 {
		binary.BigEndian.PutUint64(entry[:headerBytes], uint64(im.now().Add(ttl).UnixNano()))
	}
	copy(entry[headerBytes:], value)
	if err := im.cache.Set(key, entry); err != nil {
		c.WithField("err", err).WithField("key", key).Error("bigcache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if err := im.cache.Delete(key); err != nil && err != bigcache.ErrEntryNotFound {
		c.WithField("err", err).WithField("key", key).Error("bigcache.Delete failed")
		return err
	}
	return nil
}
