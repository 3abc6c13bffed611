package compound

import (
	"time"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/service/cache/provider"
)

// impl reads layers front to back, layer 0 is the fastest
type impl struct {
	layers []provider.Provider
}

// NewCompound returns a provider that answers from the first layer holding
// the key and back fills the layers in front of it
func NewCompound(layers []provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		im.fill(c, idx, key, val, ttl)
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// fill copies a hit found at layer hit into the layers before it. A failed
// fill costs a later miss, the value is still served.
func (im *impl) fill(c ctx.Ctx, hit int, key string, val []byte, ttl time.Duration) {
	for idx := 0; idx < hit; idx++ {
		if err := im.layers[idx].Set(c, key, val, ttl); err != nil {
			c.WithFields(log.Fields{
				"key":   key,
				"layer": idx,
				"err":   err,
			}).Warn("cache fill failed")
		}
	}
}

// Set writes every layer, back to front, so a front layer never holds a value
// the backing layer refused
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for idx := len(im.layers) - 1; idx >= 0; idx-- {
		if err := im.layers[idx].Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

// Del removes key from every layer and reports the first failure
func (im *impl) Del(c ctx.Ctx, key string) error {
	var firstErr error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
