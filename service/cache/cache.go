package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
	// ErrBadContainer is returned when a loaded value does not fit the container
	ErrBadContainer = errors.New("Cache container mismatch")
)

type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed cache over a byte level provider. Keys are prefixed
// with the configured Pfx.
type Service interface {
	// GetByFunc loads key into container, calling getter and caching its
	// result on a miss
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	// Ttl of 0 keeps entries until they are deleted or evicted
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
