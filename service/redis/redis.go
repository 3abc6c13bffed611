package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/nftdapp/base/ctx"
)

const (
	// Forever stores a key without expiration
	Forever = time.Duration(0)
)

var (
	ErrNotFound = errors.New("redis: key not found")
	ErrNoTTL    = errors.New("redis: key has no ttl")
	ErrNoPool   = errors.New("redis: no pool")
)

// Service is the subset of redis commands the snapshot cache needs
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	GetZip(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetZip(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, ks ...string) (int, error)
	Exists(c ctx.Ctx, key string) (bool, error)
	TTL(c ctx.Ctx, key string) (int, error)
	Name() string
}
