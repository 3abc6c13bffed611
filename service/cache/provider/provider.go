package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/nftdapp/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Provider is a raw byte store. A ttl of 0 keeps the entry until it is
// evicted, Get reports 0 for such entries.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
