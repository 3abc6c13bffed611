package healthcheck

import (
	"github.com/x-xyz/nftdapp/base/ctx"
)

const (
	StatusOk       = "ok"
	StatusDown     = "down"
	StatusDisabled = "disabled"
)

// Report is the per dependency outcome of a health check
type Report struct {
	Chain string `json:"chain"`
	Cache string `json:"cache"`
}

func (r Report) Healthy() bool {
	return r.Chain != StatusDown && r.Cache != StatusDown
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check pings every dependency, err is the first failure
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingChain asks the rpc of the active network for its head block
	PingChain(context ctx.Ctx) error
	// PingCache writes a probe key
	PingCache(context ctx.Ctx) error
	// HasCache is false when snapshots are kept in memory
	HasCache() bool
}
