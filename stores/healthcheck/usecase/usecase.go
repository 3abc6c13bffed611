package usecase

import (
	"github.com/x-xyz/nftdapp/base/ctx"
	hcdomain "github.com/x-xyz/nftdapp/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	report := hcdomain.Report{Chain: hcdomain.StatusOk, Cache: hcdomain.StatusDisabled}
	var firstErr error

	if err := im.repo.PingChain(context); err != nil {
		report.Chain = hcdomain.StatusDown
		firstErr = err
	}

	if im.repo.HasCache() {
		report.Cache = hcdomain.StatusOk
		if err := im.repo.PingCache(context); err != nil {
			report.Cache = hcdomain.StatusDown
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return report, firstErr
}
