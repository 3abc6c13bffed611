package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftdapp/base/ctx"
	hcdomain "github.com/x-xyz/nftdapp/domain/healthcheck"
	"github.com/x-xyz/nftdapp/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	repo := &mocks.HealthCheckRepo{}
	repo.On("PingChain", mock.Anything).Return(nil).Once()
	repo.On("HasCache").Return(true).Once()
	repo.On("PingCache", mock.Anything).Return(nil).Once()
	report, err := New(repo).Check(c)
	req.NoError(err)
	req.Equal(hcdomain.Report{Chain: hcdomain.StatusOk, Cache: hcdomain.StatusOk}, report)
	req.True(report.Healthy())
	repo.AssertExpectations(t)
}

func TestCheckWithoutCache(t *testing.T) {
	req := require.New(t)

	repo := &mocks.HealthCheckRepo{}
	repo.On("PingChain", mock.Anything).Return(nil).Once()
	repo.On("HasCache").Return(false).Once()
	report, err := New(repo).Check(ctx.Background())
	req.NoError(err)
	req.Equal(hcdomain.StatusDisabled, report.Cache)
	req.True(report.Healthy())
	repo.AssertNotCalled(t, "PingCache", mock.Anything)
}

func TestCheckReportsEveryFailure(t *testing.T) {
	req := require.New(t)

	rpcErr := errors.New("connection refused")
	repo := &mocks.HealthCheckRepo{}
	repo.On("PingChain", mock.Anything).Return(rpcErr).Once()
	repo.On("HasCache").Return(true).Once()
	repo.On("PingCache", mock.Anything).Return(errors.New("i/o timeout")).Once()
	report, err := New(repo).Check(ctx.Background())
	req.ErrorIs(err, rpcErr)
	req.Equal(hcdomain.Report{Chain: hcdomain.StatusDown, Cache: hcdomain.StatusDown}, report)
	req.False(report.Healthy())
	repo.AssertExpectations(t)
}
