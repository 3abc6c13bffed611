package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	hcdomain "github.com/x-xyz/nftdapp/domain/healthcheck"
	"github.com/x-xyz/nftdapp/domain/healthcheck/mocks"
	"github.com/x-xyz/nftdapp/middleware"
)

func TestHealthCheckHandler(t *testing.T) {
	req := require.New(t)
	m := &mocks.HealthCheckUsecase{}
	e := echo.New()
	e.Use(middleware.InitMiddleware("").AddContext())
	New(e, m)

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		return rec
	}

	m.On("Check", mock.Anything).Return(hcdomain.Report{Chain: hcdomain.StatusOk, Cache: hcdomain.StatusDisabled}, nil).Once()
	rec := get()
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"chain":"ok","cache":"disabled"}`, rec.Body.String())

	m.On("Check", mock.Anything).Return(hcdomain.Report{Chain: hcdomain.StatusDown, Cache: hcdomain.StatusOk}, errors.New("connection refused")).Once()
	rec = get()
	req.Equal(http.StatusServiceUnavailable, rec.Code)
	req.JSONEq(`{"chain":"down","cache":"ok"}`, rec.Body.String())

	m.AssertExpectations(t)
}
