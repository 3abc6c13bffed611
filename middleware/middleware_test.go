package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftdapp/base/ctx"
)

type middlewareSuite struct {
	suite.Suite

	e *echo.Echo
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	s.e = echo.New()
	m := InitMiddleware("https://dapp.nftdapp.io")
	s.e.Use(m.AddContext())
	s.e.Use(m.ResponseLogger())
	s.e.Use(m.CORS)
	s.e.GET("/requestID", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("ctx").(ctx.Ctx).Value("requestID").(string))
	})
	s.e.GET("/owner/:address", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IsValidAddress("address"))
	s.e.POST("/wallet/connect", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func (s *middlewareSuite) do(method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *middlewareSuite) TestContextCarriesRequestID() {
	s.e.Pre(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderXRequestID, "req-1")
			return next(c)
		}
	})
	rec := s.do(http.MethodGet, "/requestID", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("req-1", rec.Body.String())
}

func (s *middlewareSuite) TestCORS() {
	rec := s.do(http.MethodPost, "/wallet/connect", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("https://dapp.nftdapp.io", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	s.Empty(rec.Header().Get(echo.HeaderAccessControlAllowMethods))

	rec = s.do(http.MethodOptions, "/wallet/connect", map[string]string{
		echo.HeaderAccessControlRequestMethod: http.MethodPost,
	})
	s.Equal(http.StatusNoContent, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	s.Contains(rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderContentType)
}

func (s *middlewareSuite) TestIsValidAddress() {
	rec := s.do(http.MethodGet, "/owner/0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/owner/alice", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *middlewareSuite) TestResponseLoggerSwallowsHandlerError() {
	s.e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "rpc down")
	})
	rec := s.do(http.MethodGet, "/boom", nil)
	s.Equal(http.StatusBadGateway, rec.Code)
}
