package http

import (
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftdapp/base/validator"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
	"github.com/x-xyz/nftdapp/domain/nft/mocks"
	"github.com/x-xyz/nftdapp/middleware"
)

const walletA = domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")

type handlerSuite struct {
	suite.Suite

	e       *echo.Echo
	session *mocks.SessionUseCase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.session = &mocks.SessionUseCase{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(goValidator.New())
	s.e.Use(middleware.InitMiddleware("").AddContext())
	New(s.e, s.session)
}

func (s *handlerSuite) TearDownTest() {
	s.session.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestGetWallet() {
	w := domain.NewWalletContext(walletA, 31337, domain.MintState{NextTokenId: 10, MaxSupply: 10, MintPrice: big.NewInt(50000000000000000)})
	s.session.On("Wallet").Return(w).Once()

	rec := s.do(http.MethodGet, "/wallet", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","data":{
		"address":"0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266","chainId":31337,"connected":true,
		"nextTokenId":10,"maxSupply":10,"mintPrice":"0.05","soldOut":true}}`, rec.Body.String())
}

func (s *handlerSuite) TestConnect() {
	w := domain.NewWalletContext(walletA, 31337, domain.MintState{MaxSupply: 10})
	s.session.On("Connect", mock.Anything, nft.ConnectRequest{Address: "alice.eth", ChainId: 31337}).Return(w, nil).Once()

	rec := s.do(http.MethodPost, "/wallet/connect", `{"address":"alice.eth","chainId":31337}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), string(walletA))
}

func (s *handlerSuite) TestConnectErrors() {
	rec := s.do(http.MethodPost, "/wallet/connect", `{"address":"alice.eth"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/wallet/connect", `{"address":"0x1234","chainId":31337}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.session.AssertNotCalled(s.T(), "Connect", mock.Anything, mock.Anything)

	s.session.On("Connect", mock.Anything, mock.Anything).Return(domain.WalletContext{}, domain.ErrUnsupportedNetwork).Once()
	rec = s.do(http.MethodPost, "/wallet/connect", `{"address":"alice.eth","chainId":56}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.session.On("Connect", mock.Anything, mock.Anything).Return(domain.WalletContext{}, domain.ErrInvalidSignature).Once()
	rec = s.do(http.MethodPost, "/wallet/connect", `{"address":"alice.eth","chainId":31337,"signature":"0x00"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *handlerSuite) TestDisconnect() {
	s.session.On("Disconnect", mock.Anything).Once()
	s.session.On("Wallet").Return(domain.NewWalletContext("", 31337, domain.MintState{})).Once()

	rec := s.do(http.MethodPost, "/wallet/disconnect", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"connected":false`)
}

func (s *handlerSuite) TestGetSnapshot() {
	snap := nft.NewSnapshot(nft.SnapshotId{ChainId: 31337, Mode: nft.ScanModeCatalog}, 2, []nft.TokenRecord{
		nft.NewTokenRecord(1, "", nft.Metadata{}, nft.Listing{}),
		nft.NewTokenRecord(0, "", nft.Metadata{Name: "Tiger"}, nft.Listing{}),
	}, 0, "scan-1", time.Unix(1700000000, 0).UTC())
	s.session.On("Snapshot", mock.Anything, nft.ScanModeCatalog).Return(snap, nil).Once()

	rec := s.do(http.MethodGet, "/collection/catalog", "")
	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, `"scanId":"scan-1"`)
	s.Less(strings.Index(body, `"name":"Tiger"`), strings.Index(body, `"name":"NFT #1"`))
}

func (s *handlerSuite) TestGetSnapshotErrors() {
	rec := s.do(http.MethodGet, "/collection/everything", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	s.session.On("Snapshot", mock.Anything, nft.ScanModeOwned).Return(nil, domain.ErrNoWallet).Once()
	rec = s.do(http.MethodGet, "/collection/owned", "")
	s.Equal(http.StatusBadRequest, rec.Code)

	s.session.On("Snapshot", mock.Anything, nft.ScanModeCatalog).Return(nil, &domain.ChainCallError{Method: "totalSupply", Reason: "call failed"}).Once()
	rec = s.do(http.MethodGet, "/collection/catalog", "")
	s.Equal(http.StatusBadGateway, rec.Code)
}

func (s *handlerSuite) TestRefresh() {
	s.session.On("Refresh", mock.Anything, nft.ScanModeMarketplace).Return(nil, domain.ErrStaleScan).Once()
	rec := s.do(http.MethodPost, "/collection/marketplace/refresh", "")
	s.Equal(http.StatusConflict, rec.Code)

	snap := nft.NewSnapshot(nft.SnapshotId{ChainId: 31337, Mode: nft.ScanModeMarketplace}, 0, nil, 0, "scan-2", time.Unix(0, 0))
	s.session.On("Refresh", mock.Anything, nft.ScanModeMarketplace).Return(snap, nil).Once()
	rec = s.do(http.MethodPost, "/collection/marketplace/refresh", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"records":[]`)
}
