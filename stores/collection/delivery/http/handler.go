package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/delivery"
	"github.com/x-xyz/nftdapp/base/metrics"
	"github.com/x-xyz/nftdapp/base/price"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

var met metrics.Service

type handler struct {
	session nft.SessionUseCase
}

// WalletResp is the json view of the current wallet context
type WalletResp struct {
	Address     domain.Address `json:"address"`
	ChainId     domain.ChainId `json:"chainId"`
	Connected   bool           `json:"connected"`
	NextTokenId uint64         `json:"nextTokenId"`
	MaxSupply   uint64         `json:"maxSupply"`
	MintPrice   string         `json:"mintPrice"`
	SoldOut     bool           `json:"soldOut"`
}

func toWalletResp(w domain.WalletContext) WalletResp {
	s := w.MintState()
	return WalletResp{
		Address:     w.Address(),
		ChainId:     w.ChainId(),
		Connected:   w.Connected(),
		NextTokenId: s.NextTokenId,
		MaxSupply:   s.MaxSupply,
		MintPrice:   price.FormatEther(s.MintPrice),
		SoldOut:     s.SoldOut(),
	}
}

func New(e *echo.Echo, session nft.SessionUseCase) {
	met = metrics.New("collection")

	h := &handler{session}

	w := e.Group("/wallet")

	w.GET("", h.getWallet)

	w.POST("/connect", h.connect)

	w.POST("/disconnect", h.disconnect)

	g := e.Group("/collection/:mode")

	g.GET("", h.getSnapshot)

	g.POST("/refresh", h.refresh)
}

// getWallet
//
//	@Summary	Get wallet context
//	@Tags		wallet
//	@Produce	json
//	@Success	200	{object}	WalletResp
//	@Router		/wallet [get]
func (h *handler) getWallet(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, toWalletResp(h.session.Wallet()))
}

// connect
//
//	@Summary		Connect a wallet
//	@Description	Switch the session to a wallet and chain. Address may be an ENS name, signature proves ownership when given.
//	@Tags			wallet
//	@Accept			json
//	@Produce		json
//	@Param			body	body		nft.ConnectRequest	true	"wallet to connect"
//	@Success		200		{object}	WalletResp
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Router			/wallet/connect [post]
func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := nft.ConnectRequest{}
	if err := c.Bind(&req); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	w, err := h.session.Connect(ctx, req)
	if err != nil {
		ctx.WithField("err", err).Warn("session.Connect failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	met.BumpSum("wallet.connect", 1, "chainId", strconv.Itoa(int(w.ChainId())))

	return delivery.MakeJsonResp(c, http.StatusOK, toWalletResp(w))
}

// disconnect
//
//	@Summary	Disconnect the wallet
//	@Tags		wallet
//	@Produce	json
//	@Success	200	{object}	WalletResp
//	@Router		/wallet/disconnect [post]
func (h *handler) disconnect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	h.session.Disconnect(ctx)

	return delivery.MakeJsonResp(c, http.StatusOK, toWalletResp(h.session.Wallet()))
}

// getSnapshot
//
//	@Summary		Get collection view
//	@Description	Return the last committed snapshot of a view, scanning when none exists yet
//	@Tags			collection
//	@Produce		json
//	@Param			mode	path		string	true	"view"	enums(catalog, owned, marketplace)	example(catalog)
//	@Success		200		{object}	nft.Snapshot
//	@Failure		400
//	@Failure		500
//	@Failure		502
//	@Router			/collection/{mode} [get]
func (h *handler) getSnapshot(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	mode, err := nft.ParseScanMode(c.Param("mode"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	snap, err := h.session.Snapshot(ctx, mode)
	if err != nil {
		ctx.WithField("err", err).Warn("session.Snapshot failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, snap)
}

// refresh
//
//	@Summary	Rescan a collection view
//	@Tags		collection
//	@Produce	json
//	@Param		mode	path		string	true	"view"	enums(catalog, owned, marketplace)	example(owned)
//	@Success	200		{object}	nft.Snapshot
//	@Failure	400
//	@Failure	409
//	@Failure	500
//	@Failure	502
//	@Router		/collection/{mode}/refresh [post]
func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	mode, err := nft.ParseScanMode(c.Param("mode"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	snap, err := h.session.Refresh(ctx, mode)
	if err != nil {
		ctx.WithField("err", err).Warn("session.Refresh failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, snap)
}
