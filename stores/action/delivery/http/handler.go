package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/delivery"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

type handler struct {
	session nft.SessionUseCase
	action  nft.ActionUseCase
}

type tokenPayload struct {
	TokenId *domain.TokenId `json:"tokenId" validate:"required"`
}

type pricedPayload struct {
	TokenId *domain.TokenId `json:"tokenId" validate:"required"`
	// Price is a decimal ether amount
	Price string `json:"price" validate:"required"`
}

// New registers the action routes. Every action runs for the wallet the
// session is connected with.
func New(e *echo.Echo, session nft.SessionUseCase, action nft.ActionUseCase) {
	h := &handler{session, action}

	g := e.Group("/actions")

	g.POST("/mint", h.mint)

	g.POST("/list", h.list)

	g.POST("/cancel", h.cancel)

	g.POST("/buy", h.buy)
}

func (h *handler) bind(c echo.Context, p interface{}) error {
	if err := c.Bind(p); err != nil {
		return err
	}
	return c.Validate(p)
}

// mint
//
//	@Summary		Mint a token
//	@Description	Pay the mint price from the connected wallet
//	@Tags			actions
//	@Produce		json
//	@Success		200	{object}	nft.ActionResult
//	@Failure		400
//	@Failure		500
//	@Failure		502
//	@Router			/actions/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.action.Mint(ctx, h.session.Wallet())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// list
//
//	@Summary		List a token for sale
//	@Description	Approve the marketplace, then list the token at price
//	@Tags			actions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		pricedPayload	true	"token and price in ether"
//	@Success		200		{object}	nft.ActionResult
//	@Failure		400
//	@Failure		500
//	@Failure		502
//	@Router			/actions/list [post]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := pricedPayload{}
	if err := h.bind(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.action.ListForSale(ctx, h.session.Wallet(), *p.TokenId, p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// cancel
//
//	@Summary	Cancel a listing
//	@Tags		actions
//	@Accept		json
//	@Produce	json
//	@Param		body	body		tokenPayload	true	"listed token"
//	@Success	200		{object}	nft.ActionResult
//	@Failure	400
//	@Failure	500
//	@Failure	502
//	@Router		/actions/cancel [post]
func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := tokenPayload{}
	if err := h.bind(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.action.CancelListing(ctx, h.session.Wallet(), *p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// buy
//
//	@Summary	Buy a listed token
//	@Tags		actions
//	@Accept		json
//	@Produce	json
//	@Param		body	body		pricedPayload	true	"token and listed price in ether"
//	@Success	200		{object}	nft.ActionResult
//	@Failure	400
//	@Failure	500
//	@Failure	502
//	@Router		/actions/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := pricedPayload{}
	if err := h.bind(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.action.Buy(ctx, h.session.Wallet(), *p.TokenId, p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
