package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/delivery"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/middleware"
	"github.com/x-xyz/nftdapp/service/ens"
)

type handler struct {
	ens ens.ENS
}

func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{
		ens,
	}

	g := e.Group("/ens")

	g.GET("/resolve/:name", h.Resolve)

	g.GET("/reverse-resolve/:address", h.ReverseResolve, middleware.IsValidAddress("address"))
}

// Resolve
//
//	@Summary	Resolve an ENS name
//	@Tags		ens
//	@Produce	json
//	@Param		name	path	string	true	"ens name"	example(vitalik.eth)
//	@Success	200
//	@Failure	404
//	@Router		/ens/resolve/{name} [get]
func (h *handler) Resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name string `param:"name" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	address, err := h.ens.Resolve(ctx, p.Name)
	if err != nil {
		ctx.WithFields(log.Fields{
			"name": p.Name,
			"err":  err,
		}).Warn("ens.Resolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address)
}

// ReverseResolve
//
//	@Summary	Reverse resolve an address
//	@Tags		ens
//	@Produce	json
//	@Param		address	path	string	true	"wallet address"	example(0xd8da6bf26964af9d7eed9e03e53415d37aa96045)
//	@Success	200
//	@Failure	400
//	@Failure	404
//	@Router		/ens/reverse-resolve/{address} [get]
func (h *handler) ReverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	name, err := h.ens.ReverseResolve(ctx, p.Address)
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": p.Address,
			"err":     err,
		}).Warn("ens.ReverseResolve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}
