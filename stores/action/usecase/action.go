package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/base/metrics"
	"github.com/x-xyz/nftdapp/base/price"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

const reasonReverted = "reverted"

var errReverted = xerrors.New("transaction reverted")

type ActionUseCaseCfg struct {
	ChainReader nft.ChainReader
	ChainWriter nft.ChainWriter
	// Refresher re-aggregates the views once an action is confirmed
	Refresher nft.Refresher
}

type actionImpl struct {
	chain     nft.ChainReader
	writer    nft.ChainWriter
	refresher nft.Refresher
	met       metrics.Service
}

func NewActionUseCase(cfg *ActionUseCaseCfg) nft.ActionUseCase {
	return &actionImpl{
		chain:     cfg.ChainReader,
		writer:    cfg.ChainWriter,
		refresher: cfg.Refresher,
		met:       metrics.New("action"),
	}
}

func (im *actionImpl) validate(wallet domain.WalletContext) error {
	if !wallet.Connected() {
		return domain.ErrNoWallet
	}
	if !im.chain.Supports(wallet.ChainId()) {
		return domain.ErrUnsupportedNetwork
	}
	if !im.writer.CanSign(wallet.Address()) {
		return domain.ErrNoSigner
	}
	return nil
}

func parsePrice(priceEther string) (*big.Int, error) {
	wei, err := price.ParseEther(priceEther)
	if err != nil || wei.Sign() <= 0 {
		return nil, domain.ErrInvalidPrice
	}
	return wei, nil
}

// confirm submits one transaction and blocks until it is mined. A receipt
// with a failed status is reported as a reverted call.
func (im *actionImpl) confirm(c ctx.Ctx, wallet domain.WalletContext, method string, id *domain.TokenId, submit func() (*types.Transaction, error)) (*types.Receipt, error) {
	tx, err := submit()
	if err != nil {
		return nil, err
	}
	receipt, err := im.writer.WaitMined(c, wallet.ChainId(), tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		c.WithFields(log.Fields{
			"method": method,
			"tx":     tx.Hash().Hex(),
		}).Warn("transaction reverted")
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonReverted, Err: errReverted}
	}
	return receipt, nil
}

// done records the outcome of an action and refreshes the views after a
// confirmed one. A failed refresh does not fail the action.
func (im *actionImpl) done(c ctx.Ctx, action string, err error) {
	if err != nil {
		im.met.BumpSum("action.err", 1, "action", action)
		c.WithFields(log.Fields{
			"action": action,
			"err":    err,
		}).Warn("action failed")
		return
	}
	if err := im.refresher.RefreshAll(c); err != nil {
		c.WithFields(log.Fields{
			"action": action,
			"err":    err,
		}).Warn("refresher.RefreshAll failed")
	}
}

func result(receipt *types.Receipt) *nft.ActionResult {
	r := &nft.ActionResult{TxHash: domain.TxHash(receipt.TxHash.Hex())}
	if receipt.BlockNumber != nil {
		r.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return r
}

func (im *actionImpl) Mint(c ctx.Ctx, wallet domain.WalletContext) (res *nft.ActionResult, err error) {
	defer im.met.BumpTime("action.time", "action", "mint").End()
	c = ctx.WithValues(c, map[string]interface{}{
		"action": "mint",
		"wallet": wallet.Address(),
	})

	if err := im.validate(wallet); err != nil {
		return nil, err
	}
	state := wallet.MintState()
	if state.SoldOut() {
		return nil, domain.ErrSoldOut
	}
	value := state.MintPrice
	if value == nil {
		value = big.NewInt(0)
	}

	defer func() { im.done(c, "mint", err) }()
	receipt, err := im.confirm(c, wallet, "mint", nil, func() (*types.Transaction, error) {
		return im.writer.Mint(c, wallet.ChainId(), value)
	})
	if err != nil {
		return nil, err
	}
	return result(receipt), nil
}

// ListForSale approves the marketplace for id and lists it once the approval
// is mined. A failed approval aborts before the listing is submitted.
func (im *actionImpl) ListForSale(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId, priceEther string) (res *nft.ActionResult, err error) {
	defer im.met.BumpTime("action.time", "action", "list").End()
	c = ctx.WithValues(c, map[string]interface{}{
		"action":  "list",
		"wallet":  wallet.Address(),
		"tokenId": id,
	})

	if err := im.validate(wallet); err != nil {
		return nil, err
	}
	wei, err := parsePrice(priceEther)
	if err != nil {
		return nil, err
	}

	defer func() { im.done(c, "list", err) }()
	approval, err := im.confirm(c, wallet, "approve", id.Ptr(), func() (*types.Transaction, error) {
		return im.writer.Approve(c, wallet.ChainId(), id)
	})
	if err != nil {
		return nil, err
	}
	receipt, err := im.confirm(c, wallet, "listNFTForSale", id.Ptr(), func() (*types.Transaction, error) {
		return im.writer.ListForSale(c, wallet.ChainId(), id, wei)
	})
	if err != nil {
		return nil, err
	}
	res = result(receipt)
	res.ApproveTxHash = domain.TxHash(approval.TxHash.Hex())
	return res, nil
}

func (im *actionImpl) CancelListing(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId) (res *nft.ActionResult, err error) {
	defer im.met.BumpTime("action.time", "action", "cancel").End()
	c = ctx.WithValues(c, map[string]interface{}{
		"action":  "cancel",
		"wallet":  wallet.Address(),
		"tokenId": id,
	})

	if err := im.validate(wallet); err != nil {
		return nil, err
	}

	defer func() { im.done(c, "cancel", err) }()
	receipt, err := im.confirm(c, wallet, "cancelListing", id.Ptr(), func() (*types.Transaction, error) {
		return im.writer.CancelListing(c, wallet.ChainId(), id)
	})
	if err != nil {
		return nil, err
	}
	return result(receipt), nil
}

// Buy pays priceEther, which must be the listed price, for id.
func (im *actionImpl) Buy(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId, priceEther string) (res *nft.ActionResult, err error) {
	defer im.met.BumpTime("action.time", "action", "buy").End()
	c = ctx.WithValues(c, map[string]interface{}{
		"action":  "buy",
		"wallet":  wallet.Address(),
		"tokenId": id,
	})

	if err := im.validate(wallet); err != nil {
		return nil, err
	}
	wei, err := parsePrice(priceEther)
	if err != nil {
		return nil, err
	}

	defer func() { im.done(c, "buy", err) }()
	receipt, err := im.confirm(c, wallet, "buyNFT", id.Ptr(), func() (*types.Transaction, error) {
		return im.writer.Buy(c, wallet.ChainId(), id, wei)
	})
	if err != nil {
		return nil, err
	}
	return result(receipt), nil
}
