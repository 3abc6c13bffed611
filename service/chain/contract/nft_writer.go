package contract

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/x-xyz/nftdapp/base/abi"
	"github.com/x-xyz/nftdapp/base/backoff"
	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	bEth "github.com/x-xyz/nftdapp/base/ethereum"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
	"github.com/x-xyz/nftdapp/service/chain"
)

const (
	reasonSubmitFailed  = "submit failed"
	reasonConfirmFailed = "confirmation failed"
	reasonNoSigner      = "no signer"

	defaultPollStart = 500 * time.Millisecond
	defaultPollLimit = 5 * time.Second
)

type NftMarketWriterCfg struct {
	ChainService chain.Client
	Contract     common.Address
	// Marketplace is the operator approved before listing, the collection
	// contract itself when zero
	Marketplace common.Address
	// Signer is nil when the service runs read-only
	Signer *bEth.Signer
	// PollStart and PollLimit bound the exponential receipt polling interval
	PollStart time.Duration
	PollLimit time.Duration
}

type nftMarketWriter struct {
	chainService chain.Client
	abi          ethabi.ABI
	contract     common.Address
	marketplace  common.Address
	signer       *bEth.Signer
	pollStart    time.Duration
	pollLimit    time.Duration
}

func NewNftMarketWriter(cfg *NftMarketWriterCfg) nft.ChainWriter {
	marketplace := cfg.Marketplace
	if marketplace == (common.Address{}) {
		marketplace = cfg.Contract
	}
	pollStart, pollLimit := cfg.PollStart, cfg.PollLimit
	if pollStart <= 0 {
		pollStart = defaultPollStart
	}
	if pollLimit <= 0 {
		pollLimit = defaultPollLimit
	}
	return &nftMarketWriter{
		chainService: cfg.ChainService,
		abi:          baseabi.NftMarketABI,
		contract:     cfg.Contract,
		marketplace:  marketplace,
		signer:       cfg.Signer,
		pollStart:    pollStart,
		pollLimit:    pollLimit,
	}
}

func (w *nftMarketWriter) CanSign(wallet domain.Address) bool {
	if w.signer == nil {
		return false
	}
	return wallet.Equals(domain.AddressFromCommon(w.signer.Address))
}

func (w *nftMarketWriter) transact(ctx bCtx.Ctx, chainId domain.ChainId, id *domain.TokenId, value *big.Int, method string, params ...interface{}) (*types.Transaction, error) {
	if w.signer == nil {
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonNoSigner, Err: domain.ErrNoSigner}
	}
	backend, err := w.chainService.Backend(chainId)
	if err != nil {
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonUnsupportedChain, Err: err}
	}
	opts, err := w.signer.Transactor(int64(chainId))
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("signer.Transactor failed")
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonSubmitFailed, Err: err}
	}
	opts.Context = ctx
	opts.Value = value

	contract := bind.NewBoundContract(w.contract, w.abi, backend, backend, backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"method":  method,
			"tokenId": id,
			"err":     err,
		}).Error("contract.Transact failed")
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonSubmitFailed, Err: err}
	}
	ctx.WithFields(log.Fields{
		"chainId": chainId,
		"method":  method,
		"tokenId": id,
		"tx":      tx.Hash().Hex(),
	}).Info("transaction submitted")
	return tx, nil
}

func (w *nftMarketWriter) Mint(ctx bCtx.Ctx, chainId domain.ChainId, value *big.Int) (*types.Transaction, error) {
	return w.transact(ctx, chainId, nil, value, "mint")
}

func (w *nftMarketWriter) Approve(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId) (*types.Transaction, error) {
	return w.transact(ctx, chainId, id.Ptr(), nil, "approve", w.marketplace, id.BigInt())
}

func (w *nftMarketWriter) ListForSale(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId, priceWei *big.Int) (*types.Transaction, error) {
	return w.transact(ctx, chainId, id.Ptr(), nil, "listNFTForSale", id.BigInt(), priceWei)
}

func (w *nftMarketWriter) CancelListing(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId) (*types.Transaction, error) {
	return w.transact(ctx, chainId, id.Ptr(), nil, "cancelListing", id.BigInt())
}

func (w *nftMarketWriter) Buy(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId, value *big.Int) (*types.Transaction, error) {
	return w.transact(ctx, chainId, id.Ptr(), value, "buyNFT", id.BigInt())
}

// WaitMined polls for the receipt of tx until it is mined or ctx is done. It
// does not look at the receipt status, a reverted transaction is returned
// with a nil error.
func (w *nftMarketWriter) WaitMined(ctx bCtx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error) {
	backend, err := w.chainService.Backend(chainId)
	if err != nil {
		return nil, &domain.ChainCallError{Method: "waitMined", Reason: reasonUnsupportedChain, Err: err}
	}
	b := backoff.NewExponential(w.pollStart, w.pollLimit)
	for {
		receipt, err := backend.TransactionReceipt(ctx, tx.Hash())
		if err == nil {
			return receipt, nil
		}
		if err != ethereum.NotFound {
			ctx.WithFields(log.Fields{
				"tx":  tx.Hash().Hex(),
				"err": err,
			}).Debug("backend.TransactionReceipt failed")
		}
		if err := b.Backoff(ctx); err != nil {
			ctx.WithFields(log.Fields{
				"chainId": chainId,
				"tx":      tx.Hash().Hex(),
				"err":     err,
			}).Error("gave up waiting for receipt")
			return nil, &domain.ChainCallError{Method: "waitMined", Reason: reasonConfirmFailed, Err: err}
		}
	}
}
