package nft

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
)

// ChainReader performs single read-only contract calls. Each call is one
// round trip, failures are returned as *domain.ChainCallError and never retried.
type ChainReader interface {
	Supports(chainId domain.ChainId) bool
	TotalSupply(c ctx.Ctx, chainId domain.ChainId) (uint64, error)
	OwnerOf(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId) (domain.Address, error)
	TokenURI(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId) (string, error)
	Listing(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId) (Listing, error)
	BalanceOf(c ctx.Ctx, chainId domain.ChainId, owner domain.Address) (uint64, error)
	MintState(c ctx.Ctx, chainId domain.ChainId) (domain.MintState, error)
}

// ChainWriter submits signed transactions to the collection contract
type ChainWriter interface {
	// CanSign reports whether transactions can be signed for the wallet
	CanSign(wallet domain.Address) bool
	Mint(c ctx.Ctx, chainId domain.ChainId, value *big.Int) (*types.Transaction, error)
	// Approve allows the marketplace to transfer the token
	Approve(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId) (*types.Transaction, error)
	ListForSale(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId, priceWei *big.Int) (*types.Transaction, error)
	CancelListing(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId) (*types.Transaction, error)
	Buy(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId, value *big.Int) (*types.Transaction, error)
	// WaitMined blocks until tx is mined and returns its receipt
	WaitMined(c ctx.Ctx, chainId domain.ChainId, tx *types.Transaction) (*types.Receipt, error)
}

// AggregatorUseCase runs aggregation passes
type AggregatorUseCase interface {
	Scan(c ctx.Ctx, wallet domain.WalletContext, mode ScanMode) (*Snapshot, error)
}

type ConnectRequest struct {
	// Address is a hex address or an ens name
	Address   string         `json:"address" validate:"required,wallet"`
	ChainId   domain.ChainId `json:"chainId" validate:"required"`
	Signature string         `json:"signature,omitempty"`
}

// Refresher re-aggregates every view of the current wallet
type Refresher interface {
	RefreshAll(c ctx.Ctx) error
}

// SessionUseCase owns the current wallet context and the committed snapshots
// built for it.
type SessionUseCase interface {
	Refresher
	Connect(c ctx.Ctx, req ConnectRequest) (domain.WalletContext, error)
	Disconnect(c ctx.Ctx)
	Wallet() domain.WalletContext
	Refresh(c ctx.Ctx, mode ScanMode) (*Snapshot, error)
	// Snapshot returns the latest committed snapshot of mode for the current wallet
	Snapshot(c ctx.Ctx, mode ScanMode) (*Snapshot, error)
	Close()
}

type ActionResult struct {
	TxHash domain.TxHash `json:"txHash"`
	// ApproveTxHash is set for list-for-sale only
	ApproveTxHash domain.TxHash `json:"approveTxHash,omitempty"`
	BlockNumber   uint64        `json:"blockNumber"`
}

// ActionUseCase submits a state changing call, waits for it to be mined and
// triggers a refresh of the collection views.
type ActionUseCase interface {
	Mint(c ctx.Ctx, wallet domain.WalletContext) (*ActionResult, error)
	ListForSale(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId, priceEther string) (*ActionResult, error)
	CancelListing(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId) (*ActionResult, error)
	Buy(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId, priceEther string) (*ActionResult, error)
}
