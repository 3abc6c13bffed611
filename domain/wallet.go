package domain

import (
	"math/big"
)

// MintState is the collection wide mint information read from the contract
type MintState struct {
	NextTokenId uint64
	MaxSupply   uint64
	MintPrice   *big.Int
}

// SoldOut reports whether no token can be minted anymore
func (s MintState) SoldOut() bool {
	return s.NextTokenId >= s.MaxSupply
}

// WalletContext is the connected wallet, its network and the mint state known
// when the context was built. It is never mutated; reconnecting or reloading
// the mint state produces a new value.
type WalletContext struct {
	address   Address
	chainId   ChainId
	mintState MintState
}

func NewWalletContext(address Address, chainId ChainId, mintState MintState) WalletContext {
	if mintState.MintPrice != nil {
		mintState.MintPrice = new(big.Int).Set(mintState.MintPrice)
	}
	return WalletContext{
		address:   address.ToLower(),
		chainId:   chainId,
		mintState: mintState,
	}
}

func (w WalletContext) Address() Address {
	return w.address
}

func (w WalletContext) ChainId() ChainId {
	return w.chainId
}

// Connected reports whether a wallet address is present
func (w WalletContext) Connected() bool {
	return !w.address.IsEmpty()
}

func (w WalletContext) MintState() MintState {
	s := w.mintState
	if s.MintPrice != nil {
		s.MintPrice = new(big.Int).Set(s.MintPrice)
	}
	return s
}

// WithMintState returns a copy of the context carrying s
func (w WalletContext) WithMintState(s MintState) WalletContext {
	return NewWalletContext(w.address, w.chainId, s)
}

// SameIdentity reports whether both contexts are for the same wallet on the
// same network, regardless of mint state.
func (w WalletContext) SameIdentity(o WalletContext) bool {
	return w.address.Equals(o.address) && w.chainId == o.chainId
}
