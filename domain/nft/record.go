package nft

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/nftdapp/base/price"
	"github.com/x-xyz/nftdapp/domain"
)

type TokenRecord struct {
	TokenId domain.TokenId `json:"tokenId"`
	// Owner is empty when the scan did not determine it
	Owner    domain.Address `json:"owner,omitempty"`
	Metadata Metadata       `json:"metadata"`
	Name     string         `json:"name"`
	Listed   bool           `json:"listed"`
	// Price, PriceWei and Seller are set iff Listed
	Price    *decimal.Decimal `json:"price,omitempty"`
	PriceWei *big.Int         `json:"priceWei,omitempty"`
	Seller   domain.Address   `json:"seller,omitempty"`
}

// NewTokenRecord builds a record from the reads of one token. A listing with
// IsListed unset contributes nothing.
func NewTokenRecord(id domain.TokenId, owner domain.Address, meta Metadata, listing Listing) TokenRecord {
	r := TokenRecord{
		TokenId:  id,
		Owner:    owner.ToLower(),
		Metadata: meta,
		Name:     meta.DisplayName(id),
	}
	if listing.IsListed && listing.Price != nil {
		wei := new(big.Int).Set(listing.Price)
		display := price.FromWei(wei)
		r.Listed = true
		r.PriceWei = wei
		r.Price = &display
		r.Seller = listing.Seller.ToLower()
	}
	return r
}
