package nft

import (
	"math/big"

	"github.com/x-xyz/nftdapp/domain"
)

// Listing is the raw result of listings(id)
type Listing struct {
	IsListed bool
	Price    *big.Int
	Seller   domain.Address
}
