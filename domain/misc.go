package domain

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func AddressFromCommon(a common.Address) Address {
	return Address(a.Hex()).ToLower()
}

// TokenId is a sequential token id of the collection, in [0, totalSupply)
type TokenId uint64

func (i TokenId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func (i TokenId) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

func (i TokenId) Ptr() *TokenId {
	return &i
}

func ParseTokenId(s string) (TokenId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidTokenId
	}
	return TokenId(v), nil
}

type TxHash string
