// Package price converts between on-chain wei amounts and decimal ether amounts.
package price

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// EtherDecimals is the number of decimals of the native token
const EtherDecimals = 18

var ErrNegative = xerrors.New("negative amount")

// FromWei formats a wei amount as ether. nil is zero.
func FromWei(value *big.Int) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -EtherDecimals)
}

// FormatEther renders a wei amount as an ether string without trailing zeros.
func FormatEther(value *big.Int) string {
	return FromWei(value).String()
}

// ToWei converts an ether amount to wei. Digits beyond wei precision are
// truncated.
func ToWei(ether decimal.Decimal) (*big.Int, error) {
	if ether.IsNegative() {
		return nil, ErrNegative
	}
	return ether.Shift(EtherDecimals).BigInt(), nil
}

// ParseEther parses a decimal ether string into wei.
func ParseEther(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, xerrors.Errorf("invalid ether amount %q: %w", s, err)
	}
	return ToWei(d)
}
