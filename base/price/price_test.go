package price

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFromWei(t *testing.T) {
	req := require.New(t)
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	req.True(decimal.NewFromInt(1).Equal(FromWei(oneEther)))
	req.Equal("0.05", FormatEther(big.NewInt(50000000000000000)))
	req.Equal("0", FormatEther(nil))
	req.Equal("0.000000000000000001", FormatEther(big.NewInt(1)))
}

func TestParseEther(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "1", want: "1000000000000000000"},
		{in: "0.05", want: "50000000000000000"},
		{in: "0", want: "0"},
		{in: "0.0000000000000000019", want: "1"},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		v, err := ParseEther(tt.in)
		if tt.wantErr {
			req.Error(err, tt.in)
			continue
		}
		req.NoError(err, tt.in)
		req.Equal(tt.want, v.String(), tt.in)
	}
}

func TestRoundTrip(t *testing.T) {
	req := require.New(t)
	v, ok := new(big.Int).SetString("123456789012345678901", 10)
	req.True(ok)
	back, err := ParseEther(FormatEther(v))
	req.NoError(err)
	req.Equal(0, v.Cmp(back))
}
