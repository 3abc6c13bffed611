package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// well known hardhat account #0
const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNewSigner(t *testing.T) {
	req := require.New(t)
	expected := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	s, err := NewSigner(testKey)
	req.NoError(err)
	req.Equal(expected, s.Address)

	s, err = NewSigner("0x" + testKey)
	req.NoError(err)
	req.Equal(expected, s.Address)

	opts, err := s.Transactor(31337)
	req.NoError(err)
	req.Equal(expected, opts.From)
	req.NotNil(opts.Signer)
	req.Nil(opts.Value)

	_, err = NewSigner("zz")
	req.Error(err)
}
