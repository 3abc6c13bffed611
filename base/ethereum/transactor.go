package ethereum

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// Signer holds a private key able to sign transactions for a single address.
type Signer struct {
	key     *ecdsa.PrivateKey
	Address common.Address
}

// NewSigner parses a hex encoded private key, with or without 0x prefix.
func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", err)
	}
	return &Signer{
		key:     key,
		Address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Transactor returns fresh transact options bound to chainId. Callers set
// Context and Value per transaction.
func (s *Signer) Transactor(chainId int64) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(s.key, big.NewInt(chainId))
}
