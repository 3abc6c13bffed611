package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	messageTemplate := "sign in to the collection as %s"
	privateKey, publicKey, err := GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	message := LoginMessage(messageTemplate, address)
	signature, err := crypto.Sign(accounts.TextHash(message), privateKey)
	assert.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// signature is not consumed by validation
	res, err = ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// incorrect message
	res2, err := ValidateMsgSignature([]byte("654321"), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res2)

	// incorrect signer
	_, pubKey, err := GenerateKey()
	assert.NoError(t, err)
	res3, err := ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*pubKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res3)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	req := require.New(t)
	_, err := ValidateMsgSignature([]byte("msg"), "not-hex", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)
	_, err = ValidateMsgSignature([]byte("msg"), "0x1234", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)
	_, err = ValidateMsgSignature([]byte("msg"), "0x1234", "vitalik")
	req.Error(err)
}

func TestLoginMessage(t *testing.T) {
	req := require.New(t)
	msg := LoginMessage("login %s", "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
	req.Equal("login 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", string(msg))
}
