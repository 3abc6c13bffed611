package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	bEth "github.com/x-xyz/nftdapp/base/ethereum"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// MaxInflight bounds concurrent rpc requests per chain
	MaxInflight int
}

type Client interface {
	Supports(chainId domain.ChainId) bool
	Backend(chainId domain.ChainId) (domain.EthClientRepo, error)
	Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
}

type clientImpl struct {
	clients map[domain.ChainId]domain.EthClientRepo
}

// NewClient dials every configured rpc. A chain that fails to dial is left
// out and reported as unsupported, the error is returned for logging only.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[domain.ChainId]domain.EthClientRepo)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = bEth.NewTrottledClient(client, cfg.MaxInflight)
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

// NewClientWithBackends builds a client over already connected backends
func NewClientWithBackends(backends map[domain.ChainId]domain.EthClientRepo) Client {
	clients := make(map[domain.ChainId]domain.EthClientRepo, len(backends))
	for chainId, b := range backends {
		clients[chainId] = b
	}
	return &clientImpl{clients: clients}
}

func (c *clientImpl) Supports(chainId domain.ChainId) bool {
	_, ok := c.clients[chainId]
	return ok
}

func (c *clientImpl) Backend(chainId domain.ChainId) (domain.EthClientRepo, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
