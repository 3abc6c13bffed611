package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/nftdapp/base/abi"
	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
	"github.com/x-xyz/nftdapp/service/chain"
)

const (
	reasonCallFailed       = "call failed"
	reasonUnexpectedOutput = "unexpected output"
	reasonUnsupportedChain = "unsupported chain"
)

var errUnexpectedOutput = xerrors.New("unexpected output")

type NftMarketCfg struct {
	ChainService chain.Client
	Contract     common.Address
}

type nftMarketReader struct {
	chainService chain.Client
	abi          ethabi.ABI
	contract     common.Address
}

func NewNftMarketReader(cfg *NftMarketCfg) nft.ChainReader {
	return &nftMarketReader{
		chainService: cfg.ChainService,
		abi:          baseabi.NftMarketABI,
		contract:     cfg.Contract,
	}
}

func (r *nftMarketReader) Supports(chainId domain.ChainId) bool {
	return r.chainService.Supports(chainId)
}

func (r *nftMarketReader) call(ctx bCtx.Ctx, chainId domain.ChainId, id *domain.TokenId, method string, params ...interface{}) ([]interface{}, error) {
	if !r.chainService.Supports(chainId) {
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonUnsupportedChain, Err: chain.ErrUnsupportedChain}
	}
	unpacked, err := r.chainService.Call(ctx, chainId, r.contract, nil, r.abi, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"method":  method,
			"tokenId": id,
			"err":     err,
		}).Warn("chainService.Call failed")
		return nil, &domain.ChainCallError{Method: method, TokenId: id, Reason: reasonCallFailed, Err: err}
	}
	return unpacked, nil
}

func (r *nftMarketReader) callUint(ctx bCtx.Ctx, chainId domain.ChainId, method string, params ...interface{}) (uint64, error) {
	unpacked, err := r.call(ctx, chainId, nil, method, params...)
	if err != nil {
		return 0, err
	}
	v, err := toUint64(unpacked)
	if err != nil {
		return 0, &domain.ChainCallError{Method: method, Reason: reasonUnexpectedOutput, Err: err}
	}
	return v, nil
}

func (r *nftMarketReader) TotalSupply(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error) {
	return r.callUint(ctx, chainId, "totalSupply")
}

func (r *nftMarketReader) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, owner domain.Address) (uint64, error) {
	return r.callUint(ctx, chainId, "balanceOf", owner.ToCommon())
}

func (r *nftMarketReader) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId) (domain.Address, error) {
	method := "ownerOf"
	unpacked, err := r.call(ctx, chainId, id.Ptr(), method, id.BigInt())
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", &domain.ChainCallError{Method: method, TokenId: id.Ptr(), Reason: reasonUnexpectedOutput, Err: errUnexpectedOutput}
	}
	owner, ok := unpacked[0].(common.Address)
	if !ok {
		return "", &domain.ChainCallError{Method: method, TokenId: id.Ptr(), Reason: reasonUnexpectedOutput, Err: errUnexpectedOutput}
	}
	return domain.AddressFromCommon(owner), nil
}

func (r *nftMarketReader) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId) (string, error) {
	method := "tokenURI"
	unpacked, err := r.call(ctx, chainId, id.Ptr(), method, id.BigInt())
	if err != nil {
		return "", err
	}
	if len(unpacked) != 1 {
		return "", &domain.ChainCallError{Method: method, TokenId: id.Ptr(), Reason: reasonUnexpectedOutput, Err: errUnexpectedOutput}
	}
	uri, ok := unpacked[0].(string)
	if !ok {
		return "", &domain.ChainCallError{Method: method, TokenId: id.Ptr(), Reason: reasonUnexpectedOutput, Err: errUnexpectedOutput}
	}
	return uri, nil
}

// Listing returns the zero Listing for tokens that are not for sale
func (r *nftMarketReader) Listing(ctx bCtx.Ctx, chainId domain.ChainId, id domain.TokenId) (nft.Listing, error) {
	method := "listings"
	unpacked, err := r.call(ctx, chainId, id.Ptr(), method, id.BigInt())
	if err != nil {
		return nft.Listing{}, err
	}
	var out struct {
		Seller   common.Address
		Price    *big.Int
		IsListed bool
	}
	if err := r.abi.Methods[method].Outputs.Copy(&out, unpacked); err != nil {
		return nft.Listing{}, &domain.ChainCallError{Method: method, TokenId: id.Ptr(), Reason: reasonUnexpectedOutput, Err: err}
	}
	if !out.IsListed {
		return nft.Listing{}, nil
	}
	return nft.Listing{
		IsListed: true,
		Price:    out.Price,
		Seller:   domain.AddressFromCommon(out.Seller),
	}, nil
}

func (r *nftMarketReader) MintState(ctx bCtx.Ctx, chainId domain.ChainId) (domain.MintState, error) {
	next, err := r.callUint(ctx, chainId, "nextTokenId")
	if err != nil {
		return domain.MintState{}, err
	}
	max, err := r.callUint(ctx, chainId, "maxSupply")
	if err != nil {
		return domain.MintState{}, err
	}
	method := "mintPrice"
	unpacked, err := r.call(ctx, chainId, nil, method)
	if err != nil {
		return domain.MintState{}, err
	}
	if len(unpacked) != 1 {
		return domain.MintState{}, &domain.ChainCallError{Method: method, Reason: reasonUnexpectedOutput, Err: errUnexpectedOutput}
	}
	mintPrice, ok := unpacked[0].(*big.Int)
	if !ok {
		return domain.MintState{}, &domain.ChainCallError{Method: method, Reason: reasonUnexpectedOutput, Err: errUnexpectedOutput}
	}
	return domain.MintState{
		NextTokenId: next,
		MaxSupply:   max,
		MintPrice:   mintPrice,
	}, nil
}

func toUint64(unpacked []interface{}) (uint64, error) {
	if len(unpacked) != 1 {
		return 0, errUnexpectedOutput
	}
	v, ok := unpacked[0].(*big.Int)
	if !ok {
		return 0, errUnexpectedOutput
	}
	if !v.IsUint64() {
		return 0, xerrors.Errorf("%s does not fit uint64", v)
	}
	return v.Uint64(), nil
}
