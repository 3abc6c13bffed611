package contract

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/nftdapp/base/abi"
	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/mocks"
	"github.com/x-xyz/nftdapp/domain/nft"
	"github.com/x-xyz/nftdapp/service/chain"
)

var (
	testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testWallet   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

type nftReaderTestSuite struct {
	suite.Suite

	ctx     bCtx.Ctx
	backend *mocks.EthClientRepo
	reader  nft.ChainReader
}

func TestNftReaderTestSuite(t *testing.T) {
	suite.Run(t, new(nftReaderTestSuite))
}

func (s *nftReaderTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.backend = &mocks.EthClientRepo{}
	chainService := chain.NewClientWithBackends(map[domain.ChainId]domain.EthClientRepo{1: s.backend})
	s.reader = NewNftMarketReader(&NftMarketCfg{ChainService: chainService, Contract: testContract})
}

func (s *nftReaderTestSuite) TearDownTest() {
	s.backend.AssertExpectations(s.T())
}

// expectCall matches a call to method with the given input and answers with
// the abi encoded outputs.
func (s *nftReaderTestSuite) expectCall(method string, args []interface{}, outputs ...interface{}) {
	input, err := baseabi.NftMarketABI.Pack(method, args...)
	s.Require().NoError(err)
	res, err := baseabi.NftMarketABI.Methods[method].Outputs.Pack(outputs...)
	s.Require().NoError(err)
	s.backend.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return *msg.To == testContract && bytes.Equal(msg.Data, input)
	}), (*big.Int)(nil)).Return(res, nil).Once()
}

func (s *nftReaderTestSuite) expectFailure(method string, args []interface{}, err error) {
	input, packErr := baseabi.NftMarketABI.Pack(method, args...)
	s.Require().NoError(packErr)
	s.backend.On("CallContract", mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return bytes.Equal(msg.Data, input)
	}), (*big.Int)(nil)).Return(nil, err).Once()
}

func (s *nftReaderTestSuite) TestTotalSupply() {
	s.expectCall("totalSupply", nil, big.NewInt(3))
	supply, err := s.reader.TotalSupply(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(uint64(3), supply)
}

func (s *nftReaderTestSuite) TestBalanceOf() {
	s.expectCall("balanceOf", []interface{}{testWallet}, big.NewInt(2))
	balance, err := s.reader.BalanceOf(s.ctx, 1, domain.AddressFromCommon(testWallet))
	s.Require().NoError(err)
	s.Equal(uint64(2), balance)
}

func (s *nftReaderTestSuite) TestOwnerOf() {
	s.expectCall("ownerOf", []interface{}{big.NewInt(1)}, testWallet)
	owner, err := s.reader.OwnerOf(s.ctx, 1, 1)
	s.Require().NoError(err)
	s.Equal(domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"), owner)
}

func (s *nftReaderTestSuite) TestOwnerOfFailure() {
	rpcErr := errors.New("execution reverted: ERC721: invalid token ID")
	s.expectFailure("ownerOf", []interface{}{big.NewInt(9)}, rpcErr)
	_, err := s.reader.OwnerOf(s.ctx, 1, 9)

	var callErr *domain.ChainCallError
	s.Require().ErrorAs(err, &callErr)
	s.Equal("ownerOf", callErr.Method)
	s.Equal(domain.TokenId(9), *callErr.TokenId)
	s.ErrorIs(err, rpcErr)
}

func (s *nftReaderTestSuite) TestTokenURI() {
	s.expectCall("tokenURI", []interface{}{big.NewInt(0)}, "ipfs://QmHash/0.json")
	uri, err := s.reader.TokenURI(s.ctx, 1, 0)
	s.Require().NoError(err)
	s.Equal("ipfs://QmHash/0.json", uri)
}

func (s *nftReaderTestSuite) TestListing() {
	s.expectCall("listings", []interface{}{big.NewInt(1)}, testWallet, big.NewInt(50000000000000000), true)
	listing, err := s.reader.Listing(s.ctx, 1, 1)
	s.Require().NoError(err)
	s.True(listing.IsListed)
	s.Equal("50000000000000000", listing.Price.String())
	s.True(listing.Seller.Equals(domain.AddressFromCommon(testWallet)))
}

func (s *nftReaderTestSuite) TestListingNotListed() {
	// a cancelled listing keeps stale values in storage
	s.expectCall("listings", []interface{}{big.NewInt(2)}, testWallet, big.NewInt(7), false)
	listing, err := s.reader.Listing(s.ctx, 1, 2)
	s.Require().NoError(err)
	s.Equal(nft.Listing{}, listing)
}

func (s *nftReaderTestSuite) TestMintState() {
	s.expectCall("nextTokenId", nil, big.NewInt(4))
	s.expectCall("maxSupply", nil, big.NewInt(10))
	s.expectCall("mintPrice", nil, big.NewInt(1000))
	state, err := s.reader.MintState(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(uint64(4), state.NextTokenId)
	s.Equal(uint64(10), state.MaxSupply)
	s.Equal("1000", state.MintPrice.String())
}

func (s *nftReaderTestSuite) TestUnsupportedChain() {
	s.False(s.reader.Supports(56))
	_, err := s.reader.TotalSupply(s.ctx, 56)

	var callErr *domain.ChainCallError
	s.Require().ErrorAs(err, &callErr)
	s.Equal("totalSupply", callErr.Method)
	s.Nil(callErr.TokenId)
	s.ErrorIs(err, chain.ErrUnsupportedChain)
}

func (s *nftReaderTestSuite) TestSupplyOutOfRange() {
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	s.expectCall("totalSupply", nil, huge)
	_, err := s.reader.TotalSupply(s.ctx, 1)
	var callErr *domain.ChainCallError
	s.Require().ErrorAs(err, &callErr)
	s.Equal(reasonUnexpectedOutput, callErr.Reason)
}
