package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/base/metrics"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

type AggregatorUseCaseCfg struct {
	ChainReader nft.ChainReader
	MetadataUC  nft.MetadataUseCase
}

type aggregatorImpl struct {
	chain    nft.ChainReader
	metadata nft.MetadataUseCase
	met      metrics.Service
	timeNow  func() time.Time
}

func NewAggregator(cfg *AggregatorUseCaseCfg) nft.AggregatorUseCase {
	return &aggregatorImpl{
		chain:    cfg.ChainReader,
		metadata: cfg.MetadataUC,
		met:      metrics.New("collection"),
		timeNow:  time.Now,
	}
}

// visitor reads one token for a scan mode. rec is nil when the token is not
// part of the view, failed is set when a read error dropped the token.
type visitor func(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId) (rec *nft.TokenRecord, failed bool)

func (im *aggregatorImpl) visitorOf(mode nft.ScanMode) visitor {
	switch mode {
	case nft.ScanModeOwned:
		return im.visitOwned
	case nft.ScanModeMarketplace:
		return im.visitMarketplace
	default:
		return im.visitCatalog
	}
}

func (im *aggregatorImpl) Scan(c ctx.Ctx, wallet domain.WalletContext, mode nft.ScanMode) (*nft.Snapshot, error) {
	if !mode.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	if !im.chain.Supports(wallet.ChainId()) {
		return nil, domain.ErrUnsupportedNetwork
	}
	// catalog and marketplace are browsable without a wallet
	if mode == nft.ScanModeOwned && !wallet.Connected() {
		return nil, domain.ErrNoWallet
	}

	scanId := uuid.NewString()
	c = ctx.WithValues(c, map[string]interface{}{
		"scanId":  scanId,
		"mode":    mode,
		"chainId": wallet.ChainId(),
	})
	defer im.met.BumpTime("scan.time", "mode", string(mode)).End()

	id := nft.SnapshotId{ChainId: wallet.ChainId(), Mode: mode}
	if mode == nft.ScanModeOwned {
		id.Wallet = wallet.Address()

		balance, err := im.chain.BalanceOf(c, wallet.ChainId(), wallet.Address())
		if err != nil {
			c.WithField("err", err).Error("chain.BalanceOf failed")
			return nil, err
		}
		if balance == 0 {
			c.Info("wallet holds no token, scan skipped")
			return im.emit(c, id, 0, nil, 0, scanId), nil
		}
	}

	supply, err := im.chain.TotalSupply(c, wallet.ChainId())
	if err != nil {
		c.WithField("err", err).Error("chain.TotalSupply failed")
		return nil, err
	}

	visit := im.visitorOf(mode)
	records := []nft.TokenRecord{}
	skipped := 0
	for i := uint64(0); i < supply; i++ {
		if err := c.Err(); err != nil {
			c.WithFields(log.Fields{
				"tokenId": i,
				"err":     err,
			}).Warn("scan cancelled")
			return nil, err
		}
		rec, failed := visit(c, wallet, domain.TokenId(i))
		if failed {
			skipped++
			continue
		}
		if rec != nil {
			records = append(records, *rec)
		}
	}

	return im.emit(c, id, supply, records, skipped, scanId), nil
}

func (im *aggregatorImpl) emit(c ctx.Ctx, id nft.SnapshotId, supply uint64, records []nft.TokenRecord, skipped int, scanId string) *nft.Snapshot {
	im.met.BumpAvg("scan.records", float64(len(records)), "mode", string(id.Mode))
	im.met.BumpSum("scan.skipped", float64(skipped), "mode", string(id.Mode))
	c.WithFields(log.Fields{
		"totalSupply": supply,
		"records":     len(records),
		"skipped":     skipped,
	}).Info("scan done")
	return nft.NewSnapshot(id, supply, records, skipped, scanId, im.timeNow())
}

func (im *aggregatorImpl) visitCatalog(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId) (*nft.TokenRecord, bool) {
	uri, err := im.chain.TokenURI(c, wallet.ChainId(), id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Warn("chain.TokenURI failed, token skipped")
		return nil, true
	}
	meta := im.metadata.Fetch(c, uri)
	rec := nft.NewTokenRecord(id, "", meta, im.listingOrUnlisted(c, wallet.ChainId(), id))
	return &rec, false
}

func (im *aggregatorImpl) visitOwned(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId) (*nft.TokenRecord, bool) {
	owner, err := im.chain.OwnerOf(c, wallet.ChainId(), id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Warn("chain.OwnerOf failed, token skipped")
		return nil, true
	}
	if !owner.Equals(wallet.Address()) {
		return nil, false
	}
	uri, err := im.chain.TokenURI(c, wallet.ChainId(), id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Warn("chain.TokenURI failed, token skipped")
		return nil, true
	}
	meta := im.metadata.Fetch(c, uri)
	rec := nft.NewTokenRecord(id, owner, meta, im.listingOrUnlisted(c, wallet.ChainId(), id))
	return &rec, false
}

func (im *aggregatorImpl) visitMarketplace(c ctx.Ctx, wallet domain.WalletContext, id domain.TokenId) (*nft.TokenRecord, bool) {
	listing, err := im.chain.Listing(c, wallet.ChainId(), id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Warn("chain.Listing failed, token skipped")
		return nil, true
	}
	if !listing.IsListed {
		return nil, false
	}
	meta := nft.Metadata{}
	if uri, err := im.chain.TokenURI(c, wallet.ChainId(), id); err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Warn("chain.TokenURI failed, listed without metadata")
	} else {
		meta = im.metadata.Fetch(c, uri)
	}
	// the marketplace holds no custody, the seller still owns the token
	rec := nft.NewTokenRecord(id, listing.Seller, meta, listing)
	return &rec, false
}

// listingOrUnlisted treats an unreadable listing as not for sale
func (im *aggregatorImpl) listingOrUnlisted(c ctx.Ctx, chainId domain.ChainId, id domain.TokenId) nft.Listing {
	listing, err := im.chain.Listing(c, chainId, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Warn("chain.Listing failed, treated as unlisted")
		return nft.Listing{}
	}
	return listing
}
