package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftdapp/base/ctx"
	bEth "github.com/x-xyz/nftdapp/base/ethereum"
	"github.com/x-xyz/nftdapp/base/goroutine"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
	"github.com/x-xyz/nftdapp/service/ens"
)

const scheduleTimeout = 3 * time.Second

type SessionUseCaseCfg struct {
	ChainReader  nft.ChainReader
	Aggregator   nft.AggregatorUseCase
	SnapshotRepo nft.SnapshotRepo
	// DefaultChainId is the network browsed before a wallet connects
	DefaultChainId domain.ChainId
	// Ens resolves wallet names on connect, optional
	Ens ens.ENS
	// SignatureMsg is a fmt template taking the checksummed address. When
	// set, connecting requires a personal_sign of the rendered message.
	SignatureMsg string
}

type sessionImpl struct {
	chain        nft.ChainReader
	aggregator   nft.AggregatorUseCase
	snapshotRepo nft.SnapshotRepo
	ens          ens.ENS
	signatureMsg string

	workerPool *goroutines.Pool
	schedule   func(task func()) error

	mu     sync.Mutex
	wallet domain.WalletContext
	// generation changes whenever the wallet identity is replaced
	generation uint64
	// started and committed order passes so an older pass never overwrites
	// a newer snapshot of the same view
	started   uint64
	committed map[string]uint64
}

func NewSession(cfg *SessionUseCaseCfg) nft.SessionUseCase {
	im := &sessionImpl{
		chain:        cfg.ChainReader,
		aggregator:   cfg.Aggregator,
		snapshotRepo: cfg.SnapshotRepo,
		ens:          cfg.Ens,
		signatureMsg: cfg.SignatureMsg,
		// a single worker keeps background scans sequential
		workerPool: goroutines.NewPool(1, goroutines.WithTaskQueueLength(16)),
		wallet:     domain.NewWalletContext("", cfg.DefaultChainId, domain.MintState{}),
		committed:  make(map[string]uint64),
	}
	im.schedule = func(task func()) error {
		return im.workerPool.ScheduleWithTimeout(scheduleTimeout, task)
	}
	return im
}

func (im *sessionImpl) current() (domain.WalletContext, uint64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.wallet, im.generation
}

func (im *sessionImpl) Wallet() domain.WalletContext {
	w, _ := im.current()
	return w
}

func (im *sessionImpl) Connect(c ctx.Ctx, req nft.ConnectRequest) (domain.WalletContext, error) {
	if !im.chain.Supports(req.ChainId) {
		return domain.WalletContext{}, domain.ErrUnsupportedNetwork
	}

	address, err := im.resolve(c, req.Address)
	if err != nil {
		return domain.WalletContext{}, err
	}

	if im.signatureMsg != "" {
		msg := bEth.LoginMessage(im.signatureMsg, string(address))
		ok, err := bEth.ValidateMsgSignature(msg, req.Signature, string(address))
		if err != nil || !ok {
			c.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Warn("login signature rejected")
			return domain.WalletContext{}, domain.ErrInvalidSignature
		}
	}

	mintState, err := im.chain.MintState(c, req.ChainId)
	if err != nil {
		c.WithFields(log.Fields{
			"chainId": req.ChainId,
			"err":     err,
		}).Error("chain.MintState failed")
		return domain.WalletContext{}, err
	}

	wallet := domain.NewWalletContext(address, req.ChainId, mintState)
	gen := im.replace(wallet)
	c.WithFields(log.Fields{
		"address":    wallet.Address(),
		"chainId":    wallet.ChainId(),
		"generation": gen,
	}).Info("wallet connected")

	im.scheduleRefresh(c)
	return wallet, nil
}

func (im *sessionImpl) Disconnect(c ctx.Ctx) {
	w, _ := im.current()
	gen := im.replace(domain.NewWalletContext("", w.ChainId(), w.MintState()))
	c.WithField("generation", gen).Info("wallet disconnected")
}

func (im *sessionImpl) replace(w domain.WalletContext) uint64 {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.wallet = w
	im.generation++
	return im.generation
}

func (im *sessionImpl) resolve(c ctx.Ctx, name string) (domain.Address, error) {
	if name == "" {
		return "", domain.ErrNoWallet
	}
	if common.IsHexAddress(name) {
		return domain.AddressFromCommon(common.HexToAddress(name)), nil
	}
	if im.ens == nil {
		return "", domain.ErrInvalidAddress
	}
	address, err := im.ens.Resolve(c, name)
	if err != nil {
		return "", err
	}
	if address.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}
	return address, nil
}

// scheduleRefresh rescans every view in the background. The task outlives
// the request that triggered it.
func (im *sessionImpl) scheduleRefresh(c ctx.Ctx) {
	bg := ctx.Detach(c)
	err := im.schedule(func() {
		exit := <-goroutine.RecoverableGo(bg, "refresh", func() error {
			return im.RefreshAll(bg)
		})
		if exit.Err != nil {
			bg.WithField("err", exit.Err).Warn("background refresh incomplete")
		}
	})
	if err != nil {
		c.WithField("err", err).Error("workerPool.Schedule failed")
	}
}

func (im *sessionImpl) snapshotId(w domain.WalletContext, mode nft.ScanMode) nft.SnapshotId {
	id := nft.SnapshotId{ChainId: w.ChainId(), Mode: mode}
	if mode == nft.ScanModeOwned {
		id.Wallet = w.Address()
	}
	return id
}

func (im *sessionImpl) Refresh(c ctx.Ctx, mode nft.ScanMode) (*nft.Snapshot, error) {
	im.mu.Lock()
	wallet, gen := im.wallet, im.generation
	im.started++
	seq := im.started
	im.mu.Unlock()

	snap, err := im.aggregator.Scan(c, wallet, mode)
	if err != nil {
		return nil, err
	}
	if err := im.commit(c, wallet, gen, seq, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// commit stores snap unless the session moved on while it was being built
func (im *sessionImpl) commit(c ctx.Ctx, wallet domain.WalletContext, gen, seq uint64, snap *nft.Snapshot) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if gen != im.generation || !wallet.SameIdentity(im.wallet) {
		c.WithFields(log.Fields{
			"scanId":     snap.ScanId(),
			"generation": gen,
			"current":    im.generation,
		}).Info("stale scan discarded")
		return domain.ErrStaleScan
	}
	key := snap.Id().Key()
	if seq < im.committed[key] {
		c.WithFields(log.Fields{
			"scanId": snap.ScanId(),
			"seq":    seq,
		}).Info("superseded scan discarded")
		return domain.ErrStaleScan
	}
	if err := im.snapshotRepo.Put(c, snap); err != nil {
		return err
	}
	im.committed[key] = seq
	return nil
}

func (im *sessionImpl) RefreshAll(c ctx.Ctx) error {
	wallet, gen := im.current()
	if im.chain.Supports(wallet.ChainId()) {
		if mintState, err := im.chain.MintState(c, wallet.ChainId()); err != nil {
			c.WithField("err", err).Warn("chain.MintState failed, keeping previous mint state")
		} else {
			im.mu.Lock()
			if gen == im.generation {
				im.wallet = im.wallet.WithMintState(mintState)
			}
			im.mu.Unlock()
		}
	}

	var firstErr error
	for _, mode := range nft.ScanModes {
		if mode == nft.ScanModeOwned && !wallet.Connected() {
			continue
		}
		if _, err := im.Refresh(c, mode); err != nil {
			c.WithFields(log.Fields{
				"mode": mode,
				"err":  err,
			}).Warn("Refresh failed")
			if firstErr == nil {
				firstErr = err
			}
			if errors.Is(err, domain.ErrStaleScan) {
				// the newer identity schedules its own refresh
				return err
			}
		}
	}
	return firstErr
}

// Snapshot scans on demand when the view has never been committed
func (im *sessionImpl) Snapshot(c ctx.Ctx, mode nft.ScanMode) (*nft.Snapshot, error) {
	if !mode.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	wallet := im.Wallet()
	if mode == nft.ScanModeOwned && !wallet.Connected() {
		return nil, domain.ErrNoWallet
	}

	snap, err := im.snapshotRepo.Get(c, im.snapshotId(wallet, mode))
	if err == nil {
		return snap, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}
	return im.Refresh(c, mode)
}

func (im *sessionImpl) Close() {
	im.workerPool.Release()
}
