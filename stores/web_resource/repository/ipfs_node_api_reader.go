package repository

import (
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
)

// ipfsNodeApiReaderRepo cats content from the http api of an ipfs node
type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, cidPath string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	// the node stops streaming one byte past the cap
	resp, err := r.shell.Request("cat", cidPath).
		Option("length", MaxBodySize+1).
		Send(ctx)
	if err != nil {
		c.WithFields(log.Fields{"cid": cidPath, "err": err}).Warn("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithFields(log.Fields{"cid": cidPath, "resp.Error": resp.Error}).Warn("ipfs cat failed")
		return nil, resp.Error
	}
	return readCapped(resp.Output)
}
