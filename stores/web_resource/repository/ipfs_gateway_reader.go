package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
)

type ipfsGatewayReaderRepo struct {
	getter  httpGetter
	gateway string
}

// NewIpfsGatewayReaderRepo reads `<gateway>/<cid path>`, e.g. gateway
// https://ipfs.io/ipfs
func NewIpfsGatewayReaderRepo(c http.Client, gateway string, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsGatewayReaderRepo{
		getter:  httpGetter{client: c, ctxTimeout: timeout},
		gateway: strings.TrimSuffix(gateway, "/"),
	}
}

func (r *ipfsGatewayReaderRepo) Get(c bCtx.Ctx, cid string) ([]byte, error) {
	return r.getter.get(c, r.gateway+"/"+strings.TrimPrefix(cid, "/"))
}
