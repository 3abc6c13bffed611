package repository

import (
	"net/http"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"golang.org/x/xerrors"
)

const (
	arUriSchema      = "ar://"
	DefaultArGateway = "https://arweave.net"
)

type arReaderRepo struct {
	getter  httpGetter
	gateway string
}

func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultArGateway
	}
	return &arReaderRepo{
		getter:  httpGetter{client: client, ctxTimeout: timeout, headers: headers},
		gateway: strings.TrimSuffix(gateway, "/"),
	}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	if !strings.HasPrefix(url, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri")
	}
	return r.getter.get(c, r.gateway+"/"+strings.TrimPrefix(url, arUriSchema))
}
