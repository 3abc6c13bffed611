package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
)

var ErrNotHttpUrl = xerrors.New("not an http url")

type httpReaderRepo struct {
	getter httpGetter
}

// NewHttpReaderRepo sends headers with every request, e.g. an api key of a
// pinned gateway
func NewHttpReaderRepo(client http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{getter: httpGetter{client: client, ctxTimeout: timeout, headers: headers}}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "https://") && !strings.HasPrefix(lower, "http://") {
		return nil, ErrNotHttpUrl
	}
	return r.getter.get(c, url)
}
