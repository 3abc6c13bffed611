package repository

import (
	"io"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"golang.org/x/xerrors"
)

// MaxBodySize caps the bytes read from a single resource
const MaxBodySize = 8 << 20

var (
	ErrUnexpectedStatus = xerrors.New("unexpected status code")
	ErrBodyTooLarge     = xerrors.New("body too large")
)

type httpGetter struct {
	client     http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

func (g *httpGetter) get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, g.ctxTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range g.headers {
		req.Header.Set(k, v)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("non 2xx response")
		return nil, xerrors.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	body, err := readCapped(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed to read body")
		return nil, err
	}
	return body, nil
}

// readCapped reads r fully, failing with ErrBodyTooLarge past MaxBodySize
func readCapped(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}
