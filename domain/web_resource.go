package domain

import (
	"github.com/x-xyz/nftdapp/base/ctx"
)

// WebResourceReaderRepository fetches the raw bytes behind one uri scheme
type WebResourceReaderRepository interface {
	Get(c ctx.Ctx, uri string) ([]byte, error)
}

// WebResourceUseCase dispatches a token or image uri to the reader of its
// scheme: http(s), ipfs, data or ar
type WebResourceUseCase interface {
	Get(c ctx.Ctx, uri string) ([]byte, error)
	// GetJson fails with ErrInvalidJsonFormat for anything but a json document
	GetJson(c ctx.Ctx, uri string) ([]byte, error)
}
