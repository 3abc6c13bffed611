package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
)

const dataUriSchema = "data:"

var (
	ErrInvalidDataUri = xerrors.New("invalid data uri")
	ErrEmptyDataUri   = xerrors.New("no data part provided")
)

// base64 payloads found on chain are not always padded or standard
var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

type dataUriReaderRepo struct{}

func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(c ctx.Ctx, uri string) ([]byte, error) {
	header, payload, err := splitDataUri(uri)
	if err != nil {
		return nil, err
	}
	if len(payload) > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	if strings.HasSuffix(header, ";base64") {
		return decodeBase64(payload)
	}
	return unescapeText(payload), nil
}

// splitDataUri splits data:[<mediatype>][;base64],<data>
func splitDataUri(uri string) (string, string, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return "", "", ErrInvalidDataUri
	}
	parts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(parts) < 2 || len(parts[1]) == 0 {
		return "", "", ErrEmptyDataUri
	}
	return strings.ToLower(parts[0]), parts[1], nil
}

func decodeBase64(payload string) ([]byte, error) {
	var err error
	for _, enc := range base64Encodings {
		var b []byte
		if b, err = enc.DecodeString(payload); err == nil {
			return b, nil
		}
	}
	return nil, xerrors.Errorf("%w: %v", ErrInvalidDataUri, err)
}

// unescapeText keeps the raw text when it is not percent encoded
func unescapeText(payload string) []byte {
	if !strings.Contains(payload, "%") {
		return []byte(payload)
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return []byte(payload)
	}
	return []byte(s)
}
