package usecase

import (
	"encoding/json"
	"strings"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/base/metadata_parser"
	"github.com/x-xyz/nftdapp/base/metrics"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

type MetadataUseCaseCfg struct {
	WebResourceUC domain.WebResourceUseCase
	// Parser normalises attributes, the default parser chain when nil
	Parser metadata_parser.MetadataParser
}

type metadataUseCase struct {
	webResourceUC domain.WebResourceUseCase
	parser        metadata_parser.MetadataParser
	met           metrics.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) nft.MetadataUseCase {
	parser := cfg.Parser
	if parser == nil {
		parser = metadata_parser.NewDefaultParser()
	}
	return &metadataUseCase{
		webResourceUC: cfg.WebResourceUC,
		parser:        parser,
		met:           metrics.New("metadata"),
	}
}

func (u *metadataUseCase) Fetch(c ctx.Ctx, uri string) nft.Metadata {
	meta, err := u.FetchRaw(c, uri)
	if err != nil {
		u.met.BumpSum("fetch.err", 1)
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Warn("metadata unavailable, using empty metadata")
		return nft.Metadata{}
	}
	return meta
}

func (u *metadataUseCase) FetchRaw(c ctx.Ctx, uri string) (nft.Metadata, error) {
	defer u.met.BumpTime("fetch.time").End()

	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nft.Metadata{}, &domain.MetadataError{Uri: uri, Err: domain.ErrBadParamInput}
	}

	data, err := u.webResourceUC.GetJson(c, uri)
	if err != nil {
		return nft.Metadata{}, &domain.MetadataError{Uri: uri, Err: err}
	}

	// fields are decoded loosely, some collections publish numeric names
	var doc struct {
		Name        json.RawMessage `json:"name"`
		Description json.RawMessage `json:"description"`
		Image       json.RawMessage `json:"image"`
		ImageUrl    json.RawMessage `json:"image_url"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nft.Metadata{}, &domain.MetadataError{Uri: uri, Err: domain.ErrInvalidJsonFormat}
	}

	meta := nft.Metadata{
		Name:        asString(doc.Name),
		Description: asString(doc.Description),
		Image:       asString(doc.Image),
	}
	if meta.Image == "" {
		meta.Image = asString(doc.ImageUrl)
	}

	attrs, err := u.parser.Parse(c, data)
	if err == nil {
		meta.Attributes = attrs
	} else if err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"uri":    uri,
			"parser": u.parser.Name(),
			"err":    err,
		}).Info("attributes dropped")
	}

	return meta, nil
}

// asString keeps strings and the literal text of numbers, anything else is
// dropped
func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
