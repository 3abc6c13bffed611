package metadata_parser

import (
	"encoding/json"

	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

// defaultParser tries each layout in turn. It fails with ErrInvalidJsonFormat
// only when data is not json, a json document no layout matches gives
// ErrNotFound.
type defaultParser struct {
	parsers []MetadataParser
}

func NewDefaultParser() MetadataParser {
	return &defaultParser{
		parsers: []MetadataParser{
			NewAttributesParser(),
			// order matters, a property detail map is also a valid properties map
			NewPropertyDetailParser(),
			NewPropertiesParser(),
		},
	}
}

func (p *defaultParser) Name() string {
	return "Default Parser"
}

func (p *defaultParser) Parse(ctx bCtx.Ctx, data []byte) (nft.Attributes, error) {
	if !json.Valid(data) {
		return nil, domain.ErrInvalidJsonFormat
	}
	for _, parser := range p.parsers {
		if attrs, err := parser.Parse(ctx, data); err == nil {
			ctx.WithField("parser", parser.Name()).Debug("attributes parsed")
			return attrs, nil
		}
	}
	return nil, domain.ErrNotFound
}
