package metadata_parser

import (
	"encoding/json"
	"sort"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

type MetadataParser interface {
	Name() string
	Parse(c ctx.Ctx, data []byte) (nft.Attributes, error)
}

type rawAttribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type"`
}

type attributesParser struct{}

func NewAttributesParser() MetadataParser {
	return &attributesParser{}
}

func (im *attributesParser) Name() string {
	return "Attributes Parser"
}

func (im *attributesParser) Parse(c ctx.Ctx, data []byte) (nft.Attributes, error) {
	type metadata struct {
		Attributes []rawAttribute `json:"attributes"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Attributes) == 0 {
		return nil, domain.ErrNotFound
	}

	attrs := nft.Attributes{}

	for _, v := range meta.Attributes {
		// entries without a trait type carry nothing worth showing
		if v.TraitType == "" && v.Value == nil {
			continue
		}
		attrs = append(attrs, nft.Attribute{TraitType: v.TraitType, Value: v.Value, DisplayType: v.DisplayType})
	}

	return attrs, nil
}

type propertiesParser struct{}

func NewPropertiesParser() MetadataParser {
	return &propertiesParser{}
}

func (im *propertiesParser) Name() string {
	return "Properties Parser"
}

func (im *propertiesParser) Parse(c ctx.Ctx, data []byte) (nft.Attributes, error) {
	type metadata struct {
		Properties nft.Properties `json:"properties"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	keys := make([]string, 0, len(meta.Properties))
	for k := range meta.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := nft.Attributes{}
	for _, k := range keys {
		attrs = append(attrs, nft.Attribute{TraitType: k, Value: meta.Properties[k]})
	}

	return attrs, nil
}

type propertyDetailParser struct{}

func NewPropertyDetailParser() MetadataParser {
	return &propertyDetailParser{}
}

func (im *propertyDetailParser) Name() string {
	return "PropertyDetail Parser"
}

func (im *propertyDetailParser) Parse(c ctx.Ctx, data []byte) (nft.Attributes, error) {
	type metadata struct {
		Properties nft.PropertyDetails `json:"properties"`
	}

	meta := &metadata{}

	if err := json.Unmarshal(data, meta); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}

	if len(meta.Properties) == 0 {
		return nil, domain.ErrNotFound
	}

	keys := make([]string, 0, len(meta.Properties))
	for k, v := range meta.Properties {
		// a plain properties map also decodes here with empty details
		if v.Name == "" {
			return nil, domain.ErrInvalidJsonFormat
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := nft.Attributes{}
	for _, k := range keys {
		v := meta.Properties[k]
		attrs = append(attrs, nft.Attribute{TraitType: v.Name, Value: v.Value})
	}

	return attrs, nil
}
