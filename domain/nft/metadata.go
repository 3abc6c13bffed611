package nft

import (
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
)

type Attribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type,omitempty"`
}

type Attributes = []Attribute

type PropertyDetail struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

type Properties = map[string]interface{}

type PropertyDetails = map[string]PropertyDetail

// Metadata is the off-chain document a token uri points to. The zero value is
// the empty metadata used when retrieval fails.
type Metadata struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	Attributes  Attributes `json:"attributes,omitempty"`
}

func (m Metadata) IsEmpty() bool {
	return m.Name == "" && m.Description == "" && m.Image == "" && len(m.Attributes) == 0
}

// DisplayName falls back to "NFT #<id>" for unnamed tokens.
func (m Metadata) DisplayName(id domain.TokenId) string {
	if m.Name != "" {
		return m.Name
	}
	return "NFT #" + id.String()
}

type MetadataUseCase interface {
	// Fetch never fails, any retrieval error yields empty metadata
	Fetch(c ctx.Ctx, uri string) Metadata
	FetchRaw(c ctx.Ctx, uri string) (Metadata, error)
}
