package metadata_parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/nft"
)

func TestDefaultParser(t *testing.T) {
	ctx := bCtx.Background()
	p := NewDefaultParser()
	tests := []struct {
		name    string
		data    string
		want    nft.Attributes
		wantErr error
	}{
		{
			name: "attributes",
			data: `{"name":"Tiger #1","attributes":[{"trait_type":"Fur","value":"Robot"},{"trait_type":"Level","value":3,"display_type":"number"}]}`,
			want: nft.Attributes{
				{TraitType: "Fur", Value: "Robot"},
				{TraitType: "Level", Value: float64(3), DisplayType: "number"},
			},
		},
		{
			name: "property details",
			data: `{"properties":{"b":{"name":"Hat","value":"Cap"},"a":{"name":"Eyes","value":"X"}}}`,
			want: nft.Attributes{
				{TraitType: "Eyes", Value: "X"},
				{TraitType: "Hat", Value: "Cap"},
			},
		},
		{
			name: "plain properties sorted by key",
			data: `{"properties":{"rarity":"rare","edition":2}}`,
			want: nft.Attributes{
				{TraitType: "edition", Value: float64(2)},
				{TraitType: "rarity", Value: "rare"},
			},
		},
		{
			name:    "no attributes",
			data:    `{"name":"Tiger #1"}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "attributes of unexpected shape",
			data:    `{"attributes":"none"}`,
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "not json",
			data:    `<html></html>`,
			wantErr: domain.ErrInvalidJsonFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := p.Parse(ctx, []byte(tt.data))
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestAttributesParserSkipsEmptyEntries(t *testing.T) {
	req := require.New(t)
	got, err := NewAttributesParser().Parse(bCtx.Background(), []byte(`{"attributes":[{},{"trait_type":"Fur","value":"Gold"}]}`))
	req.NoError(err)
	req.Equal(nft.Attributes{{TraitType: "Fur", Value: "Gold"}}, got)
}
