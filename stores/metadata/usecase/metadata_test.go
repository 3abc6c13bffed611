package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/mocks"
	"github.com/x-xyz/nftdapp/domain/nft"
)

func Test_metadataUseCase_FetchRaw(t *testing.T) {
	errFetch := errors.New("unexpected status 404")
	tests := []struct {
		name    string
		uri     string
		data    []byte
		err     error
		want    nft.Metadata
		wantErr error
	}{
		{
			name: "full document",
			uri:  "ipfs://QmeSjSinHpPnmXmspMjwiXyN6zS4E9zccariGR3jxcaWtq/0",
			data: []byte(`{"name":"Tiger #0","description":"a tiger","image":"ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ","attributes":[{"trait_type":"Fur","value":"Robot"}]}`),
			want: nft.Metadata{
				Name:        "Tiger #0",
				Description: "a tiger",
				Image:       "ipfs://QmRRPWG96cmgTn2qSzjwr2qvfNEuhunv6FNeMFGa9bx6mQ",
				Attributes:  nft.Attributes{{TraitType: "Fur", Value: "Robot"}},
			},
		},
		{
			name: "numeric name and image_url",
			uri:  "https://host/1.json",
			data: []byte(`{"name":1,"image_url":"https://host/1.png"}`),
			want: nft.Metadata{Name: "1", Image: "https://host/1.png"},
		},
		{
			name: "properties instead of attributes",
			uri:  "https://host/2.json",
			data: []byte(`{"name":"Two","properties":{"edition":"first"}}`),
			want: nft.Metadata{Name: "Two", Attributes: nft.Attributes{{TraitType: "edition", Value: "first"}}},
		},
		{
			name:    "empty uri",
			uri:     " ",
			wantErr: domain.ErrBadParamInput,
		},
		{
			name:    "fetch failure",
			uri:     "https://host/3.json",
			err:     errFetch,
			wantErr: errFetch,
		},
		{
			name:    "json array",
			uri:     "https://host/4.json",
			data:    []byte(`[1,2]`),
			wantErr: domain.ErrInvalidJsonFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			webResourceUC := &mocks.WebResourceUseCase{}
			if tt.data != nil || tt.err != nil {
				webResourceUC.On("GetJson", mock.Anything, tt.uri).Return(tt.data, tt.err).Once()
			}
			u := NewMetadataUseCase(&MetadataUseCaseCfg{WebResourceUC: webResourceUC})

			got, err := u.FetchRaw(bCtx.Background(), tt.uri)
			if tt.wantErr != nil {
				var metaErr *domain.MetadataError
				req.ErrorAs(err, &metaErr)
				req.ErrorIs(err, tt.wantErr)
				req.True(got.IsEmpty())
			} else {
				req.NoError(err)
				req.Equal(tt.want, got)
			}
			webResourceUC.AssertExpectations(t)
		})
	}
}

func Test_metadataUseCase_FetchSwallowsErrors(t *testing.T) {
	req := require.New(t)
	webResourceUC := &mocks.WebResourceUseCase{}
	webResourceUC.On("GetJson", mock.Anything, "ftp://host/1.json").Return(nil, domain.ErrUnsupportedSchema).Once()
	webResourceUC.On("GetJson", mock.Anything, "https://host/1.json").Return([]byte(`{"name":"One"}`), nil).Once()
	u := NewMetadataUseCase(&MetadataUseCaseCfg{WebResourceUC: webResourceUC})

	req.Equal(nft.Metadata{}, u.Fetch(bCtx.Background(), "ftp://host/1.json"))
	req.Equal(nft.Metadata{Name: "One"}, u.Fetch(bCtx.Background(), "https://host/1.json"))
	webResourceUC.AssertExpectations(t)
}
