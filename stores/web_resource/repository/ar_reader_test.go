package repository

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/nftdapp/base/ctx"
)

func Test_arReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	ctx := bCtx.Background()

	r := NewArReaderRepo(http.Client{}, srv.URL, 10*time.Second, nil)
	b, err := r.Get(ctx, "ar://1.json")
	req.NoError(err)
	req.Equal([]byte(testMetadata), b)

	_, err = r.Get(ctx, "https://arweave.net/1.json")
	req.Error(err)
}
