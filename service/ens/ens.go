package ens

import (
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
)

// ENS maps wallet names to addresses. Results, including unregistered
// names, are cached.
type ENS interface {
	// Resolve accepts an ens name or a hex address, an unregistered name
	// resolves to the empty address
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
}
