package ens

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/keys"
	"github.com/x-xyz/nftdapp/service/cache"
)

type Config struct {
	// Backend points at a chain with an ens registry, usually mainnet
	Backend bind.ContractBackend
	Cache   cache.Service
}

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service
}

func New(cfg *Config) ENS {
	return &impl{
		backend: cfg.Backend,
		cache:   cfg.Cache,
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	name = strings.TrimSpace(name)
	if common.IsHexAddress(name) {
		return domain.AddressFromCommon(common.HexToAddress(name)), nil
	}
	if !strings.Contains(name, ".") {
		return "", domain.ErrInvalidAddress
	}

	res := domain.Address("")
	key := keys.RedisKey("resolve", strings.ToLower(name))
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := goens.Resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"name": name,
				"err":  err,
			}).Error("goens.Resolve failed")
			return nil, err
		}
		val := domain.AddressFromCommon(addr)
		return &val, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("cache.GetByFunc failed")
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := goens.ReverseResolve(im.backend, address.ToCommon())
		if fmt.Sprint(err) == "not a resolver" || fmt.Sprint(err) == "no resolution" {
			val := ""
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Error("goens.ReverseResolve failed")
			return nil, err
		}
		return &name, nil
	})

	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("cache.GetByFunc failed")
		return "", err
	}

	return res, nil
}
