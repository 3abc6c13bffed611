package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/database/redisclient"
	bEth "github.com/x-xyz/nftdapp/base/ethereum"
	"github.com/x-xyz/nftdapp/base/goroutine"
	"github.com/x-xyz/nftdapp/base/log"
	"github.com/x-xyz/nftdapp/base/metrics"
	bValidator "github.com/x-xyz/nftdapp/base/validator"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/keys"
	mmiddleware "github.com/x-xyz/nftdapp/middleware"
	"github.com/x-xyz/nftdapp/service/cache"
	"github.com/x-xyz/nftdapp/service/cache/provider"
	"github.com/x-xyz/nftdapp/service/cache/provider/compound"
	"github.com/x-xyz/nftdapp/service/cache/provider/memory"
	"github.com/x-xyz/nftdapp/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/nftdapp/service/cache/provider/redis"
	"github.com/x-xyz/nftdapp/service/chain"
	"github.com/x-xyz/nftdapp/service/chain/contract"
	"github.com/x-xyz/nftdapp/service/ens"
	"github.com/x-xyz/nftdapp/service/redis"
	action_delivery "github.com/x-xyz/nftdapp/stores/action/delivery/http"
	action_usecase "github.com/x-xyz/nftdapp/stores/action/usecase"
	collection_delivery "github.com/x-xyz/nftdapp/stores/collection/delivery/http"
	collection_repository "github.com/x-xyz/nftdapp/stores/collection/repository"
	collection_usecase "github.com/x-xyz/nftdapp/stores/collection/usecase"
	ens_delivery "github.com/x-xyz/nftdapp/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/nftdapp/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/nftdapp/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftdapp/stores/healthcheck/usecase"
	metadata_usecase "github.com/x-xyz/nftdapp/stores/metadata/usecase"
	web_resource_repository "github.com/x-xyz/nftdapp/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/nftdapp/stores/web_resource/usecase"
)

var configPath = flag.String("config", "infra/configs/dapp/config.yaml", "path of the yaml config")

func init() {
	flag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	log.SetDebug(viper.GetBool(`debug`))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// mustCacheProvider builds the byte store for snapshots: memory, redis or
// memory in front of redis. A snapshot is one entry of unbounded size, so the
// in-process layer is bigcache rather than freecache.
func mustCacheProvider(context ctx.Ctx, redisCache redis.Service) provider.Provider {
	lifeWindow := viper.GetDuration("cache.lifeWindow")
	if lifeWindow <= 0 {
		lifeWindow = 24 * time.Hour
	}
	switch t := viper.GetString("cache.type"); t {
	case "", "memory":
		return memory.MustMemory("snapshot", lifeWindow)
	case "redis":
		return redisProvider.NewRedis(redisCache, true)
	case "compound":
		return compound.NewCompound([]provider.Provider{
			memory.MustMemory("snapshot", lifeWindow),
			redisProvider.NewRedis(redisCache, true),
		})
	default:
		context.WithField("type", t).Panic("unknown cache.type")
	}
	return nil
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(viper.GetString("server.allowOrigin"))
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init Redis service, only needed when snapshots are shared
	var redisCache redis.Service
	if t := viper.GetString("cache.type"); t == "redis" || t == "compound" {
		context.Info("init redis cache")
		redisCacheName := viper.GetString("redis_cache.name")
		redisCachePool := redisclient.MustConnect(context, redisclient.Config{
			Uri:            viper.GetString("redis_cache.uri"),
			Password:       viper.GetString("redis_cache.password"),
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Attempts:       viper.GetInt("redis_cache.attempts"),
		})
		redisCache = redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
			Src: redisCachePool,
		})
	}
	snapshotCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("cache.ttl"),
		Pfx:   viper.GetString("cache.pfx"),
		Cache: mustCacheProvider(context, redisCache),
	})

	// init chain service
	networks := viper.Sub("networks")
	rpcs := make(map[domain.ChainId]string)
	chainIds := make(map[string]domain.ChainId)
	for k := range networks.AllSettings() {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		chainIds[k] = chainId
	}
	activeNetwork := viper.GetString("activeNetwork")
	activeChainId, ok := chainIds[strings.ToLower(activeNetwork)]
	if !ok {
		context.WithField("activeNetwork", activeNetwork).Panic("activeNetwork not in networks")
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		MaxInflight: viper.GetInt("rpc.maxInflight"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}

	contractAddress := viper.GetString("contract.address")
	if !common.IsHexAddress(contractAddress) {
		context.WithField("contract", contractAddress).Panic("invalid contract.address")
	}
	chainReader := contract.NewNftMarketReader(&contract.NftMarketCfg{
		ChainService: chainService,
		Contract:     common.HexToAddress(contractAddress),
	})
	var signer *bEth.Signer
	if key := viper.GetString("wallet.privateKey"); key != "" {
		if signer, err = bEth.NewSigner(key); err != nil {
			context.WithField("err", err).Panic("invalid wallet.privateKey")
		}
		context.WithField("address", signer.Address.Hex()).Info("signer loaded")
	} else {
		context.Warn("wallet.privateKey not set, actions are disabled")
	}
	chainWriter := contract.NewNftMarketWriter(&contract.NftMarketWriterCfg{
		ChainService: chainService,
		Contract:     common.HexToAddress(contractAddress),
		Marketplace:  common.HexToAddress(viper.GetString("contract.marketplace")),
		Signer:       signer,
		PollStart:    viper.GetDuration("rpc.receiptPollStart"),
		PollLimit:    viper.GetDuration("rpc.receiptPollLimit"),
	})

	// ens lives on ethereum mainnet
	var ensService ens.ENS
	if ensRpc := viper.GetString("ens.rpcUrl"); ensRpc != "" {
		ensClient, err := ethclient.DialContext(context, ensRpc)
		if err != nil {
			context.WithFields(log.Fields{"url": ensRpc, "err": err}).Panic("ethclient.Dial failed")
		}
		ensService = ens.New(&ens.Config{
			Backend: ensClient,
			Cache: cache.New(cache.ServiceConfig{
				Ttl:   viper.GetDuration("ens.ttl"),
				Pfx:   keys.PfxEns,
				Cache: primitive.NewPrimitive("ens", 4),
			}),
		})
	}

	// metadata readers
	httpTimeout := viper.GetDuration("http.timeout")
	ipfsGatewayReader := web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gateway"), httpTimeout)
	webResourceCfg := &web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil),
		IpfsReader:    ipfsGatewayReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:   web_resource_repository.NewArReaderRepo(http.Client{}, viper.GetString("ar.gateway"), httpTimeout, nil),
	}
	if api := viper.GetString("ipfs.api"); api != "" {
		webResourceCfg.IpfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(api), httpTimeout)
		webResourceCfg.IpfsFallbackReader = ipfsGatewayReader
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(webResourceCfg)

	// construct repository, usecase and delivery
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResourceUC: webResource,
	})
	aggregator := collection_usecase.NewAggregator(&collection_usecase.AggregatorUseCaseCfg{
		ChainReader: chainReader,
		MetadataUC:  metadata,
	})
	session := collection_usecase.NewSession(&collection_usecase.SessionUseCaseCfg{
		ChainReader:    chainReader,
		Aggregator:     aggregator,
		SnapshotRepo:   collection_repository.NewSnapshotRepo(snapshotCache),
		DefaultChainId: activeChainId,
		Ens:            ensService,
		SignatureMsg:   viper.GetString("session.signatureMsg"),
	})
	defer session.Close()
	action := action_usecase.NewActionUseCase(&action_usecase.ActionUseCaseCfg{
		ChainReader: chainReader,
		ChainWriter: chainWriter,
		Refresher:   session,
	})
	hc := hc_usecase.New(hc_repo.New(chainService, activeChainId, redisCache))

	hc_delivery.New(e, hc)
	collection_delivery.New(e, session)
	action_delivery.New(e, session, action)
	if ensService != nil {
		ens_delivery.New(e, ensService)
	}

	// warm the anonymous views before the first request
	if err := session.RefreshAll(context); err != nil {
		context.WithField("err", err).Warn("initial refresh incomplete")
	}

	serverDone := goroutine.RecoverableGo(context, "http", func() error {
		if err := e.Start(viper.GetString("server.address")); err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case exit := <-serverDone:
		log.Log().WithFields(log.Fields{
			"err":      exit.Err,
			"panicked": exit.Panicked(),
		}).Error("server stopped")
	}
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
