package redisclient

import (
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/nftdapp/base/backoff"
	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	defaultMaxIdle   = 200
	defaultMaxActive = 1024

	retryStart = time.Second
	retryLimit = 8 * time.Second
)

// Config describes one redis endpoint
type Config struct {
	Uri      string
	Password string
	// PoolMultiplier scales the pool with the number of cpus, 0 keeps the
	// default pool size
	PoolMultiplier float64
	// Attempts is how many times the first connection is tried, at least once
	Attempts int
}

// MustConnect connects to cfg.Uri and panics when it cannot
func MustConnect(c ctx.Ctx, cfg Config) *redis.Pool {
	p, err := Connect(c, cfg)
	if err != nil {
		c.WithFields(log.Fields{"redisURI": cfg.Uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// Connect builds a pool and makes sure one connection can be borrowed from it.
// A failed probe is retried with exponential backoff.
func Connect(c ctx.Ctx, cfg Config) (*redis.Pool, error) {
	p := newPool(cfg)

	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	b := backoff.NewExponential(retryStart, retryLimit)
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if waitErr := b.Backoff(c); waitErr != nil {
				return nil, waitErr
			}
		}
		if err = probe(p); err == nil {
			c.WithField("redisURI", cfg.Uri).Info("redis connected")
			return p, nil
		}
		c.WithFields(log.Fields{
			"redisURI": cfg.Uri,
			"attempt":  i + 1,
			"err":      err,
		}).Error("fail to dial Redis")
	}
	p.Close()
	return nil, err
}

func poolSize(multiplier float64) (maxIdle, maxActive int) {
	if multiplier <= 0 {
		return defaultMaxIdle, defaultMaxActive
	}
	cpu := float64(runtime.NumCPU())
	maxActive = int(cpu * multiplier)
	if maxActive < 1 {
		maxActive = 1
	}
	// allowing 25% idle connection
	return maxActive / 4, maxActive
}

func newPool(cfg Config) *redis.Pool {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	maxIdle, maxActive := poolSize(cfg.PoolMultiplier)
	return &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.Uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// recycled less than a second ago
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
}

func probe(p *redis.Pool) error {
	conn, err := p.Dial()
	if err != nil {
		return err
	}
	defer conn.Close()
	_, err = conn.Do("PING")
	return err
}
