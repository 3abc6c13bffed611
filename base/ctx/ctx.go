// Package ctx pairs a context.Context with the logger that carries its
// request scoped fields.
package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/nftdapp/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return From(context.Background())
}

func Todo() Ctx {
	return From(context.TODO())
}

// From wraps c with the default logger
func From(c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  log.Log(),
	}
}

func derive(parent Ctx, c context.Context) Ctx {
	return Ctx{
		Context: c,
		Logger:  parent.Logger,
	}
}

// Detach returns a context that keeps the logger fields of parent but is not
// cancelled with it. Used for work that outlives the request that scheduled it.
func Detach(parent Ctx) Ctx {
	return derive(parent, context.Background())
}

// WithValue stores val under key and adds it to the logger fields
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	c := derive(parent, context.WithValue(parent, key, val))
	c.Logger = c.Logger.WithField(key, val)
	return c
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent)
	return derive(parent, c), cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent, timeout)
	return derive(parent, c), cancel
}
