package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/base/log"
)

// Exit tells how a supervised goroutine ended. Panic and Stack are set only
// when it panicked.
type Exit struct {
	Name  string
	Err   error
	Panic interface{}
	Stack []byte
}

func (e Exit) Panicked() bool {
	return e.Panic != nil
}

type options struct {
	beforeStart    func()
	afterRecovered func(p interface{}, stack []byte)
}

type Option func(*options)

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel yields
// exactly one Exit once f returns or panics, then it is closed.
func RecoverableGo(c ctx.Ctx, name string, f func() error, opts ...Option) <-chan Exit {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	done := make(chan Exit, 1)
	go func() {
		defer close(done)
		exit := Exit{Name: name}
		defer func() {
			if p := recover(); p != nil {
				exit.Panic = p
				exit.Stack = debug.Stack()
				exit.Err = fmt.Errorf("%s panicked: %v", name, p)
				c.WithFields(log.Fields{
					"name":  name,
					"err":   p,
					"stack": string(exit.Stack),
				}).Error("panic")
				if o.afterRecovered != nil {
					o.afterRecovered(p, exit.Stack)
				}
			}
			done <- exit
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}
		exit.Err = f()
	}()
	return done
}
