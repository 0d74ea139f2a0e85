// Package kitectx lets a long computation, such as parsing a large file, be abandoned
// when its context.Context is done.
//
// The computation calls ctx.CheckAbort() at regular points. Once the context is done,
// CheckAbort panics; FromContext, WithTimeout and WithDeadline recover that panic and
// return a ContextExpiredError instead.
//
// A child Context has to be derived on the goroutine that runs the parent's callback,
// so the abort panic always unwinds through a recover.
package kitectx

import (
	"context"
	"sync/atomic"

	"github.com/kiteco/esparse/kite-golib/kitelog"
)

// expiry is stored once the underlying context is done.
type expiry struct {
	err error
}

// Context carries the abort state and a logger through a computation. It is passed
// by value and never stored.
type Context struct {
	std    context.Context
	done   *atomic.Value // holds an expiry once std is done
	Logger *kitelog.Logger
}

// Background returns a Context that never expires.
func Background() Context {
	return Context{Logger: kitelog.Basic}
}

// WithLogger returns a copy of ctx that logs to l.
func (ctx Context) WithLogger(l *kitelog.Logger) Context {
	ctx.Logger = l
	return ctx
}

// Context returns the underlying context.Context.
func (ctx Context) Context() context.Context {
	if ctx.std == nil {
		return context.Background()
	}
	return ctx.std
}

// bind returns a copy of ctx tied to std. A goroutine flags the copy as expired
// as soon as std is done.
func (ctx Context) bind(std context.Context) Context {
	ctx.std = std
	ctx.done = new(atomic.Value)
	if ch := std.Done(); ch != nil {
		go func(done *atomic.Value) {
			<-ch
			done.Store(expiry{std.Err()})
		}(ctx.done)
	}
	return ctx
}

// expired returns the reason ctx expired, or nil.
func (ctx Context) expired() error {
	if ctx.done == nil {
		return nil
	}
	if e, ok := ctx.done.Load().(expiry); ok {
		return e.err
	}
	return nil
}

// IsDeadlineExceeded reports whether err comes from a context whose deadline passed.
func IsDeadlineExceeded(err error) bool {
	if e, ok := err.(ContextExpiredError); ok {
		err = e.Err
	}
	return err == context.DeadlineExceeded
}
