package kitectx

import (
	"context"
	"fmt"
	"time"
)

// abortPanic is the value CheckAbort panics with.
type abortPanic struct {
	err error
}

// ContextExpiredError is returned when a computation stops because its context is done.
type ContextExpiredError struct {
	Err error
}

// Error implements error.
func (c ContextExpiredError) Error() string {
	return fmt.Sprintf("computation aborted: %s", c.Err)
}

// CheckAbort panics if ctx has expired. It is cheap enough to call once per token.
func (ctx Context) CheckAbort() {
	if err := ctx.expired(); err != nil {
		panic(abortPanic{err})
	}
}

// Expired reports whether ctx has expired, without panicking.
func (ctx Context) Expired() bool {
	return ctx.expired() != nil
}

// catchAbort turns an abort panic into *err. Other panics keep unwinding. When the
// parent context expired as well, its own CheckAbort carries the abort further up.
func catchAbort(parent *Context, err *error) {
	v := recover()
	if v == nil {
		return
	}
	p, ok := v.(abortPanic)
	if !ok {
		panic(v)
	}
	if parent != nil {
		parent.CheckAbort()
	}
	*err = ContextExpiredError{p.err}
}

// FromContext runs f with a Context that expires together with std.
// std should be done eventually, otherwise its watcher goroutine leaks.
func FromContext(std context.Context, f func(Context) error) (err error) {
	if std == nil {
		panic("kitectx: FromContext called with a nil context.Context")
	}
	if err := std.Err(); err != nil {
		return ContextExpiredError{err}
	}

	defer catchAbort(nil, &err)
	return f(Background().bind(std))
}

// WithTimeout runs f with a Context that expires after timeout.
func (ctx Context) WithTimeout(timeout time.Duration, f func(Context) error) error {
	return ctx.WithDeadline(time.Now().Add(timeout), f)
}

// WithDeadline runs f with a Context that expires at deadline or when ctx does.
func (ctx Context) WithDeadline(deadline time.Time, f func(Context) error) (err error) {
	defer catchAbort(&ctx, &err)

	std, cancel := context.WithDeadline(ctx.Context(), deadline)
	defer cancel()
	if err := std.Err(); err != nil {
		return ContextExpiredError{err}
	}

	return f(ctx.bind(std))
}
