// Package errors holds the small error helpers shared by the javascript packages:
// message wrapping on top of github.com/pkg/errors, and an ordered error list.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorf formats an error message.
var Errorf = fmt.Errorf

// New is Errorf under the name callers expect.
var New = Errorf

// WrapfOrNil prefixes err with a formatted message. A nil err stays nil.
func WrapfOrNil(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessagef(err, format, args...)
}

// Wrapf is like WrapfOrNil but never returns nil: a nil err yields a fresh error
// carrying just the message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return WrapfOrNil(err, format, args...)
}

// Cause unwraps every message added by Wrapf or WrapfOrNil and returns the original error.
func Cause(err error) error {
	return errors.Cause(err)
}
