package earlyerrors

import (
	"fmt"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-golib/errors"
)

// EarlyError is a static semantics violation found in a syntactically valid
// program.
type EarlyError struct {
	Node    ast.Node
	Message string
}

func newError(n ast.Node, format string, args ...interface{}) *EarlyError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &EarlyError{Node: n, Message: msg}
}

// Error implements error. The location is included when the node has a span.
func (e *EarlyError) Error() string {
	if e.Node == nil {
		return e.Message
	}
	sp := e.Node.Span()
	if sp.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("%d:%d: %s", sp.Start.Line, sp.Start.Column, e.Message)
}

// AsError combines errs into a single error, or returns nil if there are none.
func AsError(errs []*EarlyError) error {
	var all errors.Errors
	for _, e := range errs {
		all = errors.Append(all, e)
	}
	if all == nil {
		return nil
	}
	return all
}
