package scanner

import (
	"fmt"
)

// Messages for errors raised while scanning.
const (
	MsgUnexpectedToken         = `Unexpected token "%s"`
	MsgUnexpectedIllegalToken  = "Unexpected %s"
	MsgUnexpectedNumber        = "Unexpected number"
	MsgUnexpectedString        = "Unexpected string"
	MsgUnexpectedIdentifier    = "Unexpected identifier"
	MsgUnexpectedReservedWord  = "Unexpected reserved word"
	MsgUnexpectedTemplate      = "Unexpected template"
	MsgUnexpectedEOS           = "Unexpected end of input"
	MsgStrictReservedWord      = "Use of future reserved word in strict mode"
	MsgUnterminatedRegExp      = "Invalid regular expression: missing /"
	MsgInvalidRegExpFlags      = "Invalid regular expression flags"
	MsgDuplicateRegExpFlag     = "Duplicate regular expression flag '%c'"
	MsgInvalidRegularExpession = "Invalid regular expression"
)

// SyntaxError is a fatal error at a source position. Line is 1-based, Column
// is 0-based and Offset counts UTF-16 code units.
type SyntaxError struct {
	Offset  int    `json:"offset"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

type bailout struct {
	err *SyntaxError
}

// Fail aborts scanning or parsing with err. The panic is turned back into an
// error by RecoverSyntaxError.
func Fail(err *SyntaxError) {
	panic(bailout{err})
}

// RecoverSyntaxError must be deferred directly by functions that call into the
// scanner. It stores the error passed to Fail in err; any other panic is re-raised.
func RecoverSyntaxError(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

// FromPanic returns the error carried by a value recovered from a Fail panic.
func FromPanic(r interface{}) (*SyntaxError, bool) {
	b, ok := r.(bailout)
	if !ok {
		return nil, false
	}
	return b.err, true
}
