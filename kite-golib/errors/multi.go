package errors

import (
	"strings"
)

// Errors is an ordered, non-empty list of errors. A nil Errors means no errors, so callers
// compare against nil to check for failure.
type Errors interface {
	error
	// Slice returns a copy of the underlying errors.
	Slice() []error
	// Len is always > 0.
	Len() int

	sliceNoCopy() []error
}

type errorSlice []error

func (m errorSlice) sliceNoCopy() []error {
	return []error(m)
}

func (m errorSlice) Slice() []error {
	return append([]error(nil), m...)
}

func (m errorSlice) Len() int {
	return len(m)
}

func (m errorSlice) Error() string {
	parts := make([]string, 0, len(m))
	for _, err := range m {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "\n")
}

// Append adds err (flattening it if it is itself an Errors) to errs. A nil err leaves errs unchanged.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var out errorSlice
	if errs != nil {
		out = errorSlice(errs.sliceNoCopy())
	}
	if multi, ok := err.(Errors); ok {
		return append(out, multi.sliceNoCopy()...)
	}
	return append(out, err)
}

// Combine joins e and f into one error without mutating either.
func Combine(e, f error) error {
	switch e := e.(type) {
	case nil:
		return f
	case Errors:
		return Append(errorSlice(e.Slice()), f)
	default:
		if f == nil {
			return e
		}
		return Append(errorSlice{e}, f)
	}
}
