package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendNil(t *testing.T) {
	err := New("unexpected token")
	errs := Append(nil, err).sliceNoCopy()
	require.Len(t, errs, 1)
	require.Equal(t, err, errs[0])

	errs = Append(errorSlice{err}, nil).sliceNoCopy()
	require.Len(t, errs, 1)
}

func TestAppendFlattens(t *testing.T) {
	var a, b Errors
	a = Append(a, New("duplicate binding"))
	a = Append(a, New("free break"))
	b = Append(b, New("free continue"))

	errs := Append(a, b)
	require.Equal(t, 3, errs.Len())
	require.Equal(t, "duplicate binding\nfree break\nfree continue", errs.Error())
}

func TestCombineDoesNotMutate(t *testing.T) {
	var a Errors
	a = Append(a, New("e0"))
	a = Append(a, New("e1"))

	first := Combine(a, New("e2")).(Errors).sliceNoCopy()
	second := Combine(a, New("e3")).(Errors).sliceNoCopy()
	require.Equal(t, "e2", first[2].Error())
	require.Equal(t, "e3", second[2].Error())
	require.Equal(t, 2, a.Len())
}

func TestCombineNil(t *testing.T) {
	err := New("error")
	require.Equal(t, err, Combine(err, nil))
	require.Equal(t, err, Combine(nil, err))
}

func TestWrapf(t *testing.T) {
	require.Nil(t, WrapfOrNil(nil, "parsing %s", "a.js"))
	require.EqualError(t, Wrapf(nil, "parsing %s", "a.js"), "parsing a.js")
	require.EqualError(t, Wrapf(New("boom"), "parsing %s", "a.js"), "parsing a.js: boom")
}

type offsetError struct{ offset int }

func (e offsetError) Error() string { return "unexpected token" }

func TestCause(t *testing.T) {
	orig := offsetError{offset: 3}
	err := Wrapf(Wrapf(orig, "parsing %s", "a.js"), "request %d", 1)
	require.EqualError(t, err, "request 1: parsing a.js: unexpected token")
	require.Equal(t, orig, Cause(err))
	require.Nil(t, Cause(nil))
}
