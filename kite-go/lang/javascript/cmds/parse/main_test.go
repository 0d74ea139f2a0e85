package main

import (
	"testing"

	"github.com/kiteco/esparse/kite-go/lang/javascript/parser"
	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerpt(t *testing.T) {
	src := "var a;\nb +;\n"
	_, err := parser.ParseScript(kitectx.Background(), []byte(src), parser.Options{})
	require.Error(t, err)
	serr := err.(*parser.SyntaxError)

	assert.Equal(t, serr.Error()+":\nb +;\n   ^", excerpt(src, serr))
}
