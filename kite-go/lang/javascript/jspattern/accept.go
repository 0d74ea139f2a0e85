// Package jspattern checks the bodies of ECMAScript regular expression
// literals against the pattern grammar, including the Annex B extensions
// that apply without the u flag. It answers yes or no and builds nothing.
package jspattern

import (
	"unicode/utf16"

	lru "github.com/hashicorp/golang-lru"
	"github.com/kiteco/esparse/kite-golib/status"
)

// memoSize is the number of (pattern, flag) results remembered across parses.
const memoSize = 4096

var (
	section      = status.NewSection("lang/javascript (jspattern)")
	memoHitRatio = section.Ratio("Pattern memo hits")
	rejected     = section.Counter("Rejected patterns")

	memo *lru.Cache
)

func init() {
	var err error
	memo, err = lru.New(memoSize)
	if err != nil {
		panic(err)
	}
}

type memoKey struct {
	pattern string
	unicode bool
}

// Accept reports whether pattern, the text between the slashes of a regular
// expression literal, is valid. unicode selects the grammar used with the u
// flag. Results are memoized.
func Accept(pattern string, unicode bool) bool {
	key := memoKey{pattern: pattern, unicode: unicode}
	if ok, found := memo.Get(key); found {
		memoHitRatio.Hit()
		return ok.(bool)
	}
	memoHitRatio.Miss()

	ok := AcceptUTF16(utf16.Encode([]rune(pattern)), unicode)
	memo.Add(key, ok)
	return ok
}

// AcceptUTF16 is Accept for a pattern given as UTF-16 code units, which is
// how the pattern is indexed without the u flag. It bypasses the memo.
func AcceptUTF16(pattern []uint16, unicode bool) bool {
	ok := accept(pattern, unicode)
	if !ok {
		rejected.Add(1)
	}
	return ok
}
