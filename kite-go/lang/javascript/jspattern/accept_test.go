package jspattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type patternCase struct {
	pattern string
	ok      bool
}

func assertPatterns(t *testing.T, unicode bool, cases []patternCase) {
	for _, c := range cases {
		assert.Equal(t, c.ok, AcceptUTF16(encode(c.pattern), unicode), "pattern %q (unicode=%v)", c.pattern, unicode)
	}
}

func encode(s string) []uint16 {
	var units []uint16
	for _, r := range s {
		if r >= 0x10000 {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
			continue
		}
		units = append(units, uint16(r))
	}
	return units
}

func TestAccept_Basic(t *testing.T) {
	cases := []patternCase{
		{"", true},
		{"abc", true},
		{"a|b|", true},
		{"(a)", true},
		{"(?:a)", true},
		{"a*b+?c?", true},
		{"a{1,2}", true},
		{"a{2,}?", true},
		{"^a$", true},
		{`\bfoo\B`, true},
		{"(?=a)b", true},
		{"(?<=a)b", true},
		{"[a-z]", true},
		{"[^a-z0-9_]", true},
		{"[]", true},
		{"[^]", true},
		{"[-a]", true},
		{"[a-]", true},
		{`\d+\s*\w`, true},
		{`\x41A\0`, true},
		{`\cJ`, true},

		{"(", false},
		{")", false},
		{"a)", false},
		{"*", false},
		{"+a", false},
		{"a**", false},
		{"[", false},
		{"[z-a]", false},
		{"a{2,1}", false},
		{"{1}", false},
	}
	assertPatterns(t, false, cases)
	assertPatterns(t, true, cases)
}

func TestAccept_AnnexB(t *testing.T) {
	assertPatterns(t, false, []patternCase{
		{"a{", true},
		{"}", true},
		{"]", true},
		{`\c`, true},
		{`[\c]`, true},
		{`\1`, true},
		{`\8`, true},
		{`\q`, true},
		{`\u{1F600}`, true},
		{`[\d-a]`, true},
		{"(?=a)*", true},
		{`\k`, true},
		{`\012`, true},
	})
	assertPatterns(t, true, []patternCase{
		{"a{", false},
		{"}", false},
		{"]", false},
		{`\c`, false},
		{`\1`, false},
		{`(a)\1`, true},
		{`\q`, false},
		{`\u{1F600}`, true},
		{`\u{110000}`, false},
		{`\u{}`, false},
		{`[\d-a]`, false},
		{"(?=a)*", false},
		{`\k`, false},
		{`\012`, false},
		{`\/`, true},
		{`\-`, false},
		{`[\-]`, true},
	})
}

func TestAccept_NamedGroups(t *testing.T) {
	cases := []patternCase{
		{`(?<year>\d{4})-\k<year>`, true},
		{`(?<a>x)(?<a>y)`, false},
		{`(?<a>x)\k<b>`, false},
		{`(?<a>x)\k`, false},
		{`(?<$b_1>x)`, true},
		{`(?<1a>x)`, false},
	}
	assertPatterns(t, false, cases)
	assertPatterns(t, true, cases)
}

func TestAccept_SurrogatePairs(t *testing.T) {
	// without the u flag an astral character is two code units, so the range
	// runs from a trail surrogate down to a lead surrogate
	assertPatterns(t, false, []patternCase{{"[😀-😁]", false}, {"😀+", true}})
	assertPatterns(t, true, []patternCase{{"[😀-😁]", true}, {"😀{2}", true}})
}

func TestAccept_UnicodeProperties(t *testing.T) {
	assertPatterns(t, true, []patternCase{
		{`\p{Lu}`, true},
		{`\P{ASCII_Hex_Digit}`, true},
		{`\p{Script=Latin}`, true},
		{`\p{sc=Grek}`, true},
		{`\p{General_Category=Letter}`, true},
		{`\p{Script=Letter}`, false},
		{`\p{Foo}`, false},
		{`\p{Lu`, false},
		{`[\p{Lu}-a]`, false},
	})
	// \p is an identity escape without the u flag
	assertPatterns(t, false, []patternCase{{`\p{Foo}`, true}})
}

func TestAccept_Memo(t *testing.T) {
	assert.False(t, Accept("[z-a]", false))
	assert.False(t, Accept("[z-a]", false))
	assert.True(t, memo.Contains(memoKey{pattern: "[z-a]"}))

	assert.True(t, Accept("a{", false))
	assert.False(t, Accept("a{", true))
}

func TestCompareDecimal(t *testing.T) {
	assert.Equal(t, 0, compareDecimal("007", "7"))
	assert.Equal(t, -1, compareDecimal("9", "10"))
	assert.Equal(t, 1, compareDecimal("99999999999999999999", "99999999999999999998"))
	assert.Equal(t, 1<<30, decimalValue("99999999999999999999"))
}
