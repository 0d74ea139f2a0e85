package scanner

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	idStart = rangetable.Merge(
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
	)
	idContinue = rangetable.Merge(
		idStart,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	)
	// Zs plus the BOM; tab, VT, FF and space are handled on the ASCII fast path
	spaces = rangetable.Merge(
		unicode.Zs,
		rangetable.New(0xFEFF),
	)
)

// IsIdentifierStart reports whether cp may begin an IdentifierName.
func IsIdentifierStart(cp rune) bool {
	if cp < 0x80 {
		return cp == '$' || cp == '_' || 'a' <= cp && cp <= 'z' || 'A' <= cp && cp <= 'Z'
	}
	return unicode.Is(idStart, cp)
}

// IsIdentifierPart reports whether cp may continue an IdentifierName.
func IsIdentifierPart(cp rune) bool {
	if cp < 0x80 {
		return IsIdentifierStart(cp) || IsDecimalDigit(cp)
	}
	return cp == 0x200C || cp == 0x200D || unicode.Is(idContinue, cp)
}

// IsDecimalDigit reports whether ch is 0-9.
func IsDecimalDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// IsLineTerminator reports whether ch is LF, CR, LS or PS.
func IsLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == 0x2028 || ch == 0x2029
}

// IsWhitespace reports whether ch is a WhiteSpace code point (line terminators excluded).
func IsWhitespace(ch rune) bool {
	if ch < 0x80 {
		return ch == ' ' || ch == '\t' || ch == 0x0B || ch == 0x0C
	}
	return unicode.Is(spaces, ch)
}

// HexValue returns the value of a hex digit, or -1.
func HexValue(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	}
	return -1
}

func isLeadSurrogate(ch uint16) bool {
	return 0xD800 <= ch && ch <= 0xDBFF
}

func isTrailSurrogate(ch uint16) bool {
	return 0xDC00 <= ch && ch <= 0xDFFF
}

func decodeSurrogates(lead, trail uint16) rune {
	return (rune(lead)-0xD800)*0x400 + (rune(trail) - 0xDC00) + 0x10000
}

// punctuatorStart is indexed by ASCII code unit.
var punctuatorStart = [0x80]bool{
	'!': true, '%': true, '&': true, '(': true, ')': true, '*': true, '+': true, ',': true, '-': true,
	'/': true, ':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '[': true, ']': true,
	'^': true, '{': true, '|': true, '}': true, '~': true,
}

var oneCharPunctuator = [0x80]Kind{
	'!': Not, '%': Mod, '&': BitAnd, '(': LParen, ')': RParen, '*': Mul, '+': Add, ',': Comma,
	'-': Sub, '.': Period, '/': Div, ':': Colon, ';': Semicolon, '<': Lt, '=': Assign, '>': Gt,
	'?': Conditional, '[': LBrack, ']': RBrack, '^': BitXor, '{': LBrace, '|': BitOr, '}': RBrace,
	'~': BitNot,
}
