package scanner

import (
	"math"
	"testing"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string, module bool) []Token {
	toks, err := Tokenize(kitectx.Background(), EncodeSource(src), module)
	require.NoError(t, err, src)
	return toks
}

func kinds(toks []Token) []Kind {
	var out []Kind
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func assertKinds(t *testing.T, src string, expected ...Kind) {
	toks := tokenize(t, src, false)
	assert.Equal(t, expected, kinds(toks), src)
}

func scanError(t *testing.T, src string) *SyntaxError {
	_, err := Tokenize(kitectx.Background(), EncodeSource(src), false)
	require.Error(t, err, src)
	serr, ok := err.(*SyntaxError)
	require.True(t, ok, "expected *SyntaxError, got %T", err)
	return serr
}

func TestScanner_Basic(t *testing.T) {
	assertKinds(t, "a = b + 1;", Identifier, Assign, Identifier, Add, NumericLiteral, Semicolon, EOS)
	assertKinds(t, "", EOS)
	assertKinds(t, "  \t\n ", EOS)
}

func TestScanner_Punctuators(t *testing.T) {
	assertKinds(t, "a >>>= b ** c **= d",
		Identifier, AssignShrUnsigned, Identifier, Exp, Identifier, AssignExp, Identifier, EOS)
	assertKinds(t, "(...x) => x === y !== z",
		LParen, Ellipsis, Identifier, RParen, Arrow, Identifier, EqStrict, Identifier, NeStrict, Identifier, EOS)
	assertKinds(t, "a.b ? c : d",
		Identifier, Period, Identifier, Conditional, Identifier, Colon, Identifier, EOS)
	assertKinds(t, "x++ && y-- || ~z", Identifier, Inc, And, Identifier, Dec, Or, BitNot, Identifier, EOS)
	assertKinds(t, "a <<= 1 >> 2", Identifier, AssignShl, NumericLiteral, Shr, NumericLiteral, EOS)
	assertKinds(t, "a.", Identifier, Period, EOS)
}

func TestScanner_Keywords(t *testing.T) {
	assertKinds(t, "let async await yield enum static implements",
		Let, Async, Await, Yield, FutureReservedWord, Identifier, Identifier, EOS)
	assertKinds(t, "if in instanceof typeof this null true false",
		If, In, Instanceof, Typeof, This, NullLiteral, TrueLiteral, FalseLiteral, EOS)
}

func TestScanner_EscapedIdentifier(t *testing.T) {
	toks := tokenize(t, `a\u0062 a\u{62}`, false)
	require.Len(t, toks, 3)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "ab", toks[0].Value)
	assert.Equal(t, "ab", toks[1].Value)

	toks = tokenize(t, "café ǅ", false)
	require.Len(t, toks, 3)
	assert.Equal(t, "café", toks[0].Value)
	assert.Equal(t, "ǅ", toks[1].Value)

	err := scanError(t, `a\x`)
	assert.Equal(t, `Unexpected "x"`, err.Message)
}

func TestScanner_Numbers(t *testing.T) {
	for src, expected := range map[string]float64{
		"0":      0,
		"42":     42,
		"0x1F":   31,
		"0o17":   15,
		"0B101":  5,
		"017":    15,
		"08":     8,
		"09.5":   9.5,
		"1.5e3":  1500,
		".5":     0.5,
		"5.":     5,
		"1E-2":   0.01,
		"0.0001": 0.0001,
	} {
		toks := tokenize(t, src, false)
		require.Len(t, toks, 2, src)
		assert.Equal(t, NumericLiteral, toks[0].Kind, src)
		assert.Equal(t, expected, toks[0].Number, src)
	}

	toks := tokenize(t, "1e400", false)
	assert.True(t, math.IsInf(toks[0].Number, 1))

	toks = tokenize(t, "017 08 17", false)
	assert.True(t, toks[0].Octal)
	assert.False(t, toks[0].Noctal)
	assert.True(t, toks[1].Octal)
	assert.True(t, toks[1].Noctal)
	assert.False(t, toks[2].Octal)
}

func TestScanner_BadNumbers(t *testing.T) {
	err := scanError(t, "3in x")
	assert.Equal(t, `Unexpected "i"`, err.Message)
	assert.Equal(t, 1, err.Line)
	assert.Equal(t, 1, err.Column)
	assert.Equal(t, 1, err.Offset)

	assert.Equal(t, MsgUnexpectedEOS, scanError(t, "0x").Message)
	assert.Equal(t, `Unexpected "g"`, scanError(t, "0xg").Message)
	assert.Equal(t, `Unexpected "2"`, scanError(t, "0b12").Message)
	assert.Equal(t, `Unexpected "8"`, scanError(t, "0o8").Message)
	assert.Equal(t, `Unexpected ";"`, scanError(t, "1e;").Message)
}

func TestScanner_Strings(t *testing.T) {
	for src, expected := range map[string]string{
		`"a\nb"`:              "a\nb",
		`'\x41B\u{43}'`:       "ABC",
		`"\u{1F600}"`:         "\U0001F600",
		`"😀"`:                 "\U0001F600",
		`'it\'s'`:             "it's",
		`"\101"`:              "A",
		`"a\` + "\r\n" + `b"`: "ab",
		`"\q"`:                "q",
	} {
		toks := tokenize(t, src, false)
		require.Len(t, toks, 2, src)
		assert.Equal(t, StringLiteral, toks[0].Kind, src)
		assert.Equal(t, expected, toks[0].Value, src)
	}
}

func TestScanner_OctalEscapes(t *testing.T) {
	toks := tokenize(t, `"\101" "\0" "\08" "\7a" "\400"`, false)
	require.Len(t, toks, 6)
	assert.Equal(t, "101", toks[0].OctalEscape)
	assert.Equal(t, "", toks[1].OctalEscape)
	assert.Equal(t, "\x00", toks[1].Value)
	assert.Equal(t, "", toks[2].OctalEscape)
	assert.Equal(t, "\x008", toks[2].Value)
	assert.Equal(t, "7", toks[3].OctalEscape)
	assert.Equal(t, "\x07a", toks[3].Value)
	assert.Equal(t, "40", toks[4].OctalEscape)
	assert.Equal(t, " 0", toks[4].Value)

	assert.Equal(t, `Unexpected "8"`, scanError(t, `"\8"`).Message)
}

func TestScanner_BadStrings(t *testing.T) {
	assert.Equal(t, MsgUnexpectedEOS, scanError(t, `"abc`).Message)
	assert.Equal(t, `Unexpected "\n"`, scanError(t, "'a\nb'").Message)
	assert.Equal(t, `Unexpected "{"`, scanError(t, `"\u{110000}"`).Message)
	assert.Equal(t, `Unexpected "}"`, scanError(t, `"\u{}"`).Message)
	assert.Equal(t, `Unexpected "1"`, scanError(t, `"\u12"`).Message)
	assert.Equal(t, `Unexpected "#"`, scanError(t, "a # b").Message)
}

func TestScanner_Templates(t *testing.T) {
	src := "`a${b}c${ {d} }e`"
	toks := tokenize(t, src, false)
	require.Equal(t, []Kind{Template, Identifier, Template, LBrace, Identifier, RBrace, Template, EOS}, kinds(toks))

	s := EncodeSource(src)
	assert.Equal(t, "`a${", toks[0].Text(s))
	assert.False(t, toks[0].Tail)
	assert.Equal(t, "}c${", toks[2].Text(s))
	assert.Equal(t, "}e`", toks[6].Text(s))
	assert.True(t, toks[6].Tail)

	assert.Equal(t, MsgUnexpectedEOS, scanError(t, "`abc").Message)
	assert.Equal(t, `Unexpected "a"`, scanError(t, "`\\01a`").Message)
}

func TestScanner_RegExp(t *testing.T) {
	toks := tokenize(t, "x = /a[/]b/gi;", false)
	require.Equal(t, []Kind{Identifier, Assign, RegExpLiteral, Semicolon, EOS}, kinds(toks))
	assert.Equal(t, "/a[/]b/gi", toks[2].Value)
	assert.Equal(t, 4, toks[2].Start)
	assert.Equal(t, 13, toks[2].End)

	toks = tokenize(t, "/=a/", false)
	require.Equal(t, []Kind{RegExpLiteral, EOS}, kinds(toks))
	assert.Equal(t, "/=a/", toks[0].Value)

	assertKinds(t, "a / b / c", Identifier, Div, Identifier, Div, Identifier, EOS)
	assertKinds(t, "(a) / b", LParen, Identifier, RParen, Div, Identifier, EOS)
	assertKinds(t, "return /b/", Return, RegExpLiteral, EOS)

	err := scanError(t, "/[a-z/")
	assert.Equal(t, MsgUnterminatedRegExp, err.Message)
	assert.Equal(t, 0, err.Offset)

	assert.Equal(t, MsgUnterminatedRegExp, scanError(t, "x = /a\n/").Message)
	assert.Equal(t, MsgInvalidRegExpFlags, scanError(t, `/a/g\u0067`).Message)
}

func TestScanner_Comments(t *testing.T) {
	s, err := NewScanner(EncodeSource("// hi\n/* x */ a"), Options{Comments: true})
	require.NoError(t, err)
	assert.Equal(t, "a", s.Peek().Value)

	comments := s.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, ast.Comment{
		Kind: ast.SingleLine,
		Text: " hi",
		Span: ast.Span{Start: ast.Location{Line: 1, Column: 0, Offset: 0}, End: ast.Location{Line: 1, Column: 5, Offset: 5}},
	}, comments[0])
	assert.Equal(t, ast.Comment{
		Kind: ast.MultiLine,
		Text: " x ",
		Span: ast.Span{Start: ast.Location{Line: 2, Column: 0, Offset: 6}, End: ast.Location{Line: 2, Column: 7, Offset: 13}},
	}, comments[1])

	// the unterminated comment is only reached when the token after `a` is scanned
	s, err = NewScanner(EncodeSource("a /* b"), Options{})
	require.NoError(t, err)
	assert.Equal(t, Identifier, s.Peek().Kind)
	lexErr := func() (err error) {
		defer RecoverSyntaxError(&err)
		s.Lex()
		return nil
	}()
	require.Error(t, lexErr)
	assert.Equal(t, MsgUnexpectedEOS, lexErr.(*SyntaxError).Message)

	serr := scanError(t, "a /* b")
	assert.Equal(t, MsgUnexpectedEOS, serr.Message)
	assert.Equal(t, 6, serr.Offset)
}

func TestScanner_HTMLComments(t *testing.T) {
	assertKinds(t, "a <!-- b\nc", Identifier, Identifier, EOS)
	assertKinds(t, "a\n--> b\nc", Identifier, Identifier, EOS)
	assertKinds(t, "a --> b", Identifier, Dec, Gt, Identifier, EOS)

	toks := tokenize(t, "a <!-- b", true)
	assert.Equal(t, []Kind{Identifier, Lt, Not, Dec, Identifier, EOS}, kinds(toks))

	s, err := NewScanner(EncodeSource("<!-- one\n--> two\nx"), Options{Comments: true})
	require.NoError(t, err)
	comments := s.Comments()
	require.Len(t, comments, 2)
	assert.Equal(t, ast.HTMLOpen, comments[0].Kind)
	assert.Equal(t, " one", comments[0].Text)
	assert.Equal(t, ast.HTMLClose, comments[1].Kind)
	assert.Equal(t, " two", comments[1].Text)
}

func TestScanner_Positions(t *testing.T) {
	s, err := NewScanner(EncodeSource("a\r\n  b"), Options{})
	require.NoError(t, err)
	assert.False(t, s.NewlineBefore())

	tok := s.Lex()
	assert.Equal(t, "a", tok.Value)
	assert.True(t, s.NewlineBefore())
	assert.Equal(t, ast.Location{Line: 2, Column: 2, Offset: 5}, s.Location())
	assert.Equal(t, ast.Location{Line: 1, Column: 1, Offset: 1}, s.LastTokenEnd())

	s.Lex()
	assert.True(t, s.EOF())
	assert.Equal(t, EOS, s.Lex().Kind)
	assert.Equal(t, EOS, s.Lex().Kind)
}

func TestScanner_SaveRestore(t *testing.T) {
	s, err := NewScanner(EncodeSource("a /* 1 */ b /* 2 */ c"), Options{Comments: true})
	require.NoError(t, err)

	st := s.Save()
	loc := s.Location()
	s.Lex()
	s.Lex()
	assert.Equal(t, "c", s.Peek().Value)
	assert.Len(t, s.Comments(), 2)

	s.Restore(st)
	assert.Equal(t, "a", s.Peek().Value)
	assert.Equal(t, loc, s.Location())
	assert.Len(t, s.Comments(), 0)

	// restoring twice is the same as restoring once
	s.Restore(st)
	assert.Equal(t, st, s.Save())
}

func TestScanner_Unexpected(t *testing.T) {
	s, err := NewScanner(EncodeSource("x"), Options{})
	require.NoError(t, err)

	for _, c := range []struct {
		tok      Token
		expected string
	}{
		{Token{Kind: EOS}, "Unexpected end of input"},
		{Token{Kind: Identifier, Value: "x"}, "Unexpected identifier"},
		{Token{Kind: NumericLiteral}, "Unexpected number"},
		{Token{Kind: StringLiteral}, "Unexpected string"},
		{Token{Kind: Template}, "Unexpected template"},
		{Token{Kind: FutureReservedWord}, "Unexpected reserved word"},
		{Token{Kind: RParen}, `Unexpected token ")"`},
		{Token{Kind: Arrow}, `Unexpected token "=>"`},
	} {
		assert.Equal(t, c.expected, s.Unexpected(c.tok).Message)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"abc"`, Quote("abc"))
	assert.Equal(t, `'a"b'`, Quote(`a"b`))
	assert.Equal(t, `"a'b"`, Quote("a'b"))
	assert.Equal(t, `"x\ny\\z"`, Quote("x\ny\\z"))
	assert.Equal(t, `"\""`, QuoteWith(`"`, '"'))
}

func TestReservedWords(t *testing.T) {
	assert.True(t, IsReservedWord("yield"))
	assert.False(t, IsReservedWord("let"))
	assert.True(t, IsStrictModeReservedWord("let"))
	assert.True(t, IsStrictModeReservedWord("static"))
	assert.False(t, IsStrictModeReservedWord("async"))
	assert.True(t, IsRestrictedWord("eval"))
	assert.False(t, IsRestrictedWord("evil"))
}

func TestKindClass(t *testing.T) {
	assert.Equal(t, ClassPunctuator, Arrow.Class())
	assert.Equal(t, ClassKeyword, Typeof.Class())
	assert.Equal(t, ClassKeyword, This.Class())
	assert.Equal(t, ClassKeyword, Async.Class())
	assert.Equal(t, ClassNull, NullLiteral.Class())
	assert.Equal(t, ClassBoolean, FalseLiteral.Class())
	assert.True(t, Instanceof.IsIdentifierName())
	assert.False(t, Add.IsIdentifierName())
}
