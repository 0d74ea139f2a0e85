package scanner

import (
	"unicode/utf16"
)

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds. The order of the punctuators, keywords and literals matters for
// Kind.Class and is relied upon by the parser's lookup tables.
const (
	EOS Kind = iota
	LParen
	RParen
	LBrack
	RBrack
	LBrace
	RBrace
	Colon
	Semicolon
	Period
	Ellipsis
	Conditional
	Inc
	Dec
	Assign
	AssignBitOr
	AssignBitXor
	AssignBitAnd
	AssignShl
	AssignShr
	AssignShrUnsigned
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	Comma
	Or
	And
	BitOr
	BitXor
	BitAnd
	Shl
	Shr
	ShrUnsigned
	Add
	Sub
	Mul
	Div
	Mod
	Exp
	Eq
	Ne
	EqStrict
	NeStrict
	Lt
	Gt
	Lte
	Gte
	Arrow
	Instanceof
	In
	Not
	BitNot
	Delete
	Typeof
	Void
	Break
	Case
	Catch
	Continue
	Debugger
	Default
	Do
	Else
	Finally
	For
	Function
	If
	New
	Return
	Switch
	This
	Throw
	Try
	Var
	While
	With
	Super
	NullLiteral
	TrueLiteral
	FalseLiteral
	NumericLiteral
	StringLiteral
	RegExpLiteral
	Identifier
	FutureReservedWord
	FutureStrictReservedWord
	Const
	Let
	Yield
	Extends
	Class
	Import
	Export
	Await
	Async
	Illegal
	Template

	numKinds
)

// TokenClass groups kinds the way error messages and identifier checks need them.
type TokenClass int

// Token classes
const (
	ClassEOF TokenClass = iota
	ClassPunctuator
	ClassKeyword
	ClassNull
	ClassBoolean
	ClassNumeric
	ClassString
	ClassRegExp
	ClassIdent
	ClassIllegal
	ClassTemplate
)

var kindNames = [numKinds]string{
	EOS: "EOS", LParen: "(", RParen: ")", LBrack: "[", RBrack: "]", LBrace: "{", RBrace: "}",
	Colon: ":", Semicolon: ";", Period: ".", Ellipsis: "...", Conditional: "?", Inc: "++", Dec: "--",
	Assign: "=", AssignBitOr: "|=", AssignBitXor: "^=", AssignBitAnd: "&=", AssignShl: "<<=",
	AssignShr: ">>=", AssignShrUnsigned: ">>>=", AssignAdd: "+=", AssignSub: "-=", AssignMul: "*=",
	AssignDiv: "/=", AssignMod: "%=", AssignExp: "**=", Comma: ",", Or: "||", And: "&&", BitOr: "|",
	BitXor: "^", BitAnd: "&", Shl: "<<", Shr: ">>", ShrUnsigned: ">>>", Add: "+", Sub: "-", Mul: "*",
	Div: "/", Mod: "%", Exp: "**", Eq: "==", Ne: "!=", EqStrict: "===", NeStrict: "!==", Lt: "<",
	Gt: ">", Lte: "<=", Gte: ">=", Arrow: "=>", Instanceof: "instanceof", In: "in", Not: "!",
	BitNot: "~", Delete: "delete", Typeof: "typeof", Void: "void", Break: "break", Case: "case",
	Catch: "catch", Continue: "continue", Debugger: "debugger", Default: "default", Do: "do",
	Else: "else", Finally: "finally", For: "for", Function: "function", If: "if", New: "new",
	Return: "return", Switch: "switch", This: "this", Throw: "throw", Try: "try", Var: "var",
	While: "while", With: "with", Super: "super", NullLiteral: "null", TrueLiteral: "true",
	FalseLiteral: "false", NumericLiteral: "number", StringLiteral: "string", RegExpLiteral: "regexp",
	Identifier: "identifier", FutureReservedWord: "future-reserved-word",
	FutureStrictReservedWord: "future-strict-reserved-word", Const: "const", Let: "let",
	Yield: "yield", Extends: "extends", Class: "class", Import: "import", Export: "export",
	Await: "await", Async: "async", Illegal: "ILLEGAL", Template: "template",
}

// String returns the punctuator text, the keyword, or a descriptive name for literal kinds.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Class returns the token class of k.
func (k Kind) Class() TokenClass {
	switch {
	case k == EOS:
		return ClassEOF
	case k == Instanceof, k == In, k >= Delete && k <= Super, k >= FutureReservedWord && k <= Async:
		return ClassKeyword
	case k == NullLiteral:
		return ClassNull
	case k == TrueLiteral, k == FalseLiteral:
		return ClassBoolean
	case k == NumericLiteral:
		return ClassNumeric
	case k == StringLiteral:
		return ClassString
	case k == RegExpLiteral:
		return ClassRegExp
	case k == Identifier:
		return ClassIdent
	case k == Illegal:
		return ClassIllegal
	case k == Template:
		return ClassTemplate
	default:
		return ClassPunctuator
	}
}

// IsIdentifierName reports whether tokens of this kind can be used as a property name after `.`.
func (k Kind) IsIdentifierName() bool {
	switch k.Class() {
	case ClassIdent, ClassKeyword, ClassBoolean, ClassNull:
		return true
	}
	return false
}

// Token is one lexical token. Offsets are in UTF-16 code units.
type Token struct {
	Kind Kind `json:"kind"`
	// Start and End delimit the token's source text.
	Start int `json:"start"`
	End   int `json:"end"`
	// WhitespaceStart is where the whitespace and comments preceding the token begin.
	WhitespaceStart int `json:"-"`

	// Value is the identifier name after escape decoding, the cooked value of a
	// string literal, or the full text of a regular expression literal.
	Value string `json:"value,omitempty"`
	// Number is the value of a numeric literal.
	Number float64 `json:"number,omitempty"`
	// Octal marks a legacy octal numeric literal (`017`); Noctal marks `08`/`09` style literals.
	Octal  bool `json:"octal,omitempty"`
	Noctal bool `json:"noctal,omitempty"`
	// OctalEscape holds the first legacy octal escape sequence of a string literal.
	OctalEscape string `json:"octalEscape,omitempty"`
	// Tail is set on template elements ending with a backtick.
	Tail bool `json:"tail,omitempty"`
}

// Text returns the source text of the token.
func (t Token) Text(src []uint16) string {
	return string(utf16.Decode(src[t.Start:t.End]))
}

// ValueString is the text used for the token in diagnostics.
func (t Token) ValueString(src []uint16) string {
	switch t.Kind {
	case Identifier, StringLiteral, RegExpLiteral:
		return t.Value
	case EOS:
		return ""
	}
	if t.Kind.Class() == ClassKeyword {
		return t.Value
	}
	return t.Text(src)
}
