package scanner

import (
	"fmt"
	"unicode/utf16"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
)

// Options configures a Scanner.
type Options struct {
	// Module selects the module goal symbol, which disables HTML-like comments.
	Module bool
	// Comments records every comment skipped between tokens.
	Comments bool
}

// Scanner turns UTF-16 source into tokens, holding one token of lookahead.
// Scanning errors panic through Fail; see RecoverSyntaxError.
type Scanner struct {
	// immutable state
	src  []uint16
	opts Options

	lookahead     Token
	newlineBefore bool

	// scanning position
	index, line, lineStart int
	// end of the previously lexed token
	lastIndex, lastLine, lastLineStart int
	// start of the lookahead token
	startIndex, startLine, startLineStart int

	comments []ast.Comment
}

// State is a snapshot of a Scanner that Restore rewinds to exactly.
type State struct {
	index, line, lineStart                int
	lastIndex, lastLine, lastLineStart    int
	startIndex, startLine, startLineStart int
	lookahead                             Token
	newlineBefore                         bool
	numComments                           int
}

// NewScanner scans the first token of src.
func NewScanner(src []uint16, opts Options) (s *Scanner, err error) {
	defer RecoverSyntaxError(&err)
	s = &Scanner{src: src, opts: opts}
	s.lookahead = s.collectToken()
	s.newlineBefore = false
	return s, nil
}

// EncodeSource converts UTF-8 text to the UTF-16 code units the scanner works on.
func EncodeSource(src string) []uint16 {
	return utf16.Encode([]rune(src))
}

// Source returns the code units being scanned.
func (s *Scanner) Source() []uint16 {
	return s.src
}

// Peek returns the lookahead token.
func (s *Scanner) Peek() Token {
	return s.lookahead
}

// NewlineBefore reports whether a line terminator precedes the lookahead token.
func (s *Scanner) NewlineBefore() bool {
	return s.newlineBefore
}

// EOF reports whether the lookahead is the end of input.
func (s *Scanner) EOF() bool {
	return s.lookahead.Kind == EOS
}

// Lex returns the lookahead token and scans the next one. At the end of
// input it keeps returning EOS.
func (s *Scanner) Lex() Token {
	if s.lookahead.Kind == EOS {
		return s.lookahead
	}
	prev := s.lookahead
	s.lookahead = s.collectToken()
	return prev
}

// Save snapshots the scanner.
func (s *Scanner) Save() State {
	return State{
		index: s.index, line: s.line, lineStart: s.lineStart,
		lastIndex: s.lastIndex, lastLine: s.lastLine, lastLineStart: s.lastLineStart,
		startIndex: s.startIndex, startLine: s.startLine, startLineStart: s.startLineStart,
		lookahead:     s.lookahead,
		newlineBefore: s.newlineBefore,
		numComments:   len(s.comments),
	}
}

// Restore rewinds the scanner to st.
func (s *Scanner) Restore(st State) {
	s.index, s.line, s.lineStart = st.index, st.line, st.lineStart
	s.lastIndex, s.lastLine, s.lastLineStart = st.lastIndex, st.lastLine, st.lastLineStart
	s.startIndex, s.startLine, s.startLineStart = st.startIndex, st.startLine, st.startLineStart
	s.lookahead = st.lookahead
	s.newlineBefore = st.newlineBefore
	s.comments = s.comments[:st.numComments]
}

// Comments returns the comments skipped so far.
func (s *Scanner) Comments() []ast.Comment {
	return s.comments
}

// Location is the start of the lookahead token.
func (s *Scanner) Location() ast.Location {
	return ast.Location{Line: s.startLine + 1, Column: s.startIndex - s.startLineStart, Offset: s.startIndex}
}

// LastTokenEnd is the end of the most recently lexed token.
func (s *Scanner) LastTokenEnd() ast.Location {
	return ast.Location{Line: s.lastLine + 1, Column: s.lastIndex - s.lastLineStart, Offset: s.lastIndex}
}

func (s *Scanner) here() ast.Location {
	return ast.Location{Line: s.line + 1, Column: s.index - s.lineStart, Offset: s.index}
}

// Errorf builds an error located at the start of the lookahead token.
func (s *Scanner) Errorf(format string, args ...interface{}) *SyntaxError {
	return s.ErrorAt(s.Location(), format, args...)
}

// ErrorAt builds an error at loc.
func (s *Scanner) ErrorAt(loc ast.Location, format string, args ...interface{}) *SyntaxError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &SyntaxError{Offset: loc.Offset, Line: loc.Line, Column: loc.Column, Message: msg}
}

// Illegal builds an error for the code unit at the scanning position.
func (s *Scanner) Illegal() *SyntaxError {
	s.startIndex, s.startLine, s.startLineStart = s.index, s.line, s.lineStart
	if s.index < len(s.src) {
		ch := string(utf16.Decode(s.src[s.index : s.index+1]))
		return s.Errorf(MsgUnexpectedIllegalToken, QuoteWith(ch, '"'))
	}
	return s.Errorf(MsgUnexpectedEOS)
}

// Unexpected builds the error for finding tok where it is not allowed.
func (s *Scanner) Unexpected(tok Token) *SyntaxError {
	switch tok.Kind.Class() {
	case ClassEOF:
		return s.Errorf(MsgUnexpectedEOS)
	case ClassIdent:
		return s.Errorf(MsgUnexpectedIdentifier)
	case ClassKeyword:
		switch tok.Kind {
		case FutureReservedWord:
			return s.Errorf(MsgUnexpectedReservedWord)
		case FutureStrictReservedWord:
			return s.Errorf(MsgStrictReservedWord)
		}
		return s.Errorf(MsgUnexpectedToken, tok.Text(s.src))
	case ClassNumeric:
		return s.Errorf(MsgUnexpectedNumber)
	case ClassTemplate:
		return s.Errorf(MsgUnexpectedTemplate)
	case ClassPunctuator:
		return s.Errorf(MsgUnexpectedToken, tok.Kind.String())
	case ClassString:
		return s.Errorf(MsgUnexpectedString)
	}
	return s.Errorf(MsgUnexpectedToken, tok.ValueString(s.src))
}

func (s *Scanner) collectToken() Token {
	s.newlineBefore = false
	start := s.index

	s.lastIndex, s.lastLine, s.lastLineStart = s.index, s.line, s.lineStart

	s.skipComment()

	s.startIndex, s.startLine, s.startLineStart = s.index, s.line, s.lineStart

	if s.index >= len(s.src) {
		return Token{Kind: EOS, Start: s.index, End: s.index, WhitespaceStart: start}
	}
	tok := s.advance()
	tok.WhitespaceStart = start
	return tok
}

func (s *Scanner) advance() Token {
	ch := rune(s.src[s.index])

	if ch < 0x80 {
		if punctuatorStart[ch] {
			return s.scanPunctuator()
		}
		if IsIdentifierStart(ch) || ch == '\\' {
			return s.scanIdentifier()
		}
		// a dot can also start a number
		if ch == '.' {
			if s.index+1 < len(s.src) && IsDecimalDigit(rune(s.src[s.index+1])) {
				return s.scanNumericLiteral()
			}
			return s.scanPunctuator()
		}
		if ch == '\'' || ch == '"' {
			return s.scanStringLiteral()
		}
		if IsDecimalDigit(ch) {
			return s.scanNumericLiteral()
		}
		if ch == '`' {
			return s.scanTemplateElement()
		}
		Fail(s.Illegal())
	}
	if IsIdentifierStart(ch) || isLeadSurrogate(uint16(ch)) {
		return s.scanIdentifier()
	}
	Fail(s.Illegal())
	return Token{}
}

func (s *Scanner) at(i int) uint16 {
	if i < len(s.src) {
		return s.src[i]
	}
	return 0
}

// -- comments

func (s *Scanner) addComment(kind ast.CommentKind, start ast.Location, textStart, textEnd int) {
	if !s.opts.Comments {
		return
	}
	s.comments = append(s.comments, ast.Comment{
		Kind: kind,
		Text: string(utf16.Decode(s.src[textStart:textEnd])),
		Span: ast.Span{Start: start, End: s.here()},
	})
}

func (s *Scanner) skipSingleLineComment(offset int, kind ast.CommentKind) {
	start := s.here()
	s.index += offset
	textStart := s.index
	for s.index < len(s.src) {
		ch := s.src[s.index]
		if IsLineTerminator(rune(ch)) {
			s.addComment(kind, start, textStart, s.index)
			s.index++
			s.newlineBefore = true
			if ch == '\r' && s.at(s.index) == '\n' {
				s.index++
			}
			s.lineStart = s.index
			s.line++
			return
		}
		s.index++
	}
	s.addComment(kind, start, textStart, s.index)
}

// skipMultiLineComment reports whether the comment contains a line terminator.
func (s *Scanner) skipMultiLineComment() bool {
	start := s.here()
	s.index += 2
	textStart := s.index
	length := len(s.src)
	var sawNewline bool
	i := s.index
	for i < length {
		switch ch := s.src[i]; ch {
		case '*':
			if i+1 < length && s.src[i+1] == '/' {
				s.index = i + 2
				s.addComment(ast.MultiLine, start, textStart, i)
				return sawNewline
			}
			i++
		case '\n', 0x2028, 0x2029:
			sawNewline = true
			s.newlineBefore = true
			i++
			s.lineStart = i
			s.line++
		case '\r':
			sawNewline = true
			s.newlineBefore = true
			if i+1 < length && s.src[i+1] == '\n' {
				i++
			}
			i++
			s.lineStart = i
			s.line++
		default:
			i++
		}
	}
	s.index = i
	Fail(s.Illegal())
	return false
}

func (s *Scanner) skipComment() {
	lineStart := s.index == 0
	length := len(s.src)

	for s.index < length {
		ch := rune(s.src[s.index])
		switch {
		case IsWhitespace(ch):
			s.index++
		case IsLineTerminator(ch):
			s.newlineBefore = true
			s.index++
			if ch == '\r' && s.at(s.index) == '\n' {
				s.index++
			}
			s.lineStart = s.index
			s.line++
			lineStart = true
		case ch == '/':
			if s.index+1 >= length {
				return
			}
			switch s.src[s.index+1] {
			case '/':
				s.skipSingleLineComment(2, ast.SingleLine)
				lineStart = true
			case '*':
				lineStart = s.skipMultiLineComment() || lineStart
			default:
				return
			}
		case !s.opts.Module && lineStart && ch == '-':
			if s.index+2 >= length {
				return
			}
			if s.src[s.index+1] == '-' && s.src[s.index+2] == '>' {
				s.skipSingleLineComment(3, ast.HTMLClose)
			} else {
				return
			}
		case ch == '<' && !s.opts.Module && s.index+4 <= length &&
			s.src[s.index+1] == '!' && s.src[s.index+2] == '-' && s.src[s.index+3] == '-':
			s.skipSingleLineComment(4, ast.HTMLOpen)
		default:
			return
		}
	}
}

// -- punctuators

func (s *Scanner) scanPunctuatorKind() Kind {
	ch1 := s.src[s.index]
	next := func(i int) uint16 { return s.at(s.index + i) }

	switch ch1 {
	case '.':
		if next(1) == '.' && next(2) == '.' {
			return Ellipsis
		}
		return Period
	case '(', ')', ';', ',', '{', '}', '[', ']', ':', '?', '~':
		return oneCharPunctuator[ch1]
	}

	if next(1) == '=' {
		switch ch1 {
		case '=':
			if next(2) == '=' {
				return EqStrict
			}
			return Eq
		case '!':
			if next(2) == '=' {
				return NeStrict
			}
			return Ne
		case '|':
			return AssignBitOr
		case '+':
			return AssignAdd
		case '-':
			return AssignSub
		case '*':
			return AssignMul
		case '<':
			return Lte
		case '>':
			return Gte
		case '/':
			return AssignDiv
		case '%':
			return AssignMod
		case '^':
			return AssignBitXor
		case '&':
			return AssignBitAnd
		}
	}

	if s.index+1 < len(s.src) {
		ch2 := next(1)
		if ch1 == ch2 {
			if s.index+2 < len(s.src) {
				ch3 := next(2)
				switch {
				case ch1 == '>' && ch3 == '>':
					if next(3) == '=' {
						return AssignShrUnsigned
					}
					return ShrUnsigned
				case ch1 == '*' && ch3 == '=':
					return AssignExp
				case ch1 == '<' && ch3 == '=':
					return AssignShl
				case ch1 == '>' && ch3 == '=':
					return AssignShr
				}
			}
			switch ch1 {
			case '*':
				return Exp
			case '+':
				return Inc
			case '-':
				return Dec
			case '<':
				return Shl
			case '>':
				return Shr
			case '&':
				return And
			case '|':
				return Or
			}
		} else if ch1 == '=' && ch2 == '>' {
			return Arrow
		}
	}
	return oneCharPunctuator[ch1]
}

func (s *Scanner) scanPunctuator() Token {
	start := s.index
	kind := s.scanPunctuatorKind()
	s.index += len(kind.String())
	return Token{Kind: kind, Start: start, End: s.index}
}
