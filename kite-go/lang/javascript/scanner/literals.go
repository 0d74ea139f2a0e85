package scanner

import (
	"math/big"
	"strconv"
	"unicode/utf16"
)

// -- identifiers

func (s *Scanner) scanIdentifier() Token {
	start := s.index
	var id string
	if s.src[s.index] == '\\' {
		id = s.escapedIdentifier()
	} else {
		id = s.identifier()
	}
	return Token{Kind: keywordKind(id), Start: start, End: s.index, Value: id}
}

func (s *Scanner) identifier() string {
	start := s.index
	check := IsIdentifierStart
	i := s.index
	for ; i < len(s.src); i++ {
		ch := s.src[i]
		if ch == '\\' || isLeadSurrogate(ch) {
			// go back and take the slow path
			s.index = start
			return s.escapedIdentifier()
		}
		if !check(rune(ch)) {
			break
		}
		check = IsIdentifierPart
	}
	s.index = i
	return string(utf16.Decode(s.src[start:i]))
}

func (s *Scanner) escapedIdentifier() string {
	var id []rune
	check := IsIdentifierStart
	for s.index < len(s.src) {
		ch := s.src[s.index]
		start := s.index
		s.index++
		var code rune
		switch {
		case ch == '\\':
			if s.index >= len(s.src) || s.src[s.index] != 'u' {
				Fail(s.Illegal())
			}
			s.index++
			code = s.scanUnicode()
		case isLeadSurrogate(ch):
			if s.index >= len(s.src) {
				Fail(s.Illegal())
			}
			trail := s.src[s.index]
			s.index++
			if !isTrailSurrogate(trail) {
				Fail(s.Illegal())
			}
			code = decodeSurrogates(ch, trail)
		default:
			code = rune(ch)
		}
		if !check(code) {
			if len(id) == 0 {
				Fail(s.Illegal())
			}
			s.index = start
			return string(id)
		}
		check = IsIdentifierPart
		id = append(id, code)
	}
	return string(id)
}

// scanUnicode scans the part of a \u escape after the u.
func (s *Scanner) scanUnicode() rune {
	if s.index >= len(s.src) {
		Fail(s.Illegal())
	}
	if s.src[s.index] == '{' {
		i := s.index + 1
		var value rune
		var ch uint16
		for i < len(s.src) {
			ch = s.src[i]
			hex := HexValue(rune(ch))
			if hex < 0 {
				break
			}
			value = value<<4 | rune(hex)
			if value > 0x10FFFF {
				Fail(s.Illegal())
			}
			i++
		}
		if ch != '}' {
			Fail(s.Illegal())
		}
		if i == s.index+1 {
			// point the error at the closing brace
			s.index++
			Fail(s.Illegal())
		}
		s.index = i + 1
		return value
	}

	if s.index+4 > len(s.src) {
		Fail(s.Illegal())
	}
	var value rune
	for i := 0; i < 4; i++ {
		hex := HexValue(rune(s.src[s.index+i]))
		if hex < 0 {
			Fail(s.Illegal())
		}
		value = value<<4 | rune(hex)
	}
	s.index += 4
	return value
}

func (s *Scanner) scanHexEscape2() rune {
	if s.index+2 > len(s.src) {
		return -1
	}
	r1 := HexValue(rune(s.src[s.index]))
	if r1 < 0 {
		return -1
	}
	r2 := HexValue(rune(s.src[s.index+1]))
	if r2 < 0 {
		return -1
	}
	s.index += 2
	return rune(r1<<4 | r2)
}

// -- numbers

func (s *Scanner) numberToken(start int, value float64) Token {
	return Token{Kind: NumericLiteral, Start: start, End: s.index, Number: value}
}

func (s *Scanner) text(start int) string {
	return string(utf16.Decode(s.src[start:s.index]))
}

// parseDecimal parses a DecimalLiteral. Literals beyond the float64 range
// evaluate to +Inf, as in the language.
func parseDecimal(text string) float64 {
	f, _ := strconv.ParseFloat(text, 64)
	return f
}

func radixValue(digits string, base int) float64 {
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0
	}
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

func (s *Scanner) scanNumericLiteral() Token {
	start := s.index
	ch := s.src[s.index]

	if ch == '0' {
		s.index++
		if s.index >= len(s.src) {
			return s.numberToken(start, 0)
		}
		switch ch = s.src[s.index]; {
		case ch == 'x' || ch == 'X':
			s.index++
			return s.scanHexLiteral(start)
		case ch == 'o' || ch == 'O':
			s.index++
			return s.scanOctalLiteral(start)
		case ch == 'b' || ch == 'B':
			s.index++
			return s.scanBinaryLiteral(start)
		case '0' <= ch && ch <= '9':
			return s.scanLegacyOctalLiteral(start)
		}
	} else if ch != '.' {
		for '0' <= ch && ch <= '9' {
			s.index++
			if s.index == len(s.src) {
				return s.numberToken(start, parseDecimal(s.text(start)))
			}
			ch = s.src[s.index]
		}
	}

	s.eatDecimalLiteralSuffix()

	if s.index != len(s.src) && IsIdentifierStart(rune(s.src[s.index])) {
		Fail(s.Illegal())
	}
	return s.numberToken(start, parseDecimal(s.text(start)))
}

func (s *Scanner) eatDecimalLiteralSuffix() {
	if s.index == len(s.src) {
		return
	}
	if s.src[s.index] == '.' {
		s.index++
		if s.index == len(s.src) {
			return
		}
	}
	ch := s.src[s.index]
	for '0' <= ch && ch <= '9' {
		s.index++
		if s.index == len(s.src) {
			return
		}
		ch = s.src[s.index]
	}
	if ch == 'e' || ch == 'E' {
		s.index++
		if s.index == len(s.src) {
			Fail(s.Illegal())
		}
		ch = s.src[s.index]
		if ch == '+' || ch == '-' {
			s.index++
			if s.index == len(s.src) {
				Fail(s.Illegal())
			}
			ch = s.src[s.index]
		}
		if !('0' <= ch && ch <= '9') {
			Fail(s.Illegal())
		}
		for '0' <= ch && ch <= '9' {
			s.index++
			if s.index == len(s.src) {
				break
			}
			ch = s.src[s.index]
		}
	}
}

func (s *Scanner) scanHexLiteral(start int) Token {
	i := s.index
	for i < len(s.src) && HexValue(rune(s.src[i])) >= 0 {
		i++
	}
	if i == s.index {
		Fail(s.Illegal())
	}
	if i < len(s.src) && IsIdentifierStart(rune(s.src[i])) {
		Fail(s.Illegal())
	}
	digits := string(utf16.Decode(s.src[s.index:i]))
	s.index = i
	return s.numberToken(start, radixValue(digits, 16))
}

func (s *Scanner) scanOctalLiteral(start int) Token {
	for s.index < len(s.src) {
		ch := s.src[s.index]
		if '0' <= ch && ch <= '7' {
			s.index++
		} else if IsIdentifierPart(rune(ch)) {
			Fail(s.Illegal())
		} else {
			break
		}
	}
	if s.index-start == 2 {
		Fail(s.Illegal())
	}
	return s.numberToken(start, radixValue(s.text(start)[2:], 8))
}

func (s *Scanner) scanBinaryLiteral(start int) Token {
	offset := s.index - start
	for s.index < len(s.src) {
		ch := s.src[s.index]
		if ch != '0' && ch != '1' {
			break
		}
		s.index++
	}
	if s.index-start <= offset {
		Fail(s.Illegal())
	}
	if s.index < len(s.src) {
		ch := rune(s.src[s.index])
		if IsIdentifierStart(ch) || IsDecimalDigit(ch) {
			Fail(s.Illegal())
		}
	}
	return s.numberToken(start, radixValue(s.text(start)[offset:], 2))
}

// scanLegacyOctalLiteral scans `017` style literals, and `08`/`09` style ones
// which are decimal despite the leading zero.
func (s *Scanner) scanLegacyOctalLiteral(start int) Token {
	octal := true
	for s.index < len(s.src) {
		ch := s.src[s.index]
		if '0' <= ch && ch <= '7' {
			s.index++
		} else if ch == '8' || ch == '9' {
			octal = false
			s.index++
		} else if IsIdentifierPart(rune(ch)) {
			Fail(s.Illegal())
		} else {
			break
		}
	}

	if !octal {
		s.eatDecimalLiteralSuffix()
		tok := s.numberToken(start, parseDecimal(s.text(start)))
		tok.Octal, tok.Noctal = true, true
		return tok
	}
	tok := s.numberToken(start, radixValue(s.text(start)[1:], 8))
	tok.Octal = true
	return tok
}

// -- strings and templates

func (s *Scanner) scanStringLiteral() Token {
	quote := s.src[s.index]
	start := s.index
	s.index++

	var cooked []uint16
	var octal string
	for s.index < len(s.src) {
		ch := s.src[s.index]
		switch {
		case ch == quote:
			s.index++
			return Token{Kind: StringLiteral, Start: start, End: s.index, Value: string(utf16.Decode(cooked)), OctalEscape: octal}
		case ch == '\\':
			cooked = s.scanStringEscape(cooked, &octal)
		case IsLineTerminator(rune(ch)):
			Fail(s.Illegal())
		default:
			cooked = append(cooked, ch)
			s.index++
		}
	}
	Fail(s.Illegal())
	return Token{}
}

func appendCodePoint(buf []uint16, cp rune) []uint16 {
	if cp <= 0xFFFF {
		return append(buf, uint16(cp))
	}
	r1, r2 := utf16.EncodeRune(cp)
	return append(buf, uint16(r1), uint16(r2))
}

// scanStringEscape decodes the escape sequence at the scanning position and
// appends its value to cooked. A legacy octal escape is stored in octal.
func (s *Scanner) scanStringEscape(cooked []uint16, octal *string) []uint16 {
	s.index++
	if s.index == len(s.src) {
		Fail(s.Illegal())
	}
	ch := s.src[s.index]

	if IsLineTerminator(rune(ch)) {
		// line continuation
		s.index++
		if ch == '\r' && s.at(s.index) == '\n' {
			s.index++
		}
		s.lineStart = s.index
		s.line++
		return cooked
	}

	switch ch {
	case 'n':
		s.index++
		return append(cooked, '\n')
	case 'r':
		s.index++
		return append(cooked, '\r')
	case 't':
		s.index++
		return append(cooked, '\t')
	case 'b':
		s.index++
		return append(cooked, '\b')
	case 'f':
		s.index++
		return append(cooked, '\f')
	case 'v':
		s.index++
		return append(cooked, '\v')
	case 'u', 'x':
		s.index++
		if s.index >= len(s.src) {
			Fail(s.Illegal())
		}
		var value rune
		if ch == 'u' {
			value = s.scanUnicode()
		} else {
			value = s.scanHexEscape2()
		}
		if value < 0 {
			Fail(s.Illegal())
		}
		return appendCodePoint(cooked, value)
	case '8', '9':
		Fail(s.Illegal())
	}

	if '0' <= ch && ch <= '7' {
		octalStart := s.index
		// three digits only when the escape starts with 0-3
		octLen := 1
		if ch <= '3' {
			octLen = 0
		}
		var code rune
		for octLen < 3 && '0' <= ch && ch <= '7' {
			s.index++
			if octLen > 0 || ch != '0' {
				*octal = string(utf16.Decode(s.src[octalStart:s.index]))
			}
			code = code*8 + rune(ch-'0')
			octLen++
			if s.index == len(s.src) {
				Fail(s.Illegal())
			}
			ch = s.src[s.index]
		}
		return appendCodePoint(cooked, code)
	}

	s.index++
	return append(cooked, ch)
}

func (s *Scanner) scanTemplateElement() Token {
	start := s.index
	s.index++
	for s.index < len(s.src) {
		switch ch := s.src[s.index]; ch {
		case '`':
			s.index++
			return Token{Kind: Template, Start: start, End: s.index, Tail: true}
		case '$':
			if s.at(s.index+1) == '{' {
				s.index += 2
				return Token{Kind: Template, Start: start, End: s.index}
			}
			s.index++
		case '\\':
			var octal string
			s.scanStringEscape(nil, &octal)
			if octal != "" {
				Fail(s.Illegal())
			}
		case '\r':
			s.line++
			s.index++
			if s.at(s.index) == '\n' {
				s.index++
			}
			s.lineStart = s.index
		case '\n', 0x2028, 0x2029:
			s.line++
			s.index++
			s.lineStart = s.index
		default:
			s.index++
		}
	}
	Fail(s.Illegal())
	return Token{}
}

// RescanTemplate rescans the lookahead `}` as the continuation of a template
// literal after a substitution.
func (s *Scanner) RescanTemplate() {
	s.index, s.line, s.lineStart = s.startIndex, s.startLine, s.startLineStart
	s.lookahead = s.scanTemplateElement()
}

// -- regular expressions

// RescanRegExp rescans the lookahead `/` or `/=` as the start of a regular
// expression literal.
func (s *Scanner) RescanRegExp() {
	prefix := "/"
	if s.lookahead.Kind == AssignDiv {
		prefix = "/="
	}
	s.lookahead = s.scanRegExp(prefix)
}

func (s *Scanner) scanRegExp(prefix string) Token {
	str := utf16.Encode([]rune(prefix))
	terminated := false
	classMarker := false
	for s.index < len(s.src) {
		ch := s.src[s.index]
		if ch == '\\' {
			str = append(str, ch)
			s.index++
			if s.index >= len(s.src) {
				break
			}
			ch = s.src[s.index]
			if IsLineTerminator(rune(ch)) {
				Fail(s.Errorf(MsgUnterminatedRegExp))
			}
			str = append(str, ch)
			s.index++
			continue
		}
		if IsLineTerminator(rune(ch)) {
			Fail(s.Errorf(MsgUnterminatedRegExp))
		}
		if classMarker {
			if ch == ']' {
				classMarker = false
			}
		} else if ch == '/' {
			terminated = true
			str = append(str, ch)
			s.index++
			break
		} else if ch == '[' {
			classMarker = true
		}
		str = append(str, ch)
		s.index++
	}
	if !terminated {
		Fail(s.Errorf(MsgUnterminatedRegExp))
	}

	for s.index < len(s.src) {
		ch := s.src[s.index]
		if ch == '\\' {
			Fail(s.Errorf(MsgInvalidRegExpFlags))
		}
		if !IsIdentifierPart(rune(ch)) {
			break
		}
		s.index++
		str = append(str, ch)
	}
	return Token{Kind: RegExpLiteral, Start: s.startIndex, End: s.index, Value: string(utf16.Decode(str))}
}
