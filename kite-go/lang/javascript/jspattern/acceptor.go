package jspattern

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

const (
	syntaxCharacters = `^$\.*+?()[]{}|`
	// without the u flag `]`, `{` and `}` may appear unescaped
	extendedSyntaxCharacters = `^$\.*+?()[|`

	// noValue is the value of a class atom such as \d that stands for a set
	// of characters and so cannot bound a range.
	noValue rune = -1
)

var controlEscapes = map[rune]rune{
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// state is an acceptor's position in the pattern together with what it has
// learned about groups and backreferences so far. Alternatives run on a copy
// that replaces the original only if the alternative succeeds.
type state struct {
	src     []uint16
	unicode bool
	index   int

	groupNames           []string
	backreferenceNames   []string
	largestBackreference int
	capturingGroups      int
	// a `\k` without a valid group name was seen
	failedNamedBackreference bool
}

func accept(src []uint16, unicode bool) bool {
	s := &state{src: src, unicode: unicode}
	return s.disjunction("") && s.verifyBackreferences()
}

func (s *state) verifyBackreferences() bool {
	if s.unicode && (s.failedNamedBackreference || s.largestBackreference > s.capturingGroups) {
		return false
	}
	// a bare \k is only an identity escape in patterns without named groups
	if s.failedNamedBackreference && len(s.groupNames) > 0 {
		return false
	}
	if len(s.groupNames) > 0 || s.unicode {
		for _, name := range s.backreferenceNames {
			if !contains(s.groupNames, name) {
				return false
			}
		}
	}
	return true
}

// -- backtracking

// try runs f on a copy of s and keeps its progress only if f succeeds.
func (s *state) try(f func(*state) bool) bool {
	sub := *s
	if !f(&sub) {
		return false
	}
	*s = sub
	return true
}

// tryValue is try for alternatives that produce a character value.
func (s *state) tryValue(f func(*state) (rune, bool)) (rune, bool) {
	sub := *s
	v, ok := f(&sub)
	if ok {
		*s = sub
	}
	return v, ok
}

// -- reading

func (s *state) empty() bool {
	return s.index >= len(s.src)
}

// next returns the character at the current index and its width in code
// units. Without the u flag every code unit is a character; with it,
// surrogate pairs are read as one code point. At the end it returns -1.
func (s *state) next() (rune, int) {
	if s.empty() {
		return -1, 0
	}
	c := rune(s.src[s.index])
	if s.unicode && 0xD800 <= c && c <= 0xDBFF && s.index+1 < len(s.src) {
		if t := rune(s.src[s.index+1]); 0xDC00 <= t && t <= 0xDFFF {
			return utf16.DecodeRune(c, t), 2
		}
	}
	return c, 1
}

func (s *state) skip() {
	_, w := s.next()
	s.index += w
}

// match reports whether the pattern continues with the ASCII string str.
func (s *state) match(str string) bool {
	if s.index+len(str) > len(s.src) {
		return false
	}
	for i := 0; i < len(str); i++ {
		if s.src[s.index+i] != uint16(str[i]) {
			return false
		}
	}
	return true
}

func (s *state) eat(str string) bool {
	if !s.match(str) {
		return false
	}
	s.index += len(str)
	return true
}

func (s *state) eatAny(strs ...string) bool {
	for _, str := range strs {
		if s.eat(str) {
			return true
		}
	}
	return false
}

func (s *state) matchIf(pred func(rune) bool) bool {
	return !s.empty() && pred(rune(s.src[s.index]))
}

// eatIf consumes one code unit satisfying pred.
func (s *state) eatIf(pred func(rune) bool) (rune, bool) {
	if !s.matchIf(pred) {
		return 0, false
	}
	c := rune(s.src[s.index])
	s.index++
	return c, true
}

// collect consumes up to limit code units satisfying pred, or any number if
// limit is negative.
func (s *state) collect(limit int, pred func(rune) bool) string {
	var sb strings.Builder
	for limit < 0 || sb.Len() < limit {
		c, ok := s.eatIf(pred)
		if !ok {
			break
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// -- disjunctions and terms

func (s *state) disjunction(terminator string) bool {
	for {
		if terminator != "" && s.eat(terminator) {
			return true
		}
		if !s.match("|") && !s.alternative(terminator) {
			return false
		}
		if !s.eat("|") {
			break
		}
	}
	return terminator == "" || s.eat(terminator)
}

func (s *state) alternative(terminator string) bool {
	for !s.match("|") && !s.empty() && (terminator == "" || !s.match(terminator)) {
		if !s.term() {
			return false
		}
	}
	return true
}

func (s *state) term() bool {
	if s.unicode {
		return s.assertion() || s.quantified((*state).atom)
	}
	// lookaheads are quantifiable without the u flag
	return s.quantified((*state).quantifiableAssertion) || s.assertion() || s.quantified((*state).atom)
}

func (s *state) quantified(atom func(*state) bool) bool {
	return s.try(func(sub *state) bool {
		if !atom(sub) {
			return false
		}
		if sub.match("{") {
			return sub.try((*state).bracedQuantifier) || !sub.unicode
		}
		if sub.eatAny("*", "+", "?") {
			sub.eat("?")
		}
		return true
	})
}

func (s *state) bracedQuantifier() bool {
	if !s.eat("{") {
		return false
	}
	min := s.collect(-1, isDecimalDigit)
	if min == "" {
		return false
	}
	if s.eat(",") && s.matchIf(isDecimalDigit) {
		if compareDecimal(min, s.collect(-1, isDecimalDigit)) > 0 {
			return false
		}
	}
	if !s.eat("}") {
		return false
	}
	s.eat("?")
	return true
}

// invalidBracedQuantifier matches a braced quantifier with nothing to quantify.
func (s *state) invalidBracedQuantifier() bool {
	return s.try(func(sub *state) bool {
		if !sub.eat("{") || sub.collect(-1, isDecimalDigit) == "" {
			return false
		}
		if sub.eat(",") {
			sub.collect(-1, isDecimalDigit)
		}
		return sub.eat("}")
	})
}

// labeledGroup matches `(` followed by prefix and a disjunction up to `)`.
func (s *state) labeledGroup(prefix func(*state) bool) bool {
	return s.try(func(sub *state) bool {
		return sub.eat("(") && prefix(sub) && sub.disjunction(")")
	})
}

func (s *state) assertion() bool {
	if s.eatAny("^", "$", `\b`, `\B`) {
		return true
	}
	return s.labeledGroup(func(sub *state) bool {
		if sub.unicode {
			return sub.eatAny("?=", "?!", "?<=", "?<!")
		}
		return sub.eatAny("?<=", "?<!")
	})
}

func (s *state) quantifiableAssertion() bool {
	return s.labeledGroup(func(sub *state) bool {
		return sub.eatAny("?=", "?!")
	})
}

func nonCapturing(s *state) bool {
	return s.eat("?:")
}

// -- atoms

func (s *state) patternCharacter(syntax string) bool {
	cp, _ := s.next()
	if cp < 0 || cp < 0x80 && strings.ContainsRune(syntax, cp) {
		return false
	}
	s.skip()
	return true
}

func (s *state) atom() bool {
	if s.unicode {
		return s.patternCharacter(syntaxCharacters) ||
			s.eat(".") ||
			s.try(escapedAtom) ||
			s.characterClass() ||
			s.labeledGroup(nonCapturing) ||
			s.grouping()
	}

	matched := s.eat(".") ||
		s.try(escapedAtom) ||
		// `\c` not followed by a control letter is a literal backslash
		s.try(func(sub *state) bool { return sub.eat(`\`) && sub.match("c") }) ||
		s.characterClass() ||
		s.labeledGroup(nonCapturing) ||
		s.grouping()
	if !matched && s.invalidBracedQuantifier() {
		return false
	}
	return matched || s.patternCharacter(extendedSyntaxCharacters)
}

func escapedAtom(s *state) bool {
	return s.eat(`\`) && s.atomEscape()
}

func (s *state) grouping() bool {
	return s.try(func(sub *state) bool {
		if !sub.eat("(") {
			return false
		}
		var name string
		named := sub.try(func(g *state) bool {
			if !g.eat("?") {
				return false
			}
			var ok bool
			name, ok = g.groupName()
			return ok
		})
		if !sub.disjunction(")") {
			return false
		}
		if named {
			if contains(sub.groupNames, name) {
				return false
			}
			sub.groupNames = append(sub.groupNames, name)
		}
		sub.capturingGroups++
		return true
	})
}

// groupName reads `<name>`.
func (s *state) groupName() (string, bool) {
	sub := *s
	if !sub.eat("<") {
		return "", false
	}
	start, ok := sub.identifierChar(scanner.IsIdentifierStart)
	if !ok {
		return "", false
	}
	name := []rune{start}
	for {
		part, ok := sub.identifierChar(scanner.IsIdentifierPart)
		if !ok {
			break
		}
		name = append(name, part)
	}
	if !sub.eat(">") {
		return "", false
	}
	*s = sub
	return string(name), true
}

// identifierChar reads one character of a group name, which may be written
// as a \u escape.
func (s *state) identifierChar(pred func(rune) bool) (rune, bool) {
	if s.empty() {
		return 0, false
	}
	return s.tryValue(func(sub *state) (rune, bool) {
		var cp rune
		if sub.match(`\u`) {
			sub.skip()
			v, ok := sub.unicodeEscape()
			if !ok {
				return 0, false
			}
			cp = v
		} else {
			cp, _ = sub.next()
			sub.skip()
		}
		return cp, pred(cp)
	})
}

// -- escapes

func (s *state) atomEscape() bool {
	if s.decimalEscape() || s.characterClassEscape() {
		return true
	}
	if _, ok := s.characterEscape(); ok {
		return true
	}
	return s.groupNameBackreference()
}

// decimalEscape reads a backreference such as \1; \0 is the null character.
func (s *state) decimalEscape() bool {
	first, ok := s.eatIf(isDecimalDigit)
	if !ok {
		return false
	}
	if first == '0' {
		// with the u flag \0 may not be followed by a digit
		if s.unicode && s.matchIf(isDecimalDigit) {
			s.index--
			return false
		}
		return true
	}
	n := decimalValue(string(first) + s.collect(-1, isDecimalDigit))
	if n > s.largestBackreference {
		s.largestBackreference = n
	}
	return true
}

func (s *state) groupNameBackreference() bool {
	return s.try(func(sub *state) bool {
		if !sub.eat("k") {
			return false
		}
		name, ok := sub.groupName()
		if !ok {
			// fine as an identity escape unless the pattern has named groups,
			// which verifyBackreferences checks once they are all known
			sub.failedNamedBackreference = true
			return !sub.unicode && len(sub.groupNames) == 0
		}
		sub.backreferenceNames = append(sub.backreferenceNames, name)
		return true
	})
}

func (s *state) characterClassEscape() bool {
	if s.eatAny("d", "D", "s", "S", "w", "W") {
		return true
	}
	return s.unicode && s.try(func(sub *state) bool {
		return (sub.eat("p{") || sub.eat("P{")) && sub.unicodePropertyValueExpression() && sub.eat("}")
	})
}

func (s *state) unicodePropertyValueExpression() bool {
	return s.try(func(sub *state) bool {
		name := sub.collect(-1, isPropertyNameChar)
		if name == "" || !sub.eat("=") {
			return false
		}
		value := sub.collect(-1, isPropertyValueChar)
		return value != "" && nonBinaryProperties[name][value]
	}) || s.try(func(sub *state) bool {
		return loneProperties[sub.collect(-1, isPropertyValueChar)]
	})
}

// unicodeEscape reads `uXXXX`, or with the u flag `u{X...}` and escaped
// surrogate pairs, returning the code point.
func (s *state) unicodeEscape() (rune, bool) {
	return s.tryValue(func(sub *state) (rune, bool) {
		if !sub.eat("u") {
			return 0, false
		}
		if sub.unicode && sub.eat("{") {
			hex := sub.collect(-1, isHexDigit)
			if hex == "" || !sub.eat("}") {
				return 0, false
			}
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || v > 0x10FFFF {
				return 0, false
			}
			return rune(v), true
		}

		lead, ok := sub.hex4()
		if !ok {
			return 0, false
		}
		if sub.unicode && 0xD800 <= lead && lead <= 0xDBFF {
			pair, ok := sub.tryValue(func(t *state) (rune, bool) {
				if !t.eat(`\u`) {
					return 0, false
				}
				trail, ok := t.hex4()
				if !ok || trail < 0xDC00 || trail >= 0xE000 {
					return 0, false
				}
				return utf16.DecodeRune(lead, trail), true
			})
			if ok {
				return pair, true
			}
		}
		return lead, true
	})
}

func (s *state) hex4() (rune, bool) {
	hex := s.collect(4, isHexDigit)
	if len(hex) != 4 {
		return 0, false
	}
	v, _ := strconv.ParseUint(hex, 16, 32)
	return rune(v), true
}

// characterEscape reads an escape that stands for a single character and
// returns its value.
func (s *state) characterEscape() (rune, bool) {
	if c, ok := s.eatIf(isControlEscape); ok {
		return controlEscapes[c], true
	}
	if v, ok := s.tryValue(func(sub *state) (rune, bool) {
		if !sub.eat("c") {
			return 0, false
		}
		c, ok := sub.eatIf(isASCIILetter)
		return c % 32, ok
	}); ok {
		return v, true
	}
	if s.try(func(sub *state) bool {
		return sub.eat("0") && !sub.matchIf(isDecimalDigit)
	}) {
		return 0, true
	}
	if v, ok := s.tryValue(func(sub *state) (rune, bool) {
		if !sub.eat("x") {
			return 0, false
		}
		hex := sub.collect(2, isHexDigit)
		if len(hex) != 2 {
			return 0, false
		}
		v, _ := strconv.ParseUint(hex, 16, 32)
		return rune(v), true
	}); ok {
		return v, true
	}
	if v, ok := s.unicodeEscape(); ok {
		return v, true
	}

	if !s.unicode {
		if v, ok := s.legacyOctalEscape(); ok {
			return v, true
		}
		// identity escape
		cp, _ := s.next()
		if cp < 0 || cp == 'c' || cp == 'k' {
			return 0, false
		}
		s.skip()
		return cp, true
	}

	if c, ok := s.eatIf(isSyntaxCharacter); ok {
		return c, true
	}
	if s.eat("/") {
		return '/', true
	}
	return 0, false
}

func (s *state) legacyOctalEscape() (rune, bool) {
	d1, ok := s.eatIf(isOctalDigit)
	if !ok {
		return 0, false
	}
	v := d1 - '0'
	d2, ok := s.eatIf(isOctalDigit)
	if !ok {
		return v, true
	}
	v = v<<3 | (d2 - '0')
	if d1 < '4' {
		if d3, ok := s.eatIf(isOctalDigit); ok {
			v = v<<3 | (d3 - '0')
		}
	}
	return v, true
}

// -- character classes

func (s *state) characterClass() bool {
	return s.try(func(sub *state) bool {
		if !sub.eat("[") {
			return false
		}
		sub.eat("^")
		if sub.eat("]") {
			return true
		}
		return sub.nonEmptyClassRanges() && sub.eat("]")
	})
}

func (s *state) nonEmptyClassRanges() bool {
	atom, ok := s.classAtom()
	return ok && s.finishClassRange(atom)
}

func (s *state) nonEmptyClassRangesNoDash() bool {
	if s.eat("-") && !s.match("]") {
		return false
	}
	atom, ok := s.classAtomNoDash()
	return ok && s.finishClassRange(atom)
}

// finishClassRange continues a class after its first atom, checking that a
// range has ordered bounds.
func (s *state) finishClassRange(atom rune) bool {
	if s.eat("-") {
		if s.match("]") {
			return true
		}
		other, ok := s.classAtom()
		if !ok {
			return false
		}
		if atom == noValue || other == noValue {
			// [\d-a] is a union of \d, `-` and `a` without the u flag
			if s.unicode {
				return false
			}
		} else if atom > other {
			return false
		}
		if s.match("]") {
			return true
		}
		return s.nonEmptyClassRanges()
	}
	if s.match("]") {
		return true
	}
	return s.nonEmptyClassRangesNoDash()
}

func (s *state) classAtom() (rune, bool) {
	if s.eat("-") {
		return '-', true
	}
	return s.classAtomNoDash()
}

func (s *state) classAtomNoDash() (rune, bool) {
	if s.eat(`\`) {
		if v, ok := s.classEscape(); ok {
			return v, true
		}
		if !s.unicode && s.match("c") {
			return '\\', true
		}
		return 0, false
	}
	cp, w := s.next()
	if cp < 0 || cp == ']' || cp == '-' {
		return 0, false
	}
	s.index += w
	return cp, true
}

func (s *state) classEscape() (rune, bool) {
	if s.eat("b") {
		return '\b', true
	}
	if s.unicode && s.eat("-") {
		return '-', true
	}
	if !s.unicode {
		if v, ok := s.tryValue(func(sub *state) (rune, bool) {
			if !sub.eat("c") {
				return 0, false
			}
			c, ok := sub.eatIf(isClassControlChar)
			return c % 32, ok
		}); ok {
			return v, true
		}
	}
	if s.characterClassEscape() {
		return noValue, true
	}
	return s.characterEscape()
}

// -- character sets

func isDecimalDigit(c rune) bool {
	return scanner.IsDecimalDigit(c)
}

func isOctalDigit(c rune) bool {
	return '0' <= c && c <= '7'
}

func isHexDigit(c rune) bool {
	return scanner.HexValue(c) >= 0
}

func isASCIILetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isControlEscape(c rune) bool {
	_, ok := controlEscapes[c]
	return ok
}

func isClassControlChar(c rune) bool {
	return isDecimalDigit(c) || c == '_'
}

func isSyntaxCharacter(c rune) bool {
	return c < 0x80 && strings.ContainsRune(syntaxCharacters, c)
}

func isPropertyNameChar(c rune) bool {
	return isASCIILetter(c) || c == '_'
}

func isPropertyValueChar(c rune) bool {
	return isPropertyNameChar(c) || isDecimalDigit(c)
}

// -- helpers

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// compareDecimal compares two non-negative decimal strings of any length.
func compareDecimal(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// decimalValue parses a backreference number, saturating instead of overflowing.
func decimalValue(digits string) int {
	const max = 1 << 30
	var n int
	for _, d := range digits {
		n = n*10 + int(d-'0')
		if n > max {
			return max
		}
	}
	return n
}
