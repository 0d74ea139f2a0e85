package scanner

import (
	"strings"
)

// Quote renders s as an ECMAScript string literal. It picks the delimiter that needs
// fewer escapes, preferring double quotes.
func Quote(s string) string {
	delim := '"'
	if strings.Count(s, `"`) > strings.Count(s, `'`) {
		delim = '\''
	}
	return QuoteWith(s, delim)
}

// QuoteWith renders s as a string literal delimited by delim.
func QuoteWith(s string, delim rune) string {
	var b strings.Builder
	b.WriteRune(delim)
	for _, ch := range s {
		switch ch {
		case delim:
			b.WriteByte('\\')
			b.WriteRune(delim)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case 0x2028:
			b.WriteString(`\u2028`)
		case 0x2029:
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(ch)
		}
	}
	b.WriteRune(delim)
	return b.String()
}
