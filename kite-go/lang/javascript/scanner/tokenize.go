package scanner

import (
	"github.com/kiteco/esparse/kite-golib/kitectx"
)

// Tokenize scans src into a token slice, ending with the EOS token. Without a
// parser to say whether a `/` starts a regular expression, a slash is taken as
// a regular expression after a punctuator other than `)`, `]` or `}`, after a
// keyword other than `this` or `super`, inside a template substitution and at
// the start of input.
func Tokenize(ctx kitectx.Context, src []uint16, module bool) (toks []Token, err error) {
	defer RecoverSyntaxError(&err)

	s, err := NewScanner(src, Options{Module: module})
	if err != nil {
		return nil, err
	}

	// tracks whether each open brace belongs to a template substitution
	var braces []bool
	prev := Token{Kind: EOS}
	for {
		ctx.CheckAbort()

		switch la := s.Peek(); la.Kind {
		case Div, AssignDiv:
			if regexpAllowed(prev) {
				s.RescanRegExp()
			}
		case RBrace:
			if n := len(braces); n > 0 && braces[n-1] {
				s.RescanTemplate()
			}
		}

		tok := s.Lex()
		toks = append(toks, tok)

		switch tok.Kind {
		case EOS:
			return toks, nil
		case LBrace:
			braces = append(braces, false)
		case RBrace:
			if n := len(braces); n > 0 {
				braces = braces[:n-1]
			}
		case Template:
			if src[tok.Start] == '}' {
				// continuation of a template whose substitution just closed
				braces = braces[:len(braces)-1]
			}
			if !tok.Tail {
				braces = append(braces, true)
			}
		}
		prev = tok
	}
}

func regexpAllowed(prev Token) bool {
	switch prev.Kind.Class() {
	case ClassEOF:
		return true
	case ClassPunctuator:
		switch prev.Kind {
		case RParen, RBrack, RBrace:
			return false
		}
		return true
	case ClassTemplate:
		return !prev.Tail
	case ClassKeyword:
		switch prev.Kind {
		case This, Super:
			return false
		}
		return true
	}
	return false
}
