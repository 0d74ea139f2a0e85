package parser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
	"github.com/kiteco/esparse/kite-golib/kitectx"
)

// DefaultMaxDepth bounds production nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// SyntaxError is the fatal error returned by the parse functions.
type SyntaxError = scanner.SyntaxError

// Options for a parser
type Options struct {
	Module                bool      // Module parses with the module goal symbol, which implies strict mode
	Locations             bool      // Locations fills in the Span of every node
	Comments              bool      // Comments collects source comments into Result.Comments
	MaxDepth              int       // MaxDepth bounds production nesting, zero means DefaultMaxDepth
	Trace                 bool      // Trace prints the productions entered and the tokens consumed
	TraceWriter           io.Writer // TraceWriter receives tracing output, defaults to stdout
	SkipPatternValidation bool      // SkipPatternValidation accepts any regular expression body
	UseCache              bool      // UseCache consults the shared parse cache
}

// Result of a successful parse
type Result struct {
	Program  ast.Program
	Comments []ast.Comment
}

// parseContext holds the grammar parameters and cover-grammar bookkeeping
// that productions save and restore around their sub-parses.
type parseContext struct {
	strict         bool
	inFunctionBody bool
	inParameter    bool
	allowIn        bool
	allowYield     bool
	allowAwait     bool

	// cover grammar state, see isolateCoverGrammar
	isBindingElement   bool
	isAssignmentTarget bool
	firstExprError     *SyntaxError
	// position of the first `await` read as an identifier, used to reject
	// `async (await) => x`
	firstAwaitLocation *ast.Location
}

type parser struct {
	// we violate the standard guideline of not storing ctx in another object to avoid threading this everywhere
	ctx  kitectx.Context
	s    *scanner.Scanner
	opts Options

	// module goal symbol, fixed for the whole parse
	module bool

	parseContext

	depth int

	// Tracing
	indent int
}

// Parse parses src, a UTF-8 encoded script or module depending on opts.Module.
// All offsets in the result count UTF-16 code units.
func Parse(ctx kitectx.Context, src []byte, opts Options) (*Result, error) {
	ctx.CheckAbort()
	defer parseDuration.DeferRecord(time.Now())

	if opts.UseCache {
		if entry, ok := getCachedParse(src, opts); ok {
			cacheHitRatio.Hit()
			return entry.res, entry.err
		}
		cacheHitRatio.Miss()
	}

	res, err := parse(ctx, scanner.EncodeSource(string(src)), opts)
	if err != nil {
		recordFailure(err)
	}
	if opts.UseCache {
		cacheParse(src, opts, res, err)
	}
	return res, err
}

// ParseScript parses src with the script goal symbol.
func ParseScript(ctx kitectx.Context, src []byte, opts Options) (*ast.Script, error) {
	opts.Module = false
	res, err := Parse(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	return res.Program.(*ast.Script), nil
}

// ParseModule parses src with the module goal symbol.
func ParseModule(ctx kitectx.Context, src []byte, opts Options) (*ast.Module, error) {
	opts.Module = true
	res, err := Parse(ctx, src, opts)
	if err != nil {
		return nil, err
	}
	return res.Program.(*ast.Module), nil
}

// ParseUTF16 parses source that is already encoded as UTF-16 code units. It
// never consults the cache.
func ParseUTF16(ctx kitectx.Context, src []uint16, opts Options) (*Result, error) {
	ctx.CheckAbort()
	defer parseDuration.DeferRecord(time.Now())

	res, err := parse(ctx, src, opts)
	if err != nil {
		recordFailure(err)
	}
	return res, err
}

func parse(ctx kitectx.Context, src []uint16, opts Options) (res *Result, err error) {
	s, err := scanner.NewScanner(src, scanner.Options{Module: opts.Module, Comments: opts.Comments})
	if err != nil {
		return nil, err
	}
	p := newParser(ctx, s, opts)
	defer p.recoverParse(&err)

	var prog ast.Program
	if opts.Module {
		prog = p.parseModule()
	} else {
		prog = p.parseScript()
	}
	res = &Result{Program: prog}
	if opts.Comments {
		res.Comments = s.Comments()
	}
	return res, nil
}

func newParser(ctx kitectx.Context, s *scanner.Scanner, opts Options) *parser {
	ctx.CheckAbort()

	if opts.TraceWriter == nil {
		opts.TraceWriter = os.Stdout
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := &parser{
		ctx:    ctx,
		s:      s,
		opts:   opts,
		module: opts.Module,
	}
	p.strict = opts.Module
	p.allowIn = true
	p.isAssignmentTarget = true
	return p
}

// recoverParse turns a syntax error raised with scanner.Fail back into an error.
// Context expiry and programming errors keep unwinding.
func (p *parser) recoverParse(err *error) {
	if ex := recover(); ex != nil {
		serr, ok := scanner.FromPanic(ex)
		if !ok {
			panic(ex)
		}
		if p.opts.Trace {
			p.printTraceSymbol("**", "ERROR:", serr.Message)
		}
		*err = serr
	}
}

// -- tracing

func (p *parser) printTrace(a ...interface{}) {
	p.printTraceSymbol("  ", a...)
}

func (p *parser) printTraceSymbol(symbol string, a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	fmt.Fprintf(p.opts.TraceWriter, "%s%9d: ", symbol, p.s.Location().Offset)
	i := 2 * p.indent
	for i > len(dots) {
		fmt.Fprint(p.opts.TraceWriter, dots)
		i -= len(dots)
	}
	fmt.Fprint(p.opts.TraceWriter, dots[:i])
	fmt.Fprintln(p.opts.TraceWriter, a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "..."))
func un(p *parser) {
	p.indent--
	p.printTrace(")")
}

// nest guards the recursion of productions that can nest arbitrarily deep.
// Usage pattern: defer p.nest()()
func (p *parser) nest() func() {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		p.fail(p.s.Errorf(msgMaxDepth))
	}
	return p.unnest
}

func (p *parser) unnest() {
	p.depth--
}

// -- tokens

// lex consumes the lookahead token and returns it.
func (p *parser) lex() scanner.Token {
	p.ctx.CheckAbort()

	tok := p.s.Peek()
	if p.opts.Trace {
		p.traceToken(tok)
	}
	return p.s.Lex()
}

func (p *parser) traceToken(tok scanner.Token) {
	s := tok.Kind.String()
	switch tok.Kind.Class() {
	case scanner.ClassPunctuator, scanner.ClassKeyword:
		p.printTraceSymbol(" -", "\""+s+"\"")
	case scanner.ClassEOF:
		p.printTraceSymbol(" -", s)
	default:
		lit := tok.Text(p.s.Source())
		if len(lit) > 50 || strings.ContainsAny(lit, "\r\n") {
			p.printTraceSymbol(" -", s, fmt.Sprintf("<%d chars not shown>", len(lit)))
		} else {
			p.printTraceSymbol(" -", s, lit)
		}
	}
}

func (p *parser) peek() scanner.Token {
	return p.s.Peek()
}

func (p *parser) match(k scanner.Kind) bool {
	return p.s.Peek().Kind == k
}

func (p *parser) eat(k scanner.Kind) bool {
	if !p.match(k) {
		return false
	}
	p.lex()
	return true
}

// expect consumes a token of kind k or fails.
func (p *parser) expect(k scanner.Kind) scanner.Token {
	if !p.match(k) {
		p.unexpected(p.peek())
	}
	return p.lex()
}

func (p *parser) eof() bool {
	return p.s.EOF()
}

func (p *parser) newlineBefore() bool {
	return p.s.NewlineBefore()
}

// matchIdentifier reports whether the lookahead can be read as an identifier.
// Outside modules `await` is an identifier; its first position is remembered.
func (p *parser) matchIdentifier() bool {
	switch p.peek().Kind {
	case scanner.Identifier, scanner.Let, scanner.Yield, scanner.Async:
		return true
	case scanner.Await:
		if p.module {
			return false
		}
		if p.firstAwaitLocation == nil {
			loc := p.s.Location()
			p.firstAwaitLocation = &loc
		}
		return true
	}
	return false
}

// matchContextualKeyword matches identifiers such as `of`, `as` and `from`,
// which must be written without escapes.
func (p *parser) matchContextualKeyword(kw string) bool {
	tok := p.peek()
	return tok.Kind == scanner.Identifier && tok.End-tok.Start == len(kw) && tok.Text(p.s.Source()) == kw
}

func (p *parser) eatContextualKeyword(kw string) bool {
	if p.matchContextualKeyword(kw) {
		p.lex()
		return true
	}
	return false
}

func (p *parser) expectContextualKeyword(kw string) {
	if !p.eatContextualKeyword(kw) {
		p.unexpected(p.peek())
	}
}

// consumeSemicolon implements automatic semicolon insertion.
func (p *parser) consumeSemicolon() {
	if p.eat(scanner.Semicolon) || p.newlineBefore() {
		return
	}
	if !p.eof() && !p.match(scanner.RBrace) {
		p.unexpected(p.peek())
	}
}

// -- errors

func (p *parser) fail(err *SyntaxError) {
	scanner.Fail(err)
}

func (p *parser) unexpected(tok scanner.Token) {
	p.fail(p.s.Unexpected(tok))
}

// errorf fails at the start of the lookahead token.
func (p *parser) errorf(format string, args ...interface{}) {
	p.fail(p.s.Errorf(format, args...))
}

func (p *parser) errorAt(loc ast.Location, format string, args ...interface{}) {
	p.fail(p.s.ErrorAt(loc, format, args...))
}

// -- locations

func (p *parser) startNode() ast.Location {
	return p.s.Location()
}

// finish records the span of n from start to the end of the last consumed token.
func (p *parser) finish(start ast.Location, n ast.Node) {
	if p.opts.Locations {
		n.SetSpan(ast.Span{Start: start, End: p.s.LastTokenEnd()})
	}
}

func copySpan(src, dst ast.Node) {
	dst.SetSpan(src.Span())
}
