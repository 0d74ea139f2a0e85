package parser

import (
	"math"
	"strings"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/jspattern"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

// Productions below parseAssignmentExpression return a cover: text such as
// `(a, b)` or `{a = 1}` can only be classified once the following token is
// known. isBindingElement and isAssignmentTarget track whether what was read
// so far could still be arrow parameters or an assignment target, and
// firstExprError holds the error to report if it turns out to be an
// expression after all.

// parseExpr parses a comma separated Expression.
func (p *parser) parseExpr() ast.Expression {
	start := p.startNode()
	expr := p.expression(p.parseAssignmentExpression())
	for p.eat(scanner.Comma) {
		right := p.expression(p.parseAssignmentExpression())
		seq := &ast.BinaryExpression{Left: expr, Operator: ",", Right: right}
		p.finish(start, seq)
		expr = seq
	}
	return expr
}

func (p *parser) parseAssignmentExpression() cover {
	return p.isolateCoverGrammar(p.parseAssignmentExpressionOrTarget)
}

func (p *parser) parseAssignmentExpressionOrTarget() cover {
	if p.opts.Trace {
		defer un(trace(p, "AssignmentExpression"))
	}

	start := p.startNode()

	if p.allowYield && p.match(scanner.Yield) {
		p.isBindingElement, p.isAssignmentTarget = false, false
		return exprCover(p.parseYieldExpression())
	}

	head := p.parseConditionalExpression()

	if p.match(scanner.Arrow) {
		if p.newlineBefore() {
			p.errorf(msgNewlineAfterArrowParams)
		}
		p.isBindingElement, p.isAssignmentTarget = false, false
		p.firstExprError = nil
		if head.isParams() {
			return exprCover(p.parseArrowExpressionTail(head.params, head.async, start))
		}
		id, ok := head.expr.(*ast.IdentifierExpression)
		if !ok {
			p.unexpected(p.peek())
		}
		params := &ast.FormalParameters{
			Items: []ast.Parameter{p.targetToBinding(p.transformDestructuring(id))},
		}
		p.finish(start, params)
		return exprCover(p.parseArrowExpressionTail(params, false, start))
	}
	if head.isParams() {
		p.unexpected(p.peek())
	}

	op := p.peek().Kind
	var binding ast.AssignmentTarget
	switch {
	case isCompoundAssign(op):
		if head.isTarget() || !p.isAssignmentTarget || !isValidSimpleAssignmentTarget(head.expr) {
			p.errorf(msgInvalidLHSInAssignment)
		}
		binding = p.transformDestructuring(p.expression(head))
	case op == scanner.Assign:
		if !p.isAssignmentTarget {
			p.errorf(msgInvalidLHSInAssignment)
		}
		if head.isTarget() {
			binding = head.target
		} else {
			binding = p.transformDestructuring(p.expression(head))
		}
	default:
		return head
	}

	p.lex()
	rhs := p.parseAssignmentExpression()
	if rhs.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}
	right := p.expression(rhs)

	p.firstExprError = nil
	var expr ast.Expression
	if op == scanner.Assign {
		expr = &ast.AssignmentExpression{Binding: binding, Expression: right}
	} else {
		p.isBindingElement, p.isAssignmentTarget = false, false
		expr = &ast.CompoundAssignmentExpression{
			Binding:    binding.(ast.SimpleAssignmentTarget),
			Operator:   op.String(),
			Expression: right,
		}
	}
	p.finish(start, expr)
	return exprCover(expr)
}

func isCompoundAssign(k scanner.Kind) bool {
	return k >= scanner.AssignBitOr && k <= scanner.AssignExp
}

func (p *parser) parseYieldExpression() ast.Expression {
	start := p.startNode()
	p.lex()

	if p.newlineBefore() {
		y := &ast.YieldExpression{}
		p.finish(start, y)
		return y
	}

	if p.eat(scanner.Mul) {
		y := &ast.YieldGeneratorExpression{Expression: p.expression(p.parseAssignmentExpression())}
		p.finish(start, y)
		return y
	}

	y := &ast.YieldExpression{}
	if p.lookaheadAssignmentExpression() {
		y.Expression = p.expression(p.parseAssignmentExpression())
	}
	p.finish(start, y)
	return y
}

// lookaheadAssignmentExpression reports whether the lookahead can start an
// AssignmentExpression, which decides if `yield` has an operand.
func (p *parser) lookaheadAssignmentExpression() bool {
	switch p.peek().Kind {
	case scanner.Add, scanner.AssignDiv, scanner.BitNot, scanner.Class, scanner.Dec,
		scanner.Delete, scanner.Div, scanner.FalseLiteral, scanner.Function, scanner.Identifier,
		scanner.Inc, scanner.Let, scanner.LBrace, scanner.LBrack, scanner.LParen, scanner.New,
		scanner.Not, scanner.NullLiteral, scanner.NumericLiteral, scanner.StringLiteral,
		scanner.Sub, scanner.Super, scanner.This, scanner.TrueLiteral, scanner.Typeof,
		scanner.Template, scanner.Void, scanner.Yield, scanner.Async, scanner.Await:
		return true
	}
	return false
}

func (p *parser) parseConditionalExpression() cover {
	start := p.startNode()
	test := p.parseBinaryExpression()
	if p.firstExprError != nil || !p.match(scanner.Conditional) {
		return test
	}
	if test.isParams() {
		p.unexpected(p.peek())
	}
	if test.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}

	p.lex()
	p.isBindingElement, p.isAssignmentTarget = false, false

	oldAllowIn := p.allowIn
	p.allowIn = true
	consequent := p.expression(p.parseAssignmentExpression())
	p.allowIn = oldAllowIn

	p.expect(scanner.Colon)
	alternate := p.expression(p.parseAssignmentExpression())

	cond := &ast.ConditionalExpression{Test: p.expression(test), Consequent: consequent, Alternate: alternate}
	p.finish(start, cond)
	return exprCover(cond)
}

// -- binary operators

var binaryPrecedence = map[scanner.Kind]int{
	scanner.Or:     1,
	scanner.And:    2,
	scanner.BitOr:  3,
	scanner.BitXor: 4,
	scanner.BitAnd: 5,

	scanner.Eq:       6,
	scanner.Ne:       6,
	scanner.EqStrict: 6,
	scanner.NeStrict: 6,

	scanner.Lt:         7,
	scanner.Gt:         7,
	scanner.Lte:        7,
	scanner.Gte:        7,
	scanner.Instanceof: 7,
	scanner.In:         7,

	scanner.Shl:         8,
	scanner.Shr:         8,
	scanner.ShrUnsigned: 8,

	scanner.Add: 9,
	scanner.Sub: 9,

	scanner.Mul: 10,
	scanner.Div: 10,
	scanner.Mod: 10,
}

// binaryOperator returns the binary operator at the lookahead. `in` is not an
// operator where the grammar forbids it, as in the head of a for statement.
func (p *parser) binaryOperator() (scanner.Kind, int, bool) {
	k := p.peek().Kind
	if k == scanner.In && !p.allowIn {
		return k, 0, false
	}
	prec, ok := binaryPrecedence[k]
	return k, prec, ok
}

type operand struct {
	start ast.Location
	left  ast.Expression
	op    scanner.Kind
	prec  int
}

// parseBinaryExpression is an operator precedence parser over exponentiation
// expressions.
func (p *parser) parseBinaryExpression() cover {
	start := p.startNode()
	left := p.parseExponentiationExpression()
	if p.firstExprError != nil {
		return left
	}
	op, prec, ok := p.binaryOperator()
	if !ok {
		return left
	}

	p.isBindingElement, p.isAssignmentTarget = false, false
	if left.isParams() {
		p.unexpected(p.peek())
	}
	if left.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}

	p.lex()
	stack := []operand{{start: start, left: p.expression(left), op: op, prec: prec}}
	start = p.startNode()
	right := p.expression(p.isolateCoverGrammar(p.parseExponentiationExpression))

	for {
		op, prec, ok = p.binaryOperator()
		if !ok {
			break
		}
		for len(stack) > 0 && prec <= stack[len(stack)-1].prec {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			start = top.start
			right = p.binary(top, right)
		}

		p.lex()
		stack = append(stack, operand{start: start, left: right, op: op, prec: prec})
		start = p.startNode()
		right = p.expression(p.isolateCoverGrammar(p.parseExponentiationExpression))
	}

	for i := len(stack) - 1; i >= 0; i-- {
		right = p.binary(stack[i], right)
	}
	return exprCover(right)
}

func (p *parser) binary(o operand, right ast.Expression) ast.Expression {
	b := &ast.BinaryExpression{Left: o.left, Operator: o.op.String(), Right: right}
	p.finish(o.start, b)
	return b
}

func (p *parser) parseExponentiationExpression() cover {
	start := p.startNode()
	left := p.parseUnaryExpression()
	if !p.match(scanner.Exp) {
		return left
	}
	p.lex()
	p.isBindingElement, p.isAssignmentTarget = false, false

	right := p.expression(p.isolateCoverGrammar(p.parseExponentiationExpression))
	b := &ast.BinaryExpression{Left: p.expression(left), Operator: "**", Right: right}
	p.finish(start, b)
	return exprCover(b)
}

// -- unary and update

func isPrefixOperator(k scanner.Kind) bool {
	switch k {
	case scanner.Inc, scanner.Dec, scanner.Add, scanner.Sub, scanner.BitNot, scanner.Not,
		scanner.Delete, scanner.Void, scanner.Typeof:
		return true
	}
	return false
}

func (p *parser) parseUnaryExpression() cover {
	tok := p.peek()
	if c := tok.Kind.Class(); c != scanner.ClassPunctuator && c != scanner.ClassKeyword {
		return p.parseUpdateExpression()
	}

	start := p.startNode()
	if p.allowAwait && p.eat(scanner.Await) {
		operand := p.expression(p.isolateCoverGrammar(p.parseUnaryExpression))
		await := &ast.AwaitExpression{Expression: operand}
		p.finish(start, await)
		return exprCover(await)
	}

	if !isPrefixOperator(tok.Kind) {
		return p.parseUpdateExpression()
	}

	p.lex()
	p.isBindingElement, p.isAssignmentTarget = false, false
	c := p.isolateCoverGrammar(p.parseUnaryExpression)
	if c.isParams() {
		p.errorf(msgUnexpectedArrow)
	}
	if c.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}
	operand := p.expression(c)

	if tok.Kind == scanner.Inc || tok.Kind == scanner.Dec {
		return exprCover(p.createUpdateExpression(start, operand, tok.Kind, true))
	}
	if p.match(scanner.Exp) {
		p.unexpected(p.peek())
	}
	u := &ast.UnaryExpression{Operator: tok.Kind.String(), Operand: operand}
	p.finish(start, u)
	return exprCover(u)
}

func (p *parser) parseUpdateExpression() cover {
	start := p.startNode()
	c := p.parseLeftHandSideExpression(true)
	if p.firstExprError != nil || p.newlineBefore() {
		return c
	}
	tok := p.peek()
	if tok.Kind != scanner.Inc && tok.Kind != scanner.Dec {
		return c
	}
	p.lex()
	if c.isParams() {
		p.unexpected(tok)
	}
	if c.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}
	p.isBindingElement, p.isAssignmentTarget = false, false
	return exprCover(p.createUpdateExpression(start, p.expression(c), tok.Kind, false))
}

func (p *parser) createUpdateExpression(start ast.Location, operand ast.Expression, op scanner.Kind, prefix bool) ast.Expression {
	if !isValidSimpleAssignmentTarget(operand) {
		p.errorf(msgInvalidUpdateTarget)
	}
	target := p.transformDestructuring(operand).(ast.SimpleAssignmentTarget)
	u := &ast.UpdateExpression{IsPrefix: prefix, Operator: op.String(), Operand: target}
	p.finish(start, u)
	return u
}

// -- left hand side

func (p *parser) parseLeftHandSideExpression(allowCall bool) cover {
	if p.opts.Trace {
		defer un(trace(p, "LeftHandSideExpression"))
	}

	start := p.startNode()
	oldAllowIn := p.allowIn
	p.allowIn = true

	var expr ast.ExpressionSuper
	switch p.peek().Kind {
	case scanner.Super:
		p.isBindingElement, p.isAssignmentTarget = false, false
		superTok := p.lex()
		sup := &ast.Super{}
		p.finish(start, sup)
		switch {
		case p.match(scanner.LParen):
			if !allowCall {
				p.unexpected(superTok)
			}
			args, _ := p.parseArgumentList()
			expr = &ast.CallExpression{Callee: sup, Arguments: args}
		case p.match(scanner.LBrack):
			expr = &ast.ComputedMemberExpression{Object: sup, Expression: p.parseComputedMember()}
			p.isAssignmentTarget = true
		case p.match(scanner.Period):
			expr = &ast.StaticMemberExpression{Object: sup, Property: p.parseStaticMember()}
			p.isAssignmentTarget = true
		default:
			p.unexpected(p.peek())
		}
		p.finish(start, expr)

	case scanner.New:
		p.isBindingElement, p.isAssignmentTarget = false, false
		expr = p.parseNewExpression()

	case scanner.Async:
		c := p.parsePrimaryExpression()
		expr = c.expr
		// `async` is an identifier, the start of an async arrow, or a call
		id, ok := c.expr.(*ast.IdentifierExpression)
		if !ok || !allowCall || p.newlineBefore() {
			break
		}
		if p.matchIdentifier() {
			paramStart := p.startNode()
			oldAwait := p.allowAwait
			p.allowAwait = true
			param := p.parseBindingIdentifier()
			p.allowAwait = oldAwait
			params := &ast.FormalParameters{Items: []ast.Parameter{param}}
			p.finish(paramStart, params)
			p.allowIn = oldAllowIn
			return cover{params: params, async: true}
		}
		if p.match(scanner.LParen) {
			params, call := p.parseAsyncCallOrParams(id, start)
			if params != nil {
				p.allowIn = oldAllowIn
				return cover{params: params, async: true}
			}
			expr = call
		}

	default:
		c := p.parsePrimaryExpression()
		if p.firstExprError != nil || !c.isExpr() {
			p.allowIn = oldAllowIn
			return c
		}
		expr = c.expr
	}

loop:
	for {
		switch {
		case allowCall && p.match(scanner.LParen):
			p.isBindingElement, p.isAssignmentTarget = false, false
			args, _ := p.parseArgumentList()
			expr = &ast.CallExpression{Callee: expr, Arguments: args}
		case p.match(scanner.Template):
			p.isBindingElement, p.isAssignmentTarget = false, false
			tag, _ := expr.(ast.Expression)
			expr = &ast.TemplateExpression{Tag: tag, Elements: p.parseTemplateElements()}
		case p.match(scanner.LBrack):
			p.isBindingElement = false
			p.isAssignmentTarget = true
			expr = &ast.ComputedMemberExpression{Object: expr, Expression: p.parseComputedMember()}
		case p.match(scanner.Period):
			p.isBindingElement = false
			p.isAssignmentTarget = true
			expr = &ast.StaticMemberExpression{Object: expr, Property: p.parseStaticMember()}
		default:
			break loop
		}
		p.finish(start, expr)
	}

	p.allowIn = oldAllowIn
	return exprCover(expr)
}

// parseAsyncCallOrParams parses the parenthesized list after `async`, which
// is either the parameters of an async arrow or the arguments of a call to a
// function named async.
func (p *parser) parseAsyncCallOrParams(callee *ast.IdentifierExpression, start ast.Location) (*ast.FormalParameters, ast.Expression) {
	paramStart := p.startNode()
	prevAwait := p.firstAwaitLocation
	p.firstAwaitLocation = nil

	args, afterSpread := p.parseArgumentList()
	if p.isBindingElement && !p.newlineBefore() && p.match(scanner.Arrow) {
		if afterSpread != nil {
			p.errorAt(*afterSpread, msgUnexpectedToken, ",")
		}
		if p.firstAwaitLocation != nil {
			p.errorAt(*p.firstAwaitLocation, msgNoAwaitInAsyncParams)
		}
		params := &ast.FormalParameters{}
		if n := len(args); n > 0 {
			if spread, ok := args[n-1].(*ast.SpreadElement); ok {
				params.Rest = p.targetToBinding(p.transformDestructuring(spread.Expression))
				args = args[:n-1]
			}
		}
		for _, arg := range args {
			param := p.targetToBindingPossiblyWithDefault(p.transformDestructuringWithDefault(arg.(ast.Expression)))
			params.Items = append(params.Items, param)
		}
		p.finish(paramStart, params)
		return params, nil
	}

	if prevAwait != nil {
		p.firstAwaitLocation = prevAwait
	}
	p.isBindingElement, p.isAssignmentTarget = false, false
	call := &ast.CallExpression{Callee: callee, Arguments: args}
	p.finish(start, call)
	return nil, call
}

func (p *parser) parseStaticMember() string {
	p.lex()
	if !p.peek().Kind.IsIdentifierName() {
		p.unexpected(p.peek())
	}
	return p.lex().Value
}

func (p *parser) parseComputedMember() ast.Expression {
	p.lex()
	expr := p.parseExpr()
	p.expect(scanner.RBrack)
	return expr
}

func (p *parser) parseNewExpression() ast.Expression {
	start := p.startNode()
	p.lex()
	if p.eat(scanner.Period) {
		tok := p.expect(scanner.Identifier)
		if tok.Value != "target" {
			p.unexpected(tok)
		}
		n := &ast.NewTargetExpression{}
		p.finish(start, n)
		return n
	}

	c := p.isolateCoverGrammar(func() cover {
		return p.parseLeftHandSideExpression(false)
	})
	if c.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}
	callee, ok := c.expr.(ast.Expression)
	if !ok {
		p.unexpected(p.peek())
	}
	n := &ast.NewExpression{Callee: callee}
	if p.match(scanner.LParen) {
		n.Arguments, _ = p.parseArgumentList()
	}
	p.finish(start, n)
	return n
}

// parseArgumentList parses a parenthesized argument list. The returned
// location follows the first spread element when more arguments come after
// it, which is an error if the list turns out to be async arrow parameters.
func (p *parser) parseArgumentList() ([]ast.SpreadElementExpression, *ast.Location) {
	p.lex()
	var (
		args        []ast.SpreadElementExpression
		afterSpread *ast.Location
	)
	for !p.match(scanner.RParen) && !p.eof() {
		start := p.startNode()
		if p.eat(scanner.Ellipsis) {
			spread := &ast.SpreadElement{Expression: p.expression(p.parseAssignmentExpression())}
			p.finish(start, spread)
			args = append(args, spread)
			if afterSpread == nil {
				if p.match(scanner.RParen) {
					break
				}
				loc := p.s.Location()
				afterSpread = &loc
				p.expect(scanner.Comma)
				continue
			}
		} else {
			c := p.inheritCoverGrammar(p.parseAssignmentExpressionOrTarget)
			arg, ok := c.expr.(ast.Expression)
			if !ok {
				p.unexpected(p.peek())
			}
			args = append(args, arg)
		}
		if !p.eat(scanner.Comma) {
			break
		}
	}
	p.expect(scanner.RParen)
	return args, afterSpread
}

// -- templates

func (p *parser) parseTemplateElements() []ast.Node {
	start := p.startNode()
	tok := p.lex()
	elems := []ast.Node{p.templateElement(tok, start)}
	for !tok.Tail {
		elems = append(elems, p.parseExpr())
		if !p.match(scanner.RBrace) {
			p.fail(p.s.Illegal())
		}
		p.s.RescanTemplate()
		start = p.startNode()
		tok = p.lex()
		elems = append(elems, p.templateElement(tok, start))
	}
	return elems
}

// templateElement builds the element for a template token, whose text is
// delimited by a backtick or `}` on the left and a backtick or `${` on the
// right. The element spans the raw text only.
func (p *parser) templateElement(tok scanner.Token, start ast.Location) *ast.TemplateElement {
	trim := 2
	if tok.Tail {
		trim = 1
	}
	text := tok.Text(p.s.Source())
	el := &ast.TemplateElement{RawValue: text[1 : len(text)-trim]}
	if p.opts.Locations {
		end := p.s.LastTokenEnd()
		start.Column++
		start.Offset++
		end.Column -= trim
		end.Offset -= trim
		el.SetSpan(ast.Span{Start: start, End: end})
	}
	return el
}

// -- primary expressions

func (p *parser) parsePrimaryExpression() cover {
	if p.match(scanner.LParen) {
		return p.parseGroupExpression()
	}

	start := p.startNode()
	if p.eat(scanner.Async) {
		if !p.newlineBefore() && p.match(scanner.Function) {
			p.isBindingElement, p.isAssignmentTarget = false, false
			fn := p.parseFunctionExpression(false, true)
			p.finish(start, fn)
			return exprCover(fn)
		}
		id := &ast.IdentifierExpression{Name: "async"}
		p.finish(start, id)
		return exprCover(id)
	}

	if p.matchIdentifier() {
		id := &ast.IdentifierExpression{Name: p.parseIdentifier()}
		p.finish(start, id)
		return exprCover(id)
	}

	var expr ast.Expression
	switch p.peek().Kind {
	case scanner.TrueLiteral, scanner.FalseLiteral:
		tok := p.lex()
		expr = &ast.LiteralBooleanExpression{Value: tok.Kind == scanner.TrueLiteral}
	case scanner.NullLiteral:
		p.lex()
		expr = &ast.LiteralNullExpression{}
	case scanner.This:
		p.lex()
		expr = &ast.ThisExpression{}
	case scanner.Function:
		expr = p.parseFunctionExpression(true, false)
	case scanner.NumericLiteral:
		expr = p.parseNumericLiteral()
	case scanner.StringLiteral:
		expr = p.parseStringLiteral()
	case scanner.LBrack:
		return p.parseArrayExpression()
	case scanner.LBrace:
		return p.parseObjectExpression()
	case scanner.Class:
		expr = p.parseClassExpression()
	case scanner.Template:
		expr = &ast.TemplateExpression{Elements: p.parseTemplateElements()}
	case scanner.Div, scanner.AssignDiv:
		expr = p.parseRegExpLiteral()
	default:
		p.unexpected(p.peek())
	}
	p.isBindingElement, p.isAssignmentTarget = false, false
	p.finish(start, expr)
	return exprCover(expr)
}

func (p *parser) parseNumericLiteral() ast.Expression {
	start := p.startNode()
	tok := p.lex()
	if tok.Octal && p.strict {
		if tok.Noctal {
			p.errorAt(start, msgStrictNoctal)
		}
		p.errorAt(start, msgStrictOctalLiteral)
	}
	if math.IsInf(tok.Number, 1) {
		return &ast.LiteralInfinityExpression{}
	}
	return &ast.LiteralNumericExpression{Value: tok.Number}
}

func (p *parser) parseStringLiteral() ast.Expression {
	start := p.startNode()
	tok := p.lex()
	if tok.OctalEscape != "" && p.strict {
		p.errorAt(start, msgStrictOctalEscape+tok.OctalEscape)
	}
	return &ast.LiteralStringExpression{Value: tok.Value}
}

// parseRegExpLiteral rescans the lookahead `/` or `/=` as a regular
// expression, checks its flags and validates its pattern.
func (p *parser) parseRegExpLiteral() ast.Expression {
	p.s.RescanRegExp()
	value := p.lex().Value
	lastSlash := strings.LastIndex(value, "/")
	re := &ast.LiteralRegExpExpression{Pattern: value[1:lastSlash]}

	for _, f := range value[lastSlash+1:] {
		var flag *bool
		switch f {
		case 'g':
			flag = &re.Global
		case 'i':
			flag = &re.IgnoreCase
		case 'm':
			flag = &re.Multiline
		case 'u':
			flag = &re.Unicode
		case 'y':
			flag = &re.Sticky
		default:
			p.errorf(scanner.MsgInvalidRegExpFlags)
			return nil
		}
		if *flag {
			p.errorf(scanner.MsgDuplicateRegExpFlag, f)
		}
		*flag = true
	}

	if !p.opts.SkipPatternValidation && !jspattern.Accept(re.Pattern, re.Unicode) {
		p.errorf(scanner.MsgInvalidRegularExpession)
	}
	return re
}

// -- array and object literals

func (p *parser) parseArrayExpression() cover {
	if p.opts.Trace {
		defer un(trace(p, "ArrayExpression"))
	}

	start := p.startNode()
	p.lex()

	var (
		exprs    []ast.SpreadElementExpression
		bindings []ast.AssignmentTargetElement
		rest     ast.AssignmentTarget
	)
	allExpressionsSoFar := true

	// toTargets reinterprets the elements read so far once one of them can
	// only be an assignment target.
	toTargets := func() {
		allExpressionsSoFar = false
		for _, e := range exprs {
			switch e := e.(type) {
			case nil:
				bindings = append(bindings, nil)
			case *ast.SpreadElement:
				p.errorf(msgInvalidRest)
			case ast.Expression:
				bindings = append(bindings, p.transformDestructuringWithDefault(e))
			}
		}
	}

	for !p.match(scanner.RBrack) {
		if p.eat(scanner.Comma) {
			if allExpressionsSoFar {
				exprs = append(exprs, nil)
			} else {
				bindings = append(bindings, nil)
			}
			continue
		}

		elemStart := p.startNode()
		if p.eat(scanner.Ellipsis) {
			c := p.inheritCoverGrammar(p.parseAssignmentExpressionOrTarget)
			if c.isTarget() || !allExpressionsSoFar {
				if allExpressionsSoFar {
					toTargets()
				}
				if c.isTarget() {
					rest = c.target
				} else {
					rest = p.transformDestructuring(p.expression(c))
				}
				break
			}
			spread := &ast.SpreadElement{Expression: p.expression(c)}
			p.finish(elemStart, spread)
			exprs = append(exprs, spread)
			if !p.isAssignmentTarget && p.firstExprError != nil {
				p.fail(p.firstExprError)
			}
			if !p.match(scanner.RBrack) {
				p.isBindingElement, p.isAssignmentTarget = false, false
			}
		} else {
			c := p.inheritCoverGrammar(p.parseAssignmentExpressionOrTarget)
			switch {
			case allExpressionsSoFar && !c.isTarget():
				exprs = append(exprs, p.expression(c))
			case allExpressionsSoFar:
				toTargets()
				bindings = append(bindings, c.target)
			case c.isTarget():
				bindings = append(bindings, c.target)
			default:
				bindings = append(bindings, p.transformDestructuringWithDefault(p.expression(c)))
			}
			if !p.isAssignmentTarget && p.firstExprError != nil {
				p.fail(p.firstExprError)
			}
		}

		if !p.match(scanner.RBrack) {
			p.expect(scanner.Comma)
		}
	}
	p.expect(scanner.RBrack)

	if allExpressionsSoFar {
		arr := &ast.ArrayExpression{Elements: exprs}
		p.finish(start, arr)
		return exprCover(arr)
	}
	t := &ast.ArrayAssignmentTarget{Elements: bindings, Rest: rest}
	p.finish(start, t)
	return cover{target: t}
}

func (p *parser) parseObjectExpression() cover {
	if p.opts.Trace {
		defer un(trace(p, "ObjectExpression"))
	}

	start := p.startNode()
	p.lex()

	var (
		props   []ast.ObjectProperty
		targets []ast.AssignmentTargetProperty
	)
	allExpressionsSoFar := true
	for !p.match(scanner.RBrace) {
		prop, target := p.parsePropertyDefinition()
		switch {
		case allExpressionsSoFar && target == nil:
			props = append(props, prop)
		case allExpressionsSoFar:
			allExpressionsSoFar = false
			for _, pr := range props {
				targets = append(targets, p.transformProperty(pr))
			}
			targets = append(targets, target)
		case target == nil:
			targets = append(targets, p.transformProperty(prop))
		default:
			targets = append(targets, target)
		}
		if !p.match(scanner.RBrace) {
			p.expect(scanner.Comma)
		}
	}
	p.expect(scanner.RBrace)

	if allExpressionsSoFar {
		obj := &ast.ObjectExpression{Properties: props}
		p.finish(start, obj)
		return exprCover(obj)
	}
	t := &ast.ObjectAssignmentTarget{Properties: targets}
	p.finish(start, t)
	return cover{target: t}
}

// -- parenthesized expressions and arrow parameters

func (p *parser) parseGroupExpression() cover {
	if p.opts.Trace {
		defer un(trace(p, "GroupExpression"))
	}

	preParen := p.startNode()
	p.expect(scanner.LParen)
	postParen := p.startNode()

	if p.eat(scanner.RParen) {
		params := &ast.FormalParameters{}
		p.finish(preParen, params)
		p.isBindingElement, p.isAssignmentTarget = false, false
		return cover{params: params}
	}
	if p.eat(scanner.Ellipsis) {
		params := &ast.FormalParameters{Rest: p.parseBindingTarget()}
		p.expect(scanner.RParen)
		p.finish(preParen, params)
		p.isBindingElement, p.isAssignmentTarget = false, false
		return cover{params: params}
	}

	group := p.inheritCoverGrammar(p.parseAssignmentExpressionOrTarget)
	var params []ast.Parameter
	if p.isBindingElement {
		params = append(params, p.coverToParameter(group))
	}

	mustBeArrowParameterList := false
	for p.eat(scanner.Comma) {
		p.isAssignmentTarget = false
		if p.match(scanner.Ellipsis) {
			if !p.isBindingElement {
				p.unexpected(p.peek())
			}
			p.lex()
			fp := &ast.FormalParameters{Items: params, Rest: p.parseBindingTarget()}
			p.expect(scanner.RParen)
			p.finish(preParen, fp)
			return cover{params: fp}
		}

		if mustBeArrowParameterList {
			params = append(params, p.parseBindingElement())
			continue
		}

		c := p.inheritCoverGrammar(p.parseAssignmentExpressionOrTarget)
		if p.isBindingElement {
			params = append(params, p.coverToParameter(c))
		}
		if p.firstExprError != nil {
			mustBeArrowParameterList = true
			continue
		}
		seq := &ast.BinaryExpression{Left: p.expression(group), Operator: ",", Right: p.expression(c)}
		p.finish(postParen, seq)
		group = exprCover(seq)
	}

	p.expect(scanner.RParen)

	if (!p.newlineBefore() && p.match(scanner.Arrow)) || mustBeArrowParameterList {
		if !p.isBindingElement {
			if p.match(scanner.Assign) {
				p.errorAt(preParen, msgInvalidLHSInAssignment)
			}
			p.errorAt(preParen, msgIllegalArrowParams)
		}
		p.isBindingElement = false
		fp := &ast.FormalParameters{Items: params}
		p.finish(preParen, fp)
		return cover{params: fp}
	}

	p.isBindingElement = false
	if !isValidSimpleAssignmentTarget(group.node()) {
		p.isAssignmentTarget = false
	}
	return group
}

// coverToParameter reinterprets a parenthesized element as an arrow parameter.
func (p *parser) coverToParameter(c cover) ast.Parameter {
	if c.isTarget() {
		return p.targetToBinding(c.target)
	}
	return p.targetToBindingPossiblyWithDefault(p.transformDestructuringWithDefault(p.expression(c)))
}
