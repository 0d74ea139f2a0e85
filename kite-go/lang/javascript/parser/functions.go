package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

// functionScope holds the grammar parameters a function boundary resets.
type functionScope struct {
	allowYield         bool
	allowAwait         bool
	firstAwaitLocation *ast.Location
}

// enterFunction sets up the parameters for the params or body of a function
// and returns the enclosing ones for exitFunction.
func (p *parser) enterFunction(isGenerator, isAsync bool) functionScope {
	old := functionScope{
		allowYield:         p.allowYield,
		allowAwait:         p.allowAwait,
		firstAwaitLocation: p.firstAwaitLocation,
	}
	p.allowYield, p.allowAwait, p.firstAwaitLocation = isGenerator, isAsync, nil
	return old
}

func (p *parser) exitFunction(old functionScope) {
	p.allowYield, p.allowAwait, p.firstAwaitLocation = old.allowYield, old.allowAwait, old.firstAwaitLocation
}

func (p *parser) parseArrowExpressionTail(params *ast.FormalParameters, isAsync bool, start ast.Location) ast.Expression {
	if p.opts.Trace {
		defer un(trace(p, "ArrowExpression"))
	}

	if p.newlineBefore() {
		p.errorf(msgNewlineAfterArrowParams)
	}
	p.expect(scanner.Arrow)
	p.isBindingElement, p.isAssignmentTarget = false, false
	p.firstExprError = nil

	old := p.enterFunction(false, isAsync)
	var body ast.Node
	if p.match(scanner.LBrace) {
		body = p.parseFunctionBody()
	} else {
		body = p.expression(p.parseAssignmentExpression())
	}
	p.exitFunction(old)

	arrow := &ast.ArrowExpression{IsAsync: isAsync, Params: params, Body: body}
	p.finish(start, arrow)
	return arrow
}

// parseFunctionDeclaration parses a function declaration starting at the
// `function` keyword. In `export default` position the name may be omitted.
func (p *parser) parseFunctionDeclaration(inDefault, allowGenerator, isAsync bool) *ast.FunctionDeclaration {
	if p.opts.Trace {
		defer un(trace(p, "FunctionDeclaration"))
	}

	start := p.startNode()
	p.lex()

	isGenerator := allowGenerator && p.eat(scanner.Mul)
	var name *ast.BindingIdentifier
	switch {
	case !p.match(scanner.LParen):
		name = p.parseBindingIdentifier()
	case inDefault:
		name = &ast.BindingIdentifier{Name: defaultBindingName}
	default:
		p.unexpected(p.peek())
	}

	old := p.enterFunction(isGenerator, isAsync)
	params := p.parseParams()
	p.enterFunction(isGenerator, isAsync)
	body := p.parseFunctionBody()
	p.exitFunction(old)

	decl := &ast.FunctionDeclaration{
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		Name:        name,
		Params:      params,
		Body:        body,
	}
	p.finish(start, decl)
	return decl
}

// parseFunctionExpression parses a function expression starting at the
// `function` keyword. Unlike declarations, the name is bound inside the
// function, so yield and await rules apply to it.
func (p *parser) parseFunctionExpression(allowGenerator, isAsync bool) *ast.FunctionExpression {
	if p.opts.Trace {
		defer un(trace(p, "FunctionExpression"))
	}

	start := p.startNode()
	p.lex()

	isGenerator := allowGenerator && p.eat(scanner.Mul)
	old := p.enterFunction(isGenerator, isAsync)
	var name *ast.BindingIdentifier
	if !p.match(scanner.LParen) {
		name = p.parseBindingIdentifier()
	}
	params := p.parseParams()
	p.enterFunction(isGenerator, isAsync)
	body := p.parseFunctionBody()
	p.exitFunction(old)

	fn := &ast.FunctionExpression{
		IsAsync:     isAsync,
		IsGenerator: isGenerator,
		Name:        name,
		Params:      params,
		Body:        body,
	}
	p.finish(start, fn)
	return fn
}

func (p *parser) parseParams() *ast.FormalParameters {
	start := p.startNode()
	p.expect(scanner.LParen)
	params := &ast.FormalParameters{}
	if !p.match(scanner.RParen) {
		for !p.eof() {
			if p.eat(scanner.Ellipsis) {
				params.Rest = p.parseBindingTarget()
				break
			}
			params.Items = append(params.Items, p.parseParam())
			if p.match(scanner.RParen) {
				break
			}
			p.expect(scanner.Comma)
		}
	}
	p.expect(scanner.RParen)
	p.finish(start, params)
	return params
}

func (p *parser) parseParam() ast.Parameter {
	old := p.inParameter
	p.inParameter = true
	param := p.parseBindingElement()
	p.inParameter = old
	return param
}

// -- object literal members

// parsePropertyDefinition returns either an object literal property or, for
// `a = 1` shorthand initializers, a property that is only valid as part of an
// assignment target.
func (p *parser) parsePropertyDefinition() (ast.ObjectProperty, ast.AssignmentTargetProperty) {
	start := p.startNode()
	tok := p.peek()

	name, method := p.parseMethodDefinition()
	if method != nil {
		p.isBindingElement, p.isAssignmentTarget = false, false
		return method, nil
	}

	if static, ok := name.(*ast.StaticPropertyName); ok {
		if p.eat(scanner.Assign) {
			init := p.expression(p.parseAssignmentExpression())
			p.firstExprError = p.s.ErrorAt(start, msgIllegalProperty)
			t := &ast.AssignmentTargetPropertyIdentifier{Binding: p.transformStaticName(static), Init: init}
			p.finish(start, t)
			return nil, t
		}
		if !p.match(scanner.Colon) {
			switch tok.Kind {
			case scanner.Identifier, scanner.Yield, scanner.Let, scanner.Async, scanner.Await:
			default:
				p.unexpected(tok)
			}
			id := &ast.IdentifierExpression{Name: static.Value}
			p.finish(start, id)
			prop := &ast.ShorthandProperty{Name: id}
			p.finish(start, prop)
			return prop, nil
		}
	}

	p.expect(scanner.Colon)
	c := p.inheritCoverGrammar(p.parseAssignmentExpressionOrTarget)
	if c.isTarget() {
		t := &ast.AssignmentTargetPropertyProperty{Name: name, Binding: c.target}
		p.finish(start, t)
		return nil, t
	}
	prop := &ast.DataProperty{Name: name, Expression: p.expression(c)}
	p.finish(start, prop)
	return prop, nil
}

// parseMethodDefinition parses a method, getter or setter. When the member
// turns out to be a plain property only its name is returned.
func (p *parser) parseMethodDefinition() (ast.PropertyName, ast.MethodDefinition) {
	tok := p.peek()
	start := p.startNode()

	isGenerator := p.eat(scanner.Mul)
	name, _ := p.parsePropertyName()

	if !isGenerator {
		isAccessor := tok.Kind == scanner.Identifier && (tok.Value == "get" || tok.Value == "set")
		switch {
		case isAccessor && tok.Value == "get" && p.lookaheadPropertyName():
			name, _ = p.parsePropertyName()
			p.expect(scanner.LParen)
			p.expect(scanner.RParen)
			old := p.enterFunction(false, false)
			body := p.parseFunctionBody()
			p.exitFunction(old)
			g := &ast.Getter{Name: name, Body: body}
			p.finish(start, g)
			return nil, g

		case isAccessor && tok.Value == "set" && p.lookaheadPropertyName():
			name, _ = p.parsePropertyName()
			old := p.enterFunction(false, false)
			p.expect(scanner.LParen)
			param := p.parseBindingElement()
			p.expect(scanner.RParen)
			body := p.parseFunctionBody()
			p.exitFunction(old)
			s := &ast.Setter{Name: name, Param: param, Body: body}
			p.finish(start, s)
			return nil, s

		case tok.Kind == scanner.Async && !p.newlineBefore() && p.lookaheadPropertyName():
			name, _ = p.parsePropertyName()
			old := p.enterFunction(false, true)
			params := p.parseParams()
			body := p.parseFunctionBody()
			p.exitFunction(old)
			m := &ast.Method{IsAsync: true, Name: name, Params: params, Body: body}
			p.finish(start, m)
			return nil, m
		}
	}

	if p.match(scanner.LParen) {
		old := p.enterFunction(isGenerator, false)
		params := p.parseParams()
		body := p.parseFunctionBody()
		p.exitFunction(old)
		m := &ast.Method{IsGenerator: isGenerator, Name: name, Params: params, Body: body}
		p.finish(start, m)
		return nil, m
	}

	if isGenerator && p.match(scanner.Colon) {
		p.unexpected(p.peek())
	}
	return name, nil
}

func (p *parser) lookaheadPropertyName() bool {
	switch k := p.peek().Kind; k {
	case scanner.NumericLiteral, scanner.StringLiteral, scanner.LBrack:
		return true
	default:
		return k.IsIdentifierName()
	}
}

// parsePropertyName parses a property key. Identifier keys also come back as
// a binding, for use in shorthand object patterns.
func (p *parser) parsePropertyName() (ast.PropertyName, *ast.BindingIdentifier) {
	start := p.startNode()
	if p.eof() {
		p.unexpected(p.peek())
	}

	var name ast.PropertyName
	switch p.peek().Kind {
	case scanner.StringLiteral:
		lit := p.parseStringLiteral().(*ast.LiteralStringExpression)
		name = &ast.StaticPropertyName{Value: lit.Value}

	case scanner.NumericLiteral:
		switch lit := p.parseNumericLiteral().(type) {
		case *ast.LiteralInfinityExpression:
			name = &ast.StaticPropertyName{Value: "Infinity"}
		case *ast.LiteralNumericExpression:
			name = &ast.StaticPropertyName{Value: numberToString(lit.Value)}
		}

	case scanner.LBrack:
		p.lex()
		expr := p.expression(p.parseAssignmentExpression())
		p.expect(scanner.RBrack)
		name = &ast.ComputedPropertyName{Expression: expr}

	default:
		id := &ast.BindingIdentifier{Name: p.parseIdentifierName()}
		p.finish(start, id)
		static := &ast.StaticPropertyName{Value: id.Name}
		p.finish(start, static)
		return static, id
	}

	p.finish(start, name)
	return name, nil
}

func (p *parser) parseIdentifierName() string {
	if !p.peek().Kind.IsIdentifierName() {
		p.unexpected(p.peek())
	}
	return p.lex().Value
}

// numberToString formats a non-negative finite number the way the language's
// Number::toString does, which is how numeric property keys are named.
func numberToString(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsInf(v, 0) {
		return "Infinity"
	}

	// shortest round-tripping digits and decimal exponent
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mant, exp := s, 0
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant = s[:i]
		exp, _ = strconv.Atoi(s[i+1:])
	}
	digits := strings.Replace(mant, ".", "", 1)
	k := len(digits)
	n := exp + 1

	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}

	e := n - 1
	sign := "+"
	if e < 0 {
		sign = "-"
		e = -e
	}
	if k == 1 {
		return digits + "e" + sign + strconv.Itoa(e)
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + strconv.Itoa(e)
}

// -- classes

func (p *parser) parseClassDeclaration(inDefault bool) *ast.ClassDeclaration {
	if p.opts.Trace {
		defer un(trace(p, "ClassDeclaration"))
	}

	start := p.startNode()
	p.lex()

	var name *ast.BindingIdentifier
	switch {
	case p.matchIdentifier():
		name = p.parseBindingIdentifier()
	case inDefault:
		name = &ast.BindingIdentifier{Name: defaultBindingName}
	default:
		p.unexpected(p.peek())
	}

	super, elements := p.parseClassTail()
	decl := &ast.ClassDeclaration{Name: name, Super: super, Elements: elements}
	p.finish(start, decl)
	return decl
}

func (p *parser) parseClassExpression() *ast.ClassExpression {
	if p.opts.Trace {
		defer un(trace(p, "ClassExpression"))
	}

	start := p.startNode()
	p.lex()

	var name *ast.BindingIdentifier
	if p.matchIdentifier() {
		name = p.parseBindingIdentifier()
	}

	super, elements := p.parseClassTail()
	expr := &ast.ClassExpression{Name: name, Super: super, Elements: elements}
	p.finish(start, expr)
	return expr
}

// parseClassTail parses the optional heritage and the body of a class.
func (p *parser) parseClassTail() (ast.Expression, []*ast.ClassElement) {
	var super ast.Expression
	if p.eat(scanner.Extends) {
		c := p.isolateCoverGrammar(func() cover {
			return p.parseLeftHandSideExpression(true)
		})
		if c.isParams() {
			p.errorf(msgUnexpectedArrow)
		}
		if c.isTarget() {
			p.errorf(msgUnexpectedObjectBinding)
		}
		super = p.expression(c)
	}

	p.expect(scanner.LBrace)
	var elements []*ast.ClassElement
	for !p.eat(scanner.RBrace) {
		if p.eat(scanner.Semicolon) {
			continue
		}
		start := p.startNode()
		isStatic := false
		name, method := p.parseMethodDefinition()
		if static, ok := name.(*ast.StaticPropertyName); ok && static.Value == "static" {
			isStatic = true
			_, method = p.parseMethodDefinition()
		}
		if method == nil {
			p.errorf(msgOnlyMethodsInClasses)
		}
		el := &ast.ClassElement{IsStatic: isStatic, Method: method}
		p.finish(start, el)
		elements = append(elements, el)
	}
	return super, elements
}
