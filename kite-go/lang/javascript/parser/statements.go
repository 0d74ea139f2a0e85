package parser

import (
	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

// -- programs and bodies

func (p *parser) parseScript() *ast.Script {
	if p.opts.Trace {
		defer un(trace(p, "Script"))
	}

	dirs, items := p.parseBody(p.parseStatementListItemAsModuleItem)
	if !p.eof() {
		p.unexpected(p.peek())
	}
	script := &ast.Script{Directives: dirs, Statements: toStatements(items)}
	p.finishProgram(script)
	return script
}

func (p *parser) parseModule() *ast.Module {
	if p.opts.Trace {
		defer un(trace(p, "Module"))
	}

	dirs, items := p.parseBody(p.parseModuleItem)
	if !p.eof() {
		p.unexpected(p.peek())
	}
	mod := &ast.Module{Directives: dirs, Items: items}
	p.finishProgram(mod)
	return mod
}

// finishProgram spans the whole source including leading and trailing whitespace.
func (p *parser) finishProgram(n ast.Node) {
	if p.opts.Locations {
		n.SetSpan(ast.Span{Start: ast.Location{Line: 1}, End: p.s.Location()})
	}
}

func toStatements(items []ast.ModuleItem) []ast.Statement {
	stmts := make([]ast.Statement, 0, len(items))
	for _, item := range items {
		stmts = append(stmts, item.(ast.Statement))
	}
	return stmts
}

func (p *parser) parseStatementListItemAsModuleItem() ast.ModuleItem {
	return p.parseStatementListItem()
}

// parseBody parses a directive prologue followed by items up to `}` or the
// end of input. A "use strict" directive makes the rest of the body strict;
// a legacy octal escape in an earlier directive is then an error.
func (p *parser) parseBody(parseItem func() ast.ModuleItem) ([]*ast.Directive, []ast.ModuleItem) {
	var (
		dirs           []*ast.Directive
		items          []ast.ModuleItem
		directiveOctal *SyntaxError
	)
	parsingDirectives := true

	for !p.eof() && !p.match(scanner.RBrace) {
		tok := p.peek()
		start := p.startNode()
		item := parseItem()

		if !parsingDirectives {
			items = append(items, item)
			continue
		}

		if stmt, ok := item.(*ast.ExpressionStatement); ok && tok.Kind == scanner.StringLiteral {
			if _, ok := stmt.Expression.(*ast.LiteralStringExpression); ok {
				if directiveOctal == nil && tok.OctalEscape != "" {
					directiveOctal = p.s.Errorf(msgStrictOctalEscape + tok.OctalEscape)
				}
				text := tok.Text(p.s.Source())
				raw := text[1 : len(text)-1]
				if raw == "use strict" {
					p.strict = true
				}
				dir := &ast.Directive{RawValue: raw}
				p.finish(start, dir)
				dirs = append(dirs, dir)
				continue
			}
		}

		parsingDirectives = false
		if directiveOctal != nil && p.strict {
			p.fail(directiveOctal)
		}
		items = append(items, item)
	}
	if directiveOctal != nil && p.strict {
		p.fail(directiveOctal)
	}
	return dirs, items
}

func (p *parser) parseFunctionBody() *ast.FunctionBody {
	if p.opts.Trace {
		defer un(trace(p, "FunctionBody"))
	}

	oldInFunctionBody, oldStrict := p.inFunctionBody, p.strict
	p.inFunctionBody = true

	start := p.startNode()
	p.expect(scanner.LBrace)
	dirs, items := p.parseBody(p.parseStatementListItemAsModuleItem)
	p.expect(scanner.RBrace)
	body := &ast.FunctionBody{Directives: dirs, Statements: toStatements(items)}
	p.finish(start, body)

	p.inFunctionBody, p.strict = oldInFunctionBody, oldStrict
	return body
}

// -- statement list items

func (p *parser) parseStatementListItem() ast.Statement {
	if p.eof() {
		p.unexpected(p.peek())
	}

	switch p.peek().Kind {
	case scanner.Function:
		return p.parseFunctionDeclaration(false, true, false)
	case scanner.Class:
		return p.parseClassDeclaration(false)
	case scanner.Async:
		start := p.startNode()
		state := p.s.Save()
		p.lex()
		if !p.newlineBefore() && p.match(scanner.Function) {
			decl := p.parseFunctionDeclaration(false, false, true)
			p.finish(start, decl)
			return decl
		}
		p.s.Restore(state)
		return p.parseStatement()
	}

	if p.lookaheadLexicalDeclaration() {
		start := p.startNode()
		stmt := p.parseVariableDeclarationStatement()
		p.finish(start, stmt)
		return stmt
	}
	return p.parseStatement()
}

// lookaheadLexicalDeclaration reports whether a `let` or `const` token starts
// a declaration rather than an expression such as `let + 1`.
func (p *parser) lookaheadLexicalDeclaration() bool {
	if !p.match(scanner.Let) && !p.match(scanner.Const) {
		return false
	}
	state := p.s.Save()
	p.lex()
	ok := p.matchIdentifier() || p.match(scanner.LBrace) || p.match(scanner.LBrack)
	p.s.Restore(state)
	return ok
}

// -- declarations

func (p *parser) parseVariableDeclarationStatement() *ast.VariableDeclarationStatement {
	decl := p.parseVariableDeclaration(true)
	p.consumeSemicolon()
	return &ast.VariableDeclarationStatement{Declaration: decl}
}

func (p *parser) parseVariableDeclaration(patternsMustHaveInit bool) *ast.VariableDeclaration {
	if p.opts.Trace {
		defer un(trace(p, "VariableDeclaration"))
	}

	start := p.startNode()
	var kind string
	switch p.lex().Kind {
	case scanner.Var:
		kind = "var"
	case scanner.Const:
		kind = "const"
	default:
		kind = "let"
	}
	decl := &ast.VariableDeclaration{Kind: kind}
	for {
		decl.Declarators = append(decl.Declarators, p.parseVariableDeclarator(patternsMustHaveInit))
		if !p.eat(scanner.Comma) {
			break
		}
	}
	p.finish(start, decl)
	return decl
}

func (p *parser) parseVariableDeclarator(patternsMustHaveInit bool) *ast.VariableDeclarator {
	start := p.startNode()
	if p.match(scanner.LParen) {
		p.unexpected(p.peek())
	}

	oldAllowIn := p.allowIn
	p.allowIn = true
	binding := p.parseBindingTarget()
	p.allowIn = oldAllowIn

	if _, ok := binding.(*ast.BindingIdentifier); !ok && patternsMustHaveInit && !p.match(scanner.Assign) {
		p.expect(scanner.Assign)
	}

	d := &ast.VariableDeclarator{Binding: binding}
	if p.eat(scanner.Assign) {
		d.Init = p.expression(p.parseAssignmentExpression())
	}
	p.finish(start, d)
	return d
}

// -- binding patterns

func (p *parser) parseBindingTarget() ast.Binding {
	switch p.peek().Kind {
	case scanner.Identifier, scanner.Let, scanner.Yield, scanner.Await, scanner.Async:
		return p.parseBindingIdentifier()
	case scanner.LBrack:
		return p.parseArrayBinding()
	case scanner.LBrace:
		return p.parseObjectBinding()
	}
	p.unexpected(p.peek())
	return nil
}

func (p *parser) parseObjectBinding() *ast.ObjectBinding {
	if p.opts.Trace {
		defer un(trace(p, "ObjectBinding"))
	}
	defer p.nest()()

	start := p.startNode()
	p.expect(scanner.LBrace)
	b := &ast.ObjectBinding{}
	for !p.match(scanner.RBrace) {
		b.Properties = append(b.Properties, p.parseBindingProperty())
		if !p.match(scanner.RBrace) {
			p.expect(scanner.Comma)
		}
	}
	p.expect(scanner.RBrace)
	p.finish(start, b)
	return b
}

func (p *parser) parseBindingProperty() ast.BindingProperty {
	start := p.startNode()
	tok := p.peek()

	name, binding := p.parsePropertyName()
	switch tok.Kind {
	case scanner.Identifier, scanner.Let, scanner.Yield:
		if _, ok := name.(*ast.StaticPropertyName); ok && !p.match(scanner.Colon) {
			prop := &ast.BindingPropertyIdentifier{Binding: binding}
			if p.eat(scanner.Assign) {
				prop.Init = p.expression(p.parseAssignmentExpression())
			} else if tok.Kind == scanner.Yield && p.allowYield {
				p.fail(p.s.Unexpected(tok))
			}
			p.finish(start, prop)
			return prop
		}
	}

	p.expect(scanner.Colon)
	prop := &ast.BindingPropertyProperty{Name: name, Binding: p.parseBindingElement()}
	p.finish(start, prop)
	return prop
}

func (p *parser) parseArrayBinding() *ast.ArrayBinding {
	if p.opts.Trace {
		defer un(trace(p, "ArrayBinding"))
	}
	defer p.nest()()

	start := p.startNode()
	p.expect(scanner.LBrack)
	b := &ast.ArrayBinding{}
	for !p.match(scanner.RBrack) {
		if p.eat(scanner.Comma) {
			b.Elements = append(b.Elements, nil)
			continue
		}
		if p.eat(scanner.Ellipsis) {
			b.Rest = p.parseBindingTarget()
			break
		}
		b.Elements = append(b.Elements, p.parseBindingElement())
		if !p.match(scanner.RBrack) {
			p.expect(scanner.Comma)
		}
	}
	p.expect(scanner.RBrack)
	p.finish(start, b)
	return b
}

// parseBindingElement parses a binding target with an optional default value.
func (p *parser) parseBindingElement() ast.Parameter {
	start := p.startNode()
	binding := p.parseBindingTarget()
	if !p.eat(scanner.Assign) {
		return binding
	}
	init := p.expression(p.parseAssignmentExpression())
	b := &ast.BindingWithDefault{Binding: binding, Init: init}
	p.finish(start, b)
	return b
}

func (p *parser) parseBindingIdentifier() *ast.BindingIdentifier {
	start := p.startNode()
	id := &ast.BindingIdentifier{Name: p.parseIdentifier()}
	p.finish(start, id)
	return id
}

// parseIdentifier consumes an identifier reference or binding name. `yield`
// inside generators and `await` inside async functions or modules are keywords.
func (p *parser) parseIdentifier() string {
	switch {
	case p.match(scanner.Yield) && p.allowYield:
		p.errorf(msgInvalidTokenContext, "yield")
	case p.match(scanner.Await) && (p.allowAwait || p.module):
		p.errorf(msgInvalidTokenContext, "await")
	}
	if !p.matchIdentifier() {
		p.unexpected(p.peek())
	}
	return p.lex().Value
}

// -- statements

func (p *parser) parseStatement() ast.Statement {
	if p.opts.Trace {
		defer un(trace(p, "Statement"))
	}

	start := p.startNode()
	var stmt ast.Statement
	p.isolated(func() {
		stmt = p.parseStatementHelper()
	})
	p.finish(start, stmt)
	return stmt
}

func (p *parser) parseStatementHelper() ast.Statement {
	if p.eof() {
		p.unexpected(p.peek())
	}

	switch p.peek().Kind {
	case scanner.Semicolon:
		p.lex()
		return &ast.EmptyStatement{}
	case scanner.Break:
		return p.parseBreakStatement()
	case scanner.Continue:
		return p.parseContinueStatement()
	case scanner.Debugger:
		p.lex()
		p.consumeSemicolon()
		return &ast.DebuggerStatement{}
	case scanner.Do:
		return p.parseDoWhileStatement()
	case scanner.LParen:
		return p.parseExpressionStatement()
	case scanner.LBrace:
		return &ast.BlockStatement{Block: p.parseBlock()}
	case scanner.If:
		return p.parseIfStatement()
	case scanner.For:
		return p.parseForStatement()
	case scanner.Return:
		return p.parseReturnStatement()
	case scanner.Switch:
		return p.parseSwitchStatement()
	case scanner.Throw:
		return p.parseThrowStatement()
	case scanner.While:
		return p.parseWhileStatement()
	case scanner.With:
		return p.parseWithStatement()
	case scanner.Try:
		return p.parseTryStatement()
	case scanner.Var:
		return p.parseVariableDeclarationStatement()
	case scanner.Function, scanner.Class:
		p.unexpected(p.peek())
	}

	// `let [` always starts a declaration, which is not allowed here; an
	// async function declaration likewise.
	state := p.s.Save()
	if p.eat(scanner.Let) {
		if p.match(scanner.LBrack) {
			p.s.Restore(state)
			p.unexpected(p.peek())
		}
		p.s.Restore(state)
	} else if p.eat(scanner.Async) {
		if !p.newlineBefore() && p.match(scanner.Function) {
			p.unexpected(p.peek())
		}
		p.s.Restore(state)
	}

	expr := p.parseExpr()
	if id, ok := expr.(*ast.IdentifierExpression); ok && p.eat(scanner.Colon) {
		var body ast.Statement
		if p.match(scanner.Function) {
			body = p.parseFunctionDeclaration(false, false, false)
		} else {
			body = p.parseStatement()
		}
		return &ast.LabeledStatement{Label: id.Name, Body: body}
	}
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Expression: expr}
}

func (p *parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpr()
	p.consumeSemicolon()
	return &ast.ExpressionStatement{Expression: expr}
}

func (p *parser) parseBlock() *ast.Block {
	if p.opts.Trace {
		defer un(trace(p, "Block"))
	}

	start := p.startNode()
	p.expect(scanner.LBrace)
	block := &ast.Block{}
	for !p.match(scanner.RBrace) {
		block.Statements = append(block.Statements, p.parseStatementListItem())
	}
	p.expect(scanner.RBrace)
	p.finish(start, block)
	return block
}

func (p *parser) parseIfStatement() ast.Statement {
	start := p.startNode()
	p.lex()
	p.expect(scanner.LParen)
	stmt := &ast.IfStatement{Test: p.parseExpr()}
	p.expect(scanner.RParen)
	stmt.Consequent = p.parseIfStatementChild()
	if p.eat(scanner.Else) {
		stmt.Alternate = p.parseIfStatementChild()
	}
	p.finish(start, stmt)
	return stmt
}

// parseIfStatementChild allows the function declarations of Annex B.3.4;
// the early-error checker rejects them in strict code.
func (p *parser) parseIfStatementChild() ast.Statement {
	if p.match(scanner.Function) {
		return p.parseFunctionDeclaration(false, false, false)
	}
	return p.parseStatement()
}

func (p *parser) parseForStatement() ast.Statement {
	if p.opts.Trace {
		defer un(trace(p, "ForStatement"))
	}

	p.lex()
	p.expect(scanner.LParen)

	if p.eat(scanner.Semicolon) {
		return p.parseForRest(nil)
	}

	startsWithLet := p.match(scanner.Let)
	isForDecl := p.lookaheadLexicalDeclaration()
	leftStart := p.startNode()

	if p.match(scanner.Var) || isForDecl {
		oldAllowIn := p.allowIn
		p.allowIn = false
		init := p.parseVariableDeclaration(false)
		p.allowIn = oldAllowIn

		if len(init.Declarators) == 1 && (p.match(scanner.In) || p.matchContextualKeyword("of")) {
			hasInit := init.Declarators[0].Init != nil
			if p.match(scanner.In) {
				if hasInit {
					p.errorf(msgInvalidVarInitForIn)
				}
				p.lex()
				right := p.parseExpr()
				return &ast.ForInStatement{Left: init, Right: right, Body: p.parseIterationBody()}
			}
			if hasInit {
				p.errorf(msgInvalidVarInitForOf)
			}
			p.lex()
			right := p.expression(p.parseAssignmentExpression())
			return &ast.ForOfStatement{Left: init, Right: right, Body: p.parseIterationBody()}
		}

		p.expect(scanner.Semicolon)
		for _, d := range init.Declarators {
			if _, ok := d.Binding.(*ast.BindingIdentifier); !ok && d.Init == nil {
				p.errorf(msgUninitializedPatternInit)
			}
		}
		return p.parseForRest(init)
	}

	oldAllowIn := p.allowIn
	p.allowIn = false
	head := p.parseAssignmentExpressionOrTarget()
	p.allowIn = oldAllowIn

	_, isAssignment := head.expr.(*ast.AssignmentExpression)
	if p.isAssignmentTarget && !isAssignment && (p.match(scanner.In) || p.matchContextualKeyword("of")) {
		var target ast.AssignmentTarget
		if head.isTarget() {
			p.firstExprError = nil
			target = head.target
		} else {
			target = p.transformDestructuring(p.expression(head))
		}
		if startsWithLet && p.matchContextualKeyword("of") {
			p.errorf(msgInvalidLHSInForOf)
		}
		if p.eat(scanner.In) {
			right := p.parseExpr()
			return &ast.ForInStatement{Left: target, Right: right, Body: p.parseIterationBody()}
		}
		p.lex()
		right := p.expression(p.parseAssignmentExpression())
		return &ast.ForOfStatement{Left: target, Right: right, Body: p.parseIterationBody()}
	}

	if head.isTarget() {
		p.errorf(msgIllegalProperty)
	}
	if p.firstExprError != nil {
		p.fail(p.firstExprError)
	}
	expr := p.expression(head)
	for p.eat(scanner.Comma) {
		rhs := p.expression(p.parseAssignmentExpression())
		seq := &ast.BinaryExpression{Left: expr, Operator: ",", Right: rhs}
		p.finish(leftStart, seq)
		expr = seq
	}
	if p.match(scanner.In) {
		p.errorf(msgInvalidLHSInForIn)
	}
	if p.matchContextualKeyword("of") {
		p.errorf(msgInvalidLHSInForOf)
	}
	p.expect(scanner.Semicolon)
	return p.parseForRest(expr)
}

// parseForRest parses the test, update and body of a for statement whose
// init and first `;` have been consumed.
func (p *parser) parseForRest(init ast.Node) ast.Statement {
	stmt := &ast.ForStatement{Init: init}
	if !p.match(scanner.Semicolon) {
		stmt.Test = p.parseExpr()
	}
	p.expect(scanner.Semicolon)
	if !p.match(scanner.RParen) {
		stmt.Update = p.parseExpr()
	}
	stmt.Body = p.parseIterationBody()
	return stmt
}

func (p *parser) parseIterationBody() ast.Statement {
	p.expect(scanner.RParen)
	return p.parseStatement()
}

func (p *parser) parseSwitchStatement() ast.Statement {
	if p.opts.Trace {
		defer un(trace(p, "SwitchStatement"))
	}

	p.lex()
	p.expect(scanner.LParen)
	discriminant := p.parseExpr()
	p.expect(scanner.RParen)
	p.expect(scanner.LBrace)

	if p.eat(scanner.RBrace) {
		return &ast.SwitchStatement{Discriminant: discriminant}
	}

	cases := p.parseSwitchCases()
	if !p.match(scanner.Default) {
		p.expect(scanner.RBrace)
		return &ast.SwitchStatement{Discriminant: discriminant, Cases: cases}
	}

	def := p.parseSwitchDefault()
	post := p.parseSwitchCases()
	if p.match(scanner.Default) {
		p.errorf(msgMultipleDefaultsInSwitch)
	}
	p.expect(scanner.RBrace)
	return &ast.SwitchStatementWithDefault{
		Discriminant:     discriminant,
		PreDefaultCases:  cases,
		DefaultCase:      def,
		PostDefaultCases: post,
	}
}

func (p *parser) parseSwitchCases() []*ast.SwitchCase {
	var cases []*ast.SwitchCase
	for !p.eof() && !p.match(scanner.RBrace) && !p.match(scanner.Default) {
		start := p.startNode()
		p.expect(scanner.Case)
		c := &ast.SwitchCase{Test: p.parseExpr()}
		c.Consequent = p.parseSwitchCaseBody()
		p.finish(start, c)
		cases = append(cases, c)
	}
	return cases
}

func (p *parser) parseSwitchDefault() *ast.SwitchDefault {
	start := p.startNode()
	p.expect(scanner.Default)
	def := &ast.SwitchDefault{Consequent: p.parseSwitchCaseBody()}
	p.finish(start, def)
	return def
}

func (p *parser) parseSwitchCaseBody() []ast.Statement {
	p.expect(scanner.Colon)
	var stmts []ast.Statement
	for !p.eof() && !p.match(scanner.RBrace) && !p.match(scanner.Default) && !p.match(scanner.Case) {
		stmts = append(stmts, p.parseStatementListItem())
	}
	return stmts
}

func (p *parser) parseDoWhileStatement() ast.Statement {
	p.lex()
	body := p.parseStatement()
	p.expect(scanner.While)
	p.expect(scanner.LParen)
	test := p.parseExpr()
	p.expect(scanner.RParen)
	p.eat(scanner.Semicolon)
	return &ast.DoWhileStatement{Body: body, Test: test}
}

// parseJumpLabel parses the optional label of a break or continue statement.
func (p *parser) parseJumpLabel() string {
	p.lex()
	if p.eat(scanner.Semicolon) || p.newlineBefore() {
		return ""
	}
	var label string
	if p.matchIdentifier() {
		label = p.parseIdentifier()
	}
	p.consumeSemicolon()
	return label
}

func (p *parser) parseContinueStatement() ast.Statement {
	return &ast.ContinueStatement{Label: p.parseJumpLabel()}
}

func (p *parser) parseBreakStatement() ast.Statement {
	return &ast.BreakStatement{Label: p.parseJumpLabel()}
}

func (p *parser) parseTryStatement() ast.Statement {
	p.lex()
	body := p.parseBlock()

	if p.match(scanner.Catch) {
		clause := p.parseCatchClause()
		if p.eat(scanner.Finally) {
			return &ast.TryFinallyStatement{Body: body, CatchClause: clause, Finalizer: p.parseBlock()}
		}
		return &ast.TryCatchStatement{Body: body, CatchClause: clause}
	}
	if !p.eat(scanner.Finally) {
		p.errorf(msgNoCatchOrFinally)
	}
	return &ast.TryFinallyStatement{Body: body, Finalizer: p.parseBlock()}
}

func (p *parser) parseCatchClause() *ast.CatchClause {
	start := p.startNode()
	p.lex()
	p.expect(scanner.LParen)
	if p.match(scanner.RParen) || p.match(scanner.LParen) {
		p.unexpected(p.peek())
	}
	clause := &ast.CatchClause{Binding: p.parseBindingTarget()}
	p.expect(scanner.RParen)
	clause.Body = p.parseBlock()
	p.finish(start, clause)
	return clause
}

func (p *parser) parseThrowStatement() ast.Statement {
	p.lex()
	if p.newlineBefore() {
		p.errorf(msgNewlineAfterThrow)
	}
	expr := p.parseExpr()
	p.consumeSemicolon()
	return &ast.ThrowStatement{Expression: expr}
}

func (p *parser) parseReturnStatement() ast.Statement {
	if !p.inFunctionBody {
		p.errorf(msgIllegalReturn)
	}
	p.lex()

	stmt := &ast.ReturnStatement{}
	if p.eat(scanner.Semicolon) || p.newlineBefore() {
		return stmt
	}
	if !p.match(scanner.RBrace) && !p.eof() {
		stmt.Expression = p.parseExpr()
	}
	p.consumeSemicolon()
	return stmt
}

func (p *parser) parseWhileStatement() ast.Statement {
	p.lex()
	p.expect(scanner.LParen)
	test := p.parseExpr()
	return &ast.WhileStatement{Test: test, Body: p.parseIterationBody()}
}

func (p *parser) parseWithStatement() ast.Statement {
	p.lex()
	p.expect(scanner.LParen)
	object := p.parseExpr()
	return &ast.WithStatement{Object: object, Body: p.parseIterationBody()}
}
