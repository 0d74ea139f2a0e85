package parser

import (
	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

func (p *parser) parseModuleItem() ast.ModuleItem {
	switch p.peek().Kind {
	case scanner.Import:
		return p.parseImportDeclaration()
	case scanner.Export:
		return p.parseExportDeclaration()
	}
	return p.parseStatementListItem()
}

// -- imports

func (p *parser) parseImportDeclaration() ast.ModuleItem {
	if p.opts.Trace {
		defer un(trace(p, "ImportDeclaration"))
	}

	start := p.startNode()
	p.expect(scanner.Import)

	var defaultBinding *ast.BindingIdentifier
	switch p.peek().Kind {
	case scanner.StringLiteral:
		decl := &ast.Import{ModuleSpecifier: p.lex().Value}
		p.consumeSemicolon()
		p.finish(start, decl)
		return decl
	case scanner.Identifier, scanner.Yield, scanner.Let:
		defaultBinding = p.parseBindingIdentifier()
		if !p.eat(scanner.Comma) {
			decl := &ast.Import{DefaultBinding: defaultBinding, ModuleSpecifier: p.parseFromClause()}
			p.consumeSemicolon()
			p.finish(start, decl)
			return decl
		}
	}

	var decl ast.ModuleItem
	switch {
	case p.match(scanner.Mul):
		ns := p.parseNamespaceBinding()
		decl = &ast.ImportNamespace{DefaultBinding: defaultBinding, NamespaceBinding: ns, ModuleSpecifier: p.parseFromClause()}
	case p.match(scanner.LBrace):
		named := p.parseNamedImports()
		decl = &ast.Import{DefaultBinding: defaultBinding, NamedImports: named, ModuleSpecifier: p.parseFromClause()}
	default:
		p.unexpected(p.peek())
	}
	p.consumeSemicolon()
	p.finish(start, decl)
	return decl
}

func (p *parser) parseNamedImports() []*ast.ImportSpecifier {
	p.expect(scanner.LBrace)
	var specs []*ast.ImportSpecifier
	for !p.eat(scanner.RBrace) {
		specs = append(specs, p.parseImportSpecifier())
		if !p.eat(scanner.Comma) {
			p.expect(scanner.RBrace)
			break
		}
	}
	return specs
}

// parseImportSpecifier parses `name`, `name as binding`, or `keyword as
// binding` where the imported name is a reserved word.
func (p *parser) parseImportSpecifier() *ast.ImportSpecifier {
	start := p.startNode()
	var name string
	if p.matchIdentifier() {
		name = p.parseIdentifier()
		if !p.eatContextualKeyword("as") {
			binding := &ast.BindingIdentifier{Name: name}
			p.finish(start, binding)
			spec := &ast.ImportSpecifier{Binding: binding}
			p.finish(start, spec)
			return spec
		}
	} else if p.peek().Kind.IsIdentifierName() {
		name = p.parseIdentifierName()
		p.expectContextualKeyword("as")
	}

	spec := &ast.ImportSpecifier{Name: name, Binding: p.parseBindingIdentifier()}
	p.finish(start, spec)
	return spec
}

func (p *parser) parseNamespaceBinding() *ast.BindingIdentifier {
	p.expect(scanner.Mul)
	p.expectContextualKeyword("as")
	return p.parseBindingIdentifier()
}

func (p *parser) parseFromClause() string {
	p.expectContextualKeyword("from")
	return p.expect(scanner.StringLiteral).Value
}

// -- exports

func (p *parser) parseExportDeclaration() ast.ModuleItem {
	if p.opts.Trace {
		defer un(trace(p, "ExportDeclaration"))
	}

	start := p.startNode()
	p.expect(scanner.Export)

	var decl ast.ModuleItem
	switch p.peek().Kind {
	case scanner.Mul:
		p.lex()
		decl = &ast.ExportAllFrom{ModuleSpecifier: p.parseFromClause()}
		p.consumeSemicolon()

	case scanner.LBrace:
		from, locals := p.parseExportClause()
		if p.matchContextualKeyword("from") {
			decl = &ast.ExportFrom{NamedExports: from, ModuleSpecifier: p.parseFromClause()}
		} else {
			decl = &ast.ExportLocals{NamedExports: locals}
		}
		p.consumeSemicolon()

	case scanner.Class:
		decl = &ast.Export{Declaration: p.parseClassDeclaration(false)}

	case scanner.Function:
		decl = &ast.Export{Declaration: p.parseFunctionDeclaration(false, true, false)}

	case scanner.Async:
		preAsync := p.startNode()
		p.lex()
		fn := p.parseFunctionDeclaration(false, false, true)
		p.finish(preAsync, fn)
		decl = &ast.Export{Declaration: fn}

	case scanner.Default:
		p.lex()
		decl = &ast.ExportDefault{Body: p.parseExportDefaultBody()}

	case scanner.Var, scanner.Let, scanner.Const:
		decl = &ast.Export{Declaration: p.parseVariableDeclaration(true)}
		p.consumeSemicolon()

	default:
		p.unexpected(p.peek())
	}

	p.finish(start, decl)
	if d, ok := decl.(*ast.ExportDefault); ok {
		if name := anonymousDefaultBinding(d.Body); name != nil {
			copySpan(d, name)
		}
	}
	return decl
}

// defaultBindingName binds `export default function () {}` and `export default class {}`.
const defaultBindingName = "*default*"

// anonymousDefaultBinding returns the binding made up for an anonymous default
// exported function or class. It has no source text of its own, so it takes
// the span of the export declaration.
func anonymousDefaultBinding(body ast.Node) *ast.BindingIdentifier {
	var name *ast.BindingIdentifier
	switch body := body.(type) {
	case *ast.FunctionDeclaration:
		name = body.Name
	case *ast.ClassDeclaration:
		name = body.Name
	}
	if name != nil && name.Name == defaultBindingName {
		return name
	}
	return nil
}

func (p *parser) parseExportDefaultBody() ast.Node {
	switch p.peek().Kind {
	case scanner.Function:
		return p.parseFunctionDeclaration(true, true, false)
	case scanner.Class:
		return p.parseClassDeclaration(true)
	case scanner.Async:
		preAsync := p.startNode()
		state := p.s.Save()
		p.lex()
		if !p.newlineBefore() && p.match(scanner.Function) {
			fn := p.parseFunctionDeclaration(true, false, true)
			p.finish(preAsync, fn)
			return fn
		}
		p.s.Restore(state)
	}

	expr := p.expression(p.parseAssignmentExpression())
	p.consumeSemicolon()
	return expr
}

// parseExportClause parses `{a, b as c}`. Whether the names refer to local
// bindings or to another module is only known after the clause, so both
// readings are returned.
func (p *parser) parseExportClause() ([]*ast.ExportFromSpecifier, []*ast.ExportLocalSpecifier) {
	p.expect(scanner.LBrace)
	var (
		from   []*ast.ExportFromSpecifier
		locals []*ast.ExportLocalSpecifier
	)
	for !p.eat(scanner.RBrace) {
		f, l := p.parseExportSpecifier()
		from = append(from, f)
		locals = append(locals, l)
		if !p.eat(scanner.Comma) {
			p.expect(scanner.RBrace)
			break
		}
	}
	return from, locals
}

func (p *parser) parseExportSpecifier() (*ast.ExportFromSpecifier, *ast.ExportLocalSpecifier) {
	start := p.startNode()
	name := p.parseIdentifierName()
	id := &ast.IdentifierExpression{Name: name}
	p.finish(start, id)

	var exported string
	if p.eatContextualKeyword("as") {
		exported = p.parseIdentifierName()
	}
	from := &ast.ExportFromSpecifier{Name: name, ExportedName: exported}
	p.finish(start, from)
	local := &ast.ExportLocalSpecifier{Name: id, ExportedName: exported}
	p.finish(start, local)
	return from, local
}
