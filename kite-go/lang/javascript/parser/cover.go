package parser

import (
	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

// cover is the result of a production whose meaning depends on what follows
// it. Exactly one of expr, params and target is set:
//   - expr for anything that parsed as an expression (`a`, `[a, b]`), which
//     may still be reinterpreted as a target or arrow parameters,
//   - params for text that can only be arrow parameters (`()`, `(a, ...b)`),
//   - target for text that can only be an assignment target (`{a = 0}`).
type cover struct {
	expr   ast.ExpressionSuper
	params *ast.FormalParameters
	// async marks params read after `async`
	async  bool
	target ast.AssignmentTarget
}

func exprCover(e ast.ExpressionSuper) cover {
	return cover{expr: e}
}

func (c cover) isExpr() bool   { return c.expr != nil }
func (c cover) isParams() bool { return c.params != nil }
func (c cover) isTarget() bool { return c.target != nil }

// node returns whichever node c holds.
func (c cover) node() ast.Node {
	switch {
	case c.expr != nil:
		return c.expr
	case c.params != nil:
		return c.params
	}
	return c.target
}

// expression returns the expression held by c, failing when c is not one.
func (p *parser) expression(c cover) ast.Expression {
	if e, ok := c.expr.(ast.Expression); ok {
		return e
	}
	if c.isTarget() {
		p.errorf(msgUnexpectedObjectBinding)
	}
	p.unexpected(p.peek())
	return nil
}

// isolated runs f with fresh cover grammar state and fails with any deferred
// error f left behind: whatever f parsed must be a complete expression.
func (p *parser) isolated(f func()) {
	defer p.nest()()

	oldBinding, oldTarget, oldErr := p.isBindingElement, p.isAssignmentTarget, p.firstExprError
	p.isBindingElement, p.isAssignmentTarget = true, true
	p.firstExprError = nil
	f()
	if p.firstExprError != nil {
		p.fail(p.firstExprError)
	}
	p.isBindingElement, p.isAssignmentTarget, p.firstExprError = oldBinding, oldTarget, oldErr
}

func (p *parser) isolateCoverGrammar(f func() cover) cover {
	var c cover
	p.isolated(func() { c = f() })
	return c
}

// inheritCoverGrammar runs f with fresh cover grammar state and merges the
// result into the enclosing state: both flags must hold for the whole, and
// the first deferred error wins.
func (p *parser) inheritCoverGrammar(f func() cover) cover {
	defer p.nest()()

	oldBinding, oldTarget, oldErr := p.isBindingElement, p.isAssignmentTarget, p.firstExprError
	p.isBindingElement, p.isAssignmentTarget = true, true
	p.firstExprError = nil
	c := f()
	p.isBindingElement = p.isBindingElement && oldBinding
	p.isAssignmentTarget = p.isAssignmentTarget && oldTarget
	if oldErr != nil {
		p.firstExprError = oldErr
	}
	return c
}

func isValidSimpleAssignmentTarget(n ast.Node) bool {
	switch n.(type) {
	case *ast.IdentifierExpression, *ast.ComputedMemberExpression, *ast.StaticMemberExpression:
		return true
	}
	return false
}

// -- expression to assignment target

// transformDestructuring reinterprets an expression as an assignment target.
func (p *parser) transformDestructuring(e ast.Expression) ast.AssignmentTarget {
	switch e := e.(type) {
	case *ast.ObjectExpression:
		t := &ast.ObjectAssignmentTarget{}
		for _, prop := range e.Properties {
			t.Properties = append(t.Properties, p.transformProperty(prop))
		}
		copySpan(e, t)
		return t

	case *ast.ArrayExpression:
		t := &ast.ArrayAssignmentTarget{}
		elems := e.Elements
		if n := len(elems); n > 0 {
			if spread, ok := elems[n-1].(*ast.SpreadElement); ok {
				t.Rest = p.transformDestructuring(spread.Expression)
				elems = elems[:n-1]
			}
		}
		for _, el := range elems {
			if el == nil {
				t.Elements = append(t.Elements, nil)
				continue
			}
			ex, ok := el.(ast.Expression)
			if !ok {
				p.errorf(msgInvalidLHSInAssignment)
			}
			t.Elements = append(t.Elements, p.transformDestructuringWithDefault(ex))
		}
		copySpan(e, t)
		return t

	case *ast.IdentifierExpression:
		t := &ast.AssignmentTargetIdentifier{Name: e.Name}
		copySpan(e, t)
		return t

	case *ast.ComputedMemberExpression:
		t := &ast.ComputedMemberAssignmentTarget{Object: e.Object, Expression: e.Expression}
		copySpan(e, t)
		return t

	case *ast.StaticMemberExpression:
		t := &ast.StaticMemberAssignmentTarget{Object: e.Object, Property: e.Property}
		copySpan(e, t)
		return t
	}
	p.errorf(msgInvalidLHSInAssignment)
	return nil
}

func (p *parser) transformProperty(prop ast.ObjectProperty) ast.AssignmentTargetProperty {
	switch prop := prop.(type) {
	case *ast.DataProperty:
		t := &ast.AssignmentTargetPropertyProperty{
			Name:    prop.Name,
			Binding: p.transformDestructuringWithDefault(prop.Expression),
		}
		copySpan(prop, t)
		return t
	case *ast.ShorthandProperty:
		id := &ast.AssignmentTargetIdentifier{Name: prop.Name.Name}
		copySpan(prop.Name, id)
		t := &ast.AssignmentTargetPropertyIdentifier{Binding: id}
		copySpan(prop, t)
		return t
	}
	p.errorf(msgInvalidLHSInAssignment)
	return nil
}

func (p *parser) transformStaticName(name *ast.StaticPropertyName) *ast.AssignmentTargetIdentifier {
	t := &ast.AssignmentTargetIdentifier{Name: name.Value}
	copySpan(name, t)
	return t
}

// transformDestructuringWithDefault turns `a = 1` into a target with a default.
func (p *parser) transformDestructuringWithDefault(e ast.Expression) ast.AssignmentTargetElement {
	if assign, ok := e.(*ast.AssignmentExpression); ok {
		t := &ast.AssignmentTargetWithDefault{Binding: assign.Binding, Init: assign.Expression}
		copySpan(assign, t)
		return t
	}
	return p.transformDestructuring(e)
}

// -- assignment target to binding

// targetToBinding reinterprets an assignment target as a binding pattern,
// which fails for member expressions.
func (p *parser) targetToBinding(t ast.AssignmentTarget) ast.Binding {
	switch t := t.(type) {
	case *ast.AssignmentTargetIdentifier:
		b := &ast.BindingIdentifier{Name: t.Name}
		copySpan(t, b)
		return b

	case *ast.ArrayAssignmentTarget:
		b := &ast.ArrayBinding{}
		for _, el := range t.Elements {
			if el == nil {
				b.Elements = append(b.Elements, nil)
				continue
			}
			b.Elements = append(b.Elements, p.targetToBindingPossiblyWithDefault(el))
		}
		if t.Rest != nil {
			b.Rest = p.targetToBinding(t.Rest)
		}
		copySpan(t, b)
		return b

	case *ast.ObjectAssignmentTarget:
		b := &ast.ObjectBinding{}
		for _, prop := range t.Properties {
			switch prop := prop.(type) {
			case *ast.AssignmentTargetPropertyIdentifier:
				id := &ast.BindingIdentifier{Name: prop.Binding.Name}
				copySpan(prop.Binding, id)
				bp := &ast.BindingPropertyIdentifier{Binding: id, Init: prop.Init}
				copySpan(prop, bp)
				b.Properties = append(b.Properties, bp)
			case *ast.AssignmentTargetPropertyProperty:
				bp := &ast.BindingPropertyProperty{
					Name:    prop.Name,
					Binding: p.targetToBindingPossiblyWithDefault(prop.Binding),
				}
				copySpan(prop, bp)
				b.Properties = append(b.Properties, bp)
			}
		}
		copySpan(t, b)
		return b
	}

	// member expressions
	if p.match(scanner.Assign) {
		p.errorf(msgInvalidLHSInAssignment)
	}
	p.errorf(msgIllegalArrowParams)
	return nil
}

func (p *parser) targetToBindingPossiblyWithDefault(el ast.AssignmentTargetElement) ast.Parameter {
	if wd, ok := el.(*ast.AssignmentTargetWithDefault); ok {
		b := &ast.BindingWithDefault{Binding: p.targetToBinding(wd.Binding), Init: wd.Init}
		copySpan(wd, b)
		return b
	}
	return p.targetToBinding(el.(ast.AssignmentTarget))
}
