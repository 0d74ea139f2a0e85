package ast

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	if f(node) {
		for _, child := range Children(node) {
			Inspect(child, f)
		}
		f(nil)
	}
}

type children []Node

func (c *children) add(n Node) {
	if n != nil {
		*c = append(*c, n)
	}
}

// Children returns the non-nil child nodes of n in source order.
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *Script:
		for _, d := range n.Directives {
			c.add(d)
		}
		for _, s := range n.Statements {
			c.add(s)
		}
	case *Module:
		for _, d := range n.Directives {
			c.add(d)
		}
		for _, s := range n.Items {
			c.add(s)
		}
	case *FunctionBody:
		for _, d := range n.Directives {
			c.add(d)
		}
		for _, s := range n.Statements {
			c.add(s)
		}
	case *FormalParameters:
		for _, p := range n.Items {
			c.add(p)
		}
		c.add(n.Rest)

	case *ArrayBinding:
		for _, e := range n.Elements {
			c.add(e)
		}
		c.add(n.Rest)
	case *ObjectBinding:
		for _, p := range n.Properties {
			c.add(p)
		}
	case *BindingWithDefault:
		c.add(n.Binding)
		c.add(n.Init)
	case *BindingPropertyIdentifier:
		if n.Binding != nil {
			c.add(n.Binding)
		}
		c.add(n.Init)
	case *BindingPropertyProperty:
		c.add(n.Name)
		c.add(n.Binding)

	case *StaticMemberAssignmentTarget:
		c.add(n.Object)
	case *ComputedMemberAssignmentTarget:
		c.add(n.Object)
		c.add(n.Expression)
	case *ArrayAssignmentTarget:
		for _, e := range n.Elements {
			c.add(e)
		}
		c.add(n.Rest)
	case *ObjectAssignmentTarget:
		for _, p := range n.Properties {
			c.add(p)
		}
	case *AssignmentTargetWithDefault:
		c.add(n.Binding)
		c.add(n.Init)
	case *AssignmentTargetPropertyIdentifier:
		if n.Binding != nil {
			c.add(n.Binding)
		}
		c.add(n.Init)
	case *AssignmentTargetPropertyProperty:
		c.add(n.Name)
		c.add(n.Binding)

	case *ClassDeclaration:
		if n.Name != nil {
			c.add(n.Name)
		}
		c.add(n.Super)
		for _, e := range n.Elements {
			c.add(e)
		}
	case *ClassExpression:
		if n.Name != nil {
			c.add(n.Name)
		}
		c.add(n.Super)
		for _, e := range n.Elements {
			c.add(e)
		}
	case *ClassElement:
		c.add(n.Method)
	case *FunctionDeclaration:
		if n.Name != nil {
			c.add(n.Name)
		}
		c.add(n.Params)
		c.add(n.Body)
	case *FunctionExpression:
		if n.Name != nil {
			c.add(n.Name)
		}
		c.add(n.Params)
		c.add(n.Body)
	case *ArrowExpression:
		c.add(n.Params)
		c.add(n.Body)
	case *Method:
		c.add(n.Name)
		c.add(n.Params)
		c.add(n.Body)
	case *Getter:
		c.add(n.Name)
		c.add(n.Body)
	case *Setter:
		c.add(n.Name)
		c.add(n.Param)
		c.add(n.Body)
	case *DataProperty:
		c.add(n.Name)
		c.add(n.Expression)
	case *ShorthandProperty:
		c.add(n.Name)
	case *ComputedPropertyName:
		c.add(n.Expression)

	case *ArrayExpression:
		for _, e := range n.Elements {
			c.add(e)
		}
	case *ObjectExpression:
		for _, p := range n.Properties {
			c.add(p)
		}
	case *SpreadElement:
		c.add(n.Expression)
	case *TemplateExpression:
		c.add(n.Tag)
		for _, e := range n.Elements {
			c.add(e)
		}
	case *AssignmentExpression:
		c.add(n.Binding)
		c.add(n.Expression)
	case *CompoundAssignmentExpression:
		c.add(n.Binding)
		c.add(n.Expression)
	case *BinaryExpression:
		c.add(n.Left)
		c.add(n.Right)
	case *UnaryExpression:
		c.add(n.Operand)
	case *UpdateExpression:
		c.add(n.Operand)
	case *ConditionalExpression:
		c.add(n.Test)
		c.add(n.Consequent)
		c.add(n.Alternate)
	case *CallExpression:
		c.add(n.Callee)
		for _, a := range n.Arguments {
			c.add(a)
		}
	case *NewExpression:
		c.add(n.Callee)
		for _, a := range n.Arguments {
			c.add(a)
		}
	case *StaticMemberExpression:
		c.add(n.Object)
	case *ComputedMemberExpression:
		c.add(n.Object)
		c.add(n.Expression)
	case *YieldExpression:
		c.add(n.Expression)
	case *YieldGeneratorExpression:
		c.add(n.Expression)
	case *AwaitExpression:
		c.add(n.Expression)

	case *Block:
		for _, s := range n.Statements {
			c.add(s)
		}
	case *BlockStatement:
		c.add(n.Block)
	case *ExpressionStatement:
		c.add(n.Expression)
	case *IfStatement:
		c.add(n.Test)
		c.add(n.Consequent)
		c.add(n.Alternate)
	case *LabeledStatement:
		c.add(n.Body)
	case *ReturnStatement:
		c.add(n.Expression)
	case *ThrowStatement:
		c.add(n.Expression)
	case *TryCatchStatement:
		c.add(n.Body)
		c.add(n.CatchClause)
	case *TryFinallyStatement:
		c.add(n.Body)
		if n.CatchClause != nil {
			c.add(n.CatchClause)
		}
		c.add(n.Finalizer)
	case *CatchClause:
		c.add(n.Binding)
		c.add(n.Body)
	case *SwitchStatement:
		c.add(n.Discriminant)
		for _, sc := range n.Cases {
			c.add(sc)
		}
	case *SwitchStatementWithDefault:
		c.add(n.Discriminant)
		for _, sc := range n.PreDefaultCases {
			c.add(sc)
		}
		c.add(n.DefaultCase)
		for _, sc := range n.PostDefaultCases {
			c.add(sc)
		}
	case *SwitchCase:
		c.add(n.Test)
		for _, s := range n.Consequent {
			c.add(s)
		}
	case *SwitchDefault:
		for _, s := range n.Consequent {
			c.add(s)
		}
	case *VariableDeclarationStatement:
		c.add(n.Declaration)
	case *VariableDeclaration:
		for _, d := range n.Declarators {
			c.add(d)
		}
	case *VariableDeclarator:
		c.add(n.Binding)
		c.add(n.Init)
	case *WithStatement:
		c.add(n.Object)
		c.add(n.Body)
	case *DoWhileStatement:
		c.add(n.Body)
		c.add(n.Test)
	case *WhileStatement:
		c.add(n.Test)
		c.add(n.Body)
	case *ForStatement:
		c.add(n.Init)
		c.add(n.Test)
		c.add(n.Update)
		c.add(n.Body)
	case *ForInStatement:
		c.add(n.Left)
		c.add(n.Right)
		c.add(n.Body)
	case *ForOfStatement:
		c.add(n.Left)
		c.add(n.Right)
		c.add(n.Body)

	case *Import:
		if n.DefaultBinding != nil {
			c.add(n.DefaultBinding)
		}
		for _, s := range n.NamedImports {
			c.add(s)
		}
	case *ImportNamespace:
		if n.DefaultBinding != nil {
			c.add(n.DefaultBinding)
		}
		c.add(n.NamespaceBinding)
	case *ImportSpecifier:
		c.add(n.Binding)
	case *ExportFrom:
		for _, s := range n.NamedExports {
			c.add(s)
		}
	case *ExportLocals:
		for _, s := range n.NamedExports {
			c.add(s)
		}
	case *ExportLocalSpecifier:
		c.add(n.Name)
	case *Export:
		c.add(n.Declaration)
	case *ExportDefault:
		c.add(n.Body)
	}
	return c
}
