package ast

// Type of an ast node.
type Type string

// Node in a javascript AST. Every node records the source span it was parsed
// from when location tracking is enabled.
type Node interface {
	Type() Type
	Span() Span
	SetSpan(Span)
}

// Program is a parsed Script or Module.
type Program interface {
	Node
	programNode()
}

// Expression nodes.
type Expression interface {
	Node
	ExpressionSuper
	SpreadElementExpression
	exprNode()
}

// ExpressionSuper is an Expression or *Super, the object of a member access or the callee of a call.
type ExpressionSuper interface {
	Node
	exprSuperNode()
}

// SpreadElementExpression is an Expression or a *SpreadElement, the element of an array literal or an argument list.
type SpreadElementExpression interface {
	Node
	argumentNode()
}

// Statement nodes.
type Statement interface {
	Node
	ModuleItem
	stmtNode()
}

// ModuleItem is a Statement or an import or export declaration.
type ModuleItem interface {
	Node
	moduleItemNode()
}

// Binding is a BindingIdentifier, ArrayBinding or ObjectBinding.
type Binding interface {
	Node
	Parameter
	bindingNode()
}

// Parameter is a Binding or a *BindingWithDefault.
type Parameter interface {
	Node
	paramNode()
}

// BindingProperty is a property of an ObjectBinding.
type BindingProperty interface {
	Node
	bindingPropertyNode()
}

// AssignmentTarget is a SimpleAssignmentTarget, ArrayAssignmentTarget or ObjectAssignmentTarget.
type AssignmentTarget interface {
	Node
	AssignmentTargetElement
	targetNode()
}

// SimpleAssignmentTarget is an identifier or member assignment target.
type SimpleAssignmentTarget interface {
	AssignmentTarget
	simpleTargetNode()
}

// AssignmentTargetElement is an AssignmentTarget or an *AssignmentTargetWithDefault.
type AssignmentTargetElement interface {
	Node
	targetElementNode()
}

// AssignmentTargetProperty is a property of an ObjectAssignmentTarget.
type AssignmentTargetProperty interface {
	Node
	targetPropertyNode()
}

// PropertyName is a StaticPropertyName or ComputedPropertyName.
type PropertyName interface {
	Node
	propertyNameNode()
}

// ObjectProperty is a property of an object literal.
type ObjectProperty interface {
	Node
	objectPropertyNode()
}

// MethodDefinition is a Method, Getter or Setter.
type MethodDefinition interface {
	ObjectProperty
	MethodName() PropertyName
	MethodBody() *FunctionBody
}

type node struct {
	Loc Span `json:"loc"`
}

func (n *node) Span() Span     { return n.Loc }
func (n *node) SetSpan(s Span) { n.Loc = s }

type expr struct{}

func (expr) exprNode()      {}
func (expr) exprSuperNode() {}
func (expr) argumentNode()  {}

type stmt struct{}

func (stmt) stmtNode()       {}
func (stmt) moduleItemNode() {}

type binding struct{}

func (binding) bindingNode() {}
func (binding) paramNode()   {}

type target struct{}

func (target) targetNode()        {}
func (target) targetElementNode() {}

type simpleTarget struct{ target }

func (simpleTarget) simpleTargetNode() {}

type moduleItem struct{}

func (moduleItem) moduleItemNode() {}

// -- Programs

// Script is the goal symbol for classic scripts.
type Script struct {
	node
	Directives []*Directive `json:"directives"`
	Statements []Statement  `json:"statements"`
}

// Module is the goal symbol for ES modules.
type Module struct {
	node
	Directives []*Directive `json:"directives"`
	Items      []ModuleItem `json:"items"`
}

func (*Script) programNode() {}
func (*Module) programNode() {}

// Directive is a prologue string such as "use strict". RawValue is the text between the quotes.
type Directive struct {
	node
	RawValue string `json:"rawValue"`
}

// FunctionBody holds the directives and statements of a function.
type FunctionBody struct {
	node
	Directives []*Directive `json:"directives"`
	Statements []Statement  `json:"statements"`
}

// FormalParameters is a parameter list. Rest is nil without a rest parameter.
type FormalParameters struct {
	node
	Items []Parameter `json:"items"`
	Rest  Binding     `json:"rest"`
}

// -- Bindings

// BindingIdentifier is an identifier in binding position.
type BindingIdentifier struct {
	node
	binding
	Name string `json:"name"`
}

// ArrayBinding is an array destructuring pattern. Holes are nil elements.
type ArrayBinding struct {
	node
	binding
	Elements []Parameter `json:"elements"`
	Rest     Binding     `json:"rest"`
}

// ObjectBinding is an object destructuring pattern.
type ObjectBinding struct {
	node
	binding
	Properties []BindingProperty `json:"properties"`
}

// BindingWithDefault is a binding with an initializer.
type BindingWithDefault struct {
	node
	Binding Binding    `json:"binding"`
	Init    Expression `json:"init"`
}

func (*BindingWithDefault) paramNode() {}

// BindingPropertyIdentifier is a shorthand property in an ObjectBinding, `{a = 1}`.
type BindingPropertyIdentifier struct {
	node
	Binding *BindingIdentifier `json:"binding"`
	Init    Expression         `json:"init"`
}

// BindingPropertyProperty is a `name: binding` property in an ObjectBinding.
type BindingPropertyProperty struct {
	node
	Name    PropertyName `json:"name"`
	Binding Parameter    `json:"binding"`
}

func (*BindingPropertyIdentifier) bindingPropertyNode() {}
func (*BindingPropertyProperty) bindingPropertyNode()   {}

// -- Assignment targets

// AssignmentTargetIdentifier is an identifier being assigned to.
type AssignmentTargetIdentifier struct {
	node
	simpleTarget
	Name string `json:"name"`
}

// StaticMemberAssignmentTarget is `object.property` being assigned to.
type StaticMemberAssignmentTarget struct {
	node
	simpleTarget
	Object   ExpressionSuper `json:"object"`
	Property string          `json:"property"`
}

// ComputedMemberAssignmentTarget is `object[expression]` being assigned to.
type ComputedMemberAssignmentTarget struct {
	node
	simpleTarget
	Object     ExpressionSuper `json:"object"`
	Expression Expression      `json:"expression"`
}

// ArrayAssignmentTarget is an array destructuring assignment target. Holes are nil elements.
type ArrayAssignmentTarget struct {
	node
	target
	Elements []AssignmentTargetElement `json:"elements"`
	Rest     AssignmentTarget          `json:"rest"`
}

// ObjectAssignmentTarget is an object destructuring assignment target.
type ObjectAssignmentTarget struct {
	node
	target
	Properties []AssignmentTargetProperty `json:"properties"`
}

// AssignmentTargetWithDefault is a destructuring target with an initializer.
type AssignmentTargetWithDefault struct {
	node
	Binding AssignmentTarget `json:"binding"`
	Init    Expression       `json:"init"`
}

func (*AssignmentTargetWithDefault) targetElementNode() {}

// AssignmentTargetPropertyIdentifier is a shorthand property in an ObjectAssignmentTarget.
type AssignmentTargetPropertyIdentifier struct {
	node
	Binding *AssignmentTargetIdentifier `json:"binding"`
	Init    Expression                  `json:"init"`
}

// AssignmentTargetPropertyProperty is a `name: target` property in an ObjectAssignmentTarget.
type AssignmentTargetPropertyProperty struct {
	node
	Name    PropertyName            `json:"name"`
	Binding AssignmentTargetElement `json:"binding"`
}

func (*AssignmentTargetPropertyIdentifier) targetPropertyNode() {}
func (*AssignmentTargetPropertyProperty) targetPropertyNode()   {}

// -- Classes, functions and properties

// ClassDeclaration is a class declaration. Super is nil without a heritage clause.
type ClassDeclaration struct {
	node
	stmt
	Name     *BindingIdentifier `json:"name"`
	Super    Expression         `json:"super"`
	Elements []*ClassElement    `json:"elements"`
}

// ClassExpression is a class expression. Name may be nil.
type ClassExpression struct {
	node
	expr
	Name     *BindingIdentifier `json:"name"`
	Super    Expression         `json:"super"`
	Elements []*ClassElement    `json:"elements"`
}

// ClassElement is a method of a class body.
type ClassElement struct {
	node
	IsStatic bool             `json:"isStatic"`
	Method   MethodDefinition `json:"method"`
}

// FunctionDeclaration is a function, generator or async function declaration.
type FunctionDeclaration struct {
	node
	stmt
	IsAsync     bool               `json:"isAsync"`
	IsGenerator bool               `json:"isGenerator"`
	Name        *BindingIdentifier `json:"name"`
	Params      *FormalParameters  `json:"params"`
	Body        *FunctionBody      `json:"body"`
}

// FunctionExpression is a function expression. Name may be nil.
type FunctionExpression struct {
	node
	expr
	IsAsync     bool               `json:"isAsync"`
	IsGenerator bool               `json:"isGenerator"`
	Name        *BindingIdentifier `json:"name"`
	Params      *FormalParameters  `json:"params"`
	Body        *FunctionBody      `json:"body"`
}

// ArrowExpression is an arrow function. Body is a *FunctionBody or a concise Expression.
type ArrowExpression struct {
	node
	expr
	IsAsync bool              `json:"isAsync"`
	Params  *FormalParameters `json:"params"`
	Body    Node              `json:"body"`
}

// Method is a method definition, including generator and async methods.
type Method struct {
	node
	IsAsync     bool              `json:"isAsync"`
	IsGenerator bool              `json:"isGenerator"`
	Name        PropertyName      `json:"name"`
	Params      *FormalParameters `json:"params"`
	Body        *FunctionBody     `json:"body"`
}

// Getter is a `get name() {}` accessor.
type Getter struct {
	node
	Name PropertyName  `json:"name"`
	Body *FunctionBody `json:"body"`
}

// Setter is a `set name(param) {}` accessor.
type Setter struct {
	node
	Name  PropertyName  `json:"name"`
	Param Parameter     `json:"param"`
	Body  *FunctionBody `json:"body"`
}

// DataProperty is a `name: expression` property.
type DataProperty struct {
	node
	Name       PropertyName `json:"name"`
	Expression Expression   `json:"expression"`
}

// ShorthandProperty is a `{ name }` property.
type ShorthandProperty struct {
	node
	Name *IdentifierExpression `json:"name"`
}

func (*Method) objectPropertyNode()            {}
func (*Getter) objectPropertyNode()            {}
func (*Setter) objectPropertyNode()            {}
func (*DataProperty) objectPropertyNode()      {}
func (*ShorthandProperty) objectPropertyNode() {}

// MethodName implements MethodDefinition.
func (m *Method) MethodName() PropertyName { return m.Name }

// MethodName implements MethodDefinition.
func (g *Getter) MethodName() PropertyName { return g.Name }

// MethodName implements MethodDefinition.
func (s *Setter) MethodName() PropertyName { return s.Name }

// MethodBody implements MethodDefinition.
func (m *Method) MethodBody() *FunctionBody { return m.Body }

// MethodBody implements MethodDefinition.
func (g *Getter) MethodBody() *FunctionBody { return g.Body }

// MethodBody implements MethodDefinition.
func (s *Setter) MethodBody() *FunctionBody { return s.Body }

// StaticPropertyName is an identifier, string or numeric property key. Value is the key as a string.
type StaticPropertyName struct {
	node
	Value string `json:"value"`
}

// ComputedPropertyName is a `[expression]` property key.
type ComputedPropertyName struct {
	node
	Expression Expression `json:"expression"`
}

func (*StaticPropertyName) propertyNameNode()   {}
func (*ComputedPropertyName) propertyNameNode() {}

// -- Expressions

// IdentifierExpression is an identifier reference.
type IdentifierExpression struct {
	node
	expr
	Name string `json:"name"`
}

// ThisExpression is `this`.
type ThisExpression struct {
	node
	expr
}

// Super is the `super` keyword as a callee or member object.
type Super struct {
	node
}

func (*Super) exprSuperNode() {}

// NewTargetExpression is `new.target`.
type NewTargetExpression struct {
	node
	expr
}

// LiteralBooleanExpression is `true` or `false`.
type LiteralBooleanExpression struct {
	node
	expr
	Value bool `json:"value"`
}

// LiteralNullExpression is `null`.
type LiteralNullExpression struct {
	node
	expr
}

// LiteralNumericExpression is a finite numeric literal.
type LiteralNumericExpression struct {
	node
	expr
	Value float64 `json:"value"`
}

// LiteralInfinityExpression is a numeric literal too large to represent.
type LiteralInfinityExpression struct {
	node
	expr
}

// LiteralStringExpression is a string literal. Value is the cooked value.
type LiteralStringExpression struct {
	node
	expr
	Value string `json:"value"`
}

// LiteralRegExpExpression is a regular expression literal.
type LiteralRegExpExpression struct {
	node
	expr
	Pattern    string `json:"pattern"`
	Global     bool   `json:"global"`
	IgnoreCase bool   `json:"ignoreCase"`
	Multiline  bool   `json:"multiLine"`
	Sticky     bool   `json:"sticky"`
	Unicode    bool   `json:"unicode"`
}

// ArrayExpression is an array literal. Holes are nil elements.
type ArrayExpression struct {
	node
	expr
	Elements []SpreadElementExpression `json:"elements"`
}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	node
	expr
	Properties []ObjectProperty `json:"properties"`
}

// SpreadElement is `...expression` in an array literal or argument list.
type SpreadElement struct {
	node
	Expression Expression `json:"expression"`
}

func (*SpreadElement) argumentNode() {}

// TemplateElement is the raw text between template substitutions.
type TemplateElement struct {
	node
	RawValue string `json:"rawValue"`
}

// TemplateExpression is a template literal. Elements alternate between
// *TemplateElement and Expression, starting and ending with an element.
type TemplateExpression struct {
	node
	expr
	Tag      Expression `json:"tag"`
	Elements []Node     `json:"elements"`
}

// AssignmentExpression is `binding = expression`.
type AssignmentExpression struct {
	node
	expr
	Binding    AssignmentTarget `json:"binding"`
	Expression Expression       `json:"expression"`
}

// CompoundAssignmentExpression is `binding op= expression`.
type CompoundAssignmentExpression struct {
	node
	expr
	Binding    SimpleAssignmentTarget `json:"binding"`
	Operator   string                 `json:"operator"`
	Expression Expression             `json:"expression"`
}

// BinaryExpression covers binary, logical and comma operators.
type BinaryExpression struct {
	node
	expr
	Left     Expression `json:"left"`
	Operator string     `json:"operator"`
	Right    Expression `json:"right"`
}

// UnaryExpression is a prefix operator other than ++ and --.
type UnaryExpression struct {
	node
	expr
	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

// UpdateExpression is ++ or -- in prefix or postfix position.
type UpdateExpression struct {
	node
	expr
	IsPrefix bool                   `json:"isPrefix"`
	Operator string                 `json:"operator"`
	Operand  SimpleAssignmentTarget `json:"operand"`
}

// ConditionalExpression is `test ? consequent : alternate`.
type ConditionalExpression struct {
	node
	expr
	Test       Expression `json:"test"`
	Consequent Expression `json:"consequent"`
	Alternate  Expression `json:"alternate"`
}

// CallExpression is a call, including `super(...)`.
type CallExpression struct {
	node
	expr
	Callee    ExpressionSuper           `json:"callee"`
	Arguments []SpreadElementExpression `json:"arguments"`
}

// NewExpression is `new callee(arguments)`.
type NewExpression struct {
	node
	expr
	Callee    Expression                `json:"callee"`
	Arguments []SpreadElementExpression `json:"arguments"`
}

// StaticMemberExpression is `object.property`.
type StaticMemberExpression struct {
	node
	expr
	Object   ExpressionSuper `json:"object"`
	Property string          `json:"property"`
}

// ComputedMemberExpression is `object[expression]`.
type ComputedMemberExpression struct {
	node
	expr
	Object     ExpressionSuper `json:"object"`
	Expression Expression      `json:"expression"`
}

// YieldExpression is `yield` with an optional operand.
type YieldExpression struct {
	node
	expr
	Expression Expression `json:"expression"`
}

// YieldGeneratorExpression is `yield* expression`.
type YieldGeneratorExpression struct {
	node
	expr
	Expression Expression `json:"expression"`
}

// AwaitExpression is `await expression`.
type AwaitExpression struct {
	node
	expr
	Expression Expression `json:"expression"`
}

// -- Statements

// Block is a brace-delimited statement list.
type Block struct {
	node
	Statements []Statement `json:"statements"`
}

// BlockStatement wraps a Block in statement position.
type BlockStatement struct {
	node
	stmt
	Block *Block `json:"block"`
}

// BreakStatement is `break` with an optional label.
type BreakStatement struct {
	node
	stmt
	Label string `json:"label,omitempty"`
}

// ContinueStatement is `continue` with an optional label.
type ContinueStatement struct {
	node
	stmt
	Label string `json:"label,omitempty"`
}

// DebuggerStatement is `debugger`.
type DebuggerStatement struct {
	node
	stmt
}

// EmptyStatement is a lone `;`.
type EmptyStatement struct {
	node
	stmt
}

// ExpressionStatement is an expression in statement position.
type ExpressionStatement struct {
	node
	stmt
	Expression Expression `json:"expression"`
}

// IfStatement is an if statement. Alternate is nil without an else branch.
type IfStatement struct {
	node
	stmt
	Test       Expression `json:"test"`
	Consequent Statement  `json:"consequent"`
	Alternate  Statement  `json:"alternate"`
}

// LabeledStatement is `label: body`.
type LabeledStatement struct {
	node
	stmt
	Label string    `json:"label"`
	Body  Statement `json:"body"`
}

// ReturnStatement is `return` with an optional expression.
type ReturnStatement struct {
	node
	stmt
	Expression Expression `json:"expression"`
}

// ThrowStatement is `throw expression`.
type ThrowStatement struct {
	node
	stmt
	Expression Expression `json:"expression"`
}

// TryCatchStatement is try/catch without a finally block.
type TryCatchStatement struct {
	node
	stmt
	Body        *Block       `json:"body"`
	CatchClause *CatchClause `json:"catchClause"`
}

// TryFinallyStatement is try/finally with an optional catch clause.
type TryFinallyStatement struct {
	node
	stmt
	Body        *Block       `json:"body"`
	CatchClause *CatchClause `json:"catchClause"`
	Finalizer   *Block       `json:"finalizer"`
}

// CatchClause is the catch part of a try statement.
type CatchClause struct {
	node
	Binding Binding `json:"binding"`
	Body    *Block  `json:"body"`
}

// SwitchStatement is a switch without a default clause.
type SwitchStatement struct {
	node
	stmt
	Discriminant Expression    `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

// SwitchStatementWithDefault is a switch with a default clause.
type SwitchStatementWithDefault struct {
	node
	stmt
	Discriminant     Expression     `json:"discriminant"`
	PreDefaultCases  []*SwitchCase  `json:"preDefaultCases"`
	DefaultCase      *SwitchDefault `json:"defaultCase"`
	PostDefaultCases []*SwitchCase  `json:"postDefaultCases"`
}

// SwitchCase is a `case test:` clause.
type SwitchCase struct {
	node
	Test       Expression  `json:"test"`
	Consequent []Statement `json:"consequent"`
}

// SwitchDefault is the `default:` clause.
type SwitchDefault struct {
	node
	Consequent []Statement `json:"consequent"`
}

// VariableDeclarationStatement is a var, let or const statement.
type VariableDeclarationStatement struct {
	node
	stmt
	Declaration *VariableDeclaration `json:"declaration"`
}

// VariableDeclaration is a declaration list. Kind is "var", "let" or "const".
type VariableDeclaration struct {
	node
	Kind        string                `json:"kind"`
	Declarators []*VariableDeclarator `json:"declarators"`
}

// VariableDeclarator is one binding of a declaration with an optional initializer.
type VariableDeclarator struct {
	node
	Binding Binding    `json:"binding"`
	Init    Expression `json:"init"`
}

// WithStatement is `with (object) body`.
type WithStatement struct {
	node
	stmt
	Object Expression `json:"object"`
	Body   Statement  `json:"body"`
}

// -- Iteration statements

// DoWhileStatement is `do body while (test)`.
type DoWhileStatement struct {
	node
	stmt
	Body Statement  `json:"body"`
	Test Expression `json:"test"`
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	node
	stmt
	Test Expression `json:"test"`
	Body Statement  `json:"body"`
}

// ForStatement is a C-style for loop. Init is nil, a *VariableDeclaration or an Expression.
type ForStatement struct {
	node
	stmt
	Init   Node       `json:"init"`
	Test   Expression `json:"test"`
	Update Expression `json:"update"`
	Body   Statement  `json:"body"`
}

// ForInStatement is `for (left in right) body`. Left is a *VariableDeclaration or an AssignmentTarget.
type ForInStatement struct {
	node
	stmt
	Left  Node       `json:"left"`
	Right Expression `json:"right"`
	Body  Statement  `json:"body"`
}

// ForOfStatement is `for (left of right) body`. Left is a *VariableDeclaration or an AssignmentTarget.
type ForOfStatement struct {
	node
	stmt
	Left  Node       `json:"left"`
	Right Expression `json:"right"`
	Body  Statement  `json:"body"`
}

// -- Modules

// Import is `import a, {b as c} from "m"`. DefaultBinding may be nil.
type Import struct {
	node
	moduleItem
	DefaultBinding  *BindingIdentifier `json:"defaultBinding"`
	NamedImports    []*ImportSpecifier `json:"namedImports"`
	ModuleSpecifier string             `json:"moduleSpecifier"`
}

// ImportNamespace is `import a, * as ns from "m"`. DefaultBinding may be nil.
type ImportNamespace struct {
	node
	moduleItem
	DefaultBinding   *BindingIdentifier `json:"defaultBinding"`
	NamespaceBinding *BindingIdentifier `json:"namespaceBinding"`
	ModuleSpecifier  string             `json:"moduleSpecifier"`
}

// ImportSpecifier is `name as binding`. Name is empty when the binding is not renamed.
type ImportSpecifier struct {
	node
	Name    string             `json:"name,omitempty"`
	Binding *BindingIdentifier `json:"binding"`
}

// ExportAllFrom is `export * from "m"`.
type ExportAllFrom struct {
	node
	moduleItem
	ModuleSpecifier string `json:"moduleSpecifier"`
}

// ExportFrom is `export {a as b} from "m"`.
type ExportFrom struct {
	node
	moduleItem
	NamedExports    []*ExportFromSpecifier `json:"namedExports"`
	ModuleSpecifier string                 `json:"moduleSpecifier"`
}

// ExportFromSpecifier is a specifier of an ExportFrom. ExportedName is empty when not renamed.
type ExportFromSpecifier struct {
	node
	Name         string `json:"name"`
	ExportedName string `json:"exportedName,omitempty"`
}

// ExportLocals is `export {a as b}`.
type ExportLocals struct {
	node
	moduleItem
	NamedExports []*ExportLocalSpecifier `json:"namedExports"`
}

// ExportLocalSpecifier is a specifier of an ExportLocals. ExportedName is empty when not renamed.
type ExportLocalSpecifier struct {
	node
	Name         *IdentifierExpression `json:"name"`
	ExportedName string                `json:"exportedName,omitempty"`
}

// Export exports a declaration. Declaration is a *FunctionDeclaration,
// *ClassDeclaration or *VariableDeclaration.
type Export struct {
	node
	moduleItem
	Declaration Node `json:"declaration"`
}

// ExportDefault is `export default`. Body is a *FunctionDeclaration,
// *ClassDeclaration or an Expression.
type ExportDefault struct {
	node
	moduleItem
	Body Node `json:"body"`
}
