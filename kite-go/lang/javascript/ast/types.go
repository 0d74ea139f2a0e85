package ast

// Node types.
const (
	ScriptType                             Type = "Script"
	ModuleType                             Type = "Module"
	DirectiveType                          Type = "Directive"
	FunctionBodyType                       Type = "FunctionBody"
	FormalParametersType                   Type = "FormalParameters"
	BindingIdentifierType                  Type = "BindingIdentifier"
	ArrayBindingType                       Type = "ArrayBinding"
	ObjectBindingType                      Type = "ObjectBinding"
	BindingWithDefaultType                 Type = "BindingWithDefault"
	BindingPropertyIdentifierType          Type = "BindingPropertyIdentifier"
	BindingPropertyPropertyType            Type = "BindingPropertyProperty"
	AssignmentTargetIdentifierType         Type = "AssignmentTargetIdentifier"
	StaticMemberAssignmentTargetType       Type = "StaticMemberAssignmentTarget"
	ComputedMemberAssignmentTargetType     Type = "ComputedMemberAssignmentTarget"
	ArrayAssignmentTargetType              Type = "ArrayAssignmentTarget"
	ObjectAssignmentTargetType             Type = "ObjectAssignmentTarget"
	AssignmentTargetWithDefaultType        Type = "AssignmentTargetWithDefault"
	AssignmentTargetPropertyIdentifierType Type = "AssignmentTargetPropertyIdentifier"
	AssignmentTargetPropertyPropertyType   Type = "AssignmentTargetPropertyProperty"
	ClassDeclarationType                   Type = "ClassDeclaration"
	ClassExpressionType                    Type = "ClassExpression"
	ClassElementType                       Type = "ClassElement"
	FunctionDeclarationType                Type = "FunctionDeclaration"
	FunctionExpressionType                 Type = "FunctionExpression"
	ArrowExpressionType                    Type = "ArrowExpression"
	MethodType                             Type = "Method"
	GetterType                             Type = "Getter"
	SetterType                             Type = "Setter"
	DataPropertyType                       Type = "DataProperty"
	ShorthandPropertyType                  Type = "ShorthandProperty"
	StaticPropertyNameType                 Type = "StaticPropertyName"
	ComputedPropertyNameType               Type = "ComputedPropertyName"
	IdentifierExpressionType               Type = "IdentifierExpression"
	ThisExpressionType                     Type = "ThisExpression"
	SuperType                              Type = "Super"
	NewTargetExpressionType                Type = "NewTargetExpression"
	LiteralBooleanExpressionType           Type = "LiteralBooleanExpression"
	LiteralNullExpressionType              Type = "LiteralNullExpression"
	LiteralNumericExpressionType           Type = "LiteralNumericExpression"
	LiteralInfinityExpressionType          Type = "LiteralInfinityExpression"
	LiteralStringExpressionType            Type = "LiteralStringExpression"
	LiteralRegExpExpressionType            Type = "LiteralRegExpExpression"
	ArrayExpressionType                    Type = "ArrayExpression"
	ObjectExpressionType                   Type = "ObjectExpression"
	SpreadElementType                      Type = "SpreadElement"
	TemplateElementType                    Type = "TemplateElement"
	TemplateExpressionType                 Type = "TemplateExpression"
	AssignmentExpressionType               Type = "AssignmentExpression"
	CompoundAssignmentExpressionType       Type = "CompoundAssignmentExpression"
	BinaryExpressionType                   Type = "BinaryExpression"
	UnaryExpressionType                    Type = "UnaryExpression"
	UpdateExpressionType                   Type = "UpdateExpression"
	ConditionalExpressionType              Type = "ConditionalExpression"
	CallExpressionType                     Type = "CallExpression"
	NewExpressionType                      Type = "NewExpression"
	StaticMemberExpressionType             Type = "StaticMemberExpression"
	ComputedMemberExpressionType           Type = "ComputedMemberExpression"
	YieldExpressionType                    Type = "YieldExpression"
	YieldGeneratorExpressionType           Type = "YieldGeneratorExpression"
	AwaitExpressionType                    Type = "AwaitExpression"
	BlockType                              Type = "Block"
	BlockStatementType                     Type = "BlockStatement"
	BreakStatementType                     Type = "BreakStatement"
	ContinueStatementType                  Type = "ContinueStatement"
	DebuggerStatementType                  Type = "DebuggerStatement"
	EmptyStatementType                     Type = "EmptyStatement"
	ExpressionStatementType                Type = "ExpressionStatement"
	IfStatementType                        Type = "IfStatement"
	LabeledStatementType                   Type = "LabeledStatement"
	ReturnStatementType                    Type = "ReturnStatement"
	ThrowStatementType                     Type = "ThrowStatement"
	TryCatchStatementType                  Type = "TryCatchStatement"
	TryFinallyStatementType                Type = "TryFinallyStatement"
	CatchClauseType                        Type = "CatchClause"
	SwitchStatementType                    Type = "SwitchStatement"
	SwitchStatementWithDefaultType         Type = "SwitchStatementWithDefault"
	SwitchCaseType                         Type = "SwitchCase"
	SwitchDefaultType                      Type = "SwitchDefault"
	VariableDeclarationStatementType       Type = "VariableDeclarationStatement"
	VariableDeclarationType                Type = "VariableDeclaration"
	VariableDeclaratorType                 Type = "VariableDeclarator"
	WithStatementType                      Type = "WithStatement"
	DoWhileStatementType                   Type = "DoWhileStatement"
	WhileStatementType                     Type = "WhileStatement"
	ForStatementType                       Type = "ForStatement"
	ForInStatementType                     Type = "ForInStatement"
	ForOfStatementType                     Type = "ForOfStatement"
	ImportType                             Type = "Import"
	ImportNamespaceType                    Type = "ImportNamespace"
	ImportSpecifierType                    Type = "ImportSpecifier"
	ExportAllFromType                      Type = "ExportAllFrom"
	ExportFromType                         Type = "ExportFrom"
	ExportFromSpecifierType                Type = "ExportFromSpecifier"
	ExportLocalsType                       Type = "ExportLocals"
	ExportLocalSpecifierType               Type = "ExportLocalSpecifier"
	ExportType                             Type = "Export"
	ExportDefaultType                      Type = "ExportDefault"
)

// Type implements Node.
func (*Script) Type() Type { return ScriptType }

// Type implements Node.
func (*Module) Type() Type { return ModuleType }

// Type implements Node.
func (*Directive) Type() Type { return DirectiveType }

// Type implements Node.
func (*FunctionBody) Type() Type { return FunctionBodyType }

// Type implements Node.
func (*FormalParameters) Type() Type { return FormalParametersType }

// Type implements Node.
func (*BindingIdentifier) Type() Type { return BindingIdentifierType }

// Type implements Node.
func (*ArrayBinding) Type() Type { return ArrayBindingType }

// Type implements Node.
func (*ObjectBinding) Type() Type { return ObjectBindingType }

// Type implements Node.
func (*BindingWithDefault) Type() Type { return BindingWithDefaultType }

// Type implements Node.
func (*BindingPropertyIdentifier) Type() Type { return BindingPropertyIdentifierType }

// Type implements Node.
func (*BindingPropertyProperty) Type() Type { return BindingPropertyPropertyType }

// Type implements Node.
func (*AssignmentTargetIdentifier) Type() Type { return AssignmentTargetIdentifierType }

// Type implements Node.
func (*StaticMemberAssignmentTarget) Type() Type { return StaticMemberAssignmentTargetType }

// Type implements Node.
func (*ComputedMemberAssignmentTarget) Type() Type { return ComputedMemberAssignmentTargetType }

// Type implements Node.
func (*ArrayAssignmentTarget) Type() Type { return ArrayAssignmentTargetType }

// Type implements Node.
func (*ObjectAssignmentTarget) Type() Type { return ObjectAssignmentTargetType }

// Type implements Node.
func (*AssignmentTargetWithDefault) Type() Type { return AssignmentTargetWithDefaultType }

// Type implements Node.
func (*AssignmentTargetPropertyIdentifier) Type() Type { return AssignmentTargetPropertyIdentifierType }

// Type implements Node.
func (*AssignmentTargetPropertyProperty) Type() Type { return AssignmentTargetPropertyPropertyType }

// Type implements Node.
func (*ClassDeclaration) Type() Type { return ClassDeclarationType }

// Type implements Node.
func (*ClassExpression) Type() Type { return ClassExpressionType }

// Type implements Node.
func (*ClassElement) Type() Type { return ClassElementType }

// Type implements Node.
func (*FunctionDeclaration) Type() Type { return FunctionDeclarationType }

// Type implements Node.
func (*FunctionExpression) Type() Type { return FunctionExpressionType }

// Type implements Node.
func (*ArrowExpression) Type() Type { return ArrowExpressionType }

// Type implements Node.
func (*Method) Type() Type { return MethodType }

// Type implements Node.
func (*Getter) Type() Type { return GetterType }

// Type implements Node.
func (*Setter) Type() Type { return SetterType }

// Type implements Node.
func (*DataProperty) Type() Type { return DataPropertyType }

// Type implements Node.
func (*ShorthandProperty) Type() Type { return ShorthandPropertyType }

// Type implements Node.
func (*StaticPropertyName) Type() Type { return StaticPropertyNameType }

// Type implements Node.
func (*ComputedPropertyName) Type() Type { return ComputedPropertyNameType }

// Type implements Node.
func (*IdentifierExpression) Type() Type { return IdentifierExpressionType }

// Type implements Node.
func (*ThisExpression) Type() Type { return ThisExpressionType }

// Type implements Node.
func (*Super) Type() Type { return SuperType }

// Type implements Node.
func (*NewTargetExpression) Type() Type { return NewTargetExpressionType }

// Type implements Node.
func (*LiteralBooleanExpression) Type() Type { return LiteralBooleanExpressionType }

// Type implements Node.
func (*LiteralNullExpression) Type() Type { return LiteralNullExpressionType }

// Type implements Node.
func (*LiteralNumericExpression) Type() Type { return LiteralNumericExpressionType }

// Type implements Node.
func (*LiteralInfinityExpression) Type() Type { return LiteralInfinityExpressionType }

// Type implements Node.
func (*LiteralStringExpression) Type() Type { return LiteralStringExpressionType }

// Type implements Node.
func (*LiteralRegExpExpression) Type() Type { return LiteralRegExpExpressionType }

// Type implements Node.
func (*ArrayExpression) Type() Type { return ArrayExpressionType }

// Type implements Node.
func (*ObjectExpression) Type() Type { return ObjectExpressionType }

// Type implements Node.
func (*SpreadElement) Type() Type { return SpreadElementType }

// Type implements Node.
func (*TemplateElement) Type() Type { return TemplateElementType }

// Type implements Node.
func (*TemplateExpression) Type() Type { return TemplateExpressionType }

// Type implements Node.
func (*AssignmentExpression) Type() Type { return AssignmentExpressionType }

// Type implements Node.
func (*CompoundAssignmentExpression) Type() Type { return CompoundAssignmentExpressionType }

// Type implements Node.
func (*BinaryExpression) Type() Type { return BinaryExpressionType }

// Type implements Node.
func (*UnaryExpression) Type() Type { return UnaryExpressionType }

// Type implements Node.
func (*UpdateExpression) Type() Type { return UpdateExpressionType }

// Type implements Node.
func (*ConditionalExpression) Type() Type { return ConditionalExpressionType }

// Type implements Node.
func (*CallExpression) Type() Type { return CallExpressionType }

// Type implements Node.
func (*NewExpression) Type() Type { return NewExpressionType }

// Type implements Node.
func (*StaticMemberExpression) Type() Type { return StaticMemberExpressionType }

// Type implements Node.
func (*ComputedMemberExpression) Type() Type { return ComputedMemberExpressionType }

// Type implements Node.
func (*YieldExpression) Type() Type { return YieldExpressionType }

// Type implements Node.
func (*YieldGeneratorExpression) Type() Type { return YieldGeneratorExpressionType }

// Type implements Node.
func (*AwaitExpression) Type() Type { return AwaitExpressionType }

// Type implements Node.
func (*Block) Type() Type { return BlockType }

// Type implements Node.
func (*BlockStatement) Type() Type { return BlockStatementType }

// Type implements Node.
func (*BreakStatement) Type() Type { return BreakStatementType }

// Type implements Node.
func (*ContinueStatement) Type() Type { return ContinueStatementType }

// Type implements Node.
func (*DebuggerStatement) Type() Type { return DebuggerStatementType }

// Type implements Node.
func (*EmptyStatement) Type() Type { return EmptyStatementType }

// Type implements Node.
func (*ExpressionStatement) Type() Type { return ExpressionStatementType }

// Type implements Node.
func (*IfStatement) Type() Type { return IfStatementType }

// Type implements Node.
func (*LabeledStatement) Type() Type { return LabeledStatementType }

// Type implements Node.
func (*ReturnStatement) Type() Type { return ReturnStatementType }

// Type implements Node.
func (*ThrowStatement) Type() Type { return ThrowStatementType }

// Type implements Node.
func (*TryCatchStatement) Type() Type { return TryCatchStatementType }

// Type implements Node.
func (*TryFinallyStatement) Type() Type { return TryFinallyStatementType }

// Type implements Node.
func (*CatchClause) Type() Type { return CatchClauseType }

// Type implements Node.
func (*SwitchStatement) Type() Type { return SwitchStatementType }

// Type implements Node.
func (*SwitchStatementWithDefault) Type() Type { return SwitchStatementWithDefaultType }

// Type implements Node.
func (*SwitchCase) Type() Type { return SwitchCaseType }

// Type implements Node.
func (*SwitchDefault) Type() Type { return SwitchDefaultType }

// Type implements Node.
func (*VariableDeclarationStatement) Type() Type { return VariableDeclarationStatementType }

// Type implements Node.
func (*VariableDeclaration) Type() Type { return VariableDeclarationType }

// Type implements Node.
func (*VariableDeclarator) Type() Type { return VariableDeclaratorType }

// Type implements Node.
func (*WithStatement) Type() Type { return WithStatementType }

// Type implements Node.
func (*DoWhileStatement) Type() Type { return DoWhileStatementType }

// Type implements Node.
func (*WhileStatement) Type() Type { return WhileStatementType }

// Type implements Node.
func (*ForStatement) Type() Type { return ForStatementType }

// Type implements Node.
func (*ForInStatement) Type() Type { return ForInStatementType }

// Type implements Node.
func (*ForOfStatement) Type() Type { return ForOfStatementType }

// Type implements Node.
func (*Import) Type() Type { return ImportType }

// Type implements Node.
func (*ImportNamespace) Type() Type { return ImportNamespaceType }

// Type implements Node.
func (*ImportSpecifier) Type() Type { return ImportSpecifierType }

// Type implements Node.
func (*ExportAllFrom) Type() Type { return ExportAllFromType }

// Type implements Node.
func (*ExportFrom) Type() Type { return ExportFromType }

// Type implements Node.
func (*ExportFromSpecifier) Type() Type { return ExportFromSpecifierType }

// Type implements Node.
func (*ExportLocals) Type() Type { return ExportLocalsType }

// Type implements Node.
func (*ExportLocalSpecifier) Type() Type { return ExportLocalSpecifierType }

// Type implements Node.
func (*Export) Type() Type { return ExportType }

// Type implements Node.
func (*ExportDefault) Type() Type { return ExportDefaultType }
