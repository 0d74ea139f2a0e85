package earlyerrors

import (
	"strings"
)

const (
	msgSuperCall                   = `Calls to super must be in the "constructor" method of a class expression or class declaration that has a superclass`
	msgSuperProperty               = "Member access on super must be in a method"
	msgDuplicateBinding            = "Duplicate binding %s"
	msgFreeContinue                = "Continue statement must be nested within an iteration statement"
	msgUnboundContinue             = "Continue statement must be nested within an iteration statement with label %s"
	msgFreeBreak                   = "Break statement must be nested within an iteration statement or a switch statement"
	msgUnboundBreak                = "Break statement must be nested within a statement with label %s"
	msgDuplicateConstructor        = "Duplicate constructor method in class"
	msgBindingIdentifierStrict     = "The identifier %s must not be in binding position in strict mode"
	msgIdentifierExpressionStrict  = "The identifier %s must not be in expression position in strict mode"
	msgConstructorSpecial          = "Constructors cannot be async, generators, getters or setters"
	msgPrototypeMethod             = `Static class methods cannot be named "prototype"`
	msgDoWhileLabeledFunction      = "The body of a do-while statement must not be a labeled function declaration"
	msgForInLabeledFunction        = "The body of a for-in statement must not be a labeled function declaration"
	msgForOfLabeledFunction        = "The body of a for-of statement must not be a labeled function declaration"
	msgForLabeledFunction          = "The body of a for statement must not be a labeled function declaration"
	msgWhileLabeledFunction        = "The body of a while statement must not be a labeled function declaration"
	msgWithLabeledFunction         = "The body of a with statement must not be a labeled function declaration"
	msgConstWithoutInit            = "Constant lexical declarations must have an initialiser"
	msgConsequentLabeledFunction   = "The consequent of an if statement must not be a labeled function declaration"
	msgAlternateLabeledFunction    = "The alternate of an if statement must not be a labeled function declaration"
	msgIfFunctionDeclarationStrict = "FunctionDeclarations in IfStatements are disallowed in strict mode"
	msgYieldLabel                  = `The identifier "yield" must not be in label position in strict mode`
	msgDuplicateLabel              = "Label %s has already been declared"
	msgFunctionLabelStrict         = "Labeled FunctionDeclarations are disallowed in strict mode"
	msgDuplicateExport             = "Duplicate export %s"
	msgUndeclaredExport            = "Exported binding %s is not declared"
	msgNewTargetTop                = "new.target must be within function (but not arrow expression) code"
	msgDuplicateProto              = "Duplicate __proto__ property in object literal not allowed"
	msgDeleteIdentifierStrict      = "Identifier expressions must not be deleted in strict mode"
	msgLexicalLetBinding           = `Lexical declarations must not have a binding named "let"`
	msgWithStrict                  = "Strict mode code must not include a with statement"
	msgYieldInArrowBody            = "Concise arrow bodies must not contain yield expressions"
	msgYieldInArrowParams          = "Arrow parameters must not contain yield expressions"
	msgYieldInGeneratorParams      = "Generator parameters must not contain yield expressions"
	msgComplexParamsWithUseStrict  = `Functions with non-simple parameter lists may not contain a "use strict" directive`
	msgAwaitInArrowParams          = "Arrow parameters must not contain await expressions"
	msgAwaitInAsyncParams          = "Async function parameters must not contain await expressions"
)

// quote renders name as a string literal for a message, using whichever quote
// character needs fewer escapes.
func quote(name string) string {
	delim := byte('"')
	if strings.Count(name, `"`) > strings.Count(name, `'`) {
		delim = '\''
	}

	var b strings.Builder
	b.WriteByte(delim)
	for _, r := range name {
		switch {
		case r == rune(delim) || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\v':
			b.WriteString(`\v`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\u2028':
			b.WriteString(`\u2028`)
		case r == '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(delim)
	return b.String()
}
