package parser

import "github.com/kiteco/esparse/kite-go/lang/javascript/scanner"

// Messages of the fatal errors raised while parsing. Messages shared with the
// scanner are defined there.
const (
	msgUnexpectedToken          = scanner.MsgUnexpectedToken
	msgInvalidTokenContext      = `"%s" may not be used as an identifier in this context`
	msgNewlineAfterThrow        = "Illegal newline after throw"
	msgNewlineAfterArrowParams  = "Illegal newline after arrow parameters"
	msgInvalidLHSInAssignment   = "Invalid left-hand side in assignment"
	msgInvalidLHSInForIn        = "Invalid left-hand side in for-in"
	msgInvalidLHSInForOf        = "Invalid left-hand side in for-of"
	msgMultipleDefaultsInSwitch = "More than one default clause in switch statement"
	msgNoCatchOrFinally         = "Missing catch or finally after try"
	msgIllegalReturn            = "Illegal return statement"
	msgIllegalArrowParams       = "Illegal arrow function parameter list"
	msgInvalidVarInitForIn      = "Invalid variable declaration in for-in statement"
	msgInvalidVarInitForOf      = "Invalid variable declaration in for-of statement"
	msgIllegalProperty          = "Illegal property initializer"
	msgUnexpectedArrow          = "Arrows may not appear in this position"
	msgUninitializedPatternInit = "Binding pattern appears without initializer in for statement init"
	msgNoAwaitInAsyncParams     = `Async arrow parameters may not contain "await"`
	msgUnexpectedObjectBinding  = "Unexpected ObjectBinding in place of Expression"
	msgInvalidRest              = "Invalid rest"
	msgStrictOctalEscape        = `Unexpected legacy octal escape sequence: \`
	msgStrictNoctal             = "Unexpected noctal integer literal"
	msgStrictOctalLiteral       = "Unexpected legacy octal integer literal"
	msgInvalidUpdateTarget      = "Increment/decrement target must be an identifier or member expression"
	msgOnlyMethodsInClasses     = "Only methods are allowed in classes"
	msgMaxDepth                 = "Maximum nesting depth exceeded"
)
