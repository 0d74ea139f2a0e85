package earlyerrors

import (
	"testing"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/parser"
	"github.com/kiteco/esparse/kite-golib/errors"
	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type earlyErrorCase struct {
	src      string
	messages []string
}

func validateScript(t *testing.T, src string) []*EarlyError {
	script, err := parser.ParseScript(kitectx.Background(), []byte(src), parser.Options{Locations: true})
	require.NoError(t, err, src)
	return Validate(script)
}

func validateModule(t *testing.T, src string) []*EarlyError {
	mod, err := parser.ParseModule(kitectx.Background(), []byte(src), parser.Options{Locations: true})
	require.NoError(t, err, src)
	return Validate(mod)
}

func messages(errs []*EarlyError) []string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

func assertCases(t *testing.T, validate func(*testing.T, string) []*EarlyError, cases []earlyErrorCase) {
	for _, c := range cases {
		assert.Equal(t, c.messages, messages(validate(t, c.src)), c.src)
	}
}

func TestValidate_Declarations(t *testing.T) {
	assertCases(t, validateScript, []earlyErrorCase{
		{`{ let x; let x; }`, []string{`Duplicate binding "x"`}},
		{`{ let x; var x; }`, []string{`Duplicate binding "x"`}},
		{`let x; { let x; }`, nil},
		{`var x; var x;`, nil},
		{`const a = 1;`, nil},
		{`const a;`, []string{msgConstWithoutInit}},
		{`for (const a;;) {}`, []string{msgConstWithoutInit}},
		{`for (const a of b) {}`, nil},
		{`try {} catch (e) { let e; }`, []string{`Duplicate binding "e"`}},
		{`try {} catch (e) { var e; }`, nil},
		{`try {} catch (e) { for (var e of []); }`, []string{`Duplicate binding "e"`}},
		{`function f(a, a) {}`, nil},
		{`function f(a, [a]) {}`, []string{`Duplicate binding "a"`}},
		{`"use strict"; function f(a, a) {}`, []string{`Duplicate binding "a"`}},
		{`switch (a) { case 1: let b; default: let b; }`, []string{`Duplicate binding "b"`}},
	})
}

func TestValidate_DuplicateBindingLocation(t *testing.T) {
	errs := validateScript(t, `{ let x; let x; }`)
	require.Len(t, errs, 1)
	assert.Equal(t, 13, errs[0].Node.Span().Start.Offset)
	assert.Equal(t, `1:13: Duplicate binding "x"`, errs[0].Error())
}

func TestValidate_CatchParamForOfLocations(t *testing.T) {
	errs := validateScript(t, `try {} catch (e) { for (var e of []); for (var e of []); }`)
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, `Duplicate binding "e"`, e.Message)
		assert.IsType(t, &ast.BindingIdentifier{}, e.Node)
	}
	assert.Equal(t, 28, errs[0].Node.Span().Start.Offset)
	assert.Equal(t, 47, errs[1].Node.Span().Start.Offset)
}

func TestValidate_SuperCallLocation(t *testing.T) {
	errs := validateScript(t, `function f() { super(); }`)
	require.Len(t, errs, 1)
	assert.Equal(t, msgSuperCall, errs[0].Message)
	require.IsType(t, &ast.Super{}, errs[0].Node)
	assert.Equal(t, ast.Span{
		Start: ast.Location{Line: 1, Column: 15, Offset: 15},
		End:   ast.Location{Line: 1, Column: 20, Offset: 20},
	}, errs[0].Node.Span())
}

func TestValidate_AnonymousDefaultLocation(t *testing.T) {
	errs := validateModule(t, "export default function () {}\nexport default class {}")

	var dup *EarlyError
	for _, e := range errs {
		if e.Message == `Duplicate binding "*default*"` {
			dup = e
		}
	}
	require.NotNil(t, dup, "%v", messages(errs))
	assert.Equal(t, ast.Location{Line: 2, Column: 0, Offset: 30}, dup.Node.Span().Start)
	assert.Equal(t, `2:0: Duplicate binding "*default*"`, dup.Error())
}

func TestValidate_BreakContinue(t *testing.T) {
	assertCases(t, validateScript, []earlyErrorCase{
		{`while (true) { break; }`, nil},
		{`break;`, []string{msgFreeBreak}},
		{`continue;`, []string{msgFreeContinue}},
		{`switch (a) { case 1: break; }`, nil},
		{`switch (a) { case 1: continue; }`, []string{msgFreeContinue}},
		{`a: while (true) { continue a; }`, nil},
		{`a: { break a; }`, nil},
		{`a: { continue a; }`, []string{`Continue statement must be nested within an iteration statement with label "a"`}},
		{`while (true) { break b; }`, []string{`Break statement must be nested within a statement with label "b"`}},
		{`a: a: ;`, []string{`Label "a" has already been declared`}},
		{`a: ; a: ;`, nil},
		{`while (true) { (function () { break; }); }`, []string{msgFreeBreak}},
	})
}

func TestValidate_Classes(t *testing.T) {
	assertCases(t, validateScript, []earlyErrorCase{
		{`class A { constructor() {} constructor() {} }`, []string{msgDuplicateConstructor}},
		{`class A { constructor() {} static constructor() {} }`, nil},
		{`class A { get constructor() {} }`, []string{msgConstructorSpecial}},
		{`class A { *constructor() {} }`, []string{msgConstructorSpecial}},
		{`class A { static prototype() {} }`, []string{msgPrototypeMethod}},
		{`class A { prototype() {} }`, nil},
		{`class A extends B { constructor() { super(); } }`, nil},
		{`class A { constructor() { super(); } }`, []string{msgSuperCall}},
		{`class A extends B { m() { super(); } }`, []string{msgSuperCall}},
		{`class A { m() { return super.x; } }`, nil},
		{`function f() { super(); }`, []string{msgSuperCall}},
		{`super.x;`, []string{msgSuperProperty}},
		{`({ m() { return super.x; } });`, nil},
		{`class eval {}`, []string{`The identifier "eval" must not be in binding position in strict mode`}},
	})
}

func TestValidate_Functions(t *testing.T) {
	assertCases(t, validateScript, []earlyErrorCase{
		{`function* g() { yield 1; }`, nil},
		{`function* g() { (x = yield) => x; }`, []string{msgYieldInArrowParams}},
		{`function f(a = 1) { "use strict"; }`, []string{msgComplexParamsWithUseStrict}},
		{`function f(a) { "use strict"; }`, nil},
		{`(a = 1) => { "use strict"; };`, []string{msgComplexParamsWithUseStrict}},
		{`new.target;`, []string{msgNewTargetTop}},
		{`function f() { return new.target; }`, nil},
		{`() => new.target;`, []string{msgNewTargetTop}},
		{`function f() { "use strict"; var static; }`, []string{`The identifier "static" must not be in binding position in strict mode`}},
	})
}

func TestValidate_StrictMode(t *testing.T) {
	assertCases(t, validateScript, []earlyErrorCase{
		{`var eval = 1;`, nil},
		{`"use strict"; var eval = 1;`, []string{`The identifier "eval" must not be in binding position in strict mode`}},
		{`"use strict"; arguments = 1;`, []string{`The identifier "arguments" must not be in binding position in strict mode`}},
		{`with (a) {}`, nil},
		{`"use strict"; with (a) {}`, []string{msgWithStrict}},
		{`delete x;`, nil},
		{`"use strict"; delete x;`, []string{msgDeleteIdentifierStrict}},
		{`"use strict"; delete x.y;`, nil},
		{`"use strict"; implements;`, []string{`The identifier "implements" must not be in expression position in strict mode`}},
		{`if (a) function f() {}`, nil},
		{`"use strict"; if (a) function f() {}`, []string{msgIfFunctionDeclarationStrict}},
		{`a: function f() {}`, nil},
		{`"use strict"; a: function f() {}`, []string{msgFunctionLabelStrict}},
		{`while (a) b: function f() {}`, []string{msgWhileLabeledFunction}},
		{`if (a) b: function f() {}`, []string{msgConsequentLabeledFunction}},
	})
}

func TestValidate_ObjectLiterals(t *testing.T) {
	assertCases(t, validateScript, []earlyErrorCase{
		{`({ __proto__: 1, __proto__: 2 });`, []string{msgDuplicateProto}},
		{`({ __proto__: 1, "__proto__": 2 });`, []string{msgDuplicateProto}},
		{`({ __proto__: 1, ["__proto__"]: 2 });`, nil},
		{`({ __proto__: 1, __proto__() {} });`, nil},
	})
}

func TestValidate_Modules(t *testing.T) {
	assertCases(t, validateModule, []earlyErrorCase{
		{`export var a; export let b; export function c() {} export class D {}`, nil},
		{`export { x };`, []string{`Exported binding "x" is not declared`}},
		{`var a; export { a, a };`, []string{`Duplicate export "a"`}},
		{`var a; export { a, a as b };`, nil},
		{`export default 1; export default 2;`, []string{`Duplicate export "default"`}},
		{`export default function () {}`, nil},
		{`export { a as b } from "m";`, nil},
		{`import a from "m"; let a;`, []string{`Duplicate binding "a"`}},
		{`var eval;`, []string{`The identifier "eval" must not be in binding position in strict mode`}},
		{`function f() {} function f() {}`, []string{`Duplicate binding "f"`}},
	})
}

func TestAsError(t *testing.T) {
	assert.NoError(t, AsError(nil))

	errs := validateScript(t, `break; continue;`)
	require.Len(t, errs, 2)
	err := AsError(errs)
	require.Error(t, err)
	multi, ok := err.(errors.Errors)
	require.True(t, ok)
	assert.Equal(t, 2, multi.Len())
	assert.Equal(t, errs[0], multi.Slice()[0])
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"x"`, quote("x"))
	assert.Equal(t, `'a"b'`, quote(`a"b`))
	assert.Equal(t, `"a\nb"`, quote("a\nb"))
	assert.Equal(t, `"a\\b"`, quote(`a\b`))
	assert.Equal(t, `"\u2028"`, quote("\u2028"))
}

// -- state

var (
	nodeA = &ast.BindingIdentifier{Name: "a"}
	nodeB = &ast.BindingIdentifier{Name: "b"}
	brk   = &ast.BreakStatement{}
	nt    = &ast.NewTargetExpression{}
)

func stateA() *state {
	s := newState()
	s.bindName("a", nodeA)
	s.addError(newError(nodeA, msgFreeBreak))
	s.addFreeBreakStatement(brk)
	return s
}

func stateB() *state {
	s := newState()
	s.bindName("b", nodeB)
	s.bindName("a", nodeB)
	s.addStrictError(newError(nodeB, msgWithStrict))
	return s
}

func stateC() *state {
	s := newState()
	s.bindName("a", nodeA)
	s.observeNewTargetExpression(nt)
	s.observeLexicalDeclaration()
	return s
}

func TestState_Identity(t *testing.T) {
	assert.Equal(t, stateA(), concat(newState(), stateA()))
	assert.Equal(t, stateA(), concat(stateA(), newState()))
	assert.Equal(t, newState(), concat(newState(), newState()))
}

func TestState_Associativity(t *testing.T) {
	left := concat(concat(stateA(), stateB()), stateC())
	right := concat(stateA(), concat(stateB(), stateC()))
	assert.Equal(t, left, right)

	assert.Equal(t, []string{"a", "b"}, left.boundNames.keys)
	assert.Equal(t, []ast.Node{nodeA, nodeB}, left.boundNames.get("a"))
	assert.Equal(t, []ast.Node{nodeA}, left.lexicallyDeclaredNames.get("a"))
}

func TestState_Labels(t *testing.T) {
	s := newState()
	s.addFreeLabeledBreakStatement(&ast.BreakStatement{Label: "x"})
	s.addFreeLabeledContinueStatement(&ast.ContinueStatement{Label: "x"})

	s.observeNonIterationLabel(&ast.LabeledStatement{Label: "x"})
	assert.False(t, s.freeLabeledBreakStatements.has("x"))
	assert.True(t, s.freeLabeledContinueStatements.has("x"))

	s.observeIterationLabel(&ast.LabeledStatement{Label: "x"})
	assert.False(t, s.freeLabeledContinueStatements.has("x"))
	assert.Empty(t, s.freeLabeledContinueStatements.keys)
	assert.Len(t, s.usedLabelNames.get("x"), 2)
}

func TestState_StrictErrors(t *testing.T) {
	s := stateB()
	assert.Empty(t, s.errors)
	s.enforceStrictErrors()
	assert.Len(t, s.errors, 1)
	assert.Empty(t, s.strictErrors)
}
