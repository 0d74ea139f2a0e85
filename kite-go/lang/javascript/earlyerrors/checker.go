package earlyerrors

import (
	"time"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-go/lang/javascript/scanner"
)

// Validate returns the early errors of program in source order of discovery.
// Programs that violate none yield an empty result.
func Validate(program ast.Program) []*EarlyError {
	defer validateDuration.DeferRecord(time.Now())

	s := reduce(program)
	if len(s.errors) > 0 {
		invalidPrograms.Add(1)
		reported.Add(int64(len(s.errors)))
	}
	return s.errors
}

// reduce folds the states of n's children and applies the rules for n.
func reduce(n ast.Node) *state {
	if n == nil {
		return newState()
	}

	switch n := n.(type) {
	case *ast.Script:
		return reduceScript(n)
	case *ast.Module:
		return reduceModule(n)

	case *ast.ArrowExpression:
		return reduceArrowExpression(n)
	case *ast.FunctionDeclaration:
		s := reduceFunction(n, n.Name, n.Params, n.Body, n.IsGenerator, n.IsAsync)
		s.clearYieldExpressions()
		s.clearAwaitExpressions()
		s.observeFunctionDeclaration()
		return s
	case *ast.FunctionExpression:
		s := reduceFunction(n, n.Name, n.Params, n.Body, n.IsGenerator, n.IsAsync)
		s.clearBoundNames()
		s.clearYieldExpressions()
		s.clearAwaitExpressions()
		s.observeVarBoundary()
		return s
	case *ast.Method:
		return reduceMethod(n)
	case *ast.Getter:
		return reduceGetter(n)
	case *ast.Setter:
		return reduceSetter(n)
	case *ast.FunctionBody:
		return reduceFunctionBody(n)
	case *ast.FormalParameters:
		s := reduceChildren(n)
		s.observeLexicalDeclaration()
		return s

	case *ast.ClassDeclaration:
		s := reduceClass(n.Name, n.Super, n.Elements)
		s.observeLexicalDeclaration()
		return s
	case *ast.ClassExpression:
		s := reduceClass(n.Name, n.Super, n.Elements)
		s.clearBoundNames()
		return s
	case *ast.ClassElement:
		return reduceClassElement(n)

	case *ast.BindingIdentifier:
		s := newState()
		if scanner.IsRestrictedWord(n.Name) || scanner.IsStrictModeReservedWord(n.Name) {
			s.addStrictError(newError(n, msgBindingIdentifierStrict, quote(n.Name)))
		}
		s.bindName(n.Name, n)
		return s
	case *ast.AssignmentTargetIdentifier:
		s := newState()
		if scanner.IsRestrictedWord(n.Name) || scanner.IsStrictModeReservedWord(n.Name) {
			s.addStrictError(newError(n, msgBindingIdentifierStrict, quote(n.Name)))
		}
		return s
	case *ast.IdentifierExpression:
		s := newState()
		if scanner.IsStrictModeReservedWord(n.Name) {
			s.addStrictError(newError(n, msgIdentifierExpressionStrict, quote(n.Name)))
		}
		return s

	case *ast.AssignmentExpression, *ast.CompoundAssignmentExpression, *ast.UpdateExpression:
		s := reduceChildren(n)
		s.clearBoundNames()
		return s
	case *ast.AwaitExpression:
		s := reduceChildren(n)
		s.observeAwaitExpression(n)
		return s
	case *ast.YieldExpression, *ast.YieldGeneratorExpression:
		s := reduceChildren(n)
		s.observeYieldExpression(n)
		return s
	case *ast.CallExpression:
		s := reduceChildren(n)
		if sup, ok := n.Callee.(*ast.Super); ok {
			s.observeSuperCallExpression(sup)
		}
		return s
	case *ast.StaticMemberExpression:
		s := reduceChildren(n)
		if _, ok := n.Object.(*ast.Super); ok {
			s.observeSuperPropertyExpression(n)
		}
		return s
	case *ast.ComputedMemberExpression:
		s := reduceChildren(n)
		if _, ok := n.Object.(*ast.Super); ok {
			s.observeSuperPropertyExpression(n)
		}
		return s
	case *ast.StaticMemberAssignmentTarget:
		s := reduceChildren(n)
		if _, ok := n.Object.(*ast.Super); ok {
			s.observeSuperPropertyExpression(n)
		}
		return s
	case *ast.ComputedMemberAssignmentTarget:
		s := reduceChildren(n)
		if _, ok := n.Object.(*ast.Super); ok {
			s.observeSuperPropertyExpression(n)
		}
		return s
	case *ast.NewTargetExpression:
		s := newState()
		s.observeNewTargetExpression(n)
		return s
	case *ast.ObjectExpression:
		return reduceObjectExpression(n)
	case *ast.UnaryExpression:
		s := reduceChildren(n)
		if _, ok := n.Operand.(*ast.IdentifierExpression); ok && n.Operator == "delete" {
			s.addStrictError(newError(n, msgDeleteIdentifierStrict))
		}
		return s
	case *ast.LiteralRegExpExpression:
		// the pattern was validated while parsing
		return newState()

	case *ast.Block:
		s := reduceChildren(n)
		s.functionDeclarationNamesAreLexical()
		s.enforceDuplicateLexicallyDeclaredNames()
		s.enforceConflictingLexicallyDeclaredNames(s.varDeclaredNames)
		s.observeLexicalBoundary()
		return s
	case *ast.BreakStatement:
		s := newState()
		if n.Label == "" {
			s.addFreeBreakStatement(n)
		} else {
			s.addFreeLabeledBreakStatement(n)
		}
		return s
	case *ast.ContinueStatement:
		s := newState()
		if n.Label == "" {
			s.addFreeContinueStatement(n)
		} else {
			s.addFreeLabeledContinueStatement(n)
		}
		return s
	case *ast.CatchClause:
		return reduceCatchClause(n)
	case *ast.DoWhileStatement:
		s := reduceChildren(n)
		if isLabeledFunction(n.Body) {
			s.addError(newError(n.Body, msgDoWhileLabeledFunction))
		}
		s.clearFreeContinueStatements()
		s.clearFreeBreakStatements()
		return s
	case *ast.WhileStatement:
		s := reduceChildren(n)
		if isLabeledFunction(n.Body) {
			s.addError(newError(n.Body, msgWhileLabeledFunction))
		}
		s.clearFreeContinueStatements()
		s.clearFreeBreakStatements()
		return s
	case *ast.ForInStatement:
		return reduceForInOf(n.Left, n.Right, n.Body, false)
	case *ast.ForOfStatement:
		return reduceForInOf(n.Left, n.Right, n.Body, true)
	case *ast.ForStatement:
		return reduceForStatement(n)
	case *ast.IfStatement:
		return reduceIfStatement(n)
	case *ast.LabeledStatement:
		return reduceLabeledStatement(n)
	case *ast.SwitchStatement:
		disc := reduce(n.Discriminant)
		cases := newState()
		for _, c := range n.Cases {
			concat(cases, reduce(c))
		}
		return reduceSwitch(disc, cases)
	case *ast.SwitchStatementWithDefault:
		disc := reduce(n.Discriminant)
		cases := newState()
		for _, c := range n.PreDefaultCases {
			concat(cases, reduce(c))
		}
		concat(cases, reduce(n.DefaultCase))
		for _, c := range n.PostDefaultCases {
			concat(cases, reduce(c))
		}
		return reduceSwitch(disc, cases)
	case *ast.VariableDeclaration:
		s := reduceChildren(n)
		switch n.Kind {
		case "let", "const":
			s.observeLexicalDeclaration()
			for _, b := range s.lexicallyDeclaredNames.get("let") {
				s.addError(newError(b, msgLexicalLetBinding))
			}
		default:
			s.observeVarDeclaration()
		}
		return s
	case *ast.VariableDeclarationStatement:
		s := reduceChildren(n)
		if n.Declaration.Kind == "const" {
			for _, d := range n.Declaration.Declarators {
				if d.Init == nil {
					s.addError(newError(d, msgConstWithoutInit))
				}
			}
		}
		return s
	case *ast.WithStatement:
		s := reduceChildren(n)
		if isLabeledFunction(n.Body) {
			s.addError(newError(n.Body, msgWithLabeledFunction))
		}
		s.addStrictError(newError(n, msgWithStrict))
		return s

	case *ast.Import, *ast.ImportNamespace:
		s := reduceChildren(n)
		s.observeLexicalDeclaration()
		return s
	case *ast.Export:
		s := reduceChildren(n)
		s.functionDeclarationNamesAreLexical()
		s.exportDeclaredNames()
		return s
	case *ast.ExportDefault:
		s := reduceChildren(n)
		s.functionDeclarationNamesAreLexical()
		s.exportName("default", n)
		return s
	case *ast.ExportFrom:
		s := reduceChildren(n)
		s.clearExportedBindings()
		return s
	case *ast.ExportFromSpecifier:
		s := newState()
		s.exportName(exportedName(n.Name, n.ExportedName), n)
		s.exportBinding(n.Name, n)
		return s
	case *ast.ExportLocalSpecifier:
		s := reduceChildren(n)
		s.exportName(exportedName(n.Name.Name, n.ExportedName), n)
		s.exportBinding(n.Name.Name, n)
		return s
	}

	return reduceChildren(n)
}

// reduceChildren is the default rule: the concatenation of the children's
// states in source order.
func reduceChildren(n ast.Node) *state {
	s := newState()
	for _, c := range ast.Children(n) {
		concat(s, reduce(c))
	}
	return s
}

// -- programs

func reduceScript(n *ast.Script) *state {
	s := reduceChildren(n)
	s.enforceDuplicateLexicallyDeclaredNames()
	s.enforceConflictingLexicallyDeclaredNames(s.varDeclaredNames)
	for _, nt := range s.newTargetExpressions {
		s.addError(newError(nt, msgNewTargetTop))
	}
	s.enforceFreeContinueStatementErrors()
	s.enforceFreeLabeledContinueStatementErrors()
	s.enforceFreeBreakStatementErrors()
	s.enforceFreeLabeledBreakStatementErrors()
	s.enforceSuperCallExpressions()
	s.enforceSuperPropertyExpressions()
	if isStrict(n.Directives) {
		s.enforceStrictErrors()
	}
	return s
}

func reduceModule(n *ast.Module) *state {
	s := reduceChildren(n)
	s.functionDeclarationNamesAreLexical()
	s.enforceDuplicateLexicallyDeclaredNames()
	s.enforceConflictingLexicallyDeclaredNames(s.varDeclaredNames)

	for _, name := range s.exportedNames.keys {
		nodes := s.exportedNames.get(name)
		for _, e := range nodes[1:] {
			s.addError(newError(e, msgDuplicateExport, quote(name)))
		}
	}
	for _, name := range s.exportedBindings.keys {
		if name == defaultBindingName || s.lexicallyDeclaredNames.has(name) || s.varDeclaredNames.has(name) {
			continue
		}
		for _, e := range s.exportedBindings.get(name) {
			s.addError(newError(e, msgUndeclaredExport, quote(name)))
		}
	}
	for _, nt := range s.newTargetExpressions {
		s.addError(newError(nt, msgNewTargetTop))
	}

	s.enforceFreeContinueStatementErrors()
	s.enforceFreeLabeledContinueStatementErrors()
	s.enforceFreeBreakStatementErrors()
	s.enforceFreeLabeledBreakStatementErrors()
	s.enforceSuperCallExpressions()
	s.enforceSuperPropertyExpressions()
	// module code is always strict
	s.enforceStrictErrors()
	return s
}

// -- functions

func reduceArrowExpression(n *ast.ArrowExpression) *state {
	params := reduce(n.Params)
	params.enforceDuplicateLexicallyDeclaredNames()

	body := reduce(n.Body)
	fb, isFunctionBody := n.Body.(*ast.FunctionBody)
	strict := false
	if isFunctionBody {
		strict = isStrict(fb.Directives)
		body.enforceConflictingLexicallyDeclaredNames(params.lexicallyDeclaredNames)
		if strict {
			params.enforceStrictErrors()
			body.enforceStrictErrors()
		}
	}

	for _, y := range body.yieldExpressions {
		body.addError(newError(y, msgYieldInArrowBody))
	}
	for _, y := range params.yieldExpressions {
		params.addError(newError(y, msgYieldInArrowParams))
	}
	for _, a := range params.awaitExpressions {
		params.addError(newError(a, msgAwaitInArrowParams))
	}

	s := concat(params, body)
	if strict && !isSimpleParameterList(n.Params) {
		s.addError(newError(n, msgComplexParamsWithUseStrict))
	}
	s.clearYieldExpressions()
	s.clearAwaitExpressions()
	s.observeVarBoundary()
	return s
}

// reduceFunction applies the rules shared by function declarations and
// function expressions. name may be nil.
func reduceFunction(n ast.Node, name *ast.BindingIdentifier, params *ast.FormalParameters, body *ast.FunctionBody, generator, async bool) *state {
	s := newState()
	if name != nil {
		s = reduce(name)
	}
	ps := reduce(params)
	bs := reduce(body)

	simple := isSimpleParameterList(params)
	var dups []*EarlyError
	for _, k := range ps.lexicallyDeclaredNames.keys {
		for _, p := range ps.lexicallyDeclaredNames.get(k)[1:] {
			dups = append(dups, newError(p, msgDuplicateBinding, quote(k)))
		}
	}
	if !simple || generator {
		ps.addErrors(dups)
	} else {
		ps.addStrictErrors(dups)
	}

	bs.enforceConflictingLexicallyDeclaredNames(ps.lexicallyDeclaredNames)
	bs.enforceSuperCallExpressions()
	bs.enforceSuperPropertyExpressions()
	ps.enforceSuperCallExpressions()
	ps.enforceSuperPropertyExpressions()
	if generator {
		for _, y := range ps.yieldExpressions {
			ps.addError(newError(y, msgYieldInGeneratorParams))
		}
	}
	if async {
		for _, a := range ps.awaitExpressions {
			ps.addError(newError(a, msgAwaitInAsyncParams))
		}
	}
	ps.clearNewTargetExpressions()
	bs.clearNewTargetExpressions()

	strict := isStrict(body.Directives)
	if strict {
		ps.enforceStrictErrors()
		bs.enforceStrictErrors()
	}

	concat(s, ps)
	concat(s, bs)
	if strict && !simple {
		s.addError(newError(n, msgComplexParamsWithUseStrict))
	}
	return s
}

func reduceMethod(n *ast.Method) *state {
	s := reduce(n.Name)
	params := reduce(n.Params)
	params.enforceDuplicateLexicallyDeclaredNames()
	body := reduce(n.Body)
	body.enforceConflictingLexicallyDeclaredNames(params.lexicallyDeclaredNames)

	if isStaticName(n.Name, "constructor") {
		body.observeConstructorMethod()
		params.observeConstructorMethod()
	} else {
		body.enforceSuperCallExpressions()
		params.enforceSuperCallExpressions()
	}
	if n.IsGenerator {
		for _, y := range params.yieldExpressions {
			params.addError(newError(y, msgYieldInGeneratorParams))
		}
	}
	if n.IsAsync {
		for _, a := range params.awaitExpressions {
			params.addError(newError(a, msgAwaitInAsyncParams))
		}
	}
	body.clearSuperPropertyExpressions()
	params.clearSuperPropertyExpressions()
	params.clearNewTargetExpressions()
	body.clearNewTargetExpressions()

	strict := isStrict(n.Body.Directives)
	if strict {
		params.enforceStrictErrors()
		body.enforceStrictErrors()
	}

	concat(s, params)
	concat(s, body)
	if strict && !isSimpleParameterList(n.Params) {
		s.addError(newError(n, msgComplexParamsWithUseStrict))
	}
	s.clearYieldExpressions()
	s.clearAwaitExpressions()
	s.observeVarBoundary()
	return s
}

func reduceGetter(n *ast.Getter) *state {
	s := reduce(n.Name)
	body := reduce(n.Body)
	body.enforceSuperCallExpressions()
	body.clearSuperPropertyExpressions()
	body.clearNewTargetExpressions()
	if isStrict(n.Body.Directives) {
		body.enforceStrictErrors()
	}
	concat(s, body)
	s.observeVarBoundary()
	return s
}

func reduceSetter(n *ast.Setter) *state {
	s := reduce(n.Name)
	param := reduce(n.Param)
	param.observeLexicalDeclaration()
	param.enforceDuplicateLexicallyDeclaredNames()
	body := reduce(n.Body)
	body.enforceConflictingLexicallyDeclaredNames(param.lexicallyDeclaredNames)

	param.enforceSuperCallExpressions()
	body.enforceSuperCallExpressions()
	param.clearSuperPropertyExpressions()
	body.clearSuperPropertyExpressions()
	param.clearNewTargetExpressions()
	body.clearNewTargetExpressions()

	strict := isStrict(n.Body.Directives)
	if strict {
		param.enforceStrictErrors()
		body.enforceStrictErrors()
	}

	concat(s, param)
	concat(s, body)
	if _, simple := n.Param.(*ast.BindingIdentifier); strict && !simple {
		s.addError(newError(n, msgComplexParamsWithUseStrict))
	}
	s.observeVarBoundary()
	return s
}

func reduceFunctionBody(n *ast.FunctionBody) *state {
	s := reduceChildren(n)
	s.enforceDuplicateLexicallyDeclaredNames()
	s.enforceConflictingLexicallyDeclaredNames(s.varDeclaredNames)
	s.enforceFreeContinueStatementErrors()
	s.enforceFreeLabeledContinueStatementErrors()
	s.enforceFreeBreakStatementErrors()
	s.enforceFreeLabeledBreakStatementErrors()
	s.clearUsedLabelNames()
	s.clearYieldExpressions()
	if isStrict(n.Directives) {
		s.enforceStrictErrors()
	}
	return s
}

// -- classes

func reduceClass(name *ast.BindingIdentifier, super ast.Expression, elements []*ast.ClassElement) *state {
	s := newState()
	if name != nil {
		s = reduce(name)
	}
	// class bodies are always strict
	s.enforceStrictErrors()

	if super != nil {
		sup := reduce(super)
		sup.enforceStrictErrors()
		concat(s, sup)
	}

	elems := newState()
	for _, e := range elements {
		concat(elems, reduce(e))
	}
	elems.enforceStrictErrors()
	if super != nil {
		elems.clearSuperCallExpressionsInConstructorMethod()
	}
	elems.enforceSuperCallExpressions()
	elems.enforceSuperPropertyExpressions()
	concat(s, elems)

	var seenConstructor bool
	for _, e := range elements {
		if e.IsStatic {
			continue
		}
		m, ok := e.Method.(*ast.Method)
		if !ok || m.IsGenerator || !isStaticName(m.Name, "constructor") {
			continue
		}
		if seenConstructor {
			s.addError(newError(e, msgDuplicateConstructor))
		}
		seenConstructor = true
	}
	return s
}

func reduceClassElement(n *ast.ClassElement) *state {
	s := reduceChildren(n)
	if !n.IsStatic && isSpecialMethod(n.Method) {
		s.addError(newError(n, msgConstructorSpecial))
	}
	if n.IsStatic && isStaticName(n.Method.MethodName(), "prototype") {
		s.addError(newError(n, msgPrototypeMethod))
	}
	return s
}

// -- expressions

func reduceObjectExpression(n *ast.ObjectExpression) *state {
	s := reduceChildren(n)
	s.enforceSuperCallExpressionsInConstructorMethod()

	var protos []ast.Node
	for _, p := range n.Properties {
		if dp, ok := p.(*ast.DataProperty); ok && isStaticName(dp.Name, "__proto__") {
			protos = append(protos, dp)
		}
	}
	for i := 1; i < len(protos); i++ {
		s.addError(newError(protos[i], msgDuplicateProto))
	}
	return s
}

// -- statements

func reduceCatchClause(n *ast.CatchClause) *state {
	binding := reduce(n.Binding)
	binding.observeLexicalDeclaration()
	binding.enforceDuplicateLexicallyDeclaredNames()

	body := reduce(n.Body)
	binding.enforceConflictingLexicallyDeclaredNames(body.previousLexicallyDeclaredNames)
	// each for-of var redeclaring a catch parameter is reported where it occurs
	var conflicts []*EarlyError
	for _, name := range binding.lexicallyDeclaredNames.keys {
		for range binding.lexicallyDeclaredNames.get(name) {
			for _, v := range body.forOfVarDeclaredNames.get(name) {
				conflicts = append(conflicts, newError(v, msgDuplicateBinding, quote(name)))
			}
		}
	}

	s := concat(binding, body)
	s.addErrors(conflicts)
	s.observeLexicalBoundary()
	return s
}

func reduceForInOf(left ast.Node, right ast.Expression, body ast.Statement, of bool) *state {
	l := reduce(left)
	if of {
		l.recordForOfVars()
	}
	l.enforceDuplicateLexicallyDeclaredNames()
	r := reduce(right)
	b := reduce(body)
	l.enforceConflictingLexicallyDeclaredNames(b.varDeclaredNames)

	s := concat(concat(l, r), b)
	if isLabeledFunction(body) {
		msg := msgForInLabeledFunction
		if of {
			msg = msgForOfLabeledFunction
		}
		s.addError(newError(body, msg))
	}
	s.clearFreeContinueStatements()
	s.clearFreeBreakStatements()
	s.observeLexicalBoundary()
	return s
}

func reduceForStatement(n *ast.ForStatement) *state {
	init := reduce(n.Init)
	init.enforceDuplicateLexicallyDeclaredNames()
	test := reduce(n.Test)
	update := reduce(n.Update)
	body := reduce(n.Body)
	init.enforceConflictingLexicallyDeclaredNames(body.varDeclaredNames)

	s := concat(concat(concat(init, test), update), body)
	if decl, ok := n.Init.(*ast.VariableDeclaration); ok && decl.Kind == "const" {
		for _, d := range decl.Declarators {
			if d.Init == nil {
				s.addError(newError(d, msgConstWithoutInit))
			}
		}
	}
	if isLabeledFunction(n.Body) {
		s.addError(newError(n.Body, msgForLabeledFunction))
	}
	s.clearFreeContinueStatements()
	s.clearFreeBreakStatements()
	s.observeLexicalBoundary()
	return s
}

func reduceIfStatement(n *ast.IfStatement) *state {
	test := reduce(n.Test)
	cons := reduce(n.Consequent)
	if isLabeledFunction(n.Consequent) {
		cons.addError(newError(n.Consequent, msgConsequentLabeledFunction))
	}
	if _, ok := n.Consequent.(*ast.FunctionDeclaration); ok {
		cons.addStrictError(newError(n.Consequent, msgIfFunctionDeclarationStrict))
		cons.observeLexicalBoundary()
	}

	s := concat(test, cons)
	if n.Alternate != nil {
		alt := reduce(n.Alternate)
		if isLabeledFunction(n.Alternate) {
			alt.addError(newError(n.Alternate, msgAlternateLabeledFunction))
		}
		if _, ok := n.Alternate.(*ast.FunctionDeclaration); ok {
			alt.addStrictError(newError(n.Alternate, msgIfFunctionDeclarationStrict))
			alt.observeLexicalBoundary()
		}
		concat(s, alt)
	}
	return s
}

func reduceLabeledStatement(n *ast.LabeledStatement) *state {
	s := reduce(n.Body)
	if n.Label == "yield" {
		s.addStrictError(newError(n, msgYieldLabel))
	}
	if s.usedLabelNames.has(n.Label) {
		s.addError(newError(n, msgDuplicateLabel, quote(n.Label)))
	}
	if _, ok := n.Body.(*ast.FunctionDeclaration); ok {
		s.addStrictError(newError(n, msgFunctionLabelStrict))
	}
	if isIterationStatement(n.Body) {
		s.observeIterationLabel(n)
	} else {
		s.observeNonIterationLabel(n)
	}
	return s
}

func reduceSwitch(disc, cases *state) *state {
	cases.functionDeclarationNamesAreLexical()
	cases.enforceDuplicateLexicallyDeclaredNames()
	cases.enforceConflictingLexicallyDeclaredNames(cases.varDeclaredNames)
	cases.observeLexicalBoundary()

	s := concat(disc, cases)
	s.clearFreeBreakStatements()
	return s
}

// -- helpers

// defaultBindingName is bound by anonymous default exported declarations.
const defaultBindingName = "*default*"

func exportedName(name, exported string) string {
	if exported != "" {
		return exported
	}
	return name
}

func isStrict(directives []*ast.Directive) bool {
	for _, d := range directives {
		if d.RawValue == "use strict" {
			return true
		}
	}
	return false
}

func isStaticName(n ast.PropertyName, value string) bool {
	sp, ok := n.(*ast.StaticPropertyName)
	return ok && sp.Value == value
}

func isLabeledFunction(n ast.Node) bool {
	for {
		l, ok := n.(*ast.LabeledStatement)
		if !ok {
			return false
		}
		if _, ok := l.Body.(*ast.FunctionDeclaration); ok {
			return true
		}
		n = l.Body
	}
}

// isIterationStatement looks through nested labels.
func isIterationStatement(n ast.Node) bool {
	for {
		switch b := n.(type) {
		case *ast.LabeledStatement:
			n = b.Body
		case *ast.DoWhileStatement, *ast.WhileStatement, *ast.ForStatement, *ast.ForInStatement, *ast.ForOfStatement:
			return true
		default:
			return false
		}
	}
}

// isSpecialMethod reports whether m is named constructor but is not a plain
// method.
func isSpecialMethod(m ast.MethodDefinition) bool {
	if !isStaticName(m.MethodName(), "constructor") {
		return false
	}
	switch m := m.(type) {
	case *ast.Getter, *ast.Setter:
		return true
	case *ast.Method:
		return m.IsAsync || m.IsGenerator
	}
	return false
}

func isSimpleParameterList(params *ast.FormalParameters) bool {
	if params.Rest != nil {
		return false
	}
	for _, p := range params.Items {
		if _, ok := p.(*ast.BindingIdentifier); !ok {
			return false
		}
	}
	return true
}
