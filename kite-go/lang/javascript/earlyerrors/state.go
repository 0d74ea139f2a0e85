package earlyerrors

import "github.com/kiteco/esparse/kite-go/lang/javascript/ast"

// names is a multimap from identifier names to the nodes that mention them.
// Keys are kept in first-insertion order so reports are deterministic.
type names struct {
	keys  []string
	nodes map[string][]ast.Node
}

func (m *names) add(name string, n ast.Node) {
	if m.nodes == nil {
		m.nodes = make(map[string][]ast.Node)
	}
	if _, ok := m.nodes[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.nodes[name] = append(m.nodes[name], n)
}

func (m *names) merge(other names) {
	for _, k := range other.keys {
		for _, n := range other.nodes[k] {
			m.add(k, n)
		}
	}
}

func (m names) get(name string) []ast.Node {
	return m.nodes[name]
}

func (m names) has(name string) bool {
	return len(m.nodes[name]) > 0
}

func (m *names) remove(name string) {
	if !m.has(name) {
		return
	}
	delete(m.nodes, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// values returns every node, grouped by name.
func (m names) values() []ast.Node {
	var vals []ast.Node
	for _, k := range m.keys {
		vals = append(vals, m.nodes[k]...)
	}
	return vals
}

// state is what the checker knows about a subtree: the errors found so far,
// the errors that only apply in strict mode code, and the names and nodes
// still waiting for an enclosing construct to resolve them.
//
// States form a monoid under concat with newState as the identity. A state is
// owned by whoever reduced it; the methods below update it in place.
type state struct {
	errors       []*EarlyError
	strictErrors []*EarlyError

	usedLabelNames names

	freeBreakStatements           []ast.Node
	freeLabeledBreakStatements    names
	freeContinueStatements        []ast.Node
	freeLabeledContinueStatements names

	newTargetExpressions []ast.Node

	boundNames                     names
	previousLexicallyDeclaredNames names
	lexicallyDeclaredNames         names
	functionDeclarationNames       names
	varDeclaredNames               names
	forOfVarDeclaredNames          names

	exportedNames    names
	exportedBindings names

	superCallExpressions                    []ast.Node
	superCallExpressionsInConstructorMethod []ast.Node
	superPropertyExpressions                []ast.Node

	yieldExpressions []ast.Node
	awaitExpressions []ast.Node
}

func newState() *state {
	return &state{}
}

// concat appends everything b holds onto a and returns a. b must not be used
// afterwards.
func concat(a, b *state) *state {
	a.errors = append(a.errors, b.errors...)
	a.strictErrors = append(a.strictErrors, b.strictErrors...)
	a.usedLabelNames.merge(b.usedLabelNames)
	a.freeBreakStatements = append(a.freeBreakStatements, b.freeBreakStatements...)
	a.freeLabeledBreakStatements.merge(b.freeLabeledBreakStatements)
	a.freeContinueStatements = append(a.freeContinueStatements, b.freeContinueStatements...)
	a.freeLabeledContinueStatements.merge(b.freeLabeledContinueStatements)
	a.newTargetExpressions = append(a.newTargetExpressions, b.newTargetExpressions...)
	a.boundNames.merge(b.boundNames)
	a.previousLexicallyDeclaredNames.merge(b.previousLexicallyDeclaredNames)
	a.lexicallyDeclaredNames.merge(b.lexicallyDeclaredNames)
	a.functionDeclarationNames.merge(b.functionDeclarationNames)
	a.varDeclaredNames.merge(b.varDeclaredNames)
	a.forOfVarDeclaredNames.merge(b.forOfVarDeclaredNames)
	a.exportedNames.merge(b.exportedNames)
	a.exportedBindings.merge(b.exportedBindings)
	a.superCallExpressions = append(a.superCallExpressions, b.superCallExpressions...)
	a.superCallExpressionsInConstructorMethod = append(a.superCallExpressionsInConstructorMethod, b.superCallExpressionsInConstructorMethod...)
	a.superPropertyExpressions = append(a.superPropertyExpressions, b.superPropertyExpressions...)
	a.yieldExpressions = append(a.yieldExpressions, b.yieldExpressions...)
	a.awaitExpressions = append(a.awaitExpressions, b.awaitExpressions...)
	return a
}

// -- break and continue

func (s *state) addFreeBreakStatement(n *ast.BreakStatement) {
	s.freeBreakStatements = append(s.freeBreakStatements, n)
}

func (s *state) addFreeLabeledBreakStatement(n *ast.BreakStatement) {
	s.freeLabeledBreakStatements.add(n.Label, n)
}

func (s *state) clearFreeBreakStatements() {
	s.freeBreakStatements = nil
}

func (s *state) addFreeContinueStatement(n *ast.ContinueStatement) {
	s.freeContinueStatements = append(s.freeContinueStatements, n)
}

func (s *state) addFreeLabeledContinueStatement(n *ast.ContinueStatement) {
	s.freeLabeledContinueStatements.add(n.Label, n)
}

func (s *state) clearFreeContinueStatements() {
	s.freeContinueStatements = nil
}

func (s *state) enforceFreeBreakStatementErrors() {
	for _, n := range s.freeBreakStatements {
		s.addError(newError(n, msgFreeBreak))
	}
	s.freeBreakStatements = nil
}

func (s *state) enforceFreeLabeledBreakStatementErrors() {
	for _, k := range s.freeLabeledBreakStatements.keys {
		for _, n := range s.freeLabeledBreakStatements.get(k) {
			s.addError(newError(n, msgUnboundBreak, quote(k)))
		}
	}
	s.freeLabeledBreakStatements = names{}
}

func (s *state) enforceFreeContinueStatementErrors() {
	for _, n := range s.freeContinueStatements {
		s.addError(newError(n, msgFreeContinue))
	}
	s.freeContinueStatements = nil
}

func (s *state) enforceFreeLabeledContinueStatementErrors() {
	for _, k := range s.freeLabeledContinueStatements.keys {
		for _, n := range s.freeLabeledContinueStatements.get(k) {
			s.addError(newError(n, msgUnboundContinue, quote(k)))
		}
	}
	s.freeLabeledContinueStatements = names{}
}

// -- labels

// observeIterationLabel resolves the labeled breaks and continues that target
// a label on a loop.
func (s *state) observeIterationLabel(n *ast.LabeledStatement) {
	s.usedLabelNames.add(n.Label, n)
	s.freeLabeledBreakStatements.remove(n.Label)
	s.freeLabeledContinueStatements.remove(n.Label)
}

// observeNonIterationLabel resolves the labeled breaks that target a label on
// any other statement. Labeled continues stay free.
func (s *state) observeNonIterationLabel(n *ast.LabeledStatement) {
	s.usedLabelNames.add(n.Label, n)
	s.freeLabeledBreakStatements.remove(n.Label)
}

func (s *state) clearUsedLabelNames() {
	s.usedLabelNames = names{}
}

// -- super

func (s *state) observeSuperCallExpression(n ast.Node) {
	s.superCallExpressions = append(s.superCallExpressions, n)
}

func (s *state) observeConstructorMethod() {
	s.superCallExpressionsInConstructorMethod = s.superCallExpressions
	s.superCallExpressions = nil
}

func (s *state) clearSuperCallExpressionsInConstructorMethod() {
	s.superCallExpressionsInConstructorMethod = nil
}

func (s *state) enforceSuperCallExpressions() {
	for _, n := range s.superCallExpressions {
		s.addError(newError(n, msgSuperCall))
	}
	for _, n := range s.superCallExpressionsInConstructorMethod {
		s.addError(newError(n, msgSuperCall))
	}
	s.superCallExpressions = nil
	s.superCallExpressionsInConstructorMethod = nil
}

func (s *state) enforceSuperCallExpressionsInConstructorMethod() {
	for _, n := range s.superCallExpressionsInConstructorMethod {
		s.addError(newError(n, msgSuperCall))
	}
	s.superCallExpressionsInConstructorMethod = nil
}

func (s *state) observeSuperPropertyExpression(n ast.Node) {
	s.superPropertyExpressions = append(s.superPropertyExpressions, n)
}

func (s *state) clearSuperPropertyExpressions() {
	s.superPropertyExpressions = nil
}

func (s *state) enforceSuperPropertyExpressions() {
	for _, n := range s.superPropertyExpressions {
		s.addError(newError(n, msgSuperProperty))
	}
	s.superPropertyExpressions = nil
}

// -- new.target

func (s *state) observeNewTargetExpression(n *ast.NewTargetExpression) {
	s.newTargetExpressions = append(s.newTargetExpressions, n)
}

func (s *state) clearNewTargetExpressions() {
	s.newTargetExpressions = nil
}

// -- declarations

func (s *state) bindName(name string, n ast.Node) {
	s.boundNames.add(name, n)
}

func (s *state) clearBoundNames() {
	s.boundNames = names{}
}

func (s *state) observeLexicalDeclaration() {
	s.lexicallyDeclaredNames.merge(s.boundNames)
	s.boundNames = names{}
}

// observeLexicalBoundary closes a block scope. Its lexical names are kept
// aside for the one enclosing construct that needs them (a catch clause).
func (s *state) observeLexicalBoundary() {
	s.previousLexicallyDeclaredNames = s.lexicallyDeclaredNames
	s.lexicallyDeclaredNames = names{}
	s.functionDeclarationNames = names{}
}

func (s *state) enforceDuplicateLexicallyDeclaredNames() {
	for _, k := range s.lexicallyDeclaredNames.keys {
		nodes := s.lexicallyDeclaredNames.get(k)
		for _, n := range nodes[1:] {
			s.addError(newError(n, msgDuplicateBinding, quote(k)))
		}
	}
}

func (s *state) enforceConflictingLexicallyDeclaredNames(other names) {
	for _, k := range s.lexicallyDeclaredNames.keys {
		if !other.has(k) {
			continue
		}
		for _, n := range s.lexicallyDeclaredNames.get(k) {
			s.addError(newError(n, msgDuplicateBinding, quote(k)))
		}
	}
}

func (s *state) observeFunctionDeclaration() {
	s.observeVarBoundary()
	s.functionDeclarationNames.merge(s.boundNames)
	s.boundNames = names{}
}

// functionDeclarationNamesAreLexical is applied where function declarations
// are block scoped: in blocks, switch bodies, modules and exports.
func (s *state) functionDeclarationNamesAreLexical() {
	s.lexicallyDeclaredNames.merge(s.functionDeclarationNames)
	s.functionDeclarationNames = names{}
}

func (s *state) observeVarDeclaration() {
	s.varDeclaredNames.merge(s.boundNames)
	s.boundNames = names{}
}

func (s *state) recordForOfVars() {
	s.forOfVarDeclaredNames.merge(s.varDeclaredNames)
}

func (s *state) observeVarBoundary() {
	s.lexicallyDeclaredNames = names{}
	s.functionDeclarationNames = names{}
	s.varDeclaredNames = names{}
	s.forOfVarDeclaredNames = names{}
}

// -- exports

func (s *state) exportName(name string, n ast.Node) {
	s.exportedNames.add(name, n)
}

func (s *state) exportDeclaredNames() {
	s.exportedNames.merge(s.lexicallyDeclaredNames)
	s.exportedNames.merge(s.varDeclaredNames)
	s.exportedBindings.merge(s.lexicallyDeclaredNames)
	s.exportedBindings.merge(s.varDeclaredNames)
}

func (s *state) exportBinding(name string, n ast.Node) {
	s.exportedBindings.add(name, n)
}

func (s *state) clearExportedBindings() {
	s.exportedBindings = names{}
}

// -- yield and await

func (s *state) observeYieldExpression(n ast.Node) {
	s.yieldExpressions = append(s.yieldExpressions, n)
}

func (s *state) clearYieldExpressions() {
	s.yieldExpressions = nil
}

func (s *state) observeAwaitExpression(n *ast.AwaitExpression) {
	s.awaitExpressions = append(s.awaitExpressions, n)
}

func (s *state) clearAwaitExpressions() {
	s.awaitExpressions = nil
}

// -- errors

func (s *state) addError(e *EarlyError) {
	s.errors = append(s.errors, e)
}

func (s *state) addErrors(es []*EarlyError) {
	s.errors = append(s.errors, es...)
}

func (s *state) addStrictError(e *EarlyError) {
	s.strictErrors = append(s.strictErrors, e)
}

func (s *state) addStrictErrors(es []*EarlyError) {
	s.strictErrors = append(s.strictErrors, es...)
}

// enforceStrictErrors promotes the strict mode errors once the enclosing code
// is known to be strict.
func (s *state) enforceStrictErrors() {
	s.errors = append(s.errors, s.strictErrors...)
	s.strictErrors = nil
}
