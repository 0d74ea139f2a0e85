package parser

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kiteco/esparse/kite-go/lang/javascript/ast"
	"github.com/kiteco/esparse/kite-golib/kitectx"
	"github.com/kr/pretty"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertParse(t *testing.T, expected string, src string) ast.Program {
	return assertParseWithOptions(t, expected, src, Options{})
}

func assertParseModule(t *testing.T, expected string, src string) ast.Program {
	return assertParseWithOptions(t, expected, src, Options{Module: true})
}

func assertParseWithOptions(t *testing.T, expected string, src string, opts Options) ast.Program {
	t.Log(src)
	res, err := Parse(kitectx.Background(), []byte(src), opts)
	require.NoError(t, err)
	require.NotNil(t, res)
	assertAST(t, expected, res.Program)
	return res.Program
}

func assertAST(t *testing.T, expected string, node ast.Node) {
	var buf bytes.Buffer
	ast.Print(node, &buf, "\t")
	actual := strings.TrimSpace(buf.String())
	expected = strings.TrimSpace(expected)

	if actual != expected {
		expectedLines := strings.Split(expected, "\n")
		actualLines := strings.Split(actual, "\n")

		n := len(expectedLines)
		if len(actualLines) > n {
			n = len(actualLines)
		}

		sidebyside := fmt.Sprintf("      | %-40s | %-40s |\n", "EXPECTED", "ACTUAL")
		for i := 0; i < n; i++ {
			var expectedLine, actualLine string
			if i < len(expectedLines) {
				expectedLine = strings.Replace(expectedLines[i], "\t", "    ", -1)
			}
			if i < len(actualLines) {
				actualLine = strings.Replace(actualLines[i], "\t", "    ", -1)
			}
			symbol := "   "
			if actualLine != expectedLine {
				symbol = "***"
			}
			sidebyside += fmt.Sprintf("%-6s| %-40s | %-40s |\n", symbol, expectedLine, actualLine)
		}

		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(expected, actual, false)
		t.Errorf("AST mismatch:\n%s\n%s", sidebyside, dmp.DiffPrettyText(diffs))
		return
	}

	t.Log("\n" + actual)
}

func assertParseError(t *testing.T, src string, msg string) {
	_, err := ParseScript(kitectx.Background(), []byte(src), Options{})
	require.Error(t, err, src)
	serr, ok := err.(*SyntaxError)
	require.True(t, ok, "expected a syntax error, got %s", pretty.Sprint(err))
	assert.Contains(t, serr.Message, msg, src)
}

func TestParse_Expressions(t *testing.T) {
	assertParse(t, `
Script
	ExpressionStatement
		AssignmentExpression
			AssignmentTargetIdentifier[a]
			LiteralNumericExpression[1]
`, `a = 1;`)

	assertParse(t, `
Script
	ExpressionStatement
		BinaryExpression[+]
			IdentifierExpression[a]
			BinaryExpression[*]
				IdentifierExpression[b]
				IdentifierExpression[c]
`, `a + b * c`)

	assertParse(t, `
Script
	ExpressionStatement
		ConditionalExpression
			IdentifierExpression[a]
			IdentifierExpression[b]
			IdentifierExpression[c]
`, `a ? b : c;`)

	assertParse(t, `
Script
	ExpressionStatement
		UpdateExpression[++]
			AssignmentTargetIdentifier[x]
`, `x++;`)

	assertParse(t, `
Script
	Directive["use strict"]
	ExpressionStatement
		CallExpression
			IdentifierExpression[f]
			SpreadElement
				IdentifierExpression[x]
`, `"use strict"; f(...x);`)

	assertParse(t, `
Script
	ExpressionStatement
		LiteralRegExpExpression[/[a-z]+/ g i]
`, `/[a-z]+/gi;`)
}

func TestParse_CoverGrammar(t *testing.T) {
	assertParse(t, `
Script
	ExpressionStatement
		AssignmentExpression
			ArrayAssignmentTarget
				AssignmentTargetIdentifier[a]
				AssignmentTargetIdentifier[b]
			IdentifierExpression[c]
`, `[a, b] = c;`)

	assertParse(t, `
Script
	ExpressionStatement
		ArrowExpression
			FormalParameters
				BindingIdentifier[a]
				BindingIdentifier[b]
			BinaryExpression[+]
				IdentifierExpression[a]
				IdentifierExpression[b]
`, `(a, b) => a + b;`)

	assertParse(t, `
Script
	ExpressionStatement
		ArrowExpression
			FormalParameters
				BindingIdentifier[x]
			IdentifierExpression[x]
`, `x => x`)
}

func TestParse_Declarations(t *testing.T) {
	assertParse(t, `
Script
	VariableDeclarationStatement
		VariableDeclaration[var]
			VariableDeclarator
				BindingIdentifier[x]
				LiteralNumericExpression[1]
			VariableDeclarator
				BindingIdentifier[y]
`, `var x = 1, y;`)

	assertParse(t, `
Script
	FunctionDeclaration[async]
		BindingIdentifier[f]
		FormalParameters
		FunctionBody
			ExpressionStatement
				AwaitExpression
					IdentifierExpression[g]
`, `async function f() { await g; }`)
}

func TestParse_Module(t *testing.T) {
	assertParseModule(t, `
Module
	Import["m"]
		BindingIdentifier[a]
		ImportSpecifier[b]
			BindingIdentifier[c]
	ExportDefault
		LiteralNumericExpression[1]
`, `import a, {b as c} from "m"; export default 1;`)
}

func TestParse_Errors(t *testing.T) {
	assertParseError(t, `/[a-z/`, "Invalid regular expression")
	assertParseError(t, `/(/;`, "Invalid regular expression")
	assertParseError(t, `1 = 2;`, msgInvalidLHSInAssignment)
	assertParseError(t, `a +;`, "Unexpected")
	assertParseError(t, `switch (a) { default: default: }`, msgMultipleDefaultsInSwitch)
	assertParseError(t, `try {}`, msgNoCatchOrFinally)
	assertParseError(t, `return;`, msgIllegalReturn)
}

func TestParse_SkipPatternValidation(t *testing.T) {
	_, err := ParseScript(kitectx.Background(), []byte(`/(/;`), Options{SkipPatternValidation: true})
	assert.NoError(t, err)
}

func TestParse_MaxDepth(t *testing.T) {
	src := strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50)

	_, err := ParseScript(kitectx.Background(), []byte(src), Options{})
	assert.NoError(t, err)

	_, err = ParseScript(kitectx.Background(), []byte(src), Options{MaxDepth: 10})
	require.Error(t, err)
	assert.Equal(t, msgMaxDepth, err.(*SyntaxError).Message)
}

func TestParse_ModuleIsStrict(t *testing.T) {
	_, err := ParseScript(kitectx.Background(), []byte(`var x = 010;`), Options{})
	assert.NoError(t, err)

	_, err = ParseModule(kitectx.Background(), []byte(`var x = 010;`), Options{})
	require.Error(t, err)
	assert.Equal(t, msgStrictOctalLiteral, err.(*SyntaxError).Message)
}

func findNode(root ast.Node, typ ast.Type) ast.Node {
	var found ast.Node
	ast.Inspect(root, func(n ast.Node) bool {
		if found != nil || n == nil {
			return false
		}
		if n.Type() == typ {
			found = n
			return false
		}
		return true
	})
	return found
}

func TestParse_Locations(t *testing.T) {
	res, err := Parse(kitectx.Background(), []byte("  foo;"), Options{Locations: true})
	require.NoError(t, err)

	id := findNode(res.Program, ast.IdentifierExpressionType)
	require.NotNil(t, id)
	assert.Equal(t, ast.Location{Line: 1, Column: 2, Offset: 2}, id.Span().Start)
	assert.Equal(t, 5, id.Span().End.Offset)

	// offsets count UTF-16 code units
	res, err = Parse(kitectx.Background(), []byte("\"😀\"; x;"), Options{Locations: true})
	require.NoError(t, err)
	id = findNode(res.Program, ast.IdentifierExpressionType)
	require.NotNil(t, id)
	assert.Equal(t, 6, id.Span().Start.Offset)

	res, err = Parse(kitectx.Background(), []byte("a;\nb;"), Options{Locations: true})
	require.NoError(t, err)
	script := res.Program.(*ast.Script)
	require.Len(t, script.Statements, 2)
	assert.Equal(t, ast.Location{Line: 2, Column: 0, Offset: 3}, script.Statements[1].Span().Start)
}

func TestParse_Comments(t *testing.T) {
	res, err := Parse(kitectx.Background(), []byte("// hi\n/* a */ x;"), Options{Comments: true})
	require.NoError(t, err)
	require.Len(t, res.Comments, 2, pretty.Sprint(res.Comments))
	assert.Equal(t, ast.SingleLine, res.Comments[0].Kind)
	assert.Equal(t, " hi", res.Comments[0].Text)
	assert.Equal(t, ast.MultiLine, res.Comments[1].Kind)
	assert.Equal(t, " a ", res.Comments[1].Text)

	res, err = Parse(kitectx.Background(), []byte("// hi\nx;"), Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Comments)
}

func TestParse_Trace(t *testing.T) {
	var buf bytes.Buffer
	_, err := Parse(kitectx.Background(), []byte("import a from 'b';"), Options{Module: true, Trace: true, TraceWriter: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ImportDeclaration")
}

func TestParse_ContextExpiry(t *testing.T) {
	src := []byte(strings.Repeat("a;\n", 1000))
	err := kitectx.Background().WithTimeout(0, func(ctx kitectx.Context) error {
		_, err := ParseScript(ctx, src, Options{})
		return err
	})
	assert.Error(t, err)
}
