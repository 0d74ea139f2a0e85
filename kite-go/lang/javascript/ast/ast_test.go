package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleScript() *Script {
	sum := &BinaryExpression{
		Left:     &IdentifierExpression{Name: "a"},
		Operator: "+",
		Right:    &LiteralNumericExpression{Value: 1.5},
	}
	sum.SetSpan(Span{Start: Location{Line: 1, Column: 0, Offset: 0}, End: Location{Line: 1, Column: 7, Offset: 7}})
	return &Script{
		Directives: []*Directive{{RawValue: "use strict"}},
		Statements: []Statement{&ExpressionStatement{Expression: sum}},
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(sampleScript(), &buf, "  ")
	expected := `Script
  Directive["use strict"]
  ExpressionStatement
    BinaryExpression[+]
      IdentifierExpression[a]
      LiteralNumericExpression[1.5]
`
	assert.Equal(t, expected, buf.String())
}

func TestPrintPositions(t *testing.T) {
	var buf bytes.Buffer
	PrintPositions(sampleScript().Statements[0].(*ExpressionStatement).Expression, &buf, " ")
	assert.Equal(t, "BinaryExpression[+][0...7]\n IdentifierExpression[a][0...0]\n LiteralNumericExpression[1.5][0...0]\n", buf.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "UpdateExpression[prefix ++]", String(&UpdateExpression{IsPrefix: true, Operator: "++"}))
	assert.Equal(t, "UpdateExpression[--]", String(&UpdateExpression{Operator: "--"}))
	assert.Equal(t, "FunctionDeclaration", String(&FunctionDeclaration{}))
	assert.Equal(t, "FunctionDeclaration[async generator]", String(&FunctionDeclaration{IsAsync: true, IsGenerator: true}))
	assert.Equal(t, "LiteralRegExpExpression[/a/ g u]", String(&LiteralRegExpExpression{Pattern: "a", Global: true, Unicode: true}))
	assert.Equal(t, "BreakStatement", String(&BreakStatement{}))
	assert.Equal(t, "BreakStatement[l]", String(&BreakStatement{Label: "l"}))
}

func TestChildren(t *testing.T) {
	s := sampleScript()
	children := Children(s)
	assert.Len(t, children, 2)
	assert.Equal(t, s.Directives[0], children[0])

	var types []Type
	Inspect(s, func(n Node) bool {
		if n != nil {
			types = append(types, n.Type())
		}
		return true
	})
	assert.Equal(t, []Type{
		ScriptType, DirectiveType, ExpressionStatementType,
		BinaryExpressionType, IdentifierExpressionType, LiteralNumericExpressionType,
	}, types)

	// returning false prunes the subtree
	var count int
	Inspect(s, func(n Node) bool {
		if n == nil {
			return false
		}
		count++
		return n.Type() != ExpressionStatementType
	})
	assert.Equal(t, 3, count)
}

func TestSpan(t *testing.T) {
	assert.True(t, Span{}.IsZero())
	sp := Span{Start: Location{Line: 2, Column: 3, Offset: 10}, End: Location{Line: 2, Column: 5, Offset: 12}}
	assert.False(t, sp.IsZero())
	assert.Equal(t, "[10...12]", sp.String())
	assert.Equal(t, "2:3", sp.Start.String())
}

func TestCommentKind(t *testing.T) {
	assert.Equal(t, "HTMLClose", HTMLClose.String())
	text, err := MultiLine.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "MultiLine", string(text))
	assert.Equal(t, "Unknown", CommentKind(42).String())
}

func comment(text string, start, end int) Comment {
	return Comment{
		Kind: MultiLine,
		Text: text,
		Span: Span{Start: Location{Line: 1, Offset: start}, End: Location{Line: 1, Offset: end}},
	}
}

func TestCommentIndex(t *testing.T) {
	comments := []Comment{
		comment("a", 0, 5),
		comment("b", 10, 15),
		comment("c", 20, 25),
	}
	idx := NewCommentIndex(comments)
	assert.Equal(t, 3, idx.Len())

	span := func(start, end int) Span {
		return Span{Start: Location{Offset: start}, End: Location{Offset: end}}
	}

	assert.Equal(t, comments, idx.Within(span(0, 30)))
	assert.Equal(t, []Comment{comments[1]}, idx.Within(span(8, 18)))
	assert.Equal(t, []Comment{comments[1], comments[2]}, idx.Within(span(10, 25)))
	// partial overlap is not enough
	assert.Empty(t, idx.Within(span(3, 12)))
	assert.Empty(t, idx.Within(span(26, 40)))

	stmt := &ExpressionStatement{}
	stmt.SetSpan(span(19, 26))
	assert.Equal(t, []Comment{comments[2]}, idx.InNode(stmt))

	assert.Empty(t, NewCommentIndex(nil).Within(span(0, 100)))
}
