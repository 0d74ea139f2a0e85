package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func print(node Node, w io.Writer, indent string, printPositions bool) {
	var depth int
	Inspect(node, func(n Node) bool {
		if n == nil {
			depth--
			return true
		}

		prefix := strings.Repeat(indent, depth)
		var pos string
		if printPositions {
			pos = n.Span().String()
		}
		fmt.Fprintln(w, fmt.Sprintf("%s%s%s", prefix, String(n), pos))
		depth++
		return true
	})
}

// Print the AST to the provided writer with the specified indent.
func Print(node Node, w io.Writer, indent string) {
	print(node, w, indent, false)
}

// PrintPositions prints the AST to the provided writer with
// the specified index and node positions.
func PrintPositions(node Node, w io.Writer, indent string) {
	print(node, w, indent, true)
}

// String is a one line description of a node: its type followed by the
// attributes that are not child nodes.
func String(n Node) string {
	if attrs := attributes(n); len(attrs) > 0 {
		return fmt.Sprintf("%s[%s]", n.Type(), strings.Join(attrs, " "))
	}
	return string(n.Type())
}

func flags(pairs ...interface{}) []string {
	var out []string
	for i := 0; i < len(pairs); i += 2 {
		if pairs[i+1].(bool) {
			out = append(out, pairs[i].(string))
		}
	}
	return out
}

func attributes(n Node) []string {
	switch n := n.(type) {
	case *Directive:
		return []string{strconv.Quote(n.RawValue)}
	case *BindingIdentifier:
		return []string{n.Name}
	case *AssignmentTargetIdentifier:
		return []string{n.Name}
	case *IdentifierExpression:
		return []string{n.Name}
	case *StaticMemberAssignmentTarget:
		return []string{n.Property}
	case *StaticMemberExpression:
		return []string{n.Property}
	case *StaticPropertyName:
		return []string{strconv.Quote(n.Value)}
	case *ClassElement:
		return flags("static", n.IsStatic)
	case *FunctionDeclaration:
		return flags("async", n.IsAsync, "generator", n.IsGenerator)
	case *FunctionExpression:
		return flags("async", n.IsAsync, "generator", n.IsGenerator)
	case *Method:
		return flags("async", n.IsAsync, "generator", n.IsGenerator)
	case *ArrowExpression:
		return flags("async", n.IsAsync)
	case *LiteralBooleanExpression:
		return []string{strconv.FormatBool(n.Value)}
	case *LiteralNumericExpression:
		return []string{strconv.FormatFloat(n.Value, 'g', -1, 64)}
	case *LiteralStringExpression:
		return []string{strconv.Quote(n.Value)}
	case *LiteralRegExpExpression:
		return append([]string{"/" + n.Pattern + "/"},
			flags("g", n.Global, "i", n.IgnoreCase, "m", n.Multiline, "y", n.Sticky, "u", n.Unicode)...)
	case *TemplateElement:
		return []string{strconv.Quote(n.RawValue)}
	case *CompoundAssignmentExpression:
		return []string{n.Operator}
	case *BinaryExpression:
		return []string{n.Operator}
	case *UnaryExpression:
		return []string{n.Operator}
	case *UpdateExpression:
		if n.IsPrefix {
			return []string{"prefix", n.Operator}
		}
		return []string{n.Operator}
	case *BreakStatement:
		if n.Label != "" {
			return []string{n.Label}
		}
	case *ContinueStatement:
		if n.Label != "" {
			return []string{n.Label}
		}
	case *LabeledStatement:
		return []string{n.Label}
	case *VariableDeclaration:
		return []string{n.Kind}
	case *Import:
		return []string{strconv.Quote(n.ModuleSpecifier)}
	case *ImportNamespace:
		return []string{strconv.Quote(n.ModuleSpecifier)}
	case *ImportSpecifier:
		if n.Name != "" {
			return []string{n.Name}
		}
	case *ExportAllFrom:
		return []string{strconv.Quote(n.ModuleSpecifier)}
	case *ExportFrom:
		return []string{strconv.Quote(n.ModuleSpecifier)}
	case *ExportFromSpecifier:
		if n.ExportedName != "" {
			return []string{n.Name, "as", n.ExportedName}
		}
		return []string{n.Name}
	case *ExportLocalSpecifier:
		if n.ExportedName != "" {
			return []string{"as", n.ExportedName}
		}
	}
	return nil
}
