// Package astprinter renders a parsed document back into canonical GraphQL
// source text: join adjacent top-level blocks with one blank line, indent
// nested blocks by two spaces, and inline argument/variable-definition/
// object-value-field lists only when the result fits in 80 columns.
//
// Printing walks the same node shapes pkg/astparser consumes, one print
// routine per parse routine, so that Print(Parse(src)) round-trips to a
// structurally equal document — the format each routine emits was checked
// directly against what its parser counterpart in pkg/astparser accepts.
package astprinter

import (
	"strings"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

// Print renders doc as canonical GraphQL source.
func Print(doc *ast.Document) string {
	var b strings.Builder
	blocks := make([]string, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		blocks = append(blocks, printDefinition(def))
	}
	b.WriteString(strings.Join(blocks, "\n\n"))
	if len(blocks) > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

// PrintValue renders a single Value (for display/debugging or re-embedding
// a default value in a larger printed document).
func PrintValue(v *ast.Value) string { return printValue(v) }

// PrintType renders a single Type.
func PrintType(t *ast.Type) string { return printType(t) }

func printDefinition(def ast.Definition) string {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		return printOperationDefinition(d)
	case *ast.FragmentDefinition:
		return printFragmentDefinition(d)
	case *ast.SchemaDefinition:
		return printSchemaDefinition(d)
	case *ast.ScalarTypeDefinition:
		return printScalarTypeDefinition(d)
	case *ast.ObjectTypeDefinition:
		return printObjectTypeDefinition(d)
	case *ast.InterfaceTypeDefinition:
		return printInterfaceTypeDefinition(d)
	case *ast.UnionTypeDefinition:
		return printUnionTypeDefinition(d)
	case *ast.EnumTypeDefinition:
		return printEnumTypeDefinition(d)
	case *ast.InputObjectTypeDefinition:
		return printInputObjectTypeDefinition(d)
	case *ast.DirectiveDefinition:
		return printDirectiveDefinition(d)
	default:
		return ""
	}
}

func printOperationDefinition(op *ast.OperationDefinition) string {
	shorthand := op.Operation == ast.OperationTypeQuery && op.Name == nil &&
		len(op.VariableDefinitions) == 0 && len(op.Directives) == 0
	if shorthand {
		return printSelectionSet(op.SelectionSet, 0)
	}
	var b strings.Builder
	b.WriteString(operationKeyword(op.Operation))
	if op.Name != nil {
		b.WriteByte(' ')
		b.WriteString(op.Name.Value)
	}
	if len(op.VariableDefinitions) > 0 {
		b.WriteString(printVariableDefinitions(op.VariableDefinitions))
	}
	b.WriteString(printDirectives(op.Directives))
	b.WriteByte(' ')
	b.WriteString(printSelectionSet(op.SelectionSet, 0))
	return b.String()
}

func operationKeyword(op ast.OperationType) string {
	switch op {
	case ast.OperationTypeMutation:
		return "mutation"
	case ast.OperationTypeSubscription:
		return "subscription"
	default:
		return "query"
	}
}

func printFragmentDefinition(f *ast.FragmentDefinition) string {
	var b strings.Builder
	b.WriteString("fragment ")
	b.WriteString(f.Name.Value)
	b.WriteString(" on ")
	b.WriteString(f.TypeCondition.Value)
	b.WriteString(printDirectives(f.Directives))
	b.WriteByte(' ')
	b.WriteString(printSelectionSet(f.SelectionSet, 0))
	return b.String()
}

func printSelectionSet(set *ast.SelectionSet, indent int) string {
	if set == nil || len(set.Selections) == 0 {
		return "{}"
	}
	pad := strings.Repeat("  ", indent+1)
	var b strings.Builder
	b.WriteString("{\n")
	for _, sel := range set.Selections {
		b.WriteString(pad)
		b.WriteString(printSelection(sel, indent+1))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteByte('}')
	return b.String()
}

func printSelection(sel ast.Selection, indent int) string {
	switch s := sel.(type) {
	case *ast.Field:
		return printField(s, indent)
	case *ast.FragmentSpread:
		return printFragmentSpread(s)
	case *ast.InlineFragment:
		return printInlineFragment(s, indent)
	default:
		return ""
	}
}

func printField(f *ast.Field, indent int) string {
	var b strings.Builder
	if f.Alias != nil {
		b.WriteString(f.Alias.Value)
		b.WriteByte(':')
		b.WriteByte(' ')
	}
	b.WriteString(f.Name.Value)
	if len(f.Arguments) > 0 {
		b.WriteString(printArguments(f.Arguments, indent))
	}
	b.WriteString(printDirectives(f.Directives))
	if f.SelectionSet != nil {
		b.WriteByte(' ')
		b.WriteString(printSelectionSet(f.SelectionSet, indent))
	}
	return b.String()
}

func printFragmentSpread(s *ast.FragmentSpread) string {
	return "..." + s.Name.Value + printDirectives(s.Directives)
}

func printInlineFragment(f *ast.InlineFragment, indent int) string {
	var b strings.Builder
	b.WriteString("...")
	if f.TypeCondition != nil {
		b.WriteString(" on ")
		b.WriteString(f.TypeCondition.Value)
	}
	b.WriteString(printDirectives(f.Directives))
	b.WriteByte(' ')
	b.WriteString(printSelectionSet(f.SelectionSet, indent))
	return b.String()
}

func printArguments(args []*ast.Argument, indent int) string {
	entries := make([]string, len(args))
	for i, a := range args {
		entries[i] = a.Name.Value + ": " + printValue(a.Value)
	}
	return wrapEntries("(", entries, ")", indent)
}

func printVariableDefinitions(defs []*ast.VariableDefinition) string {
	entries := make([]string, len(defs))
	for i, d := range defs {
		e := "$" + d.Variable.Value + ": " + printType(d.Type)
		if d.DefaultValue != nil {
			e += " = " + printValue(d.DefaultValue)
		}
		e += printDirectives(d.Directives)
		entries[i] = e
	}
	return wrapEntries("(", entries, ")", 0)
}

func printDirectives(directives []*ast.Directive) string {
	if len(directives) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range directives {
		b.WriteByte(' ')
		b.WriteByte('@')
		b.WriteString(d.Name.Value)
		if len(d.Arguments) > 0 {
			b.WriteString(printArguments(d.Arguments, 0))
		}
	}
	return b.String()
}

// wrapEntries renders entries inline as `open e1, e2 close` when that fits
// in 80 columns; otherwise one entry per line, indented one level deeper
// than indent, without separating commas.
func wrapEntries(open string, entries []string, close string, indent int) string {
	if len(entries) == 0 {
		return ""
	}
	inline := open + strings.Join(entries, ", ") + close
	if len(inline) <= 80 && !strings.Contains(inline, "\n") {
		return inline
	}
	pad := strings.Repeat("  ", indent+1)
	var b strings.Builder
	b.WriteString(open)
	b.WriteByte('\n')
	for _, e := range entries {
		b.WriteString(pad)
		b.WriteString(e)
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(close)
	return b.String()
}

func printType(t *ast.Type) string { return t.String() }
