package astprinter

import (
	"strings"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

func printDescription(desc string) string {
	if desc == "" {
		return ""
	}
	if strings.Contains(desc, "\n") {
		return printBlockString(desc) + "\n"
	}
	return printString(desc) + "\n"
}

func extendPrefix(isExt bool) string {
	if isExt {
		return "extend "
	}
	return ""
}

func printSchemaDefinition(s *ast.SchemaDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(s.Description))
	b.WriteString(extendPrefix(s.IsExtension))
	b.WriteString("schema")
	b.WriteString(printDirectives(s.Directives))
	b.WriteByte(' ')
	b.WriteString("{\n")
	for _, ot := range s.OperationTypes {
		b.WriteString("  ")
		b.WriteString(operationKeyword(ot.Operation))
		b.WriteString(": ")
		b.WriteString(ot.Type.Value)
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func printScalarTypeDefinition(s *ast.ScalarTypeDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(s.Description))
	b.WriteString(extendPrefix(s.IsExtension))
	b.WriteString("scalar ")
	b.WriteString(s.Name.Value)
	b.WriteString(printDirectives(s.Directives))
	return b.String()
}

func printImplements(interfaces []*ast.Name) string {
	if len(interfaces) == 0 {
		return ""
	}
	names := make([]string, len(interfaces))
	for i, n := range interfaces {
		names[i] = n.Value
	}
	return " implements " + strings.Join(names, " & ")
}

func printObjectTypeDefinition(o *ast.ObjectTypeDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(o.Description))
	b.WriteString(extendPrefix(o.IsExtension))
	b.WriteString("type ")
	b.WriteString(o.Name.Value)
	b.WriteString(printImplements(o.Interfaces))
	b.WriteString(printDirectives(o.Directives))
	b.WriteString(printFieldsDefinition(o.Fields))
	return b.String()
}

func printInterfaceTypeDefinition(i *ast.InterfaceTypeDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(i.Description))
	b.WriteString(extendPrefix(i.IsExtension))
	b.WriteString("interface ")
	b.WriteString(i.Name.Value)
	b.WriteString(printImplements(i.Interfaces))
	b.WriteString(printDirectives(i.Directives))
	b.WriteString(printFieldsDefinition(i.Fields))
	return b.String()
}

func printFieldsDefinition(fields []*ast.FieldDefinition) string {
	if len(fields) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" {\n")
	for _, f := range fields {
		if f.Description != "" {
			b.WriteString(indentLines(printDescription(f.Description), "  "))
		}
		b.WriteString("  ")
		b.WriteString(f.Name.Value)
		if len(f.Arguments) > 0 {
			b.WriteString(printInputValueDefinitions(f.Arguments, 1))
		}
		b.WriteString(": ")
		b.WriteString(printType(f.Type))
		b.WriteString(printDirectives(f.Directives))
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func indentLines(s, pad string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n") + "\n"
}

func printInputValueDefinitions(defs []*ast.InputValueDefinition, indent int) string {
	entries := make([]string, len(defs))
	for i, d := range defs {
		e := d.Name.Value + ": " + printType(d.Type)
		if d.DefaultValue != nil {
			e += " = " + printValue(d.DefaultValue)
		}
		e += printDirectives(d.Directives)
		entries[i] = e
	}
	return wrapEntries("(", entries, ")", indent)
}

func printUnionTypeDefinition(u *ast.UnionTypeDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(u.Description))
	b.WriteString(extendPrefix(u.IsExtension))
	b.WriteString("union ")
	b.WriteString(u.Name.Value)
	b.WriteString(printDirectives(u.Directives))
	if len(u.Types) > 0 {
		names := make([]string, len(u.Types))
		for i, n := range u.Types {
			names[i] = n.Value
		}
		b.WriteString(" = ")
		b.WriteString(strings.Join(names, " | "))
	}
	return b.String()
}

func printEnumTypeDefinition(e *ast.EnumTypeDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(e.Description))
	b.WriteString(extendPrefix(e.IsExtension))
	b.WriteString("enum ")
	b.WriteString(e.Name.Value)
	b.WriteString(printDirectives(e.Directives))
	if len(e.Values) == 0 {
		return b.String()
	}
	b.WriteString(" {\n")
	for _, v := range e.Values {
		if v.Description != "" {
			b.WriteString(indentLines(printDescription(v.Description), "  "))
		}
		b.WriteString("  ")
		b.WriteString(v.Name.Value)
		b.WriteString(printDirectives(v.Directives))
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func printInputObjectTypeDefinition(i *ast.InputObjectTypeDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(i.Description))
	b.WriteString(extendPrefix(i.IsExtension))
	b.WriteString("input ")
	b.WriteString(i.Name.Value)
	b.WriteString(printDirectives(i.Directives))
	if len(i.Fields) == 0 {
		return b.String()
	}
	b.WriteString(" {\n")
	for _, f := range i.Fields {
		if f.Description != "" {
			b.WriteString(indentLines(printDescription(f.Description), "  "))
		}
		b.WriteString("  ")
		b.WriteString(f.Name.Value)
		b.WriteString(": ")
		b.WriteString(printType(f.Type))
		if f.DefaultValue != nil {
			b.WriteString(" = ")
			b.WriteString(printValue(f.DefaultValue))
		}
		b.WriteString(printDirectives(f.Directives))
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func printDirectiveDefinition(d *ast.DirectiveDefinition) string {
	var b strings.Builder
	b.WriteString(printDescription(d.Description))
	b.WriteString("directive @")
	b.WriteString(d.Name.Value)
	if len(d.Arguments) > 0 {
		b.WriteString(printInputValueDefinitions(d.Arguments, 0))
	}
	if d.Repeatable {
		b.WriteString(" repeatable")
	}
	b.WriteString(" on ")
	b.WriteString(strings.Join(d.Locations, " | "))
	return b.String()
}
