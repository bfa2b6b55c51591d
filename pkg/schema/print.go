package schema

import (
	"sort"
	"strings"

	"github.com/graphql-core/gqlcore/pkg/astprinter"
)

// PrintSchema renders sch back to SDL text, skipping the built-in scalars,
// introspection meta-types, and built-in directives that Build merges in —
// mirroring graphql-js's printSchema, which prints only what a user's own
// SDL contributed. Round-tripping PrintSchema(BuildSchema(s)) through
// BuildSchema again yields a schema equal in type map and directives to the
// original (spec.md §8).
func PrintSchema(sch *Schema) string {
	var b strings.Builder
	if block := printSchemaBlock(sch); block != "" {
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	for _, name := range sch.TypeOrder {
		if sch.builtinTypeNames[name] {
			continue
		}
		b.WriteString(printType(sch.Types[name]))
		b.WriteString("\n\n")
	}
	names := make([]string, 0, len(sch.Directives))
	for name := range sch.Directives {
		if sch.builtinDirectiveNames[name] {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString(printDirectiveDef(sch.Directives[name]))
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String()) + "\n"
}

// printSchemaBlock emits an explicit `schema { ... }` block only when the
// root type names deviate from the Query/Mutation/Subscription default, so
// the common case round-trips to the shorter, more idiomatic SDL form.
func printSchemaBlock(sch *Schema) string {
	needed := sch.QueryTypeName != "" && sch.QueryTypeName != "Query" ||
		sch.MutationTypeName != "" && sch.MutationTypeName != "Mutation" ||
		sch.SubscriptionTypeName != "" && sch.SubscriptionTypeName != "Subscription"
	if !needed {
		return ""
	}
	var b strings.Builder
	b.WriteString("schema {\n")
	if sch.QueryTypeName != "" {
		b.WriteString("  query: " + sch.QueryTypeName + "\n")
	}
	if sch.MutationTypeName != "" {
		b.WriteString("  mutation: " + sch.MutationTypeName + "\n")
	}
	if sch.SubscriptionTypeName != "" {
		b.WriteString("  subscription: " + sch.SubscriptionTypeName + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func printType(t *Type) string {
	switch t.TypeKind {
	case KindScalar:
		return printDesc(t.Description) + "scalar " + t.Name + printAppliedDirectives(t.Directives)
	case KindObject:
		return printDesc(t.Description) + "type " + t.Name + printImplements(t.Interfaces) +
			printAppliedDirectives(t.Directives) + printFieldsBlock(t)
	case KindInterface:
		return printDesc(t.Description) + "interface " + t.Name + printImplements(t.Interfaces) +
			printAppliedDirectives(t.Directives) + printFieldsBlock(t)
	case KindUnion:
		out := printDesc(t.Description) + "union " + t.Name + printAppliedDirectives(t.Directives)
		if len(t.PossibleTypes) > 0 {
			out += " = " + strings.Join(t.PossibleTypes, " | ")
		}
		return out
	case KindEnum:
		return printDesc(t.Description) + "enum " + t.Name + printAppliedDirectives(t.Directives) + printEnumValuesBlock(t)
	case KindInputObject:
		return printDesc(t.Description) + "input " + t.Name + printAppliedDirectives(t.Directives) + printInputFieldsBlock(t)
	default:
		return ""
	}
}

func printDesc(desc string) string {
	if desc == "" {
		return ""
	}
	if strings.Contains(desc, "\n") {
		return `"""` + "\n" + desc + "\n" + `"""` + "\n"
	}
	return `"` + desc + `"` + "\n"
}

func printImplements(interfaces []string) string {
	if len(interfaces) == 0 {
		return ""
	}
	return " implements " + strings.Join(interfaces, " & ")
}

func printFieldsBlock(t *Type) string {
	if len(t.FieldOrder) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" {\n")
	for _, name := range t.FieldOrder {
		if strings.HasPrefix(name, "__") {
			continue // introspection meta-fields injected by Build, not user SDL
		}
		f := t.Fields[name]
		if f.Description != "" {
			b.WriteString(indent(printDesc(f.Description)))
		}
		b.WriteString("  " + f.Name + printArgsBlock(f.Arguments, f.ArgOrder) + ": " + f.Type.String())
		b.WriteString(printDeprecated(f.Deprecated, f.DeprecationReason))
		b.WriteString(printAppliedDirectives(f.Directives))
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}

func printArgsBlock(args map[string]*InputValue, order []string) string {
	if len(order) == 0 {
		return ""
	}
	entries := make([]string, len(order))
	for i, name := range order {
		entries[i] = printInputValue(args[name])
	}
	return "(" + strings.Join(entries, ", ") + ")"
}

func printInputValue(iv *InputValue) string {
	out := iv.Name + ": " + iv.Type.String()
	if iv.DefaultValue != nil {
		out += " = " + astprinter.PrintValue(iv.DefaultValue)
	}
	out += printDeprecated(iv.Deprecated, iv.DeprecationReason)
	out += printAppliedDirectives(iv.Directives)
	return out
}

func printEnumValuesBlock(t *Type) string {
	if len(t.EnumValueOrder) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" {\n")
	for _, name := range t.EnumValueOrder {
		v := t.EnumValues[name]
		if v.Description != "" {
			b.WriteString(indent(printDesc(v.Description)))
		}
		b.WriteString("  " + v.Name + printDeprecated(v.Deprecated, v.DeprecationReason) + printAppliedDirectives(v.Directives) + "\n")
	}
	b.WriteByte('}')
	return b.String()
}

func printInputFieldsBlock(t *Type) string {
	if len(t.InputFieldOrder) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" {\n")
	for _, name := range t.InputFieldOrder {
		f := t.InputFields[name]
		if f.Description != "" {
			b.WriteString(indent(printDesc(f.Description)))
		}
		b.WriteString("  " + printInputValue(f) + "\n")
	}
	b.WriteByte('}')
	return b.String()
}

func printDeprecated(deprecated bool, reason string) string {
	if !deprecated {
		return ""
	}
	if reason == "" || reason == "No longer supported" {
		return " @deprecated"
	}
	return ` @deprecated(reason: "` + reason + `")`
}

func printAppliedDirectives(directives []*AppliedDirective) string {
	if len(directives) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range directives {
		b.WriteString(" @" + d.Name)
		if len(d.Arguments) > 0 {
			names := make([]string, 0, len(d.Arguments))
			for name := range d.Arguments {
				names = append(names, name)
			}
			sort.Strings(names)
			entries := make([]string, len(names))
			for i, name := range names {
				entries[i] = name + ": " + astprinter.PrintValue(d.Arguments[name])
			}
			b.WriteString("(" + strings.Join(entries, ", ") + ")")
		}
	}
	return b.String()
}

func printDirectiveDef(d *Directive) string {
	out := "directive @" + d.Name
	if len(d.ArgOrder) > 0 {
		entries := make([]string, len(d.ArgOrder))
		for i, name := range d.ArgOrder {
			entries[i] = printInputValue(d.Arguments[name])
		}
		out += "(" + strings.Join(entries, ", ") + ")"
	}
	if d.Repeatable {
		out += " repeatable"
	}
	locs := make([]string, 0, len(d.Locations))
	for loc := range d.Locations {
		locs = append(locs, loc)
	}
	sort.Strings(locs)
	out += " on " + strings.Join(locs, " | ")
	return out
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
