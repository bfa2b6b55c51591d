// Package introspection implements spec.md §4.?'s introspection surface:
// converting a built schema.Schema into the `__Schema`/`__Type`/`__Field`/
// `__InputValue`/`__EnumValue`/`__Directive`/`__DirectiveLocation`/
// `__TypeKind` meta-type values that `__schema` and `__type` expose as
// ordinary queryable fields, per the meta-type SDL merged into every schema
// by pkg/schema/builtins.go.
//
// Grounded on graphql-go-tools' addIntrospectionQueryFields/addSchemaField/
// addTypeField (v2/pkg/asttransform/baseschema.go) for which fields get
// injected where, and on
// other_examples/015d72bf_zombiezen-graphql-server__graphql-introspection.go
// / other_examples/c4cbbbec_qktrzrj-graphql__builder-introspection-introspection.go
// for the __Type field-value shape (kind/fields/interfaces/possibleTypes/…).
// Every meta-type value is a plain map[string]any keyed by GraphQL field
// name, matching pkg/execution's convention of resolving a map[string]any
// source by plain key lookup before falling back to struct/method
// reflection (see pkg/execution/resolve.go).
package introspection

import (
	"github.com/graphql-core/gqlcore/pkg/astprinter"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// ArgFunc marks a meta-field value that still needs its `includeDeprecated`
// argument applied. pkg/execution's default resolver recognizes this type
// on a map[string]any source and calls it with the coerced argument before
// completing the value; every other map entry is used as a plain value.
type ArgFunc func(includeDeprecated bool) any

// SchemaValue builds the `__Schema` value for sch.
func SchemaValue(sch *schema.Schema) map[string]any {
	types := make([]any, 0, len(sch.TypeOrder))
	for _, name := range sch.TypeOrder {
		types = append(types, TypeValue(sch, sch.Types[name]))
	}
	directives := make([]any, 0, len(sch.Directives))
	for _, d := range sortedDirectiveNames(sch) {
		directives = append(directives, DirectiveValue(sch, sch.Directives[d]))
	}
	v := map[string]any{
		"description": nilIfEmpty(sch.Description),
		"types":       types,
		"directives":  directives,
	}
	if sch.QueryTypeName != "" {
		v["queryType"] = TypeValue(sch, sch.Types[sch.QueryTypeName])
	} else {
		v["queryType"] = nil
	}
	if sch.MutationTypeName != "" {
		v["mutationType"] = TypeValue(sch, sch.Types[sch.MutationTypeName])
	} else {
		v["mutationType"] = nil
	}
	if sch.SubscriptionTypeName != "" {
		v["subscriptionType"] = TypeValue(sch, sch.Types[sch.SubscriptionTypeName])
	} else {
		v["subscriptionType"] = nil
	}
	return v
}

// TypeByName builds the `__type(name:)` value, or nil if absent — the
// field itself is nullable per the merged __Type schema.
func TypeByName(sch *schema.Schema, name string) any {
	t, ok := sch.Types[name]
	if !ok {
		return nil
	}
	return TypeValue(sch, t)
}

// TypeValue builds the `__Type` value for a named schema type.
func TypeValue(sch *schema.Schema, t *schema.Type) map[string]any {
	return map[string]any{
		"kind":        typeKindName(t.TypeKind),
		"name":        nilIfEmpty(t.Name),
		"description": nilIfEmpty(t.Description),
		"fields": ArgFunc(func(includeDeprecated bool) any {
			return fieldsValue(sch, t, includeDeprecated)
		}),
		"interfaces":    interfacesValue(sch, t),
		"possibleTypes": possibleTypesValue(sch, t),
		"enumValues": ArgFunc(func(includeDeprecated bool) any {
			return enumValuesValue(t, includeDeprecated)
		}),
		"inputFields": ArgFunc(func(includeDeprecated bool) any {
			return inputFieldsValue(sch, t, includeDeprecated)
		}),
		"ofType":         nil,
		"specifiedByURL": nil,
	}
}

// TypeRefValue builds the `__Type` value for a (possibly wrapped) type
// reference, following List/NonNull `ofType` chains down to a named type.
func TypeRefValue(sch *schema.Schema, ref *schema.TypeRef) map[string]any {
	switch ref.RefKind {
	case schema.TypeRefList:
		return map[string]any{
			"kind": "LIST", "name": nil, "description": nil,
			"fields": nilFieldsFunc, "interfaces": nil, "possibleTypes": nil,
			"enumValues": nilFieldsFunc, "inputFields": nilFieldsFunc,
			"ofType": TypeRefValue(sch, ref.OfType), "specifiedByURL": nil,
		}
	case schema.TypeRefNonNull:
		return map[string]any{
			"kind": "NON_NULL", "name": nil, "description": nil,
			"fields": nilFieldsFunc, "interfaces": nil, "possibleTypes": nil,
			"enumValues": nilFieldsFunc, "inputFields": nilFieldsFunc,
			"ofType": TypeRefValue(sch, ref.OfType), "specifiedByURL": nil,
		}
	default:
		return TypeValue(sch, sch.Types[ref.Name])
	}
}

var nilFieldsFunc = ArgFunc(func(includeDeprecated bool) any { return nil })

func fieldsValue(sch *schema.Schema, t *schema.Type, includeDeprecated bool) any {
	if !t.IsComposite() || t.TypeKind == schema.KindUnion {
		return nil
	}
	out := make([]any, 0, len(t.FieldOrder))
	for _, name := range t.FieldOrder {
		f := t.Fields[name]
		if f.Deprecated && !includeDeprecated {
			continue
		}
		out = append(out, FieldValue(sch, f))
	}
	return out
}

// FieldValue builds the `__Field` value for f.
func FieldValue(sch *schema.Schema, f *schema.Field) map[string]any {
	args := make([]any, 0, len(f.ArgOrder))
	for _, name := range f.ArgOrder {
		args = append(args, InputValueValue(sch, f.Arguments[name]))
	}
	return map[string]any{
		"name":              f.Name,
		"description":       nilIfEmpty(f.Description),
		"args":              args,
		"type":              TypeRefValue(sch, f.Type),
		"isDeprecated":      f.Deprecated,
		"deprecationReason": nilIfEmpty(f.DeprecationReason),
	}
}

// InputValueValue builds the `__InputValue` value for iv.
func InputValueValue(sch *schema.Schema, iv *schema.InputValue) map[string]any {
	var defaultValue any
	if iv.DefaultValue != nil {
		defaultValue = astprinter.PrintValue(iv.DefaultValue)
	}
	return map[string]any{
		"name":              iv.Name,
		"description":       nilIfEmpty(iv.Description),
		"type":              TypeRefValue(sch, iv.Type),
		"defaultValue":      defaultValue,
		"isDeprecated":      iv.Deprecated,
		"deprecationReason": nilIfEmpty(iv.DeprecationReason),
	}
}

func inputFieldsValue(sch *schema.Schema, t *schema.Type, includeDeprecated bool) any {
	if t.TypeKind != schema.KindInputObject {
		return nil
	}
	out := make([]any, 0, len(t.InputFieldOrder))
	for _, name := range t.InputFieldOrder {
		iv := t.InputFields[name]
		if iv.Deprecated && !includeDeprecated {
			continue
		}
		out = append(out, InputValueValue(sch, iv))
	}
	return out
}

func enumValuesValue(t *schema.Type, includeDeprecated bool) any {
	if t.TypeKind != schema.KindEnum {
		return nil
	}
	out := make([]any, 0, len(t.EnumValueOrder))
	for _, name := range t.EnumValueOrder {
		ev := t.EnumValues[name]
		if ev.Deprecated && !includeDeprecated {
			continue
		}
		out = append(out, map[string]any{
			"name":              ev.Name,
			"description":       nilIfEmpty(ev.Description),
			"isDeprecated":      ev.Deprecated,
			"deprecationReason": nilIfEmpty(ev.DeprecationReason),
		})
	}
	return out
}

func interfacesValue(sch *schema.Schema, t *schema.Type) any {
	if t.TypeKind != schema.KindObject && t.TypeKind != schema.KindInterface {
		return nil
	}
	out := make([]any, 0, len(t.Interfaces))
	for _, name := range t.Interfaces {
		if it, ok := sch.Types[name]; ok {
			out = append(out, TypeValue(sch, it))
		}
	}
	return out
}

func possibleTypesValue(sch *schema.Schema, t *schema.Type) any {
	if t.TypeKind != schema.KindInterface && t.TypeKind != schema.KindUnion {
		return nil
	}
	out := make([]any, 0, len(t.PossibleTypes))
	for _, name := range t.PossibleTypes {
		if pt, ok := sch.Types[name]; ok {
			out = append(out, TypeValue(sch, pt))
		}
	}
	return out
}

// DirectiveValue builds the `__Directive` value for d.
func DirectiveValue(sch *schema.Schema, d *schema.Directive) map[string]any {
	args := make([]any, 0, len(d.ArgOrder))
	for _, name := range d.ArgOrder {
		args = append(args, InputValueValue(sch, d.Arguments[name]))
	}
	locations := make([]any, 0, len(d.Locations))
	for _, loc := range sortedLocations(d.Locations) {
		locations = append(locations, loc)
	}
	return map[string]any{
		"name":         d.Name,
		"description":  nilIfEmpty(d.Description),
		"locations":    locations,
		"args":         args,
		"isRepeatable": d.Repeatable,
	}
}

func typeKindName(k schema.TypeKind) string {
	switch k {
	case schema.KindScalar:
		return "SCALAR"
	case schema.KindObject:
		return "OBJECT"
	case schema.KindInterface:
		return "INTERFACE"
	case schema.KindUnion:
		return "UNION"
	case schema.KindEnum:
		return "ENUM"
	case schema.KindInputObject:
		return "INPUT_OBJECT"
	default:
		return "SCALAR"
	}
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func sortedDirectiveNames(sch *schema.Schema) []string {
	names := make([]string, 0, len(sch.Directives))
	for name := range sch.Directives {
		names = append(names, name)
	}
	insertionSort(names)
	return names
}

func sortedLocations(locations map[string]bool) []string {
	names := make([]string, 0, len(locations))
	for name := range locations {
		names = append(names, name)
	}
	insertionSort(names)
	return names
}

// insertionSort avoids pulling in sort.Strings for what's always a tiny
// slice (directive count, location count per directive).
func insertionSort(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
