// Package schema implements the Schema Builder of spec.md §4.6: folding a
// type-system Document (merged with the always-present built-in scalars,
// directives, and introspection meta-types) into a validated, read-only
// Schema.
//
// Grounded on graphql-go-tools' asttransform.MergeDefinitionWithBaseSchema /
// addSchemaDefinition / addMissingRootOperationTypeDefinitions /
// addIntrospectionQueryFields (v2/pkg/asttransform/baseschema.go): same
// merge-then-patch structure, reworked for a name-keyed Go map schema
// instead of graphql-go-tools' ref/arena-indexed ast.Document. Input-object
// cycle detection (DFS + on-stack set) is grounded on
// other_examples/1bc3b823_anujdecoder-Jaal__schemabuilder-input_object.go.
package schema

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

// Config tunes the build beyond bare SDL folding.
type Config struct {
	// AssumeValidSDL skips structural-error accumulation for speed once an
	// SDL document is already known-good (e.g. re-built at every hot
	// reload from a source that was validated at deploy time).
	AssumeValidSDL bool
	// ScalarCoercers supplies ParseValue/Serialize behavior for custom
	// scalars by name; built-ins and Duration are always registered.
	ScalarCoercers map[string]ScalarCoercer
}

// Build folds doc (already-parsed user SDL) into a Schema, per spec.md
// §4.6 steps 1–6.
func Build(doc *ast.Document, cfg Config) (*Schema, *operationreport.Report) {
	report := &operationreport.Report{}
	builtinDoc, builtinReport := astparser.Parse(ast.NewSource([]byte(builtinSDL), "builtin"), astparser.Options{})
	if builtinReport.HasErrors() {
		report.AddInternalError(fmt.Errorf("builtin schema text failed to parse: %s", builtinReport.Error()))
		return nil, report
	}

	defs := mergeDefinitions(builtinDoc.Definitions, doc.Definitions)

	b := &builder{
		schema: &Schema{
			Types:                 map[string]*Type{},
			Directives:            map[string]*Directive{},
			builtinTypeNames:      map[string]bool{},
			builtinDirectiveNames: map[string]bool{},
		},
		cfg:    cfg,
		report: report,
	}
	for _, def := range builtinDoc.Definitions {
		if name, _, ok := typeIdentity(def); ok {
			b.schema.builtinTypeNames[name] = true
		}
		if dd, ok := def.(*ast.DirectiveDefinition); ok {
			b.schema.builtinDirectiveNames[dd.Name.Value] = true
		}
	}
	b.collectDirectives(defs)
	b.collectTypes(defs)
	if report.HasErrors() && !cfg.AssumeValidSDL {
		return nil, report
	}
	b.materializeTypes(defs)
	b.resolveRootOperationTypes(defs)
	b.injectIntrospectionFields()
	if !cfg.AssumeValidSDL {
		b.validateInvariants()
	}
	if report.HasErrors() {
		return nil, report
	}
	return b.schema, report
}

// mergeDefinitions concatenates the built-in and user definitions; user
// `extend` definitions naturally apply against built-in or user base
// definitions since both are visible by the time materializeTypes runs.
func mergeDefinitions(builtin, user []ast.Definition) []ast.Definition {
	out := make([]ast.Definition, 0, len(builtin)+len(user))
	out = append(out, builtin...)
	out = append(out, user...)
	return out
}

type builder struct {
	schema *Schema
	cfg    Config
	report *operationreport.Report
	err    error // accumulated via multierr for non-fatal structural issues
}

func (b *builder) fatal(format string, args ...any) {
	b.report.AddExternalError(operationreport.ValidationError(fmt.Sprintf(format, args...)))
}

// collectDirectives gathers DirectiveDefinitions, step 1 of the build.
func (b *builder) collectDirectives(defs []ast.Definition) {
	for _, def := range defs {
		dd, ok := def.(*ast.DirectiveDefinition)
		if !ok {
			continue
		}
		if _, exists := b.schema.Directives[dd.Name.Value]; exists {
			b.fatal("There can be only one directive named %q.", dd.Name.Value)
			continue
		}
		d := &Directive{
			Name:        dd.Name.Value,
			Description: dd.Description,
			Arguments:   map[string]*InputValue{},
			Repeatable:  dd.Repeatable,
			Locations:   map[string]bool{},
		}
		for _, loc := range dd.Locations {
			d.Locations[loc] = true
		}
		for _, a := range dd.Arguments {
			iv := b.inputValue(a)
			d.Arguments[iv.Name] = iv
			d.ArgOrder = append(d.ArgOrder, iv.Name)
		}
		b.schema.Directives[d.Name] = d
	}
}

// collectTypes declares a stub Type per named type definition (step 2),
// deferring field/argument resolution (which may forward-reference a type
// not yet declared) to materializeTypes.
func (b *builder) collectTypes(defs []ast.Definition) {
	for _, def := range defs {
		name, kind, ok := typeIdentity(def)
		if !ok {
			continue
		}
		if ext := isExtension(def); ext {
			continue
		}
		if _, exists := b.schema.Types[name]; exists {
			b.fatal("There can be only one type named %q.", name)
			continue
		}
		b.schema.Types[name] = &Type{TypeKind: kind, Name: name}
		b.schema.TypeOrder = append(b.schema.TypeOrder, name)
	}
}

func typeIdentity(def ast.Definition) (name string, kind TypeKind, ok bool) {
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		return d.Name.Value, KindScalar, true
	case *ast.ObjectTypeDefinition:
		return d.Name.Value, KindObject, true
	case *ast.InterfaceTypeDefinition:
		return d.Name.Value, KindInterface, true
	case *ast.UnionTypeDefinition:
		return d.Name.Value, KindUnion, true
	case *ast.EnumTypeDefinition:
		return d.Name.Value, KindEnum, true
	case *ast.InputObjectTypeDefinition:
		return d.Name.Value, KindInputObject, true
	default:
		return "", 0, false
	}
}

func isExtension(def ast.Definition) bool {
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		return d.IsExtension
	case *ast.ObjectTypeDefinition:
		return d.IsExtension
	case *ast.InterfaceTypeDefinition:
		return d.IsExtension
	case *ast.UnionTypeDefinition:
		return d.IsExtension
	case *ast.EnumTypeDefinition:
		return d.IsExtension
	case *ast.InputObjectTypeDefinition:
		return d.IsExtension
	default:
		return false
	}
}

// materializeTypes fills in each stub Type's fields/arguments/interfaces/
// members/enum-values/input-fields, merging extension definitions into
// their base type (step 3).
func (b *builder) materializeTypes(defs []ast.Definition) {
	for _, def := range defs {
		switch d := def.(type) {
		case *ast.ScalarTypeDefinition:
			b.materializeScalar(d)
		case *ast.ObjectTypeDefinition:
			b.materializeObject(d)
		case *ast.InterfaceTypeDefinition:
			b.materializeInterface(d)
		case *ast.UnionTypeDefinition:
			b.materializeUnion(d)
		case *ast.EnumTypeDefinition:
			b.materializeEnum(d)
		case *ast.InputObjectTypeDefinition:
			b.materializeInputObject(d)
		}
	}
	// Second pass: populate union possible-types and interface possible-types
	// now that every object type's Interfaces list is complete.
	for _, t := range b.schema.Types {
		if t.TypeKind != KindObject {
			continue
		}
		for _, ifaceName := range t.Interfaces {
			if iface, ok := b.schema.Types[ifaceName]; ok && iface.TypeKind == KindInterface {
				iface.PossibleTypes = append(iface.PossibleTypes, t.Name)
			}
		}
	}
}

func (b *builder) materializeScalar(d *ast.ScalarTypeDefinition) {
	t := b.schema.Types[d.Name.Value]
	if t == nil {
		return
	}
	if d.Description != "" {
		t.Description = d.Description
	}
	t.Scalar = b.scalarCoercer(d.Name.Value)
	t.Directives = collectAppliedDirectives(d.Directives)
}

func (b *builder) materializeObject(d *ast.ObjectTypeDefinition) {
	t := b.schema.Types[d.Name.Value]
	if t == nil {
		return
	}
	if d.Description != "" {
		t.Description = d.Description
	}
	for _, i := range d.Interfaces {
		t.Interfaces = append(t.Interfaces, i.Value)
	}
	t.Directives = collectAppliedDirectives(d.Directives)
	b.addFields(t, d.Fields)
}

func (b *builder) materializeInterface(d *ast.InterfaceTypeDefinition) {
	t := b.schema.Types[d.Name.Value]
	if t == nil {
		return
	}
	if d.Description != "" {
		t.Description = d.Description
	}
	for _, i := range d.Interfaces {
		t.Interfaces = append(t.Interfaces, i.Value)
	}
	t.Directives = collectAppliedDirectives(d.Directives)
	b.addFields(t, d.Fields)
}

func (b *builder) addFields(t *Type, defs []*ast.FieldDefinition) {
	if t.Fields == nil {
		t.Fields = map[string]*Field{}
	}
	for _, fd := range defs {
		if _, exists := t.Fields[fd.Name.Value]; exists {
			b.fatal("Field %q already defined on type %q.", fd.Name.Value, t.Name)
			continue
		}
		f := &Field{
			Name:        fd.Name.Value,
			Description: fd.Description,
			Type:        b.resolveTypeRef(fd.Type),
			Arguments:   map[string]*InputValue{},
		}
		for _, a := range fd.Arguments {
			iv := b.inputValue(a)
			f.Arguments[iv.Name] = iv
			f.ArgOrder = append(f.ArgOrder, iv.Name)
		}
		if dep := directiveArg(fd.Directives, "deprecated", "reason"); dep != nil {
			f.Deprecated = true
			f.DeprecationReason = dep.StringValue
		} else if directivesHave(fd.Directives, "deprecated") {
			f.Deprecated = true
			f.DeprecationReason = "No longer supported"
		}
		f.Directives = collectAppliedDirectives(fd.Directives)
		t.Fields[f.Name] = f
		t.FieldOrder = append(t.FieldOrder, f.Name)
	}
}

func (b *builder) materializeUnion(d *ast.UnionTypeDefinition) {
	t := b.schema.Types[d.Name.Value]
	if t == nil {
		return
	}
	if d.Description != "" {
		t.Description = d.Description
	}
	for _, m := range d.Types {
		t.PossibleTypes = append(t.PossibleTypes, m.Value)
	}
	t.Directives = collectAppliedDirectives(d.Directives)
}

func (b *builder) materializeEnum(d *ast.EnumTypeDefinition) {
	t := b.schema.Types[d.Name.Value]
	if t == nil {
		return
	}
	if d.Description != "" {
		t.Description = d.Description
	}
	if t.EnumValues == nil {
		t.EnumValues = map[string]*EnumValue{}
	}
	t.Directives = collectAppliedDirectives(d.Directives)
	for _, vd := range d.Values {
		ev := &EnumValue{Name: vd.Name.Value, Description: vd.Description}
		if dep := directiveArg(vd.Directives, "deprecated", "reason"); dep != nil {
			ev.Deprecated = true
			ev.DeprecationReason = dep.StringValue
		} else if directivesHave(vd.Directives, "deprecated") {
			ev.Deprecated = true
			ev.DeprecationReason = "No longer supported"
		}
		ev.Directives = collectAppliedDirectives(vd.Directives)
		t.EnumValues[ev.Name] = ev
		t.EnumValueOrder = append(t.EnumValueOrder, ev.Name)
	}
}

func (b *builder) materializeInputObject(d *ast.InputObjectTypeDefinition) {
	t := b.schema.Types[d.Name.Value]
	if t == nil {
		return
	}
	if d.Description != "" {
		t.Description = d.Description
	}
	t.IsOneOf = directivesHave(d.Directives, "oneOf")
	t.Directives = collectAppliedDirectives(d.Directives)
	if t.InputFields == nil {
		t.InputFields = map[string]*InputValue{}
	}
	for _, fd := range d.Fields {
		iv := b.inputValue(fd)
		t.InputFields[iv.Name] = iv
		t.InputFieldOrder = append(t.InputFieldOrder, iv.Name)
	}
}

func (b *builder) inputValue(d *ast.InputValueDefinition) *InputValue {
	iv := &InputValue{
		Name:         d.Name.Value,
		Description:  d.Description,
		Type:         b.resolveTypeRef(d.Type),
		DefaultValue: d.DefaultValue,
	}
	if dep := directiveArg(d.Directives, "deprecated", "reason"); dep != nil {
		iv.Deprecated = true
		iv.DeprecationReason = dep.StringValue
	} else if directivesHave(d.Directives, "deprecated") {
		iv.Deprecated = true
		iv.DeprecationReason = "No longer supported"
	}
	iv.Directives = collectAppliedDirectives(d.Directives)
	return iv
}

func (b *builder) resolveTypeRef(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}
	switch t.TypeKind {
	case ast.TypeKindList:
		return &TypeRef{RefKind: TypeRefList, OfType: b.resolveTypeRef(t.OfType)}
	case ast.TypeKindNonNull:
		return &TypeRef{RefKind: TypeRefNonNull, OfType: b.resolveTypeRef(t.OfType)}
	default:
		return &TypeRef{RefKind: TypeRefNamed, Name: t.Name}
	}
}

// collectAppliedDirectives converts every applied directive except
// @deprecated (already folded into Deprecated/DeprecationReason by the
// callers above, so keeping it here too would print it twice).
func collectAppliedDirectives(directives []*ast.Directive) []*AppliedDirective {
	var out []*AppliedDirective
	for _, d := range directives {
		if d.Name.Value == "deprecated" {
			continue
		}
		ad := &AppliedDirective{Name: d.Name.Value}
		if len(d.Arguments) > 0 {
			ad.Arguments = map[string]*ast.Value{}
			for _, a := range d.Arguments {
				ad.Arguments[a.Name.Value] = a.Value
			}
		}
		out = append(out, ad)
	}
	return out
}

func directivesHave(directives []*ast.Directive, name string) bool {
	for _, d := range directives {
		if d.Name.Value == name {
			return true
		}
	}
	return false
}

func directiveArg(directives []*ast.Directive, directiveName, argName string) *ast.Value {
	for _, d := range directives {
		if d.Name.Value != directiveName {
			continue
		}
		if a := d.Argument(argName); a != nil {
			return a.Value
		}
	}
	return nil
}

// resolveRootOperationTypes implements step 4: use an explicit `schema {}`
// block's mapping, otherwise default to types named Query/Mutation/
// Subscription when present.
func (b *builder) resolveRootOperationTypes(defs []ast.Definition) {
	var schemaDef *ast.SchemaDefinition
	for _, def := range defs {
		if sd, ok := def.(*ast.SchemaDefinition); ok && !sd.IsExtension {
			schemaDef = sd
		}
	}
	if schemaDef != nil {
		b.schema.Description = schemaDef.Description
		b.schema.QueryTypeName = schemaDef.RootOperationType(ast.OperationTypeQuery)
		b.schema.MutationTypeName = schemaDef.RootOperationType(ast.OperationTypeMutation)
		b.schema.SubscriptionTypeName = schemaDef.RootOperationType(ast.OperationTypeSubscription)
		return
	}
	if _, ok := b.schema.Types["Query"]; ok {
		b.schema.QueryTypeName = "Query"
	}
	if _, ok := b.schema.Types["Mutation"]; ok {
		b.schema.MutationTypeName = "Mutation"
	}
	if _, ok := b.schema.Types["Subscription"]; ok {
		b.schema.SubscriptionTypeName = "Subscription"
	}
}

// injectIntrospectionFields adds `__schema` and `__type` onto the query root
// type (`__typename` is answered by the executor and by FieldTypeName), step 5's introspection half (step 5's scalar
// half already ran via collectTypes/materializeScalar against builtinSDL).
func (b *builder) injectIntrospectionFields() {
	if b.schema.QueryTypeName == "" {
		return
	}
	q := b.schema.Types[b.schema.QueryTypeName]
	if q == nil {
		return
	}
	if _, ok := q.Fields["__schema"]; !ok {
		q.Fields["__schema"] = &Field{
			Name: "__schema",
			Type: &TypeRef{RefKind: TypeRefNonNull, OfType: &TypeRef{RefKind: TypeRefNamed, Name: "__Schema"}},
		}
		q.FieldOrder = append(q.FieldOrder, "__schema")
	}
	if _, ok := q.Fields["__type"]; !ok {
		q.Fields["__type"] = &Field{
			Name: "__type",
			Type: &TypeRef{RefKind: TypeRefNamed, Name: "__Type"},
			Arguments: map[string]*InputValue{
				"name": {Name: "name", Type: &TypeRef{RefKind: TypeRefNonNull, OfType: &TypeRef{RefKind: TypeRefNamed, Name: "String"}}},
			},
			ArgOrder: []string{"name"},
		}
		q.FieldOrder = append(q.FieldOrder, "__type")
	}
}

// validateInvariants checks step 6's cross-cutting invariants: exactly one
// query root, referenced types exist, unions contain only object members,
// input-object field graphs are acyclic.
func (b *builder) validateInvariants() {
	if b.schema.QueryTypeName == "" {
		b.fatal("Query root type must be provided.")
	}
	for _, name := range b.schema.TypeOrder {
		t := b.schema.Types[name]
		for _, fname := range t.FieldOrder {
			b.checkTypeRefExists(t.Fields[fname].Type, name, fname)
			for _, aname := range t.Fields[fname].ArgOrder {
				b.checkTypeRefExists(t.Fields[fname].Arguments[aname].Type, name, fname+"."+aname)
			}
		}
		for _, fname := range t.InputFieldOrder {
			b.checkTypeRefExists(t.InputFields[fname].Type, name, fname)
		}
		if t.TypeKind == KindUnion {
			for _, m := range t.PossibleTypes {
				if mt, ok := b.schema.Types[m]; !ok || mt.TypeKind != KindObject {
					b.fatal("Union type %q can only include object types, found %q.", name, m)
				}
			}
		}
	}
	b.checkInputObjectCycles()
}

func (b *builder) checkTypeRefExists(ref *TypeRef, onType, onField string) {
	name := ref.NamedTypeName()
	if _, ok := b.schema.Types[name]; !ok {
		b.fatal("Unknown type %q referenced by %s.%s.", name, onType, onField)
	}
}

// checkInputObjectCycles runs a DFS with a visited set and an on-stack set
// over the non-null-wrapped input-object field graph, per spec.md §3's
// acyclicity invariant.
func (b *builder) checkInputObjectCycles() {
	visited := map[string]bool{}
	onStack := map[string]bool{}
	var visit func(name string) bool
	visit = func(name string) bool {
		if onStack[name] {
			return true
		}
		if visited[name] {
			return false
		}
		visited[name] = true
		onStack[name] = true
		t := b.schema.Types[name]
		if t != nil && t.TypeKind == KindInputObject {
			for _, fname := range t.InputFieldOrder {
				ref := t.InputFields[fname].Type
				if ref.RefKind != TypeRefNonNull {
					continue // nullable fields can break a cycle at runtime
				}
				next := ref.NamedTypeName()
				if nt := b.schema.Types[next]; nt != nil && nt.TypeKind == KindInputObject {
					if visit(next) {
						onStack[name] = false
						return true
					}
				}
			}
		}
		onStack[name] = false
		return false
	}
	for _, name := range b.schema.TypeOrder {
		if t := b.schema.Types[name]; t != nil && t.TypeKind == KindInputObject {
			if visit(name) {
				b.fatal("Input object %q's field graph contains a non-null cycle.", name)
			}
		}
	}
}

// accumulate merges a non-fatal structural error into b.err without
// aborting the remainder of the build. The build itself records its errors
// on the Report through fatal; nothing calls accumulate.
func (b *builder) accumulate(err error) {
	b.err = multierr.Append(b.err, err)
}
