package astvalidation

import (
	"fmt"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astvisitor"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// runTypeInfoPass drives one astvisitor.Walker traversal carrying a
// type-info stack, implementing: fields exist on type, argument names
// exist, argument values of correct type, required arguments supplied,
// directives defined, directives used in valid locations, unique argument
// names, unique input field names, variables of correct type, and the
// default-value half of no-undefined-variables.
func (c *context) runTypeInfoPass() {
	w := astvisitor.NewWalker(48)
	v := &typeInfoVisitor{ctx: c, walker: &w, varTypes: map[string]*schema.TypeRef{}}
	w.RegisterEnterOperationDefinitionVisitor(v)
	w.RegisterEnterVariableDefinitionVisitor(v)
	w.RegisterEnterFieldVisitor(v)
	w.RegisterEnterDirectiveVisitor(v)
	w.Walk(c.document, nil, c.schema, c.report)
}

type typeInfoVisitor struct {
	ctx      *context
	walker   *astvisitor.Walker
	varTypes map[string]*schema.TypeRef
}

func (v *typeInfoVisitor) EnterOperationDefinition(op *ast.OperationDefinition) {
	v.varTypes = map[string]*schema.TypeRef{}
	if v.ctx.schema.RootOperationTypeName(op.Operation) == "" {
		kind := map[ast.OperationType]string{
			ast.OperationTypeQuery:        "query",
			ast.OperationTypeMutation:     "mutation",
			ast.OperationTypeSubscription: "subscription",
		}[op.Operation]
		v.ctx.errorf(fmt.Sprintf("Schema is not configured for %ss.", kind), op)
		v.walker.SkipNode()
	}
}

func (v *typeInfoVisitor) EnterVariableDefinition(vd *ast.VariableDefinition) {
	ref := astTypeToRef(vd.Type)
	name := ref.NamedTypeName()
	t, ok := v.ctx.schema.Types[name]
	switch {
	case !ok:
		v.ctx.errorf(fmt.Sprintf("Unknown type %q.", name), vd)
	case !t.IsInputType():
		v.ctx.errorf(fmt.Sprintf("Variable \"$%s\" cannot be of non-input type %q.", vd.Variable.Value, ref.String()), vd)
	}
	if vd.DefaultValue != nil {
		if vd.DefaultValue.ContainsVariable() {
			v.ctx.errorf(fmt.Sprintf("Variable \"$%s\" default value cannot reference another variable.", vd.Variable.Value), vd)
		} else if ok {
			v.ctx.checkValue(vd.DefaultValue, ref, nil, vd)
		}
	}
	v.varTypes[vd.Variable.Value] = ref
}

func (v *typeInfoVisitor) EnterField(field *ast.Field) {
	if field.Name.Value == "__typename" {
		return
	}
	parentTypeName := v.walker.EnclosingTypeName
	if parentTypeName == "" {
		return
	}
	parent, ok := v.ctx.schema.Types[parentTypeName]
	if !ok {
		return
	}
	fieldDef, ok := parent.Field(field.Name.Value)
	if !ok {
		hint := suggestField(field.Name.Value, parent.FieldOrder)
		v.ctx.errorf(fmt.Sprintf("Cannot query field %q on type %q.%s", field.Name.Value, parentTypeName, hint), field)
		v.walker.SkipNode()
		return
	}
	v.checkArguments(field.Arguments, fieldDef.Arguments, fieldDef.ArgOrder,
		fmt.Sprintf("field %q", field.Name.Value), field)
}

func (v *typeInfoVisitor) EnterDirective(d *ast.Directive) {
	def, ok := v.ctx.schema.Directives[d.Name.Value]
	if !ok {
		v.ctx.errorf(fmt.Sprintf("Unknown directive \"@%s\".", d.Name.Value), d)
		return
	}
	loc := v.directiveLocation()
	if loc != "" && !def.Locations[loc] {
		v.ctx.errorf(fmt.Sprintf("Directive \"@%s\" may not be used on %s.", d.Name.Value, loc), d)
	}
	v.checkArguments(d.Arguments, def.Arguments, def.ArgOrder,
		fmt.Sprintf("directive \"@%s\"", d.Name.Value), d)
}

// directiveLocation maps the innermost open ancestor to the directive
// location string it represents.
func (v *typeInfoVisitor) directiveLocation() string {
	ancestors := v.walker.Ancestors()
	if len(ancestors) == 0 {
		return ""
	}
	switch a := ancestors[len(ancestors)-1].(type) {
	case *ast.OperationDefinition:
		switch a.Operation {
		case ast.OperationTypeMutation:
			return "MUTATION"
		case ast.OperationTypeSubscription:
			return "SUBSCRIPTION"
		default:
			return "QUERY"
		}
	case *ast.Field:
		return "FIELD"
	case *ast.FragmentDefinition:
		return "FRAGMENT_DEFINITION"
	case *ast.FragmentSpread:
		return "FRAGMENT_SPREAD"
	case *ast.InlineFragment:
		return "INLINE_FRAGMENT"
	case *ast.VariableDefinition:
		return "VARIABLE_DEFINITION"
	default:
		return ""
	}
}

// checkArguments implements "argument names exist", "unique argument
// names", "argument values of correct type", and "required arguments
// supplied" for one field or directive usage site.
func (v *typeInfoVisitor) checkArguments(args []*ast.Argument, defs map[string]*schema.InputValue, order []string, onLabel string, onNode ast.Node) {
	seen := map[string]bool{}
	for _, a := range args {
		if seen[a.Name.Value] {
			v.ctx.errorf(fmt.Sprintf("There can be only one argument named %q.", a.Name.Value), a)
			continue
		}
		seen[a.Name.Value] = true
		def, ok := defs[a.Name.Value]
		if !ok {
			v.ctx.errorf(fmt.Sprintf("Unknown argument %q on %s.%s", a.Name.Value, onLabel, suggestField(a.Name.Value, order)), a)
			continue
		}
		if a.Value.ValueKind == ast.ValueKindVariable {
			if declared, ok := v.varTypes[a.Value.VariableName]; ok {
				v.checkVariableUsage(a.Value.VariableName, declared, def.Type, def.DefaultValue != nil, a)
				continue
			}
		}
		v.ctx.checkValue(a.Value, def.Type, v.varTypes, a)
	}
	for _, name := range order {
		def := defs[name]
		if def.Type.IsNonNull() && def.DefaultValue == nil && !seen[name] {
			v.ctx.errorf(fmt.Sprintf("Argument %q of %s is required, but it was not provided.", name, onLabel), onNode)
		}
	}
}

// checkVariableUsage implements the non-null/list half of "variables of
// correct type": a variable may fill a position whose type is equal or
// whose nullability it can satisfy via its own declared non-nullability or
// a default value on the argument definition. A default value on the
// variable's own definition is not taken into account.
func (v *typeInfoVisitor) checkVariableUsage(varName string, declared, expected *schema.TypeRef, hasLocationDefault bool, node ast.Node) {
	if !typeRefCompatible(declared, expected, hasLocationDefault) {
		v.ctx.errorf(fmt.Sprintf("Variable \"$%s\" of type %q used in position expecting type %q.", varName, declared.String(), expected.String()), node)
	}
}

func typeRefCompatible(declared, expected *schema.TypeRef, hasLocationDefault bool) bool {
	if expected.RefKind == schema.TypeRefNonNull {
		if declared.RefKind != schema.TypeRefNonNull {
			if !hasLocationDefault {
				return false
			}
			return typeRefCompatible(declared, expected.OfType, false)
		}
		return typeRefCompatible(declared.OfType, expected.OfType, false)
	}
	if declared.RefKind == schema.TypeRefNonNull {
		return typeRefCompatible(declared.OfType, expected, false)
	}
	if expected.RefKind == schema.TypeRefList {
		if declared.RefKind != schema.TypeRefList {
			return false
		}
		return typeRefCompatible(declared.OfType, expected.OfType, false)
	}
	return declared.RefKind == schema.TypeRefNamed && declared.Name == expected.Name
}

func astTypeToRef(t *ast.Type) *schema.TypeRef {
	if t == nil {
		return nil
	}
	switch t.TypeKind {
	case ast.TypeKindList:
		return &schema.TypeRef{RefKind: schema.TypeRefList, OfType: astTypeToRef(t.OfType)}
	case ast.TypeKindNonNull:
		return &schema.TypeRef{RefKind: schema.TypeRefNonNull, OfType: astTypeToRef(t.OfType)}
	default:
		return &schema.TypeRef{RefKind: schema.TypeRefNamed, Name: t.Name}
	}
}
