package execution

import (
	"fmt"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// coerceVariables implements spec.md §4.8 step 2: apply defaults, reject
// unknown variables, coerce scalar inputs via the scalar's parse function,
// enforce non-null/list shape, and validate input-object one-of
// constraints.
func coerceVariables(sch *schema.Schema, op *ast.OperationDefinition, raw map[string]any, report *operationreport.Report) map[string]any {
	declared := map[string]*ast.VariableDefinition{}
	for _, vd := range op.VariableDefinitions {
		declared[vd.Variable.Value] = vd
	}
	for name := range raw {
		if _, ok := declared[name]; !ok {
			report.AddExternalError(operationreport.ValidationError(
				fmt.Sprintf("Variable \"$%s\" is not defined by operation.", name)))
		}
	}

	coerced := map[string]any{}
	for name, vd := range declared {
		ref := astTypeToRef(vd.Type)
		rawValue, provided := raw[name]
		switch {
		case provided:
			v, err := coerceRuntimeValue(sch, rawValue, ref)
			if err != nil {
				report.AddExternalError(operationreport.ValidationError(
					fmt.Sprintf("Variable \"$%s\" got invalid value: %s", name, err.Error()), vd))
				continue
			}
			coerced[name] = v
		case vd.DefaultValue != nil:
			v, err := valueFromAST(sch, vd.DefaultValue, ref, nil)
			if err != nil {
				report.AddExternalError(operationreport.ValidationError(
					fmt.Sprintf("Variable \"$%s\" has an invalid default value: %s", name, err.Error()), vd))
				continue
			}
			coerced[name] = v
		case ref.IsNonNull():
			report.AddExternalError(operationreport.ValidationError(
				fmt.Sprintf("Variable \"$%s\" of required type %q was not provided.", name, ref.String()), vd))
		default:
			coerced[name] = nil
		}
	}
	return coerced
}

// coerceRuntimeValue coerces an already-JSON-decoded Go value (string,
// float64, bool, nil, []any, map[string]any) against ref.
func coerceRuntimeValue(sch *schema.Schema, value any, ref *schema.TypeRef) (any, error) {
	if ref.RefKind == schema.TypeRefNonNull {
		if value == nil {
			return nil, fmt.Errorf("expected non-null value for type %q", ref.String())
		}
		return coerceRuntimeValue(sch, value, ref.OfType)
	}
	if value == nil {
		return nil, nil
	}
	if ref.RefKind == schema.TypeRefList {
		list, ok := value.([]any)
		if !ok {
			return coerceRuntimeValue(sch, value, ref.OfType)
		}
		out := make([]any, len(list))
		for i, e := range list {
			v, err := coerceRuntimeValue(sch, e, ref.OfType)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	t, ok := sch.Types[ref.Name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", ref.Name)
	}
	switch t.TypeKind {
	case schema.KindScalar:
		if t.Scalar == nil {
			return value, nil
		}
		return t.Scalar.ParseValue(literalValueFor(value), nil)
	case schema.KindEnum:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("enum %q must be a string", t.Name)
		}
		if _, ok := t.EnumValues[s]; !ok {
			return nil, fmt.Errorf("value %q is not a valid %q value", s, t.Name)
		}
		return s, nil
	case schema.KindInputObject:
		m, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("input object %q must be an object", t.Name)
		}
		out := map[string]any{}
		for _, fname := range t.InputFieldOrder {
			fdef := t.InputFields[fname]
			fv, provided := m[fname]
			switch {
			case provided:
				cv, err := coerceRuntimeValue(sch, fv, fdef.Type)
				if err != nil {
					return nil, fmt.Errorf("field %q: %w", fname, err)
				}
				out[fname] = cv
			case fdef.DefaultValue != nil:
				cv, err := valueFromAST(sch, fdef.DefaultValue, fdef.Type, nil)
				if err != nil {
					return nil, err
				}
				out[fname] = cv
			case fdef.Type.IsNonNull():
				return nil, fmt.Errorf("field %q of required type %q was not provided", fname, fdef.Type.String())
			}
		}
		if t.IsOneOf && len(out) != 1 {
			return nil, fmt.Errorf("exactly one key must be specified for oneOf type %q", t.Name)
		}
		return out, nil
	default:
		return value, nil
	}
}

// literalValueFor adapts a JSON-decoded Go value into the ast.Value shape
// ScalarCoercer.ParseValue expects, since custom scalars are written
// against literal syntax nodes (spec.md §3 Schema's ScalarCoercer).
func literalValueFor(value any) *ast.Value {
	switch v := value.(type) {
	case string:
		return &ast.Value{ValueKind: ast.ValueKindString, StringValue: v}
	case bool:
		return &ast.Value{ValueKind: ast.ValueKindBoolean, BooleanValue: v}
	case float64:
		if v == float64(int64(v)) {
			return &ast.Value{ValueKind: ast.ValueKindInt, Raw: fmt.Sprintf("%d", int64(v))}
		}
		return &ast.Value{ValueKind: ast.ValueKindFloat, Raw: fmt.Sprintf("%v", v)}
	case int:
		return &ast.Value{ValueKind: ast.ValueKindInt, Raw: fmt.Sprintf("%d", v)}
	default:
		return &ast.Value{ValueKind: ast.ValueKindString, StringValue: fmt.Sprintf("%v", v)}
	}
}

// valueFromAST evaluates a value literal into a runtime Go value. When
// variables is non-nil and v references a variable, the already-coerced
// variable value is substituted (used while evaluating argument literals
// during execution); default values are always constant (spec.md §4.3), so
// callers evaluating a default value pass a nil variables map.
func valueFromAST(sch *schema.Schema, v *ast.Value, ref *schema.TypeRef, variables map[string]any) (any, error) {
	if v.ValueKind == ast.ValueKindVariable {
		if variables == nil {
			return nil, fmt.Errorf("variable $%s is not allowed here", v.VariableName)
		}
		return variables[v.VariableName], nil
	}
	if v.ValueKind == ast.ValueKindNull {
		return nil, nil
	}
	if ref.RefKind == schema.TypeRefNonNull {
		return valueFromAST(sch, v, ref.OfType, variables)
	}
	if ref.RefKind == schema.TypeRefList {
		if v.ValueKind != ast.ValueKindList {
			return valueFromAST(sch, v, ref.OfType, variables)
		}
		out := make([]any, len(v.ListValues))
		for i, e := range v.ListValues {
			cv, err := valueFromAST(sch, e, ref.OfType, variables)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	}
	t, ok := sch.Types[ref.Name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", ref.Name)
	}
	switch t.TypeKind {
	case schema.KindScalar:
		if t.Scalar == nil {
			return rawLiteral(v), nil
		}
		return t.Scalar.ParseValue(v, variables)
	case schema.KindEnum:
		return v.StringValue, nil
	case schema.KindInputObject:
		out := map[string]any{}
		for _, f := range v.ObjectFields {
			fdef, ok := t.InputFields[f.Name.Value]
			if !ok {
				continue
			}
			cv, err := valueFromAST(sch, f.Value, fdef.Type, variables)
			if err != nil {
				return nil, err
			}
			out[f.Name.Value] = cv
		}
		return out, nil
	default:
		return rawLiteral(v), nil
	}
}

func rawLiteral(v *ast.Value) any {
	switch v.ValueKind {
	case ast.ValueKindString, ast.ValueKindEnum:
		return v.StringValue
	case ast.ValueKindBoolean:
		return v.BooleanValue
	case ast.ValueKindInt, ast.ValueKindFloat:
		return v.Raw
	default:
		return nil
	}
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
