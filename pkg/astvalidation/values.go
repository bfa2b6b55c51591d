package astvalidation

import (
	"fmt"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// checkValue implements "argument values of correct type" for one value
// literal against its expected type, recursing into lists and input
// objects. varTypes, when non-nil, lets a nested Variable reference be
// checked against its declared type; when varTypes is nil, Variable
// references are accepted without a check.
func (c *context) checkValue(value *ast.Value, expected *schema.TypeRef, varTypes map[string]*schema.TypeRef, node ast.Node) {
	if expected == nil || value == nil {
		return
	}
	if value.ValueKind == ast.ValueKindVariable {
		if varTypes == nil {
			return
		}
		declared, ok := varTypes[value.VariableName]
		if !ok {
			c.errorf(fmt.Sprintf("Variable \"$%s\" is not defined.", value.VariableName), node)
			return
		}
		if !typeRefCompatible(declared, expected, false) {
			c.errorf(fmt.Sprintf("Variable \"$%s\" of type %q used in position expecting type %q.", value.VariableName, declared.String(), expected.String()), node)
		}
		return
	}

	if expected.RefKind == schema.TypeRefNonNull {
		if value.ValueKind == ast.ValueKindNull {
			c.errorf(fmt.Sprintf("Expected value of type %q, found null.", expected.String()), node)
			return
		}
		c.checkValue(value, expected.OfType, varTypes, node)
		return
	}

	if value.ValueKind == ast.ValueKindNull {
		return
	}

	if expected.RefKind == schema.TypeRefList {
		if value.ValueKind == ast.ValueKindList {
			for _, e := range value.ListValues {
				c.checkValue(e, expected.OfType, varTypes, node)
			}
			return
		}
		c.checkValue(value, expected.OfType, varTypes, node)
		return
	}

	t, ok := c.schema.Types[expected.Name]
	if !ok {
		return
	}
	switch t.TypeKind {
	case schema.KindScalar:
		c.checkScalarLiteral(value, t.Name, node)
	case schema.KindEnum:
		if value.ValueKind != ast.ValueKindEnum {
			c.errorf(fmt.Sprintf("Expected value of type %q, found %s.", t.Name, describeValue(value)), node)
			return
		}
		if _, ok := t.EnumValues[value.StringValue]; !ok {
			c.errorf(fmt.Sprintf("Value %q does not exist in %q enum.", value.StringValue, t.Name), node)
		}
	case schema.KindInputObject:
		c.checkInputObjectLiteral(value, t, varTypes, node)
	}
}

func (c *context) checkScalarLiteral(value *ast.Value, scalarName string, node ast.Node) {
	switch scalarName {
	case "Int":
		if value.ValueKind != ast.ValueKindInt {
			c.errorf(fmt.Sprintf("Int cannot represent non-integer value %s.", describeValue(value)), node)
		}
	case "Float":
		if value.ValueKind != ast.ValueKindInt && value.ValueKind != ast.ValueKindFloat {
			c.errorf(fmt.Sprintf("Float cannot represent non-numeric value %s.", describeValue(value)), node)
		}
	case "String":
		if value.ValueKind != ast.ValueKindString {
			c.errorf(fmt.Sprintf("String cannot represent a non-string value %s.", describeValue(value)), node)
		}
	case "ID":
		if value.ValueKind != ast.ValueKindString && value.ValueKind != ast.ValueKindInt {
			c.errorf(fmt.Sprintf("ID cannot represent value %s.", describeValue(value)), node)
		}
	case "Boolean":
		if value.ValueKind != ast.ValueKindBoolean {
			c.errorf(fmt.Sprintf("Boolean cannot represent a non-boolean value %s.", describeValue(value)), node)
		}
	}
}

func (c *context) checkInputObjectLiteral(value *ast.Value, t *schema.Type, varTypes map[string]*schema.TypeRef, node ast.Node) {
	if value.ValueKind != ast.ValueKindObject {
		c.errorf(fmt.Sprintf("Expected value of type %q, found %s.", t.Name, describeValue(value)), node)
		return
	}
	seen := map[string]bool{}
	for _, f := range value.ObjectFields {
		if seen[f.Name.Value] {
			c.errorf(fmt.Sprintf("There can be only one input field named %q.", f.Name.Value), node)
			continue
		}
		seen[f.Name.Value] = true
		fieldDef, ok := t.InputFields[f.Name.Value]
		if !ok {
			hint := suggestField(f.Name.Value, t.InputFieldOrder)
			c.errorf(fmt.Sprintf("Field %q is not defined by type %q.%s", f.Name.Value, t.Name, hint), node)
			continue
		}
		c.checkValue(f.Value, fieldDef.Type, varTypes, node)
	}
	for _, name := range t.InputFieldOrder {
		fieldDef := t.InputFields[name]
		if fieldDef.Type.IsNonNull() && fieldDef.DefaultValue == nil && !seen[name] {
			c.errorf(fmt.Sprintf("Field %q of required type %q was not provided.", name, fieldDef.Type.String()), node)
		}
	}
	if t.IsOneOf {
		if len(seen) != 1 {
			c.errorf(fmt.Sprintf("Exactly one key must be specified for oneOf type %q.", t.Name), node)
		}
		for _, f := range value.ObjectFields {
			if f.Value.ValueKind == ast.ValueKindNull {
				c.errorf(fmt.Sprintf("Field %q for oneOf type %q must not be null.", f.Name.Value, t.Name), node)
			}
		}
	}
}

func describeValue(v *ast.Value) string {
	switch v.ValueKind {
	case ast.ValueKindString:
		return fmt.Sprintf("%q", v.StringValue)
	case ast.ValueKindInt, ast.ValueKindFloat:
		return v.Raw
	case ast.ValueKindBoolean:
		return fmt.Sprintf("%v", v.BooleanValue)
	case ast.ValueKindNull:
		return "null"
	case ast.ValueKindEnum:
		return v.StringValue
	case ast.ValueKindList:
		return "a list"
	case ast.ValueKindObject:
		return "an object"
	default:
		return "a value"
	}
}
