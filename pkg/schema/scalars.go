package schema

import (
	"fmt"
	"strconv"

	"github.com/sosodev/duration"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

// scalarCoercer resolves the ScalarCoercer for a named scalar: a
// caller-supplied override first, then a built-in, then nil for an
// uninterpreted custom scalar (pkg/execution passes such values through
// unchanged).
func (b *builder) scalarCoercer(name string) ScalarCoercer {
	if c, ok := b.cfg.ScalarCoercers[name]; ok {
		return c
	}
	switch name {
	case "Int":
		return intCoercer{}
	case "Float":
		return floatCoercer{}
	case "String":
		return stringCoercer{}
	case "Boolean":
		return booleanCoercer{}
	case "ID":
		return idCoercer{}
	case "Duration":
		return durationCoercer{}
	default:
		return nil
	}
}

type intCoercer struct{}

func (intCoercer) ParseValue(v *ast.Value, variables map[string]any) (any, error) {
	if v.ValueKind != ast.ValueKindInt {
		return nil, fmt.Errorf("Int cannot represent non-integer value: %s", v.Raw)
	}
	n, err := strconv.ParseInt(v.Raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("Int cannot represent non 32-bit signed integer value: %s", v.Raw)
	}
	return int(n), nil
}

func (intCoercer) Serialize(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return nil, fmt.Errorf("Int cannot represent value: %v", v)
	}
}

type floatCoercer struct{}

func (floatCoercer) ParseValue(v *ast.Value, variables map[string]any) (any, error) {
	if v.ValueKind != ast.ValueKindInt && v.ValueKind != ast.ValueKindFloat {
		return nil, fmt.Errorf("Float cannot represent non-numeric value: %s", v.Raw)
	}
	f, err := strconv.ParseFloat(v.Raw, 64)
	if err != nil {
		return nil, fmt.Errorf("Float cannot represent non-numeric value: %s", v.Raw)
	}
	return f, nil
}

func (floatCoercer) Serialize(v any) (any, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return nil, fmt.Errorf("Float cannot represent value: %v", v)
	}
}

type stringCoercer struct{}

func (stringCoercer) ParseValue(v *ast.Value, variables map[string]any) (any, error) {
	if v.ValueKind != ast.ValueKindString {
		return nil, fmt.Errorf("String cannot represent a non-string value: %s", v.Raw)
	}
	return v.StringValue, nil
}

func (stringCoercer) Serialize(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("String cannot represent a non-string value: %v", v)
	}
	return s, nil
}

type booleanCoercer struct{}

func (booleanCoercer) ParseValue(v *ast.Value, variables map[string]any) (any, error) {
	if v.ValueKind != ast.ValueKindBoolean {
		return nil, fmt.Errorf("Boolean cannot represent a non-boolean value: %s", v.Raw)
	}
	return v.BooleanValue, nil
}

func (booleanCoercer) Serialize(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("Boolean cannot represent a non-boolean value: %v", v)
	}
	return b, nil
}

type idCoercer struct{}

func (idCoercer) ParseValue(v *ast.Value, variables map[string]any) (any, error) {
	switch v.ValueKind {
	case ast.ValueKindString:
		return v.StringValue, nil
	case ast.ValueKindInt:
		return v.Raw, nil
	default:
		return nil, fmt.Errorf("ID cannot represent value: %s", v.Raw)
	}
}

func (idCoercer) Serialize(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// durationCoercer implements the ISO-8601 `Duration` custom scalar this
// project supplements graphql-go-tools' type system with, backed by
// github.com/sosodev/duration.
type durationCoercer struct{}

func (durationCoercer) ParseValue(v *ast.Value, variables map[string]any) (any, error) {
	if v.ValueKind != ast.ValueKindString {
		return nil, fmt.Errorf("Duration cannot represent a non-string value: %s", v.Raw)
	}
	d, err := duration.Parse(v.StringValue)
	if err != nil {
		return nil, fmt.Errorf("Duration cannot parse %q: %w", v.StringValue, err)
	}
	return d.ToTimeDuration(), nil
}

func (durationCoercer) Serialize(v any) (any, error) {
	switch d := v.(type) {
	case string:
		if _, err := duration.Parse(d); err != nil {
			return nil, fmt.Errorf("Duration cannot represent value %q: %w", d, err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("Duration must be serialized from an ISO-8601 string, got: %v", v)
	}
}
