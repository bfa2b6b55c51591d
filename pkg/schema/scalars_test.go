package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

func TestIntCoercer_ParseValueRejectsNonIntLiteral(t *testing.T) {
	_, err := intCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindString, StringValue: "1"}, nil)
	assert.Error(t, err)
}

func TestIntCoercer_ParseValueAcceptsIntLiteral(t *testing.T) {
	v, err := intCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindInt, Raw: "42"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestIntCoercer_SerializeAcceptsFloat64FromJSON(t *testing.T) {
	v, err := intCoercer{}.Serialize(float64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFloatCoercer_ParseValueAcceptsIntLiteral(t *testing.T) {
	v, err := floatCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindInt, Raw: "3"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestStringCoercer_SerializeRejectsNonString(t *testing.T) {
	_, err := stringCoercer{}.Serialize(123)
	assert.Error(t, err)
}

func TestIDCoercer_ParseValueAcceptsIntOrStringLiteral(t *testing.T) {
	v, err := idCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindInt, Raw: "7"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	v, err = idCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindString, StringValue: "abc"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestIDCoercer_SerializeFormatsIntAsString(t *testing.T) {
	v, err := idCoercer{}.Serialize(42)
	require.NoError(t, err)
	assert.Equal(t, "42", v)
}

func TestDurationCoercer_ParseValueParsesISO8601(t *testing.T) {
	v, err := durationCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindString, StringValue: "PT1H30M"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, v)
}

func TestDurationCoercer_ParseValueRejectsMalformedText(t *testing.T) {
	_, err := durationCoercer{}.ParseValue(&ast.Value{ValueKind: ast.ValueKindString, StringValue: "not-a-duration"}, nil)
	assert.Error(t, err)
}

func TestDurationCoercer_SerializeRejectsMalformedText(t *testing.T) {
	_, err := durationCoercer{}.Serialize("not-a-duration")
	assert.Error(t, err)
}

func TestDurationCoercer_SerializeAcceptsValidISO8601Text(t *testing.T) {
	v, err := durationCoercer{}.Serialize("PT1H30M")
	require.NoError(t, err)
	assert.Equal(t, "PT1H30M", v)
}
