package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

func mustParseOperation(t *testing.T, query string) *ast.OperationDefinition {
	t.Helper()
	doc := mustParse(t, query)
	op := doc.OperationByName("")
	require.NotNil(t, op)
	return op
}

func TestCoerceVariables_AppliesDefaultValue(t *testing.T) {
	sch := mustBuildSchema(t)
	op := mustParseOperation(t, `query($v: String = "fallback") { echo(value: $v) }`)
	report := &operationreport.Report{}

	coerced := coerceVariables(sch, op, nil, report)
	require.False(t, report.HasErrors())
	assert.Equal(t, "fallback", coerced["v"])
}

func TestCoerceVariables_RejectsUnknownVariable(t *testing.T) {
	sch := mustBuildSchema(t)
	op := mustParseOperation(t, `query { hello }`)
	report := &operationreport.Report{}

	coerceVariables(sch, op, map[string]any{"bogus": "x"}, report)
	require.True(t, report.HasErrors())
}

func TestCoerceVariables_RejectsMissingRequiredVariable(t *testing.T) {
	sch := mustBuildSchema(t)
	op := mustParseOperation(t, `query($v: String!) { echo(value: $v) }`)
	report := &operationreport.Report{}

	coerceVariables(sch, op, nil, report)
	require.True(t, report.HasErrors())
}

func TestCoerceVariables_ProvidedValueOverridesDefault(t *testing.T) {
	sch := mustBuildSchema(t)
	op := mustParseOperation(t, `query($v: String = "fallback") { echo(value: $v) }`)
	report := &operationreport.Report{}

	coerced := coerceVariables(sch, op, map[string]any{"v": "provided"}, report)
	require.False(t, report.HasErrors())
	assert.Equal(t, "provided", coerced["v"])
}

func TestCoerceVariables_NullableVariableWithoutDefaultIsNil(t *testing.T) {
	sch := mustBuildSchema(t)
	op := mustParseOperation(t, `query($v: String) { hello }`)
	report := &operationreport.Report{}

	coerced := coerceVariables(sch, op, nil, report)
	require.False(t, report.HasErrors())
	assert.Nil(t, coerced["v"])
}

func TestCoerceVariables_CoercesListOfScalar(t *testing.T) {
	sch := mustBuildSchema(t)
	op := mustParseOperation(t, `query($names: [String!]) { hello }`)
	report := &operationreport.Report{}

	coerced := coerceVariables(sch, op, map[string]any{"names": []any{"a", "b"}}, report)
	require.False(t, report.HasErrors())
	assert.Equal(t, []any{"a", "b"}, coerced["names"])
}
