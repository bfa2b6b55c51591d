package gqlcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/execution"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

func mustBuildExecSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, report := BuildSchema(ast.NewSource([]byte(testSDL), "schema"), schema.Config{})
	require.False(t, report.HasErrors())
	return sch
}

func TestExecute_ResolvesRegisteredField(t *testing.T) {
	resolvers := execution.NewResolvers()
	resolvers.RegisterField("Query", "hello", func(ctx context.Context, source any, args map[string]any, info execution.Info) (any, error) {
		return "world", nil
	})
	sch := mustBuildExecSchema(t)
	doc, report := Parse(ast.NewSource([]byte(`{ hello }`), "query"), astparser.Options{})
	require.False(t, report.HasErrors())

	result := Execute(context.Background(), sch, doc, ExecuteParams{Resolvers: resolvers})
	require.Empty(t, result.Errors)
	assert.Equal(t, "world", result.Data.Values["hello"])
}

func TestGraphql_ParsesValidatesAndExecutes(t *testing.T) {
	resolvers := execution.NewResolvers()
	resolvers.RegisterField("Query", "hello", func(ctx context.Context, source any, args map[string]any, info execution.Info) (any, error) {
		return "world", nil
	})
	sch := mustBuildExecSchema(t)

	result := Graphql(context.Background(), sch, `{ hello }`, ExecuteParams{Resolvers: resolvers})
	require.Empty(t, result.Errors)
	assert.Equal(t, "world", result.Data.Values["hello"])
}

func TestGraphql_ReturnsParseErrorsWithoutExecuting(t *testing.T) {
	sch := mustBuildExecSchema(t)
	result := Graphql(context.Background(), sch, `{ hello`, ExecuteParams{})
	require.NotEmpty(t, result.Errors)
	assert.Nil(t, result.Data)
}

func TestGraphql_ReturnsValidationErrorsWithoutExecuting(t *testing.T) {
	sch := mustBuildExecSchema(t)
	result := Graphql(context.Background(), sch, `{ bogus }`, ExecuteParams{})
	require.NotEmpty(t, result.Errors)
	assert.Nil(t, result.Data)
}
