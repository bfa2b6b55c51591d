package execution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeList_AcceptsPlainAnySlice(t *testing.T) {
	out, ok := normalizeList([]any{1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, []any{1, 2, 3}, out)
}

func TestNormalizeList_AcceptsTypedSliceViaReflection(t *testing.T) {
	out, ok := normalizeList([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, out)
}

func TestNormalizeList_RejectsNonIterable(t *testing.T) {
	_, ok := normalizeList(42)
	assert.False(t, ok)
}

func TestExecute_ScalarSerializeErrorSurfacesAsFieldError(t *testing.T) {
	// "hello" declares String!; a resolver returning a non-coercible value
	// surfaces as a field error rather than panicking.
	resolvers := NewResolvers()
	resolvers.RegisterField("Query", "hello", func(ctx context.Context, source any, args map[string]any, info Info) (any, error) {
		return 123, nil
	})
	engine := newTestEngine(t, resolvers)

	result := engine.Execute(context.Background(), mustParse(t, `{ hello }`), nil, nil, "")
	require.NotEmpty(t, result.Errors)
	assert.Nil(t, result.Data)
}

func TestExecute_RegisteredTypeResolverTakesPrecedenceOverTypename(t *testing.T) {
	resolvers := NewResolvers()
	resolvers.RegisterField("Query", "pet", func(ctx context.Context, source any, args map[string]any, info Info) (any, error) {
		return map[string]any{"__typename": "Cat", "name": "Rex"}, nil
	})
	resolvers.RegisterTypeResolver("Pet", func(ctx context.Context, value any) (string, bool) {
		return "Dog", true
	})
	engine := newTestEngine(t, resolvers)

	result := engine.Execute(context.Background(), mustParse(t, `{ pet { name } }`), nil, nil, "")
	require.Empty(t, result.Errors)
	pet, ok := result.Data.Values["pet"].(*OrderedMap)
	require.True(t, ok)
	assert.Equal(t, "Rex", pet.Values["name"])
}

func TestExecute_UnresolvableRuntimeTypeIsFieldError(t *testing.T) {
	resolvers := NewResolvers()
	resolvers.RegisterField("Query", "pet", func(ctx context.Context, source any, args map[string]any, info Info) (any, error) {
		return map[string]any{"name": "Rex"}, nil
	})
	engine := newTestEngine(t, resolvers)

	result := engine.Execute(context.Background(), mustParse(t, `{ pet { name } }`), nil, nil, "")
	require.NotEmpty(t, result.Errors)
}
