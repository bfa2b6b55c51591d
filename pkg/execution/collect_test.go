package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

func collectQueryFields(t *testing.T, query string, variables map[string]any) []*fieldGroup {
	t.Helper()
	sch := mustBuildSchema(t)
	doc := mustParse(t, query)
	op := doc.OperationByName("")
	require.NotNil(t, op)
	fragments := map[string]*ast.FragmentDefinition{}
	for _, f := range doc.Fragments() {
		fragments[f.Name.Value] = f
	}
	return collectFields(sch, fragments, op.SelectionSet, variables, sch.QueryTypeName, map[string]bool{})
}

func TestCollectFields_SkipDirectiveExcludesField(t *testing.T) {
	groups := collectQueryFields(t, `query($skip: Boolean!) { hello @skip(if: $skip) }`, map[string]any{"skip": true})
	assert.Empty(t, groups)
}

func TestCollectFields_IncludeDirectiveFalseExcludesField(t *testing.T) {
	groups := collectQueryFields(t, `query($inc: Boolean!) { hello @include(if: $inc) }`, map[string]any{"inc": false})
	assert.Empty(t, groups)
}

func TestCollectFields_MergesDuplicateResponseNames(t *testing.T) {
	groups := collectQueryFields(t, `{ nested { value } nested { fail } }`, nil)
	require.Len(t, groups, 1)
	assert.Equal(t, "nested", groups[0].responseName)
	assert.Len(t, groups[0].fields, 2)
}

func TestCollectFields_InlineFragmentOnlyAppliesToMatchingRuntimeType(t *testing.T) {
	sch := mustBuildSchema(t)
	doc := mustParse(t, `{ pet { id: __typename ... on Dog { name } ... on Cat { meow: __typename } } }`)
	op := doc.OperationByName("")
	require.NotNil(t, op)
	petField := op.SelectionSet.Selections[0].(*ast.Field)

	groups := collectFields(sch, nil, petField.SelectionSet, nil, "Dog", map[string]bool{})
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.responseName
	}
	assert.Contains(t, names, "name")
	assert.NotContains(t, names, "meow")
}

func TestCollectFields_FragmentSpreadAppliesByInterfaceImplementation(t *testing.T) {
	sch := mustBuildSchema(t)
	doc := mustParse(t, `
	{
		pet {
			...PetFields
		}
	}
	fragment PetFields on Pet {
		name
	}`)
	op := doc.OperationByName("")
	require.NotNil(t, op)
	petField := op.SelectionSet.Selections[0].(*ast.Field)
	fragments := map[string]*ast.FragmentDefinition{}
	for _, f := range doc.Fragments() {
		fragments[f.Name.Value] = f
	}

	groups := collectFields(sch, fragments, petField.SelectionSet, nil, "Dog", map[string]bool{})
	require.Len(t, groups, 1)
	assert.Equal(t, "name", groups[0].responseName)
}
