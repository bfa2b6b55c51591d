package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
)

func parseSDL(t *testing.T, sdl string) *ast.Document {
	t.Helper()
	doc, report := astparser.Parse(ast.NewSource([]byte(sdl), "test"), astparser.Options{})
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

func TestBuild_RequiresQueryRootType(t *testing.T) {
	_, report := Build(parseSDL(t, `type Mutation { noop: Boolean }`), Config{})
	assert.True(t, report.HasErrors())
}

func TestBuild_RejectsUnknownTypeReference(t *testing.T) {
	_, report := Build(parseSDL(t, `type Query { hello: Bogus }`), Config{})
	assert.True(t, report.HasErrors())
}

func TestBuild_RejectsUnionWithNonObjectMember(t *testing.T) {
	_, report := Build(parseSDL(t, `
		scalar Foo
		union U = Foo
		type Query { hello: String! }
	`), Config{})
	assert.True(t, report.HasErrors())
}

func TestBuild_AcceptsUnionOfObjectTypes(t *testing.T) {
	sch, report := Build(parseSDL(t, `
		type Dog { name: String! }
		type Cat { name: String! }
		union Pet = Dog | Cat
		type Query { pet: Pet }
	`), Config{})
	require.False(t, report.HasErrors(), report.Error())
	pet, ok := sch.Types["Pet"]
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Dog", "Cat"}, pet.PossibleTypes)
}

func TestBuild_RejectsNonNullInputObjectCycle(t *testing.T) {
	_, report := Build(parseSDL(t, `
		input A { b: B! }
		input B { a: A! }
		type Query { hello(a: A): String! }
	`), Config{})
	assert.True(t, report.HasErrors())
}

func TestBuild_AllowsNullableInputObjectCycle(t *testing.T) {
	_, report := Build(parseSDL(t, `
		input A { b: B }
		input B { a: A }
		type Query { hello(a: A): String! }
	`), Config{})
	assert.False(t, report.HasErrors(), report.Error())
}

func TestBuild_DefaultsRootOperationTypeNames(t *testing.T) {
	sch, report := Build(parseSDL(t, `
		type Query { hello: String! }
		type Mutation { noop: Boolean }
	`), Config{})
	require.False(t, report.HasErrors())
	assert.Equal(t, "Query", sch.QueryTypeName)
	assert.Equal(t, "Mutation", sch.MutationTypeName)
}

func TestBuild_SchemaBlockOverridesRootOperationTypeNames(t *testing.T) {
	sch, report := Build(parseSDL(t, `
		schema { query: RootQuery }
		type RootQuery { hello: String! }
	`), Config{})
	require.False(t, report.HasErrors())
	assert.Equal(t, "RootQuery", sch.QueryTypeName)
}

func TestBuild_InjectsIntrospectionFieldsOnQueryType(t *testing.T) {
	sch, report := Build(parseSDL(t, `type Query { hello: String! }`), Config{})
	require.False(t, report.HasErrors())
	_, ok := sch.Types["Query"].Field("__schema")
	assert.True(t, ok)
	_, ok = sch.Types["Query"].Field("__type")
	assert.True(t, ok)
}

func TestBuild_MergesBuiltinScalarsAndDirectives(t *testing.T) {
	sch, report := Build(parseSDL(t, `type Query { hello: String! }`), Config{})
	require.False(t, report.HasErrors())
	assert.True(t, sch.builtinTypeNames["String"])
	assert.True(t, sch.builtinDirectiveNames["skip"])
}

func TestBuild_CapturesDeprecatedDirectiveOnField(t *testing.T) {
	sch, report := Build(parseSDL(t, `
		type Query {
			hello: String! @deprecated(reason: "use goodbye")
		}
	`), Config{})
	require.False(t, report.HasErrors())
	f := sch.Types["Query"].Fields["hello"]
	assert.True(t, f.Deprecated)
	assert.Equal(t, "use goodbye", f.DeprecationReason)
}

func TestBuild_CapturesOneOfConstraintOnInputObject(t *testing.T) {
	sch, report := Build(parseSDL(t, `
		input SearchBy @oneOf {
			id: ID
			name: String
		}
		type Query { hello(by: SearchBy): String! }
	`), Config{})
	require.False(t, report.HasErrors())
	assert.True(t, sch.Types["SearchBy"].IsOneOf)
}
