package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
)

func mustBuild(t *testing.T, sdl string) *Schema {
	t.Helper()
	doc, report := astparser.Parse(ast.NewSource([]byte(sdl), "test"), astparser.Options{})
	require.False(t, report.HasErrors(), report.Error())
	sch, report := Build(doc, Config{})
	require.False(t, report.HasErrors(), report.Error())
	return sch
}

func TestPrintSchema_OmitsBuiltinScalarsAndDirectives(t *testing.T) {
	printed := PrintSchema(mustBuild(t, `type Query { hello: String! }`))
	assert.NotContains(t, printed, "scalar String")
	assert.NotContains(t, printed, "scalar Int")
	assert.NotContains(t, printed, "directive @include")
	assert.NotContains(t, printed, "directive @skip")
	assert.NotContains(t, printed, "__Schema")
	assert.Contains(t, printed, "type Query {\n  hello: String!\n}")
}

func TestPrintSchema_OmitsSchemaBlockWhenRootNamesAreDefault(t *testing.T) {
	printed := PrintSchema(mustBuild(t, `type Query { hello: String! }`))
	assert.NotContains(t, printed, "schema {")
}

func TestPrintSchema_EmitsSchemaBlockForNonDefaultRootNames(t *testing.T) {
	sdl := `
	schema { query: RootQuery }
	type RootQuery { hello: String! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, "schema {\n  query: RootQuery\n}")
}

func TestPrintSchema_PrintsUserDefinedScalarWithDirective(t *testing.T) {
	sdl := `
	scalar Duration @specifiedBy(url: "https://example.com/duration")
	type Query { hello: String! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, `scalar Duration @specifiedBy(url: "https://example.com/duration")`)
}

func TestPrintSchema_PrintsEnumWithDeprecatedValue(t *testing.T) {
	sdl := `
	enum Color {
		RED
		GREEN @deprecated(reason: "use BLUE")
	}
	type Query { color: Color! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, "enum Color {\n  RED\n  GREEN @deprecated(reason: \"use BLUE\")\n}")
}

func TestPrintSchema_PrintsInterfaceImplementationAndUnionMembers(t *testing.T) {
	sdl := `
	interface Node { id: ID! }
	type Dog implements Node { id: ID! name: String! }
	type Cat implements Node { id: ID! meow: String! }
	union Pet = Dog | Cat
	type Query { pets: [Pet!]! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, "type Dog implements Node {")
	assert.Contains(t, printed, "union Pet = Dog | Cat")
}

func TestPrintSchema_PrintsInputObjectWithDefaultValue(t *testing.T) {
	sdl := `
	input Filter {
		limit: Int = 10
	}
	type Query { hello(filter: Filter): String! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, "input Filter {\n  limit: Int = 10\n}")
}

func TestPrintSchema_PrintsUserDefinedDirective(t *testing.T) {
	sdl := `
	directive @cacheControl(maxAge: Int) on FIELD_DEFINITION
	type Query { hello: String! @cacheControl(maxAge: 60) }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, "directive @cacheControl(maxAge: Int) on FIELD_DEFINITION")
	assert.Contains(t, printed, "hello: String! @cacheControl(maxAge: 60)")
}

func TestPrintSchema_PrintsOneOfInputObjectDirective(t *testing.T) {
	sdl := `
	input SearchBy @oneOf {
		id: ID
		name: String
	}
	type Query { hello: String! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, "input SearchBy @oneOf {\n  id: ID\n  name: String\n}")
}

func TestPrintSchema_RoundTripsThroughBuildAgain(t *testing.T) {
	sdl := `
	type Query {
		hello: String!
		pet: Pet
	}
	interface Pet { name: String! }
	type Dog implements Pet { name: String! }
	`
	first := mustBuild(t, sdl)
	printed := PrintSchema(first)

	doc, report := astparser.Parse(ast.NewSource([]byte(printed), "roundtrip"), astparser.Options{})
	require.False(t, report.HasErrors(), report.Error())
	second, report := Build(doc, Config{})
	require.False(t, report.HasErrors(), report.Error())

	assert.ElementsMatch(t, first.TypeOrder, second.TypeOrder)
	queryType, ok := second.Types["Query"]
	require.True(t, ok)
	_, ok = queryType.Field("hello")
	assert.True(t, ok)
}

func TestPrintSchema_DescriptionWithNewlineUsesBlockString(t *testing.T) {
	sdl := `
	"""
	multi
	line
	"""
	type Query { hello: String! }
	`
	printed := PrintSchema(mustBuild(t, sdl))
	assert.Contains(t, printed, `"""`+"\nmulti\nline\n"+`"""`)
}
