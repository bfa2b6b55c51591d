package astprinter

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
)

func mustParse(t *testing.T, query string) *ast.Document {
	t.Helper()
	doc, report := astparser.Parse(ast.NewSource([]byte(query), "test"), astparser.Options{})
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

func TestPrint_ShorthandQueryRendersWithoutKeyword(t *testing.T) {
	printed := Print(mustParse(t, `{ hello }`))
	assert.Equal(t, "{\n  hello\n}\n", printed)
}

func TestPrint_ShorthandQueryMatchesGoldenFixture(t *testing.T) {
	g := goldie.New(t)
	printed := Print(mustParse(t, `{ hello }`))
	g.Assert(t, "shorthand_query", []byte(printed))
}

func TestPrint_NamedQueryWithVariablesAndDirectives(t *testing.T) {
	printed := Print(mustParse(t, `query Greet($name: String = "world") @cached { hello(name: $name) }`))
	assert.Contains(t, printed, `query Greet($name: String = "world") @cached {`)
	assert.Contains(t, printed, `hello(name: $name)`)
}

func TestPrint_FieldAliasRoundTrips(t *testing.T) {
	printed := Print(mustParse(t, `{ greeting: hello }`))
	assert.Contains(t, printed, "greeting: hello")
}

func TestPrint_FragmentSpreadAndInlineFragment(t *testing.T) {
	printed := Print(mustParse(t, `
		{ pet { ...PetFields ... on Dog { bark } } }
		fragment PetFields on Pet { name }
	`))
	assert.Contains(t, printed, "...PetFields")
	assert.Contains(t, printed, "... on Dog {")
	assert.Contains(t, printed, "fragment PetFields on Pet {")
}

func TestPrint_WrapsLongArgumentListsMultiline(t *testing.T) {
	printed := Print(mustParse(t, `{ hello(aVeryLongArgumentNameIndeed: "some fairly long string value here", anotherOne: "also quite long indeed yes") }`))
	assert.Contains(t, printed, "(\n")
}

func TestPrint_NonEmptySelectionSetHasNoEmptyBraces(t *testing.T) {
	printed := Print(mustParse(t, `{ hello }`))
	assert.NotContains(t, printed, "{}")
}

func TestPrintValue_RendersListAndObjectLiterals(t *testing.T) {
	val, report := astparser.ParseValue(ast.NewSource([]byte(`{a: 1, b: [1, 2]}`), "test"))
	require.False(t, report.HasErrors())
	out := PrintValue(val)
	assert.Contains(t, out, "a: 1")
	assert.Contains(t, out, "b: [1, 2]")
}

func TestPrintType_RendersNonNullListType(t *testing.T) {
	typ, report := astparser.ParseType(ast.NewSource([]byte(`[String!]!`), "test"))
	require.False(t, report.HasErrors())
	assert.Equal(t, "[String!]!", PrintType(typ))
}

func TestPrint_RoundTripsStructurallyEqualDocument(t *testing.T) {
	src := `query Greet($name: String) {
  hello(name: $name)
}
`
	first := mustParse(t, src)
	printed := Print(first)
	second := mustParse(t, printed)
	assert.Equal(t, len(first.Definitions), len(second.Definitions))
	op1 := first.Definitions[0].(*ast.OperationDefinition)
	op2 := second.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, op1.Name.Value, op2.Name.Value)
	assert.True(t, first.Equal(second))
}
