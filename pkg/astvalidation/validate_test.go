package astvalidation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

const testSDL = `
interface Pet { name: String! }
type Dog implements Pet { name: String! bark: String! }
type Query {
	hello: String!
	pet: Pet
	greet(name: String!): String!
}
`

func mustBuildSchema(t *testing.T) *schema.Schema {
	t.Helper()
	doc, report := astparser.Parse(ast.NewSource([]byte(testSDL), "schema"), astparser.Options{})
	require.False(t, report.HasErrors(), report.Error())
	sch, report := schema.Build(doc, schema.Config{})
	require.False(t, report.HasErrors(), report.Error())
	return sch
}

func mustParseQuery(t *testing.T, query string) *ast.Document {
	t.Helper()
	doc, report := astparser.Parse(ast.NewSource([]byte(query), "query"), astparser.Options{})
	require.False(t, report.HasErrors(), report.Error())
	return doc
}

func TestValidate_AcceptsWellFormedQuery(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `{ hello }`), sch)
	assert.False(t, report.HasErrors())
}

func TestValidate_RejectsUnknownField(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `{ bogus }`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsMissingRequiredArgument(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `{ greet }`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsUnknownArgument(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `{ greet(bogus: "x") }`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsDuplicateOperationNames(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `
		query A { hello }
		query A { pet { name } }
	`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsMultipleAnonymousOperations(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `{ hello } { pet { name } }`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsDuplicateFragmentNames(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `
		{ pet { ...F } }
		fragment F on Pet { name }
		fragment F on Pet { name }
	`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsFragmentCycle(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `
		{ pet { ...A } }
		fragment A on Pet { ...B }
		fragment B on Pet { ...A }
	`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsFragmentOnNonCompositeType(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `
		{ hello }
		fragment F on String { hello }
	`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsUndefinedVariable(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `query Greet { greet(name: $name) }`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsUnusedVariable(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `query Greet($name: String!) { hello }`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_RejectsUnusedFragment(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `
		{ hello }
		fragment F on Pet { name }
	`), sch)
	assert.True(t, report.HasErrors())
}

func TestValidate_AcceptsInlineFragmentOnImplementedInterface(t *testing.T) {
	sch := mustBuildSchema(t)
	report := Validate(mustParseQuery(t, `{ pet { ... on Dog { bark } } }`), sch)
	assert.False(t, report.HasErrors())
}

func TestSuggestField_SuggestsClosestNameWithinEditDistanceTwo(t *testing.T) {
	assert.Equal(t, ` Did you mean "hello"?`, suggestField("helo", []string{"hello", "pet"}))
	assert.Equal(t, "", suggestField("xyzabc", []string{"hello", "pet"}))
}
