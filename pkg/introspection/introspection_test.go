package introspection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

const testSDL = `
enum Color {
	RED
	GREEN @deprecated(reason: "use BLUE")
}
interface Pet { name: String! }
type Dog implements Pet { name: String! }
type Query {
	hello: String!
	pet: Pet
	color: Color!
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

func TestSchemaValue_IncludesQueryTypeAndAllTypes(t *testing.T) {
	sch := mustBuildSchema(t)
	v := SchemaValue(sch)
	queryType := v["queryType"].(map[string]any)
	assert.Equal(t, "Query", queryType["name"])
	types := v["types"].([]any)
	assert.NotEmpty(t, types)
}

func TestTypeByName_ReturnsNilForUnknownType(t *testing.T) {
	sch := mustBuildSchema(t)
	assert.Nil(t, TypeByName(sch, "Bogus"))
}

func TestTypeByName_ReturnsTypeValueForKnownType(t *testing.T) {
	sch := mustBuildSchema(t)
	v := TypeByName(sch, "Dog")
	require.NotNil(t, v)
	m := v.(map[string]any)
	assert.Equal(t, "OBJECT", m["kind"])
	assert.Equal(t, "Dog", m["name"])
}

func TestTypeValue_EnumValuesArgFuncExcludesDeprecatedByDefault(t *testing.T) {
	sch := mustBuildSchema(t)
	v := TypeValue(sch, sch.Types["Color"])
	enumValuesFn := v["enumValues"].(ArgFunc)
	withoutDeprecated := enumValuesFn(false).([]any)
	assert.Len(t, withoutDeprecated, 1)
	withDeprecated := enumValuesFn(true).([]any)
	assert.Len(t, withDeprecated, 2)
}

func TestTypeValue_InterfacesAndPossibleTypes(t *testing.T) {
	sch := mustBuildSchema(t)
	dog := TypeValue(sch, sch.Types["Dog"])
	interfaces := dog["interfaces"].([]any)
	require.Len(t, interfaces, 1)
	assert.Equal(t, "Pet", interfaces[0].(map[string]any)["name"])

	pet := TypeValue(sch, sch.Types["Pet"])
	possible := pet["possibleTypes"].([]any)
	require.Len(t, possible, 1)
	assert.Equal(t, "Dog", possible[0].(map[string]any)["name"])
}

func TestTypeRefValue_UnwrapsNonNullAndListToNamedType(t *testing.T) {
	sch := mustBuildSchema(t)
	helloField := sch.Types["Query"].Fields["hello"]
	v := TypeRefValue(sch, helloField.Type)
	assert.Equal(t, "NON_NULL", v["kind"])
	inner := v["ofType"].(map[string]any)
	assert.Equal(t, "SCALAR", inner["kind"])
	assert.Equal(t, "String", inner["name"])
}

func TestFieldValue_ReportsDeprecationState(t *testing.T) {
	sch := mustBuildSchema(t)
	v := FieldValue(sch, sch.Types["Query"].Fields["hello"])
	assert.False(t, v["isDeprecated"].(bool))
}
