package gqlcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

func TestParse_ReturnsDocumentOnValidQuery(t *testing.T) {
	doc, report := Parse(ast.NewSource([]byte(`{ hello }`), "test"), astparser.Options{})
	require.False(t, report.HasErrors())
	require.NotNil(t, doc)
}

func TestParse_ReportsSyntaxError(t *testing.T) {
	_, report := Parse(ast.NewSource([]byte(`{ hello`), "test"), astparser.Options{})
	assert.True(t, report.HasErrors())
}

func TestPrint_RoundTripsSimpleQuery(t *testing.T) {
	doc, report := Parse(ast.NewSource([]byte(`{ hello }`), "test"), astparser.Options{})
	require.False(t, report.HasErrors())
	out := Print(doc)
	assert.Contains(t, out, "hello")
}

type fieldNameCollector struct {
	names []string
}

func (c *fieldNameCollector) EnterField(field *ast.Field) {
	c.names = append(c.names, field.Name.Value)
}

func TestVisit_DispatchesToImplementedCallbacks(t *testing.T) {
	doc, report := Parse(ast.NewSource([]byte(`{ hello world }`), "test"), astparser.Options{})
	require.False(t, report.HasErrors())

	collector := &fieldNameCollector{}
	_, visitReport := Visit(doc, collector, nil)
	require.False(t, visitReport.HasErrors())
	assert.Equal(t, []string{"hello", "world"}, collector.names)
}

const testSDL = `
type Query {
	hello: String!
}
`

func TestBuildSchema_BuildsFromSDLText(t *testing.T) {
	sch, report := BuildSchema(ast.NewSource([]byte(testSDL), "schema"), schema.Config{})
	require.False(t, report.HasErrors())
	require.NotNil(t, sch)
	assert.Equal(t, "Query", sch.QueryTypeName)
}

func TestPrintSchema_RoundTripsBuiltSchema(t *testing.T) {
	sch, report := BuildSchema(ast.NewSource([]byte(testSDL), "schema"), schema.Config{})
	require.False(t, report.HasErrors())

	printed := PrintSchema(sch)
	assert.Contains(t, printed, "type Query")
	assert.Contains(t, printed, "hello: String!")
	assert.NotContains(t, printed, "scalar String")
}

func TestValidate_RejectsUnknownField(t *testing.T) {
	sch, report := BuildSchema(ast.NewSource([]byte(testSDL), "schema"), schema.Config{})
	require.False(t, report.HasErrors())

	doc, parseReport := Parse(ast.NewSource([]byte(`{ bogus }`), "query"), astparser.Options{})
	require.False(t, parseReport.HasErrors())

	valReport := Validate(doc, sch)
	assert.True(t, valReport.HasErrors())
}
