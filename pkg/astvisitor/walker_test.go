package astvisitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

func mustParse(t *testing.T, query string) *ast.Document {
	t.Helper()
	doc, report := astparser.Parse(ast.NewSource([]byte(query), "test"), astparser.Options{})
	require.False(t, report.HasErrors())
	return doc
}

type fieldNameCollector struct{ names []string }

func (c *fieldNameCollector) EnterField(field *ast.Field) { c.names = append(c.names, field.Name.Value) }

func TestWalker_DispatchesEnterFieldInDocumentOrder(t *testing.T) {
	doc := mustParse(t, `{ a b { c d } }`)
	w := NewWalker(8)
	collector := &fieldNameCollector{}
	w.RegisterEnterFieldVisitor(collector)
	w.Walk(doc, nil, nil, &operationreport.Report{})
	assert.Equal(t, []string{"a", "b", "c", "d"}, collector.names)
}

type skippingVisitor struct{ seen []string }

func (v *skippingVisitor) EnterField(field *ast.Field) {
	v.seen = append(v.seen, field.Name.Value)
}

type skipOnB struct{ w *Walker }

func (s *skipOnB) EnterField(field *ast.Field) {
	if field.Name.Value == "b" {
		s.w.SkipNode()
	}
}

func TestWalker_SkipNodeOmitsSubtree(t *testing.T) {
	doc := mustParse(t, `{ a b { c } }`)
	w := NewWalker(8)
	collector := &skippingVisitor{}
	skipper := &skipOnB{w: &w}
	w.RegisterEnterFieldVisitor(skipper)
	w.RegisterEnterFieldVisitor(collector)
	w.Walk(doc, nil, nil, &operationreport.Report{})
	assert.Equal(t, []string{"a", "b"}, collector.seen)
}

type stopOnB struct{ w *Walker }

func (s *stopOnB) EnterField(field *ast.Field) {
	if field.Name.Value == "b" {
		s.w.Stop()
	}
}

func TestWalker_StopAbortsRemainderOfWalk(t *testing.T) {
	doc := mustParse(t, `{ a b c }`)
	w := NewWalker(8)
	collector := &skippingVisitor{}
	stopper := &stopOnB{w: &w}
	w.RegisterEnterFieldVisitor(stopper)
	w.RegisterEnterFieldVisitor(collector)
	w.Walk(doc, nil, nil, &operationreport.Report{})
	assert.Equal(t, []string{"a", "b"}, collector.seen)
}

type pathCollector struct {
	w     *Walker
	paths [][]string
}

func (p *pathCollector) EnterField(field *ast.Field) {
	var names []string
	for _, el := range p.w.Path() {
		names = append(names, el.Name)
	}
	p.paths = append(p.paths, names)
}

func TestWalker_PathTracksNestedFieldResponseNames(t *testing.T) {
	doc := mustParse(t, `{ a { b } }`)
	w := NewWalker(8)
	collector := &pathCollector{w: &w}
	w.RegisterEnterFieldVisitor(collector)
	w.Walk(doc, nil, nil, &operationreport.Report{})
	require.Len(t, collector.paths, 2)
	assert.Equal(t, []string{"a"}, collector.paths[0])
	assert.Equal(t, []string{"a", "b"}, collector.paths[1])
}

type fakeTypeResolver struct{}

func (fakeTypeResolver) RootOperationTypeName(op ast.OperationType) string { return "Query" }
func (fakeTypeResolver) FieldTypeName(parentTypeName, fieldName string) (string, bool) {
	if parentTypeName == "Query" && fieldName == "pet" {
		return "Pet", true
	}
	return "", false
}

type enclosingTypeCollector struct {
	w     *Walker
	types []string
}

func (c *enclosingTypeCollector) EnterField(field *ast.Field) {
	c.types = append(c.types, c.w.EnclosingTypeName)
}

func TestWalker_TracksEnclosingTypeNameViaResolver(t *testing.T) {
	doc := mustParse(t, `{ pet { name } }`)
	w := NewWalker(8)
	collector := &enclosingTypeCollector{w: &w}
	w.RegisterEnterFieldVisitor(collector)
	w.Walk(doc, nil, fakeTypeResolver{}, &operationreport.Report{})
	require.Len(t, collector.types, 2)
	assert.Equal(t, "Query", collector.types[0])
	assert.Equal(t, "Pet", collector.types[1])
}

func TestWalker_RegisterAllNodesVisitorWiresImplementedCallbacksOnly(t *testing.T) {
	doc := mustParse(t, `{ a }`)
	w := NewWalker(8)
	collector := &fieldNameCollector{}
	w.RegisterAllNodesVisitor(collector)
	w.Walk(doc, nil, nil, &operationreport.Report{})
	assert.Equal(t, []string{"a"}, collector.names)
}

type dropFieldNamed struct {
	w    *Walker
	name string
}

func (d *dropFieldNamed) EnterField(field *ast.Field) {
	if field.Name.Value == d.name {
		d.w.DeleteNode()
	}
}

func selectionSetsOf(t *testing.T, op *ast.OperationDefinition) []*ast.SelectionSet {
	t.Helper()
	var sets []*ast.SelectionSet
	var walk func(set *ast.SelectionSet)
	walk = func(set *ast.SelectionSet) {
		if set == nil {
			return
		}
		sets = append(sets, set)
		for _, sel := range set.Selections {
			if field, ok := sel.(*ast.Field); ok {
				walk(field.SelectionSet)
			}
		}
	}
	walk(op.SelectionSet)
	return sets
}

func TestWalker_DeleteNodeDropsEveryMatchingFieldAtEveryDepth(t *testing.T) {
	doc := mustParse(t, `{ a b c { a b c } }`)
	w := NewWalker(8)
	dropper := &dropFieldNamed{w: &w, name: "b"}
	w.RegisterEnterFieldVisitor(dropper)
	edited := w.Walk(doc, nil, nil, &operationreport.Report{})

	require.Len(t, edited.Definitions, 1)
	op, ok := edited.Definitions[0].(*ast.OperationDefinition)
	require.True(t, ok)

	sets := selectionSetsOf(t, op)
	require.Len(t, sets, 2)
	for _, set := range sets {
		require.Len(t, set.Selections, 2)
		for _, sel := range set.Selections {
			field, ok := sel.(*ast.Field)
			require.True(t, ok)
			assert.NotEqual(t, "b", field.Name.Value)
		}
	}
}

func TestWalker_DeleteNodeLeavesOriginalDocumentUnmodified(t *testing.T) {
	doc := mustParse(t, `{ a b c }`)
	originalOp := doc.Definitions[0].(*ast.OperationDefinition)
	originalSelSet := originalOp.SelectionSet

	w := NewWalker(8)
	dropper := &dropFieldNamed{w: &w, name: "b"}
	w.RegisterEnterFieldVisitor(dropper)
	edited := w.Walk(doc, nil, nil, &operationreport.Report{})

	require.Len(t, originalOp.SelectionSet.Selections, 3)
	assert.Same(t, originalSelSet, originalOp.SelectionSet)

	editedOp := edited.Definitions[0].(*ast.OperationDefinition)
	require.Len(t, editedOp.SelectionSet.Selections, 2)
	assert.NotSame(t, originalOp.SelectionSet, editedOp.SelectionSet)
	assert.NotSame(t, doc, edited)
}

type replaceFieldNamed struct {
	w        *Walker
	name     string
	withName string
}

func (r *replaceFieldNamed) EnterField(field *ast.Field) {
	if field.Name.Value != r.name {
		return
	}
	cp := *field
	cp.Name = &ast.Name{Value: r.withName}
	r.w.ReplaceNode(&cp)
}

func TestWalker_ReplaceNodeInstallsEditedFieldIntoParent(t *testing.T) {
	doc := mustParse(t, `{ a b }`)
	w := NewWalker(8)
	replacer := &replaceFieldNamed{w: &w, name: "a", withName: "renamed"}
	collector := &fieldNameCollector{}
	w.RegisterEnterFieldVisitor(replacer)
	w.RegisterEnterFieldVisitor(collector)
	edited := w.Walk(doc, nil, nil, &operationreport.Report{})

	// collector sees "a" once on the original field's Enter pass, then
	// "renamed" again once the enter-time replacement is itself visited.
	assert.Equal(t, []string{"a", "renamed", "b"}, collector.names)
	editedOp := edited.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, "renamed", editedOp.SelectionSet.Selections[0].(*ast.Field).Name.Value)

	originalOp := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, "a", originalOp.SelectionSet.Selections[0].(*ast.Field).Name.Value)
}

func TestWalker_SkipNodeStillHonoredAlongsideEditing(t *testing.T) {
	doc := mustParse(t, `{ a b { c } }`)
	w := NewWalker(8)
	skipper := &skipOnB{w: &w}
	collector := &skippingVisitor{}
	w.RegisterEnterFieldVisitor(skipper)
	w.RegisterEnterFieldVisitor(collector)
	edited := w.Walk(doc, nil, nil, &operationreport.Report{})
	assert.Equal(t, []string{"a", "b"}, collector.seen)
	assert.NotNil(t, edited)
}

func TestWalker_StopWithErrRecordsErrorOnReport(t *testing.T) {
	doc := mustParse(t, `{ a }`)
	w := NewWalker(8)
	report := &operationreport.Report{}
	w.Walk(doc, nil, nil, report)
	w.StopWithErr(operationreport.ExternalError{Message: "boom"})
	assert.True(t, report.HasErrors())
}
