// Package astvisitor implements the AST Visitor Service of spec.md §4.4: a
// single depth-first walk over a Document's executable definitions that
// dispatches enter/leave callbacks to independently registered visitors per
// node kind, tracks an ancestor stack and response path, lets a visitor skip
// a subtree or stop the walk early, and — per spec.md §4.5 — lets a visitor
// replace or delete the node currently being visited, returning an edited
// root with the original Document left untouched.
//
// Grounded on graphql-go-tools' astvisitor.Walker as used from
// v2/pkg/engine/plan/datasource_filter_visitor.go: a Walker value created
// with NewWalker(ancestorCapacity), visitors registered one interface per
// node kind via RegisterEnterFieldVisitor-style methods, then driven with
// Walk(operation, definition, report). The full astvisitor package itself
// wasn't present in the retrieval pack, so the registration-interface shape
// and the EnclosingTypeDefinition/report-driven error collection are
// reconstructed from that one call site plus the golangee/dyml push-parser
// visitor's open/close ancestor-stack technique (see DESIGN.md). The editing
// layer has no analogue in that one call site; it follows spec.md §4.5
// directly, using copy-on-write so an edit allocates a new copy of only the
// nodes on the path from the edit to the root.
package astvisitor

import (
	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

// TypeResolver lets the Walker track the enclosing GraphQL type while it
// descends through field selections, without astvisitor importing
// pkg/schema (which itself wants to walk ASTs). pkg/schema's Schema type
// implements this.
type TypeResolver interface {
	RootOperationTypeName(op ast.OperationType) string
	FieldTypeName(parentTypeName, fieldName string) (typeName string, ok bool)
}

// Walker performs one depth-first traversal per call to Walk. It is safe to
// reuse across multiple Walk calls (state resets at the start of each).
type Walker struct {
	ancestors []ast.Node
	path      []operationreport.PathElement

	document   *ast.Document
	definition *ast.Document
	types      TypeResolver
	report     *operationreport.Report

	// EnclosingTypeName is the name of the GraphQL type the walk is
	// currently inside of (the parent type of the field being entered), or
	// "" if no TypeResolver was supplied to Walk.
	EnclosingTypeName string

	skip bool
	stop bool

	// editSet/editDelete/editNode hold an edit requested via ReplaceNode or
	// DeleteNode from the callback currently running; consumeEdit drains
	// them immediately after each Enter/Leave dispatch.
	editSet    bool
	editDelete bool
	editNode   ast.Node

	enterDocument  []EnterDocumentVisitor
	leaveDocument  []LeaveDocumentVisitor
	enterOperation []EnterOperationDefinitionVisitor
	leaveOperation []LeaveOperationDefinitionVisitor
	enterFragDef   []EnterFragmentDefinitionVisitor
	leaveFragDef   []LeaveFragmentDefinitionVisitor
	enterVarDef    []EnterVariableDefinitionVisitor
	leaveVarDef    []LeaveVariableDefinitionVisitor
	enterSelSet    []EnterSelectionSetVisitor
	leaveSelSet    []LeaveSelectionSetVisitor
	enterField     []EnterFieldVisitor
	leaveField     []LeaveFieldVisitor
	enterArgument  []EnterArgumentVisitor
	leaveArgument  []LeaveArgumentVisitor
	enterFragSpr   []EnterFragmentSpreadVisitor
	leaveFragSpr   []LeaveFragmentSpreadVisitor
	enterInlineFrg []EnterInlineFragmentVisitor
	leaveInlineFrg []LeaveInlineFragmentVisitor
	enterDirective []EnterDirectiveVisitor
	leaveDirective []LeaveDirectiveVisitor
}

// NewWalker preallocates the ancestor stack to the given capacity, avoiding
// reallocation for documents no deeper than typical selection nesting.
func NewWalker(ancestorCapacity int) Walker {
	return Walker{ancestors: make([]ast.Node, 0, ancestorCapacity)}
}

// SkipNode tells the Walker not to descend into the current node's
// children. Valid only when called from inside an Enter callback.
func (w *Walker) SkipNode() { w.skip = true }

// Stop aborts the remainder of the walk. Already-visited Leave callbacks for
// open ancestors are NOT invoked; the walk simply unwinds.
func (w *Walker) Stop() { w.stop = true }

// ReplaceNode replaces the node currently being visited with n (spec.md
// §4.5 node(n)). Called from an Enter callback, the replacement is itself
// visited in the original node's place — its children are traversed and its
// own Enter/Leave callbacks run. Called from a Leave callback, the
// replacement is installed into the parent without being re-visited. n must
// implement whatever node interface is valid in the current position (e.g.
// ast.Selection for a Field/FragmentSpread/InlineFragment); an n of the
// wrong shape is silently ignored.
func (w *Walker) ReplaceNode(n ast.Node) {
	w.editSet = true
	w.editDelete = false
	w.editNode = n
}

// DeleteNode removes the node currently being visited from its parent
// (spec.md §4.5, node(n) with a null replacement). Deleting an element of a
// list shifts later sibling indices down for the remainder of the walk.
func (w *Walker) DeleteNode() {
	w.editSet = true
	w.editDelete = true
	w.editNode = nil
}

// consumeEdit drains any edit requested by the callback just run, resetting
// edit state so it can't leak into the next node visited.
func (w *Walker) consumeEdit() (node ast.Node, deleted bool, had bool) {
	if !w.editSet {
		return nil, false, false
	}
	node, deleted = w.editNode, w.editDelete
	w.editSet, w.editDelete, w.editNode = false, false, nil
	return node, deleted, true
}

// StopWithErr records an external error on the Report and stops the walk.
func (w *Walker) StopWithErr(err operationreport.ExternalError) {
	w.report.AddExternalError(err)
	w.Stop()
}

// Ancestors returns the stack of nodes currently open, outermost first. The
// node passed to the active Enter/Leave callback is not included.
func (w *Walker) Ancestors() []ast.Node { return w.ancestors }

// Path returns the response path (spec.md §6 error `path`) to the node
// currently being visited.
func (w *Walker) Path() []operationreport.PathElement { return w.path }

// Document returns the executable document being walked.
func (w *Walker) Document() *ast.Document { return w.document }

// Definition returns the type-system document supplied to Walk, or nil.
func (w *Walker) Definition() *ast.Document { return w.definition }

func (w *Walker) push(n ast.Node) { w.ancestors = append(w.ancestors, n) }
func (w *Walker) pop()            { w.ancestors = w.ancestors[:len(w.ancestors)-1] }

func (w *Walker) pushPathKey(name string) {
	w.path = append(w.path, operationreport.PathElement{Name: name, IsKey: true})
}
func (w *Walker) popPath() { w.path = w.path[:len(w.path)-1] }

// Walk drives one traversal of document's operations and fragment
// definitions. definition and types are optional; when types is supplied,
// EnclosingTypeName is maintained while descending through field
// selections (spec.md §4.4 "tracks ancestor/type context").
//
// The returned Document reflects every edit accepted via ReplaceNode/
// DeleteNode during the walk (spec.md §4.5 "visit(root, visitor) → Node");
// document itself, and every subtree not touched by an edit, is left
// unmodified — edited subtrees are copy-on-write, so an edit allocates new
// copies only along the path from the edit to the root.
func (w *Walker) Walk(document *ast.Document, definition *ast.Document, types TypeResolver, report *operationreport.Report) *ast.Document {
	w.document = document
	w.definition = definition
	w.types = types
	w.report = report
	w.ancestors = w.ancestors[:0]
	w.path = w.path[:0]
	w.skip = false
	w.stop = false
	w.editSet, w.editDelete, w.editNode = false, false, nil

	for _, v := range w.enterDocument {
		v.EnterDocument(document)
	}

	result := document
	if w.stop {
		return result
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil
		}
		if replacement, ok := n.(*ast.Document); ok {
			document = replacement
			result = replacement
		}
	}

	if !w.stop {
		newDefs, changed := walkSlice(w, document.Definitions, w.walkDefinitionDispatch)
		if changed {
			cp := *document
			cp.Definitions = newDefs
			result = &cp
		}
	}

	if w.stop {
		return result
	}
	for _, v := range w.leaveDocument {
		v.LeaveDocument(document)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil
		}
		if replacement, ok := n.(*ast.Document); ok {
			return replacement
		}
	}
	return result
}

// walkSlice walks each item of items through walkOne, returning items
// unchanged (same backing array) unless an edit actually altered or
// dropped an element, in which case a new slice is allocated lazily —
// everything up to the first change is copied once, then the walk
// continues item by item. A delete shifts later items down by one position
// as they're appended, honoring the cursor-shift invariant of spec.md §4.5.
func walkSlice[T comparable](w *Walker, items []T, walkOne func(T) (T, bool)) ([]T, bool) {
	var out []T
	changed := false
	for i := 0; i < len(items); i++ {
		item := items[i]
		edited, keep := walkOne(item)
		if !keep || edited != item {
			changed = true
		}
		if changed && out == nil {
			out = append(out, items[:i]...)
		}
		if keep && out != nil {
			out = append(out, edited)
		}
		if w.stop {
			if out != nil && i+1 < len(items) {
				out = append(out, items[i+1:]...)
			}
			break
		}
	}
	if !changed {
		return items, false
	}
	return out, true
}
