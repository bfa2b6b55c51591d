package astvisitor

import "github.com/graphql-core/gqlcore/pkg/ast"

// Each node kind gets its own Enter/Leave visitor interface, mirroring the
// teacher's one-interface-per-callback registration style rather than a
// single mega-interface every visitor must fully implement: a validation
// rule or printer pass registers only the callbacks it cares about.

type EnterDocumentVisitor interface{ EnterDocument(doc *ast.Document) }
type LeaveDocumentVisitor interface{ LeaveDocument(doc *ast.Document) }

type EnterOperationDefinitionVisitor interface {
	EnterOperationDefinition(op *ast.OperationDefinition)
}
type LeaveOperationDefinitionVisitor interface {
	LeaveOperationDefinition(op *ast.OperationDefinition)
}

type EnterFragmentDefinitionVisitor interface {
	EnterFragmentDefinition(frag *ast.FragmentDefinition)
}
type LeaveFragmentDefinitionVisitor interface {
	LeaveFragmentDefinition(frag *ast.FragmentDefinition)
}

type EnterVariableDefinitionVisitor interface {
	EnterVariableDefinition(v *ast.VariableDefinition)
}
type LeaveVariableDefinitionVisitor interface {
	LeaveVariableDefinition(v *ast.VariableDefinition)
}

type EnterSelectionSetVisitor interface{ EnterSelectionSet(set *ast.SelectionSet) }
type LeaveSelectionSetVisitor interface{ LeaveSelectionSet(set *ast.SelectionSet) }

type EnterFieldVisitor interface{ EnterField(field *ast.Field) }
type LeaveFieldVisitor interface{ LeaveField(field *ast.Field) }

type EnterArgumentVisitor interface{ EnterArgument(arg *ast.Argument) }
type LeaveArgumentVisitor interface{ LeaveArgument(arg *ast.Argument) }

type EnterFragmentSpreadVisitor interface{ EnterFragmentSpread(spread *ast.FragmentSpread) }
type LeaveFragmentSpreadVisitor interface{ LeaveFragmentSpread(spread *ast.FragmentSpread) }

type EnterInlineFragmentVisitor interface{ EnterInlineFragment(frag *ast.InlineFragment) }
type LeaveInlineFragmentVisitor interface{ LeaveInlineFragment(frag *ast.InlineFragment) }

type EnterDirectiveVisitor interface{ EnterDirective(d *ast.Directive) }
type LeaveDirectiveVisitor interface{ LeaveDirective(d *ast.Directive) }

func (w *Walker) RegisterEnterDocumentVisitor(v EnterDocumentVisitor) {
	w.enterDocument = append(w.enterDocument, v)
}
func (w *Walker) RegisterLeaveDocumentVisitor(v LeaveDocumentVisitor) {
	w.leaveDocument = append(w.leaveDocument, v)
}
func (w *Walker) RegisterEnterOperationDefinitionVisitor(v EnterOperationDefinitionVisitor) {
	w.enterOperation = append(w.enterOperation, v)
}
func (w *Walker) RegisterLeaveOperationDefinitionVisitor(v LeaveOperationDefinitionVisitor) {
	w.leaveOperation = append(w.leaveOperation, v)
}
func (w *Walker) RegisterEnterFragmentDefinitionVisitor(v EnterFragmentDefinitionVisitor) {
	w.enterFragDef = append(w.enterFragDef, v)
}
func (w *Walker) RegisterLeaveFragmentDefinitionVisitor(v LeaveFragmentDefinitionVisitor) {
	w.leaveFragDef = append(w.leaveFragDef, v)
}
func (w *Walker) RegisterEnterVariableDefinitionVisitor(v EnterVariableDefinitionVisitor) {
	w.enterVarDef = append(w.enterVarDef, v)
}
func (w *Walker) RegisterLeaveVariableDefinitionVisitor(v LeaveVariableDefinitionVisitor) {
	w.leaveVarDef = append(w.leaveVarDef, v)
}
func (w *Walker) RegisterEnterSelectionSetVisitor(v EnterSelectionSetVisitor) {
	w.enterSelSet = append(w.enterSelSet, v)
}
func (w *Walker) RegisterLeaveSelectionSetVisitor(v LeaveSelectionSetVisitor) {
	w.leaveSelSet = append(w.leaveSelSet, v)
}
func (w *Walker) RegisterEnterFieldVisitor(v EnterFieldVisitor) {
	w.enterField = append(w.enterField, v)
}
func (w *Walker) RegisterLeaveFieldVisitor(v LeaveFieldVisitor) {
	w.leaveField = append(w.leaveField, v)
}
func (w *Walker) RegisterEnterArgumentVisitor(v EnterArgumentVisitor) {
	w.enterArgument = append(w.enterArgument, v)
}
func (w *Walker) RegisterLeaveArgumentVisitor(v LeaveArgumentVisitor) {
	w.leaveArgument = append(w.leaveArgument, v)
}
func (w *Walker) RegisterEnterFragmentSpreadVisitor(v EnterFragmentSpreadVisitor) {
	w.enterFragSpr = append(w.enterFragSpr, v)
}
func (w *Walker) RegisterLeaveFragmentSpreadVisitor(v LeaveFragmentSpreadVisitor) {
	w.leaveFragSpr = append(w.leaveFragSpr, v)
}
func (w *Walker) RegisterEnterInlineFragmentVisitor(v EnterInlineFragmentVisitor) {
	w.enterInlineFrg = append(w.enterInlineFrg, v)
}
func (w *Walker) RegisterLeaveInlineFragmentVisitor(v LeaveInlineFragmentVisitor) {
	w.leaveInlineFrg = append(w.leaveInlineFrg, v)
}
func (w *Walker) RegisterEnterDirectiveVisitor(v EnterDirectiveVisitor) {
	w.enterDirective = append(w.enterDirective, v)
}
func (w *Walker) RegisterLeaveDirectiveVisitor(v LeaveDirectiveVisitor) {
	w.leaveDirective = append(w.leaveDirective, v)
}

// RegisterAllNodesVisitor registers v for every Enter/Leave callback it
// happens to implement, convenient for a printer or validator that cares
// about many node kinds at once (gqlcore.Visit uses this).
func (w *Walker) RegisterAllNodesVisitor(v any) {
	if x, ok := v.(EnterDocumentVisitor); ok {
		w.RegisterEnterDocumentVisitor(x)
	}
	if x, ok := v.(LeaveDocumentVisitor); ok {
		w.RegisterLeaveDocumentVisitor(x)
	}
	if x, ok := v.(EnterOperationDefinitionVisitor); ok {
		w.RegisterEnterOperationDefinitionVisitor(x)
	}
	if x, ok := v.(LeaveOperationDefinitionVisitor); ok {
		w.RegisterLeaveOperationDefinitionVisitor(x)
	}
	if x, ok := v.(EnterFragmentDefinitionVisitor); ok {
		w.RegisterEnterFragmentDefinitionVisitor(x)
	}
	if x, ok := v.(LeaveFragmentDefinitionVisitor); ok {
		w.RegisterLeaveFragmentDefinitionVisitor(x)
	}
	if x, ok := v.(EnterVariableDefinitionVisitor); ok {
		w.RegisterEnterVariableDefinitionVisitor(x)
	}
	if x, ok := v.(LeaveVariableDefinitionVisitor); ok {
		w.RegisterLeaveVariableDefinitionVisitor(x)
	}
	if x, ok := v.(EnterSelectionSetVisitor); ok {
		w.RegisterEnterSelectionSetVisitor(x)
	}
	if x, ok := v.(LeaveSelectionSetVisitor); ok {
		w.RegisterLeaveSelectionSetVisitor(x)
	}
	if x, ok := v.(EnterFieldVisitor); ok {
		w.RegisterEnterFieldVisitor(x)
	}
	if x, ok := v.(LeaveFieldVisitor); ok {
		w.RegisterLeaveFieldVisitor(x)
	}
	if x, ok := v.(EnterArgumentVisitor); ok {
		w.RegisterEnterArgumentVisitor(x)
	}
	if x, ok := v.(LeaveArgumentVisitor); ok {
		w.RegisterLeaveArgumentVisitor(x)
	}
	if x, ok := v.(EnterFragmentSpreadVisitor); ok {
		w.RegisterEnterFragmentSpreadVisitor(x)
	}
	if x, ok := v.(LeaveFragmentSpreadVisitor); ok {
		w.RegisterLeaveFragmentSpreadVisitor(x)
	}
	if x, ok := v.(EnterInlineFragmentVisitor); ok {
		w.RegisterEnterInlineFragmentVisitor(x)
	}
	if x, ok := v.(LeaveInlineFragmentVisitor); ok {
		w.RegisterLeaveInlineFragmentVisitor(x)
	}
	if x, ok := v.(EnterDirectiveVisitor); ok {
		w.RegisterEnterDirectiveVisitor(x)
	}
	if x, ok := v.(LeaveDirectiveVisitor); ok {
		w.RegisterLeaveDirectiveVisitor(x)
	}
}
