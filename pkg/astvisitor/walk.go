package astvisitor

import "github.com/graphql-core/gqlcore/pkg/ast"

// walkDefinitionDispatch type-switches a Document-level definition to its
// concrete walker, and is also the re-entry point for an enter-time
// ReplaceNode whose replacement is itself a Definition.
func (w *Walker) walkDefinitionDispatch(def ast.Definition) (ast.Definition, bool) {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		return w.walkOperationDefinition(d)
	case *ast.FragmentDefinition:
		return w.walkFragmentDefinition(d)
	default:
		return def, true
	}
}

// walkSelectionDispatch is the Selection-slot analogue of
// walkDefinitionDispatch.
func (w *Walker) walkSelectionDispatch(sel ast.Selection) (ast.Selection, bool) {
	switch s := sel.(type) {
	case *ast.Field:
		return w.walkField(s)
	case *ast.FragmentSpread:
		return w.walkFragmentSpread(s)
	case *ast.InlineFragment:
		return w.walkInlineFragment(s)
	default:
		return sel, true
	}
}

func (w *Walker) walkOperationDefinition(op *ast.OperationDefinition) (ast.Definition, bool) {
	for _, v := range w.enterOperation {
		v.EnterOperationDefinition(op)
	}
	if w.stop {
		return op, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Definition); ok {
			return w.walkDefinitionDispatch(replacement)
		}
	}

	result := ast.Definition(op)
	if !w.skip {
		w.push(op)
		if w.types != nil {
			w.EnclosingTypeName = w.types.RootOperationTypeName(op.Operation)
		}
		newVarDefs, varsChanged := walkSlice(w, op.VariableDefinitions, w.walkVariableDefinition)
		var newDirectives []*ast.Directive
		var dirsChanged bool
		if !w.stop {
			newDirectives, dirsChanged = walkSlice(w, op.Directives, w.walkDirective)
		} else {
			newDirectives = op.Directives
		}
		newSelSet, selChanged := w.walkChildSelectionSet(op.SelectionSet)
		w.pop()
		if varsChanged || dirsChanged || selChanged {
			cp := *op
			cp.VariableDefinitions = newVarDefs
			cp.Directives = newDirectives
			cp.SelectionSet = newSelSet
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveOperation {
		v.LeaveOperationDefinition(op)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Definition); ok {
			return replacement, true
		}
	}
	return result, true
}

func (w *Walker) walkFragmentDefinition(frag *ast.FragmentDefinition) (ast.Definition, bool) {
	for _, v := range w.enterFragDef {
		v.EnterFragmentDefinition(frag)
	}
	if w.stop {
		return frag, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Definition); ok {
			return w.walkDefinitionDispatch(replacement)
		}
	}

	result := ast.Definition(frag)
	if !w.skip {
		w.push(frag)
		if frag.TypeCondition != nil {
			w.EnclosingTypeName = frag.TypeCondition.Value
		}
		newDirectives, dirsChanged := walkSlice(w, frag.Directives, w.walkDirective)
		newSelSet, selChanged := w.walkChildSelectionSet(frag.SelectionSet)
		w.pop()
		if dirsChanged || selChanged {
			cp := *frag
			cp.Directives = newDirectives
			cp.SelectionSet = newSelSet
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveFragDef {
		v.LeaveFragmentDefinition(frag)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Definition); ok {
			return replacement, true
		}
	}
	return result, true
}

func (w *Walker) walkVariableDefinition(vd *ast.VariableDefinition) (*ast.VariableDefinition, bool) {
	for _, v := range w.enterVarDef {
		v.EnterVariableDefinition(vd)
	}
	if w.stop {
		return vd, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.VariableDefinition); ok {
			return w.walkVariableDefinition(replacement)
		}
	}

	result := vd
	if !w.skip {
		w.push(vd)
		newDirectives, changed := walkSlice(w, vd.Directives, w.walkDirective)
		w.pop()
		if changed {
			cp := *vd
			cp.Directives = newDirectives
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveVarDef {
		v.LeaveVariableDefinition(vd)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.VariableDefinition); ok {
			return replacement, true
		}
	}
	return result, true
}

// walkChildSelectionSet is the nil-safe, changed-flag-producing form of
// walkSelectionSet used by callers holding a *ast.SelectionSet field that
// may need to become nil (deleted) or a fresh pointer (edited).
func (w *Walker) walkChildSelectionSet(set *ast.SelectionSet) (*ast.SelectionSet, bool) {
	if set == nil || w.stop {
		return set, false
	}
	edited, kept := w.walkSelectionSet(set)
	if !kept {
		return nil, true
	}
	return edited, edited != set
}

func (w *Walker) walkSelectionSet(set *ast.SelectionSet) (*ast.SelectionSet, bool) {
	if set == nil {
		return nil, true
	}
	for _, v := range w.enterSelSet {
		v.EnterSelectionSet(set)
	}
	if w.stop {
		return set, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.SelectionSet); ok {
			return w.walkSelectionSet(replacement)
		}
	}

	result := set
	if !w.skip {
		w.push(set)
		newSelections, changed := walkSlice(w, set.Selections, w.walkSelectionDispatch)
		w.pop()
		if changed {
			cp := *set
			cp.Selections = newSelections
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveSelSet {
		v.LeaveSelectionSet(set)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.SelectionSet); ok {
			return replacement, true
		}
	}
	return result, true
}

func (w *Walker) walkField(field *ast.Field) (ast.Selection, bool) {
	w.pushPathKey(field.ResponseName())
	parentType := w.EnclosingTypeName
	for _, v := range w.enterField {
		v.EnterField(field)
	}
	if w.stop {
		w.popPath()
		return field, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		w.popPath()
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Selection); ok {
			return w.walkSelectionDispatch(replacement)
		}
		w.pushPathKey(field.ResponseName())
	}

	var result ast.Selection = field
	if !w.skip {
		w.push(field)
		newArgs, argsChanged := walkSlice(w, field.Arguments, w.walkArgument)
		var newDirectives []*ast.Directive
		var dirsChanged bool
		if !w.stop {
			newDirectives, dirsChanged = walkSlice(w, field.Directives, w.walkDirective)
		} else {
			newDirectives = field.Directives
		}
		if !w.stop && field.SelectionSet != nil && w.types != nil && parentType != "" {
			if next, ok := w.types.FieldTypeName(parentType, field.Name.Value); ok {
				w.EnclosingTypeName = next
			}
		}
		newSelSet, selChanged := w.walkChildSelectionSet(field.SelectionSet)
		w.EnclosingTypeName = parentType
		w.pop()
		if argsChanged || dirsChanged || selChanged {
			cp := *field
			cp.Arguments = newArgs
			cp.Directives = newDirectives
			cp.SelectionSet = newSelSet
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		w.popPath()
		return result, true
	}
	for _, v := range w.leaveField {
		v.LeaveField(field)
	}
	w.popPath()
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Selection); ok {
			return replacement, true
		}
	}
	return result, true
}

func (w *Walker) walkFragmentSpread(spread *ast.FragmentSpread) (ast.Selection, bool) {
	for _, v := range w.enterFragSpr {
		v.EnterFragmentSpread(spread)
	}
	if w.stop {
		return spread, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Selection); ok {
			return w.walkSelectionDispatch(replacement)
		}
	}

	result := ast.Selection(spread)
	if !w.skip {
		w.push(spread)
		newDirectives, changed := walkSlice(w, spread.Directives, w.walkDirective)
		w.pop()
		if changed {
			cp := *spread
			cp.Directives = newDirectives
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveFragSpr {
		v.LeaveFragmentSpread(spread)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Selection); ok {
			return replacement, true
		}
	}
	return result, true
}

func (w *Walker) walkInlineFragment(frag *ast.InlineFragment) (ast.Selection, bool) {
	for _, v := range w.enterInlineFrg {
		v.EnterInlineFragment(frag)
	}
	if w.stop {
		return frag, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Selection); ok {
			return w.walkSelectionDispatch(replacement)
		}
	}

	result := ast.Selection(frag)
	if !w.skip {
		w.push(frag)
		parentType := w.EnclosingTypeName
		if frag.TypeCondition != nil {
			w.EnclosingTypeName = frag.TypeCondition.Value
		}
		newDirectives, dirsChanged := walkSlice(w, frag.Directives, w.walkDirective)
		newSelSet, selChanged := w.walkChildSelectionSet(frag.SelectionSet)
		w.EnclosingTypeName = parentType
		w.pop()
		if dirsChanged || selChanged {
			cp := *frag
			cp.Directives = newDirectives
			cp.SelectionSet = newSelSet
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveInlineFrg {
		v.LeaveInlineFragment(frag)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(ast.Selection); ok {
			return replacement, true
		}
	}
	return result, true
}

func (w *Walker) walkArgument(arg *ast.Argument) (*ast.Argument, bool) {
	for _, v := range w.enterArgument {
		v.EnterArgument(arg)
	}
	if w.stop {
		return arg, true
	}
	result := arg
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.Argument); ok {
			result = replacement
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveArgument {
		v.LeaveArgument(arg)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.Argument); ok {
			result = replacement
		}
	}
	return result, true
}

func (w *Walker) walkDirective(d *ast.Directive) (*ast.Directive, bool) {
	for _, v := range w.enterDirective {
		v.EnterDirective(d)
	}
	if w.stop {
		return d, true
	}
	if n, deleted, had := w.consumeEdit(); had {
		w.skip = false
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.Directive); ok {
			return w.walkDirective(replacement)
		}
	}

	result := d
	if !w.skip {
		w.push(d)
		newArgs, changed := walkSlice(w, d.Arguments, w.walkArgument)
		w.pop()
		if changed {
			cp := *d
			cp.Arguments = newArgs
			result = &cp
		}
	}
	w.skip = false
	if w.stop {
		return result, true
	}
	for _, v := range w.leaveDirective {
		v.LeaveDirective(d)
	}
	if n, deleted, had := w.consumeEdit(); had {
		if deleted {
			return nil, false
		}
		if replacement, ok := n.(*ast.Directive); ok {
			result = replacement
		}
	}
	return result, true
}
