// Package astvalidation implements the Validator of spec.md §4.7: a
// document-vs-schema rule set that walks an executable Document carrying a
// type-info stack (parent type, field definition, argument definition,
// directive definition) and reports a GraphQLError per violated rule.
// Reporting is additive — every rule runs to completion and every
// violation is collected, no short-circuit on the first error.
//
// Grounded on graphql-go-tools' EnterField-registered-visitor /
// walker.EnclosingTypeDefinition idiom (v2/pkg/engine/plan/
// datasource_filter_visitor.go), reused here via pkg/astvisitor against
// pkg/schema's Schema as the TypeResolver. No retrievable original_source
// covered a validator, so the specific rule set follows the standard
// GraphQL reference algorithm (graphql-js's specifiedRules), expressed in
// graphql-go-tools' visitor idiom rather than ported from any one file.
package astvalidation

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// Validate runs the full rule set from spec.md §4.7 against document using
// sch as the type system, returning a Report with every violation found.
func Validate(document *ast.Document, sch *schema.Schema) *operationreport.Report {
	report := &operationreport.Report{}
	ctx := &context{
		document:  document,
		schema:    sch,
		report:    report,
		fragments: map[string]*ast.FragmentDefinition{},
	}

	var operations []*ast.OperationDefinition
	operationNames := map[string]int{}
	for _, def := range document.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			operations = append(operations, d)
			if d.Name != nil {
				operationNames[d.Name.Value]++
			}
		case *ast.FragmentDefinition:
			if _, exists := ctx.fragments[d.Name.Value]; exists {
				ctx.errorf(fmt.Sprintf("There can be only one fragment named %q.", d.Name.Value), d)
			} else {
				ctx.fragments[d.Name.Value] = d
			}
		}
	}

	for name, count := range operationNames {
		if count > 1 {
			ctx.errorf(fmt.Sprintf("There can be only one operation named %q.", name))
		}
	}
	if len(operations) > 1 {
		for _, op := range operations {
			if op.Name == nil {
				ctx.errorf("This anonymous operation must be the only defined operation.", op)
			}
		}
	}

	ctx.validateFragmentTypeConditions()
	ctx.validateNoFragmentCycles()

	for _, op := range operations {
		ctx.validateOperation(op)
	}
	ctx.validateUnusedFragments(operations)

	ctx.runTypeInfoPass()

	return report
}

type context struct {
	document  *ast.Document
	schema    *schema.Schema
	report    *operationreport.Report
	fragments map[string]*ast.FragmentDefinition
}

func (c *context) errorf(message string, nodes ...ast.Node) {
	c.report.AddExternalError(operationreport.ValidationError(message, nodes...))
}

// validateFragmentTypeConditions implements "fragments on composite types"
// and "known type names" for every FragmentDefinition and InlineFragment
// type condition in the document.
func (c *context) validateFragmentTypeConditions() {
	check := func(name *ast.Name, nodeForLoc ast.Node) {
		if name == nil {
			return
		}
		t, ok := c.schema.Types[name.Value]
		if !ok {
			c.errorf(fmt.Sprintf("Unknown type %q.", name.Value), nodeForLoc)
			return
		}
		if !t.IsComposite() {
			c.errorf(fmt.Sprintf("Fragment cannot condition on non composite type %q.", name.Value), nodeForLoc)
		}
	}
	for _, frag := range c.fragments {
		check(frag.TypeCondition, frag)
	}
	forEachInlineFragment(c.document, func(f *ast.InlineFragment) {
		check(f.TypeCondition, f)
	})
}

// validateNoFragmentCycles runs a DFS with a visited set and an on-stack
// set over the fragment-spread graph, mirroring the input-object cycle
// check in pkg/schema/build.go.
func (c *context) validateNoFragmentCycles() {
	visited := map[string]bool{}
	onStack := map[string]bool{}
	var visit func(name string) bool
	visit = func(name string) bool {
		if onStack[name] {
			return true
		}
		if visited[name] {
			return false
		}
		visited[name] = true
		onStack[name] = true
		frag, ok := c.fragments[name]
		if ok {
			cyclic := false
			forEachFragmentSpread(frag.SelectionSet, func(s *ast.FragmentSpread) {
				if visit(s.Name.Value) {
					cyclic = true
				}
			})
			if cyclic {
				onStack[name] = false
				return true
			}
		}
		onStack[name] = false
		return false
	}
	for name, frag := range c.fragments {
		if visit(name) {
			c.errorf(fmt.Sprintf("Cannot spread fragment %q within itself.", name), frag)
		}
	}
}

// validateOperation implements "all variables declared", "no unused
// variables", and (transitively, through spreads) the variable-usage half
// of "no undefined variables".
func (c *context) validateOperation(op *ast.OperationDefinition) {
	declared := map[string]*ast.VariableDefinition{}
	for _, vd := range op.VariableDefinitions {
		if _, exists := declared[vd.Variable.Value]; exists {
			c.errorf(fmt.Sprintf("There can be only one variable named \"$%s\".", vd.Variable.Value), vd)
			continue
		}
		declared[vd.Variable.Value] = vd
	}

	used := map[string]bool{}
	seenFragments := map[string]bool{}
	var walkSet func(set *ast.SelectionSet)
	walkSet = func(set *ast.SelectionSet) {
		if set == nil {
			return
		}
		for _, sel := range set.Selections {
			switch s := sel.(type) {
			case *ast.Field:
				for _, a := range s.Arguments {
					markVariables(a.Value, used)
				}
				markDirectiveVariables(s.Directives, used)
				walkSet(s.SelectionSet)
			case *ast.InlineFragment:
				markDirectiveVariables(s.Directives, used)
				walkSet(s.SelectionSet)
			case *ast.FragmentSpread:
				markDirectiveVariables(s.Directives, used)
				if !seenFragments[s.Name.Value] {
					seenFragments[s.Name.Value] = true
					if frag, ok := c.fragments[s.Name.Value]; ok {
						walkSet(frag.SelectionSet)
					}
				}
			}
		}
	}
	walkSet(op.SelectionSet)

	for name := range used {
		if _, ok := declared[name]; !ok {
			c.errorf(fmt.Sprintf("Variable \"$%s\" is not defined.", name), op)
		}
	}
	for name, vd := range declared {
		if !used[name] {
			opLabel := "anonymous operation"
			if op.Name != nil {
				opLabel = fmt.Sprintf("operation %q", op.Name.Value)
			}
			c.errorf(fmt.Sprintf("Variable \"$%s\" is never used in %s.", name, opLabel), vd)
		}
	}
}

// validateUnusedFragments implements "no unused fragments": a fragment not
// transitively reachable from any operation's selection set is unused.
func (c *context) validateUnusedFragments(operations []*ast.OperationDefinition) {
	reachable := map[string]bool{}
	var mark func(set *ast.SelectionSet)
	mark = func(set *ast.SelectionSet) {
		forEachFragmentSpread(set, func(s *ast.FragmentSpread) {
			if reachable[s.Name.Value] {
				return
			}
			reachable[s.Name.Value] = true
			if frag, ok := c.fragments[s.Name.Value]; ok {
				mark(frag.SelectionSet)
			}
		})
	}
	for _, op := range operations {
		mark(op.SelectionSet)
	}
	for name, frag := range c.fragments {
		if !reachable[name] {
			c.errorf(fmt.Sprintf("Fragment %q is never used.", name), frag)
		}
	}
}

func markVariables(v *ast.Value, used map[string]bool) {
	if v == nil {
		return
	}
	switch v.ValueKind {
	case ast.ValueKindVariable:
		used[v.VariableName] = true
	case ast.ValueKindList:
		for _, e := range v.ListValues {
			markVariables(e, used)
		}
	case ast.ValueKindObject:
		for _, f := range v.ObjectFields {
			markVariables(f.Value, used)
		}
	}
}

func markDirectiveVariables(directives []*ast.Directive, used map[string]bool) {
	for _, d := range directives {
		for _, a := range d.Arguments {
			markVariables(a.Value, used)
		}
	}
}

func forEachFragmentSpread(set *ast.SelectionSet, fn func(*ast.FragmentSpread)) {
	if set == nil {
		return
	}
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			forEachFragmentSpread(s.SelectionSet, fn)
		case *ast.InlineFragment:
			forEachFragmentSpread(s.SelectionSet, fn)
		case *ast.FragmentSpread:
			fn(s)
		}
	}
}

func forEachInlineFragment(document *ast.Document, fn func(*ast.InlineFragment)) {
	var walkSet func(set *ast.SelectionSet)
	walkSet = func(set *ast.SelectionSet) {
		if set == nil {
			return
		}
		for _, sel := range set.Selections {
			switch s := sel.(type) {
			case *ast.Field:
				walkSet(s.SelectionSet)
			case *ast.InlineFragment:
				fn(s)
				walkSet(s.SelectionSet)
			}
		}
	}
	for _, def := range document.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			walkSet(d.SelectionSet)
		case *ast.FragmentDefinition:
			walkSet(d.SelectionSet)
		}
	}
}

// suggestField renders a "did you mean" hint using edit distance against
// candidate names, matching graphql-js's suggestion-list UX.
func suggestField(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if d > 2 {
			continue
		}
		if bestDist == -1 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" Did you mean %q?", best)
}
