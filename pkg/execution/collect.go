package execution

import (
	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// fieldGroup is one response-name group produced by collectFields: every
// selection occurrence for that key, merged per spec.md §4.8 step 4.
type fieldGroup struct {
	responseName string
	fields       []*ast.Field
}

// collectFields implements spec.md §4.8 step 4's "Collect fields": group
// selections by response name, honoring @skip/@include and applying
// fragments whose type condition matches runtimeTypeName.
func collectFields(sch *schema.Schema, fragments map[string]*ast.FragmentDefinition, set *ast.SelectionSet, variables map[string]any, runtimeTypeName string, visitedFragments map[string]bool) []*fieldGroup {
	order := []string{}
	groups := map[string][]*ast.Field{}
	if set == nil {
		return nil
	}
	for _, sel := range set.Selections {
		switch s := sel.(type) {
		case *ast.Field:
			if !directivesAllow(s.Directives, variables) {
				continue
			}
			name := s.ResponseName()
			if _, ok := groups[name]; !ok {
				order = append(order, name)
			}
			groups[name] = append(groups[name], s)
		case *ast.InlineFragment:
			if !directivesAllow(s.Directives, variables) {
				continue
			}
			if s.TypeCondition != nil && !typeConditionMatches(sch, s.TypeCondition.Value, runtimeTypeName) {
				continue
			}
			for _, g := range collectFields(sch, fragments, s.SelectionSet, variables, runtimeTypeName, visitedFragments) {
				if _, ok := groups[g.responseName]; !ok {
					order = append(order, g.responseName)
				}
				groups[g.responseName] = append(groups[g.responseName], g.fields...)
			}
		case *ast.FragmentSpread:
			if !directivesAllow(s.Directives, variables) {
				continue
			}
			if visitedFragments[s.Name.Value] {
				continue
			}
			frag, ok := fragments[s.Name.Value]
			if !ok {
				continue
			}
			if !typeConditionMatches(sch, frag.TypeCondition.Value, runtimeTypeName) {
				continue
			}
			visitedFragments[s.Name.Value] = true
			for _, g := range collectFields(sch, fragments, frag.SelectionSet, variables, runtimeTypeName, visitedFragments) {
				if _, ok := groups[g.responseName]; !ok {
					order = append(order, g.responseName)
				}
				groups[g.responseName] = append(groups[g.responseName], g.fields...)
			}
		}
	}
	out := make([]*fieldGroup, len(order))
	for i, name := range order {
		out[i] = &fieldGroup{responseName: name, fields: groups[name]}
	}
	return out
}

// typeConditionMatches reports whether a fragment conditioned on
// conditionType applies to an object of runtimeTypeName: equal named
// types, an implemented interface, or a union member.
func typeConditionMatches(sch *schema.Schema, conditionType, runtimeTypeName string) bool {
	if conditionType == runtimeTypeName {
		return true
	}
	ct, ok := sch.Types[conditionType]
	if !ok {
		return false
	}
	switch ct.TypeKind {
	case schema.KindInterface:
		if rt, ok := sch.Types[runtimeTypeName]; ok {
			return rt.Implements(conditionType)
		}
	case schema.KindUnion:
		for _, m := range ct.PossibleTypes {
			if m == runtimeTypeName {
				return true
			}
		}
	}
	return false
}

// directivesAllow evaluates @skip/@include against the coerced variable
// map, per spec.md §4.8 step 4.
func directivesAllow(directives []*ast.Directive, variables map[string]any) bool {
	for _, d := range directives {
		switch d.Name.Value {
		case "skip":
			if v := directiveIfArg(d, variables); v {
				return false
			}
		case "include":
			if !directiveIfArg(d, variables) {
				return false
			}
		}
	}
	return true
}

func directiveIfArg(d *ast.Directive, variables map[string]any) bool {
	arg := d.Argument("if")
	if arg == nil {
		return false
	}
	if arg.Value.ValueKind == ast.ValueKindVariable {
		b, _ := variables[arg.Value.VariableName].(bool)
		return b
	}
	return arg.Value.BooleanValue
}
