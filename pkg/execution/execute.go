package execution

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/introspection"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// Execute implements spec.md §4.8's five execution steps: select the
// operation, coerce variables, collect the root selection set, resolve each
// root field (mutation fields strictly in document order; query and
// subscription fields concurrently, since they share no mutable state), and
// shape the {data, errors} result.
func (e *Engine) Execute(ctx context.Context, document *ast.Document, rootValue any, variables map[string]any, operationName string) *Result {
	start := time.Now()
	report := &operationreport.Report{}

	op := document.OperationByName(operationName)
	if op == nil {
		report.AddExternalError(operationreport.ValidationError("Must provide an operation."))
		return e.finishExecute(ctx, start, operationName, report, nil)
	}
	if op.Operation == ast.OperationTypeSubscription {
		report.AddExternalError(operationreport.ValidationError("Use Subscribe for subscription operations."))
		return e.finishExecute(ctx, start, operationName, report, nil)
	}

	rootTypeName := e.schema.RootOperationTypeName(op.Operation)
	rootType, ok := e.schema.Types[rootTypeName]
	if !ok {
		report.AddExternalError(operationreport.ValidationError(fmt.Sprintf("Schema is not configured for %ss.", op.Operation)))
		return e.finishExecute(ctx, start, operationName, report, nil)
	}

	coerced := coerceVariables(e.schema, op, variables, report)
	if report.HasErrors() {
		return e.finishExecute(ctx, start, operationName, report, nil)
	}

	fragments := map[string]*ast.FragmentDefinition{}
	for _, f := range document.Fragments() {
		fragments[f.Name.Value] = f
	}

	ec := &execContext{engine: e, ctx: ctx, variables: coerced, fragments: fragments, report: report}
	data, _ := ec.executeSelectionSet(rootType, rootValue, op.SelectionSet, nil, op.Operation == ast.OperationTypeMutation)
	return e.finishExecute(ctx, start, operationName, report, data)
}

func (e *Engine) finishExecute(ctx context.Context, start time.Time, operationName string, report *operationreport.Report, data *OrderedMap) *Result {
	result := &Result{Data: data, Errors: report.ExternalErrors}
	e.instrumentation.OnExecute(ctx, start, time.Now(), operationName, result)
	return result
}

// executeSelectionSet resolves one object's field groups against set. The
// second return value reports whether a non-null violation among this
// object's fields must propagate to null out the whole object (spec.md §4.8
// step 4).
func (ec *execContext) executeSelectionSet(objectType *schema.Type, source any, set *ast.SelectionSet, path []PathElement, sequential bool) (*OrderedMap, bool) {
	// Entering a sub-selection is itself a suspension point (spec.md §5).
	if err := ec.ctx.Err(); err != nil {
		ec.addFieldError(err.Error(), path)
		return nil, false
	}

	groups := collectFields(ec.engine.schema, ec.fragments, set, ec.variables, objectType.Name, map[string]bool{})
	result := NewOrderedMap()

	if sequential || len(groups) <= 1 {
		for _, g := range groups {
			value, propagate := ec.resolveAndCompleteField(objectType, g, source, childPath(path, g.responseName))
			if propagate {
				return nil, true
			}
			result.Set(g.responseName, value)
		}
		return result, false
	}

	values := make([]any, len(groups))
	propagated := make([]bool, len(groups))
	var grp errgroup.Group
	for i, g := range groups {
		i, g := i, g
		grp.Go(func() error {
			v, propagate := ec.resolveAndCompleteField(objectType, g, source, childPath(path, g.responseName))
			values[i], propagated[i] = v, propagate
			return nil
		})
	}
	_ = grp.Wait()

	for i, g := range groups {
		if propagated[i] {
			return nil, true
		}
		result.Set(g.responseName, values[i])
	}
	return result, false
}

func childPath(path []PathElement, name string) []PathElement {
	out := make([]PathElement, len(path), len(path)+1)
	copy(out, path)
	return append(out, PathElement{Name: name, IsKey: true})
}

// resolveAndCompleteField resolves one field group's value and completes it
// against the field's declared type.
func (ec *execContext) resolveAndCompleteField(parentType *schema.Type, g *fieldGroup, source any, path []PathElement) (any, bool) {
	field := g.fields[0]
	if field.Name.Value == "__typename" {
		return parentType.Name, false
	}

	fieldDef, ok := parentType.Field(field.Name.Value)
	if !ok {
		// Unreachable past validation, but execution must not assume a
		// prior Validate call happened (spec.md §4.8 allows executing an
		// unvalidated document against a trusted caller).
		return nil, false
	}

	args, err := ec.argsFromAST(field.Arguments, fieldDef.Arguments)
	if err != nil {
		ec.addFieldError(err.Error(), path, field)
		return ec.nullOrPropagate(fieldDef.Type)
	}

	// Resolver invocation is a suspension point (spec.md §5): check
	// cancellation before doing the work rather than after.
	if err := ec.ctx.Err(); err != nil {
		ec.addFieldError(err.Error(), path, field)
		return ec.nullOrPropagate(fieldDef.Type)
	}

	info := Info{
		FieldName:      field.Name.Value,
		ParentTypeName: parentType.Name,
		ReturnTypeName: fieldDef.Type.NamedTypeName(),
		Path:           path,
		Variables:      ec.variables,
	}

	resolver, ok := ec.engine.resolvers.lookup(parentType.Name, field.Name.Value)
	if !ok {
		resolver = DefaultFieldResolver
		switch field.Name.Value {
		case "__schema":
			resolver = func(context.Context, any, map[string]any, Info) (any, error) {
				return introspection.SchemaValue(ec.engine.schema), nil
			}
		case "__type":
			resolver = func(_ context.Context, _ any, args map[string]any, _ Info) (any, error) {
				name, _ := args["name"].(string)
				return introspection.TypeByName(ec.engine.schema, name), nil
			}
		}
	}

	resolveStart := time.Now()
	value, err := ec.callResolver(resolver, source, args, info)
	ec.engine.instrumentation.OnResolveField(ec.ctx, resolveStart, time.Now(), info, value, err)
	if err != nil {
		ec.addFieldError(err.Error(), path, field)
		return ec.nullOrPropagate(fieldDef.Type)
	}

	return ec.completeValue(fieldDef.Type, value, path, mergeSelectionSets(g.fields))
}

func (ec *execContext) nullOrPropagate(t *schema.TypeRef) (any, bool) {
	return nil, t.IsNonNull()
}

// callResolver invokes fn, converting a resolver panic into an error rather
// than letting it escape the executor (spec.md §7 treats a failing resolver
// the same whether it returned an error or panicked).
func (ec *execContext) callResolver(fn FieldResolveFunc, source any, args map[string]any, info Info) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic resolving %s.%s: %v", info.ParentTypeName, info.FieldName, r)
		}
	}()
	return fn(ec.ctx, source, args, info)
}

// argsFromAST coerces a field/directive's argument literals (which may
// reference variables) against its declared argument types.
func (ec *execContext) argsFromAST(args []*ast.Argument, defs map[string]*schema.InputValue) (map[string]any, error) {
	provided := map[string]*ast.Argument{}
	for _, a := range args {
		provided[a.Name.Value] = a
	}
	out := map[string]any{}
	for name, def := range defs {
		if a, ok := provided[name]; ok {
			v, err := valueFromAST(ec.engine.schema, a.Value, def.Type, ec.variables)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", name, err)
			}
			out[name] = v
			continue
		}
		if def.DefaultValue != nil {
			v, err := valueFromAST(ec.engine.schema, def.DefaultValue, def.Type, nil)
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
	}
	return out, nil
}

// mergeSelectionSets concatenates the sub-selection sets of every Field
// merged into one response-name group, per spec.md §4.8 step 4's field
// merging.
func mergeSelectionSets(fields []*ast.Field) *ast.SelectionSet {
	if len(fields) == 1 {
		return fields[0].SelectionSet
	}
	merged := &ast.SelectionSet{}
	for _, f := range fields {
		if f.SelectionSet == nil {
			continue
		}
		merged.Selections = append(merged.Selections, f.SelectionSet.Selections...)
	}
	if len(merged.Selections) == 0 {
		return nil
	}
	return merged
}
