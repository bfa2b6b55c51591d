package execution

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// Subscribe implements spec.md §4.8's subscription execution: resolve the
// subscription root field's single selection down to an event source, then
// for every event re-run ordinary selection-set execution with the event as
// the root value, streaming one Result per event until the source closes or
// ctx is canceled.
func (e *Engine) Subscribe(ctx context.Context, document *ast.Document, rootValue any, variables map[string]any, operationName string) (<-chan *Result, error) {
	report := &operationreport.Report{}

	op := document.OperationByName(operationName)
	if op == nil {
		return nil, fmt.Errorf("execution: no operation named %q", operationName)
	}
	if op.Operation != ast.OperationTypeSubscription {
		return nil, fmt.Errorf("execution: Subscribe called with a %s operation, use Execute", op.Operation)
	}

	rootType, ok := e.schema.Types[e.schema.SubscriptionTypeName]
	if !ok {
		return nil, fmt.Errorf("execution: schema has no subscription root type")
	}

	coerced := coerceVariables(e.schema, op, variables, report)
	if report.HasErrors() {
		return nil, report
	}

	fragments := map[string]*ast.FragmentDefinition{}
	for _, f := range document.Fragments() {
		fragments[f.Name.Value] = f
	}

	groups := collectFields(e.schema, fragments, op.SelectionSet, coerced, rootType.Name, map[string]bool{})
	if len(groups) != 1 {
		return nil, fmt.Errorf("execution: a subscription operation must select exactly one root field")
	}
	group := groups[0]
	field := group.fields[0]

	fieldDef, ok := rootType.Field(field.Name.Value)
	if !ok {
		return nil, fmt.Errorf("execution: unknown subscription field %q", field.Name.Value)
	}

	bootstrap := &execContext{engine: e, ctx: ctx, variables: coerced, fragments: fragments, report: report}
	args, err := bootstrap.argsFromAST(field.Arguments, fieldDef.Arguments)
	if err != nil {
		return nil, fmt.Errorf("execution: %w", err)
	}

	subscribeFn, ok := e.resolvers.lookupSubscription(rootType.Name, field.Name.Value)
	if !ok {
		return nil, fmt.Errorf("execution: no subscription resolver registered for %s.%s", rootType.Name, field.Name.Value)
	}

	info := Info{
		FieldName:      field.Name.Value,
		ParentTypeName: rootType.Name,
		ReturnTypeName: fieldDef.Type.NamedTypeName(),
		Variables:      coerced,
	}
	events, err := subscribeFn(ctx, rootValue, args, info)
	if err != nil {
		return nil, err
	}

	out := make(chan *Result)
	go e.pumpSubscription(ctx, out, events, rootType, fragments, coerced, op, operationName)
	return out, nil
}

func (e *Engine) pumpSubscription(ctx context.Context, out chan<- *Result, events <-chan any, rootType *schema.Type, fragments map[string]*ast.FragmentDefinition, variables map[string]any, op *ast.OperationDefinition, operationName string) {
	defer close(out)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			start := time.Now()
			report := &operationreport.Report{}
			ec := &execContext{engine: e, ctx: ctx, variables: variables, fragments: fragments, report: report}
			data, _ := ec.executeSelectionSet(rootType, event, op.SelectionSet, nil, false)
			result := &Result{Data: data, Errors: report.ExternalErrors}
			e.instrumentation.OnExecute(ctx, start, time.Now(), operationName, result)
			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}
