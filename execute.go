package gqlcore

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jensneuse/abstractlogger"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/execution"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// parsedDocumentCache memoizes Graphql's parse step keyed by the xxhash of
// the raw request string, so a client replaying the same persisted query
// text doesn't pay lexing/parsing cost on every call.
var parsedDocumentCache, _ = lru.New[uint64, *ast.Document](512)

// Result is the {data, errors} execution outcome.
type Result = execution.Result

// ExecuteParams collects execute/subscribe's optional inputs beyond
// schema+document, mirroring the `{root_value, context, variables,
// operation_name}` options bag of spec.md §6 (context is instead carried as
// Execute/Subscribe's ctx parameter, idiomatic Go's equivalent).
type ExecuteParams struct {
	RootValue       any
	Variables       map[string]any
	OperationName   string
	Resolvers       *execution.Resolvers
	Instrumentation execution.Instrumentation
	Logger          abstractlogger.Logger
}

func (p ExecuteParams) engineConfig(sch *schema.Schema) execution.Config {
	return execution.Config{
		Schema:          sch,
		Resolvers:       p.Resolvers,
		Logger:          p.Logger,
		Instrumentation: p.Instrumentation,
	}
}

func errResult(err error) *Result {
	return &Result{Errors: []operationreport.ExternalError{operationreport.ValidationError(err.Error())}}
}

// Execute runs document against sch, implementing spec.md §4.8's five
// execution steps.
func Execute(ctx context.Context, sch *schema.Schema, document *ast.Document, params ExecuteParams) *Result {
	engine, err := execution.NewEngine(params.engineConfig(sch))
	if err != nil {
		return errResult(err)
	}
	return engine.Execute(ctx, document, params.RootValue, params.Variables, params.OperationName)
}

// Subscribe runs a subscription operation, streaming one Result per
// upstream event until the event source closes or ctx is canceled.
func Subscribe(ctx context.Context, sch *schema.Schema, document *ast.Document, params ExecuteParams) (<-chan *Result, error) {
	engine, err := execution.NewEngine(params.engineConfig(sch))
	if err != nil {
		return nil, err
	}
	return engine.Subscribe(ctx, document, params.RootValue, params.Variables, params.OperationName)
}

// Graphql is the parse+validate+execute convenience entry point of
// spec.md §6's `graphql(schema, request_string, …)`.
func Graphql(ctx context.Context, sch *schema.Schema, requestSource string, params ExecuteParams) *Result {
	traceID := uuid.New().String()
	logger := params.Logger
	if logger == nil {
		logger = abstractlogger.Noop{}
	}
	logger.Debug("graphql request", abstractlogger.String("traceId", traceID))

	key := xxhash.Sum64String(requestSource)
	doc, ok := parsedDocumentCache.Get(key)
	if !ok {
		var report *operationreport.Report
		doc, report = astparser.Parse(ast.NewSource([]byte(requestSource), "request"), astparser.Options{})
		if report.HasErrors() {
			return &Result{Errors: report.ExternalErrors}
		}
		parsedDocumentCache.Add(key, doc)
	}
	if valReport := Validate(doc, sch); valReport.HasErrors() {
		return &Result{Errors: valReport.ExternalErrors}
	}
	return Execute(ctx, sch, doc, params)
}
