package execution

import (
	"context"
	"time"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

// Instrumentation implements the four hooks of spec.md §4.8: on_parse,
// on_validate, on_execute, on_resolve_field. Each receives start/finish
// timestamps, the inputs, and the outcome; hooks never alter behavior.
type Instrumentation interface {
	OnParse(ctx context.Context, start, finish time.Time, source string, doc *ast.Document, report *operationreport.Report)
	OnValidate(ctx context.Context, start, finish time.Time, doc *ast.Document, report *operationreport.Report)
	OnExecute(ctx context.Context, start, finish time.Time, operationName string, result *Result)
	OnResolveField(ctx context.Context, start, finish time.Time, info Info, value any, err error)
}

type noopInstrumentation struct{}

func (noopInstrumentation) OnParse(context.Context, time.Time, time.Time, string, *ast.Document, *operationreport.Report) {
}
func (noopInstrumentation) OnValidate(context.Context, time.Time, time.Time, *ast.Document, *operationreport.Report) {
}
func (noopInstrumentation) OnExecute(context.Context, time.Time, time.Time, string, *Result) {}
func (noopInstrumentation) OnResolveField(context.Context, time.Time, time.Time, Info, any, error) {
}
