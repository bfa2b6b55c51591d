// Package gqlcore is the public, convenience-oriented surface over the
// internal pkg/ast, pkg/astlexer, pkg/astparser, pkg/astprinter,
// pkg/astvisitor, pkg/schema, pkg/astvalidation, and pkg/execution
// packages: parse, print, visit, build a schema, validate, execute,
// subscribe, and the combined graphql() convenience entry point, plus the
// wire-format Request/Result types a transport layer would marshal.
package gqlcore

import (
	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
	"github.com/graphql-core/gqlcore/pkg/astprinter"
	"github.com/graphql-core/gqlcore/pkg/astvalidation"
	"github.com/graphql-core/gqlcore/pkg/astvisitor"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// Parse parses source into a Document.
func Parse(source *ast.Source, options astparser.Options) (*ast.Document, *operationreport.Report) {
	return astparser.Parse(source, options)
}

// ParseValue parses a single standalone value literal, e.g. for decoding a
// default value supplied out-of-band.
func ParseValue(source *ast.Source) (*ast.Value, *operationreport.Report) {
	return astparser.ParseValue(source)
}

// ParseType parses a single standalone type reference, e.g. `[String!]!`.
func ParseType(source *ast.Source) (*ast.Type, *operationreport.Report) {
	return astparser.ParseType(source)
}

// Print renders document back to GraphQL source text.
func Print(document *ast.Document) string {
	return astprinter.Print(document)
}

// Visit walks document, dispatching to whichever Enter*/Leave* callbacks v
// implements (see astvisitor.RegisterAllNodesVisitor). types resolves a
// field's declared type by name while walking, enabling type-aware visitors;
// pass nil for a purely structural walk.
//
// The returned Document reflects every edit v made via the Walker's
// ReplaceNode/DeleteNode during the walk; document itself is never
// modified, so callers that don't edit can ignore the return value.
func Visit(document *ast.Document, v any, types astvisitor.TypeResolver) (*ast.Document, *operationreport.Report) {
	report := &operationreport.Report{}
	w := astvisitor.NewWalker(48)
	w.RegisterAllNodesVisitor(v)
	edited := w.Walk(document, nil, types, report)
	return edited, report
}

// BuildSchema parses sdlSource and folds it into a Schema in one step.
func BuildSchema(sdlSource *ast.Source, cfg schema.Config) (*schema.Schema, *operationreport.Report) {
	doc, report := astparser.Parse(sdlSource, astparser.Options{})
	if report.HasErrors() {
		return nil, report
	}
	return BuildASTSchema(doc, cfg)
}

// BuildASTSchema folds an already-parsed type-system document into a Schema.
func BuildASTSchema(doc *ast.Document, cfg schema.Config) (*schema.Schema, *operationreport.Report) {
	return schema.Build(doc, cfg)
}

// PrintSchema renders sch back to SDL text.
func PrintSchema(sch *schema.Schema) string {
	return schema.PrintSchema(sch)
}

// Validate runs every structural and type-info validation rule against
// document, returning every violation found (validation never
// short-circuits at the first error).
func Validate(document *ast.Document, sch *schema.Schema) *operationreport.Report {
	return astvalidation.Validate(document, sch)
}
