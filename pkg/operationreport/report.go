// Package operationreport implements the error taxonomy of spec.md §7:
// syntax, validation, coercion, field and schema errors all surface as
// ExternalError values accumulated on a Report. SyntaxError, ValidationError
// and FieldError build them; coercion and schema-build errors are built with
// ValidationError.
//
// Grounded on graphql-go-tools' own report usage (`report := operationreport.Report{}`,
// `report.HasErrors()`) visible in v2/pkg/asttransform/baseschema.go and
// v2/pkg/engine/plan/datasource_filter_visitor.go.
package operationreport

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

// Position mirrors ast.Position for external consumption without importing
// the whole ast package's node model into error payloads.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// PathElement is either a string (object key) or an int (list index), per
// spec.md §6 response error `path`.
type PathElement struct {
	Name  string
	Index int
	IsKey bool
}

// ExternalError is a GraphQLError as described in spec.md §4.3/§7: message,
// byte positions, line/column locations, optional path, optional
// originating nodes, and an original_error chain.
type ExternalError struct {
	Message   string        `json:"message"`
	Positions []int         `json:"-"`
	Locations []Position    `json:"locations,omitempty"`
	Path      []PathElement `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`

	Nodes []ast.Node `json:"-"`

	// originalError chains the cause for server-side diagnostics
	// (spec.md §7). Never serialized to clients.
	originalError error
}

func (e ExternalError) Error() string { return e.Message }

// Unwrap exposes the original_error chain to errors.Is/errors.As.
func (e ExternalError) Unwrap() error { return e.originalError }

// WithOriginalError attaches the underlying cause (e.g. a lexer error) to an
// ExternalError, wrapping it with github.com/pkg/errors so server-side logs
// retain a stack trace.
func (e ExternalError) WithOriginalError(cause error) ExternalError {
	if cause != nil {
		e.originalError = errors.Wrap(cause, e.Message)
	}
	return e
}

// OriginalError returns the root cause chained via WithOriginalError, if
// any.
func (e ExternalError) OriginalError() error {
	return errors.Cause(e.originalError)
}

// InternalError represents a defect in gqlcore itself (as opposed to a
// malformed request) — e.g. an invariant violation discovered while
// building a schema. These are never sent to clients.
type InternalError struct {
	error
}

// Report accumulates errors from a single parse/validate/execute/build call.
// Reporting is additive: validation and execution collect every violation
// rather than stopping at the first (spec.md §4.7, §7).
type Report struct {
	InternalErrors []InternalError
	ExternalErrors []ExternalError
}

// HasErrors reports whether any internal or external error was recorded.
func (r *Report) HasErrors() bool {
	return len(r.InternalErrors) > 0 || len(r.ExternalErrors) > 0
}

// Error implements the error interface so a Report can itself be returned
// as an error (as graphql-go-tools' asttransform.MergeDefinitionWithBaseSchema
// does: `return report`).
func (r *Report) Error() string {
	if !r.HasErrors() {
		return ""
	}
	if len(r.ExternalErrors) == 1 && len(r.InternalErrors) == 0 {
		return r.ExternalErrors[0].Message
	}
	return fmt.Sprintf("%d error(s) occurred, first: %s", len(r.ExternalErrors)+len(r.InternalErrors), r.firstMessage())
}

func (r *Report) firstMessage() string {
	if len(r.ExternalErrors) > 0 {
		return r.ExternalErrors[0].Message
	}
	if len(r.InternalErrors) > 0 {
		return r.InternalErrors[0].Error()
	}
	return ""
}

// AddExternalError appends an ExternalError.
func (r *Report) AddExternalError(err ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, err)
}

// AddInternalError wraps and appends an internal error.
func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, InternalError{errors.WithStack(err)})
}

// Reset clears the report for reuse.
func (r *Report) Reset() {
	r.InternalErrors = r.InternalErrors[:0]
	r.ExternalErrors = r.ExternalErrors[:0]
}

// SyntaxError builds the ExternalError for a lexer/parser failure, including
// a caret-pointing source excerpt in Message (spec.md §4.3, §7).
func SyntaxError(source *ast.Source, offset int, message string) ExternalError {
	pos := Position{Line: 1, Column: 1}
	if source != nil {
		p := source.Position(offset)
		pos = Position{Line: p.Line, Column: p.Column}
	}
	excerpt := ""
	if source != nil {
		excerpt = CaretExcerpt(source, offset)
	}
	full := fmt.Sprintf("Syntax Error GraphQL (%d:%d) %s%s", pos.Line, pos.Column, message, excerpt)
	return ExternalError{
		Message:   full,
		Positions: []int{offset},
		Locations: []Position{pos},
	}
}

// CaretExcerpt renders the source line containing offset, followed by a
// caret line pointing at the column, matching spec.md §4.3's "caret-pointing
// source context (line above, offset marker below)".
func CaretExcerpt(source *ast.Source, offset int) string {
	body := source.Body
	lineStart := offset
	for lineStart > 0 && body[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := offset
	for lineEnd < len(body) && body[lineEnd] != '\n' {
		lineEnd++
	}
	line := string(body[lineStart:lineEnd])
	col := offset - lineStart
	caret := ""
	for i := 0; i < col; i++ {
		caret += " "
	}
	caret += "^"
	return "\n\n" + line + "\n" + caret
}

// ValidationError builds the ExternalError for one validator rule violation
// (spec.md §4.7).
func ValidationError(message string, nodes ...ast.Node) ExternalError {
	err := ExternalError{Message: message, Nodes: nodes}
	for _, n := range nodes {
		if loc := n.Loc(); loc != nil && loc.Source != nil {
			p := loc.Source.Position(loc.Start)
			err.Positions = append(err.Positions, loc.Start)
			err.Locations = append(err.Locations, Position{Line: p.Line, Column: p.Column})
		}
	}
	return err
}

// FieldError builds the ExternalError recorded when a resolver or scalar
// serializer fails, carrying the response path to the offending field
// (spec.md §4.8 step 4, §7).
func FieldError(message string, path []PathElement, nodes ...ast.Node) ExternalError {
	err := ValidationError(message, nodes...)
	err.Path = path
	return err
}
