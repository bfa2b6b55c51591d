package gqlcore

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astparser"
)

// Request is the wire format of spec.md §6: `query`, optional
// `operationName`, optional `variables`.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// ParseRequest extracts query/operationName/variables from a raw JSON
// request body using gjson, without a full json.Unmarshal into an
// intermediate struct.
func ParseRequest(raw []byte) (*Request, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("gqlcore: request body is not valid JSON")
	}
	parsed := gjson.ParseBytes(raw)
	query := parsed.Get("query")
	if !query.Exists() || query.Type != gjson.String {
		return nil, fmt.Errorf("gqlcore: request body must have a string \"query\" field")
	}
	req := &Request{Query: query.String()}
	if name := parsed.Get("operationName"); name.Exists() && name.Type == gjson.String {
		req.OperationName = name.String()
	}
	if vars := parsed.Get("variables"); vars.Exists() && vars.IsObject() {
		m, ok := vars.Value().(map[string]any)
		if ok {
			req.Variables = m
		}
	}
	return req, nil
}

// IsSubscription parses r.Query and reports whether the operation that
// would run (named by r.OperationName, or the lone operation when it's
// empty) is a subscription, per spec.md §6's `isSubscription` predicate.
func (r *Request) IsSubscription() (bool, error) {
	doc, report := astparser.Parse(ast.NewSource([]byte(r.Query), "request"), astparser.Options{})
	if report.HasErrors() {
		return false, fmt.Errorf("gqlcore: %s", report.Error())
	}
	op := doc.OperationByName(r.OperationName)
	if op == nil {
		return false, fmt.Errorf("gqlcore: no operation named %q", r.OperationName)
	}
	return op.Operation == ast.OperationTypeSubscription, nil
}
