// Package execution implements operation selection, variable coercion,
// field collection honoring @skip/@include and fragment type-condition
// matching, parallel query/subscription field resolution vs sequential
// mutation resolution, non-null/list propagation, scalar/enum
// serialization, a subscription event-source pump, and instrumentation
// hooks.
//
// Config+Logger+constructor idiom mirrors graphql-go-tools'
// engine/plan.NewPlanner(config) (*Planner, error).
package execution

import (
	"fmt"

	"github.com/jensneuse/abstractlogger"

	"github.com/graphql-core/gqlcore/pkg/schema"
)

// Config configures an Engine.
type Config struct {
	Schema *schema.Schema
	// Resolvers supplies field resolvers keyed by type name then field
	// name; a type/field absent here falls back to DefaultFieldResolver.
	Resolvers *Resolvers
	Logger    abstractlogger.Logger
	// Instrumentation receives on_parse/on_validate/on_execute/
	// on_resolve_field notifications; nil disables instrumentation.
	Instrumentation Instrumentation
}

// Engine executes Documents against one Schema.
type Engine struct {
	schema          *schema.Schema
	resolvers       *Resolvers
	logger          abstractlogger.Logger
	instrumentation Instrumentation
}

// NewEngine validates cfg and builds an Engine, mirroring graphql-go-tools'
// NewPlanner(config) (config, error) constructor shape.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Schema == nil {
		return nil, fmt.Errorf("execution: Config.Schema must not be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = abstractlogger.Noop{}
	}
	if cfg.Resolvers == nil {
		cfg.Resolvers = NewResolvers()
	}
	if cfg.Instrumentation == nil {
		cfg.Instrumentation = noopInstrumentation{}
	}
	return &Engine{
		schema:          cfg.Schema,
		resolvers:       cfg.Resolvers,
		logger:          cfg.Logger,
		instrumentation: cfg.Instrumentation,
	}, nil
}
