package execution

import (
	"context"
	"testing"

	"github.com/jensneuse/abstractlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewZapLogger_WiresIntoEngineAndLogsFieldErrors(t *testing.T) {
	sch := mustBuildSchema(t)
	zl := zap.NewNop()
	resolvers := NewResolvers()
	resolvers.RegisterField("Query", "hello", func(ctx context.Context, source any, args map[string]any, info Info) (any, error) {
		return 123, nil // wrong type for String!, exercises the field-error log path
	})
	engine, err := NewEngine(Config{Schema: sch, Resolvers: resolvers, Logger: NewZapLogger(zl, abstractlogger.ErrorLevel)})
	require.NoError(t, err)

	doc := mustParse(t, `{ hello }`)
	result := engine.Execute(context.Background(), doc, nil, nil, "")
	assert.NotEmpty(t, result.Errors)
}
