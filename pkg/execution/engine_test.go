package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_RequiresSchema(t *testing.T) {
	_, err := NewEngine(Config{})
	require.Error(t, err)
}

func TestNewEngine_DefaultsResolversAndInstrumentation(t *testing.T) {
	sch := mustBuildSchema(t)
	engine, err := NewEngine(Config{Schema: sch})
	require.NoError(t, err)
	assert.NotNil(t, engine.resolvers)
	assert.NotNil(t, engine.instrumentation)
	assert.NotNil(t, engine.logger)
}

func TestNewEngine_KeepsProvidedResolvers(t *testing.T) {
	sch := mustBuildSchema(t)
	resolvers := NewResolvers()
	engine, err := NewEngine(Config{Schema: sch, Resolvers: resolvers})
	require.NoError(t, err)
	assert.Same(t, resolvers, engine.resolvers)
}
