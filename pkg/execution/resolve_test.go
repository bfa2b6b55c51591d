package execution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widgetStruct struct {
	Name string
}

func (w widgetStruct) Hello() string { return "from method" }

func TestDefaultFieldResolver_MapSource(t *testing.T) {
	v, err := DefaultFieldResolver(context.Background(), map[string]any{"name": "a widget"}, nil, Info{FieldName: "name"})
	require.NoError(t, err)
	assert.Equal(t, "a widget", v)
}

func TestDefaultFieldResolver_MapSourceMissingKeyIsNil(t *testing.T) {
	v, err := DefaultFieldResolver(context.Background(), map[string]any{}, nil, Info{FieldName: "name"})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDefaultFieldResolver_NilSourceIsNil(t *testing.T) {
	v, err := DefaultFieldResolver(context.Background(), nil, nil, Info{FieldName: "name"})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDefaultFieldResolver_StructField(t *testing.T) {
	v, err := DefaultFieldResolver(context.Background(), widgetStruct{Name: "a widget"}, nil, Info{FieldName: "name"})
	require.NoError(t, err)
	assert.Equal(t, "a widget", v)
}

func TestDefaultFieldResolver_StructMethod(t *testing.T) {
	v, err := DefaultFieldResolver(context.Background(), widgetStruct{}, nil, Info{FieldName: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "from method", v)
}

func TestDecodeArguments_DecodesIntoStruct(t *testing.T) {
	type args struct {
		Value string `graphql:"value"`
	}
	var out args
	err := DecodeArguments(map[string]any{"value": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi", out.Value)
}
