package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Equal_NilDocumentsCompareByIdentity(t *testing.T) {
	var a, b *Document
	assert.True(t, a.Equal(b))
	a = &Document{}
	assert.False(t, a.Equal(b))
}

func TestDocument_Equal_IgnoresLocation(t *testing.T) {
	field := func(loc *Location) *Field {
		return &Field{Name: &Name{Value: "hello"}, Location: loc}
	}
	a := &Document{Definitions: []Definition{&OperationDefinition{
		SelectionSet: &SelectionSet{Selections: []Selection{field(&Location{Start: 0, End: 5})}},
	}}}
	b := &Document{Definitions: []Definition{&OperationDefinition{
		SelectionSet: &SelectionSet{Selections: []Selection{field(nil)}},
	}}}
	assert.True(t, a.Equal(b))
}

func TestDocument_Equal_DetectsDifferingFieldName(t *testing.T) {
	a := &Document{Definitions: []Definition{&OperationDefinition{
		SelectionSet: &SelectionSet{Selections: []Selection{&Field{Name: &Name{Value: "hello"}}}},
	}}}
	b := &Document{Definitions: []Definition{&OperationDefinition{
		SelectionSet: &SelectionSet{Selections: []Selection{&Field{Name: &Name{Value: "goodbye"}}}},
	}}}
	assert.False(t, a.Equal(b))
}

func TestValuesEqual_ComparesListAndObjectValuesDeeply(t *testing.T) {
	a := &Value{ValueKind: ValueKindList, ListValues: []*Value{
		{ValueKind: ValueKindInt, Raw: "1"},
		{ValueKind: ValueKindInt, Raw: "2"},
	}}
	b := &Value{ValueKind: ValueKindList, ListValues: []*Value{
		{ValueKind: ValueKindInt, Raw: "1"},
		{ValueKind: ValueKindInt, Raw: "2"},
	}}
	assert.True(t, ValuesEqual(a, b))

	c := &Value{ValueKind: ValueKindList, ListValues: []*Value{
		{ValueKind: ValueKindInt, Raw: "1"},
		{ValueKind: ValueKindInt, Raw: "3"},
	}}
	assert.False(t, ValuesEqual(a, c))
}

func TestValuesEqual_NilValuesCompareByIdentity(t *testing.T) {
	assert.True(t, ValuesEqual(nil, nil))
	assert.False(t, ValuesEqual(&Value{ValueKind: ValueKindNull}, nil))
}

func TestValuesEqual_DifferingKindsAreUnequal(t *testing.T) {
	a := &Value{ValueKind: ValueKindInt, Raw: "1"}
	b := &Value{ValueKind: ValueKindFloat, Raw: "1"}
	assert.False(t, ValuesEqual(a, b))
}
