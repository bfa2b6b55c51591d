package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_String_RendersNonNullListSyntax(t *testing.T) {
	typ := &Type{TypeKind: TypeKindNonNull, OfType: &Type{
		TypeKind: TypeKindList, OfType: &Type{
			TypeKind: TypeKindNonNull, OfType: &Type{TypeKind: TypeKindNamed, Name: "String"},
		},
	}}
	assert.Equal(t, "[String!]!", typ.String())
}

func TestType_NamedTypeName_UnwrapsListAndNonNull(t *testing.T) {
	typ := &Type{TypeKind: TypeKindNonNull, OfType: &Type{
		TypeKind: TypeKindList, OfType: &Type{TypeKind: TypeKindNamed, Name: "Int"},
	}}
	assert.Equal(t, "Int", typ.NamedTypeName())
}

func TestType_Equal_IgnoresLocation(t *testing.T) {
	a := &Type{TypeKind: TypeKindNamed, Name: "Int", Location: &Location{Start: 0}}
	b := &Type{TypeKind: TypeKindNamed, Name: "Int"}
	assert.True(t, a.Equal(b))
}

func TestType_Equal_DetectsDifferingWrapperKind(t *testing.T) {
	a := &Type{TypeKind: TypeKindList, OfType: &Type{TypeKind: TypeKindNamed, Name: "Int"}}
	b := &Type{TypeKind: TypeKindNonNull, OfType: &Type{TypeKind: TypeKindNamed, Name: "Int"}}
	assert.False(t, a.Equal(b))
}
