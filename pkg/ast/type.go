package ast

// Type is the sum type of type references: Named, List, NonNull (spec.md
// §3). As with Value, one tagged struct is used instead of three Go types.
type Type struct {
	TypeKind TypeKind
	Location *Location

	// Name is set when TypeKind == TypeKindNamed.
	Name string
	// OfType is set when TypeKind is TypeKindList or TypeKindNonNull.
	OfType *Type
}

func (t *Type) Kind() NodeKind {
	switch t.TypeKind {
	case TypeKindNamed:
		return KindNamedType
	case TypeKindList:
		return KindListType
	case TypeKindNonNull:
		return KindNonNullType
	default:
		return KindNamedType
	}
}

func (t *Type) Loc() *Location { return t.Location }

// TypeKind tags the Type sum type.
type TypeKind int

const (
	TypeKindNamed TypeKind = iota
	TypeKindList
	TypeKindNonNull
)

// String renders t using GraphQL type-reference syntax, e.g. `[String!]!`.
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	switch t.TypeKind {
	case TypeKindNamed:
		return t.Name
	case TypeKindList:
		return "[" + t.OfType.String() + "]"
	case TypeKindNonNull:
		return t.OfType.String() + "!"
	default:
		return ""
	}
}

// NamedTypeName returns the innermost named type's name, unwrapping List and
// NonNull wrappers.
func (t *Type) NamedTypeName() string {
	for t != nil {
		switch t.TypeKind {
		case TypeKindNamed:
			return t.Name
		default:
			t = t.OfType
		}
	}
	return ""
}

// Equal reports structural equality ignoring Location (spec.md §3 "value
// equality ignoring location").
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.TypeKind != o.TypeKind {
		return false
	}
	switch t.TypeKind {
	case TypeKindNamed:
		return t.Name == o.Name
	default:
		return t.OfType.Equal(o.OfType)
	}
}
