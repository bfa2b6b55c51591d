package schema

import "github.com/graphql-core/gqlcore/pkg/ast"

// TypeKind distinguishes the six GraphQL named type categories exposed
// through introspection's `__TypeKind`; the LIST and NON_NULL wrappers are
// TypeRefKind values.
type TypeKind int

const (
	KindScalar TypeKind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

// ScalarCoercer lets a custom scalar control how literal/variable input is
// parsed and how resolved Go values are serialized to the wire. The built-in
// scalars and Duration (DESIGN.md) implement this; user scalars may supply
// their own via Config.ScalarCoercers.
type ScalarCoercer interface {
	ParseValue(v *ast.Value, variables map[string]any) (any, error)
	Serialize(v any) (any, error)
}

// Type describes one named type in a built Schema.
type Type struct {
	TypeKind    TypeKind
	Name        string
	Description string

	// Object/Interface
	Fields     map[string]*Field
	FieldOrder []string
	Interfaces []string // names

	// Interface/Union
	PossibleTypes []string // object type names

	// Enum
	EnumValues     map[string]*EnumValue
	EnumValueOrder []string

	// InputObject
	InputFields      map[string]*InputValue
	InputFieldOrder  []string
	IsOneOf          bool

	Scalar ScalarCoercer

	Directives []*AppliedDirective
}

// Field describes one field of an object or interface type.
type Field struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   map[string]*InputValue
	ArgOrder    []string
	Deprecated  bool
	DeprecationReason string
	Directives  []*AppliedDirective
}

// InputValue describes a field/directive argument or input-object field.
type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue *ast.Value
	Deprecated   bool
	DeprecationReason string
	Directives   []*AppliedDirective
}

// EnumValue describes one member of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	Deprecated        bool
	DeprecationReason string
	Directives        []*AppliedDirective
}

// AppliedDirective is a directive usage site (on a type, field, argument,
// etc.). Its arguments are the literals as written in the SDL; they are not
// checked against the directive's declared argument types.
type AppliedDirective struct {
	Name      string
	Arguments map[string]*ast.Value
}

// TypeRefKind distinguishes Named/List/NonNull type references, mirroring
// ast.TypeKind but resolved against the built Schema's type map.
type TypeRefKind int

const (
	TypeRefNamed TypeRefKind = iota
	TypeRefList
	TypeRefNonNull
)

// TypeRef is a resolved type reference: a wrapping chain ending in a named
// type present in the Schema's type map.
type TypeRef struct {
	RefKind TypeRefKind
	Name    string   // set when RefKind == TypeRefNamed
	OfType  *TypeRef // set otherwise
}

func (r *TypeRef) String() string {
	if r == nil {
		return ""
	}
	switch r.RefKind {
	case TypeRefList:
		return "[" + r.OfType.String() + "]"
	case TypeRefNonNull:
		return r.OfType.String() + "!"
	default:
		return r.Name
	}
}

// NamedTypeName unwraps List/NonNull wrappers to the innermost named type.
func (r *TypeRef) NamedTypeName() string {
	for r != nil {
		if r.RefKind == TypeRefNamed {
			return r.Name
		}
		r = r.OfType
	}
	return ""
}

func (r *TypeRef) IsNonNull() bool { return r != nil && r.RefKind == TypeRefNonNull }

// Directive describes a directive definition (built-in or user-declared).
type Directive struct {
	Name        string
	Description string
	Arguments   map[string]*InputValue
	ArgOrder    []string
	Repeatable  bool
	Locations   map[string]bool
}

// Schema is the fully built, immutable, read-only type system a Document is
// validated and executed against.
type Schema struct {
	Types      map[string]*Type
	TypeOrder   []string
	Directives map[string]*Directive

	QueryTypeName        string
	MutationTypeName      string
	SubscriptionTypeName string

	Description string

	// builtinTypeNames/builtinDirectiveNames record what Build merged in
	// from builtinSDL, so PrintSchema can omit them the way graphql-js's
	// printSchema omits the spec's built-in scalars/directives.
	builtinTypeNames      map[string]bool
	builtinDirectiveNames map[string]bool
}

// RootOperationTypeName implements astvisitor.TypeResolver.
func (s *Schema) RootOperationTypeName(op ast.OperationType) string {
	switch op {
	case ast.OperationTypeMutation:
		return s.MutationTypeName
	case ast.OperationTypeSubscription:
		return s.SubscriptionTypeName
	default:
		return s.QueryTypeName
	}
}

// FieldTypeName implements astvisitor.TypeResolver.
func (s *Schema) FieldTypeName(parentTypeName, fieldName string) (string, bool) {
	if fieldName == "__typename" {
		return "String", true
	}
	t, ok := s.Types[parentTypeName]
	if !ok {
		return "", false
	}
	f, ok := t.Fields[fieldName]
	if !ok {
		return "", false
	}
	return f.Type.NamedTypeName(), true
}

// Field looks up a field on an object/interface type, including the
// `__schema`/`__type` meta-fields injected on the query root type.
func (t *Type) Field(name string) (*Field, bool) {
	f, ok := t.Fields[name]
	return f, ok
}

// Implements reports whether t (an object or interface) lists ifaceName
// among the interfaces it implements.
func (t *Type) Implements(ifaceName string) bool {
	for _, n := range t.Interfaces {
		if n == ifaceName {
			return true
		}
	}
	return false
}

// IsComposite reports whether t's fields may carry a sub-selection set.
func (t *Type) IsComposite() bool {
	return t.TypeKind == KindObject || t.TypeKind == KindInterface || t.TypeKind == KindUnion
}

// IsInputType reports whether t may be used as a variable/argument/input
// field's named type.
func (t *Type) IsInputType() bool {
	return t.TypeKind == KindScalar || t.TypeKind == KindEnum || t.TypeKind == KindInputObject
}
