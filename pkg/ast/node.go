package ast

// Location references a Source and carries a byte offset range and the
// start/end tokens that produced it (spec.md §3 "Source").
type Location struct {
	Source     *Source
	Start, End int
	StartToken *Token
	EndToken   *Token
}

// StartPosition returns the 1-based line/column of the start offset.
func (l *Location) StartPosition() Position {
	if l == nil || l.Source == nil {
		return Position{}
	}
	return l.Source.Position(l.Start)
}

// EndPosition returns the 1-based line/column of the end offset.
func (l *Location) EndPosition() Position {
	if l == nil || l.Source == nil {
		return Position{}
	}
	return l.Source.Position(l.End)
}

// NodeKind tags every AST node variant (spec.md §3 "AST").
type NodeKind int

const (
	KindDocument NodeKind = iota
	KindOperationDefinition
	KindFragmentDefinition
	KindSchemaDefinition
	KindScalarTypeDefinition
	KindObjectTypeDefinition
	KindInterfaceTypeDefinition
	KindUnionTypeDefinition
	KindEnumTypeDefinition
	KindInputObjectTypeDefinition
	KindDirectiveDefinition

	KindSchemaExtension
	KindScalarTypeExtension
	KindObjectTypeExtension
	KindInterfaceTypeExtension
	KindUnionTypeExtension
	KindEnumTypeExtension
	KindInputObjectTypeExtension

	KindName
	KindField
	KindFragmentSpread
	KindInlineFragment
	KindSelectionSet
	KindArgument
	KindDirective
	KindVariableDefinition
	KindOperationTypeDefinition
	KindInputValueDefinition
	KindFieldDefinition
	KindEnumValueDefinition

	KindNamedType
	KindListType
	KindNonNullType

	KindVariableValue
	KindIntValue
	KindFloatValue
	KindStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField
)

var nodeKindNames = map[NodeKind]string{
	KindDocument:                  "Document",
	KindOperationDefinition:       "OperationDefinition",
	KindFragmentDefinition:        "FragmentDefinition",
	KindSchemaDefinition:          "SchemaDefinition",
	KindScalarTypeDefinition:      "ScalarTypeDefinition",
	KindObjectTypeDefinition:      "ObjectTypeDefinition",
	KindInterfaceTypeDefinition:   "InterfaceTypeDefinition",
	KindUnionTypeDefinition:       "UnionTypeDefinition",
	KindEnumTypeDefinition:        "EnumTypeDefinition",
	KindInputObjectTypeDefinition: "InputObjectTypeDefinition",
	KindDirectiveDefinition:       "DirectiveDefinition",
	KindSchemaExtension:           "SchemaExtension",
	KindScalarTypeExtension:       "ScalarTypeExtension",
	KindObjectTypeExtension:       "ObjectTypeExtension",
	KindInterfaceTypeExtension:    "InterfaceTypeExtension",
	KindUnionTypeExtension:        "UnionTypeExtension",
	KindEnumTypeExtension:         "EnumTypeExtension",
	KindInputObjectTypeExtension:  "InputObjectTypeExtension",
	KindName:                      "Name",
	KindField:                     "Field",
	KindFragmentSpread:            "FragmentSpread",
	KindInlineFragment:            "InlineFragment",
	KindSelectionSet:              "SelectionSet",
	KindArgument:                  "Argument",
	KindDirective:                 "Directive",
	KindVariableDefinition:        "VariableDefinition",
	KindOperationTypeDefinition:   "OperationTypeDefinition",
	KindInputValueDefinition:      "InputValueDefinition",
	KindFieldDefinition:           "FieldDefinition",
	KindEnumValueDefinition:       "EnumValueDefinition",
	KindNamedType:                 "NamedType",
	KindListType:                  "ListType",
	KindNonNullType:               "NonNullType",
	KindVariableValue:             "Variable",
	KindIntValue:                  "IntValue",
	KindFloatValue:                "FloatValue",
	KindStringValue:               "StringValue",
	KindBooleanValue:              "BooleanValue",
	KindNullValue:                 "NullValue",
	KindEnumValue:                 "EnumValue",
	KindListValue:                 "ListValue",
	KindObjectValue:               "ObjectValue",
	KindObjectField:               "ObjectField",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// OperationType distinguishes query/mutation/subscription operations and
// schema root-type mappings.
type OperationType int

const (
	OperationTypeQuery OperationType = iota
	OperationTypeMutation
	OperationTypeSubscription
)

func (o OperationType) String() string {
	switch o {
	case OperationTypeQuery:
		return "query"
	case OperationTypeMutation:
		return "mutation"
	case OperationTypeSubscription:
		return "subscription"
	default:
		return "query"
	}
}

// Node is implemented by every AST node: it exposes its kind tag and
// optional location (spec.md §3).
type Node interface {
	Kind() NodeKind
	Loc() *Location
}

// Name is an identifier node, e.g. a field, type, or argument name.
type Name struct {
	Value    string
	Location *Location
}

func (n *Name) Kind() NodeKind { return KindName }
func (n *Name) Loc() *Location { return n.Location }
