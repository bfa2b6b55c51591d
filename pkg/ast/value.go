package ast

// Value is the sum type of literal value nodes: Variable, Int, Float,
// String, Boolean, Null, Enum, List, Object (spec.md §3). A single struct
// tagged by ValueKind is used rather than one Go type per variant, since the
// parser/printer/visitor all dispatch on the same small set of fields and a
// type switch over eleven near-identical wrapper types would add ceremony
// without clarity.
type Value struct {
	ValueKind ValueKind
	Location  *Location

	// VariableName is set when ValueKind == ValueKindVariable.
	VariableName string

	// Raw holds the literal source text for Int/Float (kept as text to avoid
	// precision loss; callers parse it against the expected scalar type
	// during coercion).
	Raw string

	// StringValue holds the decoded value for String/BlockString/Enum
	// literals.
	StringValue string
	// IsBlockString distinguishes `"""…"""` literals from `"…"` (spec.md §3).
	IsBlockString bool

	BooleanValue bool

	// ListValues holds elements for ValueKindList.
	ListValues []*Value
	// ObjectFields holds fields for ValueKindObject.
	ObjectFields []*ObjectField
}

func (v *Value) Kind() NodeKind {
	switch v.ValueKind {
	case ValueKindVariable:
		return KindVariableValue
	case ValueKindInt:
		return KindIntValue
	case ValueKindFloat:
		return KindFloatValue
	case ValueKindString:
		return KindStringValue
	case ValueKindBoolean:
		return KindBooleanValue
	case ValueKindNull:
		return KindNullValue
	case ValueKindEnum:
		return KindEnumValue
	case ValueKindList:
		return KindListValue
	case ValueKindObject:
		return KindObjectValue
	default:
		return KindNullValue
	}
}

func (v *Value) Loc() *Location { return v.Location }

// ValueKind tags the Value sum type.
type ValueKind int

const (
	ValueKindVariable ValueKind = iota
	ValueKindInt
	ValueKindFloat
	ValueKindString
	ValueKindBoolean
	ValueKindNull
	ValueKindEnum
	ValueKindList
	ValueKindObject
)

// ObjectField is a single `name: value` pair inside an ObjectValue.
type ObjectField struct {
	Name     *Name
	Value    *Value
	Location *Location
}

func (f *ObjectField) Kind() NodeKind { return KindObjectField }
func (f *ObjectField) Loc() *Location { return f.Location }

// ContainsVariable reports whether v (or any descendant) references a
// variable; used to reject variables inside constant-value contexts
// (spec.md §4.3, "a constant value MUST NOT contain a $variable").
func (v *Value) ContainsVariable() bool {
	if v == nil {
		return false
	}
	switch v.ValueKind {
	case ValueKindVariable:
		return true
	case ValueKindList:
		for _, e := range v.ListValues {
			if e.ContainsVariable() {
				return true
			}
		}
	case ValueKindObject:
		for _, f := range v.ObjectFields {
			if f.Value.ContainsVariable() {
				return true
			}
		}
	}
	return false
}
