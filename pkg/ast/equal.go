package ast

// Equal reports structural equality between two documents, ignoring
// Location (spec.md §3, §8 round-trip properties). Operation and fragment
// definitions are compared in full; type-system definitions are compared
// by kind and name only.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.Definitions) != len(o.Definitions) {
		return false
	}
	for i := range d.Definitions {
		if !definitionsEqual(d.Definitions[i], o.Definitions[i]) {
			return false
		}
	}
	return true
}

func namesEqual(a, b *Name) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value
}

func directiveListEqual(a, b []*Directive) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !namesEqual(a[i].Name, b[i].Name) {
			return false
		}
		if !argumentListEqual(a[i].Arguments, b[i].Arguments) {
			return false
		}
	}
	return true
}

func argumentListEqual(a, b []*Argument) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !namesEqual(a[i].Name, b[i].Name) || !ValuesEqual(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}

// ValuesEqual reports structural equality between two literal value nodes.
func ValuesEqual(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ValueKind != b.ValueKind {
		return false
	}
	switch a.ValueKind {
	case ValueKindVariable:
		return a.VariableName == b.VariableName
	case ValueKindInt, ValueKindFloat:
		return a.Raw == b.Raw
	case ValueKindString, ValueKindEnum:
		return a.StringValue == b.StringValue
	case ValueKindBoolean:
		return a.BooleanValue == b.BooleanValue
	case ValueKindNull:
		return true
	case ValueKindList:
		if len(a.ListValues) != len(b.ListValues) {
			return false
		}
		for i := range a.ListValues {
			if !ValuesEqual(a.ListValues[i], b.ListValues[i]) {
				return false
			}
		}
		return true
	case ValueKindObject:
		if len(a.ObjectFields) != len(b.ObjectFields) {
			return false
		}
		for i := range a.ObjectFields {
			if !namesEqual(a.ObjectFields[i].Name, b.ObjectFields[i].Name) {
				return false
			}
			if !ValuesEqual(a.ObjectFields[i].Value, b.ObjectFields[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func variableDefinitionsEqual(a, b []*VariableDefinition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !namesEqual(a[i].Variable, b[i].Variable) {
			return false
		}
		if !a[i].Type.Equal(b[i].Type) {
			return false
		}
		if !ValuesEqual(a[i].DefaultValue, b[i].DefaultValue) {
			return false
		}
		if !directiveListEqual(a[i].Directives, b[i].Directives) {
			return false
		}
	}
	return true
}

func selectionSetsEqual(a, b *SelectionSet) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Selections) != len(b.Selections) {
		return false
	}
	for i := range a.Selections {
		if !selectionsEqual(a.Selections[i], b.Selections[i]) {
			return false
		}
	}
	return true
}

func selectionsEqual(a, b Selection) bool {
	switch av := a.(type) {
	case *Field:
		bv, ok := b.(*Field)
		if !ok {
			return false
		}
		if !namesEqual(av.Alias, bv.Alias) || !namesEqual(av.Name, bv.Name) {
			return false
		}
		if !argumentListEqual(av.Arguments, bv.Arguments) {
			return false
		}
		if !directiveListEqual(av.Directives, bv.Directives) {
			return false
		}
		return selectionSetsEqual(av.SelectionSet, bv.SelectionSet)
	case *FragmentSpread:
		bv, ok := b.(*FragmentSpread)
		if !ok {
			return false
		}
		return namesEqual(av.Name, bv.Name) && directiveListEqual(av.Directives, bv.Directives)
	case *InlineFragment:
		bv, ok := b.(*InlineFragment)
		if !ok {
			return false
		}
		if !namesEqual(av.TypeCondition, bv.TypeCondition) {
			return false
		}
		if !directiveListEqual(av.Directives, bv.Directives) {
			return false
		}
		return selectionSetsEqual(av.SelectionSet, bv.SelectionSet)
	default:
		return false
	}
}

func definitionsEqual(a, b Definition) bool {
	switch av := a.(type) {
	case *OperationDefinition:
		bv, ok := b.(*OperationDefinition)
		if !ok || av.Operation != bv.Operation {
			return false
		}
		if !namesEqual(av.Name, bv.Name) {
			return false
		}
		if !variableDefinitionsEqual(av.VariableDefinitions, bv.VariableDefinitions) {
			return false
		}
		if !directiveListEqual(av.Directives, bv.Directives) {
			return false
		}
		return selectionSetsEqual(av.SelectionSet, bv.SelectionSet)
	case *FragmentDefinition:
		bv, ok := b.(*FragmentDefinition)
		if !ok {
			return false
		}
		if !namesEqual(av.Name, bv.Name) || !namesEqual(av.TypeCondition, bv.TypeCondition) {
			return false
		}
		if !directiveListEqual(av.Directives, bv.Directives) {
			return false
		}
		return selectionSetsEqual(av.SelectionSet, bv.SelectionSet)
	default:
		// Type-system definitions compare equal when their kind and name
		// match; their descriptions, directives, fields, arguments and
		// other members are not compared.
		return a.Kind() == b.Kind() && a.DefinitionName() == b.DefinitionName()
	}
}
