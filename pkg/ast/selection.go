package ast

// Selection is implemented by Field, FragmentSpread, InlineFragment — the
// three selection-set member kinds (spec.md §3, GLOSSARY "Selection set").
type Selection interface {
	Node
	isSelection()
}

// SelectionSet is a brace-enclosed list of selections.
type SelectionSet struct {
	Selections []Selection
	Location   *Location
}

func (s *SelectionSet) Kind() NodeKind { return KindSelectionSet }
func (s *SelectionSet) Loc() *Location { return s.Location }

// Field is a selection naming a field of the enclosing type, with an
// optional alias, arguments, directives, and (for composite types) a
// sub-selection set.
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
	Location     *Location
}

func (f *Field) Kind() NodeKind { return KindField }
func (f *Field) Loc() *Location { return f.Location }
func (f *Field) isSelection()   {}

// ResponseName is the key this field occupies in the response map: its
// alias if present, otherwise its name (spec.md §4.8 "Collect fields").
func (f *Field) ResponseName() string {
	if f.Alias != nil {
		return f.Alias.Value
	}
	return f.Name.Value
}

// FragmentSpread is a `... Name` selection referencing a named fragment.
type FragmentSpread struct {
	Name       *Name
	Directives []*Directive
	Location   *Location
}

func (s *FragmentSpread) Kind() NodeKind { return KindFragmentSpread }
func (s *FragmentSpread) Loc() *Location { return s.Location }
func (s *FragmentSpread) isSelection()   {}

// InlineFragment is a `... on TypeCondition? Directives? { … }` selection.
type InlineFragment struct {
	TypeCondition *Name
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Location      *Location
}

func (f *InlineFragment) Kind() NodeKind { return KindInlineFragment }
func (f *InlineFragment) Loc() *Location { return f.Location }
func (f *InlineFragment) isSelection()   {}

// Argument is a `name: value` pair attached to a field or directive.
type Argument struct {
	Name     *Name
	Value    *Value
	Location *Location
}

func (a *Argument) Kind() NodeKind { return KindArgument }
func (a *Argument) Loc() *Location { return a.Location }

// Directive is an `@name(args...)` annotation (GLOSSARY "Directive").
type Directive struct {
	Name      *Name
	Arguments []*Argument
	Location  *Location
}

func (d *Directive) Kind() NodeKind { return KindDirective }
func (d *Directive) Loc() *Location { return d.Location }

// Argument looks up an argument by name, returning nil if absent.
func (d *Directive) Argument(name string) *Argument {
	for _, a := range d.Arguments {
		if a.Name.Value == name {
			return a
		}
	}
	return nil
}

// Argument looks up an argument by name, returning nil if absent.
func (f *Field) Argument(name string) *Argument {
	for _, a := range f.Arguments {
		if a.Name.Value == name {
			return a
		}
	}
	return nil
}

// directivesByName looks up a directive by name, returning nil if absent.
func directivesByName(directives []*Directive, name string) *Directive {
	for _, d := range directives {
		if d.Name.Value == name {
			return d
		}
	}
	return nil
}

// Directive looks up a directive by name on a Field.
func (f *Field) Directive(name string) *Directive { return directivesByName(f.Directives, name) }

// Directive looks up a directive by name on a FragmentSpread.
func (s *FragmentSpread) Directive(name string) *Directive {
	return directivesByName(s.Directives, name)
}

// Directive looks up a directive by name on an InlineFragment.
func (f *InlineFragment) Directive(name string) *Directive {
	return directivesByName(f.Directives, name)
}

// VariableDefinition declares `$name: Type = defaultValue` on an operation.
type VariableDefinition struct {
	Variable     *Name
	Type         *Type
	DefaultValue *Value
	Directives   []*Directive
	Location     *Location
}

func (v *VariableDefinition) Kind() NodeKind { return KindVariableDefinition }
func (v *VariableDefinition) Loc() *Location { return v.Location }

// InputValueDefinition describes a field/directive argument or input-object
// field: a name, type, optional default value, and directives.
type InputValueDefinition struct {
	Description  string
	Name         *Name
	Type         *Type
	DefaultValue *Value
	Directives   []*Directive
	Location     *Location
}

func (v *InputValueDefinition) Kind() NodeKind { return KindInputValueDefinition }
func (v *InputValueDefinition) Loc() *Location { return v.Location }

// FieldDefinition describes one field of an object/interface type.
type FieldDefinition struct {
	Description string
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        *Type
	Directives  []*Directive
	Location    *Location
}

func (f *FieldDefinition) Kind() NodeKind { return KindFieldDefinition }
func (f *FieldDefinition) Loc() *Location { return f.Location }

// Argument looks up a FieldDefinition's argument by name.
func (f *FieldDefinition) Argument(name string) *InputValueDefinition {
	for _, a := range f.Arguments {
		if a.Name.Value == name {
			return a
		}
	}
	return nil
}

// EnumValueDefinition names one member of an enum type.
type EnumValueDefinition struct {
	Description string
	Name        *Name
	Directives  []*Directive
	Location    *Location
}

func (e *EnumValueDefinition) Kind() NodeKind { return KindEnumValueDefinition }
func (e *EnumValueDefinition) Loc() *Location { return e.Location }

// OperationTypeDefinition maps an OperationType to a root object type inside
// a `schema { ... }` block.
type OperationTypeDefinition struct {
	Operation OperationType
	Type      *Name
	Location  *Location
}

func (o *OperationTypeDefinition) Kind() NodeKind { return KindOperationTypeDefinition }
func (o *OperationTypeDefinition) Loc() *Location { return o.Location }
