package ast

// Definition is implemented by every top-level document definition:
// executable definitions (OperationDefinition, FragmentDefinition) and
// type-system definitions/extensions (spec.md §3).
//
// Grounded on graphql-go-tools' legacy pkg/document.OperationDefinition, which
// exposed a single large Node method set shared by every definition kind,
// panicking on accessors that didn't apply to that kind — the "tagged
// union via interface" shape spec.md §9 recommends. This port keeps that
// spirit with a small common surface (Kind/Loc/DefinitionName) and lets
// callers type-switch for kind-specific fields, which is the idiomatic Go
// equivalent once there isn't a single generic visitor walking untyped
// fields by string key.
type Definition interface {
	Node
	DefinitionName() string
}

// OperationDefinition is a query/mutation/subscription definition.
type OperationDefinition struct {
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
	Location            *Location
}

func (o *OperationDefinition) Kind() NodeKind { return KindOperationDefinition }
func (o *OperationDefinition) Loc() *Location { return o.Location }
func (o *OperationDefinition) DefinitionName() string {
	if o.Name == nil {
		return ""
	}
	return o.Name.Value
}

// FragmentDefinition is a named, reusable selection set bound to a type
// condition (GLOSSARY "Fragment").
type FragmentDefinition struct {
	Name          *Name
	TypeCondition *Name
	Directives    []*Directive
	SelectionSet  *SelectionSet
	Location      *Location
}

func (f *FragmentDefinition) Kind() NodeKind          { return KindFragmentDefinition }
func (f *FragmentDefinition) Loc() *Location          { return f.Location }
func (f *FragmentDefinition) DefinitionName() string  { return f.Name.Value }

// SchemaDefinition declares the root operation type mapping.
type SchemaDefinition struct {
	Description    string
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
	Location       *Location
	IsExtension    bool
}

func (s *SchemaDefinition) Kind() NodeKind {
	if s.IsExtension {
		return KindSchemaExtension
	}
	return KindSchemaDefinition
}
func (s *SchemaDefinition) Loc() *Location         { return s.Location }
func (s *SchemaDefinition) DefinitionName() string { return "schema" }

// RootOperationType returns the named root type for op, or "" if unmapped.
func (s *SchemaDefinition) RootOperationType(op OperationType) string {
	for _, ot := range s.OperationTypes {
		if ot.Operation == op {
			return ot.Type.Value
		}
	}
	return ""
}

// ScalarTypeDefinition declares a scalar type.
type ScalarTypeDefinition struct {
	Description string
	Name        *Name
	Directives  []*Directive
	Location    *Location
	IsExtension bool
}

func (s *ScalarTypeDefinition) Kind() NodeKind {
	if s.IsExtension {
		return KindScalarTypeExtension
	}
	return KindScalarTypeDefinition
}
func (s *ScalarTypeDefinition) Loc() *Location         { return s.Location }
func (s *ScalarTypeDefinition) DefinitionName() string { return s.Name.Value }

// ObjectTypeDefinition declares an object type.
type ObjectTypeDefinition struct {
	Description string
	Name        *Name
	Interfaces  []*Name
	Directives  []*Directive
	Fields      []*FieldDefinition
	Location    *Location
	IsExtension bool
}

func (o *ObjectTypeDefinition) Kind() NodeKind {
	if o.IsExtension {
		return KindObjectTypeExtension
	}
	return KindObjectTypeDefinition
}
func (o *ObjectTypeDefinition) Loc() *Location         { return o.Location }
func (o *ObjectTypeDefinition) DefinitionName() string { return o.Name.Value }

func (o *ObjectTypeDefinition) Field(name string) *FieldDefinition {
	return fieldByName(o.Fields, name)
}

func fieldByName(fields []*FieldDefinition, name string) *FieldDefinition {
	for _, f := range fields {
		if f.Name.Value == name {
			return f
		}
	}
	return nil
}

// InterfaceTypeDefinition declares an interface type.
type InterfaceTypeDefinition struct {
	Description string
	Name        *Name
	Interfaces  []*Name
	Directives  []*Directive
	Fields      []*FieldDefinition
	Location    *Location
	IsExtension bool
}

func (i *InterfaceTypeDefinition) Kind() NodeKind {
	if i.IsExtension {
		return KindInterfaceTypeExtension
	}
	return KindInterfaceTypeDefinition
}
func (i *InterfaceTypeDefinition) Loc() *Location         { return i.Location }
func (i *InterfaceTypeDefinition) DefinitionName() string { return i.Name.Value }

func (i *InterfaceTypeDefinition) Field(name string) *FieldDefinition {
	return fieldByName(i.Fields, name)
}

// UnionTypeDefinition declares a union of object types.
type UnionTypeDefinition struct {
	Description string
	Name        *Name
	Directives  []*Directive
	Types       []*Name
	Location    *Location
	IsExtension bool
}

func (u *UnionTypeDefinition) Kind() NodeKind {
	if u.IsExtension {
		return KindUnionTypeExtension
	}
	return KindUnionTypeDefinition
}
func (u *UnionTypeDefinition) Loc() *Location         { return u.Location }
func (u *UnionTypeDefinition) DefinitionName() string { return u.Name.Value }

// EnumTypeDefinition declares an enum type.
type EnumTypeDefinition struct {
	Description string
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
	Location    *Location
	IsExtension bool
}

func (e *EnumTypeDefinition) Kind() NodeKind {
	if e.IsExtension {
		return KindEnumTypeExtension
	}
	return KindEnumTypeDefinition
}
func (e *EnumTypeDefinition) Loc() *Location         { return e.Location }
func (e *EnumTypeDefinition) DefinitionName() string { return e.Name.Value }

// InputObjectTypeDefinition declares an input object type.
type InputObjectTypeDefinition struct {
	Description string
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
	Location    *Location
	IsExtension bool
}

func (i *InputObjectTypeDefinition) Kind() NodeKind {
	if i.IsExtension {
		return KindInputObjectTypeExtension
	}
	return KindInputObjectTypeDefinition
}
func (i *InputObjectTypeDefinition) Loc() *Location         { return i.Location }
func (i *InputObjectTypeDefinition) DefinitionName() string { return i.Name.Value }

func (i *InputObjectTypeDefinition) Field(name string) *InputValueDefinition {
	for _, f := range i.Fields {
		if f.Name.Value == name {
			return f
		}
	}
	return nil
}

// DirectiveDefinition declares a directive and the locations it may
// annotate, plus whether it supports `repeatable` (spec.md §6, the
// October-2021-plus grammar extension).
type DirectiveDefinition struct {
	Description string
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []string
	Location    *Location
}

func (d *DirectiveDefinition) Kind() NodeKind          { return KindDirectiveDefinition }
func (d *DirectiveDefinition) Loc() *Location          { return d.Location }
func (d *DirectiveDefinition) DefinitionName() string  { return d.Name.Value }

func (d *DirectiveDefinition) Argument(name string) *InputValueDefinition {
	for _, a := range d.Arguments {
		if a.Name.Value == name {
			return a
		}
	}
	return nil
}
