package ast

// Document is the root AST node: a sequence of definitions parsed from one
// Source (GLOSSARY "Document"). A Document owns its definitions; Location
// values hold non-owning references back to the Source and its tokens
// (spec.md §3 "Ownership").
type Document struct {
	Definitions []Definition
	Source      *Source
	Location    *Location
}

func (d *Document) Kind() NodeKind { return KindDocument }
func (d *Document) Loc() *Location { return d.Location }

// Operations returns every OperationDefinition in the document, in
// document order.
func (d *Document) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns every FragmentDefinition in the document, in document
// order.
func (d *Document) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if f, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, f)
		}
	}
	return frags
}

// FragmentByName looks up a fragment definition, or nil if absent.
func (d *Document) FragmentByName(name string) *FragmentDefinition {
	for _, f := range d.Fragments() {
		if f.Name.Value == name {
			return f
		}
	}
	return nil
}

// OperationByName returns the named operation, or the lone operation when
// name is empty and exactly one operation exists (spec.md §4.8 step 1).
func (d *Document) OperationByName(name string) *OperationDefinition {
	ops := d.Operations()
	if name == "" {
		if len(ops) == 1 {
			return ops[0]
		}
		return nil
	}
	for _, op := range ops {
		if op.Name != nil && op.Name.Value == name {
			return op
		}
	}
	return nil
}

// IsTypeSystemDocument reports whether every definition is a type-system
// definition or extension (i.e. this is an SDL document rather than an
// executable one).
func (d *Document) IsTypeSystemDocument() bool {
	if len(d.Definitions) == 0 {
		return false
	}
	for _, def := range d.Definitions {
		switch def.(type) {
		case *OperationDefinition, *FragmentDefinition:
			return false
		}
	}
	return true
}
