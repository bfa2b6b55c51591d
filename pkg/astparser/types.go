package astparser

import "github.com/graphql-core/gqlcore/pkg/ast"

// parseType parses Type (spec.md §3 "Named, List, NonNull").
func (p *Parser) parseType() *ast.Type {
	start := p.cur()
	var typ *ast.Type
	if p.at(ast.LBracket) {
		p.advance()
		inner := p.parseType()
		p.expect(ast.RBracket)
		typ = &ast.Type{TypeKind: ast.TypeKindList, OfType: inner, Location: p.loc(start)}
	} else {
		name := p.name()
		typ = &ast.Type{TypeKind: ast.TypeKindNamed, Name: name.Value, Location: p.loc(start)}
	}
	if p.at(ast.Bang) {
		p.advance()
		typ = &ast.Type{TypeKind: ast.TypeKindNonNull, OfType: typ, Location: p.loc(start)}
	}
	return typ
}
