package astparser

import "github.com/graphql-core/gqlcore/pkg/ast"

// parseValueLiteral parses Value per spec.md §3/§4.3. When constant is true,
// a `$variable` reference is rejected ("a constant value MUST NOT contain a
// $variable").
func (p *Parser) parseValueLiteral(constant bool) *ast.Value {
	start := p.cur()

	switch start.Kind {
	case ast.LBracket:
		return p.parseList(constant)
	case ast.LBrace:
		return p.parseObject(constant)
	case ast.Dollar:
		if constant {
			p.syntaxError("Unexpected %s", start.Description())
		}
		p.advance()
		name := p.name()
		return &ast.Value{ValueKind: ast.ValueKindVariable, VariableName: name.Value, Location: p.loc(start)}
	case ast.Int:
		p.advance()
		return &ast.Value{ValueKind: ast.ValueKindInt, Raw: start.Value, Location: p.loc(start)}
	case ast.Float:
		p.advance()
		return &ast.Value{ValueKind: ast.ValueKindFloat, Raw: start.Value, Location: p.loc(start)}
	case ast.String, ast.BlockString:
		p.advance()
		return &ast.Value{
			ValueKind: ast.ValueKindString, StringValue: start.Value,
			IsBlockString: start.Kind == ast.BlockString, Location: p.loc(start),
		}
	case ast.Name:
		switch start.Value {
		case "true":
			p.advance()
			return &ast.Value{ValueKind: ast.ValueKindBoolean, BooleanValue: true, Location: p.loc(start)}
		case "false":
			p.advance()
			return &ast.Value{ValueKind: ast.ValueKindBoolean, BooleanValue: false, Location: p.loc(start)}
		case "null":
			p.advance()
			return &ast.Value{ValueKind: ast.ValueKindNull, Location: p.loc(start)}
		default:
			p.advance()
			return &ast.Value{ValueKind: ast.ValueKindEnum, StringValue: start.Value, Location: p.loc(start)}
		}
	default:
		p.syntaxError("Unexpected %s", start.Description())
		return nil
	}
}

func (p *Parser) parseList(constant bool) *ast.Value {
	start := p.cur()
	p.expect(ast.LBracket)
	var values []*ast.Value
	for !p.at(ast.RBracket) {
		values = append(values, p.parseValueLiteral(constant))
	}
	p.advance()
	return &ast.Value{ValueKind: ast.ValueKindList, ListValues: values, Location: p.loc(start)}
}

func (p *Parser) parseObject(constant bool) *ast.Value {
	start := p.cur()
	p.expect(ast.LBrace)
	var fields []*ast.ObjectField
	for !p.at(ast.RBrace) {
		fields = append(fields, p.parseObjectField(constant))
	}
	p.advance()
	return &ast.Value{ValueKind: ast.ValueKindObject, ObjectFields: fields, Location: p.loc(start)}
}

func (p *Parser) parseObjectField(constant bool) *ast.ObjectField {
	start := p.cur()
	name := p.name()
	p.expect(ast.Colon)
	val := p.parseValueLiteral(constant)
	return &ast.ObjectField{Name: name, Value: val, Location: p.loc(start)}
}
