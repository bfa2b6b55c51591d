package astparser

import "github.com/graphql-core/gqlcore/pkg/ast"

// parseTypeSystemDefinition dispatches on the type-system keyword
// (spec.md §4.3). desc is a description captured from a leading string or
// block-string token, if any.
func (p *Parser) parseTypeSystemDefinition(desc string) ast.Definition {
	switch p.cur().Value {
	case "schema":
		return p.parseSchemaDefinition(desc, false)
	case "scalar":
		return p.parseScalarTypeDefinition(desc, false)
	case "type":
		return p.parseObjectTypeDefinition(desc, false)
	case "interface":
		return p.parseInterfaceTypeDefinition(desc, false)
	case "union":
		return p.parseUnionTypeDefinition(desc, false)
	case "enum":
		return p.parseEnumTypeDefinition(desc, false)
	case "input":
		return p.parseInputObjectTypeDefinition(desc, false)
	case "directive":
		return p.parseDirectiveDefinition(desc)
	default:
		p.syntaxError("Unexpected %s", p.cur().Description())
		return nil
	}
}

func (p *Parser) parseTypeSystemExtension() ast.Definition {
	p.expectKeyword("extend")
	if p.cur().Kind != ast.Name {
		p.syntaxError("Unexpected %s", p.cur().Description())
	}
	switch p.cur().Value {
	case "schema":
		return p.parseSchemaDefinition("", true)
	case "scalar":
		return p.parseScalarTypeDefinition("", true)
	case "type":
		return p.parseObjectTypeDefinition("", true)
	case "interface":
		return p.parseInterfaceTypeDefinition("", true)
	case "union":
		return p.parseUnionTypeDefinition("", true)
	case "enum":
		return p.parseEnumTypeDefinition("", true)
	case "input":
		return p.parseInputObjectTypeDefinition("", true)
	default:
		p.syntaxError("Unexpected %s", p.cur().Description())
		return nil
	}
}

func (p *Parser) parseSchemaDefinition(desc string, isExt bool) *ast.SchemaDefinition {
	start := p.cur()
	p.expectKeyword("schema")
	directives := p.parseDirectives(true)
	p.expect(ast.LBrace)
	var opTypes []*ast.OperationTypeDefinition
	for !p.at(ast.RBrace) {
		opTypes = append(opTypes, p.parseOperationTypeDefinition())
	}
	p.advance()
	return &ast.SchemaDefinition{
		Description: desc, Directives: directives, OperationTypes: opTypes,
		Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseOperationTypeDefinition() *ast.OperationTypeDefinition {
	start := p.cur()
	op := p.parseOperationTypeKeyword()
	p.expect(ast.Colon)
	name := p.name()
	return &ast.OperationTypeDefinition{Operation: op, Type: name, Location: p.loc(start)}
}

func (p *Parser) parseOperationTypeKeyword() ast.OperationType {
	tok := p.cur()
	switch tok.Value {
	case "query", "mutation", "subscription":
		p.advance()
		return operationTypeFromKeyword(tok.Value)
	default:
		p.syntaxError("Expected one of \"query\", \"mutation\", \"subscription\", found %s", tok.Description())
		return ast.OperationTypeQuery
	}
}

func (p *Parser) parseScalarTypeDefinition(desc string, isExt bool) *ast.ScalarTypeDefinition {
	start := p.cur()
	p.expectKeyword("scalar")
	name := p.name()
	directives := p.parseDirectives(true)
	return &ast.ScalarTypeDefinition{
		Description: desc, Name: name, Directives: directives, Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseImplementsInterfaces() []*ast.Name {
	if !p.atName("implements") {
		return nil
	}
	p.advance()
	if p.at(ast.Amp) {
		p.advance()
	}
	var names []*ast.Name
	names = append(names, p.name())
	for p.at(ast.Amp) {
		p.advance()
		names = append(names, p.name())
	}
	return names
}

func (p *Parser) parseObjectTypeDefinition(desc string, isExt bool) *ast.ObjectTypeDefinition {
	start := p.cur()
	p.expectKeyword("type")
	name := p.name()
	interfaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	fields := p.parseFieldsDefinition()
	return &ast.ObjectTypeDefinition{
		Description: desc, Name: name, Interfaces: interfaces, Directives: directives, Fields: fields,
		Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseInterfaceTypeDefinition(desc string, isExt bool) *ast.InterfaceTypeDefinition {
	start := p.cur()
	p.expectKeyword("interface")
	name := p.name()
	interfaces := p.parseImplementsInterfaces()
	directives := p.parseDirectives(true)
	fields := p.parseFieldsDefinition()
	return &ast.InterfaceTypeDefinition{
		Description: desc, Name: name, Interfaces: interfaces, Directives: directives, Fields: fields,
		Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseFieldsDefinition() []*ast.FieldDefinition {
	if !p.at(ast.LBrace) {
		return nil
	}
	p.advance()
	var fields []*ast.FieldDefinition
	for !p.at(ast.RBrace) {
		fields = append(fields, p.parseFieldDefinition())
	}
	p.advance()
	return fields
}

func (p *Parser) descriptionIfPresent() string {
	if p.at(ast.String) || p.at(ast.BlockString) {
		v := p.cur().Value
		p.advance()
		return v
	}
	return ""
}

func (p *Parser) parseFieldDefinition() *ast.FieldDefinition {
	start := p.cur()
	desc := p.descriptionIfPresent()
	name := p.name()
	args := p.parseArgumentsDefinition()
	p.expect(ast.Colon)
	typ := p.parseType()
	directives := p.parseDirectives(true)
	return &ast.FieldDefinition{
		Description: desc, Name: name, Arguments: args, Type: typ, Directives: directives,
		Location: p.loc(start),
	}
}

func (p *Parser) parseArgumentsDefinition() []*ast.InputValueDefinition {
	if !p.at(ast.LParen) {
		return nil
	}
	p.advance()
	var args []*ast.InputValueDefinition
	for !p.at(ast.RParen) {
		args = append(args, p.parseInputValueDefinition())
	}
	p.advance()
	return args
}

// parseInputValueDefinition parses `name: Type = default directives?`. It
// is reused verbatim for input-object field lists: since it never consumes
// a `(`, source like `input X { f(arg: Int): Y }` naturally fails with
// "Expected :, found (" right after the field name, implementing spec.md
// §4.3's input-object-with-args rejection without any special-case code.
func (p *Parser) parseInputValueDefinition() *ast.InputValueDefinition {
	start := p.cur()
	desc := p.descriptionIfPresent()
	name := p.name()
	p.expect(ast.Colon)
	typ := p.parseType()
	var def *ast.Value
	if p.at(ast.Equals) {
		p.advance()
		def = p.parseValueLiteral(true)
	}
	directives := p.parseDirectives(true)
	return &ast.InputValueDefinition{
		Description: desc, Name: name, Type: typ, DefaultValue: def, Directives: directives,
		Location: p.loc(start),
	}
}

func (p *Parser) parseUnionTypeDefinition(desc string, isExt bool) *ast.UnionTypeDefinition {
	start := p.cur()
	p.expectKeyword("union")
	name := p.name()
	directives := p.parseDirectives(true)
	var types []*ast.Name
	if p.at(ast.Equals) {
		p.advance()
		if p.at(ast.Pipe) {
			p.advance()
		}
		types = append(types, p.name())
		for p.at(ast.Pipe) {
			p.advance()
			types = append(types, p.name())
		}
	}
	return &ast.UnionTypeDefinition{
		Description: desc, Name: name, Directives: directives, Types: types,
		Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseEnumTypeDefinition(desc string, isExt bool) *ast.EnumTypeDefinition {
	start := p.cur()
	p.expectKeyword("enum")
	name := p.name()
	directives := p.parseDirectives(true)
	values := p.parseEnumValuesDefinition()
	return &ast.EnumTypeDefinition{
		Description: desc, Name: name, Directives: directives, Values: values,
		Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseEnumValuesDefinition() []*ast.EnumValueDefinition {
	if !p.at(ast.LBrace) {
		return nil
	}
	p.advance()
	var values []*ast.EnumValueDefinition
	for !p.at(ast.RBrace) {
		values = append(values, p.parseEnumValueDefinition())
	}
	p.advance()
	return values
}

func (p *Parser) parseEnumValueDefinition() *ast.EnumValueDefinition {
	start := p.cur()
	desc := p.descriptionIfPresent()
	name := p.name()
	directives := p.parseDirectives(true)
	return &ast.EnumValueDefinition{Description: desc, Name: name, Directives: directives, Location: p.loc(start)}
}

func (p *Parser) parseInputObjectTypeDefinition(desc string, isExt bool) *ast.InputObjectTypeDefinition {
	start := p.cur()
	p.expectKeyword("input")
	name := p.name()
	directives := p.parseDirectives(true)
	fields := p.parseInputFieldsDefinition()
	return &ast.InputObjectTypeDefinition{
		Description: desc, Name: name, Directives: directives, Fields: fields,
		Location: p.loc(start), IsExtension: isExt,
	}
}

func (p *Parser) parseInputFieldsDefinition() []*ast.InputValueDefinition {
	if !p.at(ast.LBrace) {
		return nil
	}
	p.advance()
	var fields []*ast.InputValueDefinition
	for !p.at(ast.RBrace) {
		fields = append(fields, p.parseInputValueDefinition())
	}
	p.advance()
	return fields
}

func (p *Parser) parseDirectiveDefinition(desc string) *ast.DirectiveDefinition {
	start := p.cur()
	p.expectKeyword("directive")
	p.expect(ast.At)
	name := p.name()
	args := p.parseArgumentsDefinition()
	repeatable := false
	if p.atName("repeatable") {
		p.advance()
		repeatable = true
	}
	p.expectKeyword("on")
	locations := p.parseDirectiveLocations()
	return &ast.DirectiveDefinition{
		Description: desc, Name: name, Arguments: args, Repeatable: repeatable, Locations: locations,
		Location: p.loc(start),
	}
}

func (p *Parser) parseDirectiveLocations() []string {
	if p.at(ast.Pipe) {
		p.advance()
	}
	var locs []string
	locs = append(locs, p.expect(ast.Name).Value)
	for p.at(ast.Pipe) {
		p.advance()
		locs = append(locs, p.expect(ast.Name).Value)
	}
	return locs
}
