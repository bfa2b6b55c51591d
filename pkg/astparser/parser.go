// Package astparser implements the recursive-descent parser of spec.md
// §4.3: one token of lookahead over pkg/astlexer's doubly linked token
// stream, producing pkg/ast's Document/Value/Type node model.
//
// Top-level dispatch and error-excerpt formatting are grounded on
// other_examples/f29ad254_gqlc-graphql__parser-parse.go; selection-set and
// fragment parsing shape on
// other_examples/e9fbb2e4_Protocol-Lattice-graphql__parser-parser.go (see
// DESIGN.md).
package astparser

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/astlexer"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
)

// DefaultMaxSelectionDepth bounds recursive selection-set parsing against
// pathological inputs (spec.md §9 Design Notes).
const DefaultMaxSelectionDepth = 128

// Options configures a Parse call.
type Options struct {
	// NoLocation omits Location metadata from every produced node.
	NoLocation bool
	// MaxSelectionDepth overrides DefaultMaxSelectionDepth; zero means use
	// the default.
	MaxSelectionDepth int
}

// Parser is a recursive-descent parser over one Source.
type Parser struct {
	source  *ast.Source
	lexer   *astlexer.Lexer
	options Options
	report  *operationreport.Report
	depth   int
	maxDepth int
}

// Parse implements spec.md §6 `parse(source, {no_location}) → Document`.
func Parse(source *ast.Source, options Options) (*ast.Document, *operationreport.Report) {
	report := &operationreport.Report{}
	p := newParser(source, options, report)
	doc := p.parseDocument()
	return doc, report
}

// ParseValue implements spec.md §6 `parse_value(source) → Value`.
func ParseValue(source *ast.Source) (val *ast.Value, report *operationreport.Report) {
	report = &operationreport.Report{}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopParsing); !ok {
				panic(r)
			}
			val = nil
		}
	}()
	p := newParser(source, Options{}, report)
	if _, err := p.lexer.Advance(); err != nil {
		p.syntaxErrorFromLexer(err)
		return nil, report
	}
	val = p.parseValueLiteral(false)
	return val, report
}

// ParseType implements spec.md §6 `parse_type(source) → Type`.
func ParseType(source *ast.Source) (typ *ast.Type, report *operationreport.Report) {
	report = &operationreport.Report{}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopParsing); !ok {
				panic(r)
			}
			typ = nil
		}
	}()
	p := newParser(source, Options{}, report)
	if _, err := p.lexer.Advance(); err != nil {
		p.syntaxErrorFromLexer(err)
		return nil, report
	}
	typ = p.parseType()
	return typ, report
}

func newParser(source *ast.Source, options Options, report *operationreport.Report) *Parser {
	maxDepth := options.MaxSelectionDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxSelectionDepth
	}
	return &Parser{
		source:   source,
		lexer:    astlexer.New(source),
		options:  options,
		report:   report,
		maxDepth: maxDepth,
	}
}

// stopParsing is used as a panic value to unwind out of the recursive
// descent on the first syntax error (spec.md §7 "parsing stops at the first
// syntax error").
type stopParsing struct{}

func (p *Parser) fail() {
	panic(stopParsing{})
}

func (p *Parser) syntaxError(format string, args ...any) {
	tok := p.lexer.Current()
	msg := fmt.Sprintf(format, args...)
	p.report.AddExternalError(operationreport.SyntaxError(p.source, tok.Start, msg))
	p.fail()
}

func (p *Parser) syntaxErrorFromLexer(err error) {
	offset := 0
	if le, ok := err.(*astlexer.Error); ok {
		offset = le.Offset
	}
	ext := operationreport.SyntaxError(p.source, offset, err.Error()).WithOriginalError(pkgerrors.WithStack(err))
	p.report.AddExternalError(ext)
	p.fail()
}

func (p *Parser) cur() *ast.Token { return p.lexer.Current() }

func (p *Parser) advance() {
	_, err := p.lexer.Advance()
	if err != nil {
		p.syntaxErrorFromLexer(err)
	}
}

func (p *Parser) at(kind ast.TokenKind) bool { return p.cur().Kind == kind }

func (p *Parser) atName(value string) bool {
	return p.cur().Kind == ast.Name && p.cur().Value == value
}

func (p *Parser) expect(kind ast.TokenKind) *ast.Token {
	tok := p.cur()
	if tok.Kind != kind {
		p.syntaxError("Expected %s, found %s", kind, tok.Description())
	}
	p.advance()
	return tok
}

func (p *Parser) expectKeyword(keyword string) {
	if !p.atName(keyword) {
		p.syntaxError("Expected %q, found %s", keyword, p.cur().Description())
	}
	p.advance()
}

// skipKeyword advances and reports true if the current token is the Name
// token `keyword`.
func (p *Parser) skipKeyword(keyword string) bool {
	if p.atName(keyword) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) loc(start *ast.Token) *ast.Location {
	if p.options.NoLocation {
		return nil
	}
	return &ast.Location{
		Source:     p.source,
		Start:      start.Start,
		End:        p.tokenBeforeCurrentEnd(),
		StartToken: start,
		EndToken:   p.prevNonCommentToken(),
	}
}

// tokenBeforeCurrentEnd returns the end offset of the token just consumed
// (i.e. the token immediately preceding Current() in the non-comment
// chain), which is the end of the construct just parsed.
func (p *Parser) tokenBeforeCurrentEnd() int {
	if t := p.prevNonCommentToken(); t != nil {
		return t.End
	}
	return p.cur().Start
}

func (p *Parser) prevNonCommentToken() *ast.Token {
	t := p.cur().Prev
	for t != nil && t.Kind == ast.Comment {
		t = t.Prev
	}
	return t
}

func (p *Parser) name() *ast.Name {
	tok := p.expect(ast.Name)
	return &ast.Name{Value: tok.Value, Location: p.loc(tok)}
}

// parseDocument is the top-level entry point: it primes the lexer with an
// initial Advance (to move past SOF) then dispatches per spec.md §4.3 until
// EOF.
func (p *Parser) parseDocument() (doc *ast.Document) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(stopParsing); ok {
				doc = &ast.Document{Source: p.source}
				return
			}
			panic(r)
		}
	}()

	p.advance()
	start := p.cur()
	var defs []ast.Definition
	for !p.at(ast.EOF) {
		defs = append(defs, p.parseDefinition())
	}
	return &ast.Document{
		Definitions: defs,
		Source:      p.source,
		Location:    p.loc(start),
	}
}

func (p *Parser) parseDefinition() ast.Definition {
	if p.at(ast.LBrace) {
		return p.parseOperationDefinition()
	}
	if p.cur().Kind == ast.Name {
		switch p.cur().Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
			return p.parseTypeSystemDefinition("")
		case "extend":
			return p.parseTypeSystemExtension()
		}
	}
	if p.at(ast.String) || p.at(ast.BlockString) {
		desc := p.cur().Value
		p.advance()
		return p.parseTypeSystemDefinition(desc)
	}
	p.syntaxError("Unexpected %s", p.cur().Description())
	return nil
}

func operationTypeFromKeyword(kw string) ast.OperationType {
	switch kw {
	case "mutation":
		return ast.OperationTypeMutation
	case "subscription":
		return ast.OperationTypeSubscription
	default:
		return ast.OperationTypeQuery
	}
}

func (p *Parser) parseOperationDefinition() *ast.OperationDefinition {
	start := p.cur()
	op := ast.OperationTypeQuery
	var name *ast.Name
	var varDefs []*ast.VariableDefinition
	var directives []*ast.Directive

	if p.at(ast.LBrace) {
		// Shorthand anonymous query.
	} else {
		op = operationTypeFromKeyword(p.cur().Value)
		p.advance()
		if p.at(ast.Name) {
			name = p.name()
		}
		varDefs = p.parseVariableDefinitions()
		directives = p.parseDirectives(false)
	}

	sel := p.parseSelectionSet()
	return &ast.OperationDefinition{
		Operation:           op,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          directives,
		SelectionSet:        sel,
		Location:            p.loc(start),
	}
}

func (p *Parser) parseVariableDefinitions() []*ast.VariableDefinition {
	if !p.at(ast.LParen) {
		return nil
	}
	p.advance()
	var defs []*ast.VariableDefinition
	for !p.at(ast.RParen) {
		defs = append(defs, p.parseVariableDefinition())
	}
	p.advance()
	return defs
}

func (p *Parser) parseVariableDefinition() *ast.VariableDefinition {
	start := p.cur()
	p.expect(ast.Dollar)
	varName := p.name()
	p.expect(ast.Colon)
	typ := p.parseType()
	var def *ast.Value
	if p.at(ast.Equals) {
		p.advance()
		def = p.parseValueLiteral(true)
	}
	directives := p.parseDirectives(true)
	return &ast.VariableDefinition{
		Variable: varName, Type: typ, DefaultValue: def, Directives: directives,
		Location: p.loc(start),
	}
}

func (p *Parser) parseFragmentDefinition() *ast.FragmentDefinition {
	start := p.cur()
	p.expectKeyword("fragment")
	nameTok := p.cur()
	if nameTok.Kind == ast.Name && nameTok.Value == "on" {
		p.syntaxError("Unexpected %s", nameTok.Description())
	}
	name := p.name()
	p.expectKeyword("on")
	typeCond := p.name()
	directives := p.parseDirectives(false)
	sel := p.parseSelectionSet()
	return &ast.FragmentDefinition{
		Name: name, TypeCondition: typeCond, Directives: directives, SelectionSet: sel,
		Location: p.loc(start),
	}
}

func (p *Parser) parseSelectionSet() *ast.SelectionSet {
	start := p.expect(ast.LBrace)
	p.depth++
	if p.depth > p.maxDepth {
		p.syntaxError("Selection set exceeds maximum depth of %d", p.maxDepth)
	}
	var selections []ast.Selection
	for !p.at(ast.RBrace) {
		selections = append(selections, p.parseSelection())
	}
	p.advance()
	p.depth--
	return &ast.SelectionSet{Selections: selections, Location: p.loc(start)}
}

func (p *Parser) parseSelection() ast.Selection {
	if p.at(ast.Spread) {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *Parser) parseField() *ast.Field {
	start := p.cur()
	first := p.name()
	var alias, name *ast.Name
	if p.at(ast.Colon) {
		p.advance()
		alias = first
		name = p.name()
	} else {
		name = first
	}
	args := p.parseArguments(false)
	directives := p.parseDirectives(false)
	var sel *ast.SelectionSet
	if p.at(ast.LBrace) {
		sel = p.parseSelectionSet()
	}
	return &ast.Field{
		Alias: alias, Name: name, Arguments: args, Directives: directives, SelectionSet: sel,
		Location: p.loc(start),
	}
}

func (p *Parser) parseFragment() ast.Selection {
	start := p.cur()
	p.expect(ast.Spread)
	if p.atName("on") {
		p.advance()
		typeCond := p.name()
		directives := p.parseDirectives(false)
		sel := p.parseSelectionSet()
		return &ast.InlineFragment{
			TypeCondition: typeCond, Directives: directives, SelectionSet: sel,
			Location: p.loc(start),
		}
	}
	if p.at(ast.Name) && !p.atName("on") {
		if p.at(ast.At) {
			// unreachable, kept for clarity
		}
		name := p.name()
		directives := p.parseDirectives(false)
		return &ast.FragmentSpread{Name: name, Directives: directives, Location: p.loc(start)}
	}
	if p.at(ast.At) || p.at(ast.LBrace) {
		directives := p.parseDirectives(false)
		sel := p.parseSelectionSet()
		return &ast.InlineFragment{Directives: directives, SelectionSet: sel, Location: p.loc(start)}
	}
	p.syntaxError("Unexpected %s", p.cur().Description())
	return nil
}

func (p *Parser) parseArguments(constant bool) []*ast.Argument {
	if !p.at(ast.LParen) {
		return nil
	}
	p.advance()
	var args []*ast.Argument
	for !p.at(ast.RParen) {
		args = append(args, p.parseArgument(constant))
	}
	p.advance()
	return args
}

func (p *Parser) parseArgument(constant bool) *ast.Argument {
	start := p.cur()
	name := p.name()
	p.expect(ast.Colon)
	val := p.parseValueLiteral(constant)
	return &ast.Argument{Name: name, Value: val, Location: p.loc(start)}
}

func (p *Parser) parseDirectives(constant bool) []*ast.Directive {
	var directives []*ast.Directive
	for p.at(ast.At) {
		directives = append(directives, p.parseDirective(constant))
	}
	return directives
}

func (p *Parser) parseDirective(constant bool) *ast.Directive {
	start := p.cur()
	p.expect(ast.At)
	name := p.name()
	args := p.parseArguments(constant)
	return &ast.Directive{Name: name, Arguments: args, Location: p.loc(start)}
}
