// Package astlexer implements the streaming GraphQL tokenizer described in
// spec.md §4.2. It produces a doubly linked ast.Token stream with precise
// line/column tracking.
//
// Numeric/string/block-string scanning is grounded on
// other_examples/192eb5ca_zombiezen-graphql-server__internal-gqlang-lex.go
// (see DESIGN.md), adapted to emit ast.Token values linked into the chain
// graphql-go-tools' lexer/parser pair expects.
package astlexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

// Error is a lexer-level syntax error. It is wrapped into an
// operationreport.ExternalError by pkg/astparser, which has access to the
// Source needed to render a caret excerpt.
type Error struct {
	Message string
	Offset  int
}

func (e *Error) Error() string { return e.Message }

// Lexer advances across a Source, emitting tokens and maintaining the
// prev/next chain (spec.md §4.2).
type Lexer struct {
	source *ast.Source
	body   []byte
	pos    int
	line   int
	col    int

	current *ast.Token
}

// New creates a Lexer positioned at the start of source, with an initial SOF
// token already installed as Current().
func New(source *ast.Source) *Lexer {
	l := &Lexer{
		source: source,
		body:   source.Body,
		pos:    0,
		line:   1,
		col:    1,
	}
	if hasBOM(l.body) {
		l.pos = 3
	}
	l.current = &ast.Token{Kind: ast.SOF, Start: 0, End: 0, Line: 1, Column: 1}
	return l
}

// Current returns the most recently produced token (SOF before the first
// call to Advance).
func (l *Lexer) Current() *ast.Token { return l.current }

// Advance returns the next non-comment token, links it after Current(), and
// makes it the new Current(). Comment tokens are produced and linked into
// the chain but never returned to the caller (spec.md §4.2).
func (l *Lexer) Advance() (*ast.Token, error) {
	for {
		tok, err := l.lexOne()
		if err != nil {
			return nil, err
		}
		tok.Prev = l.current
		l.current.Next = tok
		l.current = tok
		if tok.Kind != ast.Comment {
			return tok, nil
		}
	}
}

func hasBOM(body []byte) bool {
	return len(body) >= 3 && body[0] == 0xEF && body[1] == 0xBB && body[2] == 0xBF
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool { return isNameStart(c) || isDigit(c) }

// advanceRaw advances the cursor by n bytes, maintaining line/column.
func (l *Lexer) advanceRaw(n int) {
	for i := 0; i < n; i++ {
		c := l.body[l.pos+i]
		switch c {
		case '\n':
			l.line++
			l.col = 1
		case '\r':
			if i+1 < n && l.body[l.pos+i+1] == '\n' {
				continue
			}
			l.line++
			l.col = 1
		default:
			l.col++
		}
	}
	l.pos += n
}

// skipIgnored skips whitespace, commas, and BOM between tokens, emitting
// nothing (it is not itself a token).
func (l *Lexer) skipIgnored() {
	for l.pos < len(l.body) {
		switch l.body[l.pos] {
		case ' ', '\t', ',':
			l.advanceRaw(1)
		case '\n':
			l.advanceRaw(1)
		case '\r':
			if l.pos+1 < len(l.body) && l.body[l.pos+1] == '\n' {
				l.advanceRaw(2)
			} else {
				l.advanceRaw(1)
			}
		case 0xEF:
			if hasBOM(l.body[l.pos:]) {
				l.advanceRaw(3)
				continue
			}
			return
		default:
			return
		}
	}
}

var punctuators = []struct {
	text string
	kind ast.TokenKind
}{
	{"...", ast.Spread},
	{"!", ast.Bang},
	{"$", ast.Dollar},
	{"&", ast.Amp},
	{"(", ast.LParen},
	{")", ast.RParen},
	{":", ast.Colon},
	{"=", ast.Equals},
	{"@", ast.At},
	{"[", ast.LBracket},
	{"]", ast.RBracket},
	{"{", ast.LBrace},
	{"|", ast.Pipe},
	{"}", ast.RBrace},
}

func (l *Lexer) lexOne() (*ast.Token, error) {
	l.skipIgnored()

	start, line, col := l.pos, l.line, l.col
	if l.pos >= len(l.body) {
		return &ast.Token{Kind: ast.EOF, Start: start, End: start, Line: line, Column: col}, nil
	}

	rest := l.body[l.pos:]

	if rest[0] == '#' {
		i := 0
		for i < len(rest) && rest[i] != '\n' && rest[i] != '\r' {
			i++
		}
		text := string(rest[:i])
		l.advanceRaw(i)
		return &ast.Token{Kind: ast.Comment, Start: start, End: l.pos, Line: line, Column: col, Value: text}, nil
	}

	for _, p := range punctuators {
		if strings.HasPrefix(string(rest), p.text) {
			l.advanceRaw(len(p.text))
			return &ast.Token{Kind: p.kind, Start: start, End: l.pos, Line: line, Column: col}, nil
		}
	}

	switch {
	case isNameStart(rest[0]):
		n := 1
		for n < len(rest) && isNameChar(rest[n]) {
			n++
		}
		l.advanceRaw(n)
		return &ast.Token{Kind: ast.Name, Start: start, End: l.pos, Line: line, Column: col, Value: string(rest[:n])}, nil
	case rest[0] == '"':
		return l.lexString(start, line, col)
	case rest[0] == '-' || isDigit(rest[0]):
		return l.lexNumber(start, line, col)
	default:
		return nil, &Error{Message: fmt.Sprintf("Unexpected character: %q", rune(rest[0])), Offset: start}
	}
}

// lexNumber implements the IntValue/FloatValue grammar of spec.md §4.2.
func (l *Lexer) lexNumber(start, line, col int) (*ast.Token, error) {
	body := l.body
	n := start
	if body[n] == '-' {
		n++
	}
	if n >= len(body) || !isDigit(body[n]) {
		return nil, &Error{Message: "Invalid number, expected digit but got end of input", Offset: n}
	}
	if body[n] == '0' {
		n++
		if n < len(body) && isDigit(body[n]) {
			return nil, &Error{Message: fmt.Sprintf("Invalid number, unexpected digit after 0: %q", rune(body[n])), Offset: n}
		}
	} else {
		for n < len(body) && isDigit(body[n]) {
			n++
		}
	}

	isFloat := false
	if n < len(body) && body[n] == '.' {
		isFloat = true
		n++
		if n >= len(body) || !isDigit(body[n]) {
			return nil, &Error{Message: "Invalid number, expected digit after '.'", Offset: n}
		}
		for n < len(body) && isDigit(body[n]) {
			n++
		}
	}
	if n < len(body) && (body[n] == 'e' || body[n] == 'E') {
		isFloat = true
		n++
		if n < len(body) && (body[n] == '+' || body[n] == '-') {
			n++
		}
		if n >= len(body) || !isDigit(body[n]) {
			return nil, &Error{Message: "Invalid number, expected digit after exponent marker", Offset: n}
		}
		for n < len(body) && isDigit(body[n]) {
			n++
		}
	}
	// Reject a name character directly following the number (e.g. `1x`),
	// matching graphql-js's NumberLexingError. A leading '+' never reaches
	// lexNumber: lexOne reports it as an unexpected character.
	if n < len(body) && isNameStart(body[n]) {
		return nil, &Error{Message: fmt.Sprintf("Invalid number, expected digit but got: %q", rune(body[n])), Offset: n}
	}

	text := string(body[start:n])
	l.advanceRaw(n - l.pos)
	kind := ast.Int
	if isFloat {
		kind = ast.Float
	}
	return &ast.Token{Kind: kind, Start: start, End: n, Line: line, Column: col, Value: text}, nil
}

// lexString implements StringValue (quoted and block) lexing of spec.md
// §4.2.
func (l *Lexer) lexString(start, line, col int) (*ast.Token, error) {
	body := l.body
	if strings.HasPrefix(string(body[start:]), `"""`) {
		return l.lexBlockString(start, line, col)
	}

	var sb strings.Builder
	n := start + 1
	for n < len(body) {
		c := body[n]
		switch {
		case c == '"':
			l.advanceRaw(n + 1 - l.pos)
			return &ast.Token{Kind: ast.String, Start: start, End: n + 1, Line: line, Column: col, Value: sb.String()}, nil
		case c == '\\':
			n++
			if n >= len(body) {
				return nil, &Error{Message: "Unterminated string", Offset: n}
			}
			esc, adv, err := decodeEscape(body[n:])
			if err != nil {
				return nil, &Error{Message: err.Error(), Offset: n}
			}
			sb.WriteString(esc)
			n += adv
		case c == '\n' || c == '\r':
			return nil, &Error{Message: "Unterminated string", Offset: n}
		case c < 0x20 && c != '\t':
			return nil, &Error{Message: fmt.Sprintf("Invalid character within String: %#U", rune(c)), Offset: n}
		default:
			sb.WriteByte(c)
			n++
		}
	}
	return nil, &Error{Message: "Unterminated string", Offset: n}
}

func decodeEscape(rest []byte) (string, int, error) {
	if len(rest) == 0 {
		return "", 0, fmt.Errorf("unterminated escape sequence")
	}
	switch rest[0] {
	case '"':
		return `"`, 1, nil
	case '\\':
		return `\`, 1, nil
	case '/':
		return `/`, 1, nil
	case 'b':
		return "\b", 1, nil
	case 'f':
		return "\f", 1, nil
	case 'n':
		return "\n", 1, nil
	case 'r':
		return "\r", 1, nil
	case 't':
		return "\t", 1, nil
	case 'u':
		if len(rest) < 5 {
			return "", 0, fmt.Errorf("invalid unicode escape sequence")
		}
		v, err := strconv.ParseUint(string(rest[1:5]), 16, 32)
		if err != nil {
			return "", 0, fmt.Errorf("invalid unicode escape sequence: %q", rest[1:5])
		}
		return string(rune(v)), 5, nil
	default:
		return "", 0, fmt.Errorf("invalid escape character: %q", rest[0])
	}
}

func (l *Lexer) lexBlockString(start, line, col int) (*ast.Token, error) {
	body := l.body
	i := start + 3
	for {
		j := strings.Index(string(body[i:]), `"""`)
		if j == -1 {
			return nil, &Error{Message: "Unterminated string", Offset: i}
		}
		// Count preceding backslashes; an even count means the quote isn't
		// escaped (an escaped backslash doesn't escape the following `"""`).
		backslashes := 0
		for k := i + j - 1; k >= 0 && body[k] == '\\'; k-- {
			backslashes++
		}
		if backslashes%2 == 0 {
			raw := string(body[start+3 : i+j])
			l.advanceRaw(i + j + 3 - l.pos)
			return &ast.Token{
				Kind: ast.BlockString, Start: start, End: i + j + 3, Line: line, Column: col,
				Value: BlockStringValue(strings.ReplaceAll(raw, `\"""`, `"""`)),
			}, nil
		}
		i += j + 3
	}
}
