package ast

import "fmt"

// TokenKind enumerates the lexical token kinds produced by pkg/astlexer
// (spec.md §3 "Token").
type TokenKind int

const (
	SOF TokenKind = iota
	EOF
	Bang
	Dollar
	Amp
	LParen
	RParen
	Spread
	Colon
	Equals
	At
	LBracket
	RBracket
	LBrace
	Pipe
	RBrace
	Name
	Int
	Float
	String
	BlockString
	Comment
)

var tokenKindNames = map[TokenKind]string{
	SOF:         "<SOF>",
	EOF:         "<EOF>",
	Bang:        "!",
	Dollar:      "$",
	Amp:         "&",
	LParen:      "(",
	RParen:      ")",
	Spread:      "...",
	Colon:       ":",
	Equals:      "=",
	At:          "@",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	Pipe:        "|",
	RBrace:      "}",
	Name:        "Name",
	Int:         "Int",
	Float:       "Float",
	String:      "String",
	BlockString: "BlockString",
	Comment:     "Comment",
}

func (k TokenKind) String() string {
	if s, ok := tokenKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical token. Tokens form a doubly linked list so
// consumers can scan forward/backward; Comment tokens are linked but
// invisible to the parser (spec.md §3).
type Token struct {
	Kind   TokenKind
	Start  int // byte offset, inclusive
	End    int // byte offset, exclusive
	Line   int // 1-based
	Column int // 1-based
	Value  string

	Prev *Token
	Next *Token
}

// Description renders the token the way syntax errors refer to it, e.g.
// `Name "foo"` or `{`.
func (t *Token) Description() string {
	if t == nil {
		return "<EOF>"
	}
	switch t.Kind {
	case Name, Int, Float, String, BlockString:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	default:
		return t.Kind.String()
	}
}
