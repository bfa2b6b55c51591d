package astlexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphql-core/gqlcore/pkg/ast"
)

func lexAll(t *testing.T, body string) []*ast.Token {
	t.Helper()
	l := New(ast.NewSource([]byte(body), "test"))
	var toks []*ast.Token
	for {
		tok, err := l.Advance()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == ast.EOF {
			return toks
		}
	}
}

func TestLexer_TokenizesPunctuators(t *testing.T) {
	toks := lexAll(t, `{ } ( ) [ ] : = @ $ & | !`)
	kinds := []ast.TokenKind{ast.LBrace, ast.RBrace, ast.LParen, ast.RParen, ast.LBracket, ast.RBracket,
		ast.Colon, ast.Equals, ast.At, ast.Dollar, ast.Amp, ast.Pipe, ast.Bang, ast.EOF}
	require.Len(t, toks, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, toks[i].Kind)
	}
}

func TestLexer_TokenizesNameAndKeyword(t *testing.T) {
	toks := lexAll(t, `hello _World2`)
	require.Len(t, toks, 3)
	assert.Equal(t, ast.Name, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Value)
	assert.Equal(t, "_World2", toks[1].Value)
}

func TestLexer_TokenizesIntAndFloat(t *testing.T) {
	toks := lexAll(t, `123 -4 1.5 1e10 1.2e-3`)
	require.Len(t, toks, 6)
	assert.Equal(t, ast.Int, toks[0].Kind)
	assert.Equal(t, ast.Int, toks[1].Kind)
	assert.Equal(t, ast.Float, toks[2].Kind)
	assert.Equal(t, ast.Float, toks[3].Kind)
	assert.Equal(t, ast.Float, toks[4].Kind)
}

func TestLexer_RejectsLeadingZeroFollowedByDigit(t *testing.T) {
	l := New(ast.NewSource([]byte(`012`), "test"))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_RejectsNumberFollowedByNameChar(t *testing.T) {
	l := New(ast.NewSource([]byte(`1x`), "test"))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_TokenizesQuotedStringWithEscapes(t *testing.T) {
	toks := lexAll(t, `"hello\nworld"`)
	require.Len(t, toks, 2)
	assert.Equal(t, ast.String, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Value)
}

func TestLexer_RejectsUnterminatedString(t *testing.T) {
	l := New(ast.NewSource([]byte(`"hello`), "test"))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_RejectsNewlineInsideQuotedString(t *testing.T) {
	l := New(ast.NewSource([]byte("\"hello\nworld\""), "test"))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_TokenizesBlockString(t *testing.T) {
	toks := lexAll(t, "\"\"\"hello\nworld\"\"\"")
	require.Len(t, toks, 2)
	assert.Equal(t, ast.BlockString, toks[0].Kind)
}

func TestLexer_BlockStringAllowsEscapedTripleQuote(t *testing.T) {
	toks := lexAll(t, `"""say \"""hi\"""."""`)
	require.Len(t, toks, 2)
	assert.Contains(t, toks[0].Value, `"""hi"""`)
}

func TestLexer_SkipsCommentsBetweenTokens(t *testing.T) {
	toks := lexAll(t, "# a comment\nhello")
	require.Len(t, toks, 2)
	assert.Equal(t, ast.Name, toks[0].Kind)
	assert.Equal(t, "hello", toks[0].Value)
}

func TestLexer_RejectsUnexpectedCharacter(t *testing.T) {
	l := New(ast.NewSource([]byte(`~`), "test"))
	_, err := l.Advance()
	require.Error(t, err)
}

func TestLexer_EmptySourceYieldsEOF(t *testing.T) {
	toks := lexAll(t, ``)
	require.Len(t, toks, 1)
	assert.Equal(t, ast.EOF, toks[0].Kind)
}

func TestLexer_LinksTokensInChain(t *testing.T) {
	l := New(ast.NewSource([]byte(`a b`), "test"))
	first, err := l.Advance()
	require.NoError(t, err)
	second, err := l.Advance()
	require.NoError(t, err)
	assert.Same(t, first, second.Prev)
	assert.Same(t, second, first.Next)
}
