/*
File    : vivjson/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// consumeAll scans every token from src, dropping NEWLINE tokens for tests
// that don't care about statement separation.
func consumeAll(t *testing.T, src string, dropNewlines bool) []Token {
	t.Helper()
	lex := New(src)
	var toks []Token
	for {
		tok, err := lex.Next()
		assert.NoError(t, err)
		if tok.Type == EOF {
			break
		}
		if dropNewlines && tok.Type == NEWLINE {
			continue
		}
		toks = append(toks, Token{Type: tok.Type, Literal: tok.Literal})
	}
	return toks
}

func TestLexer_Operators(t *testing.T) {
	toks := consumeAll(t, `123 + 2 - 12 <= >= == != := += -=`, true)
	want := []Token{
		NewToken(INT, "123"), NewToken(PLUS, "+"), NewToken(INT, "2"), NewToken(MINUS, "-"), NewToken(INT, "12"),
		NewToken(LE, "<="), NewToken(GE, ">="), NewToken(EQ, "=="), NewToken(NE, "!="), NewToken(YIELD, ":="),
		NewToken(PLUS_EQ, "+="), NewToken(MINUS_EQ, "-="),
	}
	assert.Equal(t, want, toks)
}

func TestLexer_Brackets(t *testing.T) {
	toks := consumeAll(t, `{ } + [] abc - a12`, true)
	want := []Token{
		NewToken(LBRACE, "{"), NewToken(RBRACE, "}"), NewToken(PLUS, "+"),
		NewToken(LBRACKET, "["), NewToken(RBRACKET, "]"),
		NewToken(IDENT, "abc"), NewToken(MINUS, "-"), NewToken(IDENT, "a12"),
	}
	assert.Equal(t, want, toks)
}

func TestLexer_Keywords(t *testing.T) {
	toks := consumeAll(t, `if elseif else for while do break continue return function reference true false null in and or not`, true)
	wantTypes := []TokenType{IF, ELSEIF, ELSE, FOR, WHILE, DO, BREAK, CONTINUE, RETURN, FUNCTION, REFERENCE, TRUE, FALSE, NULL, IN, AND, OR, NOT}
	assert.Len(t, toks, len(wantTypes))
	for i, want := range wantTypes {
		assert.Equal(t, want, toks[i].Type)
	}
}

func TestLexer_Numbers(t *testing.T) {
	toks := consumeAll(t, `42 3.14 1e10 2.5e-3 7.`, true)
	assert.Equal(t, INT, toks[0].Type)
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, FLOAT, toks[1].Type)
	assert.Equal(t, "3.14", toks[1].Literal)
	assert.Equal(t, FLOAT, toks[2].Type)
	assert.Equal(t, "1e10", toks[2].Literal)
	assert.Equal(t, FLOAT, toks[3].Type)
	assert.Equal(t, "2.5e-3", toks[3].Literal)
	// "7." with no fractional digit lexes as INT "7" followed by a DOT.
	assert.Equal(t, INT, toks[4].Type)
	assert.Equal(t, "7", toks[4].Literal)
	assert.Equal(t, DOT, toks[5].Type)
}

func TestLexer_Strings(t *testing.T) {
	toks := consumeAll(t, `"hello\nworld" 'it''s'`, true)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello\nworld", toks[0].Literal)
}

func TestLexer_UnicodeEscape(t *testing.T) {
	toks := consumeAll(t, `"\u03b1\u03b2\u03b3"`, true)
	assert.Equal(t, "αβγ", toks[0].Literal)
}

func TestLexer_InvalidEscape(t *testing.T) {
	lex := New(`"\q"`)
	_, err := lex.Next()
	assert.Error(t, err)
}

func TestLexer_UnterminatedBlockComment(t *testing.T) {
	lex := New(`/* never closes`)
	_, err := lex.Next()
	assert.Error(t, err)
}

func TestLexer_TrailingDotIsError(t *testing.T) {
	lex := New(`3.e5`)
	_, err := lex.Next()
	assert.Error(t, err)
}

func TestLexer_CommentStyles(t *testing.T) {
	toks := consumeAll(t, "1 # line comment\n2 // another\n3 /* block */ 4", false)
	var kinds []TokenType
	for _, tk := range toks {
		kinds = append(kinds, tk.Type)
	}
	assert.Equal(t, []TokenType{INT, NEWLINE, INT, NEWLINE, INT, INT}, kinds)
}

func TestLexer_NewlineSuppressedInsideBrackets(t *testing.T) {
	toks := consumeAll(t, "[1,\n2,\n3]", false)
	for _, tk := range toks {
		assert.NotEqual(t, NEWLINE, tk.Type)
	}
}

func TestLexer_ReservedWordsCannotBeIdentifiers(t *testing.T) {
	for _, w := range []string{"if", "elseif", "else", "for", "while", "do", "break", "continue",
		"return", "remove", "function", "reference", "true", "false", "null", "in", "and", "or",
		"not", "import", "super", "class", "this"} {
		assert.True(t, IsReserved(w), "expected %q to be reserved", w)
	}
	assert.False(t, IsReserved("foo"))
}
