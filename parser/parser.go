/*
File    : vivjson/parser/parser.go

Package parser implements a recursive-descent parser for VivJson (spec
4.2), with a Pratt-style prefix table for primary expressions. Tokens come from the lexer package; the parser
keeps a two-token lookahead (cur, peek) and collects errors instead of
panicking on the first one, so a single Parse call can report everything
wrong with a source at once. Grounded on the teacher's Parser{Lex,
CurrToken, NextToken, Errors} shape and its init()-time function-table
registration, adapted to VivJson's grammar (no var/let/const, no
class/enum/switch).
*/
package parser

import (
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/verror"
)

// prefixFunc parses a primary expression starting at the parser's current
// token: a literal, an identifier, a parenthesized expression, an array
// or block literal, or a function definition. Registered per token type
// the way the teacher's parser registers UnaryFuncs; the binary operator
// chain itself (spec 4.2's logical_or down to multiplicative) is plain
// recursive descent rather than a table, since the grammar's chained-
// comparison restriction doesn't fit a generic Pratt loop cleanly.
type prefixFunc func(p *Parser) (Node, error)

// Parser holds all state for one parse of one source string.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	prefixFuncs map[lexer.TokenType]prefixFunc

	jsonOnly bool
	// infinityLexeme/nanLexeme, when non-empty, are the identifiers that
	// spell +/-infinity and NaN in source (spec 6.4's `infinity`/`nan`
	// config options, threaded down from the host API).
	infinityLexeme string
	nanLexeme      string

	errors []*verror.Error
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithJSONOnly restricts the parser to strict JSON-only mode (spec 4.2).
func WithJSONOnly(enabled bool) Option {
	return func(p *Parser) { p.jsonOnly = enabled }
}

// WithInfinityLexeme recognizes name as a numeric-infinity literal.
func WithInfinityLexeme(name string) Option {
	return func(p *Parser) { p.infinityLexeme = name }
}

// WithNaNLexeme recognizes name as a NaN literal.
func WithNaNLexeme(name string) Option {
	return func(p *Parser) { p.nanLexeme = name }
}

// New creates a Parser over src and primes its two-token lookahead.
func New(src string, opts ...Option) *Parser {
	p := &Parser{lex: lexer.New(src)}
	for _, opt := range opts {
		opt(p)
	}
	p.registerPrefixFuncs()
	p.advance()
	p.advance()
	return p
}

// HasErrors reports whether any parse error was collected.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Errors returns every collected parse error, in the order encountered.
func (p *Parser) Errors() []*verror.Error {
	return p.errors
}

func (p *Parser) addError(format string, a ...interface{}) {
	p.errors = append(p.errors, verror.New(verror.Parse, p.cur.Line, p.cur.Column, format, a...))
}

// advance shifts cur <- peek and reads a new peek token from the lexer,
// recording a lex error as a parse error and substituting EOF for it.
// NEWLINE tokens are passed through, not skipped.
func (p *Parser) advance() {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		if lexErr, ok := err.(*lexer.LexError); ok {
			p.errors = append(p.errors, verror.New(verror.Lex, lexErr.Line, lexErr.Column, "%s", lexErr.Message))
		} else {
			p.errors = append(p.errors, verror.New(verror.Lex, p.cur.Line, p.cur.Column, "%s", err.Error()))
		}
		tok = lexer.NewAt(lexer.EOF, "", p.cur.Line, p.cur.Column)
	}
	p.peek = tok
}

// curIs reports whether the current token has one of the given types.
func (p *Parser) curIs(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.cur.Type == t {
			return true
		}
	}
	return false
}

func (p *Parser) peekIs(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.peek.Type == t {
			return true
		}
	}
	return false
}

// expect checks cur is t, consumes it, and advances; otherwise records a
// parse error.
func (p *Parser) expect(t lexer.TokenType) bool {
	if !p.curIs(t) {
		p.addError("expected %q but found %q", t, p.cur.Type)
		return false
	}
	p.advance()
	return true
}

// skipSeparators consumes any run of NEWLINE, COMMA, or SEMI tokens,
// which are interchangeable statement separators (spec 4.2's
// `separator := ',' | ';' | newline`).
func (p *Parser) skipSeparators() {
	for p.curIs(lexer.NEWLINE, lexer.COMMA, lexer.SEMI) {
		p.advance()
	}
}

// atBlockEnd reports whether cur ends a statement list: EOF or a closing
// brace.
func (p *Parser) atBlockEnd() bool {
	return p.curIs(lexer.EOF, lexer.RBRACE)
}
