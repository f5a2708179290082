/*
File    : vivjson/parser/parser_literals.go

Scalar literals and the two collection literals (Array, Block).
*/
package parser

import (
	"strconv"

	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
)

func (p *Parser) parseIntLiteral() (Node, error) {
	n, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.addError("invalid integer literal %q", p.cur.Literal)
		n = 0
	}
	node := &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.NewInt(n)}
	p.advance()
	return node, nil
}

func (p *Parser) parseFloatLiteral() (Node, error) {
	f, err := strconv.ParseFloat(p.cur.Literal, 64)
	if err != nil {
		p.addError("invalid float literal %q", p.cur.Literal)
		f = 0
	}
	node := &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.NewFloat(f)}
	p.advance()
	return node, nil
}

func (p *Parser) parseStringLiteral() (Node, error) {
	node := &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.NewString(p.cur.Literal)}
	p.advance()
	return node, nil
}

func (p *Parser) parseBoolLiteral() (Node, error) {
	node := &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.NewBool(p.cur.Type == lexer.TRUE)}
	p.advance()
	return node, nil
}

func (p *Parser) parseNullLiteral() (Node, error) {
	node := &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.Null}
	p.advance()
	return node, nil
}

// parseArrayLiteral parses `[ elem (sep elem)* ]`, sep being the usual
// comma/semicolon/newline separator.
func (p *Parser) parseArrayLiteral() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '['

	node := &ArrayLitNode{pos: pos{line, col}}
	p.skipSeparators()
	for !p.curIs(lexer.RBRACKET, lexer.EOF) {
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Elems = append(node.Elems, elem)
		if !p.curIs(lexer.RBRACKET) {
			if !p.curIs(lexer.COMMA, lexer.SEMI, lexer.NEWLINE) {
				p.addError("expected ',' or ']' in array literal but found %q", p.cur.Type)
				break
			}
			p.skipSeparators()
		}
	}
	if !p.expect(lexer.RBRACKET) {
		return node, nil
	}
	return node, nil
}

// parseBlockLiteral parses `{ key : value (sep key : value)* }`. A key is
// an identifier, a number token, or a string literal (spec 3.2); all are
// stringified to a plain Go string at parse time.
func (p *Parser) parseBlockLiteral() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '{'

	node := &BlockLitNode{pos: pos{line, col}}
	p.skipSeparators()
	for !p.curIs(lexer.RBRACE, lexer.EOF) {
		key, ok := p.parseBlockKey()
		if !ok {
			break
		}
		if !p.expect(lexer.COLON) {
			break
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Entries = append(node.Entries, BlockEntry{Key: key, Value: val})
		if !p.curIs(lexer.RBRACE) {
			if !p.curIs(lexer.COMMA, lexer.SEMI, lexer.NEWLINE) {
				p.addError("expected ',' or '}' in block literal but found %q", p.cur.Type)
				break
			}
			p.skipSeparators()
		}
	}
	if !p.expect(lexer.RBRACE) {
		return node, nil
	}
	return node, nil
}

func (p *Parser) parseBlockKey() (string, bool) {
	switch p.cur.Type {
	case lexer.IDENT:
		k := p.cur.Literal
		p.advance()
		return k, true
	case lexer.STRING:
		k := p.cur.Literal
		p.advance()
		return k, true
	case lexer.INT, lexer.FLOAT:
		k := p.cur.Literal
		p.advance()
		return k, true
	default:
		if lexer.IsReserved(string(p.cur.Type)) {
			k := string(p.cur.Type)
			p.advance()
			return k, true
		}
		p.addError("expected block key but found %q", p.cur.Type)
		return "", false
	}
}
