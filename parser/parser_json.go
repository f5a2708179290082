/*
File    : vivjson/parser/parser_json.go

JSON-only mode (spec 4.2): the grammar is restricted to strict JSON, plus
unary minus on numeric literals. A top-level bare `"key": value, ...`
sequence (no enclosing braces) is implicitly wrapped in a Block, matching
script mode's "{} may be omitted" behavior.
*/
package parser

import (
	"fmt"

	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
	"github.com/vivjson/vivjson/verror"
)

// ParseJSONOnly parses src as strict JSON (spec 4.2).
func (p *Parser) ParseJSONOnly() (*BlockStmtNode, []*verror.Error) {
	prog := &BlockStmtNode{}
	p.skipSeparators()
	if p.curIs(lexer.EOF) {
		return prog, p.errors
	}

	var top Node
	if p.curIs(lexer.STRING) && p.peekIs(lexer.COLON) {
		top = p.parseJSONImplicitBlock()
	} else {
		val, err := p.parseJSONValue()
		if err != nil {
			p.addError("%s", err.Error())
			return prog, p.errors
		}
		top = val
	}
	prog.Stmts = append(prog.Stmts, top)

	p.skipSeparators()
	if !p.curIs(lexer.EOF) {
		p.addError("unexpected trailing content after top-level JSON value")
	}
	return prog, p.errors
}

func (p *Parser) parseJSONImplicitBlock() Node {
	line, col := p.cur.Line, p.cur.Column
	node := &BlockLitNode{pos: pos{line, col}}
	for p.curIs(lexer.STRING) && p.peekIs(lexer.COLON) {
		key := p.cur.Literal
		p.advance() // consume string key
		p.advance() // consume ':'
		val, err := p.parseJSONValue()
		if err != nil {
			p.addError("%s", err.Error())
			break
		}
		node.Entries = append(node.Entries, BlockEntry{Key: key, Value: val})
		p.skipSeparators()
	}
	return node
}

func (p *Parser) parseJSONValue() (Node, error) {
	switch p.cur.Type {
	case lexer.STRING:
		return p.parseStringLiteral()
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.TRUE, lexer.FALSE:
		return p.parseBoolLiteral()
	case lexer.NULL:
		return p.parseNullLiteral()
	case lexer.MINUS:
		p.advance()
		if !p.curIs(lexer.INT, lexer.FLOAT) {
			return nil, fmt.Errorf("expected number after unary '-' in JSON-only mode")
		}
		num, _ := p.parseJSONValue()
		lit := num.(*LiteralNode)
		switch v := lit.Val.(type) {
		case *value.IntValue:
			lit.Val = value.NewInt(-v.Val)
		case *value.FloatValue:
			lit.Val = value.NewFloat(-v.Val)
		}
		return lit, nil
	case lexer.LBRACKET:
		return p.parseJSONArray()
	case lexer.LBRACE:
		return p.parseJSONObject()
	default:
		return nil, fmt.Errorf("unexpected token %q in JSON-only mode", p.cur.Type)
	}
}

func (p *Parser) parseJSONArray() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '['
	node := &ArrayLitNode{pos: pos{line, col}}
	p.skipSeparators()
	for !p.curIs(lexer.RBRACKET, lexer.EOF) {
		v, err := p.parseJSONValue()
		if err != nil {
			return nil, err
		}
		node.Elems = append(node.Elems, v)
		if !p.curIs(lexer.RBRACKET) {
			if !p.curIs(lexer.COMMA, lexer.NEWLINE) {
				return nil, fmt.Errorf("expected ',' or ']' in JSON array")
			}
			p.skipSeparators()
		}
	}
	if !p.curIs(lexer.RBRACKET) {
		return nil, fmt.Errorf("unterminated JSON array")
	}
	p.advance()
	return node, nil
}

func (p *Parser) parseJSONObject() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '{'
	node := &BlockLitNode{pos: pos{line, col}}
	p.skipSeparators()
	for !p.curIs(lexer.RBRACE, lexer.EOF) {
		if !p.curIs(lexer.STRING) {
			return nil, fmt.Errorf("expected string key in JSON object")
		}
		key := p.cur.Literal
		p.advance()
		if !p.curIs(lexer.COLON) {
			return nil, fmt.Errorf("expected ':' after JSON object key")
		}
		p.advance()
		val, err := p.parseJSONValue()
		if err != nil {
			return nil, err
		}
		node.Entries = append(node.Entries, BlockEntry{Key: key, Value: val})
		if !p.curIs(lexer.RBRACE) {
			if !p.curIs(lexer.COMMA, lexer.NEWLINE) {
				return nil, fmt.Errorf("expected ',' or '}' in JSON object")
			}
			p.skipSeparators()
		}
	}
	if !p.curIs(lexer.RBRACE) {
		return nil, fmt.Errorf("unterminated JSON object")
	}
	p.advance()
	return node, nil
}
