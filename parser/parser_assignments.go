/*
File    : vivjson/parser/parser_assignments.go

Assignment statements and the yield (`:=`) statement (spec 4.2, 4.3).
*/
package parser

import (
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
)

// parseExprOrAssignment parses an expression, then checks whether it is
// immediately followed by an assignment operator; if so, the already-
// parsed expression is reinterpreted as an lvalue.
func (p *Parser) parseExprOrAssignment() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.isAssignOp(p.cur.Type) {
		return expr, nil
	}
	op := p.cur.Type
	target, ok := asLValue(expr)
	if !ok {
		p.addError("invalid assignment target")
		return expr, nil
	}
	p.advance()
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if op == lexer.COLON {
		op = lexer.ASSIGN
	}
	return &AssignNode{pos: pos{line, col}, Target: target, Op: op, Value: val}, nil
}

func (p *Parser) isAssignOp(t lexer.TokenType) bool {
	switch t {
	case lexer.ASSIGN, lexer.COLON, lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ, lexer.PERCENT_EQ:
		return true
	}
	return false
}

// asLValue accepts a parsed expression as an assignment/remove target: a
// bare identifier, a Get chain rooted at one, or a bare string literal
// (JSON-style `"key": value`, which names a variable the same way an
// identifier would — spec 4.2's implicit-wrapping note).
func asLValue(n Node) (Node, bool) {
	switch t := n.(type) {
	case *IdentifierNode:
		return t, true
	case *GetNode:
		if _, ok := t.Base.(*IdentifierNode); ok {
			return t, true
		}
		return nil, false
	case *LiteralNode:
		if s, ok := t.Val.(*value.StringValue); ok {
			return &IdentifierNode{pos: t.pos, Name: s.Val}, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// parseYield parses `:= expr`, the statement that sets the enclosing
// Block's yield value.
func (p *Parser) parseYield() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume ':='
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &YieldNode{pos: pos{line, col}, Value: val}, nil
}
