/*
File    : vivjson/parser/parser_precedence.go

The binary operator precedence chain (spec 4.2): logical_or down through
multiplicative, implemented as plain recursive descent rather than a
generic Pratt loop so the "chained comparisons are a parse error" rule
(`3 > 2 > 1`) falls out naturally from parseComparison only ever
consuming one comparison operator.
*/
package parser

import (
	"math"

	"github.com/vivjson/vivjson/lexer"
)

var posInf = math.Inf(1)
var nanVal = math.NaN()

// parseExpr is the entry point for any expression context.
func (p *Parser) parseExpr() (Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.OR) {
		line, col := p.cur.Line, p.cur.Column
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{pos: pos{line, col}, Left: left, Op: lexer.OR, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.AND) {
		line, col := p.cur.Line, p.cur.Column
		p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{pos: pos{line, col}, Left: left, Op: lexer.AND, Right: right}
	}
	return left, nil
}

func (p *Parser) parseEquality() (Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.EQ, lexer.NE) {
		op := p.cur.Type
		line, col := p.cur.Line, p.cur.Column
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{pos: pos{line, col}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseComparison consumes at most one comparison operator; a second one
// in direct succession (`3 > 2 > 1`) is a parse error (spec 4.2).
func (p *Parser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !p.curIs(lexer.LT, lexer.LE, lexer.GT, lexer.GE, lexer.IN) {
		return left, nil
	}
	op := p.cur.Type
	line, col := p.cur.Line, p.cur.Column
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	node := Node(&BinaryNode{pos: pos{line, col}, Left: left, Op: op, Right: right})
	if p.curIs(lexer.LT, lexer.LE, lexer.GT, lexer.GE) {
		p.addError("chained comparisons are not allowed")
	}
	return node, nil
}

func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.PLUS, lexer.MINUS) {
		op := p.cur.Type
		line, col := p.cur.Line, p.cur.Column
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{pos: pos{line, col}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		op := p.cur.Type
		line, col := p.cur.Line, p.cur.Column
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{pos: pos{line, col}, Left: left, Op: op, Right: right}
	}
	return left, nil
}
