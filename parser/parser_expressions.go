/*
File    : vivjson/parser/parser_expressions.go

Primary expressions, unary prefix operators, and postfix call/get chains
(spec 4.2's `unary`/`postfix`/`primary` productions).
*/
package parser

import (
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
)

// registerPrefixFuncs builds the token-type-keyed dispatch table used by
// parsePrimary, mirroring the teacher's UnaryFuncs registration in
// Parser.init().
func (p *Parser) registerPrefixFuncs() {
	p.prefixFuncs = map[lexer.TokenType]prefixFunc{
		lexer.INT:      func(p *Parser) (Node, error) { return p.parseIntLiteral() },
		lexer.FLOAT:    func(p *Parser) (Node, error) { return p.parseFloatLiteral() },
		lexer.STRING:   func(p *Parser) (Node, error) { return p.parseStringLiteral() },
		lexer.TRUE:     func(p *Parser) (Node, error) { return p.parseBoolLiteral() },
		lexer.FALSE:    func(p *Parser) (Node, error) { return p.parseBoolLiteral() },
		lexer.NULL:     func(p *Parser) (Node, error) { return p.parseNullLiteral() },
		lexer.IDENT:    (*Parser).parseIdentifierOrSpecial,
		lexer.LPAREN:   (*Parser).parseParenExpr,
		lexer.LBRACKET: func(p *Parser) (Node, error) { return p.parseArrayLiteral() },
		lexer.LBRACE:   func(p *Parser) (Node, error) { return p.parseBlockLiteral() },
		lexer.FUNCTION: (*Parser).parseFuncDef,
	}
}

// parseIdentifierOrSpecial recognizes the configured infinity/NaN lexemes
// (spec 6.4) before falling back to a plain identifier reference.
func (p *Parser) parseIdentifierOrSpecial() (Node, error) {
	name := p.cur.Literal
	line, col := p.cur.Line, p.cur.Column
	if p.infinityLexeme != "" && name == p.infinityLexeme {
		p.advance()
		return &LiteralNode{pos: pos{line, col}, Val: value.NewFloat(posInf)}, nil
	}
	if p.nanLexeme != "" && name == p.nanLexeme {
		p.advance()
		return &LiteralNode{pos: pos{line, col}, Val: value.NewFloat(nanVal)}, nil
	}
	node := &IdentifierNode{pos: pos{line, col}, Name: name}
	p.advance()
	return node, nil
}

func (p *Parser) parseParenExpr() (Node, error) {
	p.advance() // consume '('
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.expect(lexer.RPAREN)
	return expr, nil
}

// parseUnary handles `not`, unary `-`, and unary `+`, recursing so
// `- - x` parses; everything else falls through to parsePostfix.
func (p *Parser) parseUnary() (Node, error) {
	if p.curIs(lexer.NOT, lexer.MINUS, lexer.PLUS) {
		op := p.cur.Type
		line, col := p.cur.Line, p.cur.Column
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryNode{pos: pos{line, col}, Op: op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any run of call
// `(...)`, dotted access `.name`, or indexed access `[expr]`.
func (p *Parser) parsePostfix() (Node, error) {
	prefix, ok := p.prefixFuncs[p.cur.Type]
	if !ok {
		p.addError("unexpected token %q in expression", p.cur.Type)
		p.advance()
		return &BlankNode{pos: pos{p.cur.Line, p.cur.Column}}, nil
	}
	node, err := prefix(p)
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur.Type {
		case lexer.LPAREN:
			node, err = p.parseCall(node)
		case lexer.DOT:
			node, err = p.parseDotSegment(node)
		case lexer.LBRACKET:
			node, err = p.parseIndexSegment(node)
		default:
			return node, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseCall(callee Node) (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '('
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if !p.expect(lexer.RPAREN) {
		return nil, nil
	}
	return &CallNode{pos: pos{line, col}, Callee: callee, Args: args}, nil
}

func (p *Parser) parseArgList() ([]Node, error) {
	var args []Node
	p.skipSeparators()
	for !p.curIs(lexer.RPAREN, lexer.EOF) {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.curIs(lexer.RPAREN) {
			if !p.curIs(lexer.COMMA, lexer.SEMI, lexer.NEWLINE) {
				p.addError("expected ',' or ')' in argument list but found %q", p.cur.Type)
				break
			}
			p.skipSeparators()
		}
	}
	return args, nil
}

// parseDotSegment parses `.indexPart`, which is sugar for `[expr]` (spec
// 4.8): an identifier or a string literal become a String key segment; a
// leading-minus or bare integer becomes an Int key segment.
func (p *Parser) parseDotSegment(base Node) (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '.'

	var seg Node
	switch {
	case p.curIs(lexer.IDENT):
		seg = &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.NewString(p.cur.Literal)}
		p.advance()
	case p.curIs(lexer.STRING):
		seg = &LiteralNode{pos: pos{p.cur.Line, p.cur.Column}, Val: value.NewString(p.cur.Literal)}
		p.advance()
	case p.curIs(lexer.INT):
		n, _ := p.parseIntLiteral()
		seg = n
	case p.curIs(lexer.MINUS) && p.peekIs(lexer.INT):
		p.advance() // consume '-'
		n, _ := p.parseIntLiteral()
		lit := n.(*LiteralNode)
		lit.Val = value.NewInt(-lit.Val.(*value.IntValue).Val)
		seg = lit
	default:
		p.addError("expected identifier, integer, or string after '.' but found %q", p.cur.Type)
		return base, nil
	}

	g, ok := base.(*GetNode)
	if ok {
		g.Segments = append(g.Segments, seg)
		return g, nil
	}
	return &GetNode{pos: pos{line, col}, Base: base, Segments: []Node{seg}}, nil
}

func (p *Parser) parseIndexSegment(base Node) (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume '['
	idx, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.expect(lexer.RBRACKET) {
		return nil, nil
	}
	if g, ok := base.(*GetNode); ok {
		g.Segments = append(g.Segments, idx)
		return g, nil
	}
	return &GetNode{pos: pos{line, col}, Base: base, Segments: []Node{idx}}, nil
}
