/*
File    : vivjson/parser/parser_loops.go

while, for (C-style and for-in), and do (spec 4.3).
*/
package parser

import "github.com/vivjson/vivjson/lexer"

func (p *Parser) parseWhile() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume 'while'
	if !p.expect(lexer.LPAREN) {
		return nil, nil
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.expect(lexer.RPAREN) {
		return nil, nil
	}
	body, err := p.parseBraceBlock()
	if err != nil {
		return nil, err
	}
	return &WhileNode{pos: pos{line, col}, Cond: cond, Body: body}, nil
}

// parseFor handles both `for (name in iterable) { body }` and the
// C-style `for (init; cond; step) { body }`, with up to 4 semicolon-
// delimited header slots accepted (3 real parts plus an optional
// trailing empty one from a trailing ';'); more than that is a parse
// error (spec 4.3).
func (p *Parser) parseFor() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume 'for'
	if !p.expect(lexer.LPAREN) {
		return nil, nil
	}

	if p.curIs(lexer.IDENT) && p.peekIs(lexer.IN) {
		name := p.cur.Literal
		p.advance() // consume identifier
		p.advance() // consume 'in'

		var iterable Node
		if p.curIs(lexer.DOT) {
			iterable = &CurrentScopeNode{pos: pos{p.cur.Line, p.cur.Column}}
			p.advance()
		} else {
			var err error
			iterable, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if !p.expect(lexer.RPAREN) {
			return nil, nil
		}
		body, err := p.parseBraceBlock()
		if err != nil {
			return nil, err
		}
		return &ForNode{pos: pos{line, col}, IsForIn: true, IterVar: name, Iterable: iterable, Body: body}, nil
	}

	var parts []Node
	for {
		if p.curIs(lexer.SEMI, lexer.RPAREN) {
			parts = append(parts, nil)
		} else {
			part, err := p.parseExprOrAssignment()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
		if p.curIs(lexer.SEMI) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(lexer.RPAREN) {
		return nil, nil
	}
	if len(parts) > 4 {
		p.addError("for-loop header accepts at most 3 parts")
	}

	node := &ForNode{pos: pos{line, col}}
	if len(parts) > 0 {
		node.Init = parts[0]
	}
	if len(parts) > 1 {
		node.Cond = parts[1]
	}
	if len(parts) > 2 {
		node.Step = parts[2]
	}
	body, err := p.parseBraceBlock()
	if err != nil {
		return nil, err
	}
	node.Body = body
	return node, nil
}

func (p *Parser) parseDo() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume 'do'
	body, err := p.parseBraceBlock()
	if err != nil {
		return nil, err
	}
	return &DoNode{pos: pos{line, col}, Body: body}, nil
}
