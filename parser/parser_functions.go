/*
File    : vivjson/parser/parser_functions.go

Function definitions, named or anonymous (spec 4.6). A name is optional:
`function add(a, b) { ... }` defines and binds; `function(a, b) { ... }`
used as an expression does not bind anything by itself. Both produce the
same FuncDefNode; the evaluator is what decides whether to bind.
*/
package parser

import (
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
)

func (p *Parser) parseFuncDef() (Node, error) {
	line, col := p.cur.Line, p.cur.Column
	p.advance() // consume 'function'

	name := ""
	if p.curIs(lexer.IDENT) {
		name = p.cur.Literal
		p.advance()
	}

	if !p.expect(lexer.LPAREN) {
		return nil, nil
	}
	params, err := p.parseParamList()
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
	return &FuncDefNode{pos: pos{line, col}, Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseParamList() ([]Param, error) {
	var params []Param
	p.skipSeparators()
	for !p.curIs(lexer.RPAREN, lexer.EOF) {
		mod := value.ParamByValue
		switch p.cur.Type {
		case lexer.REFERENCE:
			mod = value.ParamByReference
			p.advance()
		case lexer.FUNCTION:
			mod = value.ParamFunction
			p.advance()
		}
		if !p.curIs(lexer.IDENT) {
			p.addError("expected parameter name but found %q", p.cur.Type)
			break
		}
		params = append(params, Param{Name: p.cur.Literal, Modifier: mod})
		p.advance()
		if !p.curIs(lexer.RPAREN) {
			if !p.curIs(lexer.COMMA, lexer.SEMI, lexer.NEWLINE) {
				p.addError("expected ',' or ')' in parameter list but found %q", p.cur.Type)
				break
			}
			p.skipSeparators()
		}
	}
	return params, nil
}
