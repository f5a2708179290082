/*
File    : vivjson/parser/parser_statements.go

Top-level statement dispatch and the Parse entry point (spec 4.2's
`program := statement (separator statement)*`).
*/
package parser

import (
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/verror"
)

// Parse parses src per opts and returns the resulting program (an ordered
// list of statements) plus every error collected along the way. An empty
// error slice means the parse succeeded. JSON-only mode (WithJSONOnly)
// is dispatched to ParseJSONOnly.
func Parse(src string, opts ...Option) (*BlockStmtNode, []*verror.Error) {
	p := New(src, opts...)
	if p.jsonOnly {
		return p.ParseJSONOnly()
	}
	return p.ParseProgram()
}

// ParseProgram parses a full script-mode program until EOF.
func (p *Parser) ParseProgram() (*BlockStmtNode, []*verror.Error) {
	prog := &BlockStmtNode{}
	p.skipSeparators()
	for !p.curIs(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.addError("%s", err.Error())
			break
		}
		prog.Stmts = append(prog.Stmts, stmt)
		p.skipSeparators()
	}
	return prog, p.errors
}

// IsStatementNode reports whether n is a statement form whose value is
// never meant to stand in for a missing yield: an assignment, a
// definition, or a control-flow statement. EvalProgram uses this to decide
// whether a yield-less top-level program's last bare expression (e.g. a
// plain JSON document with no `:=`) should become the program's result,
// the way a JSON document is its own value.
func IsStatementNode(n Node) bool {
	switch n.(type) {
	case *AssignNode, *YieldNode, *FuncDefNode, *IfNode, *WhileNode, *ForNode,
		*DoNode, *BreakNode, *ContinueNode, *ReturnNode, *RemoveNode:
		return true
	}
	return false
}

// parseStatement dispatches on the leading keyword, falling back to
// expression-or-assignment for everything else (spec 4.2's
// `statement := assignment | control | callDef | expr`).
func (p *Parser) parseStatement() (Node, error) {
	switch p.cur.Type {
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.FOR:
		return p.parseFor()
	case lexer.DO:
		return p.parseDo()
	case lexer.BREAK:
		return p.parseBreak()
	case lexer.CONTINUE:
		return p.parseContinue()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.REMOVE:
		return p.parseRemove()
	case lexer.YIELD:
		return p.parseYield()
	default:
		return p.parseExprOrAssignment()
	}
}
