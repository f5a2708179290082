/*
File    : vivjson/eval/eval_assignments.go

Assignment evaluation (spec 4.2, 4.3): `=` replaces, the compound forms
read-combine-write using the same operator table evalBinary already
implements, and `:` (already normalized to ASSIGN by the parser) behaves
exactly like `=`. Assignment clones scalars and containers (spec 3.4)
except where a CallableValue is involved, whose Clone is identity.
*/
package eval

import (
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

var compoundOps = map[lexer.TokenType]lexer.TokenType{
	lexer.PLUS_EQ:    lexer.PLUS,
	lexer.MINUS_EQ:   lexer.MINUS,
	lexer.STAR_EQ:    lexer.STAR,
	lexer.SLASH_EQ:   lexer.SLASH,
	lexer.PERCENT_EQ: lexer.PERCENT,
}

func (e *Evaluator) evalAssign(node *parser.AssignNode, env *environment.Environment) (value.Value, error) {
	rhs, err := e.Eval(node.Value, env)
	if err != nil {
		return nil, err
	}

	if binOp, ok := compoundOps[node.Op]; ok {
		cur, err := e.Eval(node.Target, env)
		if err != nil {
			return nil, err
		}
		rhs, err = e.evalBinary(node, binOp, cur, rhs)
		if err != nil {
			return nil, err
		}
	}

	result := rhs.Clone()
	if err := e.assignTo(node.Target, result, env); err != nil {
		return nil, err
	}
	return result, nil
}
