/*
File    : vivjson/eval/eval_statements.go

Block execution and the yield-assignment rule (spec 4.3's last paragraph,
4.6's implicit return, 9's ":= and block-as-expression" design note):
a block's value is its last `:=` yield if one executed, else the Block of
its own local bindings. Grounded on the teacher's evalProgramStatements /
evalBlockStatements split (eval/eval_statements.go), which folds return
handling into the same loop; this version generalizes that loop to also
track the yield slot.
*/
package eval

import "github.com/vivjson/vivjson/environment"
import "github.com/vivjson/vivjson/parser"
import "github.com/vivjson/vivjson/value"

// EvalProgram runs a fully parsed program directly in env (the top-level
// environment; no child scope is introduced, unlike every other block
// kind). This is the entry point the host-facing API layer calls.
//
// Unlike a nested block, a yield-less top-level program whose last
// statement is a bare expression (not an assignment, definition, or
// control statement) returns that expression's value instead of falling
// back to the scope-as-Block rule: this is what lets a host feed a plain
// JSON document (`{"foo": 10}`, `[1,2,3]`, `"a,b,c" / ","`) as a source
// and receive its value back directly, matching JSON-only mode's identical
// behavior for a bare top-level value.
func (e *Evaluator) EvalProgram(prog *parser.BlockStmtNode, env *environment.Environment) (value.Value, error) {
	var (
		yieldSet bool
		yieldVal value.Value
		exprSet  bool
		exprVal  value.Value
	)

	for _, stmt := range prog.Stmts {
		if yn, ok := stmt.(*parser.YieldNode); ok {
			v, err := e.Eval(yn.Value, env)
			if err != nil {
				return nil, err
			}
			yieldSet, yieldVal = true, v
			exprSet = false
			continue
		}

		v, err := e.Eval(stmt, env)
		if err != nil {
			if sig, ok := asFlow(err, flowReturn); ok {
				return sig.value, nil
			}
			return nil, err
		}

		if parser.IsStatementNode(stmt) {
			exprSet = false
		} else {
			exprSet, exprVal = true, v
		}
	}

	switch {
	case yieldSet:
		return yieldVal, nil
	case exprSet:
		return exprVal, nil
	default:
		return env.AsBlock(), nil
	}
}

// evalBlockStmt executes every statement of node in env in order, honoring
// the yield-assignment rule. env must already be the scope the block should
// run in; evalBlockStmt itself never opens a child scope (callers that need
// one, i.e. every control-flow body and function call, open it before
// calling this).
func (e *Evaluator) evalBlockStmt(node *parser.BlockStmtNode, env *environment.Environment) (value.Value, error) {
	var (
		yieldSet bool
		yieldVal value.Value
	)

	for _, stmt := range node.Stmts {
		if yn, ok := stmt.(*parser.YieldNode); ok {
			v, err := e.Eval(yn.Value, env)
			if err != nil {
				return nil, err
			}
			yieldSet, yieldVal = true, v
			continue
		}
		if _, err := e.Eval(stmt, env); err != nil {
			return nil, err
		}
	}

	if yieldSet {
		return yieldVal, nil
	}
	return env.AsBlock(), nil
}
