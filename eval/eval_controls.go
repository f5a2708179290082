/*
File    : vivjson/eval/eval_controls.go

if/elseif/else, return, and remove (spec 4.3). Loop constructs (while, for,
do) live in eval_loops.go. Grounded on the teacher's evalIfStatement /
evalReturnStatement split (eval/eval_conditionals.go, eval/eval_controls.go),
adapted to this rewrite's (value, error) signature and flowSignal-based
return propagation.
*/
package eval

import (
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalIf(node *parser.IfNode, env *environment.Environment) (value.Value, error) {
	for _, branch := range node.Branches {
		cond, err := e.Eval(branch.Cond, env)
		if err != nil {
			return nil, err
		}
		if cond.Truthy() {
			child := env.Child()
			return e.evalBlockStmt(branch.Body, child)
		}
	}
	if node.Else != nil {
		child := env.Child()
		return e.evalBlockStmt(node.Else, child)
	}
	return value.Null, nil
}

func (e *Evaluator) evalReturn(node *parser.ReturnNode, env *environment.Environment) (value.Value, error) {
	v := value.Value(value.Null)
	if node.HasValue {
		var err error
		v, err = e.Eval(node.Value, env)
		if err != nil {
			return nil, err
		}
	}
	return nil, &flowSignal{kind: flowReturn, value: v}
}

// evalRemove deletes the slot target names: a variable binding (innermost
// owning scope, spec 9's open question (c)), a Block key, or an Array
// index.
func (e *Evaluator) evalRemove(node *parser.RemoveNode, env *environment.Environment) (value.Value, error) {
	switch t := node.Target.(type) {
	case *parser.IdentifierNode:
		owner := env.Owner(t.Name)
		if owner == nil {
			return nil, e.errorf(node, "identifier not found: %s", t.Name)
		}
		owner.Delete(t.Name)
		return value.Null, nil
	case *parser.GetNode:
		return e.removeGet(t, env)
	default:
		return nil, e.errorf(node, "invalid remove target")
	}
}

func (e *Evaluator) removeGet(node *parser.GetNode, env *environment.Environment) (value.Value, error) {
	container, err := e.Eval(node.Base, env)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(node.Segments)-1; i++ {
		key, err := e.Eval(node.Segments[i], env)
		if err != nil {
			return nil, err
		}
		container, err = e.stepForWrite(node, container, key)
		if err != nil {
			return nil, err
		}
	}
	lastKey, err := e.Eval(node.Segments[len(node.Segments)-1], env)
	if err != nil {
		return nil, err
	}
	switch c := container.(type) {
	case *value.ArrayValue:
		idx, ok := indexFromValue(lastKey)
		if !ok {
			return nil, e.errorf(node, "array index must be an integer, got %s", value.TypeName(lastKey))
		}
		if !c.RemoveAt(idx) {
			return nil, e.errorf(node, "array index out of range")
		}
		return value.Null, nil
	case *value.BlockValue:
		c.Delete(value.Stringify(lastKey))
		return value.Null, nil
	default:
		return nil, e.errorf(node, "cannot remove from %s", value.TypeName(container))
	}
}
