/*
File    : vivjson/eval/eval_literals.go

Array and Block literal evaluation (spec 3.2). Entries are evaluated left
to right in source order since a later entry may reference a name an
earlier entry's side effect (a call) defined.
*/
package eval

import (
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalArrayLit(node *parser.ArrayLitNode, env *environment.Environment) (value.Value, error) {
	if len(node.Elems) > e.Cfg.MaxArraySize {
		return nil, e.errorf(node, "array literal exceeds maximum size %d", e.Cfg.MaxArraySize)
	}
	elems := make([]value.Value, len(node.Elems))
	for i, el := range node.Elems {
		v, err := e.Eval(el, env)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return value.NewArray(elems...), nil
}

func (e *Evaluator) evalBlockLit(node *parser.BlockLitNode, env *environment.Environment) (value.Value, error) {
	if len(node.Entries) > e.Cfg.MaxArraySize {
		return nil, e.errorf(node, "block literal exceeds maximum size %d", e.Cfg.MaxArraySize)
	}
	out := value.NewBlock()
	for _, entry := range node.Entries {
		v, err := e.Eval(entry.Value, env)
		if err != nil {
			return nil, err
		}
		out.Set(entry.Key, v)
	}
	return out, nil
}
