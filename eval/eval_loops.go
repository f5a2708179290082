/*
File    : vivjson/eval/eval_loops.go

while, for (both shapes), and do (spec 4.3). Each construct opens one child
scope for its whole run (spec 4.4: "a fresh child scope"), not a new one
per iteration; writes inside the body resolve through the parent chain the
way Environment.Assign already implements. Grounded on the teacher's
evalForLoop (eval/eval_loops.go) two-scope design, collapsed to the single
scope the spec's wording calls for.
*/
package eval

import (
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalWhile(node *parser.WhileNode, env *environment.Environment) (value.Value, error) {
	child := env.Child()
	var result value.Value = value.Null
	iterations := 0
	for {
		cond, err := e.Eval(node.Cond, child)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			break
		}
		iterations++
		if iterations > e.Cfg.MaxLoopTimes {
			return nil, e.errorf(node, "loop exceeded maximum iterations %d", e.Cfg.MaxLoopTimes)
		}

		v, err := e.evalBlockStmt(node.Body, child)
		if _, ok := asFlow(err, flowBreak); ok {
			break
		}
		if _, ok := asFlow(err, flowContinue); ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) evalFor(node *parser.ForNode, env *environment.Environment) (value.Value, error) {
	if node.IsForIn {
		// The iterable (in particular the "." current-scope token) is
		// evaluated against the enclosing scope, before the loop's own
		// child scope exists to shadow it.
		return e.evalForIn(node, env)
	}
	child := env.Child()
	return e.evalForC(node, child)
}

func (e *Evaluator) evalForC(node *parser.ForNode, child *environment.Environment) (value.Value, error) {
	if node.Init != nil {
		if _, err := e.Eval(node.Init, child); err != nil {
			return nil, err
		}
	}

	var result value.Value = value.Null
	iterations := 0
	for {
		if node.Cond != nil {
			cond, err := e.Eval(node.Cond, child)
			if err != nil {
				return nil, err
			}
			if !cond.Truthy() {
				break
			}
		}
		iterations++
		if iterations > e.Cfg.MaxLoopTimes {
			return nil, e.errorf(node, "loop exceeded maximum iterations %d", e.Cfg.MaxLoopTimes)
		}

		v, err := e.evalBlockStmt(node.Body, child)
		if _, ok := asFlow(err, flowBreak); ok {
			break
		}
		isContinue := false
		if _, ok := asFlow(err, flowContinue); ok {
			isContinue = true
		} else if err != nil {
			return nil, err
		}
		if !isContinue {
			result = v
		}

		if node.Step != nil {
			if _, err := e.Eval(node.Step, child); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func (e *Evaluator) evalForIn(node *parser.ForNode, env *environment.Environment) (value.Value, error) {
	iterable, err := e.Eval(node.Iterable, env)
	if err != nil {
		return nil, err
	}
	child := env.Child()

	var result value.Value = value.Null
	iterations := 0
	runBody := func(item value.Value) (bool, error) {
		child.Define(node.IterVar, item)
		iterations++
		if iterations > e.Cfg.MaxLoopTimes {
			return false, e.errorf(node, "loop exceeded maximum iterations %d", e.Cfg.MaxLoopTimes)
		}
		v, err := e.evalBlockStmt(node.Body, child)
		if _, ok := asFlow(err, flowBreak); ok {
			return false, nil
		}
		if _, ok := asFlow(err, flowContinue); ok {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		result = v
		return true, nil
	}

	switch it := iterable.(type) {
	case *value.ArrayValue:
		for _, elem := range it.Elems {
			cont, err := runBody(elem)
			if err != nil {
				return nil, err
			}
			if !cont {
				break
			}
		}
	case *value.BlockValue:
		for _, k := range it.Keys() {
			v, _ := it.Get(k)
			pair := value.NewArray(value.NewString(k), v)
			cont, err := runBody(pair)
			if err != nil {
				return nil, err
			}
			if !cont {
				break
			}
		}
	default:
		return nil, e.errorf(node, "for-in requires an array or block, got %s", value.TypeName(iterable))
	}
	return result, nil
}

func (e *Evaluator) evalDo(node *parser.DoNode, env *environment.Environment) (value.Value, error) {
	child := env.Child()
	var result value.Value = value.Null
	iterations := 0
	for {
		iterations++
		if iterations > e.Cfg.MaxLoopTimes {
			return nil, e.errorf(node, "loop exceeded maximum iterations %d", e.Cfg.MaxLoopTimes)
		}
		v, err := e.evalBlockStmt(node.Body, child)
		if _, ok := asFlow(err, flowBreak); ok {
			break
		}
		if _, ok := asFlow(err, flowContinue); ok {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = v
		break
	}
	return result, nil
}
