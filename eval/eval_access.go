/*
File    : vivjson/eval/eval_access.go

Member access and index semantics (spec 4.8). A GetNode chain is walked one
segment at a time; assignTo performs the symmetric write, walking every
segment but the last (an error if an intermediate segment does not resolve
to a container, per spec 4.8's "only the terminal segment may be created")
and then creating or updating the final one.
*/
package eval

import (
	"math"

	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalGet(node *parser.GetNode, env *environment.Environment) (value.Value, error) {
	cur, err := e.Eval(node.Base, env)
	if err != nil {
		return nil, err
	}
	for _, seg := range node.Segments {
		key, err := e.Eval(seg, env)
		if err != nil {
			return nil, err
		}
		cur, err = e.readIndex(node, cur, key)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func (e *Evaluator) readIndex(node parser.Node, container, key value.Value) (value.Value, error) {
	switch c := container.(type) {
	case *value.ArrayValue:
		idx, ok := indexFromValue(key)
		if !ok {
			return nil, e.errorf(node, "array index must be an integer, got %s", value.TypeName(key))
		}
		return c.Get(idx), nil
	case *value.BlockValue:
		k := value.Stringify(key)
		v, ok := c.Get(k)
		if !ok {
			return value.Null, nil
		}
		return v, nil
	default:
		return nil, e.errorf(node, "cannot index into %s", value.TypeName(container))
	}
}

// indexFromValue resolves a key Value to an Array index; Float indices are
// accepted only when integer-valued (spec 4.8).
func indexFromValue(v value.Value) (int64, bool) {
	switch n := v.(type) {
	case *value.IntValue:
		return n.Val, true
	case *value.FloatValue:
		if n.Val == math.Trunc(n.Val) {
			return int64(n.Val), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// assignTo writes v into the scope/container location target denotes:
// an IdentifierNode rebinds the name; a GetNode walks to its parent
// container and sets the final segment.
func (e *Evaluator) assignTo(target parser.Node, v value.Value, env *environment.Environment) error {
	switch t := target.(type) {
	case *parser.IdentifierNode:
		env.Assign(t.Name, v)
		return nil
	case *parser.GetNode:
		return e.assignToGet(t, v, env)
	default:
		return e.errorf(target, "invalid assignment target")
	}
}

func (e *Evaluator) assignToGet(node *parser.GetNode, v value.Value, env *environment.Environment) error {
	container, err := e.Eval(node.Base, env)
	if err != nil {
		return err
	}
	for i := 0; i < len(node.Segments)-1; i++ {
		key, err := e.Eval(node.Segments[i], env)
		if err != nil {
			return err
		}
		container, err = e.stepForWrite(node, container, key)
		if err != nil {
			return err
		}
	}

	lastKey, err := e.Eval(node.Segments[len(node.Segments)-1], env)
	if err != nil {
		return err
	}
	switch c := container.(type) {
	case *value.ArrayValue:
		idx, ok := indexFromValue(lastKey)
		if !ok {
			return e.errorf(node, "array index must be an integer, got %s", value.TypeName(lastKey))
		}
		if !c.Set(idx, v) {
			return e.errorf(node, "array index out of range")
		}
		return nil
	case *value.BlockValue:
		c.Set(value.Stringify(lastKey), v)
		return nil
	default:
		return e.errorf(node, "cannot assign into %s", value.TypeName(container))
	}
}

// stepForWrite walks one intermediate segment. Unlike readIndex, a missing
// Block key here is an error (spec 4.8: only the terminal segment may be
// created on write).
func (e *Evaluator) stepForWrite(node parser.Node, container, key value.Value) (value.Value, error) {
	switch c := container.(type) {
	case *value.ArrayValue:
		idx, ok := indexFromValue(key)
		if !ok {
			return nil, e.errorf(node, "array index must be an integer, got %s", value.TypeName(key))
		}
		i, ok := c.Normalize(idx)
		if !ok {
			return nil, e.errorf(node, "array index out of range")
		}
		return c.Elems[i], nil
	case *value.BlockValue:
		k := value.Stringify(key)
		v, ok := c.Get(k)
		if !ok {
			return nil, e.errorf(node, "cannot create intermediate key %q on assignment", k)
		}
		return v, nil
	default:
		return nil, e.errorf(node, "cannot index into %s", value.TypeName(container))
	}
}
