/*
File    : vivjson/eval/eval_compare.go

Ordering comparisons and `in` (spec 4.5.6).
*/
package eval

import (
	"strings"

	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func (e *Evaluator) evalCompare(node parser.Node, op lexer.TokenType, left, right value.Value) (value.Value, error) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, e.errorf(node, "comparison %q requires numeric operands, got %s and %s", op, value.TypeName(left), value.TypeName(right))
	}
	l, r := asFloat(left), asFloat(right)
	var result bool
	switch op {
	case lexer.LT:
		result = l < r
	case lexer.LE:
		result = l <= r
	case lexer.GT:
		result = l > r
	case lexer.GE:
		result = l >= r
	}
	return value.NewBool(result), nil
}

// evalIn implements spec 4.5.6's `in`: String in String (substring),
// element in Array (deep equal), Block in Block (sub-map), key-string in
// Block, value in Array/Block.
func (e *Evaluator) evalIn(node parser.Node, left, right value.Value) (value.Value, error) {
	switch r := right.(type) {
	case *value.StringValue:
		l, ok := left.(*value.StringValue)
		if !ok {
			return nil, e.errorf(node, "'in' on a string requires a string left operand")
		}
		return value.NewBool(strings.Contains(r.Val, l.Val)), nil
	case *value.ArrayValue:
		return value.NewBool(r.Contains(left)), nil
	case *value.BlockValue:
		if lb, ok := left.(*value.BlockValue); ok {
			for _, k := range lb.Keys() {
				lv, _ := lb.Get(k)
				rv, ok := r.Get(k)
				if !ok || !value.DeepEqual(lv, rv) {
					return value.NewBool(false), nil
				}
			}
			return value.NewBool(true), nil
		}
		if ls, ok := left.(*value.StringValue); ok {
			if _, ok := r.Get(ls.Val); ok {
				return value.NewBool(true), nil
			}
		}
		for _, k := range r.Keys() {
			rv, _ := r.Get(k)
			if value.DeepEqual(left, rv) {
				return value.NewBool(true), nil
			}
		}
		return value.NewBool(false), nil
	default:
		return nil, e.errorf(node, "'in' is not defined for a right operand of type %s", value.TypeName(right))
	}
}
