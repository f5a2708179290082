/*
File    : vivjson/eval/eval_arith.go

Operator bodies for +, -, *, /, % (spec 4.5.1-4.5.5). Split from
eval_operators.go purely to keep any one file from growing past what a
reader can hold in view at once; the dispatch table in evalBinary is the
single entry point into this file.
*/
package eval

import (
	"math"
	"strings"

	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

// evalAdd implements spec 4.5.1.
func (e *Evaluator) evalAdd(node parser.Node, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.BlockValue:
		switch r := right.(type) {
		case *value.BlockValue:
			return e.addBlocks(node, l, r)
		case *value.ArrayValue:
			return value.NewArray(append([]value.Value{l.Clone()}, cloneElems(r.Elems)...)...), nil
		case *value.NullValue:
			return l.Clone(), nil
		default:
			return nil, e.errorf(node, "cannot add %s to block", value.TypeName(right))
		}
	case *value.ArrayValue:
		switch r := right.(type) {
		case *value.ArrayValue:
			out := value.NewArray(cloneElems(l.Elems)...)
			if err := e.checkArraySize(node, out.Len()+1); err != nil {
				return nil, err
			}
			out.Append(r.Clone())
			return out, nil
		case *value.BlockValue:
			return value.NewArray(append([]value.Value{r.Clone()}, cloneElems(l.Elems)...)...), nil
		default:
			out := value.NewArray(cloneElems(l.Elems)...)
			if err := e.checkArraySize(node, out.Len()+1); err != nil {
				return nil, err
			}
			out.Append(right.Clone())
			return out, nil
		}
	case *value.StringValue:
		return value.NewString(l.Val + value.Stringify(right)), nil
	case *value.IntValue:
		switch r := right.(type) {
		case *value.IntValue:
			sum := l.Val + r.Val
			if (r.Val > 0 && sum < l.Val) || (r.Val < 0 && sum > l.Val) {
				return nil, e.errorf(node, "integer overflow in %d + %d", l.Val, r.Val)
			}
			return value.NewInt(sum), nil
		case *value.FloatValue:
			return value.NewFloat(float64(l.Val) + r.Val), nil
		case *value.BoolValue:
			return value.NewBool(l.Truthy() || r.Truthy()), nil
		case *value.NullValue:
			return l, nil
		default:
			return nil, e.errorf(node, "cannot add %s to int", value.TypeName(right))
		}
	case *value.FloatValue:
		switch r := right.(type) {
		case *value.IntValue:
			return value.NewFloat(l.Val + float64(r.Val)), nil
		case *value.FloatValue:
			return value.NewFloat(l.Val + r.Val), nil
		case *value.BoolValue:
			return value.NewBool(l.Truthy() || r.Truthy()), nil
		case *value.NullValue:
			return l, nil
		default:
			return nil, e.errorf(node, "cannot add %s to float", value.TypeName(right))
		}
	case *value.BoolValue:
		switch r := right.(type) {
		case *value.IntValue, *value.FloatValue, *value.BoolValue:
			return value.NewBool(l.Truthy() || r.Truthy()), nil
		case *value.NullValue:
			return l, nil
		default:
			return nil, e.errorf(node, "cannot add %s to boolean", value.TypeName(right))
		}
	case *value.NullValue:
		switch r := right.(type) {
		case *value.ArrayValue:
			out := value.NewArray(cloneElems(r.Elems)...)
			out.Append(value.Null)
			return out, nil
		default:
			return r, nil
		}
	case *value.CallableValue:
		return nil, e.errorf(node, "cannot add to a function value")
	default:
		return nil, e.errorf(node, "cannot add %s and %s", value.TypeName(left), value.TypeName(right))
	}
}

func (e *Evaluator) addBlocks(node parser.Node, l, r *value.BlockValue) (value.Value, error) {
	out := l.Clone().(*value.BlockValue)
	for _, k := range r.Keys() {
		rv, _ := r.Get(k)
		if lv, ok := out.Get(k); ok {
			sum, err := e.evalAdd(node, lv, rv)
			if err != nil {
				return nil, err
			}
			out.Set(k, sum)
		} else {
			out.Set(k, rv.Clone())
		}
	}
	if err := e.checkArraySize(node, out.Len()); err != nil {
		return nil, err
	}
	return out, nil
}

// evalSub implements spec 4.5.2.
func (e *Evaluator) evalSub(node parser.Node, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.BlockValue:
		switch r := right.(type) {
		case *value.BlockValue:
			out := l.Clone().(*value.BlockValue)
			for _, k := range r.Keys() {
				rv, _ := r.Get(k)
				if lv, ok := out.Get(k); ok {
					diff, err := e.evalSub(node, lv, rv)
					if err != nil {
						return nil, err
					}
					out.Set(k, diff)
				} else if isNumeric(rv) {
					neg, err := e.evalUnaryMinus(node, rv)
					if err != nil {
						return nil, err
					}
					out.Set(k, neg)
				}
			}
			return out, nil
		case *value.ArrayValue:
			out := l.Clone().(*value.BlockValue)
			for _, el := range r.Elems {
				sv, ok := el.(*value.StringValue)
				if !ok {
					return nil, e.errorf(node, "block - array requires an array of strings")
				}
				out.Delete(sv.Val)
			}
			return out, nil
		case *value.StringValue:
			out := l.Clone().(*value.BlockValue)
			out.Delete(r.Val)
			return out, nil
		default:
			return nil, e.errorf(node, "cannot subtract %s from block", value.TypeName(right))
		}
	case *value.ArrayValue:
		out := value.NewArray(cloneElems(l.Elems)...)
		out.RemoveValue(right)
		return out, nil
	case *value.StringValue:
		switch r := right.(type) {
		case *value.ArrayValue:
			out := l.Val
			for _, el := range r.Elems {
				sv, ok := el.(*value.StringValue)
				if !ok {
					return nil, e.errorf(node, "string - array requires an array of strings")
				}
				out = strings.ReplaceAll(out, sv.Val, "")
			}
			return value.NewString(out), nil
		case *value.StringValue:
			return value.NewString(strings.ReplaceAll(l.Val, r.Val, "")), nil
		default:
			return nil, e.errorf(node, "cannot subtract %s from string", value.TypeName(right))
		}
	case *value.IntValue, *value.FloatValue:
		if isNull(right) {
			return left, nil
		}
		if !isNumeric(right) {
			return nil, e.errorf(node, "cannot subtract %s from %s", value.TypeName(right), value.TypeName(left))
		}
		if li, ok := left.(*value.IntValue); ok {
			if ri, ok := right.(*value.IntValue); ok {
				return value.NewInt(li.Val - ri.Val), nil
			}
		}
		return value.NewFloat(asFloat(left) - asFloat(right)), nil
	case *value.NullValue:
		if isNull(right) {
			return value.Null, nil
		}
		return nil, e.errorf(node, "cannot subtract %s from null", value.TypeName(right))
	case *value.BoolValue:
		if isNull(right) {
			return left, nil
		}
		return nil, e.errorf(node, "cannot subtract from a boolean")
	default:
		return nil, e.errorf(node, "cannot subtract %s and %s", value.TypeName(left), value.TypeName(right))
	}
}

func (e *Evaluator) evalUnaryMinus(node parser.Node, v value.Value) (value.Value, error) {
	switch n := v.(type) {
	case *value.IntValue:
		return value.NewInt(-n.Val), nil
	case *value.FloatValue:
		return value.NewFloat(-n.Val), nil
	default:
		return nil, e.errorf(node, "cannot negate %s", value.TypeName(v))
	}
}

// evalMul implements spec 4.5.3.
func (e *Evaluator) evalMul(node parser.Node, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.BlockValue:
		r, ok := right.(*value.BlockValue)
		if !ok {
			return nil, e.errorf(node, "block can only be multiplied by a block")
		}
		out := value.NewBlock()
		for _, k := range l.Keys() {
			lv, _ := l.Get(k)
			if rv, ok := r.Get(k); ok {
				prod, err := e.evalMul(node, lv, rv)
				if err != nil {
					return nil, err
				}
				out.Set(k, prod)
			}
		}
		for _, k := range r.Keys() {
			if _, ok := l.Get(k); !ok {
				out.Set(k, value.Null)
			}
		}
		return out, nil
	case *value.ArrayValue:
		switch r := right.(type) {
		case *value.StringValue:
			parts := make([]string, len(l.Elems))
			for i, el := range l.Elems {
				parts[i] = value.Stringify(el)
			}
			return value.NewString(strings.Join(parts, r.Val)), nil
		case *value.IntValue, *value.FloatValue:
			n := truncToInt(r)
			if n < 0 {
				return nil, e.errorf(node, "array repetition count must be non-negative")
			}
			if err := e.checkArraySize(node, len(l.Elems)*int(n)); err != nil {
				return nil, err
			}
			out := value.NewArray()
			for i := int64(0); i < n; i++ {
				out.Elems = append(out.Elems, cloneElems(l.Elems)...)
			}
			return out, nil
		default:
			return nil, e.errorf(node, "cannot multiply array by %s", value.TypeName(right))
		}
	case *value.StringValue:
		switch r := right.(type) {
		case *value.IntValue, *value.FloatValue:
			n := truncToInt(r)
			if n < 0 {
				return nil, e.errorf(node, "string repetition count must be non-negative")
			}
			return value.NewString(strings.Repeat(l.Val, int(n))), nil
		case *value.ArrayValue:
			parts := make([]string, len(r.Elems))
			for i, el := range r.Elems {
				parts[i] = value.Stringify(el)
			}
			return value.NewString(strings.Join(parts, l.Val)), nil
		default:
			return nil, e.errorf(node, "cannot multiply string by %s", value.TypeName(right))
		}
	case *value.IntValue:
		if isNull(right) {
			return value.Null, nil
		}
		if ri, ok := right.(*value.IntValue); ok {
			return value.NewInt(l.Val * ri.Val), nil
		}
		if isNumeric(right) {
			return value.NewFloat(float64(l.Val) * asFloat(right)), nil
		}
		return nil, e.errorf(node, "cannot multiply int by %s", value.TypeName(right))
	case *value.FloatValue:
		if isNull(right) {
			return value.Null, nil
		}
		if isNumeric(right) {
			return value.NewFloat(l.Val * asFloat(right)), nil
		}
		return nil, e.errorf(node, "cannot multiply float by %s", value.TypeName(right))
	case *value.NullValue:
		return value.Null, nil
	case *value.BoolValue:
		return nil, e.errorf(node, "cannot multiply a boolean")
	default:
		return nil, e.errorf(node, "cannot multiply %s and %s", value.TypeName(left), value.TypeName(right))
	}
}

// evalDiv implements spec 4.5.4.
func (e *Evaluator) evalDiv(node parser.Node, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case *value.StringValue:
		r, ok := right.(*value.StringValue)
		if !ok {
			return nil, e.errorf(node, "string can only be divided by a string")
		}
		if r.Val == "" {
			runes := l.Runes()
			if err := e.checkArraySize(node, len(runes)); err != nil {
				return nil, err
			}
			parts := make([]value.Value, len(runes))
			for i, c := range runes {
				parts[i] = value.NewString(string(c))
			}
			return value.NewArray(parts...), nil
		}
		pieces := strings.Split(l.Val, r.Val)
		if err := e.checkArraySize(node, len(pieces)); err != nil {
			return nil, err
		}
		out := make([]value.Value, len(pieces))
		for i, p := range pieces {
			out[i] = value.NewString(p)
		}
		return value.NewArray(out...), nil
	case *value.NullValue:
		if isNull(right) {
			return nil, e.errorf(node, "cannot divide null by null")
		}
		if isZero(right) {
			return nil, e.errorf(node, "division by zero")
		}
		return value.Null, nil
	case *value.IntValue, *value.FloatValue:
		if !isNumeric(right) {
			return nil, e.errorf(node, "cannot divide %s by %s", value.TypeName(left), value.TypeName(right))
		}
		if isZero(right) {
			return nil, e.errorf(node, "division by zero")
		}
		if li, ok := left.(*value.IntValue); ok {
			if ri, ok := right.(*value.IntValue); ok {
				if li.Val%ri.Val == 0 {
					return value.NewInt(li.Val / ri.Val), nil
				}
			}
		}
		return value.NewFloat(asFloat(left) / asFloat(right)), nil
	default:
		return nil, e.errorf(node, "cannot divide %s by %s", value.TypeName(left), value.TypeName(right))
	}
}

// evalMod implements spec 4.5.5, with Python-style sign-of-divisor modulo.
func (e *Evaluator) evalMod(node parser.Node, left, right value.Value) (value.Value, error) {
	if isNull(left) {
		if isNull(right) {
			return nil, e.errorf(node, "cannot take null modulo null")
		}
		if isZero(right) {
			return nil, e.errorf(node, "modulo by zero")
		}
		return value.Null, nil
	}
	if !isNumeric(left) || !isNumeric(right) {
		return nil, e.errorf(node, "cannot take %s modulo %s", value.TypeName(left), value.TypeName(right))
	}
	if isZero(right) {
		return nil, e.errorf(node, "modulo by zero")
	}
	if li, ok := left.(*value.IntValue); ok {
		if ri, ok := right.(*value.IntValue); ok {
			m := li.Val % ri.Val
			if m != 0 && (m < 0) != (ri.Val < 0) {
				m += ri.Val
			}
			return value.NewInt(m), nil
		}
	}
	lf, rf := asFloat(left), asFloat(right)
	m := math.Mod(lf, rf)
	if m != 0 && (m < 0) != (rf < 0) {
		m += rf
	}
	if m == math.Trunc(m) {
		return value.NewInt(int64(m)), nil
	}
	return value.NewFloat(m), nil
}

func isZero(v value.Value) bool {
	switch n := v.(type) {
	case *value.IntValue:
		return n.Val == 0
	case *value.FloatValue:
		return n.Val == 0
	default:
		return false
	}
}

func truncToInt(v value.Value) int64 {
	switch n := v.(type) {
	case *value.IntValue:
		return n.Val
	case *value.FloatValue:
		return int64(n.Val)
	default:
		return 0
	}
}

func (e *Evaluator) checkArraySize(node parser.Node, n int) error {
	if n > e.Cfg.MaxArraySize {
		return e.errorf(node, "size %d exceeds configured maximum %d", n, e.Cfg.MaxArraySize)
	}
	return nil
}
