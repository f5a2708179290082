/*
File    : vivjson/stdlib/math.go

Math built-ins supplementing spec 4.7's required set (spec 9's grounding
note), mirrored from the teacher's std/math.go: abs, floor, ceil, round,
sqrt, pow, min, max. Each accepts both Int and Float. abs, min and max
return a value of their argument's own type; floor and ceil always return
Int; round returns Int without a precision argument and Float with one;
sqrt always returns Float; pow returns Int only when both arguments are
Int, the exponent is non-negative and the result is whole, else Float.
*/
package stdlib

import (
	"fmt"
	"math"

	"github.com/vivjson/vivjson/value"
)

func mathBuiltins() []*value.CallableValue {
	return []*value.CallableValue{
		value.NewBuiltin("abs", builtinAbs),
		value.NewBuiltin("floor", builtinFloor),
		value.NewBuiltin("ceil", builtinCeil),
		value.NewBuiltin("round", builtinRound),
		value.NewBuiltin("sqrt", builtinSqrt),
		value.NewBuiltin("pow", builtinPow),
		value.NewBuiltin("min", builtinMin),
		value.NewBuiltin("max", builtinMax),
	}
}

func toFloat(v value.Value) (float64, bool) {
	switch n := v.(type) {
	case *value.IntValue:
		return float64(n.Val), true
	case *value.FloatValue:
		return n.Val, true
	default:
		return 0, false
	}
}

func builtinAbs(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("abs", 1, len(args))
	}
	switch n := args[0].(type) {
	case *value.IntValue:
		if n.Val < 0 {
			return value.NewInt(-n.Val), nil
		}
		return value.NewInt(n.Val), nil
	case *value.FloatValue:
		return value.NewFloat(math.Abs(n.Val)), nil
	default:
		return nil, fmt.Errorf("abs: argument must be a number, got %s", value.TypeName(args[0]))
	}
}

func builtinFloor(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("floor", 1, len(args))
	}
	f, ok := toFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("floor: argument must be a number, got %s", value.TypeName(args[0]))
	}
	return value.NewInt(int64(math.Floor(f))), nil
}

func builtinCeil(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("ceil", 1, len(args))
	}
	f, ok := toFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("ceil: argument must be a number, got %s", value.TypeName(args[0]))
	}
	return value.NewInt(int64(math.Ceil(f))), nil
}

// builtinRound accepts an optional second argument giving the number of
// decimal places (default 0).
func builtinRound(args []value.Value) (value.Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("round: expected 1 or 2 arguments, got %d", len(args))
	}
	f, ok := toFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("round: first argument must be a number, got %s", value.TypeName(args[0]))
	}
	precision := int64(0)
	if len(args) == 2 {
		p, ok := intIndex(args[1])
		if !ok {
			return nil, fmt.Errorf("round: second argument must be an integer, got %s", value.TypeName(args[1]))
		}
		precision = p
	}
	factor := math.Pow(10, float64(precision))
	rounded := math.Round(f*factor) / factor
	if precision == 0 {
		return value.NewInt(int64(rounded)), nil
	}
	return value.NewFloat(rounded), nil
}

func builtinSqrt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("sqrt", 1, len(args))
	}
	f, ok := toFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("sqrt: argument must be a number, got %s", value.TypeName(args[0]))
	}
	if f < 0 {
		return nil, fmt.Errorf("sqrt: cannot take the square root of a negative number")
	}
	return value.NewFloat(math.Sqrt(f)), nil
}

func builtinPow(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("pow", 2, len(args))
	}
	base, ok1 := toFloat(args[0])
	exp, ok2 := toFloat(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("pow: both arguments must be numbers, got %s and %s", value.TypeName(args[0]), value.TypeName(args[1]))
	}
	result := math.Pow(base, exp)
	if _, lok := args[0].(*value.IntValue); lok {
		if _, rok := args[1].(*value.IntValue); rok && exp >= 0 && result == math.Trunc(result) {
			return value.NewInt(int64(result)), nil
		}
	}
	return value.NewFloat(result), nil
}

func builtinMin(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("min", 2, len(args))
	}
	return minMax(args[0], args[1], true)
}

func builtinMax(args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return nil, arityError("max", 2, len(args))
	}
	return minMax(args[0], args[1], false)
}

func minMax(a, b value.Value, wantMin bool) (value.Value, error) {
	af, ok1 := toFloat(a)
	bf, ok2 := toFloat(b)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("arguments must be numbers, got %s and %s", value.TypeName(a), value.TypeName(b))
	}
	if (wantMin && bf < af) || (!wantMin && bf > af) {
		return b.Clone(), nil
	}
	return a.Clone(), nil
}
