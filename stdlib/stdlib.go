/*
File    : vivjson/stdlib/stdlib.go

Package stdlib implements the root-scope built-ins spec 4.7 names, plus the
math helpers supplementing them (spec 9's grounding note: the teacher's
std/math.go). Every builtin is a value.Builtin: arguments arrive already
evaluated, and a Go error becomes a fatal evaluator error at the call site.
Grounded on the teacher's std.Builtin{Name, Callback} registry shape
(std/builtins.go), collapsed from the teacher's (Runtime, io.Writer, args)
signature into value.Builtin's narrower (args) one since these built-ins
never need to call back into user code or hold a Runtime handle — print is
the only one that touches I/O, and it closes over its writer instead.
*/
package stdlib

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/value"
)

// Register binds every built-in this package provides into root, including
// `print`, which writes to stdout. Call once per fresh top-level environment
// before running a program. cfg may be nil, in which case config.Default()
// is used; it currently only bounds `insert`'s growth (spec.md's array size
// limit, enforced the same way arithmetic concatenation already is).
func Register(root *environment.Environment, stdout io.Writer, cfg *config.Config) {
	if cfg == nil {
		cfg = config.Default()
	}
	for _, b := range core(cfg) {
		root.Define(b.Name, b)
	}
	for _, b := range mathBuiltins() {
		root.Define(b.Name, b)
	}
	root.Define("print", printBuiltin(stdout))
}

// printBuiltin implements spec 4.7's `print(*args)`: stringifies each
// argument, joins with ", ", writes a trailing newline, returns Null.
func printBuiltin(w io.Writer) *value.CallableValue {
	return value.NewBuiltin("print", func(args []value.Value) (value.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = value.Stringify(a)
		}
		fmt.Fprintln(w, strings.Join(parts, ", "))
		return value.Null, nil
	})
}

func core(cfg *config.Config) []*value.CallableValue {
	return []*value.CallableValue{
		value.NewBuiltin("int", builtinInt),
		value.NewBuiltin("float", builtinFloat),
		value.NewBuiltin("string", builtinString),
		value.NewBuiltin("len", builtinLen),
		value.NewBuiltin("type", builtinType),
		value.NewBuiltin("insert", builtinInsert(cfg.MaxArraySize)),
		value.NewBuiltin("strip", builtinStrip),
	}
}

func arityError(name string, want int, got int) error {
	return fmt.Errorf("%s: expected %d argument(s), got %d", name, want, got)
}

// builtinInt implements spec 4.7's `int(x)`: parses a numeric string or
// truncates a float toward zero; NaN/+-Infinity are rejected.
func builtinInt(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("int", 1, len(args))
	}
	switch v := args[0].(type) {
	case *value.IntValue:
		return value.NewInt(v.Val), nil
	case *value.FloatValue:
		if isSpecialFloat(v.Val) {
			return nil, fmt.Errorf("int: cannot convert NaN or Infinity")
		}
		return value.NewInt(int64(v.Val)), nil
	case *value.StringValue:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Val), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int: cannot parse %q as an integer", v.Val)
		}
		return value.NewInt(n), nil
	case *value.BoolValue:
		if v.Val {
			return value.NewInt(1), nil
		}
		return value.NewInt(0), nil
	default:
		return nil, fmt.Errorf("int: cannot convert %s", value.TypeName(args[0]))
	}
}

// builtinFloat implements `float(x)`: parses a numeric string or widens an
// int.
func builtinFloat(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("float", 1, len(args))
	}
	switch v := args[0].(type) {
	case *value.FloatValue:
		return value.NewFloat(v.Val), nil
	case *value.IntValue:
		return value.NewFloat(float64(v.Val)), nil
	case *value.StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return nil, fmt.Errorf("float: cannot parse %q as a float", v.Val)
		}
		return value.NewFloat(f), nil
	default:
		return nil, fmt.Errorf("float: cannot convert %s", value.TypeName(args[0]))
	}
}

// builtinString implements `string(x)`: canonical serialization, Array/Block
// via JSON form.
func builtinString(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("string", 1, len(args))
	}
	return value.NewString(value.Stringify(args[0])), nil
}

// builtinLen implements `len(x)` over String (code points), Array, Block.
func builtinLen(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case *value.StringValue:
		return value.NewInt(int64(v.Len())), nil
	case *value.ArrayValue:
		return value.NewInt(int64(len(v.Elems))), nil
	case *value.BlockValue:
		return value.NewInt(int64(v.Len())), nil
	default:
		return nil, fmt.Errorf("len: unsupported type %s", value.TypeName(args[0]))
	}
}

// builtinType implements `type(x)`.
func builtinType(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("type", 1, len(args))
	}
	return value.NewString(value.TypeName(args[0])), nil
}

// builtinInsert implements `insert(array, index, value)`, rejecting a
// result that would grow past maxArraySize (spec.md's array size limit,
// invariant #9 — enforced here the same way Array*Int/Array+Array/
// String/String already enforce it).
func builtinInsert(maxArraySize int) value.Builtin {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, arityError("insert", 3, len(args))
		}
		arr, ok := args[0].(*value.ArrayValue)
		if !ok {
			return nil, fmt.Errorf("insert: first argument must be an array, got %s", value.TypeName(args[0]))
		}
		idx, ok := intIndex(args[1])
		if !ok {
			return nil, fmt.Errorf("insert: index must be an integer, got %s", value.TypeName(args[1]))
		}
		if arr.Len()+1 > maxArraySize {
			return nil, fmt.Errorf("insert: result size %d exceeds configured maximum %d", arr.Len()+1, maxArraySize)
		}
		out := arr.Clone().(*value.ArrayValue)
		if !out.Insert(idx, args[2].Clone()) {
			return nil, fmt.Errorf("insert: index %d out of range", idx)
		}
		return out, nil
	}
}

// builtinStrip implements `strip(s)`: trims Unicode whitespace both ends.
func builtinStrip(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return nil, arityError("strip", 1, len(args))
	}
	s, ok := args[0].(*value.StringValue)
	if !ok {
		return nil, fmt.Errorf("strip: argument must be a string, got %s", value.TypeName(args[0]))
	}
	return value.NewString(strings.TrimSpace(s.Val)), nil
}

func intIndex(v value.Value) (int64, bool) {
	switch n := v.(type) {
	case *value.IntValue:
		return n.Val, true
	case *value.FloatValue:
		if n.Val == float64(int64(n.Val)) {
			return int64(n.Val), true
		}
	}
	return 0, false
}

func isSpecialFloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
