/*
File    : vivjson/value/convert.go

Stringification and equality helpers shared across operators and the
standard library.
*/
package value

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Stringify renders v the way `+` concatenation and the `string()` builtin
// do for a top-level scalar: bare (unquoted) for scalars, JSON form for
// Array and Block (spec 4.5.1, 4.7).
func Stringify(v Value) string {
	switch t := v.(type) {
	case *NullValue:
		return "null"
	case *BoolValue:
		return t.String()
	case *IntValue:
		return t.String()
	case *FloatValue:
		return FormatFloat(t.Val)
	case *StringValue:
		return t.Val
	case *ArrayValue, *BlockValue:
		return JSONForm(v)
	default:
		return v.String()
	}
}

// FormatFloat renders f in VivJson's canonical float form: always carries a
// decimal point ("1.0", never bare "1"), and uses Go's shortest round-trip
// digit count otherwise.
func FormatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// JSONForm renders v as JSON text: strings quoted and escaped, containers
// rendered recursively. Used for the outer form of `string()` on Array and
// Block, and for every value nested inside one.
func JSONForm(v Value) string {
	switch t := v.(type) {
	case *NullValue:
		return "null"
	case *BoolValue, *IntValue:
		return v.String()
	case *FloatValue:
		return FormatFloat(t.Val)
	case *StringValue:
		return quoteJSON(t.Val)
	case *ArrayValue:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = JSONForm(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case *BlockValue:
		parts := make([]string, 0, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			parts = append(parts, quoteJSON(k)+":"+JSONForm(val))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return v.String()
	}
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

// DeepEqual reports structural equality between two values of the same
// tag. Values of differing tags are never DeepEqual; `==`'s truthiness
// fallback for mismatched tags is implemented in eval, which is the only
// caller that needs it.
func DeepEqual(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	return a.Equal(b)
}

// TypeName returns the string the `type()` builtin reports for v.
func TypeName(v Value) string {
	return string(v.Type())
}
