package stdlib_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/stdlib"
	"github.com/vivjson/vivjson/value"
)

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	var out strings.Builder
	env := environment.New()
	stdlib.Register(env, &out, config.Default())
	v, ok := env.Lookup(name)
	require.True(t, ok, "builtin %q not registered", name)
	fn, ok := v.(*value.CallableValue)
	require.True(t, ok)
	return fn.Builtin(args)
}

func TestIntParsesAndTruncates(t *testing.T) {
	v, err := call(t, "int", value.NewString("42"))
	require.NoError(t, err)
	require.Equal(t, int64(42), v.(*value.IntValue).Val)

	v, err = call(t, "int", value.NewFloat(3.9))
	require.NoError(t, err)
	require.Equal(t, int64(3), v.(*value.IntValue).Val)

	v, err = call(t, "int", value.NewFloat(-3.9))
	require.NoError(t, err)
	require.Equal(t, int64(-3), v.(*value.IntValue).Val)

	_, err = call(t, "int", value.NewString("not a number"))
	require.Error(t, err)
}

func TestFloatWidensInt(t *testing.T) {
	v, err := call(t, "float", value.NewInt(4))
	require.NoError(t, err)
	require.Equal(t, 4.0, v.(*value.FloatValue).Val)
}

func TestStringCanonicalForm(t *testing.T) {
	v, err := call(t, "string", value.NewArray(value.NewInt(1), value.NewInt(2)))
	require.NoError(t, err)
	require.Equal(t, "[1,2]", v.(*value.StringValue).Val)

	v, err = call(t, "string", value.Null)
	require.NoError(t, err)
	require.Equal(t, "null", v.(*value.StringValue).Val)
}

func TestLenCountsCodePoints(t *testing.T) {
	v, err := call(t, "len", value.NewString("héllo"))
	require.NoError(t, err)
	require.Equal(t, int64(5), v.(*value.IntValue).Val)

	v, err = call(t, "len", value.NewArray(value.NewInt(1), value.NewInt(2), value.NewInt(3)))
	require.NoError(t, err)
	require.Equal(t, int64(3), v.(*value.IntValue).Val)
}

func TestTypeReportsTag(t *testing.T) {
	v, err := call(t, "type", value.NewBool(true))
	require.NoError(t, err)
	require.Equal(t, "boolean", v.(*value.StringValue).Val)
}

func TestInsertAtIndex(t *testing.T) {
	arr := value.NewArray(value.NewInt(1), value.NewInt(3))
	v, err := call(t, "insert", arr, value.NewInt(1), value.NewInt(2))
	require.NoError(t, err)
	out := v.(*value.ArrayValue)
	require.Len(t, out.Elems, 3)
	require.Equal(t, int64(2), out.Elems[1].(*value.IntValue).Val)
	// original is untouched
	require.Len(t, arr.Elems, 2)
}

func TestInsertOutOfRangeIsError(t *testing.T) {
	arr := value.NewArray(value.NewInt(1))
	_, err := call(t, "insert", arr, value.NewInt(99), value.NewInt(2))
	require.Error(t, err)
}

func TestInsertRejectsResultPastMaxArraySize(t *testing.T) {
	var out strings.Builder
	env := environment.New()
	cfg := config.Default()
	cfg.MaxArraySize = 2
	stdlib.Register(env, &out, cfg)
	v, ok := env.Lookup("insert")
	require.True(t, ok)
	fn := v.(*value.CallableValue)

	arr := value.NewArray(value.NewInt(1), value.NewInt(2))
	_, err := fn.Builtin([]value.Value{arr, value.NewInt(0), value.NewInt(3)})
	require.Error(t, err)
	require.Contains(t, err.Error(), "exceeds configured maximum")
}

func TestStripTrimsWhitespace(t *testing.T) {
	v, err := call(t, "strip", value.NewString("  hi \t\n"))
	require.NoError(t, err)
	require.Equal(t, "hi", v.(*value.StringValue).Val)
}

func TestPrintJoinsAndWritesNewline(t *testing.T) {
	var out strings.Builder
	env := environment.New()
	stdlib.Register(env, &out, config.Default())
	v, ok := env.Lookup("print")
	require.True(t, ok)
	fn := v.(*value.CallableValue)
	result, err := fn.Builtin([]value.Value{value.NewInt(1), value.NewString("hi")})
	require.NoError(t, err)
	require.Equal(t, value.Null, result)
	require.Equal(t, "1, hi\n", out.String())
}

func TestAbsFloorCeilRound(t *testing.T) {
	v, err := call(t, "abs", value.NewInt(-5))
	require.NoError(t, err)
	require.Equal(t, int64(5), v.(*value.IntValue).Val)

	v, err = call(t, "floor", value.NewFloat(3.9))
	require.NoError(t, err)
	require.Equal(t, int64(3), v.(*value.IntValue).Val)

	v, err = call(t, "ceil", value.NewFloat(3.1))
	require.NoError(t, err)
	require.Equal(t, int64(4), v.(*value.IntValue).Val)

	v, err = call(t, "round", value.NewFloat(3.14159), value.NewInt(2))
	require.NoError(t, err)
	require.InDelta(t, 3.14, v.(*value.FloatValue).Val, 1e-9)
}

func TestSqrtRejectsNegative(t *testing.T) {
	v, err := call(t, "sqrt", value.NewInt(16))
	require.NoError(t, err)
	require.Equal(t, 4.0, v.(*value.FloatValue).Val)

	_, err = call(t, "sqrt", value.NewInt(-1))
	require.Error(t, err)
}

func TestPowIntegerResultStaysInt(t *testing.T) {
	v, err := call(t, "pow", value.NewInt(2), value.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, int64(8), v.(*value.IntValue).Val)
}

func TestMinMax(t *testing.T) {
	v, err := call(t, "min", value.NewInt(3), value.NewInt(-1))
	require.NoError(t, err)
	require.Equal(t, int64(-1), v.(*value.IntValue).Val)

	v, err = call(t, "max", value.NewFloat(2.5), value.NewInt(9))
	require.NoError(t, err)
	require.Equal(t, int64(9), v.(*value.IntValue).Val)
}
