package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/environment"
	"github.com/vivjson/vivjson/eval"
	"github.com/vivjson/vivjson/parser"
	"github.com/vivjson/vivjson/value"
)

func run(t *testing.T, src string) value.Value {
	t.Helper()
	prog, errs := parser.Parse(src)
	require.Empty(t, errs, "parse errors for %q", src)
	ev := eval.New(config.Default())
	env := environment.New()
	result, err := ev.EvalProgram(prog, env)
	require.NoError(t, err, "eval error for %q", src)
	return result
}

func runEnv(t *testing.T, src string) (value.Value, *environment.Environment) {
	t.Helper()
	prog, errs := parser.Parse(src)
	require.Empty(t, errs, "parse errors for %q", src)
	ev := eval.New(config.Default())
	env := environment.New()
	result, err := ev.EvalProgram(prog, env)
	require.NoError(t, err, "eval error for %q", src)
	return result, env
}

func TestArithmeticPrecedence(t *testing.T) {
	result := run(t, `:= 1 + 2 * 3`)
	iv, ok := result.(*value.IntValue)
	require.True(t, ok)
	require.Equal(t, int64(7), iv.Val)
}

func TestStringDivSplitsIntoCodePoints(t *testing.T) {
	result := run(t, `:= "hi" / ""`)
	arr, ok := result.(*value.ArrayValue)
	require.True(t, ok)
	require.Len(t, arr.Elems, 2)
	require.Equal(t, "h", arr.Elems[0].(*value.StringValue).Val)
	require.Equal(t, "i", arr.Elems[1].(*value.StringValue).Val)
}

func TestArrayPlusArrayWrapsRight(t *testing.T) {
	result := run(t, `:= [1, 2] + [3, 4]`)
	arr, ok := result.(*value.ArrayValue)
	require.True(t, ok)
	require.Len(t, arr.Elems, 3)
	require.Equal(t, int64(1), arr.Elems[0].(*value.IntValue).Val)
	require.Equal(t, int64(2), arr.Elems[1].(*value.IntValue).Val)
	inner, ok := arr.Elems[2].(*value.ArrayValue)
	require.True(t, ok)
	require.Len(t, inner.Elems, 2)
}

func TestBlockPlusBlockSumsSharedKeys(t *testing.T) {
	result := run(t, `:= {a: 1, b: 2} + {b: 3, c: 4}`)
	blk, ok := result.(*value.BlockValue)
	require.True(t, ok)
	a, _ := blk.Get("a")
	b, _ := blk.Get("b")
	c, _ := blk.Get("c")
	require.Equal(t, int64(1), a.(*value.IntValue).Val)
	require.Equal(t, int64(5), b.(*value.IntValue).Val)
	require.Equal(t, int64(4), c.(*value.IntValue).Val)
}

func TestModFollowsDivisorSign(t *testing.T) {
	result := run(t, `:= -7 % 3`)
	iv := result.(*value.IntValue)
	require.Equal(t, int64(2), iv.Val)

	result2 := run(t, `:= 7 % -3`)
	iv2 := result2.(*value.IntValue)
	require.Equal(t, int64(-2), iv2.Val)
}

func TestIfElseIfElse(t *testing.T) {
	result := run(t, `
		x = 2
		r = ""
		if (x == 1) {
			r = "one"
		} elseif (x == 2) {
			r = "two"
		} else {
			r = "other"
		}
		:= r
	`)
	sv, ok := result.(*value.StringValue)
	require.True(t, ok)
	require.Equal(t, "two", sv.Val)
}

func TestWhileLoopAccumulates(t *testing.T) {
	result := run(t, `
		i = 0
		sum = 0
		while (i < 5) {
			sum += i
			i += 1
		}
		:= sum
	`)
	require.Equal(t, int64(10), result.(*value.IntValue).Val)
}

func TestForInArray(t *testing.T) {
	result := run(t, `
		total = 0
		for (v in [1, 2, 3]) {
			total += v
		}
		:= total
	`)
	require.Equal(t, int64(6), result.(*value.IntValue).Val)
}

func TestForInCurrentScopeDot(t *testing.T) {
	result := run(t, `
		a = 1
		b = 2
		_hidden = 99
		names = []
		for (pair in .) {
			names = names + pair[0]
		}
		:= names
	`)
	arr, ok := result.(*value.ArrayValue)
	require.True(t, ok)
	var seen []string
	for _, e := range arr.Elems {
		seen = append(seen, e.(*value.StringValue).Val)
	}
	require.Contains(t, seen, "a")
	require.Contains(t, seen, "b")
	require.NotContains(t, seen, "_hidden")
}

func TestBreakAndContinue(t *testing.T) {
	result := run(t, `
		out = []
		for (i = 0; i < 10; i += 1) {
			if (i == 2) {
				continue
			}
			if (i == 5) {
				break
			}
			out = out + i
		}
		:= out
	`)
	arr := result.(*value.ArrayValue)
	var got []int64
	for _, e := range arr.Elems {
		got = append(got, e.(*value.IntValue).Val)
	}
	require.Equal(t, []int64{0, 1, 3, 4}, got)
}

func TestFunctionDefinitionAndCall(t *testing.T) {
	result := run(t, `
		function add(a, b) {
			return(a + b)
		}
		:= add(3, 4)
	`)
	require.Equal(t, int64(7), result.(*value.IntValue).Val)
}

func TestClosureCapturesIndependentState(t *testing.T) {
	result := run(t, `
		function makeCounter() {
			count = 0
			function next() {
				count += 1
				return(count)
			}
			return(next)
		}
		c1 = makeCounter()
		c2 = makeCounter()
		c1()
		c1()
		x = c1()
		y = c2()
		:= [x, y]
	`)
	arr := result.(*value.ArrayValue)
	require.Equal(t, int64(3), arr.Elems[0].(*value.IntValue).Val)
	require.Equal(t, int64(1), arr.Elems[1].(*value.IntValue).Val)
}

func TestReferenceParameterMutatesCallerArray(t *testing.T) {
	result := run(t, `
		function double(reference list) {
			i = 0
			while (i < 3) {
				list[i] = list[i] * 2
				i += 1
			}
		}
		nums = [1, 2, 3]
		double(nums)
		:= nums
	`)
	arr := result.(*value.ArrayValue)
	require.Equal(t, int64(2), arr.Elems[0].(*value.IntValue).Val)
	require.Equal(t, int64(4), arr.Elems[1].(*value.IntValue).Val)
	require.Equal(t, int64(6), arr.Elems[2].(*value.IntValue).Val)
}

func TestReferenceParameterWholeValueReassignment(t *testing.T) {
	result := run(t, `
		function reset(reference x) {
			x = 0
		}
		n = 99
		reset(n)
		:= n
	`)
	require.Equal(t, int64(0), result.(*value.IntValue).Val)
}

func TestVariadicUnderscoreArray(t *testing.T) {
	result := run(t, `
		function sumAll() {
			total = 0
			for (v in _) {
				total += v
			}
			return(total)
		}
		:= sumAll(1, 2, 3, 4)
	`)
	require.Equal(t, int64(10), result.(*value.IntValue).Val)
}

func TestBlockWithoutYieldKeepsAssignmentsInScope(t *testing.T) {
	_, env := runEnv(t, `
		x = 1
		y = 2
	`)
	v, ok := env.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int64(1), v.(*value.IntValue).Val)
}

func TestRemoveDeletesBlockKey(t *testing.T) {
	result := run(t, `
		b = {a: 1, b: 2}
		remove(b.a)
		:= b
	`)
	blk, ok := result.(*value.BlockValue)
	require.True(t, ok)
	_, present := blk.Get("a")
	require.False(t, present)
	bv, present := blk.Get("b")
	require.True(t, present)
	require.Equal(t, int64(2), bv.(*value.IntValue).Val)
}

func TestMemberAccessOutOfRangeReadIsNull(t *testing.T) {
	result := run(t, `
		arr = [1, 2, 3]
		:= arr[10]
	`)
	require.Equal(t, value.Null, result)
}

func TestMemberAccessMissingBlockKeyIsNull(t *testing.T) {
	result := run(t, `
		b = {a: 1}
		:= b.missing
	`)
	require.Equal(t, value.Null, result)
}

func TestCompoundAssignmentOnNestedMember(t *testing.T) {
	result := run(t, `
		b = {counts: {a: 1}}
		b.counts.a += 5
		:= b.counts.a
	`)
	require.Equal(t, int64(6), result.(*value.IntValue).Val)
}

func TestDoBlockRunsOnce(t *testing.T) {
	result := run(t, `
		n = 0
		do {
			n += 1
		}
		:= n
	`)
	require.Equal(t, int64(1), result.(*value.IntValue).Val)
}

func TestEqualityAcrossTags(t *testing.T) {
	result := run(t, `:= (1 == true)`)
	require.True(t, result.(*value.BoolValue).Val)

	result2 := run(t, `:= (0 == false)`)
	require.True(t, result2.(*value.BoolValue).Val)
}

func TestInOperatorOnArrayAndBlock(t *testing.T) {
	result := run(t, `:= (2 in [1, 2, 3])`)
	require.True(t, result.(*value.BoolValue).Val)

	result2 := run(t, `:= ("a" in {a: 1})`)
	require.True(t, result2.(*value.BoolValue).Val)
}

func TestAndOrShortCircuit(t *testing.T) {
	result := run(t, `
		calls = 0
		function sideEffect() {
			calls += 1
			return(true)
		}
		x = false and sideEffect()
		:= calls
	`)
	require.Equal(t, int64(0), result.(*value.IntValue).Val)
}
