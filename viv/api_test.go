package viv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vivjson/vivjson/config"
	"github.com/vivjson/vivjson/viv"
)

func TestRunReturnsFoldedIntFromJSONAndScript(t *testing.T) {
	result, err := viv.Run(config.Default(), nil,
		`{"foo": 10, "bar": 30, "baz": 20}`,
		`return(foo + bar + baz)`,
	)
	require.NoError(t, err)
	require.Equal(t, int64(60), result)
}

func TestRunIteratesInjectedScopeViaDot(t *testing.T) {
	result, err := viv.Run(config.Default(), nil,
		`{"foo": 10, "bar": 30, "baz": 20}`,
		`max=-1, for (pair in .) {if (max < pair[1]) {max = pair[1]}}, return(max)`,
	)
	require.NoError(t, err)
	require.Equal(t, int64(30), result)
}

func TestRunCurrentScopeDotExcludesBuiltins(t *testing.T) {
	result, err := viv.Run(config.Default(), nil,
		`names = [], for (pair in .) {names = names + pair[0]}, return(names)`,
	)
	require.NoError(t, err)
	names := result.([]interface{})
	require.Contains(t, names, "names")
	require.NotContains(t, names, "print")
	require.NotContains(t, names, "int")
	require.NotContains(t, names, "insert")
}

func TestRunVariableCanReuseABuiltinName(t *testing.T) {
	result, err := viv.Run(config.Default(), nil, `max = 7, return(max)`)
	require.NoError(t, err)
	require.Equal(t, int64(7), result)
}

func TestRunClosureEnclosureScenario(t *testing.T) {
	result, err := viv.Run(config.Default(), nil,
		`function enclosure(a) { x = a, function closure(y) { return(x + y) }, return(closure) }, z1 = enclosure(100), z2 = enclosure(200), return([z1(5), z2(10)])`,
	)
	require.NoError(t, err)
	arr, ok := result.([]interface{})
	require.True(t, ok)
	require.Equal(t, []interface{}{int64(105), int64(210)}, arr)
}

func TestRunReferenceParameterScenario(t *testing.T) {
	result, err := viv.Run(config.Default(), nil,
		`a = [1,2,3], function x2(reference list) { for (i=0;i<len(list);i+=1) { list[i] *= 2 } }, x2(a), return(a)`,
	)
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(2), int64(4), int64(6)}, result)
}

func TestRunWithoutReferenceLeavesArgumentUnchanged(t *testing.T) {
	result, err := viv.Run(config.Default(), nil,
		`a = [1,2,3], function x2(list) { for (i=0;i<len(list);i+=1) { list[i] *= 2 } }, x2(a), return(a)`,
	)
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, result)
}

func TestRunJSONOnlyModeRejectsExpression(t *testing.T) {
	cfg := config.Default()
	cfg.EnableOnlyJson = true
	_, err := viv.Run(cfg, nil, `{"a": 3+2}`)
	require.Error(t, err)
}

func TestRunDefaultModeAcceptsExpressionInValue(t *testing.T) {
	result, err := viv.Run(config.Default(), nil, `{"a": 3+2}`, `return(a)`)
	require.NoError(t, err)
	require.Equal(t, int64(5), result)
}

func TestRunStringDivSplitsOnDelimiter(t *testing.T) {
	result, err := viv.Run(config.Default(), nil, `return("a,b,c" / ",")`)
	require.NoError(t, err)
	require.Equal(t, []interface{}{"a", "b", "c"}, result)

	result2, err := viv.Run(config.Default(), nil, `return("aXXXb" / "XX")`)
	require.NoError(t, err)
	require.Equal(t, []interface{}{"a", "Xb"}, result2)
}

func TestRunVariablesMapMergesBeforeRun(t *testing.T) {
	result, err := viv.Run(config.Default(), map[string]interface{}{"n": 7}, `return(n * 2)`)
	require.NoError(t, err)
	require.Equal(t, int64(14), result)
}

func TestRunConcatMarkerJoinsAdjacentSources(t *testing.T) {
	result, err := viv.Run(config.Default(), nil, `x = 1`, "+", `, return(x + 1)`)
	require.NoError(t, err)
	require.Equal(t, int64(2), result)
}

func TestRunImplicitUnderscoreBindsNonBlockResult(t *testing.T) {
	result, err := viv.Run(config.Default(), nil, `:= 42`, `return(_)`)
	require.NoError(t, err)
	require.Equal(t, int64(42), result)
}

func TestRunImplicitUnderscoreIndexesMultipleResults(t *testing.T) {
	result, err := viv.Run(config.Default(), nil, `:= 1`, `:= 2`, `return(_[0] + _[1])`)
	require.NoError(t, err)
	require.Equal(t, int64(3), result)
}

func TestMakeInstanceAndCallMethod(t *testing.T) {
	inst, err := viv.MakeInstance(config.Default(), `function double(x) { return(x * 2) }`)
	require.NoError(t, err)
	result, err := inst.CallMethod("double", []interface{}{int64(21)}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(42), result)
}

func TestMakeInstanceGetMember(t *testing.T) {
	inst, err := viv.MakeInstance(config.Default(), `config = {name: "viv", version: 1}`)
	require.NoError(t, err)
	result, err := inst.GetMember([]string{"config", "name"}, nil)
	require.NoError(t, err)
	require.Equal(t, "viv", result)
}

func TestMakeInstanceGetMemberIndexesArray(t *testing.T) {
	inst, err := viv.MakeInstance(config.Default(), `list = ["a", "b", "c"]`)
	require.NoError(t, err)
	result, err := inst.GetMember([]string{"list", "1"}, nil)
	require.NoError(t, err)
	require.Equal(t, "b", result)
}

func TestParseThenRunAsSource(t *testing.T) {
	parsed, err := viv.Parse(config.Default(), `return(6 * 7)`)
	require.NoError(t, err)
	result, err := viv.Run(config.Default(), nil, parsed)
	require.NoError(t, err)
	require.Equal(t, int64(42), result)
}
