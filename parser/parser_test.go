package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivjson/vivjson/lexer"
	"github.com/vivjson/vivjson/value"
)

func TestParseSimpleAssignment(t *testing.T) {
	prog, errs := Parse(`x = 1 + 2`)
	assert.Empty(t, errs)
	assert.Len(t, prog.Stmts, 1)
	assign, ok := prog.Stmts[0].(*AssignNode)
	assert.True(t, ok)
	assert.Equal(t, lexer.ASSIGN, assign.Op)
	ident, ok := assign.Target.(*IdentifierNode)
	assert.True(t, ok)
	assert.Equal(t, "x", ident.Name)
	bin, ok := assign.Value.(*BinaryNode)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Op)
}

func TestParseColonActsAsAssign(t *testing.T) {
	prog, errs := Parse(`"foo": 10`)
	assert.Empty(t, errs)
	assign, ok := prog.Stmts[0].(*AssignNode)
	assert.True(t, ok)
	assert.Equal(t, lexer.ASSIGN, assign.Op)
	ident := assign.Target.(*IdentifierNode)
	assert.Equal(t, "foo", ident.Name)
}

func TestParseChainedComparisonIsError(t *testing.T) {
	_, errs := Parse(`x = 3 > 2 > 1`)
	assert.NotEmpty(t, errs)
}

func TestParseGetChain(t *testing.T) {
	prog, errs := Parse(`x = a.b[0]`)
	assert.Empty(t, errs)
	assign := prog.Stmts[0].(*AssignNode)
	get, ok := assign.Value.(*GetNode)
	assert.True(t, ok)
	assert.Len(t, get.Segments, 2)
	base := get.Base.(*IdentifierNode)
	assert.Equal(t, "a", base.Name)
}

func TestParseArrayAndBlockLiterals(t *testing.T) {
	prog, errs := Parse(`x = [1, 2, {"a": 3}]`)
	assert.Empty(t, errs)
	assign := prog.Stmts[0].(*AssignNode)
	arr, ok := assign.Value.(*ArrayLitNode)
	assert.True(t, ok)
	assert.Len(t, arr.Elems, 3)
	blk, ok := arr.Elems[2].(*BlockLitNode)
	assert.True(t, ok)
	assert.Equal(t, "a", blk.Entries[0].Key)
}

func TestParseIfElseifElse(t *testing.T) {
	prog, errs := Parse(`if (a) { x = 1 } elseif (b) { x = 2 } else { x = 3 }`)
	assert.Empty(t, errs)
	ifNode, ok := prog.Stmts[0].(*IfNode)
	assert.True(t, ok)
	assert.Len(t, ifNode.Branches, 2)
	assert.NotNil(t, ifNode.Else)
}

func TestParseForIn(t *testing.T) {
	prog, errs := Parse(`for (pair in .) { x = pair }`)
	assert.Empty(t, errs)
	forNode, ok := prog.Stmts[0].(*ForNode)
	assert.True(t, ok)
	assert.True(t, forNode.IsForIn)
	assert.Equal(t, "pair", forNode.IterVar)
}

func TestParseCStyleFor(t *testing.T) {
	prog, errs := Parse(`for (i=0; i<10; i+=1) { x = i }`)
	assert.Empty(t, errs)
	forNode, ok := prog.Stmts[0].(*ForNode)
	assert.True(t, ok)
	assert.False(t, forNode.IsForIn)
	assert.NotNil(t, forNode.Init)
	assert.NotNil(t, forNode.Cond)
	assert.NotNil(t, forNode.Step)
}

func TestParseFunctionDefWithParamModifiers(t *testing.T) {
	prog, errs := Parse(`function add(a, reference b, function f) { return(a) }`)
	assert.Empty(t, errs)
	fn, ok := prog.Stmts[0].(*FuncDefNode)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Params, 3)
	assert.Equal(t, value.ParamByValue, fn.Params[0].Modifier)
	assert.Equal(t, value.ParamByReference, fn.Params[1].Modifier)
	assert.Equal(t, value.ParamFunction, fn.Params[2].Modifier)
}

func TestParseYieldInsideDoBody(t *testing.T) {
	prog, errs := Parse(`do { := 5 }`)
	assert.Empty(t, errs)
	doNode, ok := prog.Stmts[0].(*DoNode)
	assert.True(t, ok)
	_, ok = doNode.Body.Stmts[0].(*YieldNode)
	assert.True(t, ok)
}

func TestParseRemove(t *testing.T) {
	prog, errs := Parse(`remove(x)`)
	assert.Empty(t, errs)
	rm, ok := prog.Stmts[0].(*RemoveNode)
	assert.True(t, ok)
	ident := rm.Target.(*IdentifierNode)
	assert.Equal(t, "x", ident.Name)
}

func TestJSONOnlyRejectsExpressions(t *testing.T) {
	_, errs := Parse(`{"a": 3+2}`, WithJSONOnly(true))
	assert.NotEmpty(t, errs)
}

func TestJSONOnlyAcceptsPlainDocument(t *testing.T) {
	prog, errs := Parse(`{"foo": 10, "bar": [1,2,3]}`, WithJSONOnly(true))
	assert.Empty(t, errs)
	blk, ok := prog.Stmts[0].(*BlockLitNode)
	assert.True(t, ok)
	assert.Len(t, blk.Entries, 2)
}

func TestJSONOnlyImplicitTopLevelWrap(t *testing.T) {
	prog, errs := Parse(`"foo": 10, "bar": 20`, WithJSONOnly(true))
	assert.Empty(t, errs)
	blk, ok := prog.Stmts[0].(*BlockLitNode)
	assert.True(t, ok)
	assert.Len(t, blk.Entries, 2)
}

func TestJSONOnlyUnaryMinusOnNumber(t *testing.T) {
	prog, errs := Parse(`-5`, WithJSONOnly(true))
	assert.Empty(t, errs)
	lit, ok := prog.Stmts[0].(*LiteralNode)
	assert.True(t, ok)
	assert.Equal(t, int64(-5), lit.Val.(*value.IntValue).Val)
}
