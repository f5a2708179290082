package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vivjson/vivjson/value"
)

func TestDefineAndLookup(t *testing.T) {
	e := New()
	e.Define("x", value.NewInt(1))
	v, ok := e.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.IntValue).Val)
}

func TestLookupWalksParentChain(t *testing.T) {
	root := New()
	root.Define("x", value.NewInt(1))
	child := root.Child()
	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.IntValue).Val)
}

func TestAssignUpdatesOuterBinding(t *testing.T) {
	root := New()
	root.Define("x", value.NewInt(1))
	child := root.Child()
	owner := child.Assign("x", value.NewInt(2))
	assert.Same(t, root, owner)
	v, _ := root.Lookup("x")
	assert.Equal(t, int64(2), v.(*value.IntValue).Val)
}

func TestAssignCreatesInInnermostWhenUnbound(t *testing.T) {
	root := New()
	child := root.Child()
	child.Assign("y", value.NewInt(5))
	_, rootHas := root.Lookup("y")
	assert.False(t, rootHas)
	v, ok := child.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, int64(5), v.(*value.IntValue).Val)
}

func TestOwnerFindsInnermostBindingScope(t *testing.T) {
	root := New()
	root.Define("x", value.NewInt(1))
	child := root.Child()
	child.Define("x", value.NewInt(2))
	assert.Same(t, child, child.Owner("x"))
}

func TestDeleteRemovesOwnBinding(t *testing.T) {
	e := New()
	e.Define("x", value.NewInt(1))
	assert.True(t, e.Delete("x"))
	_, ok := e.Lookup("x")
	assert.False(t, ok)
}

func TestAsBlockPreservesInsertionOrder(t *testing.T) {
	e := New()
	e.Define("b", value.NewInt(1))
	e.Define("a", value.NewInt(2))
	e.Define("c", value.NewInt(3))
	assert.Equal(t, []string{"b", "a", "c"}, e.AsBlock().Keys())
}

func TestRootWalksToOutermostScope(t *testing.T) {
	root := New()
	mid := root.Child()
	leaf := mid.Child()
	assert.Same(t, root, leaf.Root())
	assert.True(t, root.IsRoot())
	assert.False(t, leaf.IsRoot())
}
