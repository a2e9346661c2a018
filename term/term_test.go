package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShape struct {
	functor  string
	children []Term
}

func (s stubShape) Children() []Term { return s.children }

func (s stubShape) WithChildren(newChildren []Term) Shape {
	return stubShape{functor: s.functor, children: newChildren}
}

func (s stubShape) Match(other Shape) bool {
	o, ok := other.(stubShape)
	return ok && o.functor == s.functor && len(o.children) == len(s.children)
}

func TestNodeIsNodeNotVar(t *testing.T) {
	tm := Node(stubShape{functor: "A"})
	assert.True(t, tm.IsNode())
	assert.False(t, tm.IsVar())
}

func TestFromVarIsVarNotNode(t *testing.T) {
	tm := FromVar(NewVar(1))
	assert.True(t, tm.IsVar())
	assert.False(t, tm.IsNode())
}

func TestShapePanicsOnVarTerm(t *testing.T) {
	tm := FromVar(NewVar(1))
	assert.Panics(t, func() { tm.Shape() })
}

func TestVarPanicsOnNodeTerm(t *testing.T) {
	tm := Node(stubShape{functor: "A"})
	assert.Panics(t, func() { tm.Var() })
}

func TestShapeRoundTrips(t *testing.T) {
	shape := stubShape{functor: "P", children: []Term{FromVar(NewVar(1))}}
	tm := Node(shape)
	require.True(t, tm.IsNode())
	assert.Equal(t, shape, tm.Shape())
}

func TestVarIdentity(t *testing.T) {
	v1 := NewVar(1)
	v2 := NewVar(1)
	v3 := NewVar(2)

	assert.True(t, v1.Equal(v2))
	assert.False(t, v1.Equal(v3))
	assert.Equal(t, uint64(1), v1.ID())
}

func TestStringDoesNotPanic(t *testing.T) {
	node := Node(stubShape{functor: "A"})
	v := FromVar(NewVar(7))

	assert.NotPanics(t, func() {
		_ = node.String()
		_ = v.String()
	})
}
