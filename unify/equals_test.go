package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/shapes/sexpr"
	"unify/store"
	"unify/term"
)

func TestEqualsIdenticalAtoms(t *testing.T) {
	s := store.New()
	assert.True(t, Equals(s, sexpr.Atom("A"), sexpr.Atom("A")))
}

func TestEqualsDifferentFunctorsNotEqual(t *testing.T) {
	s := store.New()
	assert.False(t, Equals(s, sexpr.Atom("A"), sexpr.Atom("B")))
}

func TestEqualsSameVarIDEqual(t *testing.T) {
	s := store.New()
	x, err := s.FreshVar()
	require.NoError(t, err)
	assert.True(t, Equals(s, term.FromVar(x), term.FromVar(x)))
}

func TestEqualsDifferentUnboundVarsNotEqual(t *testing.T) {
	s := store.New()
	x, _ := s.FreshVar()
	y, _ := s.FreshVar()
	assert.False(t, Equals(s, term.FromVar(x), term.FromVar(y)))
}

func TestEqualsDifferentVarsWithEqualBindingsAreEqual(t *testing.T) {
	s := store.New()
	x, _ := s.FreshVar()
	y, _ := s.FreshVar()
	s.BindVar(x, sexpr.Atom("A"))
	s.BindVar(y, sexpr.Atom("A"))

	assert.True(t, Equals(s, term.FromVar(x), term.FromVar(y)))
}

func TestEqualsVarVsNodeNeverEqual(t *testing.T) {
	s := store.New()
	x, _ := s.FreshVar()
	assert.False(t, Equals(s, term.FromVar(x), sexpr.Atom("A")))
}

func TestEqualsRecursesIntoChildren(t *testing.T) {
	s := store.New()
	left := sexpr.New("P", sexpr.Atom("A"), sexpr.Atom("B"))
	right := sexpr.New("P", sexpr.Atom("A"), sexpr.Atom("B"))
	assert.True(t, Equals(s, left, right))

	mismatched := sexpr.New("P", sexpr.Atom("A"), sexpr.Atom("C"))
	assert.False(t, Equals(s, left, mismatched))
}
