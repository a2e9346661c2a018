package unify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unify/shapes/sexpr"
	"unify/store"
	"unify/term"
)

func TestOccursInUnboundVarNotEqual(t *testing.T) {
	s := store.New()
	x, err := s.FreshVar()
	require.NoError(t, err)
	y, err := s.FreshVar()
	require.NoError(t, err)

	assert.False(t, OccursIn(s, x, term.FromVar(y)))
}

func TestOccursInDirectMatch(t *testing.T) {
	s := store.New()
	x, err := s.FreshVar()
	require.NoError(t, err)

	assert.True(t, OccursIn(s, x, term.FromVar(x)))
}

func TestOccursInThroughStructure(t *testing.T) {
	s := store.New()
	x, err := s.FreshVar()
	require.NoError(t, err)
	y, err := s.FreshVar()
	require.NoError(t, err)

	s.BindVar(y, sexpr.New("P", term.FromVar(x)))
	assert.True(t, OccursIn(s, x, term.FromVar(y)))
}

func TestOccursInFalseForDisjointStructure(t *testing.T) {
	s := store.New()
	x, err := s.FreshVar()
	require.NoError(t, err)

	assert.False(t, OccursIn(s, x, sexpr.New("P", sexpr.Atom("A"))))
}
