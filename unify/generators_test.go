package unify

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"unify/shapes/sexpr"
	"unify/store"
	"unify/term"
)

// randomGroundTerm builds a small, fully ground (variable-free) term for
// the property tests below: atoms A/B, or binary P/unary Q compounds
// nested up to depth.
func randomGroundTerm(rng *rand.Rand, depth int) term.Term {
	if depth <= 0 || rng.Float64() < 0.35 {
		if rng.Intn(2) == 0 {
			return sexpr.Atom("A")
		}
		return sexpr.Atom("B")
	}
	if rng.Intn(2) == 0 {
		return sexpr.New("P", randomGroundTerm(rng, depth-1), randomGroundTerm(rng, depth-1))
	}
	return sexpr.New("Q", randomGroundTerm(rng, depth-1))
}

// asymmetricAntiUnify derives two terms a, b from one random ground term
// g by independently "forgetting" some of g's positions to fresh
// variables — but never on both sides at the same position, so a and b
// never put a variable opposite a variable. theta maps every variable
// introduced back to the ground subterm it replaced, so theta(a) ==
// theta(b) == g by construction: theta is a valid (ground) unifier of a
// and b, without needing Unify to run first.
func asymmetricAntiUnify(t *testing.T, s *store.Store, rng *rand.Rand, depth int) (a, b term.Term, theta map[uint64]term.Term) {
	t.Helper()
	g := randomGroundTerm(rng, depth)
	theta = map[uint64]term.Term{}
	a, b = asymmetricForget(t, s, rng, g, theta)
	return a, b, theta
}

// asymmetricForget is the recursive step behind asymmetricAntiUnify. g is
// always ground (built by randomGroundTerm), so it is always a Node.
func asymmetricForget(t *testing.T, s *store.Store, rng *rand.Rand, g term.Term, theta map[uint64]term.Term) (aTerm, bTerm term.Term) {
	t.Helper()
	switch rng.Intn(3) {
	case 0:
		children := g.Shape().Children()
		aChildren := make([]term.Term, len(children))
		bChildren := make([]term.Term, len(children))
		for i, c := range children {
			aChildren[i], bChildren[i] = asymmetricForget(t, s, rng, c, theta)
		}
		return term.Node(g.Shape().WithChildren(aChildren)), term.Node(g.Shape().WithChildren(bChildren))
	case 1:
		v, err := s.FreshVar()
		require.NoError(t, err)
		theta[v.ID()] = g
		return term.FromVar(v), g
	default:
		v, err := s.FreshVar()
		require.NoError(t, err)
		theta[v.ID()] = g
		return g, term.FromVar(v)
	}
}

// applySubst substitutes every variable in t that has an entry in sub,
// recursively, without ever consulting a store. Used to apply a
// hand-constructed ground substitution (theta) rather than a store's
// bindings.
func applySubst(sub map[uint64]term.Term, t term.Term) term.Term {
	if t.IsNode() {
		children := t.Shape().Children()
		newChildren := make([]term.Term, len(children))
		for i, c := range children {
			newChildren[i] = applySubst(sub, c)
		}
		return term.Node(t.Shape().WithChildren(newChildren))
	}
	if repl, ok := sub[t.Var().ID()]; ok {
		return repl
	}
	return t
}

// collectVarIDs gathers every variable id appearing anywhere in t.
func collectVarIDs(t term.Term, out map[uint64]bool) {
	if t.IsNode() {
		for _, c := range t.Shape().Children() {
			collectVarIDs(c, out)
		}
		return
	}
	out[t.Var().ID()] = true
}

// rawTermEqual structurally compares two terms without consulting any
// store — both sides are assumed already fully resolved (e.g. by
// ApplyBindings), so any remaining Var leaf is compared by id alone
// rather than pruned further. This is what lets the invariant tests
// compare results computed against two independent stores.
func rawTermEqual(a, b term.Term) bool {
	if a.IsVar() != b.IsVar() {
		return false
	}
	if a.IsVar() {
		return a.Var().Equal(b.Var())
	}
	sa, sb := a.Shape(), b.Shape()
	if !sa.Match(sb) {
		return false
	}
	ca, cb := sa.Children(), sb.Children()
	for i := range ca {
		if !rawTermEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}
