package unify

import (
	"unify/store"
	"unify/term"
)

// withSeen implements the "locally-scoped visited-set extension" spec.md
// §4.11 describes: recording that v is being recursed into via witness
// for the duration of fn, then forgetting it once fn returns (success or
// failure) so sibling branches see the same visited set they started
// with. Observing v a second time while it is still recorded is the
// revisit spec.md §4.5's seen-as raises OccursIn for.
func withSeen(seen map[uint64]term.Term, v term.Var, witness term.Term, fn func() (term.Term, error)) (term.Term, error) {
	if prev, ok := seen[v.ID()]; ok {
		return term.Term{}, &store.OccursInError{Var: v, Term: prev}
	}
	seen[v.ID()] = witness
	defer delete(seen, v.ID())
	return fn()
}

// withSeenBool is withSeen's counterpart for subsumes, whose contract
// (spec.md §4.13, §6) returns a bool rather than threading a term
// through the error-free path.
func withSeenBool(seen map[uint64]term.Term, v term.Var, witness term.Term, fn func() (bool, error)) (bool, error) {
	if prev, ok := seen[v.ID()]; ok {
		return false, &store.OccursInError{Var: v, Term: prev}
	}
	seen[v.ID()] = witness
	defer delete(seen, v.ID())
	return fn()
}
