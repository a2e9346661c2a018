// Package unify implements the hard engineering spec.md §1 singles out:
// pruning, the cycle-safe traversals, and the unification algorithm
// itself, all layered on top of package store and package term. Every
// operation here is a synchronous state transformer over a *store.Store
// (spec.md §5) — there is no asynchrony and no internal concurrency.
package unify

import (
	"unify/store"
	"unify/term"
)

// FullPrune implements spec.md §4.3's full-prune: if t is a structure
// node it is returned as-is; if t is a variable, the chain of bindings
// is walked to its end (descending through a final structural node too)
// and every variable on the chain is rebound to point directly at that
// end, so future lookups are O(1). Assumes the chain is acyclic — safe
// by the store invariant except transiently inside one unification step.
func FullPrune(s *store.Store, t term.Term) term.Term {
	if t.IsNode() {
		return t
	}
	v := t.Var()
	bound, ok := s.LookupVar(v)
	if !ok {
		return t
	}
	result := FullPrune(s, bound)
	s.BindVar(v, result)
	return result
}

// SemiPrune implements spec.md §4.3's semi-prune: like FullPrune, but it
// stops at the last variable in the chain instead of descending into a
// structural node. Every intermediate variable is rebound to the last
// variable; the returned term is always Var(lastVar), whether lastVar
// turned out to be unbound or bound to a structure.
func SemiPrune(s *store.Store, t term.Term) term.Term {
	if t.IsNode() {
		return t
	}
	var chain []term.Var
	cur := t.Var()
	for {
		bound, ok := s.LookupVar(cur)
		if !ok || bound.IsNode() {
			break
		}
		chain = append(chain, cur)
		cur = bound.Var()
	}
	last := term.FromVar(cur)
	for _, v := range chain {
		s.BindVar(v, last)
	}
	return last
}
