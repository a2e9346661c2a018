package unify

import (
	"unify/store"
	"unify/term"
)

// Freshen implements spec.md §4.8: allocates a fresh variable for every
// variable encountered in t, free or bound, preserving internal sharing
// (two occurrences of the same original variable map to the same fresh
// variable). Raises OccursIn on a preexisting cycle.
func Freshen(s *store.Store, t term.Term) (term.Term, error) {
	out, err := FreshenAll(s, []term.Term{t})
	if err != nil {
		return term.Term{}, err
	}
	return out[0], nil
}

// FreshenAll freshens every term in ts, threading one visited set
// through the whole collection so variables shared across the input
// terms stay shared in the output — freshening each term independently
// would not preserve that relationship.
func FreshenAll(s *store.Store, ts []term.Term) ([]term.Term, error) {
	seen := map[uint64]either{}
	out := make([]term.Term, len(ts))
	for i, t := range ts {
		r, err := freshenTerm(s, t, seen)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func freshenTerm(s *store.Store, t term.Term, seen map[uint64]either) (term.Term, error) {
	if t.IsNode() {
		children := t.Shape().Children()
		newChildren := make([]term.Term, len(children))
		for i, c := range children {
			r, err := freshenTerm(s, c, seen)
			if err != nil {
				return term.Term{}, err
			}
			newChildren[i] = r
		}
		return term.Node(t.Shape().WithChildren(newChildren)), nil
	}

	v := t.Var()
	if e, ok := seen[v.ID()]; ok {
		if !e.computed {
			return term.Term{}, &store.OccursInError{Var: v, Term: e.term}
		}
		return e.term, nil
	}

	bound, hasBound := s.LookupVar(v)
	if !hasBound {
		nv, err := s.FreshVar()
		if err != nil {
			return term.Term{}, err
		}
		result := term.FromVar(nv)
		seen[v.ID()] = either{term: result, computed: true}
		return result, nil
	}

	seen[v.ID()] = either{term: bound, computed: false}
	freshBound, err := freshenTerm(s, bound, seen)
	if err != nil {
		return term.Term{}, err
	}
	nv, err := s.NewVar(freshBound)
	if err != nil {
		return term.Term{}, err
	}
	result := term.FromVar(nv)
	seen[v.ID()] = either{term: result, computed: true}
	return result, nil
}
