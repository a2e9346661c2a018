package unify

import (
	"unify/store"
	"unify/term"
)

// either is the Left/Right discipline spec.md §4.7 and §4.8 both use:
// Left records "currently recursing through this variable's binding to
// Term" (computed == false); Right records "already computed, reuse
// Term" (computed == true).
type either struct {
	term     term.Term
	computed bool
}

// ApplyBindings implements spec.md §4.7: produces a term containing no
// variable whose binding exists, cloning structure as needed so the
// result is safe to hand to a caller outside the store's lifetime.
// Raises OccursIn if a preexisting cycle is reached.
func ApplyBindings(s *store.Store, t term.Term) (term.Term, error) {
	return applyBindings(s, t, map[uint64]either{})
}

func applyBindings(s *store.Store, t term.Term, seen map[uint64]either) (term.Term, error) {
	pruned := SemiPrune(s, t)

	if pruned.IsNode() {
		children := pruned.Shape().Children()
		newChildren := make([]term.Term, len(children))
		for i, c := range children {
			r, err := applyBindings(s, c, seen)
			if err != nil {
				return term.Term{}, err
			}
			newChildren[i] = r
		}
		return term.Node(pruned.Shape().WithChildren(newChildren)), nil
	}

	v := pruned.Var()
	if e, ok := seen[v.ID()]; ok {
		if !e.computed {
			return term.Term{}, &store.OccursInError{Var: v, Term: e.term}
		}
		return e.term, nil
	}

	bound, ok := s.LookupVar(v)
	if !ok {
		return pruned, nil
	}

	seen[v.ID()] = either{term: bound, computed: false}
	result, err := applyBindings(s, bound, seen)
	if err != nil {
		return term.Term{}, err
	}
	seen[v.ID()] = either{term: result, computed: true}
	return result, nil
}
