package unify

import (
	"unify/store"
	"unify/term"
)

// Subsumes implements spec.md §4.13: the one-sided "a is no more
// defined than b" test. Unlike the rest of the comparison family it
// still binds unbound left-side variables to right-side terms (the same
// side-effect Unify has), so a host that must not keep those bindings
// wraps the call in a store.Snapshot/Restore pair.
//
// spec.md types this operation as returning a plain Bool; because it
// still binds variables it carries the same cycle hazard Unify does, so
// in Go we surface a detected cycle as an error rather than silently
// folding it into "false" — see DESIGN.md.
func Subsumes(s *store.Store, a, b term.Term) (bool, error) {
	seen := map[uint64]term.Term{}
	return subsumesStep(s, a, b, seen)
}

func subsumesStep(s *store.Store, tl, tr term.Term, seen map[uint64]term.Term) (bool, error) {
	tl = SemiPrune(s, tl)
	tr = SemiPrune(s, tr)

	switch {
	case tl.IsVar() && tr.IsVar():
		vl, vr := tl.Var(), tr.Var()
		if vl.Equal(vr) {
			return true, nil
		}
		boundL, okL := s.LookupVar(vl)
		if !okL {
			s.BindVar(vl, tr)
			return true, nil
		}
		boundR, okR := s.LookupVar(vr)
		if !okR {
			return false, nil
		}
		return withSeenBool(seen, vl, boundL, func() (bool, error) {
			return withSeenBool(seen, vr, boundR, func() (bool, error) {
				return subsumesStep(s, boundL, boundR, seen)
			})
		})

	case tl.IsVar() && tr.IsNode():
		vl := tl.Var()
		bound, ok := s.LookupVar(vl)
		if !ok {
			s.BindVar(vl, tr)
			return true, nil
		}
		return withSeenBool(seen, vl, bound, func() (bool, error) {
			return subsumesStep(s, bound, tr, seen)
		})

	case tl.IsNode() && tr.IsVar():
		return false, nil

	default:
		sl, sr := tl.Shape(), tr.Shape()
		if !sl.Match(sr) {
			return false, nil
		}
		cl, cr := sl.Children(), sr.Children()
		for i := range cl {
			ok, err := subsumesStep(s, cl[i], cr[i], seen)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
}
