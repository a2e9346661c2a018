package unify

import (
	"unify/store"
	"unify/term"
)

// Unify implements spec.md §4.11: the default unification variant,
// using a visited-set confined to this single top-level call to detect
// cycles this call would construct, and the AOOS discipline (spec.md
// §9/glossary) of rebinding both sides of a (Var, Var) merge directly to
// the newly computed term so later lookups resolve in one pointer hop.
func Unify(s *store.Store, a, b term.Term) (term.Term, error) {
	u := &coreUnifier{
		store: s,
		seen:  map[uint64]term.Term{},
		bind:  func(v term.Var, t term.Term) error { s.BindVar(v, t); return nil },
	}
	return u.run(a, b)
}

// UnifyOccurs implements spec.md §4.12: identical control structure to
// Unify, but every bind is mediated by an eager occurs check, failing
// immediately instead of only on a later revisit.
func UnifyOccurs(s *store.Store, a, b term.Term) (term.Term, error) {
	u := &coreUnifier{
		store: s,
		seen:  map[uint64]term.Term{},
		bind: func(v term.Var, t term.Term) error {
			if OccursIn(s, v, t) {
				return &store.OccursInError{Var: v, Term: t}
			}
			s.BindVar(v, t)
			return nil
		},
	}
	return u.run(a, b)
}

// coreUnifier carries the state one top-level Unify/UnifyOccurs call
// threads through its recursion: the store, the call-local visited set,
// and the bind strategy that distinguishes the two variants.
type coreUnifier struct {
	store *store.Store
	seen  map[uint64]term.Term
	bind  func(v term.Var, t term.Term) error
}

func (u *coreUnifier) run(a, b term.Term) (term.Term, error) {
	return u.step(a, b)
}

func (u *coreUnifier) step(tl, tr term.Term) (term.Term, error) {
	tl = SemiPrune(u.store, tl)
	tr = SemiPrune(u.store, tr)

	switch {
	case tl.IsVar() && tr.IsVar():
		return u.stepVarVar(tl, tr)
	case tl.IsVar() && tr.IsNode():
		return u.stepVarNode(tl, tr)
	case tl.IsNode() && tr.IsVar():
		return u.stepVarNode(tr, tl)
	default:
		return u.stepNodeNode(tl, tr)
	}
}

func (u *coreUnifier) stepVarVar(tl, tr term.Term) (term.Term, error) {
	vl, vr := tl.Var(), tr.Var()
	if vl.Equal(vr) {
		return tr, nil
	}

	boundL, okL := u.store.LookupVar(vl)
	boundR, okR := u.store.LookupVar(vr)

	switch {
	case !okL:
		if err := u.bind(vl, tr); err != nil {
			return term.Term{}, err
		}
		return tr, nil
	case !okR:
		if err := u.bind(vr, tl); err != nil {
			return term.Term{}, err
		}
		return tl, nil
	default:
		result, err := withSeen(u.seen, vl, boundL, func() (term.Term, error) {
			return withSeen(u.seen, vr, boundR, func() (term.Term, error) {
				return u.step(boundL, boundR)
			})
		})
		if err != nil {
			return term.Term{}, err
		}
		if err := u.bind(vr, result); err != nil {
			return term.Term{}, err
		}
		if err := u.bind(vl, result); err != nil {
			return term.Term{}, err
		}
		return result, nil
	}
}

func (u *coreUnifier) stepVarNode(tl, tr term.Term) (term.Term, error) {
	vl := tl.Var()
	bound, ok := u.store.LookupVar(vl)
	if !ok {
		if err := u.bind(vl, tr); err != nil {
			return term.Term{}, err
		}
		return tl, nil
	}

	result, err := withSeen(u.seen, vl, bound, func() (term.Term, error) {
		return u.step(bound, tr)
	})
	if err != nil {
		return term.Term{}, err
	}
	if err := u.bind(vl, result); err != nil {
		return term.Term{}, err
	}
	return tl, nil
}

func (u *coreUnifier) stepNodeNode(tl, tr term.Term) (term.Term, error) {
	sl, sr := tl.Shape(), tr.Shape()
	if !sl.Match(sr) {
		return term.Term{}, &store.TermMismatchError{Left: sl, Right: sr}
	}

	cl, cr := sl.Children(), sr.Children()
	newChildren := make([]term.Term, len(cl))
	for i := range cl {
		r, err := u.step(cl[i], cr[i])
		if err != nil {
			return term.Term{}, err
		}
		newChildren[i] = r
	}
	return term.Node(sl.WithChildren(newChildren)), nil
}
