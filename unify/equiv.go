package unify

import (
	"unify/store"
	"unify/term"
)

// Equiv implements spec.md §4.10: alpha-equivalence. Returns the
// renaming map from a's variable ids to b's on success, or (nil, false)
// if no consistent renaming exists. The renaming is built as a bijection
// — two distinct left ids are never allowed to map to the same right id
// — so the result satisfies the bijection property spec.md §8 invariant
// 8 requires of Equiv(t, Freshen(t)).
func Equiv(s *store.Store, a, b term.Term) (map[uint64]uint64, bool) {
	renaming := map[uint64]uint64{}
	seenRight := map[uint64]uint64{}
	if !equivRec(s, a, b, renaming, seenRight) {
		return nil, false
	}
	return renaming, true
}

func equivRec(s *store.Store, a, b term.Term, renaming, seenRight map[uint64]uint64) bool {
	a2 := FullPrune(s, a)
	b2 := FullPrune(s, b)

	switch {
	case a2.IsVar() && b2.IsVar():
		va, vb := a2.Var(), b2.Var()
		if existing, ok := renaming[va.ID()]; ok {
			return existing == vb.ID()
		}
		if _, taken := seenRight[vb.ID()]; taken {
			return false
		}
		renaming[va.ID()] = vb.ID()
		seenRight[vb.ID()] = va.ID()
		return true

	case a2.IsNode() && b2.IsNode():
		if !a2.Shape().Match(b2.Shape()) {
			return false
		}
		ca, cb := a2.Shape().Children(), b2.Shape().Children()
		for i := range ca {
			if !equivRec(s, ca[i], cb[i], renaming, seenRight) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
