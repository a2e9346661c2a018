package unify

import (
	"unify/store"
	"unify/term"
)

// Equals implements spec.md §4.9: strict structural equality. Different
// variable names are never equal on their own — two bound variables with
// different ids are equal only if both are bound and their bindings
// recursively compare equal.
func Equals(s *store.Store, a, b term.Term) bool {
	a2 := SemiPrune(s, a)
	b2 := SemiPrune(s, b)

	switch {
	case a2.IsNode() && b2.IsNode():
		if !a2.Shape().Match(b2.Shape()) {
			return false
		}
		ca, cb := a2.Shape().Children(), b2.Shape().Children()
		for i := range ca {
			if !Equals(s, ca[i], cb[i]) {
				return false
			}
		}
		return true

	case a2.IsVar() && b2.IsVar():
		va, vb := a2.Var(), b2.Var()
		if va.Equal(vb) {
			return true
		}
		boundA, okA := s.LookupVar(va)
		boundB, okB := s.LookupVar(vb)
		if !okA || !okB {
			return false
		}
		return Equals(s, boundA, boundB)

	default:
		return false
	}
}
