package unify

import (
	"unify/internal/pkg/common"
	"unify/store"
	"unify/term"
)

// OccursIn implements spec.md §4.4's occurs-in: full-prunes t, then
// checks whether v appears anywhere in the result. Used by UnifyOccurs's
// eager occurs discipline and exposed directly for advanced callers
// (spec.md §6 lists it among the pruning helpers).
func OccursIn(s *store.Store, v term.Var, t term.Term) bool {
	pruned := FullPrune(s, t)
	if pruned.IsNode() {
		return common.Any(func(c term.Term) bool { return OccursIn(s, v, c) }, pruned.Shape().Children())
	}
	return v.Equal(pruned.Var())
}
