package unify

import (
	"sort"

	"unify/internal/pkg/common"
	"unify/store"
	"unify/term"
)

// GetFreeVars implements spec.md §4.6: the set of variables reachable
// from t whose current binding is absent, in ascending id order. Never
// raises — a revisit (including one caused by a cyclic binding) is
// silently suppressed rather than treated as an error.
func GetFreeVars(s *store.Store, t term.Term) []term.Var {
	return GetFreeVarsAll(s, []term.Term{t})
}

// GetFreeVarsAll is GetFreeVars over a list of terms, merging results so
// a variable shared by several of the input terms appears once.
func GetFreeVarsAll(s *store.Store, ts []term.Term) []term.Var {
	seen := map[uint64]bool{}
	result := map[uint64]term.Var{}
	for _, t := range ts {
		collectFreeVars(s, t, seen, result)
	}

	ids := make([]uint64, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return common.Map(func(id uint64) term.Var { return result[id] }, ids)
}

func collectFreeVars(s *store.Store, t term.Term, seen map[uint64]bool, result map[uint64]term.Var) {
	if t.IsNode() {
		for _, c := range t.Shape().Children() {
			collectFreeVars(s, c, seen, result)
		}
		return
	}
	v := t.Var()
	if seen[v.ID()] {
		return
	}
	seen[v.ID()] = true

	if bound, ok := s.LookupVar(v); ok {
		collectFreeVars(s, bound, seen, result)
		return
	}
	result[v.ID()] = v
}
