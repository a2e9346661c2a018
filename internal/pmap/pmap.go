// Package pmap implements the persistent integer-keyed map store.Store
// uses for its bindings (spec.md §3). No library anywhere in the
// retrieval pack provides a persistent/immutable map (checked every
// go.mod and go.sum in the corpus); the nearest idiomatic pattern the
// corpus does show is copy-on-write cloning of a native map — see
// hyper-light-sylk's core/dag/dag.go, which snapshots its node map with
// the stdlib "maps" package before mutating a copy. This package
// generalizes that pattern into a reusable persistent map: a shared,
// never-mutated base plus a small copy-on-write overlay, periodically
// flattened back into a new base so the overlay never grows unbounded.
package pmap

import "maps"

// defaultCompactionDivisor and defaultCompactionFloor are the
// compaction parameters used by Empty; EmptyTuned lets a caller override
// them (config.Config plumbs its own tunables through to this).
const (
	defaultCompactionDivisor = 4
	defaultCompactionFloor   = 8
)

// Map is a persistent (immutable-once-returned) map from uint64 to V.
// Every mutating-looking operation returns a new Map; the receiver is
// left untouched, so old Map values keep denoting what they always did —
// this is what lets store.Store snapshot/restore work without deep
// copying on every speculative branch.
type Map[V any] struct {
	base    map[uint64]V
	diff    map[uint64]V
	divisor int
	floor   int
}

// Empty returns the empty persistent map, tuned with the default
// compaction parameters.
func Empty[V any]() Map[V] {
	return EmptyTuned[V](defaultCompactionDivisor, defaultCompactionFloor)
}

// EmptyTuned returns the empty persistent map, tuned with the given
// compaction divisor and floor (see compactionThreshold).
func EmptyTuned[V any](divisor, floor int) Map[V] {
	return Map[V]{divisor: divisor, floor: floor}
}

// Get looks up k, preferring the overlay over the base.
func (m Map[V]) Get(k uint64) (V, bool) {
	if v, ok := m.diff[k]; ok {
		return v, true
	}
	v, ok := m.base[k]
	return v, ok
}

// Set returns a new map with k bound to v, leaving m unchanged.
func (m Map[V]) Set(k uint64, v V) Map[V] {
	nd := maps.Clone(m.diff)
	if nd == nil {
		nd = make(map[uint64]V, 1)
	}
	nd[k] = v
	out := Map[V]{base: m.base, diff: nd, divisor: m.divisor, floor: m.floor}
	if len(nd) > out.compactionThreshold() {
		return out.compact()
	}
	return out
}

// compact flattens base+diff into a new base with an empty overlay.
func (m Map[V]) compact() Map[V] {
	merged := make(map[uint64]V, len(m.base)+len(m.diff))
	maps.Copy(merged, m.base)
	maps.Copy(merged, m.diff)
	return Map[V]{base: merged, divisor: m.divisor, floor: m.floor}
}

func (m Map[V]) compactionThreshold() int {
	divisor, floor := m.divisor, m.floor
	if divisor <= 0 {
		divisor = defaultCompactionDivisor
	}
	if floor <= 0 {
		floor = defaultCompactionFloor
	}
	t := len(m.base) / divisor
	if t < floor {
		t = floor
	}
	return t
}

// Keys returns every key present in m, in no particular order. Callers
// that need determinism (spec.md requires ascending-id order for
// get-free-vars) sort the result themselves.
func (m Map[V]) Keys() []uint64 {
	seen := make(map[uint64]struct{}, len(m.base)+len(m.diff))
	out := make([]uint64, 0, len(m.base)+len(m.diff))
	for k := range m.diff {
		seen[k] = struct{}{}
		out = append(out, k)
	}
	for k := range m.base {
		if _, ok := seen[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// Len reports the number of distinct keys in m.
func (m Map[V]) Len() int {
	return len(m.Keys())
}
