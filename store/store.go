// Package store implements the binding store spec.md §3-§4.2 describes:
// a counter for the next fresh variable id and a persistent mapping from
// id to a ranked cell. It is the concrete, integer-keyed collaborator
// spec.md §1 calls usable-but-not-hard — the hard part lives in package
// unify, which consumes this package's interface exclusively (spec.md
// never lets callers observe the store any other way).
package store

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"unify/config"
	"unify/internal/pmap"
	"unify/term"
)

// RankedCell is the value held per bound variable id: a path-compression
// rank hint plus an optional bound term (spec.md §3).
type RankedCell struct {
	Rank     uint32
	Bound    term.Term
	HasBound bool
}

// Store is the binding state every operation in package unify threads
// through. It is used by exclusive mutable reference for sequential
// unification (spec.md §9's "monadic state -> explicit state
// transformer"); backtracking is done by capturing a Snapshot before a
// speculative branch and calling Restore on failure.
type Store struct {
	nextID uint64
	cells  pmap.Map[RankedCell]

	id     uuid.UUID
	logger *slog.Logger
}

// New creates an empty store with the default logger (slog.Default()).
func New() *Store {
	return NewWithLogger(nil)
}

// NewWithLogger creates an empty store that logs bind/snapshot/restore
// events to logger. A nil logger falls back to slog.Default(), matching
// the New...WithLogger convention used throughout the richest example in
// the retrieval pack (e.g. agents/academic/domain_filter.go).
func NewWithLogger(logger *slog.Logger) *Store {
	return NewWithConfig(config.Default(), logger)
}

// NewWithConfig creates an empty store tuned by cfg (see
// config.Config's persistent-map compaction fields), logging to logger
// (or slog.Default() if nil).
func NewWithConfig(cfg config.Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		cells:  pmap.EmptyTuned[RankedCell](cfg.PersistentMapCompactionDivisor, cfg.PersistentMapCompactionFloor),
		id:     uuid.New(),
		logger: logger,
	}
}

// SetLogger rebinds the store's logger. Used by unify.NewUnifierWithLogger
// so a Store built independently of its wrapping Unifier still logs
// bind/snapshot/restore events through the same *slog.Logger the Unifier
// was given, instead of the logger it happened to be constructed with. A
// nil logger falls back to slog.Default(), matching every other
// New...WithLogger constructor in this package.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.logger = logger
}

// DebugID returns the store's debug correlation id. It carries no
// semantic weight: two stores with equal bindings are equal regardless
// of their DebugID, it exists purely so log lines from one store's
// lifetime (including its snapshots) can be grouped together.
func (s *Store) DebugID() uuid.UUID { return s.id }

// Snapshot is an opaque capture of a store's state at a point in time.
// Because the underlying map is persistent, taking one is cheap and
// never invalidated by further mutation of the store it was taken from.
type Snapshot struct {
	nextID uint64
	cells  pmap.Map[RankedCell]
}

// Snapshot captures the store's current state for later Restore.
func (s *Store) Snapshot() Snapshot {
	s.logger.Debug("store snapshot", "store", s.id, "next_id", s.nextID)
	return Snapshot{nextID: s.nextID, cells: s.cells}
}

// Restore resets the store to a previously captured Snapshot, discarding
// every binding made since. This is how a host implements backtracking:
// snapshot before a speculative unify, restore on failure.
func (s *Store) Restore(snap Snapshot) {
	s.nextID = snap.nextID
	s.cells = snap.cells
	s.logger.Debug("store restore", "store", s.id, "next_id", s.nextID)
}

// LookupVar returns v's current binding, or (zero, false) if v has
// never been bound.
func (s *Store) LookupVar(v term.Var) (term.Term, bool) {
	cell, ok := s.cells.Get(v.ID())
	if !ok || !cell.HasBound {
		return term.Term{}, false
	}
	return cell.Bound, true
}

// LookupRankVar returns v's full cell, or the zero cell (rank 0, no
// binding) if v has never been touched.
func (s *Store) LookupRankVar(v term.Var) RankedCell {
	cell, ok := s.cells.Get(v.ID())
	if !ok {
		return RankedCell{}
	}
	return cell
}

// FreshVar allocates a new variable id with no cell installed.
func (s *Store) FreshVar() (term.Var, error) {
	id, err := s.allocate()
	if err != nil {
		return term.Var{}, err
	}
	return term.NewVar(id), nil
}

// NewVar allocates a new variable id bound to t.
func (s *Store) NewVar(t term.Term) (term.Var, error) {
	id, err := s.allocate()
	if err != nil {
		return term.Var{}, err
	}
	v := term.NewVar(id)
	s.cells = s.cells.Set(id, RankedCell{Rank: 0, Bound: t, HasBound: true})
	return v, nil
}

func (s *Store) allocate() (uint64, error) {
	if s.nextID == math.MaxUint64 {
		return 0, &ExhaustedVariablesError{StoreID: s.id}
	}
	id := s.nextID
	s.nextID++
	return id, nil
}

// BindVar sets v's bound slot to t, preserving its existing rank (or
// creating the cell with rank 0 if v had no cell yet).
func (s *Store) BindVar(v term.Var, t term.Term) {
	cell := s.LookupRankVar(v)
	cell.Bound = t
	cell.HasBound = true
	s.cells = s.cells.Set(v.ID(), cell)
	s.logger.Debug("bind-var", "store", s.id, "var", v.ID())
}

// IncrementRank bumps v's rank by one, leaving its binding untouched.
func (s *Store) IncrementRank(v term.Var) {
	cell := s.LookupRankVar(v)
	cell.Rank++
	s.cells = s.cells.Set(v.ID(), cell)
}

// IncrementBindVar combines BindVar and IncrementRank atomically.
func (s *Store) IncrementBindVar(v term.Var, t term.Term) {
	cell := s.LookupRankVar(v)
	cell.Rank++
	cell.Bound = t
	cell.HasBound = true
	s.cells = s.cells.Set(v.ID(), cell)
	s.logger.Debug("increment-bind-var", "store", s.id, "var", v.ID(), "rank", cell.Rank)
}
