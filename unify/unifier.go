package unify

import (
	"errors"
	"log/slog"

	"unify/store"
	"unify/term"
)

// Unifier is a thin, logging-aware convenience wrapper over package
// unify's free functions and a *store.Store — every package-level
// function here remains independently usable, matching spec.md §6's
// plain function-based external interface. Unifier exists purely for
// the ambient observability concern: host code that wants structured
// logs correlated by store id reaches for this instead of calling the
// free functions directly. Pattern grounded on the New...WithLogger
// constructors used throughout hyper-light-sylk's agents package.
type Unifier struct {
	Store  *store.Store
	logger *slog.Logger
}

// NewUnifier wraps s with the default logger (slog.Default()).
func NewUnifier(s *store.Store) *Unifier {
	return NewUnifierWithLogger(s, nil)
}

// NewUnifierWithLogger wraps s, logging to logger (or slog.Default() if
// nil). s is rebound to the same logger (store.Store.SetLogger) so bind
// and backtrack (snapshot/restore) events — which the Store logs itself —
// are correlated with the failure/cycle events Unifier logs directly,
// rather than silently going through whatever logger s happened to be
// constructed with.
func NewUnifierWithLogger(s *store.Store, logger *slog.Logger) *Unifier {
	if logger == nil {
		logger = slog.Default()
	}
	s.SetLogger(logger)
	return &Unifier{Store: s, logger: logger}
}

func (u *Unifier) logFailure(op string, err error) {
	var occursErr *store.OccursInError
	if errors.As(err, &occursErr) {
		u.logger.Debug("unify detected cycle", "store", u.Store.DebugID(), "op", op, "var", occursErr.Var.ID())
		return
	}
	u.logger.Debug("unify operation failed", "store", u.Store.DebugID(), "op", op, "error", err)
}

// Unify delegates to Unify(u.Store, a, b), logging on failure.
func (u *Unifier) Unify(a, b term.Term) (term.Term, error) {
	result, err := Unify(u.Store, a, b)
	if err != nil {
		u.logFailure("unify", err)
		return term.Term{}, err
	}
	return result, nil
}

// UnifyOccurs delegates to UnifyOccurs(u.Store, a, b), logging on
// failure.
func (u *Unifier) UnifyOccurs(a, b term.Term) (term.Term, error) {
	result, err := UnifyOccurs(u.Store, a, b)
	if err != nil {
		u.logFailure("unify-occurs", err)
		return term.Term{}, err
	}
	return result, nil
}

// Subsumes delegates to Subsumes(u.Store, a, b), logging on failure.
func (u *Unifier) Subsumes(a, b term.Term) (bool, error) {
	ok, err := Subsumes(u.Store, a, b)
	if err != nil {
		u.logFailure("subsumes", err)
		return false, err
	}
	return ok, nil
}

// ApplyBindings delegates to ApplyBindings(u.Store, t), logging on
// failure.
func (u *Unifier) ApplyBindings(t term.Term) (term.Term, error) {
	result, err := ApplyBindings(u.Store, t)
	if err != nil {
		u.logFailure("apply-bindings", err)
		return term.Term{}, err
	}
	return result, nil
}

// Freshen delegates to Freshen(u.Store, t), logging on failure.
func (u *Unifier) Freshen(t term.Term) (term.Term, error) {
	result, err := Freshen(u.Store, t)
	if err != nil {
		u.logFailure("freshen", err)
		return term.Term{}, err
	}
	return result, nil
}

// Equals delegates to Equals(u.Store, a, b).
func (u *Unifier) Equals(a, b term.Term) bool {
	return Equals(u.Store, a, b)
}

// Equiv delegates to Equiv(u.Store, a, b).
func (u *Unifier) Equiv(a, b term.Term) (map[uint64]uint64, bool) {
	return Equiv(u.Store, a, b)
}

// GetFreeVars delegates to GetFreeVars(u.Store, t).
func (u *Unifier) GetFreeVars(t term.Term) []term.Var {
	return GetFreeVars(u.Store, t)
}

// Backtrack snapshots the store, runs fn, and restores the snapshot if
// fn returns a non-nil error — the composition design note 9 describes
// ("a host that wants cancellation/backtracking wraps the monadic
// composition in its own short-circuiting layer").
func (u *Unifier) Backtrack(fn func() error) error {
	snap := u.Store.Snapshot()
	if err := fn(); err != nil {
		u.Store.Restore(snap)
		return err
	}
	return nil
}
