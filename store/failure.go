package store

import (
	"fmt"

	"github.com/google/uuid"

	"unify/term"
)

// OccursInError reports that binding Var to Term would create a cycle —
// spec.md §7's OccursIn failure.
type OccursInError struct {
	Var  term.Var
	Term term.Term
}

func (e *OccursInError) Error() string {
	return fmt.Sprintf("occurs check failed: var %d occurs in %v", e.Var.ID(), e.Term)
}

// TermMismatchError reports that two structure nodes could not be
// zip-matched — spec.md §7's TermMismatch failure.
type TermMismatchError struct {
	Left, Right term.Shape
}

func (e *TermMismatchError) Error() string {
	return fmt.Sprintf("term mismatch: %d-ary node vs %d-ary node",
		len(e.Left.Children()), len(e.Right.Children()))
}

// ExhaustedVariablesError reports that FreshVar/NewVar would overflow the
// store's id space — spec.md §7's ExhaustedVariables failure. StoreID
// carries the store's debug correlation id so a host can match this
// failure to the log lines emitted for the same store.
type ExhaustedVariablesError struct {
	StoreID uuid.UUID
}

func (e *ExhaustedVariablesError) Error() string {
	return fmt.Sprintf("store %s: exhausted variable id space", e.StoreID)
}
