package term

// Var is an opaque logic-variable identity: equality and a stable,
// injective integer id usable as a map key. Vars are never constructed
// directly by callers — a store.Store hands them out via FreshVar/NewVar
// so that ids stay unique within that store's lifetime.
type Var struct {
	id uint64
}

// NewVar wraps a raw id into a Var. Exported for store implementations;
// ordinary callers obtain Vars from a store, never by hand.
func NewVar(id uint64) Var { return Var{id: id} }

// ID returns the variable's stable integer id.
func (v Var) ID() uint64 { return v.id }

// Equal reports identity equality between two variables.
func (v Var) Equal(other Var) bool { return v.id == other.id }
