// Package sexpr is a concrete, variable-arity term Shape: a named
// functor plus a list of argument terms, in the tradition of Prolog
// compound terms (grounded on the compound-term representations seen
// across the retrieval pack's Prolog-flavored other_examples, e.g.
// ichiban-prolog's term.go). spec.md §1 deliberately leaves the engine
// parametric over the term shape and ships no shape of its own; this
// package exists as the worked example the test suites exercise the
// engine through.
package sexpr

import "unify/term"

// Compound is one layer of an S-expression-like term: a constructor tag
// (Functor) plus Args of fixed arity for that functor.
type Compound struct {
	Functor string
	Args    []term.Term
}

// Children returns Args unchanged — Compound's children are exactly its
// arguments, in order.
func (c Compound) Children() []term.Term {
	return c.Args
}

// WithChildren returns a Compound with the same Functor and new Args.
func (c Compound) WithChildren(newChildren []term.Term) term.Shape {
	return Compound{Functor: c.Functor, Args: newChildren}
}

// Match reports whether other is a Compound with the same functor name
// and arity.
func (c Compound) Match(other term.Shape) bool {
	o, ok := other.(Compound)
	return ok && o.Functor == c.Functor && len(o.Args) == len(c.Args)
}

// Atom builds a nullary compound term, e.g. sexpr.Atom("A").
func Atom(functor string) term.Term {
	return term.Node(Compound{Functor: functor})
}

// New builds a compound term with the given functor and arguments, e.g.
// sexpr.New("P", x, y).
func New(functor string, args ...term.Term) term.Term {
	return term.Node(Compound{Functor: functor, Args: args})
}
