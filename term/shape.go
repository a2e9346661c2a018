package term

// Shape is one layer of a user-defined term structure: a constructor tag
// plus a fixed-arity list of child slots, holding further Terms. This is
// the collaborator contract spec.md §4.1 calls the "term shape functor" —
// Go has no higher-kinded generics, so the functor's two required
// operations (traverse, zip-match) are expressed as three methods an
// implementer supplies once per constructor family.
type Shape interface {
	// Children returns this layer's child terms in deterministic
	// left-to-right order. The engine never mutates the returned slice
	// and never calls WithChildren with a different length than it got
	// from Children.
	Children() []Term

	// WithChildren returns a shape identical to this one except that its
	// children are replaced by newChildren, given in the same order as
	// Children returned them. Implements the "traverse" operation: the
	// engine computes newChildren by mapping a function over
	// Children() and calls WithChildren to rebuild the layer. Must
	// preserve the constructor and arity.
	WithChildren(newChildren []Term) Shape

	// Match reports whether other is built from the same constructor
	// with the same arity as this shape — the "zip-match" test. When
	// Match returns true, Children() and other.Children() are aligned
	// position for position; when it returns false, the two shapes are
	// never considered equal or unifiable regardless of their children.
	Match(other Shape) bool
}
