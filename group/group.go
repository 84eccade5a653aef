package group

// Point is the capability required from a group element type E.
// It is satisfied by *E when E's pointer methods implement group
// arithmetic.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. The receiver may
// alias any argument.
//
// The identity element (zero point, point at infinity) is the additive
// identity: P + Identity = P for all points P.
type Point[E any] interface {
	*E

	// Set sets the receiver to a and returns it.
	Set(a *E) *E
	// Double sets the receiver to a+a and returns it.
	Double(a *E) *E
	// Add sets the receiver to a+b and returns it.
	Add(a, b *E) *E
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b *E) *E
	// Equal reports whether the receiver equals b.
	Equal(b *E) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}
