// Package group defines the abstract capability that cofactor clearing
// needs from an elliptic curve group.
//
// The addition chains in the cofactor package never touch coordinates or
// field elements. They only double, add and subtract group elements, so a
// single generic constraint is enough to run them over any concrete curve
// group:
//
//   - [Point]: a pointer-to-element constraint with Set, Double, Add, Sub
//     and the equality helpers used by tests
//
// # Design Philosophy
//
// The interface uses a mutable receiver pattern for efficiency. Operations
// like Add and Double set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute 3*p
//	t := new(bls12381.G1).Double(p)
//	t.Add(t, p)
//
// Point is a type constraint rather than a dynamic interface. Generic code
// is written as
//
//	func F[E any, P group.Point[E]](out, in *E) *E
//
// and instantiated with the concrete value type, so temporaries are plain
// stack values of type E and calls are resolved at compile time.
//
// # Implementing a Group
//
// To plug a new curve group into the cofactor package:
//
//  1. Create a value type wrapping your curve point (Jacobian or projective
//     coordinates are preferred, affine doubling is expensive)
//  2. Implement the [Point] methods on its pointer type
//  3. Make the zero value, or a constructor, yield the identity element
//
// See the bls12381 package for G1 and G2 implementations using gnark-crypto.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Add handles doubling (a == b) and the identity on either side
//   - Every method tolerates the receiver aliasing any argument
//   - Arithmetic on logically independent values is reentrant
package group
