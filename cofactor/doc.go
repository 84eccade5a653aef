// Package cofactor implements cofactor clearing for the BLS12-381 groups
// G1 and G2 with fixed addition chains.
//
// Points produced by hashing or by lifting an x-coordinate lie on the full
// curve, whose order is h*r for the prime r used by protocols. Clearing
// multiplies such a point by the cofactor h, or by an effective cofactor
// h_eff with the same effect, so the result lands in the order-r subgroup.
// Skipping this step exposes callers to small-subgroup attacks.
//
// # Addition Chains
//
// Both multipliers are straight-line programs of doublings and additions
// generated by a Bos-Coster search. They are not loops over scalar bits:
//
//   - [MulByNegZ] multiplies by -z = 0xd201000000010000 (69 links)
//   - [MulByH2Eff] multiplies by 3*(z^2-1)*h2, using a 604-link window-4
//     chain for h2 followed by two calls to [MulByNegZ]
//
// A wrong doubling count does not fail loudly. It yields a valid but
// unrelated point, so every chain is pinned by numeric vectors in the
// tests rather than by runtime checks.
//
// # Clearing
//
// [ClearG1] computes (1-z)*P and [ClearG2] computes h2*(3z^2-3)*P. All
// functions are generic over [group.Point], so they run directly on the
// concrete point types in the bls12381 package:
//
//	var q bls12381.G2
//	cofactor.ClearG2(&q, p)
//
// [ClearAll] fans clearing of a slice out over a bounded set of goroutines.
//
// # Concurrency
//
// Every call owns its temporaries. Calls on distinct points need no
// coordination, and out may alias in.
package cofactor
