// Package bls12381 provides BLS12-381 G1 and G2 point types that satisfy
// [group.Point] and expose cofactor clearing.
//
// This package wraps the Jacobian point arithmetic from gnark-crypto and
// plugs it into the generic addition chains of the cofactor package.
//
// # Curve Parameters
//
// G1 points live on E(Fp) and G2 points on the twist E'(Fp2):
//
//	E:  y^2 = x^3 + 4
//	E': y^2 = x^3 + 4(1+u)
//
// Both contain a subgroup of prime order
//
//	r = 0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001
//
// and the curve parameter is z = -0xd201000000010000.
//
// # Usage
//
// Clear a point produced by hashing or by lifting an x-coordinate:
//
//	var q bls12381.G2
//	q.ClearCofactor(p)
//	// q.IsInSubGroup() == true
//
// In place:
//
//	p.ClearCofactor(p)
//
// Many points at once:
//
//	err := bls12381.BatchClearG2(ctx, points, runtime.GOMAXPROCS(0))
//
// # Security
//
// Clearing is total: any point on the curve, inside the subgroup or not,
// is mapped into the subgroup. It does not validate that the input is on
// the curve. [G1.SetBytes] and [G2.SetBytes] reject encodings of points
// outside the subgroup.
package bls12381
