package cofactor

import "github.com/f3rmion/clearh/group"

// ClearG1 sets out to h_eff*in and returns out, where h_eff = 1 - z =
// 0xd201000000010001 is the effective cofactor of G1. out may alias in.
func ClearG1[E any, P group.Point[E]](out, in *E) *E {
	var p E
	P(&p).Set(in)
	MulByNegZ[E, P](out, &p)
	return P(out).Add(out, &p)
}

// ClearG2 sets out to h_eff*in and returns out, where h_eff =
// h2*(3z^2 - 3) is the effective cofactor of G2. out may alias in.
//
// This emulates the Budroni-Pintore method (eprint 2017/419, section 4.1,
// equation 12) without the psi endomorphism, which keeps clear of the GLV
// patent (US 7110538). Both give the same point on the prime-order
// subgroup.
func ClearG2[E any, P group.Point[E]](out, in *E) *E {
	return MulByH2Eff[E, P](out, in)
}
