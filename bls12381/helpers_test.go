package bls12381

import (
	"encoding/binary"
	"math/big"
	"testing"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/clearh/group"
)

// mulGeneric sets out to k*in by plain left-to-right double-and-add.
// It is the reference the addition chains are checked against and is
// valid for points outside the subgroup. k must be non-negative.
func mulGeneric[E any, P group.Point[E]](out, in *E, k *big.Int) *E {
	var acc, base E
	P(&base).Set(in)
	for i := k.BitLen() - 1; i >= 0; i-- {
		P(&acc).Double(&acc)
		if k.Bit(i) == 1 {
			P(&acc).Add(&acc, &base)
		}
	}
	return P(out).Set(&acc)
}

// seed returns BLAKE2b-512(label || i || ctr), a reproducible stream of
// test randomness.
func seed(label string, i, ctr int) []byte {
	h, _ := blake2b.New512(nil)
	h.Write([]byte(label))
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(i))
	binary.BigEndian.PutUint64(buf[8:], uint64(ctr))
	h.Write(buf[:])
	return h.Sum(nil)
}

// seedScalar returns a deterministic scalar in [0, r).
func seedScalar(label string, i int) *big.Int {
	s := new(big.Int).SetBytes(seed(label, i, 0))
	return s.Mod(s, fr.Modulus())
}

// liftG1 returns the first point of E(Fp) whose x-coordinate comes from
// the seed stream. Such points are almost never in the subgroup.
func liftG1(t testing.TB, label string, i int) *G1 {
	t.Helper()
	four := fp.NewElement(4)
	for ctr := 0; ; ctr++ {
		var a curve.G1Affine
		a.X.SetBytes(seed(label, i, ctr))

		var rhs fp.Element
		rhs.Square(&a.X).Mul(&rhs, &a.X).Add(&rhs, &four)
		if a.Y.Sqrt(&rhs) == nil {
			continue
		}

		p := new(G1)
		p.inner.FromAffine(&a)
		if !p.IsOnCurve() {
			t.Fatal("lifted G1 point is not on the curve")
		}
		return p
	}
}

// liftG2 is the twist counterpart of liftG1.
func liftG2(t testing.TB, label string, i int) *G2 {
	t.Helper()
	four := fp.NewElement(4)
	for ctr := 0; ; ctr++ {
		var a curve.G2Affine
		a.X.A0.SetBytes(seed(label, i, 2*ctr))
		a.X.A1.SetBytes(seed(label, i, 2*ctr+1))

		a.Y.Square(&a.X).Mul(&a.Y, &a.X)
		a.Y.A0.Add(&a.Y.A0, &four)
		a.Y.A1.Add(&a.Y.A1, &four)
		if a.Y.Legendre() != 1 {
			continue
		}
		a.Y.Sqrt(&a.Y)

		p := new(G2)
		p.inner.FromAffine(&a)
		if !p.IsOnCurve() {
			t.Fatal("lifted G2 point is not on the curve")
		}
		return p
	}
}

// subgroupG1 returns s*G for a deterministic scalar s.
func subgroupG1(label string, i int) *G1 {
	return mulGeneric(new(G1), G1Generator(), seedScalar(label, i))
}

// subgroupG2 returns s*G for a deterministic scalar s.
func subgroupG2(label string, i int) *G2 {
	return mulGeneric(new(G2), G2Generator(), seedScalar(label, i))
}

// h2Eff returns 3*(z^2-1)*h2, the full G2 effective cofactor.
func h2Eff() *big.Int {
	// Same value as the decimal h2 in the cofactor package tests.
	h2, _ := new(big.Int).SetString("5d543a95414e7f1091d50792876a202cd91de4547085abaa68a205b2e5a7ddfa628f1cb4d9e82ef21537e293a6691ae1616ec6e786f0c70cf1c38e31c7238e5", 16)
	z := new(big.Int).SetUint64(0xd201000000010000)
	k := new(big.Int).Mul(z, z)
	k.Sub(k, big.NewInt(1))
	k.Mul(k, big.NewInt(3))
	return k.Mul(k, h2)
}
