package bls12381

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/clearh/cofactor"
)

// G2 represents a point on the sextic twist E'(Fp2): y^2 = x^3 + 4(1+u).
// It implements [group.Point] by wrapping gnark-crypto's G2Jac, with the
// same Jacobian conventions as [G1].
//
// The twist has a cofactor of roughly 2^508, so points built from raw
// coordinates are almost never in the prime-order subgroup.
//
// The zero value is the identity element.
type G2 struct {
	inner curve.G2Jac
}

// NewG2 returns a new point set to the identity element.
func NewG2() *G2 {
	var p G2
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// G2Generator returns the standard generator of the G2 subgroup.
func G2Generator() *G2 {
	_, g, _, _ := curve.Generators()
	return &G2{inner: g}
}

// Set copies the value of a into p and returns p.
func (p *G2) Set(a *G2) *G2 {
	p.inner.Set(&a.inner)
	return p
}

// Double sets p to a + a and returns p.
func (p *G2) Double(a *G2) *G2 {
	p.inner.Double(&a.inner)
	return p
}

// Add sets p to a + b and returns p.
func (p *G2) Add(a, b *G2) *G2 {
	q := b.inner
	p.inner.Set(&a.inner)
	p.inner.AddAssign(&q)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2) Sub(a, b *G2) *G2 {
	q := b.inner
	p.inner.Set(&a.inner)
	p.inner.SubAssign(&q)
	return p
}

// Neg sets p to -a and returns p.
func (p *G2) Neg(a *G2) *G2 {
	p.inner.Neg(&a.inner)
	return p
}

// Equal reports whether p and b represent the same curve point.
func (p *G2) Equal(b *G2) bool {
	return p.inner.Equal(&b.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// IsOnCurve reports whether p satisfies the curve equation.
func (p *G2) IsOnCurve() bool {
	return p.inner.IsOnCurve()
}

// IsInSubGroup reports whether p lies in the prime-order subgroup.
func (p *G2) IsInSubGroup() bool {
	return p.inner.IsInSubGroup()
}

// ClearCofactor sets p to h2*(3z^2-3)*a, the image of a in the prime-order
// subgroup, and returns p. a is not modified; p may alias a.
//
// The result matches the psi-based Budroni-Pintore clearing used by
// hash-to-curve, computed with scalar chains only.
func (p *G2) ClearCofactor(a *G2) *G2 {
	return cofactor.ClearG2(p, a)
}

// Bytes returns the compressed 96-byte encoding of p.
func (p *G2) Bytes() []byte {
	var a curve.G2Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed or uncompressed encoding and returns p.
// Returns an error if data is malformed or the point is not in the
// prime-order subgroup.
func (p *G2) SetBytes(data []byte) (*G2, error) {
	var a curve.G2Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("invalid G2 encoding: %w", err)
	}
	p.inner.FromAffine(&a)
	return p, nil
}
