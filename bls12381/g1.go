package bls12381

import (
	"fmt"

	curve "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/clearh/cofactor"
)

// G1 represents a point on the BLS12-381 curve E(Fp): y^2 = x^3 + 4.
// It implements [group.Point] by wrapping gnark-crypto's G1Jac.
//
// Points are kept in Jacobian coordinates (X, Y, Z) with x = X/Z^2 and
// y = Y/Z^3. A G1 need not lie in the prime-order subgroup; use
// [G1.ClearCofactor] to project it there.
//
// The zero value is the identity element.
type G1 struct {
	inner curve.G1Jac
}

// NewG1 returns a new point set to the identity element.
func NewG1() *G1 {
	var p G1
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// G1Generator returns the standard generator of the G1 subgroup.
func G1Generator() *G1 {
	g, _, _, _ := curve.Generators()
	return &G1{inner: g}
}

// Set copies the value of a into p and returns p.
func (p *G1) Set(a *G1) *G1 {
	p.inner.Set(&a.inner)
	return p
}

// Double sets p to a + a and returns p.
func (p *G1) Double(a *G1) *G1 {
	p.inner.Double(&a.inner)
	return p
}

// Add sets p to a + b and returns p.
func (p *G1) Add(a, b *G1) *G1 {
	q := b.inner
	p.inner.Set(&a.inner)
	p.inner.AddAssign(&q)
	return p
}

// Sub sets p to a - b and returns p.
func (p *G1) Sub(a, b *G1) *G1 {
	q := b.inner
	p.inner.Set(&a.inner)
	p.inner.SubAssign(&q)
	return p
}

// Neg sets p to -a and returns p.
func (p *G1) Neg(a *G1) *G1 {
	p.inner.Neg(&a.inner)
	return p
}

// Equal reports whether p and b represent the same curve point.
func (p *G1) Equal(b *G1) bool {
	return p.inner.Equal(&b.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G1) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// IsOnCurve reports whether p satisfies the curve equation.
func (p *G1) IsOnCurve() bool {
	return p.inner.IsOnCurve()
}

// IsInSubGroup reports whether p lies in the prime-order subgroup.
func (p *G1) IsInSubGroup() bool {
	return p.inner.IsInSubGroup()
}

// ClearCofactor sets p to (1-z)*a, the image of a in the prime-order
// subgroup, and returns p. a is not modified; p may alias a.
func (p *G1) ClearCofactor(a *G1) *G1 {
	return cofactor.ClearG1(p, a)
}

// Bytes returns the compressed 48-byte encoding of p.
func (p *G1) Bytes() []byte {
	var a curve.G1Affine
	a.FromJacobian(&p.inner)
	b := a.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed or uncompressed encoding and returns p.
// Returns an error if data is malformed or the point is not in the
// prime-order subgroup.
func (p *G1) SetBytes(data []byte) (*G1, error) {
	var a curve.G1Affine
	if _, err := a.SetBytes(data); err != nil {
		return nil, fmt.Errorf("invalid G1 encoding: %w", err)
	}
	p.inner.FromAffine(&a)
	return p, nil
}
