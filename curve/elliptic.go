package curve

import (
	"crypto/elliptic"
	"math/big"
)

// ellipticCurve adapts a crypto/elliptic implementation. crypto/elliptic
// reports the point at infinity as (0, 0), which is never on a curve with
// b != 0.
type ellipticCurve struct {
	c      elliptic.Curve
	params *Params
}

// FromElliptic wraps c as a [Curve]. crypto/elliptic does not expose the a
// coefficient or the cofactor, so they are supplied by the caller; a is
// reduced mod P.
func FromElliptic(c elliptic.Curve, a *big.Int, cofactor int64) Curve {
	cp := c.Params()
	return &ellipticCurve{
		c: c,
		params: &Params{
			Name:    cp.Name,
			P:       new(big.Int).Set(cp.P),
			A:       new(big.Int).Mod(a, cp.P),
			B:       new(big.Int).Set(cp.B),
			N:       new(big.Int).Set(cp.N),
			H:       big.NewInt(cofactor),
			Gx:      new(big.Int).Set(cp.Gx),
			Gy:      new(big.Int).Set(cp.Gy),
			BitSize: cp.BitSize,
		},
	}
}

func (e *ellipticCurve) Params() *Params {
	return e.params
}

func (e *ellipticCurve) Generator() Point {
	return NewAffinePoint(e.params.Gx, e.params.Gy)
}

func (e *ellipticCurve) NewPoint(x, y *big.Int) Point {
	return NewAffinePoint(x, y)
}

func (e *ellipticCurve) ScalarMult(p Point, k []byte) Point {
	if p.IsIdentity() {
		return Identity()
	}
	x, y := p.Affine()
	return e.wrap(e.c.ScalarMult(x, y, ReverseBytes(k)))
}

func (e *ellipticCurve) ScalarBaseMult(k []byte) Point {
	return e.wrap(e.c.ScalarBaseMult(ReverseBytes(k)))
}

func (e *ellipticCurve) wrap(x, y *big.Int) Point {
	if x.Sign() == 0 && y.Sign() == 0 {
		return Identity()
	}
	return &AffinePoint{X: x, Y: y}
}
