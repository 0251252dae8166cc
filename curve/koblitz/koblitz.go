// Package koblitz provides secp256k1 (SEC 2, 2.4.1) as a [curve.Curve]
// backed by btcec, the secp256k1 implementation used by btcd.
//
// The curve is y^2 = x^3 + 7 over a 256-bit prime field with a prime-order
// group (cofactor 1).
package koblitz

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/f3rmion/kex/curve"
)

type secp256k1 struct {
	params *curve.Params
}

var s256 = newSecp256k1()

func newSecp256k1() *secp256k1 {
	cp := btcec.S256().Params()
	return &secp256k1{
		params: &curve.Params{
			Name:    "secp256k1",
			P:       new(big.Int).Set(cp.P),
			A:       new(big.Int),
			B:       new(big.Int).Set(cp.B),
			N:       new(big.Int).Set(cp.N),
			H:       big.NewInt(1),
			Gx:      new(big.Int).Set(cp.Gx),
			Gy:      new(big.Int).Set(cp.Gy),
			BitSize: cp.BitSize,
		},
	}
}

// Secp256k1 returns the secp256k1 curve. Every call returns the same value.
func Secp256k1() curve.Curve { return s256 }

func (c *secp256k1) Params() *curve.Params {
	return c.params
}

func (c *secp256k1) Generator() curve.Point {
	return curve.NewAffinePoint(c.params.Gx, c.params.Gy)
}

func (c *secp256k1) NewPoint(x, y *big.Int) curve.Point {
	return curve.NewAffinePoint(x, y)
}

// ScalarMult returns k*p. The scalar is reduced mod N first, which does not
// change the result because every point on the curve has order N.
func (c *secp256k1) ScalarMult(p curve.Point, k []byte) curve.Point {
	if p.IsIdentity() {
		return curve.Identity()
	}
	x, y := p.Affine()

	var fx, fy, one btcec.FieldVal
	fx.SetByteSlice(x.Bytes())
	fy.SetByteSlice(y.Bytes())
	one.SetInt(1)
	point := btcec.MakeJacobianPoint(&fx, &fy, &one)

	s := c.scalar(k)
	var result btcec.JacobianPoint
	btcec.ScalarMultNonConst(s, &point, &result)
	return toAffine(&result)
}

func (c *secp256k1) ScalarBaseMult(k []byte) curve.Point {
	var result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(c.scalar(k), &result)
	return toAffine(&result)
}

// scalar converts a little-endian scalar of any length to a ModNScalar.
func (c *secp256k1) scalar(k []byte) *btcec.ModNScalar {
	v := curve.ScalarToBig(k)
	v.Mod(v, c.params.N)

	var buf [32]byte
	v.FillBytes(buf[:])
	var s btcec.ModNScalar
	s.SetBytes(&buf)
	return &s
}

func toAffine(p *btcec.JacobianPoint) curve.Point {
	if (p.X.IsZero() && p.Y.IsZero()) || p.Z.IsZero() {
		return curve.Identity()
	}
	p.ToAffine()
	return &curve.AffinePoint{
		X: new(big.Int).SetBytes(p.X.Bytes()[:]),
		Y: new(big.Int).SetBytes(p.Y.Bytes()[:]),
	}
}
