// Package bn254 provides the G1 group of the BN254 pairing curve (also known
// as alt_bn128) as a [curve.Curve] backed by gnark-crypto.
//
// G1 is y^2 = x^3 + 3 over the 254-bit BN254 base field. It has prime order
// r, the BN254 scalar field modulus, so the cofactor is 1.
//
// Neither modulus has a specialized inversion chain in package field, so key
// agreement on this curve exercises the generic Fermat inverter.
package bn254

import (
	"math/big"

	gnark "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/f3rmion/kex/curve"
)

type g1 struct {
	params *curve.Params
}

var g1Curve = newG1()

func newG1() *g1 {
	_, _, gen, _ := gnark.Generators()
	return &g1{
		params: &curve.Params{
			Name:    "bn254",
			P:       fp.Modulus(),
			A:       new(big.Int),
			B:       big.NewInt(3),
			N:       fr.Modulus(),
			H:       big.NewInt(1),
			Gx:      gen.X.BigInt(new(big.Int)),
			Gy:      gen.Y.BigInt(new(big.Int)),
			BitSize: fp.Bits,
		},
	}
}

// G1 returns the BN254 G1 group. Every call returns the same value.
func G1() curve.Curve { return g1Curve }

func (c *g1) Params() *curve.Params {
	return c.params
}

func (c *g1) Generator() curve.Point {
	return curve.NewAffinePoint(c.params.Gx, c.params.Gy)
}

func (c *g1) NewPoint(x, y *big.Int) curve.Point {
	return curve.NewAffinePoint(x, y)
}

func (c *g1) ScalarMult(p curve.Point, k []byte) curve.Point {
	if p.IsIdentity() {
		return curve.Identity()
	}
	x, y := p.Affine()

	var in, out gnark.G1Affine
	in.X.SetBigInt(x)
	in.Y.SetBigInt(y)
	out.ScalarMultiplication(&in, curve.ScalarToBig(k))
	return fromGnark(&out)
}

func (c *g1) ScalarBaseMult(k []byte) curve.Point {
	_, _, gen, _ := gnark.Generators()
	var out gnark.G1Affine
	out.ScalarMultiplication(&gen, curve.ScalarToBig(k))
	return fromGnark(&out)
}

func fromGnark(p *gnark.G1Affine) curve.Point {
	if p.IsInfinity() {
		return curve.Identity()
	}
	return &curve.AffinePoint{
		X: p.X.BigInt(new(big.Int)),
		Y: p.Y.BigInt(new(big.Int)),
	}
}
