// Package nist provides the NIST prime curves P-256, P-384 and P-521
// (FIPS 186-4, D.1.2) as [curve.Curve] values backed by crypto/elliptic.
//
// All three curves have a = -3 and cofactor 1.
package nist

import (
	"crypto/elliptic"
	"math/big"

	"github.com/f3rmion/kex/curve"
)

var (
	minusThree = big.NewInt(-3)

	p256 = curve.FromElliptic(elliptic.P256(), minusThree, 1)
	p384 = curve.FromElliptic(elliptic.P384(), minusThree, 1)
	p521 = curve.FromElliptic(elliptic.P521(), minusThree, 1)
)

// P256 returns NIST P-256, also known as secp256r1 or prime256v1.
// Every call returns the same value.
func P256() curve.Curve { return p256 }

// P384 returns NIST P-384, also known as secp384r1.
func P384() curve.Curve { return p384 }

// P521 returns NIST P-521, also known as secp521r1.
func P521() curve.Curve { return p521 }
