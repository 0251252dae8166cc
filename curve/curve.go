package curve

import (
	"math/big"
)

// Params holds the parameters of a short Weierstrass curve
// y^2 = x^3 + a*x + b over GF(P) with a subgroup of prime order N and
// cofactor H. Params values are shared and must be treated as read-only.
type Params struct {
	Name    string   // canonical curve name, e.g. "P-256"
	P       *big.Int // base field modulus
	A, B    *big.Int // curve coefficients in [0, P)
	N       *big.Int // order of the base point
	H       *big.Int // cofactor
	Gx, Gy  *big.Int // base point
	BitSize int      // size of the base field in bits
}

// Point is an opaque handle to a curve point. It only answers the questions
// key agreement needs: its affine coordinates and whether it is the identity.
type Point interface {
	// Affine returns copies of the affine coordinates. The result is
	// undefined for the identity.
	Affine() (x, y *big.Int)
	// IsIdentity reports whether the point is the point at infinity.
	IsIdentity() bool
}

// Curve is the curve-group service consumed by key agreement.
//
// Scalars are little-endian byte strings of any length. Implementations
// perform no validation in NewPoint; ScalarMult requires its input to be on
// the curve and may panic otherwise, so callers validate first.
type Curve interface {
	// Params returns the curve parameters.
	Params() *Params
	// Generator returns the base point.
	Generator() Point
	// NewPoint wraps affine coordinates without checking them.
	NewPoint(x, y *big.Int) Point
	// ScalarMult returns k*p.
	ScalarMult(p Point, k []byte) Point
	// ScalarBaseMult returns k*G.
	ScalarBaseMult(k []byte) Point
}

// AffinePoint is the Point implementation shared by the backends.
type AffinePoint struct {
	X, Y     *big.Int
	Infinity bool
}

// NewAffinePoint returns the point (x, y). The coordinates are copied.
func NewAffinePoint(x, y *big.Int) *AffinePoint {
	return &AffinePoint{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Identity returns the point at infinity.
func Identity() *AffinePoint {
	return &AffinePoint{X: new(big.Int), Y: new(big.Int), Infinity: true}
}

// Affine implements [Point].
func (p *AffinePoint) Affine() (x, y *big.Int) {
	return new(big.Int).Set(p.X), new(big.Int).Set(p.Y)
}

// IsIdentity implements [Point].
func (p *AffinePoint) IsIdentity() bool {
	return p.Infinity
}

// Equal reports whether p and q are the same point.
func (p *AffinePoint) Equal(q Point) bool {
	if p.Infinity || q.IsIdentity() {
		return p.Infinity == q.IsIdentity()
	}
	x, y := q.Affine()
	return p.X.Cmp(x) == 0 && p.Y.Cmp(y) == 0
}

// ReverseBytes returns a reversed copy of b, converting between the
// little-endian scalars of this package and big-endian library APIs.
func ReverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

// ScalarToBig decodes a little-endian scalar.
func ScalarToBig(k []byte) *big.Int {
	return new(big.Int).SetBytes(ReverseBytes(k))
}
