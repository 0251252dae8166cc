package eckey

import (
	"crypto"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/kex/curve"
)

var (
	// ErrInvalidScalar is returned for private scalars outside [1, N).
	ErrInvalidScalar = errors.New("eckey: private scalar out of range")

	// ErrInvalidEncoding is returned by ParsePublicKey for malformed input.
	ErrInvalidEncoding = errors.New("eckey: invalid public key encoding")

	// ErrKeyMismatch is returned by Validate when the public point is not D*G.
	ErrKeyMismatch = errors.New("eckey: public key does not match private scalar")
)

// PublicKey is an affine point on Curve.
type PublicKey struct {
	Curve curve.Curve
	X, Y  *big.Int
}

// PrivateKey is a private scalar and its public key.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// NewPublicKey returns the public key (x, y) on c. The point is not checked.
func NewPublicKey(c curve.Curve, x, y *big.Int) *PublicKey {
	return &PublicKey{Curve: c, X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// NewPrivateKey returns the key pair for scalar d on c.
func NewPrivateKey(c curve.Curve, d *big.Int) (*PrivateKey, error) {
	n := c.Params().N
	if d.Sign() <= 0 || d.Cmp(n) >= 0 {
		return nil, ErrInvalidScalar
	}
	pub := c.ScalarBaseMult(scalarBytes(d))
	if pub.IsIdentity() {
		return nil, fmt.Errorf("%w: public point is the identity", ErrInvalidScalar)
	}
	x, y := pub.Affine()
	return &PrivateKey{
		PublicKey: PublicKey{Curve: c, X: x, Y: y},
		D:         new(big.Int).Set(d),
	}, nil
}

// GenerateKey returns a new key pair on c with D drawn uniformly from
// [1, N) using rand.
func GenerateKey(c curve.Curve, rand io.Reader) (*PrivateKey, error) {
	d, err := randomScalar(c.Params().N, rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private scalar: %w", err)
	}
	return NewPrivateKey(c, d)
}

// randomScalar samples [1, n) by rejection, masking excess top bits so that
// each draw succeeds with probability at least one half.
func randomScalar(n *big.Int, rand io.Reader) (*big.Int, error) {
	bits := n.BitLen()
	buf := make([]byte, (bits+7)/8)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, err
		}
		if excess := len(buf)*8 - bits; excess > 0 {
			buf[0] &= 0xff >> excess
		}
		d := new(big.Int).SetBytes(buf)
		if d.Sign() > 0 && d.Cmp(n) < 0 {
			return d, nil
		}
	}
}

// Public returns the public half of k.
func (k *PrivateKey) Public() crypto.PublicKey {
	return &k.PublicKey
}

// Validate checks that D is in [1, N) and that the public point equals D*G.
func (k *PrivateKey) Validate() error {
	if k.Curve == nil || k.D == nil || k.X == nil || k.Y == nil {
		return errors.New("eckey: incomplete private key")
	}
	n := k.Curve.Params().N
	if k.D.Sign() <= 0 || k.D.Cmp(n) >= 0 {
		return ErrInvalidScalar
	}
	pub := k.Curve.ScalarBaseMult(scalarBytes(k.D))
	if pub.IsIdentity() {
		return ErrKeyMismatch
	}
	x, y := pub.Affine()
	if x.Cmp(k.X) != 0 || y.Cmp(k.Y) != 0 {
		return ErrKeyMismatch
	}
	return nil
}

// Equal reports whether k and other are the same key on the same curve.
func (k *PublicKey) Equal(other crypto.PublicKey) bool {
	o, ok := other.(*PublicKey)
	if !ok {
		return false
	}
	return k.Curve.Params().Name == o.Curve.Params().Name &&
		k.X.Cmp(o.X) == 0 && k.Y.Cmp(o.Y) == 0
}

// Bytes returns the uncompressed SEC 1 encoding of k. The coordinates must
// be in [0, P).
func (k *PublicKey) Bytes() []byte {
	size := coordLen(k.Curve)
	out := make([]byte, 1+2*size)
	out[0] = 4
	k.X.FillBytes(out[1 : 1+size])
	k.Y.FillBytes(out[1+size:])
	return out
}

// ParsePublicKey decodes an uncompressed SEC 1 public key on c. Only the
// encoding is checked; coordinates are range-checked against P but not
// against the curve equation.
func ParsePublicKey(c curve.Curve, b []byte) (*PublicKey, error) {
	size := coordLen(c)
	if len(b) != 1+2*size {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidEncoding, len(b), 1+2*size)
	}
	if b[0] != 4 {
		return nil, fmt.Errorf("%w: prefix 0x%02x is not uncompressed", ErrInvalidEncoding, b[0])
	}
	x := new(big.Int).SetBytes(b[1 : 1+size])
	y := new(big.Int).SetBytes(b[1+size:])
	p := c.Params().P
	if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return nil, fmt.Errorf("%w: coordinate not below the field modulus", ErrInvalidEncoding)
	}
	return &PublicKey{Curve: c, X: x, Y: y}, nil
}

func coordLen(c curve.Curve) int {
	return (c.Params().BitSize + 7) / 8
}

// scalarBytes encodes d little-endian, the scalar format of curve.Curve.
func scalarBytes(d *big.Int) []byte {
	return curve.ReverseBytes(d.Bytes())
}
