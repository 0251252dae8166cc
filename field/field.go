package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotPrime is returned by [New] when the modulus is not an odd prime.
	ErrNotPrime = errors.New("field: modulus is not an odd prime")

	// ErrLengthMismatch is returned when a caller-supplied buffer does not
	// have exactly the requested length.
	ErrLengthMismatch = errors.New("field: buffer length mismatch")
)

// primalityRounds is the number of Miller-Rabin rounds run on a new modulus.
const primalityRounds = 20

// Field is the prime field GF(p). A Field is immutable once created and may
// be shared between goroutines.
type Field struct {
	p    *big.Int
	pm2  *big.Int // p-2, the Fermat inversion exponent
	bits int
	inv  Inverter
}

// New returns the field of integers modulo p. The modulus is copied, checked
// for primality and bound to its inversion strategy.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Sign() <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("%w: %v", ErrNotPrime, p)
	}

	f := &Field{
		p:    new(big.Int).Set(p),
		bits: p.BitLen(),
	}
	f.pm2 = new(big.Int).Sub(f.p, big.NewInt(2))
	f.inv = InverterFor(f.p)
	return f, nil
}

// MustNew is like [New] but panics on error. It is intended for package-level
// variables holding well-known moduli.
func MustNew(p *big.Int) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// SizeInBits returns the bit length of p.
func (f *Field) SizeInBits() int {
	return f.bits
}

// ByteLen returns the number of bytes needed to hold any canonical element.
func (f *Field) ByteLen() int {
	return (f.bits + 7) / 8
}

// Inverter returns the inversion strategy bound to this field.
func (f *Field) Inverter() Inverter {
	return f.inv
}

// InRange reports whether 0 <= x < p.
func (f *Field) InRange(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(f.p) < 0
}

// Equal reports whether f and g have the same modulus.
func (f *Field) Equal(g *Field) bool {
	return f == g || f.p.Cmp(g.p) == 0
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{f: f, v: new(big.Int)}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{f: f, v: big.NewInt(1)}
}

// FromBig returns x mod p. Negative values are mapped to their canonical
// representative.
func (f *Field) FromBig(x *big.Int) Element {
	v := new(big.Int).Mod(x, f.p)
	return Element{f: f, v: v}
}

// FromInt64 returns x mod p.
func (f *Field) FromInt64(x int64) Element {
	return f.FromBig(big.NewInt(x))
}

// FromBytes interprets b as a little-endian integer and returns it mod p.
func (f *Field) FromBytes(b []byte) Element {
	return f.FromBig(leToBig(b))
}

func (f *Field) String() string {
	return fmt.Sprintf("GF(0x%x)", f.p)
}

// check panics unless v belongs to a field with the same modulus as f.
func (f *Field) check(v Value) {
	if !f.Equal(v.Field()) {
		panic("field: operands belong to different fields")
	}
}

// leToBig decodes a little-endian byte slice.
func leToBig(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

// putLE writes the low len(dst) bytes of the non-negative x into dst,
// least significant byte first.
func putLE(dst []byte, x *big.Int) {
	be := x.Bytes()
	clear(dst)
	for i := 0; i < len(dst) && i < len(be); i++ {
		dst[i] = be[len(be)-1-i]
	}
}
