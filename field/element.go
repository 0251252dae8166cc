package field

import (
	"math/big"
)

// Value is the read-only view shared by [Element] and [MutableElement].
// It can only be implemented inside this package.
type Value interface {
	// Field returns the field the value belongs to.
	Field() *Field
	// Big returns a copy of the canonical value in [0, p).
	Big() *big.Int
	// Bytes returns the canonical value as a little-endian slice of the
	// given length, truncated to the value mod 2^(8*length).
	Bytes(length int) []byte
	// IsZero reports whether the value is zero.
	IsZero() bool
	// Equal reports whether b has the same modulus and value.
	Equal(b Value) bool
	String() string

	// value exposes the backing integer. Callers must not modify it.
	value() *big.Int
}

// Element is an immutable element of a prime field. The zero Element is not
// usable; obtain elements from a [Field].
type Element struct {
	f *Field
	v *big.Int
}

var (
	_ Value = Element{}
	_ Value = (*MutableElement)(nil)
)

func (e Element) Field() *Field      { return e.f }
func (e Element) value() *big.Int    { return e.v }
func (e Element) Big() *big.Int      { return new(big.Int).Set(e.v) }
func (e Element) IsZero() bool       { return e.v.Sign() == 0 }
func (e Element) String() string     { return e.v.String() }
func (e Element) Equal(b Value) bool { return equal(e, b) }

func (e Element) Bytes(length int) []byte {
	out := make([]byte, length)
	putLE(out, e.v)
	return out
}

// PutBytes writes the little-endian encoding of e into dst, which must be
// exactly length bytes long.
func (e Element) PutBytes(dst []byte, length int) error {
	if len(dst) != length {
		return ErrLengthMismatch
	}
	putLE(dst, e.v)
	return nil
}

// AddModPowerTwo writes (e + b) mod 2^(8*length) little-endian into dst,
// which must be exactly length bytes long. The sum is taken over the
// integers, not reduced mod p.
func (e Element) AddModPowerTwo(b Value, dst []byte, length int) error {
	e.f.check(b)
	if len(dst) != length {
		return ErrLengthMismatch
	}
	sum := new(big.Int).Add(e.v, b.value())
	putLE(dst, sum)
	return nil
}

// Add returns e + b.
func (e Element) Add(b Value) Element {
	e.f.check(b)
	r := new(big.Int).Add(e.v, b.value())
	if r.Cmp(e.f.p) >= 0 {
		r.Sub(r, e.f.p)
	}
	return Element{f: e.f, v: r}
}

// Sub returns e - b, computed as e + (-b).
func (e Element) Sub(b Value) Element {
	e.f.check(b)
	return e.Add(fixedOf(b).Negate())
}

// Mul returns e * b.
func (e Element) Mul(b Value) Element {
	e.f.check(b)
	r := new(big.Int).Mul(e.v, b.value())
	r.Mod(r, e.f.p)
	return Element{f: e.f, v: r}
}

// Square returns e^2. Prefer it over e.Mul(e): math/big takes its
// dedicated squaring path when both operands are the same integer.
func (e Element) Square() Element {
	r := new(big.Int).Mul(e.v, e.v)
	r.Mod(r, e.f.p)
	return Element{f: e.f, v: r}
}

// Negate returns the additive inverse (p - e) mod p.
func (e Element) Negate() Element {
	if e.v.Sign() == 0 {
		return e.f.Zero()
	}
	return Element{f: e.f, v: new(big.Int).Sub(e.f.p, e.v)}
}

// Inverse returns the multiplicative inverse of e using the field's
// registered [Inverter]. The inverse of zero is not defined; the strategies
// in this package return zero for it.
func (e Element) Inverse() Element {
	return e.f.inv.Invert(e)
}

// Pow returns e^exp for a non-negative exponent. Bits are scanned from least
// to most significant: the accumulator absorbs the running base whenever the
// bit is set, and the base is squared after every bit.
func (e Element) Pow(exp *big.Int) Element {
	if exp.Sign() < 0 {
		panic("field: negative exponent")
	}
	y := e.f.One().Mutable()
	x := e.Mutable()
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			y.MulAssign(x)
		}
		x.SquareAssign()
	}
	return y.freeze()
}

// Fixed returns e. Elements are immutable, so no copy is needed.
func (e Element) Fixed() Element {
	return e
}

// Mutable returns a new mutable copy of e.
func (e Element) Mutable() *MutableElement {
	return &MutableElement{f: e.f, v: new(big.Int).Set(e.v)}
}

// MutableElement is a field element whose methods update the receiver in
// place. It is not safe for concurrent use and must not be aliased while a
// combine operation is running.
type MutableElement struct {
	f *Field
	v *big.Int
}

func (m *MutableElement) Field() *Field      { return m.f }
func (m *MutableElement) value() *big.Int    { return m.v }
func (m *MutableElement) Big() *big.Int      { return new(big.Int).Set(m.v) }
func (m *MutableElement) IsZero() bool       { return m.v.Sign() == 0 }
func (m *MutableElement) String() string     { return m.v.String() }
func (m *MutableElement) Equal(b Value) bool { return equal(m, b) }

func (m *MutableElement) Bytes(length int) []byte {
	out := make([]byte, length)
	putLE(out, m.v)
	return out
}

// Fixed returns an immutable copy of the current value.
func (m *MutableElement) Fixed() Element {
	return Element{f: m.f, v: new(big.Int).Set(m.v)}
}

// Mutable returns an independent mutable copy.
func (m *MutableElement) Mutable() *MutableElement {
	return &MutableElement{f: m.f, v: new(big.Int).Set(m.v)}
}

// Set sets m to b and returns m.
func (m *MutableElement) Set(b Value) *MutableElement {
	m.f.check(b)
	m.v.Set(b.value())
	return m
}

// AddAssign sets m to m + b and returns m.
func (m *MutableElement) AddAssign(b Value) *MutableElement {
	m.f.check(b)
	m.v.Add(m.v, b.value())
	if m.v.Cmp(m.f.p) >= 0 {
		m.v.Sub(m.v, m.f.p)
	}
	return m
}

// SubAssign sets m to m - b and returns m.
func (m *MutableElement) SubAssign(b Value) *MutableElement {
	m.f.check(b)
	m.v.Sub(m.v, b.value())
	if m.v.Sign() < 0 {
		m.v.Add(m.v, m.f.p)
	}
	return m
}

// MulAssign sets m to m * b and returns m.
func (m *MutableElement) MulAssign(b Value) *MutableElement {
	m.f.check(b)
	m.v.Mul(m.v, b.value())
	m.v.Mod(m.v, m.f.p)
	return m
}

// SquareAssign sets m to m^2 and returns m.
func (m *MutableElement) SquareAssign() *MutableElement {
	m.v.Mul(m.v, m.v)
	m.v.Mod(m.v, m.f.p)
	return m
}

// SquareN squares m n times in place, leaving m^(2^n), and returns m.
func (m *MutableElement) SquareN(n int) *MutableElement {
	for i := 0; i < n; i++ {
		m.SquareAssign()
	}
	return m
}

// NegateAssign sets m to -m and returns m.
func (m *MutableElement) NegateAssign() *MutableElement {
	if m.v.Sign() != 0 {
		m.v.Sub(m.f.p, m.v)
	}
	return m
}

// SetProduct sets m to a * b and returns m.
func (m *MutableElement) SetProduct(a, b Value) *MutableElement {
	m.f.check(a)
	m.f.check(b)
	m.v.Mul(a.value(), b.value())
	m.v.Mod(m.v, m.f.p)
	return m
}

// SetSquare sets m to a^2 and returns m.
func (m *MutableElement) SetSquare(a Value) *MutableElement {
	m.f.check(a)
	m.v.Mul(a.value(), a.value())
	m.v.Mod(m.v, m.f.p)
	return m
}

// freeze hands the backing integer over to an immutable Element. m must not
// be used afterwards.
func (m *MutableElement) freeze() Element {
	e := Element{f: m.f, v: m.v}
	m.v = nil
	return e
}

// fixedOf views v as an Element without copying. The result must not
// outlive a later mutation of v.
func fixedOf(v Value) Element {
	if e, ok := v.(Element); ok {
		return e
	}
	return Element{f: v.Field(), v: v.value()}
}

func equal(a, b Value) bool {
	return a.Field().Equal(b.Field()) && a.value().Cmp(b.value()) == 0
}
