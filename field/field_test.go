package field

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
)

func randomElement(t testing.TB, f *Field) Element {
	t.Helper()
	v, err := rand.Int(rand.Reader, f.p)
	if err != nil {
		t.Fatal(err)
	}
	return f.FromBig(v)
}

func randomNonZero(t testing.TB, f *Field) Element {
	t.Helper()
	for {
		e := randomElement(t, f)
		if !e.IsZero() {
			return e
		}
	}
}

func TestNew(t *testing.T) {
	for _, p := range []int64{-7, 0, 1, 2, 9, 15, 561} {
		if _, err := New(big.NewInt(p)); !errors.Is(err, ErrNotPrime) {
			t.Errorf("New(%d): expected ErrNotPrime, got %v", p, err)
		}
	}
	if _, err := New(nil); !errors.Is(err, ErrNotPrime) {
		t.Errorf("New(nil): expected ErrNotPrime, got %v", err)
	}

	f, err := New(big.NewInt(17))
	if err != nil {
		t.Fatal(err)
	}
	if f.SizeInBits() != 5 || f.ByteLen() != 1 {
		t.Errorf("unexpected sizes: bits=%d bytes=%d", f.SizeInBits(), f.ByteLen())
	}

	t.Run("ModulusIsCopied", func(t *testing.T) {
		p := big.NewInt(23)
		f := MustNew(p)
		p.SetInt64(29)
		if f.Modulus().Int64() != 23 {
			t.Error("field modulus changed with caller's integer")
		}
		f.Modulus().SetInt64(31)
		if f.Modulus().Int64() != 23 {
			t.Error("Modulus returned the internal integer")
		}
	})
}

func TestSmallField(t *testing.T) {
	f := MustNew(big.NewInt(17))

	t.Run("InverseOfFive", func(t *testing.T) {
		inv := f.FromInt64(5).Inverse()
		if inv.Big().Int64() != 7 {
			t.Errorf("5^-1 mod 17 = %s, want 7", inv)
		}
	})

	t.Run("Reduction", func(t *testing.T) {
		if got := f.FromInt64(-1).Big().Int64(); got != 16 {
			t.Errorf("-1 mod 17 = %d, want 16", got)
		}
		if got := f.FromInt64(40).Big().Int64(); got != 6 {
			t.Errorf("40 mod 17 = %d, want 6", got)
		}
	})

	t.Run("Exhaustive", func(t *testing.T) {
		one := f.One()
		zero := f.Zero()
		for i := int64(0); i < 17; i++ {
			a := f.FromInt64(i)
			if !a.Add(a.Negate()).Equal(zero) {
				t.Errorf("%d + (-%d) != 0", i, i)
			}
			if i == 0 {
				continue
			}
			if !a.Mul(a.Inverse()).Equal(one) {
				t.Errorf("%d * %d^-1 != 1", i, i)
			}
		}
	})

	t.Run("InRange", func(t *testing.T) {
		if !f.InRange(big.NewInt(0)) || !f.InRange(big.NewInt(16)) {
			t.Error("expected 0 and 16 in range")
		}
		if f.InRange(big.NewInt(17)) || f.InRange(big.NewInt(-1)) {
			t.Error("expected 17 and -1 out of range")
		}
	})
}

func TestElementArithmetic(t *testing.T) {
	f := MustNew(p256Base)
	one := f.One()
	zero := f.Zero()

	t.Run("AddSub", func(t *testing.T) {
		a := randomElement(t, f)
		b := randomElement(t, f)
		if !a.Add(b).Sub(b).Equal(a) {
			t.Error("(a+b)-b != a")
		}
		if !a.Sub(b).Equal(a.Add(b.Negate())) {
			t.Error("a-b != a+(-b)")
		}
	})

	t.Run("AdditiveInverse", func(t *testing.T) {
		a := randomElement(t, f)
		if !a.Add(a.Negate()).Equal(zero) {
			t.Error("a + (-a) != 0")
		}
		if !zero.Negate().Equal(zero) {
			t.Error("-0 != 0")
		}
	})

	t.Run("MultiplicativeInverse", func(t *testing.T) {
		for i := 0; i < 32; i++ {
			a := randomNonZero(t, f)
			if !a.Mul(a.Inverse()).Equal(one) {
				t.Fatalf("a * a^-1 != 1 for a = %s", a)
			}
		}
	})

	t.Run("SquareMatchesMul", func(t *testing.T) {
		a := randomElement(t, f)
		if !a.Square().Equal(a.Mul(a)) {
			t.Error("a^2 != a*a")
		}
	})

	t.Run("Pow", func(t *testing.T) {
		a := randomNonZero(t, f)
		if !a.Pow(big.NewInt(0)).Equal(one) {
			t.Error("a^0 != 1")
		}
		if !a.Pow(big.NewInt(1)).Equal(a) {
			t.Error("a^1 != a")
		}
		if !a.Pow(big.NewInt(2)).Equal(a.Square()) {
			t.Error("a^2 != a.Square()")
		}
		e := big.NewInt(0xdeadbeef)
		want := new(big.Int).Exp(a.Big(), e, f.p)
		if a.Pow(e).Big().Cmp(want) != 0 {
			t.Error("Pow disagrees with big.Int.Exp")
		}
		// Fermat: a^(p-1) = 1
		if !a.Pow(new(big.Int).Sub(f.p, big.NewInt(1))).Equal(one) {
			t.Error("a^(p-1) != 1")
		}
	})

	t.Run("NegativeExponentPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for negative exponent")
			}
		}()
		one.Pow(big.NewInt(-1))
	})

	t.Run("InverseOfZero", func(t *testing.T) {
		if !zero.Inverse().IsZero() {
			t.Error("expected the inverse of zero to be zero")
		}
	})
}

func TestMutableElement(t *testing.T) {
	f := MustNew(secp256k1Base)

	t.Run("MutableCopies", func(t *testing.T) {
		a := randomNonZero(t, f)
		before := a.Big()
		m := a.Mutable()
		m.SquareAssign().AddAssign(f.One())
		if a.Big().Cmp(before) != 0 {
			t.Error("mutating a copy changed the original element")
		}
		m2 := m.Mutable()
		m2.NegateAssign()
		if m.Equal(m2) {
			t.Error("Mutable on a mutable element aliased the receiver")
		}
	})

	t.Run("FixedCopies", func(t *testing.T) {
		m := f.FromInt64(3).Mutable()
		fixed := m.Fixed()
		m.MulAssign(f.FromInt64(5))
		if fixed.Big().Int64() != 3 {
			t.Error("Fixed snapshot changed after mutation")
		}
		if m.Big().Int64() != 15 {
			t.Errorf("3*5 = %s", m)
		}
	})

	t.Run("AgreesWithImmutable", func(t *testing.T) {
		a := randomElement(t, f)
		b := randomElement(t, f)

		if !a.Mutable().AddAssign(b).Equal(a.Add(b)) {
			t.Error("AddAssign mismatch")
		}
		if !a.Mutable().SubAssign(b).Equal(a.Sub(b)) {
			t.Error("SubAssign mismatch")
		}
		if !a.Mutable().MulAssign(b).Equal(a.Mul(b)) {
			t.Error("MulAssign mismatch")
		}
		if !a.Mutable().NegateAssign().Equal(a.Negate()) {
			t.Error("NegateAssign mismatch")
		}
		if !f.Zero().Mutable().SetProduct(a, b).Equal(a.Mul(b)) {
			t.Error("SetProduct mismatch")
		}
		if !f.Zero().Mutable().SetSquare(a).Equal(a.Square()) {
			t.Error("SetSquare mismatch")
		}
		if !f.Zero().Mutable().Set(a).Equal(a) {
			t.Error("Set mismatch")
		}
		if !a.Mutable().SquareN(3).Equal(a.Pow(big.NewInt(8))) {
			t.Error("SquareN(3) != a^8")
		}
	})

	t.Run("SelfMultiply", func(t *testing.T) {
		a := randomElement(t, f)
		m := a.Mutable()
		m.MulAssign(m)
		if !m.Equal(a.Square()) {
			t.Error("m *= m != a^2")
		}
	})
}

func TestMismatchedFieldsPanic(t *testing.T) {
	f := MustNew(big.NewInt(17))
	g := MustNew(big.NewInt(19))

	cases := map[string]func(){
		"Add":       func() { f.One().Add(g.One()) },
		"Mul":       func() { f.One().Mul(g.One()) },
		"Sub":       func() { f.One().Sub(g.One()) },
		"MulAssign": func() { f.One().Mutable().MulAssign(g.One()) },
		"Chain":     func() { MustNew(p256Base).Inverter().Invert(f.One()) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}

	t.Run("SameModulusDifferentInstance", func(t *testing.T) {
		h := MustNew(big.NewInt(17))
		if !f.FromInt64(3).Add(h.FromInt64(4)).Equal(f.FromInt64(7)) {
			t.Error("fields with equal moduli must interoperate")
		}
	})
}

func TestBytes(t *testing.T) {
	f := MustNew(p256Order)

	t.Run("RoundTrip", func(t *testing.T) {
		for _, length := range []int{f.ByteLen(), f.ByteLen() + 1, 64} {
			a := randomElement(t, f)
			b := a.Bytes(length)
			if len(b) != length {
				t.Fatalf("got %d bytes, want %d", len(b), length)
			}
			if !f.FromBytes(b).Equal(a) {
				t.Errorf("round trip failed for length %d", length)
			}
		}
	})

	t.Run("LittleEndian", func(t *testing.T) {
		got := f.FromInt64(0x0102).Bytes(4)
		if !bytes.Equal(got, []byte{0x02, 0x01, 0x00, 0x00}) {
			t.Errorf("got %x", got)
		}
	})

	t.Run("Truncates", func(t *testing.T) {
		got := f.FromInt64(0x010203).Bytes(2)
		if !bytes.Equal(got, []byte{0x03, 0x02}) {
			t.Errorf("got %x, want 0302", got)
		}
	})

	t.Run("PutBytesLengthMismatch", func(t *testing.T) {
		a := randomElement(t, f)
		if err := a.PutBytes(make([]byte, 31), 32); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch, got %v", err)
		}
		dst := make([]byte, 32)
		if err := a.PutBytes(dst, 32); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(dst, a.Bytes(32)) {
			t.Error("PutBytes and Bytes disagree")
		}
	})

	t.Run("AddModPowerTwo", func(t *testing.T) {
		small := MustNew(big.NewInt(65521))
		a := small.FromInt64(65000)
		b := small.FromInt64(1000)
		dst := make([]byte, 2)
		if err := a.AddModPowerTwo(b, dst, 2); err != nil {
			t.Fatal(err)
		}
		// 66000 mod 65536 = 464 = 0x01d0
		if !bytes.Equal(dst, []byte{0xd0, 0x01}) {
			t.Errorf("got %x", dst)
		}
		if err := a.AddModPowerTwo(b, dst, 3); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch, got %v", err)
		}
	})
}
