package curves

import (
	"math/big"
	"testing"

	"github.com/f3rmion/kex/curve"
	"github.com/f3rmion/kex/curve/nist"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			e, ok := Lookup(name)
			if !ok {
				t.Fatal("registered name not found")
			}
			params := e.Curve.Params()
			if e.BaseField.Modulus().Cmp(params.P) != 0 {
				t.Error("base field modulus != P")
			}
			if e.ScalarField.Modulus().Cmp(params.N) != 0 {
				t.Error("scalar field modulus != N")
			}
			if e.BaseField.SizeInBits() != params.BitSize {
				t.Errorf("base field has %d bits, curve says %d", e.BaseField.SizeInBits(), params.BitSize)
			}
		})
	}

	t.Run("Aliases", func(t *testing.T) {
		a, _ := Lookup("prime256v1")
		b, _ := Lookup("P-256")
		if a == nil || a != b {
			t.Error("prime256v1 does not resolve to P-256")
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		if _, ok := Lookup("P-224"); ok {
			t.Error("unregistered curve found")
		}
	})
}

func TestNames(t *testing.T) {
	want := []string{"P-256", "P-384", "P-521", "bn254", "secp256k1"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestInverters(t *testing.T) {
	tests := []struct {
		curve        string
		base, scalar string
	}{
		{"P-256", "p256-base", "p256-order"},
		{"secp256k1", "secp256k1-base", "secp256k1-order"},
		{"P-384", "fermat", "fermat"},
		{"bn254", "fermat", "fermat"},
	}
	for _, tt := range tests {
		t.Run(tt.curve, func(t *testing.T) {
			e, _ := Lookup(tt.curve)
			if got := e.BaseField.Inverter().Name(); got != tt.base {
				t.Errorf("base inverter = %s, want %s", got, tt.base)
			}
			if got := e.ScalarField.Inverter().Name(); got != tt.scalar {
				t.Errorf("scalar inverter = %s, want %s", got, tt.scalar)
			}
		})
	}
}

type renamed struct{ curve.Curve }

func (r renamed) Params() *curve.Params {
	p := *r.Curve.Params()
	p.Gx = new(big.Int).Add(p.Gx, big.NewInt(1))
	return &p
}

func TestFor(t *testing.T) {
	if _, ok := For(nist.P256()); !ok {
		t.Error("P-256 not found")
	}
	if _, ok := For(renamed{nist.P256()}); ok {
		t.Error("curve with foreign parameters accepted")
	}
	if _, ok := For(nil); ok {
		t.Error("nil curve accepted")
	}
}
