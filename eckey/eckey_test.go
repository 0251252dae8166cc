package eckey

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/f3rmion/kex/curve"
	"github.com/f3rmion/kex/curve/bn254"
	"github.com/f3rmion/kex/curve/koblitz"
	"github.com/f3rmion/kex/curve/nist"
)

var testCurves = []curve.Curve{
	nist.P256(),
	nist.P521(),
	koblitz.Secp256k1(),
	bn254.G1(),
}

func TestGenerateKey(t *testing.T) {
	for _, c := range testCurves {
		t.Run(c.Params().Name, func(t *testing.T) {
			k, err := GenerateKey(c, rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			if err := k.Validate(); err != nil {
				t.Errorf("generated key does not validate: %v", err)
			}
			if k.D.Sign() <= 0 || k.D.Cmp(c.Params().N) >= 0 {
				t.Error("scalar out of range")
			}
		})
	}
}

func TestGenerateKeyShortRead(t *testing.T) {
	_, err := GenerateKey(nist.P256(), bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Error("expected error from short random source")
	}
}

func TestNewPrivateKey(t *testing.T) {
	c := nist.P256()
	n := c.Params().N

	t.Run("One", func(t *testing.T) {
		k, err := NewPrivateKey(c, big.NewInt(1))
		if err != nil {
			t.Fatal(err)
		}
		if k.X.Cmp(c.Params().Gx) != 0 || k.Y.Cmp(c.Params().Gy) != 0 {
			t.Error("1*G != G")
		}
	})

	for _, d := range []*big.Int{big.NewInt(0), big.NewInt(-1), n, new(big.Int).Add(n, big.NewInt(1))} {
		if _, err := NewPrivateKey(c, d); !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("NewPrivateKey(%v): got %v, want ErrInvalidScalar", d, err)
		}
	}
}

func TestValidate(t *testing.T) {
	c := koblitz.Secp256k1()
	k, err := GenerateKey(c, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("WrongPublic", func(t *testing.T) {
		bad := *k
		bad.X = new(big.Int).Add(k.X, big.NewInt(1))
		if err := bad.Validate(); !errors.Is(err, ErrKeyMismatch) {
			t.Errorf("got %v, want ErrKeyMismatch", err)
		}
	})

	t.Run("ScalarOutOfRange", func(t *testing.T) {
		bad := *k
		bad.D = new(big.Int).Set(c.Params().N)
		if err := bad.Validate(); !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("got %v, want ErrInvalidScalar", err)
		}
	})

	t.Run("Incomplete", func(t *testing.T) {
		if err := (&PrivateKey{}).Validate(); err == nil {
			t.Error("empty key validated")
		}
	})
}

func TestEncoding(t *testing.T) {
	for _, c := range testCurves {
		t.Run(c.Params().Name, func(t *testing.T) {
			k, err := GenerateKey(c, rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			enc := k.PublicKey.Bytes()
			size := (c.Params().BitSize + 7) / 8
			if len(enc) != 1+2*size || enc[0] != 4 {
				t.Fatalf("bad encoding %x", enc)
			}
			pub, err := ParsePublicKey(c, enc)
			if err != nil {
				t.Fatal(err)
			}
			if !pub.Equal(&k.PublicKey) {
				t.Error("decoded key differs")
			}
		})
	}

	c := nist.P256()
	k, _ := GenerateKey(c, rand.Reader)
	enc := k.PublicKey.Bytes()

	t.Run("Length", func(t *testing.T) {
		if _, err := ParsePublicKey(c, enc[:len(enc)-1]); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("Compressed", func(t *testing.T) {
		bad := bytes.Clone(enc)
		bad[0] = 2
		if _, err := ParsePublicKey(c, bad); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("CoordinateTooLarge", func(t *testing.T) {
		bad := bytes.Clone(enc)
		c.Params().P.FillBytes(bad[1:33])
		if _, err := ParsePublicKey(c, bad); !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("NotOnCurveIsAccepted", func(t *testing.T) {
		bad := bytes.Clone(enc)
		bad[len(bad)-1] ^= 1
		if _, err := ParsePublicKey(c, bad); err != nil {
			t.Errorf("encoding-only parse rejected point: %v", err)
		}
	})
}

func TestPublic(t *testing.T) {
	k, _ := GenerateKey(nist.P384(), rand.Reader)
	pub, ok := k.Public().(*PublicKey)
	if !ok || !pub.Equal(&k.PublicKey) {
		t.Error("Public() does not return the public half")
	}
	other, _ := GenerateKey(nist.P384(), rand.Reader)
	if pub.Equal(&other.PublicKey) {
		t.Error("distinct keys compare equal")
	}
}
