package ecdh

import (
	"crypto"
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/f3rmion/kex/curve"
	"github.com/f3rmion/kex/curves"
	"github.com/f3rmion/kex/eckey"
	"github.com/f3rmion/kex/field"
)

var log = logging.Logger("ecdh")

// TLSPremasterSecret is the only label accepted by GenerateSecretKey.
const TLSPremasterSecret = "TlsPremasterSecret"

type state int

const (
	uninitialized state = iota
	initialized
	phaseComplete
	secretExtracted
)

func (s state) String() string {
	switch s {
	case uninitialized:
		return "uninitialized"
	case initialized:
		return "initialized"
	case phaseComplete:
		return "phase complete"
	case secretExtracted:
		return "secret extracted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// KeyAgreement is an ECDH session. The zero value is ready to use and
// equivalent to the result of [New].
type KeyAgreement struct {
	state     state
	entry     *curves.Entry
	private   field.Element // private scalar in GF(n)
	peer      curve.Point
	secretLen int
}

// New returns an uninitialized session.
func New() *KeyAgreement {
	return &KeyAgreement{}
}

// Algorithm returns "ECDH".
func (ka *KeyAgreement) Algorithm() string {
	return "ECDH"
}

// Init binds the private key for the next agreement. key must be an
// *eckey.PrivateKey on a registered curve whose public half matches its
// scalar. Init may be called in any state; on success the session is
// Initialized and any bound peer is dropped. On failure the session is
// unchanged.
func (ka *KeyAgreement) Init(key crypto.PrivateKey) error {
	priv, ok := key.(*eckey.PrivateKey)
	if !ok || priv == nil {
		return fmt.Errorf("%w: %T is not an EC private key", ErrInvalidKey, key)
	}
	if priv.Curve == nil {
		return fmt.Errorf("%w: private key has no curve", ErrInvalidKey)
	}
	entry, ok := curves.For(priv.Curve)
	if !ok {
		return fmt.Errorf("%w: unsupported curve %s", ErrInvalidKey, priv.Curve.Params().Name)
	}
	if err := priv.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	ka.entry = entry
	ka.private = entry.ScalarField.FromBig(priv.D)
	ka.peer = nil
	ka.secretLen = 0
	ka.transition(initialized)
	return nil
}

// DoPhase validates and binds the peer's public key. Only single-phase
// agreement is supported, so lastPhase must be true. key must be an
// *eckey.PublicKey on the same curve as the private key.
//
// The session must be Initialized; on success it is PhaseComplete and
// [KeyAgreement.SecretLen] reports the secret size. On failure the session
// is unchanged.
func (ka *KeyAgreement) DoPhase(key crypto.PublicKey, lastPhase bool) error {
	if ka.state != initialized {
		return fmt.Errorf("%w: DoPhase called in state %s", ErrIllegalState, ka.state)
	}
	if !lastPhase {
		return fmt.Errorf("%w: only two-party agreement is supported", ErrIllegalState)
	}
	pub, ok := key.(*eckey.PublicKey)
	if !ok || pub == nil {
		return fmt.Errorf("%w: %T is not an EC public key", ErrInvalidKey, key)
	}
	if pub.Curve == nil || pub.X == nil || pub.Y == nil {
		return fmt.Errorf("%w: incomplete public key", ErrInvalidKey)
	}
	if entry, ok := curves.For(pub.Curve); !ok || entry != ka.entry {
		return fmt.Errorf("%w: public key is on %s, private key on %s",
			ErrInvalidKey, pub.Curve.Params().Name, ka.entry.Name())
	}

	point, err := ka.validate(pub)
	if err != nil {
		log.Debugf("rejected %s peer key: %v", ka.entry.Name(), err)
		return err
	}

	ka.peer = point
	ka.secretLen = ka.entry.BaseField.ByteLen()
	ka.transition(phaseComplete)
	return nil
}

// validate checks that pub is a point of the prime-order subgroup.
func (ka *KeyAgreement) validate(pub *eckey.PublicKey) (curve.Point, error) {
	c := ka.entry.Curve
	params := c.Params()
	fp := ka.entry.BaseField

	if !fp.InRange(pub.X) || !fp.InRange(pub.Y) {
		return nil, fmt.Errorf("%w: coordinate out of range", ErrInvalidKey)
	}

	// y^2 == (x^2 + a)*x + b
	x, y := fp.FromBig(pub.X), fp.FromBig(pub.Y)
	rhs := x.Square().Mutable()
	rhs.AddAssign(fp.FromBig(params.A))
	rhs.MulAssign(x)
	rhs.AddAssign(fp.FromBig(params.B))
	if !y.Square().Equal(rhs) {
		return nil, fmt.Errorf("%w: point is not on curve", ErrInvalidKey)
	}

	point := c.NewPoint(pub.X, pub.Y)
	if !c.ScalarMult(point, curve.ReverseBytes(params.N.Bytes())).IsIdentity() {
		return nil, fmt.Errorf("%w: point has incorrect order", ErrInvalidKey)
	}
	return point, nil
}

// SecretLen returns the length of the shared secret in bytes. It is zero
// until DoPhase succeeds and stays valid after the secret is extracted.
func (ka *KeyAgreement) SecretLen() int {
	return ka.secretLen
}

// GenerateSecret returns the shared secret. The session must be
// PhaseComplete; on success it is SecretExtracted and the peer is cleared.
func (ka *KeyAgreement) GenerateSecret() ([]byte, error) {
	if err := ka.requirePhase(); err != nil {
		return nil, err
	}
	secret, err := ka.derive()
	if err != nil {
		return nil, err
	}
	ka.finish()
	return secret, nil
}

// GenerateSecretInto writes the shared secret to buf[offset:] and returns
// the number of bytes written. If the space after offset is smaller than
// SecretLen it returns a *ShortBufferError, writes nothing and leaves the
// session unchanged.
func (ka *KeyAgreement) GenerateSecretInto(buf []byte, offset int) (int, error) {
	if err := ka.requirePhase(); err != nil {
		return 0, err
	}
	if offset < 0 || offset > len(buf) {
		return 0, fmt.Errorf("ecdh: offset %d outside buffer of length %d", offset, len(buf))
	}
	if available := len(buf) - offset; available < ka.secretLen {
		return 0, &ShortBufferError{Required: ka.secretLen, Available: available}
	}
	secret, err := ka.derive()
	if err != nil {
		return 0, err
	}
	n := copy(buf[offset:], secret)
	clear(secret)
	ka.finish()
	return n, nil
}

// GenerateSecretKey returns the shared secret wrapped as a key for
// algorithm, which must be [TLSPremasterSecret]. An unknown algorithm is
// reported before anything is computed and leaves the session unchanged.
func (ka *KeyAgreement) GenerateSecretKey(algorithm string) (*SecretKey, error) {
	if err := ka.requirePhase(); err != nil {
		return nil, err
	}
	if algorithm != TLSPremasterSecret {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	secret, err := ka.GenerateSecret()
	if err != nil {
		return nil, err
	}
	return &SecretKey{algorithm: algorithm, key: secret}, nil
}

func (ka *KeyAgreement) requirePhase() error {
	if ka.state != phaseComplete {
		return fmt.Errorf("%w: secret requested in state %s", ErrIllegalState, ka.state)
	}
	return nil
}

// derive computes the X coordinate of (d*h mod n)*Q without changing state.
func (ka *KeyAgreement) derive() ([]byte, error) {
	params := ka.entry.Curve.Params()
	fn := ka.entry.ScalarField

	k := ka.private.Mul(fn.FromBig(params.H))
	product := ka.entry.Curve.ScalarMult(ka.peer, k.Bytes(fn.ByteLen()))
	if product.IsIdentity() {
		log.Debugf("%s agreement produced the identity", ka.entry.Name())
		return nil, fmt.Errorf("%w: product is the neutral element", ErrInvalidKey)
	}
	x, _ := product.Affine()
	return ka.entry.BaseField.FromBig(x).Bytes(ka.secretLen), nil
}

func (ka *KeyAgreement) finish() {
	ka.peer = nil
	ka.transition(secretExtracted)
}

func (ka *KeyAgreement) transition(to state) {
	if ka.entry != nil {
		log.Debugf("%s session: %s -> %s", ka.entry.Name(), ka.state, to)
	}
	ka.state = to
}

// SecretKey is a shared secret labelled with the algorithm it is for.
type SecretKey struct {
	algorithm string
	key       []byte
}

// Algorithm returns the key's label.
func (k *SecretKey) Algorithm() string {
	return k.algorithm
}

// Bytes returns a copy of the key material, or nil once destroyed.
func (k *SecretKey) Bytes() []byte {
	if k.key == nil {
		return nil
	}
	out := make([]byte, len(k.key))
	copy(out, k.key)
	return out
}

// Destroy overwrites the key material.
func (k *SecretKey) Destroy() {
	clear(k.key)
	k.key = nil
}
