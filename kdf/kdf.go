package kdf

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

// ErrInvalidLength is returned when the requested output length is not
// positive or exceeds what the deriver can produce.
var ErrInvalidLength = errors.New("kdf: invalid output length")

// Deriver derives key material from a shared secret.
type Deriver interface {
	// Name identifies the construction, e.g. "sha256".
	Name() string

	// Derive returns length bytes derived from secret and info.
	Derive(secret, info []byte, length int) ([]byte, error)
}

// counterKDF concatenates h(block(i)) for a 32-bit big-endian counter
// i = 1, 2, ... until length bytes are produced. write feeds one block's
// input to h.
func counterKDF(h hash.Hash, length int, write func(h hash.Hash, counter []byte)) ([]byte, error) {
	if length <= 0 || uint64(length) > uint64(h.Size())*0xffffffff {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	out := make([]byte, 0, length+h.Size())
	var counter [4]byte
	for i := uint32(1); len(out) < length; i++ {
		binary.BigEndian.PutUint32(counter[:], i)
		h.Reset()
		write(h, counter[:])
		out = h.Sum(out)
	}
	return out[:length], nil
}

// SHA256Deriver implements the X9.63 KDF with SHA-256:
// SHA256(secret || counter || info). This is the default deriver.
type SHA256Deriver struct{}

// Name implements Deriver.Name.
func (d *SHA256Deriver) Name() string { return "sha256" }

// Derive implements Deriver.Derive.
func (d *SHA256Deriver) Derive(secret, info []byte, length int) ([]byte, error) {
	return counterKDF(sha256.New(), length, func(h hash.Hash, counter []byte) {
		h.Write(secret)
		h.Write(counter)
		h.Write(info)
	})
}

// Blake2bDeriver derives keys with BLAKE2b-512 and domain separation.
//
// Block i is BLAKE2b-512(prefix || i || secret || info), i a 32-bit
// big-endian counter starting at 1.
type Blake2bDeriver struct {
	// Prefix is the domain separation prefix.
	// Default: "KEX-ECDH-BLAKE2B-v1"
	Prefix string
}

// NewBlake2bDeriver creates a Blake2bDeriver with the default prefix.
func NewBlake2bDeriver() *Blake2bDeriver {
	return &Blake2bDeriver{
		Prefix: "KEX-ECDH-BLAKE2B-v1",
	}
}

// Name implements Deriver.Name.
func (d *Blake2bDeriver) Name() string { return "blake2b" }

// Derive implements Deriver.Derive.
func (d *Blake2bDeriver) Derive(secret, info []byte, length int) ([]byte, error) {
	h, _ := blake2b.New512(nil)
	return counterKDF(h, length, func(h hash.Hash, counter []byte) {
		h.Write([]byte(d.Prefix))
		h.Write(counter)
		h.Write(secret)
		h.Write(info)
	})
}

// HKDFDeriver implements HKDF-SHA256. A nil Salt means a string of zeros,
// as in RFC 5869.
type HKDFDeriver struct {
	Salt []byte
}

// maxHKDF is the RFC 5869 limit of 255 blocks.
const maxHKDF = 255 * sha256.Size

// Name implements Deriver.Name.
func (d *HKDFDeriver) Name() string { return "hkdf" }

// Derive implements Deriver.Derive.
func (d *HKDFDeriver) Derive(secret, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > maxHKDF {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, d.Salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf expand failed: %w", err)
	}
	return out, nil
}

// ByName returns the deriver called name with default settings.
func ByName(name string) (Deriver, error) {
	switch name {
	case "sha256":
		return &SHA256Deriver{}, nil
	case "blake2b":
		return NewBlake2bDeriver(), nil
	case "hkdf":
		return &HKDFDeriver{}, nil
	}
	return nil, fmt.Errorf("kdf: unknown deriver %q", name)
}
