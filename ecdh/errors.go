package ecdh

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned for keys of the wrong type or curve, peer
	// points that fail validation, and agreements whose product is the
	// identity. Detail is wrapped around it; test with errors.Is.
	ErrInvalidKey = errors.New("ecdh: invalid key")

	// ErrIllegalState is returned when an operation is called out of
	// sequence.
	ErrIllegalState = errors.New("ecdh: illegal state")

	// ErrUnsupportedAlgorithm is returned by GenerateSecretKey for an
	// unknown key label.
	ErrUnsupportedAlgorithm = errors.New("ecdh: unsupported secret key algorithm")
)

// ShortBufferError is returned by GenerateSecretInto when the output buffer
// cannot hold the secret.
type ShortBufferError struct {
	Required  int
	Available int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("ecdh: need %d bytes for the secret, only %d available", e.Required, e.Available)
}
