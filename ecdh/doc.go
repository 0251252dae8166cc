// Package ecdh implements two-party elliptic-curve Diffie-Hellman key
// agreement as a stateful session.
//
// A [KeyAgreement] moves through four states:
//
//	Uninitialized -> Initialized -> PhaseComplete -> SecretExtracted
//
// [KeyAgreement.Init] binds a private key, [KeyAgreement.DoPhase] binds and
// validates the peer's public key, and one of the GenerateSecret methods
// produces the shared secret and clears the peer. Calling Init again
// starts a new agreement, so one value can serve many agreements in turn.
//
//	ka := ecdh.New()
//	if err := ka.Init(myKey); err != nil {
//		return err
//	}
//	if err := ka.DoPhase(peerKey, true); err != nil {
//		return err
//	}
//	secret, err := ka.GenerateSecret()
//
// # Validation
//
// Peer keys are fully validated before they are accepted: each coordinate
// must lie in [0, p), the point must satisfy y^2 = x^3 + ax + b, and
// multiplying it by the group order must give the identity. Field
// arithmetic for these checks is done with package field; the curve
// backend is only asked for scalar multiplication. A rejected key leaves
// the session unchanged.
//
// # Secret format
//
// The shared secret is the affine X coordinate of d*h*Q, encoded
// little-endian in ceil(bits/8) bytes where bits is the size of the base
// field. Implementations that emit big-endian secrets (RFC 5903, crypto/ecdh)
// produce the byte reversal of this value.
//
// A KeyAgreement is not safe for concurrent use. Run concurrent agreements
// on separate values.
package ecdh
