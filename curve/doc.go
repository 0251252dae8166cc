// Package curve defines the curve-group service used by key agreement.
//
// Key agreement never performs group arithmetic itself. It asks a [Curve]
// three kinds of questions:
//
//   - what are the curve parameters ([Params]: P, A, B, N, H, base point)?
//   - what is k*P for a little-endian scalar k ([Curve.ScalarMult])?
//   - is this point the identity, and what are its affine coordinates
//     ([Point])?
//
// Validation that a point lies on the curve is done by the caller with its
// own field arithmetic; implementations of this package trust their inputs.
//
// # Implementations
//
// Backends live in sub-packages, one per curve family:
//
//   - curve/nist: P-256, P-384 and P-521 on crypto/elliptic
//   - curve/koblitz: secp256k1 on btcec
//   - curve/bn254: the BN254 G1 group on gnark-crypto
//
// [FromElliptic] adapts any crypto/elliptic implementation.
package curve
