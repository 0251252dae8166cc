// Package eckey holds elliptic-curve key pairs for use with package ecdh.
//
// A [PrivateKey] is a scalar D in [1, N) together with its public point
// D*G. A [PublicKey] is a pair of affine coordinates on a named curve; it
// is deliberately not validated on construction, since key agreement
// performs full public-key validation itself and must be able to see (and
// reject) malformed peer keys.
//
// Public keys use the uncompressed SEC 1 encoding 0x04 || X || Y, with
// each coordinate big-endian and padded to the byte length of the base
// field.
package eckey
