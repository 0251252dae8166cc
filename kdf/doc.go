// Package kdf turns a raw ECDH shared secret into symmetric key material.
//
// The X coordinate produced by key agreement is not uniformly distributed
// and must not be used as a key directly. A [Deriver] hashes it together
// with caller-supplied context into as many bytes as needed.
//
// Three derivers are provided:
//
//   - [SHA256Deriver]: the ANSI X9.63 / SEC 1 KDF with SHA-256
//   - [Blake2bDeriver]: the same counter construction over BLAKE2b-512
//     with a domain-separation prefix
//   - [HKDFDeriver]: HKDF-SHA256 (RFC 5869) with an optional salt
package kdf
