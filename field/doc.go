// Package field implements arithmetic in prime fields GF(p) for an odd prime p.
//
// A [Field] fixes the modulus and acts as the factory for its elements. Elements
// come in two flavours that share the read-only [Value] interface:
//
//   - [Element] is immutable. Every arithmetic method returns a new Element, so
//     values may be shared freely between goroutines.
//   - [MutableElement] is owned by the code path that created it. Its Assign and
//     Set methods overwrite the receiver in place and return it, which keeps
//     long exponentiation chains free of intermediate allocations:
//
//     t := x.Mutable()
//     t.SquareN(32).MulAssign(x)
//
// A MutableElement must not be shared while it is being modified. Convert it
// with [MutableElement.Fixed] before handing the value to other code.
//
// # Canonical form
//
// The integer returned by [Value.Big] is always in [0, p). Byte encodings are
// little-endian with a caller-chosen length; encoding into fewer bytes than
// the value needs keeps the low-order bytes, i.e. the value mod 2^(8*len).
//
// # Inversion strategies
//
// Multiplicative inversion is delegated to an [Inverter] chosen once per field
// from a registry keyed by the modulus. The generic strategy, [Fermat], raises
// the element to p-2 with the square-and-multiply loop of [Element.Pow]. For
// the base and order moduli of P-256 and secp256k1 the registry holds shorter
// addition chains that compute the same power with fewer multiplications.
// Every registered chain returns exactly what Fermat returns.
//
// Mixing elements of different fields is a programming error and panics.
package field
