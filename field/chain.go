package field

import (
	"math/big"
)

var (
	p256Base       = mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	p256Order      = mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
	secp256k1Base  = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	secp256k1Order = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

// Low 128 bits of n-2 for the two group orders, consumed four bits at a time.
var (
	p256OrderTail      = nibbles("bce6faada7179e84f3b9cac2fc63254f")
	secp256k1OrderTail = nibbles("baaedce6af48a03bbfd25e8cd036413f")
)

// In the chains below xK denotes x^(2^K - 1), the power whose exponent is K
// one bits. Comments give the bits appended to the running exponent.

// block returns a^(2^n) * b as a new mutable element.
func block(a Value, n int, b Value) *MutableElement {
	return fixedOf(a).Mutable().SquareN(n).MulAssign(b)
}

// onesTo32 returns x2, x4, x8, x16 and x32.
func onesTo32(x Element) (x2, x4, x8, x16, x32 *MutableElement) {
	x2 = block(x, 1, x)
	x4 = block(x2, 2, x2)
	x8 = block(x4, 4, x4)
	x16 = block(x8, 8, x8)
	x32 = block(x16, 16, x16)
	return
}

// invertP256Base computes x^(p-2) for p = 2^256 - 2^224 + 2^192 + 2^96 - 1.
//
//	p-2 = 1{32} 0{31} 1 0{96} 1{94} 0 1
func invertP256Base(x Element) *MutableElement {
	x2, x4, x8, x16, x32 := onesTo32(x)

	t := x32.Mutable()
	t.SquareN(32).MulAssign(x) // 0{31} 1
	t.SquareN(96)              // 0{96}
	t.SquareN(32).MulAssign(x32)
	t.SquareN(32).MulAssign(x32)
	t.SquareN(16).MulAssign(x16)
	t.SquareN(8).MulAssign(x8)
	t.SquareN(4).MulAssign(x4)
	t.SquareN(2).MulAssign(x2) // 1{94} in total
	t.SquareN(2).MulAssign(x)  // 0 1
	return t
}

// invertP256Order computes x^(n-2) for the P-256 group order. The high half
// of n-2 is 1{32} 0{32} 1{64}; the low half has no structure and is handled
// with a fixed 4-bit window.
func invertP256Order(x Element) *MutableElement {
	_, _, _, _, x32 := onesTo32(x)

	t := x32.Mutable()
	t.SquareN(64).MulAssign(x32) // 0{32} 1{32}
	t.SquareN(32).MulAssign(x32) // 1{32}
	windowTail(t, x, p256OrderTail)
	return t
}

// invertSecp256k1Base computes x^(p-2) for p = 2^256 - 2^32 - 977.
//
//	p-2 = 1{223} 0 1{22} 0000 1 0 11 0 1
func invertSecp256k1Base(x Element) *MutableElement {
	x2 := block(x, 1, x)
	x3 := block(x2, 1, x)
	x6 := block(x3, 3, x3)
	x9 := block(x6, 3, x3)
	x11 := block(x9, 2, x2)
	x22 := block(x11, 11, x11)
	x44 := block(x22, 22, x22)
	x88 := block(x44, 44, x44)
	x176 := block(x88, 88, x88)
	x220 := block(x176, 44, x44)
	t := block(x220, 3, x3) // x223

	t.SquareN(23).MulAssign(x22) // 0 1{22}
	t.SquareN(5).MulAssign(x)    // 00001
	t.SquareN(3).MulAssign(x2)   // 011
	t.SquareN(2).MulAssign(x)    // 01
	return t
}

// invertSecp256k1Order computes x^(n-2) for the secp256k1 group order. The
// high half of n-2 is 1{127} 0; the low half goes through the 4-bit window.
func invertSecp256k1Order(x Element) *MutableElement {
	x2, x4, x8, x16, x32 := onesTo32(x)
	x64 := block(x32, 32, x32)
	x96 := block(x64, 32, x32)
	x112 := block(x96, 16, x16)
	x120 := block(x112, 8, x8)
	x124 := block(x120, 4, x4)
	x126 := block(x124, 2, x2)
	t := block(x126, 1, x) // x127

	t.SquareAssign() // 0
	windowTail(t, x, secp256k1OrderTail)
	return t
}

// windowTail appends the given hex digits to the exponent of t, four bits
// per step, using the table x^0 .. x^15.
func windowTail(t *MutableElement, x Element, digits []byte) {
	var table [16]Element
	table[1] = x
	table[2] = x.Square()
	for i := 3; i < len(table); i++ {
		table[i] = table[i-1].Mul(x)
	}
	for _, d := range digits {
		t.SquareN(4)
		if d != 0 {
			t.MulAssign(table[d])
		}
	}
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: bad hex constant " + s)
	}
	return v
}

// nibbles converts a hex string to its digit values, most significant first.
func nibbles(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			out[i] = c - '0'
		case c >= 'a' && c <= 'f':
			out[i] = c - 'a' + 10
		default:
			panic("field: bad hex digit in " + s)
		}
	}
	return out
}
