// Package limb provides the elementary multi-precision arithmetic kernels
// that the magnitude layer composes: carry-propagating vector addition and
// subtraction, shifts, multiply-accumulate and single-word division over
// slices of machine words.
//
// All kernels are portable Go built on math/bits. They operate on the
// least-significant-word-first representation used throughout the engine
// and never allocate; callers own every slice they pass in.
package limb

import "math/bits"

// Word is a single digit of a multi-precision unsigned integer.
type Word uint

const (
	// W is the word width in bits (32 or 64 depending on the platform).
	W = bits.UintSize

	// M is the all-ones word, the largest representable limb value.
	M Word = ^Word(0)
)

// ─────────────────────────────────────────────────────────────────────────────
// Single-word primitives
// ─────────────────────────────────────────────────────────────────────────────

// AddWW returns z = x + y + c and the outgoing carry. The incoming carry
// must be 0 or 1.
func AddWW(x, y, c Word) (z, cout Word) {
	zz, carry := bits.Add(uint(x), uint(y), uint(c))
	return Word(zz), Word(carry)
}

// SubWW returns z = x - y - b and the outgoing borrow. The incoming borrow
// must be 0 or 1.
func SubWW(x, y, b Word) (z, bout Word) {
	zz, borrow := bits.Sub(uint(x), uint(y), uint(b))
	return Word(zz), Word(borrow)
}

// MulWW returns the double-width product x*y as (hi, lo).
func MulWW(x, y Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	return Word(h), Word(l)
}

// MulAddWWW returns x*y + c as a double-width (hi, lo) pair. The addition
// cannot overflow the pair: (2^W-1)² + (2^W-1) < 2^(2W).
func MulAddWWW(x, y, c Word) (hi, lo Word) {
	h, l := bits.Mul(uint(x), uint(y))
	lo = Word(l) + c
	if lo < c {
		h++
	}
	return Word(h), lo
}

// DivWW returns the quotient and remainder of (u1<<W + u0) / v.
// The caller must guarantee u1 < v, otherwise the quotient would not fit
// in a single word.
func DivWW(u1, u0, v Word) (q, r Word) {
	qq, rr := bits.Div(uint(u1), uint(u0), uint(v))
	return Word(qq), Word(rr)
}

// BitLen returns the number of bits required to represent x; BitLen(0) == 0.
func BitLen(x Word) int {
	return bits.Len(uint(x))
}

// TrailingZeros returns the number of trailing zero bits in x;
// TrailingZeros(0) == W.
func TrailingZeros(x Word) uint {
	return uint(bits.TrailingZeros(uint(x)))
}

// OnesCount returns the number of set bits in x.
func OnesCount(x Word) int {
	return bits.OnesCount(uint(x))
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros(x Word) uint {
	return uint(bits.LeadingZeros(uint(x)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Vector kernels
// ─────────────────────────────────────────────────────────────────────────────
//
// The z, x and y slices must have equal length where an operation is
// element-wise. z may alias x (and y where symmetry allows); the kernels
// walk limbs from least-significant to most-significant so in-place use
// with identical offsets is safe.

// AddVV computes z = x + y element-wise and returns the outgoing carry.
func AddVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = AddWW(x[i], y[i], c)
	}
	return
}

// SubVV computes z = x - y element-wise and returns the outgoing borrow.
func SubVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = SubWW(x[i], y[i], c)
	}
	return
}

// AddVW computes z = x + y for a single word y and returns the carry.
func AddVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		z[i], c = AddWW(x[i], c, 0)
	}
	return
}

// SubVW computes z = x - y for a single word y and returns the borrow.
func SubVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		z[i], c = SubWW(x[i], c, 0)
	}
	return
}

// ShlVU computes z = x << s for 0 < s < W and returns the bits shifted out
// of the most-significant word. len(z) must equal len(x).
func ShlVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		ŝ := W - s
		w1 := x[n-1]
		c = w1 >> ŝ
		for i := n - 1; i > 0; i-- {
			w := w1
			w1 = x[i-1]
			z[i] = w<<s | w1>>ŝ
		}
		z[0] = w1 << s
	}
	return
}

// ShrVU computes z = x >> s for 0 < s < W and returns the bits shifted out
// of the least-significant word. len(z) must equal len(x).
func ShrVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		ŝ := W - s
		w1 := x[0]
		c = w1 << ŝ
		for i := 0; i < n-1; i++ {
			w := w1
			w1 = x[i+1]
			z[i] = w>>s | w1<<ŝ
		}
		z[n-1] = w1 >> s
	}
	return
}

// MulAddVWW computes z = x*y + r and returns the carry word.
func MulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = MulAddWWW(x[i], y, c)
	}
	return
}

// AddMulVVW computes z += x*y and returns the carry word. This is the inner
// loop of schoolbook multiplication: each partial product is accumulated in
// a double-width pair before one result limb is emitted.
func AddMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		hi, lo := MulAddWWW(x[i], y, z[i])
		z[i], c = AddWW(lo, c, 0)
		c += hi
	}
	return
}

// SubMulVVW computes z -= x*y and returns the borrow word. This is the
// multiply-and-subtract step of long division: a trial product q̂*v is
// removed from the current remainder window in one pass.
func SubMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		hi, lo := MulAddWWW(x[i], y, c)
		sub, borrow := SubWW(z[i], lo, 0)
		z[i] = sub
		c = hi + borrow
	}
	return
}

// DivWVW computes z = (xn<<(W*len(x)) + x) / y and returns the remainder.
// z and x may be the same slice. The caller must guarantee xn < y.
func DivWVW(z []Word, xn Word, x []Word, y Word) (r Word) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = DivWW(r, x[i], y)
	}
	return
}
