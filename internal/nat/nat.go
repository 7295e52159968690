// Package nat implements arbitrary-precision unsigned integers
// ("magnitudes") as normalized slices of machine words, least-significant
// word first. It is the storage and algorithm layer beneath the public
// signed Int type: comparison, carry-chain addition and subtraction,
// shifts, magnitude bitwise logic, size-dispatched multiplication, long
// division, radix conversion, binary GCD and modular exponentiation.
//
// Representation invariants:
//   - A Nat never has trailing zero words: the most-significant word of a
//     non-zero value is non-zero.
//   - Zero is the empty (or nil) slice. There is exactly one canonical
//     form per value.
//
// Operations return a normalized result built on the receiver's storage
// when its capacity suffices, growing geometrically otherwise. A result
// never aliases an operand's words except where an operation documents
// in-place safety. Nats are not safe for concurrent mutation; read-only
// concurrent use is safe because operands are never written.
package nat

import "github.com/agbru/bigint/internal/limb"

// Word is a single limb of a magnitude.
type Word = limb.Word

// Nat is an unsigned multi-precision integer.
type Nat []Word

// One is the magnitude 1. Treat as read-only.
var One = Nat{1}

// Make returns a Nat of length n, reusing the receiver's storage when its
// capacity allows. Otherwise a fresh buffer with headroom is allocated so
// repeated growth amortizes; capacity never shrinks.
func (z Nat) Make(n int) Nat {
	if n <= cap(z) {
		return z[:n]
	}
	// A few words of headroom absorb the carry word most arithmetic
	// results need without immediately reallocating.
	const e = 4
	return make(Nat, n, n+e)
}

// Norm trims trailing zero words from the high end, restoring the
// canonical form. The zero value normalizes to an empty slice.
func (z Nat) Norm() Nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// SetWord sets z to the single-word value x.
func (z Nat) SetWord(x Word) Nat {
	if x == 0 {
		return z[:0]
	}
	z = z.Make(1)
	z[0] = x
	return z
}

// SetUint64 sets z to x, splitting across two words on 32-bit platforms.
func (z Nat) SetUint64(x uint64) Nat {
	if w := Word(x); uint64(w) == x {
		return z.SetWord(w)
	}
	// 32-bit platform: high half does not fit in one word.
	z = z.Make(2)
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z
}

// Set sets z to a copy of x.
func (z Nat) Set(x Nat) Nat {
	z = z.Make(len(x))
	copy(z, x)
	return z
}

// Uint64 returns the low 64 bits of x.
func (x Nat) Uint64() uint64 {
	if len(x) == 0 {
		return 0
	}
	v := uint64(x[0])
	if limb.W == 32 && len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

// Cmp compares two magnitudes: -1 if x < y, 0 if x == y, +1 if x > y.
// Lengths are compared first; equal lengths compare word-by-word from the
// most-significant end. This is a total order.
func (x Nat) Cmp(y Nat) int {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			return -1
		case m > n:
			return 1
		}
		return 0
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		return -1
	case x[i] > y[i]:
		return 1
	}
	return 0
}

// Add sets z to the sum x + y and returns z. The result may be one word
// longer than the longer operand.
func (z Nat) Add(x, y Nat) Nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.Add(y, x)
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	// m >= n > 0

	z = z.Make(m + 1)
	c := limb.AddVV(z[0:n], x, y)
	if m > n {
		c = limb.AddVW(z[n:m], x[n:], c)
	}
	z[m] = c

	return z.Norm()
}

// Sub sets z to the difference x - y and returns z. The caller must
// guarantee x >= y; Sub panics on borrow-out, which under that contract
// cannot happen. Signed subtraction is the caller's concern: compare
// magnitudes first and swap operands and sign as needed.
func (z Nat) Sub(x, y Nat) Nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		panic("nat: underflow in subtraction")
	case m == 0:
		// n == 0 because m >= n; result is 0
		return z[:0]
	case n == 0:
		return z.Set(x)
	}
	// m >= n > 0

	z = z.Make(m)
	c := limb.SubVV(z[0:n], x, y)
	if m > n {
		c = limb.SubVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("nat: underflow in subtraction")
	}

	return z.Norm()
}

// BitLen returns the length of x in bits; the bit length of 0 is 0.
func (x Nat) BitLen() int {
	if i := len(x) - 1; i >= 0 {
		return i*limb.W + limb.BitLen(x[i])
	}
	return 0
}

// TrailingZeros returns the number of consecutive least-significant zero
// bits of x; the result for 0 is 0.
func (x Nat) TrailingZeros() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*limb.W + limb.TrailingZeros(w)
		}
	}
	return 0
}

// Bit returns the value of the i'th bit of x.
func (x Nat) Bit(i uint) uint {
	j := i / limb.W
	if j >= uint(len(x)) {
		return 0
	}
	return uint(x[j] >> (i % limb.W) & 1)
}

// Sticky reports whether any of the i least-significant bits of x is set.
// Used by the float conversion to decide round-to-nearest-even ties.
func (x Nat) Sticky(i uint) uint {
	j := i / limb.W
	if j >= uint(len(x)) {
		if len(x) == 0 {
			return 0
		}
		return 1
	}
	for _, w := range x[:j] {
		if w != 0 {
			return 1
		}
	}
	if x[j]<<(limb.W-i%limb.W) != 0 {
		return 1
	}
	return 0
}

// OnesCount returns the number of set bits in x.
func (x Nat) OnesCount() int {
	var n int
	for _, w := range x {
		n += limb.OnesCount(w)
	}
	return n
}

// Shl sets z to x << s and returns z.
func (z Nat) Shl(x Nat, s uint) Nat {
	if s == 0 {
		return z.Set(x)
	}
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	// m > 0

	n := m + int(s/limb.W)
	z = z.Make(n + 1)
	if bs := s % limb.W; bs == 0 {
		copy(z[n-m:n], x)
		z[n] = 0
	} else {
		z[n] = limb.ShlVU(z[n-m:n], x, bs)
	}
	clear(z[:n-m])

	return z.Norm()
}

// Shr sets z to x >> s and returns z. Low-order bits are discarded; this
// is a magnitude shift, not a two's-complement arithmetic shift.
func (z Nat) Shr(x Nat, s uint) Nat {
	m := len(x)
	n := m - int(s/limb.W)
	if n <= 0 {
		return z[:0]
	}
	// n > 0

	z = z.Make(n)
	if bs := s % limb.W; bs == 0 {
		copy(z, x[m-n:])
	} else {
		limb.ShrVU(z, x[m-n:], bs)
	}

	return z.Norm()
}

// And sets z = x & y over magnitudes and returns z.
func (z Nat) And(x, y Nat) Nat {
	m := len(x)
	n := len(y)
	if m > n {
		m = n
	}
	// m <= n

	z = z.Make(m)
	for i := 0; i < m; i++ {
		z[i] = x[i] & y[i]
	}

	return z.Norm()
}

// AndNot sets z = x &^ y over magnitudes and returns z.
func (z Nat) AndNot(x, y Nat) Nat {
	m := len(x)
	n := len(y)
	if n > m {
		n = m
	}
	// n <= m

	z = z.Make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:m], x[n:m])

	return z.Norm()
}

// Or sets z = x | y over magnitudes and returns z.
func (z Nat) Or(x, y Nat) Nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	z = z.Make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[n:m], s[n:m])

	return z.Norm()
}

// Xor sets z = x ^ y over magnitudes and returns z.
func (z Nat) Xor(x, y Nat) Nat {
	m := len(x)
	n := len(y)
	s := x
	if m < n {
		n, m = m, n
		s = y
	}
	// m >= n

	z = z.Make(m)
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[n:m], s[n:m])

	return z.Norm()
}

// Bytes returns the big-endian byte encoding of x; zero encodes to an
// empty slice.
func (x Nat) Bytes() []byte {
	buf := make([]byte, len(x)*limb.W/8)
	i := len(buf)
	for _, w := range x {
		for j := 0; j < limb.W/8; j++ {
			i--
			buf[i] = byte(w)
			w >>= 8
		}
	}

	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// SetBytes sets z to the value of the big-endian byte slice buf.
func (z Nat) SetBytes(buf []byte) Nat {
	const s = limb.W / 8
	z = z.Make((len(buf) + s - 1) / s)

	k := 0
	for i := len(buf); i >= s; i -= s {
		var w Word
		for j := i - s; j < i; j++ {
			w = w<<8 | Word(buf[j])
		}
		z[k] = w
		k++
	}
	if i := len(buf) % s; i > 0 {
		var w Word
		for j := 0; j < i; j++ {
			w = w<<8 | Word(buf[j])
		}
		z[k] = w
	}

	return z.Norm()
}

// addAt accumulates x into z at word offset i: z += x << (i*W). The slice
// z must be long enough to absorb the carry; callers size the result
// buffer to the full product length beforehand.
func addAt(z, x Nat, i int) {
	if n := len(x); n > 0 {
		if c := limb.AddVV(z[i:i+n], z[i:], x); c != 0 {
			j := i + n
			if j < len(z) {
				limb.AddVW(z[j:], z[j:], c)
			}
		}
	}
}

// alias reports whether x and y share storage.
func alias(x, y Nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}
