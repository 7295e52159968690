// This file implements radix conversion between magnitudes and digit
// strings: multiply-accumulate parsing and repeated-division formatting,
// with a bit-slicing fast path for power-of-two radixes.

package nat

import (
	"errors"
	"fmt"

	"github.com/agbru/bigint/internal/limb"
)

// MaxBase is the largest supported conversion radix.
const MaxBase = 36

// digits is the conversion alphabet; formatting emits lower case, parsing
// accepts either case.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// ErrEmptyDigits reports a digit string with no digits in it.
var ErrEmptyDigits = errors.New("nat: empty digit string")

// InvalidDigitError reports a character that is not a valid digit in the
// requested base.
type InvalidDigitError struct {
	// Char is the offending byte.
	Char byte
	// Pos is its index in the scanned string.
	Pos int
	// Base is the conversion radix in effect.
	Base int
}

// Error returns a formatted message describing the invalid digit.
func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("nat: invalid digit %q at index %d for base %d", e.Char, e.Pos, e.Base)
}

// maxPow returns (b**n, n) such that b**n is the largest power of b that
// fits in a single word.
func maxPow(b Word) (p Word, n int) {
	p, n = b, 1
	for max := limb.M / b; p <= max; {
		p *= b
		n++
	}
	return
}

// digitVal returns the numeric value of the digit character c, or MaxBase+1
// if c is not a digit. Letters are case-insensitive.
func digitVal(c byte) Word {
	switch {
	case '0' <= c && c <= '9':
		return Word(c - '0')
	case 'a' <= c && c <= 'z':
		return Word(c - 'a' + 10)
	case 'A' <= c && c <= 'Z':
		return Word(c - 'A' + 10)
	}
	return MaxBase + 1
}

// Scan sets z to the magnitude denoted by the digit string s in the given
// base and returns z. The base must be in [2, MaxBase]; the caller
// validates it. No sign or whitespace handling happens here: every byte of
// s must be a valid digit. An empty s yields ErrEmptyDigits; the first
// invalid byte yields an InvalidDigitError.
//
// Digits accumulate by repeated multiply-by-radix-then-add, batched: as
// many digits as fit in one word are folded into a single word value
// before one vector multiply-add absorbs the batch.
func (z Nat) Scan(s string, base int) (Nat, error) {
	if base < 2 || base > MaxBase {
		panic("nat: illegal scan base")
	}
	if len(s) == 0 {
		return nil, ErrEmptyDigits
	}

	b := Word(base)
	bb, dn := maxPow(b)

	z = z[:0]
	var w Word // pending batch value
	var k int  // digits in the pending batch
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= b {
			return nil, &InvalidDigitError{Char: s[i], Pos: i, Base: base}
		}
		w = w*b + d
		if k++; k == dn {
			z = z.MulWord(z, bb, w)
			w, k = 0, 0
		}
	}
	if k > 0 {
		// Partial final batch: multiply by base^k only.
		p := Word(1)
		for i := 0; i < k; i++ {
			p *= b
		}
		z = z.MulWord(z, p, w)
	}

	return z.Norm(), nil
}

// Itoa formats the magnitude x in the given base. The base must be in
// [2, MaxBase]; the caller validates it. Zero formats as "0". Power-of-two
// bases take a direct bit-slicing path; its output is identical to the
// general repeated-division path, which the conversion tests verify.
func (x Nat) Itoa(base int) string {
	if base < 2 || base > MaxBase {
		panic("nat: illegal format base")
	}
	if len(x) == 0 {
		return "0"
	}

	// Allocate the worst case: bitlen/floor(log2(base)) + 1 digits.
	lb := limb.BitLen(Word(base)) - 1
	i := x.BitLen()/lb + 1
	buf := make([]byte, i)

	if base&(base-1) == 0 {
		// Power-of-two base: slice shift bits at a time straight out of
		// the limbs, no division needed.
		shift := uint(lb)
		mask := Word(1<<shift - 1)
		w := x[0]
		nbits := uint(limb.W) // bits still usable in w

		for k := 1; k < len(x); k++ {
			// Output full words of digits, borrowing from x[k] when a
			// digit straddles the word boundary.
			for nbits >= shift {
				i--
				buf[i] = digits[w&mask]
				w >>= shift
				nbits -= shift
			}
			if nbits == 0 {
				w = x[k]
				nbits = limb.W
			} else {
				w |= x[k] << nbits
				i--
				buf[i] = digits[w&mask]
				w = x[k] >> (shift - nbits)
				nbits = limb.W - (shift - nbits)
			}
		}
		for w != 0 {
			i--
			buf[i] = digits[w&mask]
			w >>= shift
		}
	} else {
		// General path: repeatedly divide by the largest power of the
		// base that fits in a word, then peel single digits off each
		// remainder word.
		b := Word(base)
		bb, dn := maxPow(b)

		q := Nat(nil).Set(x)
		for len(q) > 0 {
			var r Word
			q, r = q.DivWord(q, bb)
			if len(q) == 0 {
				// Most-significant chunk: no leading zero digits.
				for r != 0 {
					i--
					buf[i] = digits[r%b]
					r /= b
				}
			} else {
				for j := 0; j < dn; j++ {
					i--
					buf[i] = digits[r%b]
					r /= b
				}
			}
		}
	}

	return string(buf[i:])
}
