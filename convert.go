// This file implements the signed conversion surface: radix string
// parsing and formatting, narrow machine-integer conversions, and
// double-precision float conversions with round-to-nearest-even.

package bigint

import (
	"math"

	"github.com/agbru/bigint/internal/nat"
)

// MaxBase is the largest supported conversion radix.
const MaxBase = nat.MaxBase

// SetString sets z to the value of s interpreted in the given base and
// returns z. The string may start with a sign character ("+" or "-");
// digits above 9 are letters of either case. "-0" parses to the canonical
// non-negative zero.
//
// base must be 0 or in [2, MaxBase]. For base 0 the radix is inferred
// from a prefix: "0b"/"0B" selects 2, "0o"/"0O" selects 8, "0x"/"0X"
// selects 16, otherwise 10.
//
// Failures are typed: InvalidBaseError for an unsupported base,
// EmptyInputError when no digits remain after sign and prefix, and
// InvalidDigitError for the first character invalid in the radix. On
// error z is left unmodified.
func (z *Int) SetString(s string, base int) (*Int, error) {
	if base != 0 && (base < 2 || base > MaxBase) {
		return nil, &InvalidBaseError{Base: base}
	}

	rest := s
	neg := false
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}

	if base == 0 {
		base = 10
		if len(rest) >= 2 && rest[0] == '0' {
			switch rest[1] {
			case 'b', 'B':
				base, rest = 2, rest[2:]
			case 'o', 'O':
				base, rest = 8, rest[2:]
			case 'x', 'X':
				base, rest = 16, rest[2:]
			}
		}
	}

	abs, err := z.abs.Scan(rest, base)
	if err != nil {
		return nil, translateScanError(err, len(s)-len(rest))
	}

	z.abs = abs
	z.neg = len(z.abs) > 0 && neg // "-0" collapses to canonical zero
	return z, nil
}

// ParseInt is a convenience constructor: it allocates a new Int and parses
// s in the given base as SetString does.
func ParseInt(s string, base int) (*Int, error) {
	return new(Int).SetString(s, base)
}

// Text returns the string representation of x in the given base, using
// lower-case letters for digits above 9 and a leading "-" for negative
// values. Zero formats as "0" in every base.
//
// The base is a programmer-supplied constant, not input data: Text panics
// if it lies outside [2, MaxBase].
func (x *Int) Text(base int) string {
	if base < 2 || base > MaxBase {
		panic("bigint: invalid format base")
	}
	s := x.abs.Itoa(base)
	if x.neg {
		return "-" + s
	}
	return s
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	return x.Text(10)
}

// IsInt64 reports whether x fits in an int64.
func (x *Int) IsInt64() bool {
	_, err := x.Int64()
	return err == nil
}

// Int64 returns the value of x as an int64, or an OverflowError if x does
// not fit.
func (x *Int) Int64() (int64, error) {
	if x.abs.BitLen() > 64 {
		return 0, &OverflowError{Type: "int64"}
	}
	v := x.abs.Uint64()
	if x.neg {
		if v > 1<<63 {
			return 0, &OverflowError{Type: "int64"}
		}
		// v == 1<<63 is exactly MinInt64; the conversion wraps to it and
		// the negation is then a no-op.
		return -int64(v), nil
	}
	if v > math.MaxInt64 {
		return 0, &OverflowError{Type: "int64"}
	}
	return int64(v), nil
}

// IsUint64 reports whether x fits in a uint64.
func (x *Int) IsUint64() bool {
	_, err := x.Uint64()
	return err == nil
}

// Uint64 returns the value of x as a uint64, or an OverflowError if x is
// negative or does not fit.
func (x *Int) Uint64() (uint64, error) {
	if x.neg || x.abs.BitLen() > 64 {
		return 0, &OverflowError{Type: "uint64"}
	}
	return x.abs.Uint64(), nil
}

// Float64 returns the float64 value nearest to x, rounding halfway cases
// to even. Values beyond the float64 range return an infinity of the
// appropriate sign.
func (x *Int) Float64() float64 {
	n := x.abs.BitLen()

	var f float64
	if n <= 53 {
		// Exactly representable; the low word(s) hold every bit.
		f = float64(x.abs.Uint64())
	} else {
		// Keep the top 53 bits plus a guard bit; everything below the
		// guard folds into a sticky bit for the round-to-even decision.
		s := uint(n - 54)
		top := nat.Nat(nil).Shr(x.abs, s)
		v := top.Uint64() // 54 bits: mantissa plus guard
		sticky := x.abs.Sticky(s)

		mant := v >> 1
		if v&1 != 0 && (sticky != 0 || mant&1 != 0) {
			mant++ // round up; a mantissa overflow renormalizes in Ldexp
		}
		f = math.Ldexp(float64(mant), n-53) // ±Inf on exponent overflow
	}

	if x.neg {
		f = -f
	}
	return f
}

// SetFloat64 sets z to the integer part of f (truncated toward zero) and
// returns z. A NaN or infinite input yields a NotFiniteError and leaves z
// unmodified.
func (z *Int) SetFloat64(f float64) (*Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &NotFiniteError{Value: f}
	}

	f = math.Trunc(f)
	neg := math.Signbit(f)
	f = math.Abs(f)
	if f < 1 {
		z.abs = z.abs[:0]
		z.neg = false
		return z, nil
	}

	// f == fr * 2^exp with fr in [0.5, 1); scale fr to a 53-bit integer
	// mantissa. f is an integer, so any bits the down-shift discards are
	// zero and the result is exact.
	fr, exp := math.Frexp(f)
	mant := uint64(math.Ldexp(fr, 53))
	z.abs = z.abs.SetUint64(mant)
	switch {
	case exp > 53:
		z.abs = z.abs.Shl(z.abs, uint(exp-53))
	case exp < 53:
		z.abs = z.abs.Shr(z.abs, uint(53-exp))
	}
	z.neg = neg
	return z, nil
}
