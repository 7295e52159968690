// Package bigint implements arbitrary-precision signed integer arithmetic
// over a sign-magnitude representation: a sign flag paired with a
// normalized slice of machine-word limbs, least-significant first.
//
// The zero value of Int is ready to use and represents 0. Methods follow
// the conventional receiver form
//
//	func (z *Int) Op(x, y *Int) *Int
//
// computing the operation on the operands and storing the result in z,
// which is also returned for chaining. Operations never mutate their
// operands unless the receiver is also an operand, and every result is
// canonical: no trailing zero limbs and no negative zero. Operations that
// can fail on their inputs (division, parsing, narrow conversions, modular
// exponentiation) return a typed error alongside the result instead.
//
// Int values are not safe for concurrent mutation. Concurrent reads are
// safe: operations allocate fresh buffers for results and never write to
// a shared operand.
package bigint

import "github.com/agbru/bigint/internal/nat"

// An Int represents a signed multi-precision integer.
type Int struct {
	neg bool    // sign; never true for zero
	abs nat.Nat // magnitude, least-significant limb first
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	if x < 0 {
		neg = true
		x = -x // -MinInt64 wraps to itself; the uint64 conversion below is still exact
	}
	z.abs = z.abs.SetUint64(uint64(x))
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.SetUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.Set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg sets z = -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.abs = z.abs.Set(x.abs)
	z.neg = len(z.abs) > 0 && !x.neg // zero stays non-negative
	return z
}

// Abs sets z = |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.abs = z.abs.Set(x.abs)
	z.neg = false
	return z
}

// Add sets z = x + y and returns z.
//
// Signed addition dispatches on the operand signs: equal signs add the
// magnitudes and keep the sign; opposite signs subtract the smaller
// magnitude from the larger and take the sign of the larger operand. A
// zero result is always non-negative.
func (z *Int) Add(x, y *Int) *Int {
	neg := x.neg
	if x.neg == y.neg {
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		z.abs = z.abs.Add(x.abs, y.abs)
	} else {
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		if x.abs.Cmp(y.abs) >= 0 {
			z.abs = z.abs.Sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.Sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	neg := x.neg
	if x.neg != y.neg {
		// x - (-y) == x + y
		// (-x) - y == -(x + y)
		z.abs = z.abs.Add(x.abs, y.abs)
	} else {
		// x - y == x - y == -(y - x)
		// (-x) - (-y) == y - x == -(x - y)
		if x.abs.Cmp(y.abs) >= 0 {
			z.abs = z.abs.Sub(x.abs, y.abs)
		} else {
			neg = !neg
			z.abs = z.abs.Sub(y.abs, x.abs)
		}
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Mul sets z = x * y and returns z. The product's sign is the exclusive-or
// of the operand signs; a zero factor yields the canonical non-negative
// zero.
func (z *Int) Mul(x, y *Int) *Int {
	z.abs = z.abs.Mul(x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg
	return z
}

// QuoRem sets z = x quo y and r = x rem y and returns (z, r, nil), or a
// DivisionByZeroError if y is zero, leaving z and r unmodified.
//
// The convention is truncating division: the quotient rounds toward zero,
// and the remainder's sign follows the dividend, with |r| < |y|. Together
// x == z*y + r holds exactly.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if len(y.abs) == 0 {
		return nil, nil, &DivisionByZeroError{Op: "QuoRem"}
	}

	z.abs, r.abs = z.abs.Div(r.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg // quotient rounds toward zero
	r.neg = len(r.abs) > 0 && x.neg          // remainder keeps the dividend's sign
	return z, r, nil
}

// Quo sets z = x quo y (truncated toward zero) and returns z, or a
// DivisionByZeroError if y is zero.
func (z *Int) Quo(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, &DivisionByZeroError{Op: "Quo"}
	}

	var r nat.Nat
	z.abs, _ = z.abs.Div(r, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg
	return z, nil
}

// Rem sets z = x rem y (sign of x, |z| < |y|) and returns z, or a
// DivisionByZeroError if y is zero.
func (z *Int) Rem(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, &DivisionByZeroError{Op: "Rem"}
	}

	var q nat.Nat
	_, z.abs = q.Div(z.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg
	return z, nil
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, +1 if x > y.
func (x *Int) Cmp(y *Int) int {
	// x cmp y == x cmp y
	// x cmp (-y) == x
	// (-x) cmp y == y
	// (-x) cmp (-y) == -(x cmp y)
	switch {
	case x == y:
		return 0
	case x.neg == y.neg:
		r := x.abs.Cmp(y.abs)
		if x.neg {
			r = -r
		}
		return r
	case x.neg:
		return -1
	}
	return 1
}

// CmpAbs compares the magnitudes of x and y, ignoring signs.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.Cmp(y.abs)
}

// Eq reports whether x and y represent the same value.
func (x *Int) Eq(y *Int) bool {
	return x.Cmp(y) == 0
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return len(x.abs) == 0
}

// BitLen returns the length of the magnitude of x in bits; BitLen(0) == 0.
func (x *Int) BitLen() int {
	return x.abs.BitLen()
}

// Bytes returns the big-endian byte encoding of |x|.
func (x *Int) Bytes() []byte {
	return x.abs.Bytes()
}

// SetBytes sets z to the non-negative value of the big-endian byte slice
// buf and returns z.
func (z *Int) SetBytes(buf []byte) *Int {
	z.abs = z.abs.SetBytes(buf)
	z.neg = false
	return z
}
