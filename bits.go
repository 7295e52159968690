// This file implements the bit operations of the public surface: shifts,
// bitwise logic, bit test, bit length and population count.
//
// Storage is sign-magnitude, but the bitwise operations behave as if
// values were infinite-precision two's complement: a negative magnitude m
// is viewed as ^(m-1) extended with infinitely many leading one bits. The
// identities below convert each signed case to magnitude operations and
// convert the result back; the two's-complement view never leaks into the
// stored representation.

package bigint

import "github.com/agbru/bigint/internal/nat"

// Lsh sets z = x << n and returns z. Shifting left inserts n zero
// low-order bits and preserves the sign.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs = z.abs.Shl(x.abs, n)
	z.neg = len(z.abs) > 0 && x.neg
	return z
}

// Rsh sets z = x >> n and returns z. This is an arithmetic shift of the
// two's-complement view: for x >= 0 low-order bits are discarded; for
// x < 0 the identity (-x) >> n == -(((x-1) >> n) + 1) keeps the result
// rounding toward negative infinity, as infinite leading one bits demand.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if x.neg {
		t := nat.Nat(nil).Sub(x.abs, nat.One)
		t = t.Shr(t, n)
		z.abs = t.Add(t, nat.One)
		z.neg = true // z cannot be zero if x is negative
		return z
	}

	z.abs = z.abs.Shr(x.abs, n)
	z.neg = false
	return z
}

// And sets z = x & y and returns z.
func (z *Int) And(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) & (-y) == ^(x-1) & ^(y-1) == ^((x-1) | (y-1)) == -(((x-1) | (y-1)) + 1)
			x1 := nat.Nat(nil).Sub(x.abs, nat.One)
			y1 := nat.Nat(nil).Sub(y.abs, nat.One)
			z.abs = z.abs.Add(z.abs.Or(x1, y1), nat.One)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}

		// x & y == x & y
		z.abs = z.abs.And(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // & is symmetric
	}

	// x & (-y) == x & ^(y-1) == x &^ (y-1)
	y1 := nat.Nat(nil).Sub(y.abs, nat.One)
	z.abs = z.abs.AndNot(x.abs, y1)
	z.neg = false
	return z
}

// AndNot sets z = x &^ y and returns z.
func (z *Int) AndNot(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) &^ (-y) == ^(x-1) &^ ^(y-1) == ^(x-1) & (y-1) == (y-1) &^ (x-1)
			x1 := nat.Nat(nil).Sub(x.abs, nat.One)
			y1 := nat.Nat(nil).Sub(y.abs, nat.One)
			z.abs = z.abs.AndNot(y1, x1)
			z.neg = false
			return z
		}

		// x &^ y == x &^ y
		z.abs = z.abs.AndNot(x.abs, y.abs)
		z.neg = false
		return z
	}

	if x.neg {
		// (-x) &^ y == ^(x-1) &^ y == ^(x-1) & ^y == ^((x-1) | y) == -(((x-1) | y) + 1)
		x1 := nat.Nat(nil).Sub(x.abs, nat.One)
		z.abs = z.abs.Add(z.abs.Or(x1, y.abs), nat.One)
		z.neg = true // z cannot be zero if x is negative and y is positive
		return z
	}

	// x &^ (-y) == x & ^(^(y-1)) == x & (y-1)
	y1 := nat.Nat(nil).Sub(y.abs, nat.One)
	z.abs = z.abs.And(x.abs, y1)
	z.neg = false
	return z
}

// Or sets z = x | y and returns z.
func (z *Int) Or(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) | (-y) == ^(x-1) | ^(y-1) == ^((x-1) & (y-1)) == -(((x-1) & (y-1)) + 1)
			x1 := nat.Nat(nil).Sub(x.abs, nat.One)
			y1 := nat.Nat(nil).Sub(y.abs, nat.One)
			z.abs = z.abs.Add(z.abs.And(x1, y1), nat.One)
			z.neg = true // z cannot be zero if x and y are negative
			return z
		}

		// x | y == x | y
		z.abs = z.abs.Or(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // | is symmetric
	}

	// x | (-y) == x | ^(y-1) == ^((y-1) &^ x) == -(((y-1) &^ x) + 1)
	y1 := nat.Nat(nil).Sub(y.abs, nat.One)
	z.abs = z.abs.Add(z.abs.AndNot(y1, x.abs), nat.One)
	z.neg = true // z cannot be zero if one of x or y is negative
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	if x.neg == y.neg {
		if x.neg {
			// (-x) ^ (-y) == ^(x-1) ^ ^(y-1) == (x-1) ^ (y-1)
			x1 := nat.Nat(nil).Sub(x.abs, nat.One)
			y1 := nat.Nat(nil).Sub(y.abs, nat.One)
			z.abs = z.abs.Xor(x1, y1)
			z.neg = false
			return z
		}

		// x ^ y == x ^ y
		z.abs = z.abs.Xor(x.abs, y.abs)
		z.neg = false
		return z
	}

	// x.neg != y.neg
	if x.neg {
		x, y = y, x // ^ is symmetric
	}

	// x ^ (-y) == x ^ ^(y-1) == ^(x ^ (y-1)) == -((x ^ (y-1)) + 1)
	y1 := nat.Nat(nil).Sub(y.abs, nat.One)
	z.abs = z.abs.Add(z.abs.Xor(x.abs, y1), nat.One)
	z.neg = true // z cannot be zero if only one of x or y is negative
	return z
}

// Not sets z = ^x and returns z.
func (z *Int) Not(x *Int) *Int {
	if x.neg {
		// ^(-x) == ^(^(x-1)) == x-1
		z.abs = z.abs.Sub(x.abs, nat.One)
		z.neg = false
		return z
	}

	// ^x == -x-1 == -(x+1)
	z.abs = z.abs.Add(x.abs, nat.One)
	z.neg = true // z cannot be zero if x is non-negative
	return z
}

// Bit returns the value of the i'th bit of x, i.e. (x>>i)&1, over the
// two's-complement view. Panics if i < 0.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		panic("bigint: negative bit index")
	}
	if x.neg {
		t := nat.Nat(nil).Sub(x.abs, nat.One)
		return t.Bit(uint(i)) ^ 1
	}
	return x.abs.Bit(uint(i))
}

// TrailingZeros returns the number of consecutive least-significant zero
// bits of x; the result for 0 is 0. The count is the same over the
// magnitude and over the two's-complement view.
func (x *Int) TrailingZeros() uint {
	return x.abs.TrailingZeros()
}

// PopCount returns the number of set bits in the magnitude of x. The
// count is a meaningful two's-complement population count only for
// x >= 0; a negative value has infinitely many one bits in its
// two's-complement view.
func (x *Int) PopCount() int {
	return x.abs.OnesCount()
}
