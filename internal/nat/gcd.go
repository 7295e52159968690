package nat

// GCD sets z to the greatest common divisor of a and b and returns z.
// GCD(x, 0) == x and GCD(0, 0) == 0.
//
// This is Stein's binary GCD: common factors of two come out first with
// shifts, then each round strips the remaining factors of two from the
// even operand and replaces the larger operand by the difference, until
// one operand reaches zero.
func (z Nat) GCD(a, b Nat) Nat {
	if len(a) == 0 {
		return z.Set(b)
	}
	if len(b) == 0 {
		return z.Set(a)
	}

	u := Nat(nil).Set(a)
	v := Nat(nil).Set(b)

	// Common power of two, restored at the end.
	k := u.TrailingZeros()
	if vz := v.TrailingZeros(); vz < k {
		k = vz
	}

	u = u.Shr(u, u.TrailingZeros())
	for {
		v = v.Shr(v, v.TrailingZeros())
		// Both u and v are odd here.
		if u.Cmp(v) > 0 {
			u, v = v, u
		}
		v = v.Sub(v, u)
		if len(v) == 0 {
			break
		}
	}

	return z.Shl(u, k)
}
