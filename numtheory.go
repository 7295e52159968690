// This file implements the number-theoretic surface: greatest common
// divisor and modular exponentiation.

package bigint

import "github.com/agbru/bigint/internal/nat"

// GCD sets z to the greatest common divisor of x and y and returns z. The
// result is always non-negative; GCD(x, 0) == |x| and GCD(0, 0) == 0.
func (z *Int) GCD(x, y *Int) *Int {
	z.abs = z.abs.GCD(x.abs, y.abs)
	z.neg = false
	return z
}

// ModPow sets z = x**y mod m and returns z, with the result in [0, |m|).
// A zero modulus yields an InvalidModulusError and a negative exponent a
// NegativeExponentError; in both cases z is left unmodified.
func (z *Int) ModPow(x, y, m *Int) (*Int, error) {
	if len(m.abs) == 0 {
		return nil, &InvalidModulusError{}
	}
	if y.neg {
		return nil, &NegativeExponentError{}
	}

	// Negative base and odd exponent: |x|**y mod |m| comes out with the
	// wrong sign and must be folded back into [0, |m|). z may alias m, and
	// ExpNN writes its result through z's storage, so take the modulus
	// copy before the call clobbers it.
	fold := x.neg && y.abs.Bit(0) != 0
	var mod nat.Nat
	if fold {
		mod = nat.Nat(nil).Set(m.abs)
	}

	abs := z.abs.ExpNN(x.abs, y.abs, m.abs)
	if fold && len(abs) > 0 {
		abs = abs.Sub(mod, abs)
	}
	z.abs = abs
	z.neg = false
	return z, nil
}
