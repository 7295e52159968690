// This file implements the division engine: a single-word fast path and
// normalized long division (Knuth's Algorithm D) producing quotient and
// remainder one limb at a time.

package nat

import "github.com/agbru/bigint/internal/limb"

// DivWord sets z = x / y for a single non-zero word divisor and returns z
// together with the remainder word. Panics if y == 0; the signed layer
// rejects zero divisors before reaching this code.
func (z Nat) DivWord(x Nat, y Word) (q Nat, r Word) {
	if y == 0 {
		panic("nat: division by zero word")
	}
	m := len(x)
	if m == 0 {
		return z[:0], 0
	}
	// m > 0

	z = z.Make(m)
	r = limb.DivWVW(z, 0, x, y)
	return z.Norm(), r
}

// Div computes the quotient q = u / v and remainder r = u % v of two
// magnitudes and returns them; z and z2 provide reusable storage for q and
// r respectively. Panics if v is zero. On return u == q*v + r with r < v.
//
// Long division follows Knuth, The Art of Computer Programming Vol. 2,
// Algorithm 4.3.1 D: both operands are shifted left until the divisor's
// top limb has its high bit set, which bounds each estimated quotient limb
// within one of the true value; each step estimates from the remainder's
// top two limbs and the divisor's top limb, multiply-subtracts the trial
// product, and corrects downward on underflow. The remainder is shifted
// back at the end; the quotient needs no un-shift.
func (z Nat) Div(z2, u, v Nat) (q, r Nat) {
	if len(v) == 0 {
		panic("nat: division by zero")
	}

	if u.Cmp(v) < 0 {
		return z[:0], z2.Set(u)
	}

	if len(v) == 1 {
		var rw Word
		q, rw = z.DivWord(u, v[0])
		return q, z2.SetWord(rw)
	}

	return z.divLarge(z2, u, v)
}

// divLarge handles len(v) >= 2 and u >= v.
func (z Nat) divLarge(z2, u, v Nat) (q, r Nat) {
	n := len(v)
	m := len(u) - n
	// m >= 0 because u >= v

	// D1: normalize so the divisor's top bit is set.
	shift := limb.LeadingZeros(v[n-1])
	vn := limb.AcquireWords(n)
	defer limb.ReleaseWords(vn)
	if shift > 0 {
		limb.ShlVU(vn, v, shift)
	} else {
		copy(vn, v)
	}

	// The shifted dividend needs one extra high limb.
	un := limb.AcquireWords(len(u) + 1)
	defer limb.ReleaseWords(un)
	if shift > 0 {
		un[len(u)] = limb.ShlVU(un[:len(u)], u, shift)
	} else {
		copy(un, u)
		un[len(u)] = 0
	}

	q = z.Make(m + 1)

	// D2..D7: one quotient limb per iteration, most-significant first.
	for j := m; j >= 0; j-- {
		// D3: estimate q̂ from the top two limbs of the remainder window
		// and the top limb of the divisor.
		qhat := limb.M
		if un[j+n] != vn[n-1] {
			var rhat Word
			qhat, rhat = limb.DivWW(un[j+n], un[j+n-1], vn[n-1])

			// Refine against the next divisor limb: while
			// q̂·v[n-2] > r̂·B + u[j+n-2], decrement q̂. A normalized
			// divisor bounds this at two decrements.
			hi, lo := limb.MulWW(qhat, vn[n-2])
			for hi > rhat || (hi == rhat && lo > un[j+n-2]) {
				qhat--
				prevRhat := rhat
				rhat += vn[n-1]
				if rhat < prevRhat {
					// r̂ overflowed a limb; q̂·v[n-2] cannot exceed it anymore.
					break
				}
				hi, lo = limb.MulWW(qhat, vn[n-2])
			}
		}

		// D4: multiply and subtract the trial product. The returned word
		// folds the product's top limb and the propagated borrow.
		borrow := limb.SubMulVVW(un[j:j+n], vn, qhat)
		top, underflow := limb.SubWW(un[j+n], borrow, 0)
		un[j+n] = top

		// D6: the estimate was one too large; add the divisor back.
		if underflow != 0 {
			qhat--
			c := limb.AddVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
		}

		q[j] = qhat
	}

	// D8: un-normalize the remainder.
	rem := Nat(un[:n])
	if shift > 0 {
		limb.ShrVU(rem, rem, shift)
	}
	r = z2.Set(rem.Norm())

	return q.Norm(), r
}
