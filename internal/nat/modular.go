package nat

// ExpNN sets z = x**y mod m and returns z. The caller must guarantee a
// non-zero modulus. The exponent's bits drive a square-and-multiply loop
// from most-significant to least-significant, reducing after every
// multiplication so intermediates never exceed twice the modulus size.
func (z Nat) ExpNN(x, y, m Nat) Nat {
	if len(m) == 1 && m[0] == 1 {
		// Anything mod 1 is 0.
		return z[:0]
	}
	if len(y) == 0 {
		// x**0 == 1 for any x, including 0.
		return z.SetWord(1)
	}

	// Reduce the base first so every operand of the loop is below m.
	var scratch Nat
	_, xm := scratch.Div(nil, x, m)

	r := Nat(nil).SetWord(1)
	var t, q Nat
	for i := y.BitLen() - 1; i >= 0; i-- {
		t = t.Mul(r, r)
		q, r = q.Div(r, t, m)
		if y.Bit(uint(i)) != 0 {
			t = t.Mul(r, xm)
			q, r = q.Div(r, t, m)
		}
	}

	return z.Set(r)
}
