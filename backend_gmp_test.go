//go:build gmp

package bigint

import (
	"math/rand"
	"testing"
)

// TestGMPBackendMatchesNative runs random operands through both backends
// and requires identical results, including the error cases.
func TestGMPBackendMatchesNative(t *testing.T) {
	native, ok := NewBackend("native")
	if !ok {
		t.Fatal("native backend not registered")
	}
	gmpb, ok := NewBackend("gmp")
	if !ok {
		t.Fatal("gmp backend not registered")
	}

	rng := rand.New(rand.NewSource(200))
	for i := 0; i < 200; i++ {
		x := randInt(rng, 8)
		y := randInt(rng, 8)

		if a, b := native.Add(x, y), gmpb.Add(x, y); a.Cmp(b) != 0 {
			t.Fatalf("Add(%s, %s): native %s, gmp %s", x, y, a, b)
		}
		if a, b := native.Sub(x, y), gmpb.Sub(x, y); a.Cmp(b) != 0 {
			t.Fatalf("Sub(%s, %s): native %s, gmp %s", x, y, a, b)
		}
		if a, b := native.Mul(x, y), gmpb.Mul(x, y); a.Cmp(b) != 0 {
			t.Fatalf("Mul(%s, %s): native %s, gmp %s", x, y, a, b)
		}

		if y.Sign() != 0 {
			nq, nr, err := native.QuoRem(x, y)
			if err != nil {
				t.Fatal(err)
			}
			gq, gr, err := gmpb.QuoRem(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if nq.Cmp(gq) != 0 || nr.Cmp(gr) != 0 {
				t.Fatalf("QuoRem(%s, %s): native (%s, %s), gmp (%s, %s)", x, y, nq, nr, gq, gr)
			}
		}

		if a, b := native.GCD(x, y), gmpb.GCD(x, y); a.Cmp(b) != 0 {
			t.Fatalf("GCD(%s, %s): native %s, gmp %s", x, y, a, b)
		}
	}

	// Modular exponentiation on smaller operands.
	for i := 0; i < 50; i++ {
		x := randInt(rng, 3)
		y := new(Int).Abs(randInt(rng, 1))
		m := randInt(rng, 2)
		if m.Sign() == 0 {
			m = NewInt(97)
		}
		np, err := native.ModPow(x, y, m)
		if err != nil {
			t.Fatal(err)
		}
		gp, err := gmpb.ModPow(x, y, m)
		if err != nil {
			t.Fatal(err)
		}
		if np.Cmp(gp) != 0 {
			t.Fatalf("ModPow(%s, %s, %s): native %s, gmp %s", x, y, m, np, gp)
		}
	}
}

func TestGMPBackendErrors(t *testing.T) {
	gmpb, ok := NewBackend("gmp")
	if !ok {
		t.Fatal("gmp backend not registered")
	}
	if _, _, err := gmpb.QuoRem(NewInt(1), NewInt(0)); err == nil {
		t.Error("QuoRem by zero did not fail")
	}
	if _, err := gmpb.ModPow(NewInt(2), NewInt(3), NewInt(0)); err == nil {
		t.Error("ModPow with zero modulus did not fail")
	}
	if _, err := gmpb.ModPow(NewInt(2), NewInt(-3), NewInt(7)); err == nil {
		t.Error("ModPow with negative exponent did not fail")
	}
}
