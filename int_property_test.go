package bigint

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInt produces arbitrary signed values spanning several limbs: a random
// int64 seed widened by a random shift so both small and multi-word
// magnitudes appear.
func genInt() gopter.Gen {
	return gopter.CombineGens(
		gen.Int64(),
		gen.UIntRange(0, 200),
	).Map(func(vals []interface{}) *Int {
		z := NewInt(vals[0].(int64))
		return z.Lsh(z, vals[1].(uint))
	})
}

// TestRingAxioms_PropertyBased verifies the commutative-ring axioms of the
// signed integers on randomly generated multi-word values: commutativity
// and associativity of addition and multiplication, the distributive law,
// and the additive inverse.
func TestRingAxioms_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b *Int) bool {
			l := new(Int).Add(a, b)
			r := new(Int).Add(b, a)
			return l.Cmp(r) == 0
		},
		genInt(), genInt(),
	))

	properties.Property("addition associates", prop.ForAll(
		func(a, b, c *Int) bool {
			l := new(Int).Add(new(Int).Add(a, b), c)
			r := new(Int).Add(a, new(Int).Add(b, c))
			return l.Cmp(r) == 0
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b *Int) bool {
			l := new(Int).Mul(a, b)
			r := new(Int).Mul(b, a)
			return l.Cmp(r) == 0
		},
		genInt(), genInt(),
	))

	properties.Property("multiplication associates", prop.ForAll(
		func(a, b, c *Int) bool {
			l := new(Int).Mul(new(Int).Mul(a, b), c)
			r := new(Int).Mul(a, new(Int).Mul(b, c))
			return l.Cmp(r) == 0
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c *Int) bool {
			l := new(Int).Mul(a, new(Int).Add(b, c))
			r := new(Int).Add(new(Int).Mul(a, b), new(Int).Mul(a, c))
			return l.Cmp(r) == 0
		},
		genInt(), genInt(), genInt(),
	))

	properties.Property("x + (-x) == 0", prop.ForAll(
		func(a *Int) bool {
			z := new(Int).Add(a, new(Int).Neg(a))
			return z.Sign() == 0
		},
		genInt(),
	))

	properties.TestingRun(t)
}

// TestDivisionIdentity_PropertyBased verifies the Euclidean identity of
// truncating division: x == q*y + r with |r| < |y| and r carrying the
// dividend's sign (or zero).
func TestDivisionIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("x == (x/y)*y + x%y with |x%y| < |y|", prop.ForAll(
		func(x, y *Int) bool {
			if y.Sign() == 0 {
				y = NewInt(1)
			}
			q, r := new(Int), new(Int)
			if _, _, err := q.QuoRem(x, y, r); err != nil {
				return false
			}
			if r.CmpAbs(y) >= 0 {
				return false
			}
			if r.Sign() != 0 && r.Sign() != x.Sign() {
				return false
			}
			back := new(Int).Mul(q, y)
			back.Add(back, r)
			return back.Cmp(x) == 0
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

// TestConversionRoundTrip_PropertyBased verifies Text/SetString round trips
// across the whole radix range and the byte-encoding round trip.
func TestConversionRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("SetString(Text(x, b), b) == x for every base", prop.ForAll(
		func(x *Int, base int) bool {
			s := x.Text(base)
			z, err := new(Int).SetString(s, base)
			return err == nil && z.Cmp(x) == 0
		},
		genInt(), gen.IntRange(2, MaxBase),
	))

	properties.Property("SetBytes(Bytes(|x|)) == |x|", prop.ForAll(
		func(x *Int) bool {
			a := new(Int).Abs(x)
			z := new(Int).SetBytes(a.Bytes())
			return z.Cmp(a) == 0
		},
		genInt(),
	))

	properties.TestingRun(t)
}

// TestGCDProperties_PropertyBased verifies that the GCD divides both
// operands, is symmetric, and is unchanged by signs.
func TestGCDProperties_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("gcd divides both operands and ignores signs", prop.ForAll(
		func(a, b *Int) bool {
			g := new(Int).GCD(a, b)
			if g.Sign() < 0 {
				return false
			}
			if g.Cmp(new(Int).GCD(b, a)) != 0 {
				return false
			}
			if g.Cmp(new(Int).GCD(new(Int).Neg(a), b)) != 0 {
				return false
			}
			if g.Sign() == 0 {
				return a.Sign() == 0 && b.Sign() == 0
			}
			for _, v := range []*Int{a, b} {
				r, err := new(Int).Rem(v, g)
				if err != nil || r.Sign() != 0 {
					return false
				}
			}
			return true
		},
		genInt(), genInt(),
	))

	properties.TestingRun(t)
}

// TestShiftProperties_PropertyBased verifies that shifting is multiplication
// and truncating-toward-negative-infinity division by powers of two.
func TestShiftProperties_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("(x << n) >> n == x", prop.ForAll(
		func(x *Int, n uint) bool {
			z := new(Int).Lsh(x, n)
			z.Rsh(z, n)
			return z.Cmp(x) == 0
		},
		genInt(), gen.UIntRange(0, 300),
	))

	properties.Property("x << n == x * 2^n", prop.ForAll(
		func(x *Int, n uint) bool {
			l := new(Int).Lsh(x, n)
			p := new(Int).Lsh(NewInt(1), n)
			r := new(Int).Mul(x, p)
			return l.Cmp(r) == 0
		},
		genInt(), gen.UIntRange(0, 300),
	))

	properties.TestingRun(t)
}
