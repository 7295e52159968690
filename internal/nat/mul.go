// This file implements the multiplication engine: schoolbook multiplication
// for small operands, Karatsuba decomposition above a tunable limb-count
// threshold, and concurrent evaluation of the three Karatsuba sub-products
// for very large balanced operands.

package nat

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigint/internal/limb"
)

// Multiplication algorithm names, as reported to the observer.
const (
	AlgoSchoolbook        = "schoolbook"
	AlgoKaratsuba         = "karatsuba"
	AlgoParallelKaratsuba = "karatsuba_parallel"
)

// Thresholds are in limbs. Defaults follow the crossover points measured
// for the portable kernels; both are overridable at startup through the
// config layer and at test time for exercising every path.
var (
	karatsubaThreshold atomic.Int64
	parallelThreshold  atomic.Int64
)

const (
	// DefaultKaratsubaThreshold is the operand length in limbs at which
	// multiplication switches from schoolbook to Karatsuba. Below it the
	// O(n²) inner loop wins on constant factors; above it the O(n^1.585)
	// recursion wins.
	DefaultKaratsubaThreshold = 40

	// DefaultParallelThreshold is the operand length in limbs at which the
	// three Karatsuba sub-products are computed concurrently. Goroutine
	// overhead dominates below it.
	DefaultParallelThreshold = 8192
)

func init() {
	karatsubaThreshold.Store(DefaultKaratsubaThreshold)
	parallelThreshold.Store(DefaultParallelThreshold)
}

// SetKaratsubaThreshold overrides the schoolbook/Karatsuba crossover.
// Values below 2 are clamped to 2 to keep the recursion well-founded.
func SetKaratsubaThreshold(n int) {
	if n < 2 {
		n = 2
	}
	karatsubaThreshold.Store(int64(n))
}

// KaratsubaThreshold returns the current schoolbook/Karatsuba crossover.
func KaratsubaThreshold() int {
	return int(karatsubaThreshold.Load())
}

// SetParallelThreshold overrides the limb count above which Karatsuba
// sub-products run concurrently. Zero or negative disables parallelism.
func SetParallelThreshold(n int) {
	if n <= 0 {
		n = 1<<62 - 1
	}
	parallelThreshold.Store(int64(n))
}

// ParallelThreshold returns the current parallel dispatch threshold.
func ParallelThreshold() int {
	return int(parallelThreshold.Load())
}

// mulObserver, when set, receives the algorithm chosen for each top-level
// multiplication. The metrics layer installs a Prometheus-backed observer;
// the engine itself stays free of instrumentation dependencies.
var mulObserver atomic.Value // of func(algorithm string)

// SetMulObserver installs f as the multiplication dispatch observer.
// Passing nil removes the current observer.
func SetMulObserver(f func(algorithm string)) {
	mulObserver.Store(f)
}

func observeMul(algorithm string) {
	if f, _ := mulObserver.Load().(func(string)); f != nil {
		f(algorithm)
	}
}

// MulWord sets z = x*y + r for a single word multiplier and returns z.
func (z Nat) MulWord(x Nat, y, r Word) Nat {
	m := len(x)
	if m == 0 || y == 0 {
		return z.SetWord(r)
	}
	// m > 0

	z = z.Make(m + 1)
	z[m] = limb.MulAddVWW(z[0:m], x, y, r)

	return z.Norm()
}

// basicMul computes z = x*y by schoolbook multiplication, accumulating one
// row of partial products per word of y. z must have length len(x)+len(y)
// and is cleared first; it must not alias x or y.
func basicMul(z, x, y Nat) {
	clear(z[0 : len(x)+len(y)])
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = limb.AddMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// Mul sets z to the product x*y and returns z. The algorithm is selected
// by operand size; the result is identical regardless of the path taken.
func (z Nat) Mul(x, y Nat) Nat {
	m := len(x)
	n := len(y)

	switch {
	case m < n:
		return z.Mul(y, x)
	case m == 0 || n == 0:
		return z[:0]
	case n == 1:
		return z.MulWord(x, y[0], 0)
	}
	// m >= n > 1

	// The product is built in place; operand storage must stay intact
	// throughout, so compute into fresh storage when z aliases an operand.
	if alias(z, x) || alias(z, y) {
		z = nil
	}

	if n < KaratsubaThreshold() {
		observeMul(AlgoSchoolbook)
		z = z.Make(m + n)
		basicMul(z, x, y)
		return z.Norm()
	}

	if n >= ParallelThreshold() {
		observeMul(AlgoParallelKaratsuba)
	} else {
		observeMul(AlgoKaratsuba)
	}
	return z.karatsuba(x, y)
}

// karatsuba computes z = x*y by splitting both operands at half the longer
// length: with B = 2^(m·W),
//
//	x = x1·B + x0, y = y1·B + y0
//	x·y = x1·y1·B² + ((x0+x1)·(y0+y1) - x1·y1 - x0·y0)·B + x0·y0
//
// Three half-size products replace four; recursion bottoms out in the
// schoolbook path below the threshold. Unbalanced operands degrade
// gracefully: a half that is empty simply contributes a zero product.
func (z Nat) karatsuba(x, y Nat) Nat {
	mh := (len(x) + 1) / 2 // len(x) >= len(y), split at half the longer

	x0, x1 := x.split(mh)
	y0, y1 := y.split(mh)

	var z0, z1, z2 Nat
	if len(y) >= ParallelThreshold() {
		// The three sub-products are independent; above the parallel
		// threshold each runs on its own goroutine.
		var g errgroup.Group
		g.Go(func() error { z0 = Nat(nil).Mul(x0, y0); return nil })
		g.Go(func() error { z2 = Nat(nil).Mul(x1, y1); return nil })
		g.Go(func() error {
			xs := Nat(nil).Add(x0, x1)
			ys := Nat(nil).Add(y0, y1)
			z1 = Nat(nil).Mul(xs, ys)
			return nil
		})
		_ = g.Wait() // sub-products never fail
	} else {
		z0 = Nat(nil).Mul(x0, y0)
		z2 = Nat(nil).Mul(x1, y1)
		xs := Nat(nil).Add(x0, x1)
		ys := Nat(nil).Add(y0, y1)
		z1 = Nat(nil).Mul(xs, ys)
	}

	// z1 -= z0 + z2; non-negative because (x0+x1)(y0+y1) >= x0·y0 + x1·y1.
	z1 = z1.Sub(z1, z0)
	z1 = z1.Sub(z1, z2)

	// Recombine: z = z2·B² + z1·B + z0.
	z = z.Make(len(x) + len(y))
	clear(z)
	copy(z, z0)
	addAt(z, z1, mh)
	addAt(z, z2, 2*mh)

	return z.Norm()
}

// split returns the low m words and the remaining high words of x, both
// normalized. The halves alias x's storage and must be treated read-only.
func (x Nat) split(m int) (lo, hi Nat) {
	if len(x) <= m {
		return x.Norm(), nil
	}
	return x[:m].Norm(), x[m:].Norm()
}
