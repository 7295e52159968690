//go:build gmp

// This file provides a GMP-backed Backend, conditionally compiled with the
// "gmp" build tag. The build tag architecture ensures that:
//   - The module builds without GMP by default, using the native engine
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase stays portable across systems without libgmp installed
//
// System requirements:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//
// The backend exists for performance comparison and differential testing
// against the native engine; correctness never depends on it.

package bigint

import "github.com/ncw/gmp"

func init() {
	RegisterBackend("gmp", func() Backend { return gmpBackend{} })
}

// gmpBackend implements the Backend contract on top of the GMP library's
// highly optimized assembly routines via github.com/ncw/gmp. Operands
// cross the boundary as big-endian magnitude bytes plus a sign; results
// cross back the same way.
type gmpBackend struct{}

// Name returns the backend description.
func (gmpBackend) Name() string { return "gmp (libgmp via cgo)" }

// toGMP converts an Int to a gmp.Int.
func toGMP(x *Int) *gmp.Int {
	g := new(gmp.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		g.Neg(g)
	}
	return g
}

// fromGMP converts a gmp.Int back to an Int.
func fromGMP(g *gmp.Int) *Int {
	z := new(Int).SetBytes(g.Bytes())
	if g.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

// Add returns x + y.
func (gmpBackend) Add(x, y *Int) *Int {
	return fromGMP(new(gmp.Int).Add(toGMP(x), toGMP(y)))
}

// Sub returns x - y.
func (gmpBackend) Sub(x, y *Int) *Int {
	return fromGMP(new(gmp.Int).Sub(toGMP(x), toGMP(y)))
}

// Mul returns x * y.
func (gmpBackend) Mul(x, y *Int) *Int {
	return fromGMP(new(gmp.Int).Mul(toGMP(x), toGMP(y)))
}

// QuoRem returns the truncating quotient and remainder of x and y. The
// zero-divisor check happens on this side of the boundary; GMP would
// abort the process otherwise.
func (gmpBackend) QuoRem(x, y *Int) (*Int, *Int, error) {
	if y.Sign() == 0 {
		return nil, nil, &DivisionByZeroError{Op: "QuoRem"}
	}
	q, r := new(gmp.Int).QuoRem(toGMP(x), toGMP(y), new(gmp.Int))
	return fromGMP(q), fromGMP(r), nil
}

// GCD returns the non-negative greatest common divisor of x and y.
func (gmpBackend) GCD(x, y *Int) *Int {
	a := toGMP(x)
	b := toGMP(y)
	a.Abs(a)
	b.Abs(b)
	if a.Sign() == 0 {
		return fromGMP(b)
	}
	if b.Sign() == 0 {
		return fromGMP(a)
	}
	return fromGMP(new(gmp.Int).GCD(nil, nil, a, b))
}

// ModPow returns x**y mod m in [0, |m|).
func (gmpBackend) ModPow(x, y, m *Int) (*Int, error) {
	if m.Sign() == 0 {
		return nil, &InvalidModulusError{}
	}
	if y.Sign() < 0 {
		return nil, &NegativeExponentError{}
	}
	return fromGMP(new(gmp.Int).Exp(toGMP(x), toGMP(y), toGMP(m))), nil
}
