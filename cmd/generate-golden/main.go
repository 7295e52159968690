// Command generate-golden writes testdata/golden.json, a set of arithmetic
// vectors computed with math/big as an independent oracle. The root package
// replays the file in its golden tests.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
)

// Vector is one oracle-checked computation. All values are decimal strings.
type Vector struct {
	Op   string `json:"op"`
	X    string `json:"x"`
	Y    string `json:"y"`
	M    string `json:"m,omitempty"`
	Want string `json:"want"`
	Rem  string `json:"rem,omitempty"`
}

var vectorOps = []string{"add", "sub", "mul", "div", "rem", "gcd", "modpow"}

// computeVector fills in the oracle answer for op applied to x, y (and m for
// modpow). Division is truncating, matching big.Int Quo/Rem.
func computeVector(op string, x, y, m *big.Int) (Vector, error) {
	v := Vector{Op: op, X: x.String(), Y: y.String()}
	switch op {
	case "add":
		v.Want = new(big.Int).Add(x, y).String()
	case "sub":
		v.Want = new(big.Int).Sub(x, y).String()
	case "mul":
		v.Want = new(big.Int).Mul(x, y).String()
	case "div":
		if y.Sign() == 0 {
			return Vector{}, fmt.Errorf("zero divisor for %s", op)
		}
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))
		v.Want = q.String()
		v.Rem = r.String()
	case "rem":
		if y.Sign() == 0 {
			return Vector{}, fmt.Errorf("zero divisor for %s", op)
		}
		v.Want = new(big.Int).Rem(x, y).String()
	case "gcd":
		a := new(big.Int).Abs(x)
		b := new(big.Int).Abs(y)
		v.Want = new(big.Int).GCD(nil, nil, a, b).String()
	case "modpow":
		if m == nil || m.Sign() == 0 {
			return Vector{}, fmt.Errorf("zero modulus for %s", op)
		}
		v.M = m.String()
		v.Want = new(big.Int).Exp(x, y, m).String()
	default:
		return Vector{}, fmt.Errorf("unknown op %q", op)
	}
	return v, nil
}

// randomOperand draws a signed integer of up to maxBits bits. Small
// magnitudes come up often enough to exercise the single-limb paths.
func randomOperand(rng *rand.Rand, maxBits int) *big.Int {
	bits := 1 + rng.Intn(maxBits)
	n := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
	if rng.Intn(2) == 0 {
		n.Neg(n)
	}
	return n
}

// buildVectors produces count vectors per operation, deterministically for a
// given seed.
func buildVectors(rng *rand.Rand, count, maxBits int) []Vector {
	var vectors []Vector
	for _, op := range vectorOps {
		for n := 0; n < count; {
			x := randomOperand(rng, maxBits)
			y := randomOperand(rng, maxBits)
			var m *big.Int
			if op == "modpow" {
				// Keep exponents small and the modulus positive so the
				// oracle and the replay both finish quickly.
				y.Abs(y).Mod(y, big.NewInt(4096))
				m = new(big.Int).Abs(randomOperand(rng, maxBits))
				m.Add(m, big.NewInt(1))
			}
			v, err := computeVector(op, x, y, m)
			if err != nil {
				continue
			}
			vectors = append(vectors, v)
			n++
		}
	}
	return vectors
}

func main() {
	outPath := flag.String("out", filepath.Join("testdata", "golden.json"), "output file")
	count := flag.Int("count", 8, "vectors per operation")
	maxBits := flag.Int("max-bits", 2048, "maximum operand width in bits")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	vectors := buildVectors(rand.New(rand.NewSource(*seed)), *count, *maxBits)

	data, err := json.MarshalIndent(vectors, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d vectors to %s\n", len(vectors), *outPath)
}
