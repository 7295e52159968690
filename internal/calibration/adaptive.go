// This file implements the threshold measurements: candidate generation,
// timed multiplication workloads, and the search for the fastest setting.

package calibration

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/agbru/bigint/internal/limb"
	"github.com/agbru/bigint/internal/nat"
)

// Options tunes the calibration workload. The zero value selects the
// defaults; tests shrink the workload to keep runtimes low.
type Options struct {
	// MulSizes are the operand lengths (in limbs) multiplied while timing
	// Karatsuba candidates.
	MulSizes []int
	// ParallelSize is the operand length used to time parallel candidates.
	ParallelSize int
	// Iterations is the multiplication count per size per candidate.
	Iterations int
}

func (o Options) withDefaults() Options {
	if len(o.MulSizes) == 0 {
		o.MulSizes = []int{32, 48, 64, 96, 128}
	}
	if o.ParallelSize == 0 {
		o.ParallelSize = 4096
	}
	if o.Iterations == 0 {
		o.Iterations = 8
	}
	return o
}

// Result records one timed candidate.
type Result struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// GenerateKaratsubaCandidates returns the crossover candidates to measure.
// 32-bit words halve the work per limb of the schoolbook inner loop, so the
// crossover sits higher there.
func GenerateKaratsubaCandidates() []int {
	candidates := []int{16, 24, 32, 40, 56, 80}
	if 32<<(^uint(0)>>63) == 32 {
		for i := range candidates {
			candidates[i] *= 2
		}
	}
	return candidates
}

// GenerateParallelCandidates returns the parallel dispatch candidates for
// the current core count. Candidate 0 stands for sequential execution.
func GenerateParallelCandidates() []int {
	numCPU := runtime.NumCPU()
	if numCPU == 1 {
		return []int{0}
	}
	switch {
	case numCPU <= 4:
		return []int{0, 2048, 4096, 8192}
	case numCPU <= 8:
		return []int{0, 2048, 4096, 8192, 16384}
	default:
		return []int{0, 2048, 4096, 8192, 16384, 32768}
	}
}

// randomNat builds a normalized operand of exactly n limbs.
func randomNat(rng *rand.Rand, n int) nat.Nat {
	x := make(nat.Nat, n)
	for i := range x {
		x[i] = limb.Word(rng.Uint64())
	}
	x[n-1] |= 1 // keep the top limb nonzero
	return x
}

// timeWorkload multiplies random operand pairs of the given sizes under the
// currently installed thresholds and returns the total elapsed time.
func timeWorkload(ctx context.Context, rng *rand.Rand, sizes []int, iterations int) (time.Duration, error) {
	var total time.Duration
	for _, size := range sizes {
		x := randomNat(rng, size)
		y := randomNat(rng, size)
		for i := 0; i < iterations; i++ {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			start := time.Now()
			_ = nat.Nat(nil).Mul(x, y)
			total += time.Since(start)
		}
	}
	return total, nil
}

// CalibrateKaratsuba measures every crossover candidate and returns the
// fastest one together with the per-candidate timings. The engine threshold
// is restored before returning.
func CalibrateKaratsuba(ctx context.Context, opts Options) (int, []Result, error) {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(1))

	previous := nat.KaratsubaThreshold()
	defer nat.SetKaratsubaThreshold(previous)
	previousParallel := nat.ParallelThreshold()
	nat.SetParallelThreshold(0) // keep goroutine dispatch out of this measurement
	defer nat.SetParallelThreshold(previousParallel)

	best, bestDuration := 0, time.Duration(0)
	results := make([]Result, 0, len(GenerateKaratsubaCandidates()))
	for _, candidate := range GenerateKaratsubaCandidates() {
		nat.SetKaratsubaThreshold(candidate)
		elapsed, err := timeWorkload(ctx, rng, opts.MulSizes, opts.Iterations)
		results = append(results, Result{Threshold: candidate, Duration: elapsed, Err: err})
		if err != nil {
			return 0, results, err
		}
		if best == 0 || elapsed < bestDuration {
			best, bestDuration = candidate, elapsed
		}
	}
	return best, results, nil
}

// CalibrateParallel measures the parallel dispatch candidates at a large
// operand size and returns the fastest one. Candidate 0 means parallel
// dispatch loses on this machine and stays disabled.
func CalibrateParallel(ctx context.Context, opts Options) (int, []Result, error) {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(2))

	previous := nat.ParallelThreshold()
	defer nat.SetParallelThreshold(previous)

	best, bestDuration := -1, time.Duration(0)
	candidates := GenerateParallelCandidates()
	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		nat.SetParallelThreshold(candidate)
		elapsed, err := timeWorkload(ctx, rng, []int{opts.ParallelSize}, opts.Iterations)
		results = append(results, Result{Threshold: candidate, Duration: elapsed, Err: err})
		if err != nil {
			return 0, results, err
		}
		if best < 0 || elapsed < bestDuration {
			best, bestDuration = candidate, elapsed
		}
	}
	return best, results, nil
}

// Calibrate runs both measurements and assembles a profile for the current
// environment.
func Calibrate(ctx context.Context, opts Options) (*Profile, error) {
	karatsuba, _, err := CalibrateKaratsuba(ctx, opts)
	if err != nil {
		return nil, err
	}
	parallel, _, err := CalibrateParallel(ctx, opts)
	if err != nil {
		return nil, err
	}

	profile := NewProfile()
	profile.KaratsubaThreshold = karatsuba
	profile.ParallelThreshold = parallel
	return profile, nil
}
