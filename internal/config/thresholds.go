package config

import (
	"runtime"

	"github.com/agbru/bigint/internal/nat"
)

// Threshold resolution chain (highest priority first):
//  1. CLI flags (--karatsuba-threshold, --parallel-threshold)
//  2. Environment variables (BIGCALC_KARATSUBA_THRESHOLD, etc.)
//  3. Adaptive hardware estimation (this file)
//  4. Static defaults in nat/mul.go

// ApplyAdaptiveThresholds fills in threshold values that are still at
// their zero default with hardware-based estimates, preserving any
// user-specified overrides from flags or environment.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.KaratsubaThreshold == 0 {
		cfg.KaratsubaThreshold = EstimateKaratsubaThreshold()
	}
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateParallelThreshold()
	}
	return cfg
}

// InstallThresholds pushes the resolved thresholds into the
// multiplication engine.
func InstallThresholds(cfg AppConfig) {
	nat.SetKaratsubaThreshold(cfg.KaratsubaThreshold)
	nat.SetParallelThreshold(cfg.ParallelThreshold)
}

// EstimateKaratsubaThreshold provides a heuristic estimate of the
// schoolbook/Karatsuba crossover without running benchmarks. The portable
// kernels cross over earlier on 64-bit words, where each schoolbook inner
// product does twice the work per limb.
func EstimateKaratsubaThreshold() int {
	wordSize := 32 << (^uint(0) >> 63)

	if wordSize == 64 {
		return nat.DefaultKaratsubaThreshold
	}
	return nat.DefaultKaratsubaThreshold * 2
}

// EstimateParallelThreshold provides a heuristic estimate of the limb
// count above which concurrent Karatsuba sub-products pay off. Goroutine
// dispatch is a fixed cost, so fewer cores need larger operands before
// parallelism wins.
func EstimateParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 0 // no parallelism; SetParallelThreshold(0) disables it
	case numCPU <= 2:
		return 32768
	case numCPU <= 4:
		return 16384
	case numCPU <= 8:
		return nat.DefaultParallelThreshold
	default:
		return nat.DefaultParallelThreshold / 2
	}
}
