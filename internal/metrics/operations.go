// Package metrics exposes Prometheus instrumentation for the arithmetic
// engine: operation counters, multiplication algorithm dispatch counts and
// operand size distributions, plus runtime memory snapshots.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/agbru/bigint/internal/nat"
)

var (
	// OperationsTotal counts completed public operations by name.
	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigcalc",
		Name:      "operations_total",
		Help:      "Completed arithmetic operations by name.",
	}, []string{"operation"})

	// OperationErrorsTotal counts failed operations by name.
	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigcalc",
		Name:      "operation_errors_total",
		Help:      "Failed arithmetic operations by name.",
	}, []string{"operation"})

	// MulAlgorithmTotal counts top-level multiplications by the algorithm
	// the engine dispatched to.
	MulAlgorithmTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigcalc",
		Name:      "mul_algorithm_total",
		Help:      "Multiplication dispatches by algorithm.",
	}, []string{"algorithm"})

	// OperandBits tracks the bit length of operands entering the engine.
	OperandBits = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bigcalc",
		Name:      "operand_bits",
		Help:      "Bit length of operation operands.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 12), // 64 bits .. ~256 Mbit
	})

	// OperationSeconds tracks wall time per operation.
	OperationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bigcalc",
		Name:      "operation_duration_seconds",
		Help:      "Wall-clock duration of arithmetic operations.",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8), // 1µs .. 10s
	}, []string{"operation"})
)

// InstallMulObserver wires the multiplication engine's dispatch hook to the
// MulAlgorithmTotal counter. Call once at startup; the engine itself has no
// Prometheus dependency.
func InstallMulObserver() {
	nat.SetMulObserver(func(algorithm string) {
		MulAlgorithmTotal.WithLabelValues(algorithm).Inc()
	})
}

// RecordOperation records one completed or failed operation.
func RecordOperation(op string, seconds float64, err error) {
	if err != nil {
		OperationErrorsTotal.WithLabelValues(op).Inc()
		return
	}
	OperationsTotal.WithLabelValues(op).Inc()
	OperationSeconds.WithLabelValues(op).Observe(seconds)
}
