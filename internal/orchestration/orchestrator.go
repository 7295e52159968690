package orchestration

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/metrics"
)

// Result is the outcome of a single evaluation. Value is always set on
// success; Rem is set only for divmod, where Value holds the quotient. For
// cmp, Value holds -1, 0 or +1.
type Result struct {
	Op       string
	Value    *bigint.Int
	Rem      *bigint.Int
	Duration time.Duration
}

// BackendRun pairs one backend's evaluation outcome with its registry key,
// for cross-backend comparison reports.
type BackendRun struct {
	Key    string
	Name   string
	Result Result
	Err    error
}

// Evaluate runs a single request against a backend, honoring ctx for timeout
// and cancellation. The arithmetic itself cannot be interrupted mid-flight;
// on expiry the in-progress result is discarded and ctx.Err() is returned.
// Every call is recorded in the operation metrics and emits a trace span.
func Evaluate(ctx context.Context, backend bigint.Backend, req Request) (Result, error) {
	tracer := otel.Tracer("bigcalc/orchestration")
	ctx, span := tracer.Start(ctx, "evaluate",
		trace.WithAttributes(
			attribute.String("op", req.Op),
			attribute.String("backend", backend.Name()),
			attribute.Int("x_bits", req.X.BitLen()),
			attribute.Int("y_bits", req.Y.BitLen()),
		))
	defer span.End()

	start := time.Now()
	type outcome struct {
		res Result
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		res, err := apply(backend, req)
		ch <- outcome{res, err}
	}()

	select {
	case <-ctx.Done():
		err := ctx.Err()
		metrics.RecordOperation(req.Op, time.Since(start).Seconds(), err)
		span.RecordError(err)
		return Result{}, err
	case o := <-ch:
		o.res.Op = req.Op
		o.res.Duration = time.Since(start)
		metrics.RecordOperation(req.Op, o.res.Duration.Seconds(), o.err)
		if o.err != nil {
			span.RecordError(o.err)
		}
		return o.res, o.err
	}
}

// apply dispatches the request to the backend's operation set.
func apply(backend bigint.Backend, req Request) (Result, error) {
	switch req.Op {
	case "add":
		return Result{Value: backend.Add(req.X, req.Y)}, nil
	case "sub":
		return Result{Value: backend.Sub(req.X, req.Y)}, nil
	case "mul":
		return Result{Value: backend.Mul(req.X, req.Y)}, nil
	case "div":
		q, _, err := backend.QuoRem(req.X, req.Y)
		return Result{Value: q}, err
	case "rem":
		_, r, err := backend.QuoRem(req.X, req.Y)
		return Result{Value: r}, err
	case "divmod":
		q, r, err := backend.QuoRem(req.X, req.Y)
		return Result{Value: q, Rem: r}, err
	case "gcd":
		return Result{Value: backend.GCD(req.X, req.Y)}, nil
	case "modpow":
		v, err := backend.ModPow(req.X, req.Y, req.M)
		return Result{Value: v}, err
	case "cmp":
		// Ordering is backend-independent; answer directly.
		return Result{Value: bigint.NewInt(int64(req.X.Cmp(req.Y)))}, nil
	}
	panic("orchestration: unreachable op " + req.Op)
}

// CompareBackends evaluates the same request on every named backend
// concurrently and returns one run per backend, in input order. Individual
// failures are captured in the run rather than aborting the comparison.
func CompareBackends(ctx context.Context, keys []string, req Request) []BackendRun {
	g := new(errgroup.Group)
	runs := make([]BackendRun, len(keys))

	for i, key := range keys {
		runs[i].Key = key
		g.Go(func() error {
			backend, ok := bigint.NewBackend(key)
			if !ok {
				runs[i].Err = fmt.Errorf("unknown backend %q", key)
				return nil
			}
			runs[i].Name = backend.Name()
			runs[i].Result, runs[i].Err = Evaluate(ctx, backend, req)
			return nil
		})
	}
	g.Wait()
	return runs
}

// CheckConsistency verifies that all successful runs agree on the result.
// It returns false as soon as two successful runs disagree on Value or Rem.
// Comparisons with fewer than two successes are vacuously consistent.
func CheckConsistency(runs []BackendRun) bool {
	var ref *BackendRun
	for i := range runs {
		if runs[i].Err != nil {
			continue
		}
		if ref == nil {
			ref = &runs[i]
			continue
		}
		if runs[i].Result.Value.Cmp(ref.Result.Value) != 0 {
			return false
		}
		if (runs[i].Result.Rem == nil) != (ref.Result.Rem == nil) {
			return false
		}
		if runs[i].Result.Rem != nil && runs[i].Result.Rem.Cmp(ref.Result.Rem) != 0 {
			return false
		}
	}
	return true
}
