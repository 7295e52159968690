package orchestration

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/agbru/bigint"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustRequest(t *testing.T, tokens ...string) Request {
	t.Helper()
	req, err := ParseRequest(tokens, 10)
	if err != nil {
		t.Fatalf("ParseRequest(%v): %v", tokens, err)
	}
	return req
}

func nativeBackend(t *testing.T) bigint.Backend {
	t.Helper()
	backend, ok := bigint.NewBackend("native")
	if !ok {
		t.Fatal("native backend must always be registered")
	}
	return backend
}

func TestEvaluateOperations(t *testing.T) {
	t.Parallel()
	backend := nativeBackend(t)
	cases := []struct {
		name    string
		tokens  []string
		want    string
		wantRem string
	}{
		{"add", []string{"add", "100", "-30"}, "70", ""},
		{"sub", []string{"sub", "10", "25"}, "-15", ""},
		{"mul", []string{"mul", "123456789012345678901234567890", "2"}, "246913578024691357802469135780", ""},
		{"div truncates toward zero", []string{"div", "-100", "7"}, "-14", ""},
		{"rem keeps dividend sign", []string{"rem", "-100", "7"}, "-2", ""},
		{"divmod", []string{"divmod", "100", "7"}, "14", "2"},
		{"gcd", []string{"gcd", "-48", "36"}, "12", ""},
		{"modpow", []string{"modpow", "2", "10", "1000"}, "24", ""},
		{"cmp less", []string{"cmp", "-5", "5"}, "-1", ""},
		{"cmp equal", []string{"cmp", "42", "42"}, "0", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := Evaluate(context.Background(), backend, mustRequest(t, tc.tokens...))
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if res.Value.String() != tc.want {
				t.Errorf("Value = %s, want %s", res.Value, tc.want)
			}
			if tc.wantRem == "" {
				if res.Rem != nil {
					t.Errorf("Rem = %s, want nil", res.Rem)
				}
			} else if res.Rem.String() != tc.wantRem {
				t.Errorf("Rem = %s, want %s", res.Rem, tc.wantRem)
			}
			if res.Op != mustRequest(t, tc.tokens...).Op {
				t.Errorf("Op = %q not propagated", res.Op)
			}
		})
	}
}

func TestEvaluateArithmeticError(t *testing.T) {
	t.Parallel()
	_, err := Evaluate(context.Background(), nativeBackend(t), mustRequest(t, "div", "1", "0"))
	var divErr *bigint.DivisionByZeroError
	if !errors.As(err, &divErr) {
		t.Fatalf("want DivisionByZeroError, got %v", err)
	}
}

func TestEvaluateHonorsCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The evaluation goroutine buffers its result, so even a pre-canceled
	// context must not leak or deadlock.
	_, err := Evaluate(ctx, nativeBackend(t), mustRequest(t, "add", "1", "2"))
	if err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("want nil or context.Canceled, got %v", err)
	}
	// Give the worker goroutine time to finish before goleak runs.
	time.Sleep(10 * time.Millisecond)
}

func TestCompareBackendsAgreement(t *testing.T) {
	t.Parallel()
	req := mustRequest(t, "divmod", "-100", "7")
	runs := CompareBackends(context.Background(), bigint.BackendKeys(), req)

	if len(runs) == 0 {
		t.Fatal("expected at least the native backend")
	}
	for _, run := range runs {
		if run.Err != nil {
			t.Fatalf("backend %q failed: %v", run.Key, run.Err)
		}
		if run.Name == "" {
			t.Errorf("backend %q has no display name", run.Key)
		}
	}
	if !CheckConsistency(runs) {
		t.Error("registered backends disagree on divmod(-100, 7)")
	}
}

func TestCompareBackendsUnknownKey(t *testing.T) {
	t.Parallel()
	runs := CompareBackends(context.Background(), []string{"native", "no-such-backend"}, mustRequest(t, "add", "1", "1"))
	if runs[0].Err != nil {
		t.Errorf("native run failed: %v", runs[0].Err)
	}
	if runs[1].Err == nil {
		t.Error("unknown backend should report an error, not abort the comparison")
	}
}

func TestCheckConsistency(t *testing.T) {
	t.Parallel()
	five := bigint.NewInt(5)
	six := bigint.NewInt(6)
	two := bigint.NewInt(2)

	cases := []struct {
		name string
		runs []BackendRun
		want bool
	}{
		{"empty", nil, true},
		{"single success", []BackendRun{{Result: Result{Value: five}}}, true},
		{"agreeing pair", []BackendRun{{Result: Result{Value: five}}, {Result: Result{Value: five}}}, true},
		{"disagreeing values", []BackendRun{{Result: Result{Value: five}}, {Result: Result{Value: six}}}, false},
		{"failed run ignored", []BackendRun{{Result: Result{Value: five}}, {Err: errors.New("boom")}, {Result: Result{Value: five}}}, true},
		{"disagreeing remainders", []BackendRun{
			{Result: Result{Value: five, Rem: two}},
			{Result: Result{Value: five, Rem: six}},
		}, false},
		{"missing remainder", []BackendRun{
			{Result: Result{Value: five, Rem: two}},
			{Result: Result{Value: five}},
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CheckConsistency(tc.runs); got != tc.want {
				t.Errorf("CheckConsistency = %v, want %v", got, tc.want)
			}
		})
	}
}
