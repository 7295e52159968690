package calibration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigint/internal/nat"
	"github.com/agbru/bigint/internal/ui"
)

// quickOptions keeps the measured workload small enough for unit tests.
var quickOptions = Options{
	MulSizes:     []int{16, 32},
	ParallelSize: 256,
	Iterations:   2,
}

func TestGenerateKaratsubaCandidates(t *testing.T) {
	t.Parallel()
	candidates := GenerateKaratsubaCandidates()
	if len(candidates) == 0 {
		t.Fatal("no candidates generated")
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i] <= candidates[i-1] {
			t.Errorf("candidates not strictly increasing: %v", candidates)
		}
	}
	for _, c := range candidates {
		if c < 2 {
			t.Errorf("candidate %d below the engine's minimum threshold", c)
		}
	}
}

func TestGenerateParallelCandidatesStartSequential(t *testing.T) {
	t.Parallel()
	candidates := GenerateParallelCandidates()
	if len(candidates) == 0 || candidates[0] != 0 {
		t.Errorf("candidates should start with the sequential baseline, got %v", candidates)
	}
}

func TestCalibrateKaratsubaRestoresThresholds(t *testing.T) {
	beforeKaratsuba := nat.KaratsubaThreshold()
	beforeParallel := nat.ParallelThreshold()

	best, results, err := CalibrateKaratsuba(context.Background(), quickOptions)
	if err != nil {
		t.Fatalf("CalibrateKaratsuba: %v", err)
	}
	if best < 2 {
		t.Errorf("best threshold = %d, want >= 2", best)
	}
	if len(results) != len(GenerateKaratsubaCandidates()) {
		t.Errorf("got %d results, want one per candidate", len(results))
	}
	if nat.KaratsubaThreshold() != beforeKaratsuba {
		t.Errorf("Karatsuba threshold not restored: %d != %d", nat.KaratsubaThreshold(), beforeKaratsuba)
	}
	if nat.ParallelThreshold() != beforeParallel {
		t.Errorf("parallel threshold not restored: %d != %d", nat.ParallelThreshold(), beforeParallel)
	}
}

func TestCalibrateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := CalibrateKaratsuba(ctx, quickOptions); err == nil {
		t.Error("canceled context should abort the Karatsuba calibration")
	}
	if _, _, err := CalibrateParallel(ctx, quickOptions); err == nil {
		t.Error("canceled context should abort the parallel calibration")
	}
}

func TestCalibrateBuildsCompatibleProfile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	profile, err := Calibrate(ctx, quickOptions)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if !profile.Compatible() {
		t.Errorf("freshly measured profile should be compatible: %+v", profile)
	}
	if profile.KaratsubaThreshold < 2 {
		t.Errorf("KaratsubaThreshold = %d, want >= 2", profile.KaratsubaThreshold)
	}
	if profile.ParallelThreshold < 0 {
		t.Errorf("ParallelThreshold = %d, want >= 0", profile.ParallelThreshold)
	}
}

func TestPrintResultsTable(t *testing.T) {
	original := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(original)

	results := []Result{
		{Threshold: 0, Duration: 5 * time.Millisecond},
		{Threshold: 40, Duration: 2 * time.Millisecond},
	}
	var out strings.Builder
	printResultsTable(&out, "Parallel Dispatch", results, 40)

	for _, want := range []string{"Parallel Dispatch", "Sequential", "40 limbs", "(Optimal)", "2ms"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table missing %q:\n%s", want, out.String())
		}
	}
}
