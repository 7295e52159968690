package calibration

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/bigint/internal/config"
	apperrors "github.com/agbru/bigint/internal/errors"
	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/ui"
)

// printResultsTable formats one measurement series, marking the winner.
func printResultsTable(out io.Writer, title string, results []Result, best int) {
	fmt.Fprintf(out, "\n--- %s ---\n", title)
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreshold%s    │ %sExecution Time%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 14), strings.Repeat("─", 25))
	for _, res := range results {
		label := fmt.Sprintf("%d limbs", res.Threshold)
		if res.Threshold == 0 {
			label = "Sequential"
		}
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
			if res.Duration == 0 {
				durationStr = "< 1µs"
			}
		}
		highlight := ""
		if res.Threshold == best && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-12s%s │ %s%s%s%s\n", ui.ColorCyan(), label, ui.ColorReset(), ui.ColorYellow(), durationStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}

// RunCalibration measures both thresholds, prints the results, and persists
// the profile at the default path. It returns a process exit code.
func RunCalibration(ctx context.Context, out io.Writer) int {
	fmt.Fprintf(out, "Calibrating multiplication thresholds; this runs timed workloads and may take a moment...\n")

	karatsuba, karatsubaResults, err := CalibrateKaratsuba(ctx, Options{})
	printResultsTable(out, "Karatsuba Crossover", karatsubaResults, karatsuba)
	if err != nil {
		return apperrors.HandleEvaluationError(err, 0, out, apperrors.NoColorProvider{})
	}

	parallel, parallelResults, err := CalibrateParallel(ctx, Options{})
	printResultsTable(out, "Parallel Dispatch", parallelResults, parallel)
	if err != nil {
		return apperrors.HandleEvaluationError(err, 0, out, apperrors.NoColorProvider{})
	}

	profile := NewProfile()
	profile.KaratsubaThreshold = karatsuba
	profile.ParallelThreshold = parallel

	path, err := DefaultProfilePath()
	if err == nil {
		err = profile.Save(path)
	}
	if err != nil {
		fmt.Fprintf(out, "%sCould not persist the profile: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}

	fmt.Fprintf(out, "\n%sCalibration complete%s: Karatsuba=%s%d%s limbs, parallel=%s%d%s limbs.\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), karatsuba, ui.ColorReset(),
		ui.ColorYellow(), parallel, ui.ColorReset())
	fmt.Fprintf(out, "Profile saved to %s\n", path)
	return apperrors.ExitSuccess
}

// LoadCachedCalibration applies a previously saved, still compatible profile
// to thresholds the user did not set explicitly. Explicit flag or env values
// differ from the adaptive estimates and are left alone; matching values are
// treated as defaults and replaced by the measured ones.
func LoadCachedCalibration(cfg config.AppConfig) (config.AppConfig, bool) {
	path, err := DefaultProfilePath()
	if err != nil {
		return cfg, false
	}
	profile, err := LoadProfile(path)
	if err != nil || !profile.Compatible() {
		return cfg, false
	}

	applied := false
	if cfg.KaratsubaThreshold == config.EstimateKaratsubaThreshold() {
		cfg.KaratsubaThreshold = profile.KaratsubaThreshold
		applied = true
	}
	if cfg.ParallelThreshold == config.EstimateParallelThreshold() {
		cfg.ParallelThreshold = profile.ParallelThreshold
		applied = true
	}
	return cfg, applied
}
