package cli

import (
	"fmt"
	"io"

	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/ui"
)

// CLIColorProvider backs apperrors.ColorProvider with the active ui theme.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// PresentComparisonTable displays the cross-backend comparison summary with
// backend names, durations, and status in a tabular layout. Manual padding
// keeps the columns aligned in the presence of ANSI color codes.
func PresentComparisonTable(runs []orchestration.BackendRun, out io.Writer) {
	fmt.Fprintf(out, "\n--- Backend Comparison ---\n")

	maxNameLen := len("Backend")
	maxDurationLen := len("Duration")
	for _, run := range runs {
		if len(run.Key) > maxNameLen {
			maxNameLen = len(run.Key)
		}
		duration := format.FormatExecutionDuration(run.Result.Duration)
		if run.Result.Duration == 0 {
			duration = "< 1µs"
		}
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sBackend%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), pad(maxNameLen-len("Backend")),
		ui.ColorUnderline(), ui.ColorReset(), pad(maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, run := range runs {
		var status string
		if run.Err != nil {
			status = fmt.Sprintf("%s✗ failure (%v)%s", ui.ColorRed(), run.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✓ success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(run.Result.Duration)
		if run.Result.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), run.Key, ui.ColorReset(), pad(maxNameLen-len(run.Key)),
			ui.ColorYellow(), duration, ui.ColorReset(), pad(maxDurationLen-len(duration)),
			status)
	}
}

// PresentComparisonVerdict prints the consistency verdict for a comparison
// and reports whether all successful runs agreed.
func PresentComparisonVerdict(runs []orchestration.BackendRun, out io.Writer) bool {
	if !orchestration.CheckConsistency(runs) {
		fmt.Fprintf(out, "\n%sCRITICAL: backends disagree on the result.%s\n", ui.ColorRed(), ui.ColorReset())
		return false
	}
	fmt.Fprintf(out, "\n%sAll backends agree.%s\n", ui.ColorGreen(), ui.ColorReset())
	return true
}

// pad returns n spaces (none for n <= 0).
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
