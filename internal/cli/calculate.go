package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigint/internal/config"
	"github.com/agbru/bigint/internal/ui"
)

// PrintExecutionConfig displays the effective settings before a
// non-interactive evaluation: expression, timeout, environment, and the
// multiplication thresholds in force.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%q%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Expr, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Backend: %s%s%s, input base: %s%s%s.\n",
		ui.ColorCyan(), cfg.Backend, ui.ColorReset(), ui.ColorCyan(), describeBase(cfg.Base), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Multiplication thresholds: Karatsuba=%s%d%s limbs, parallel=%s%d%s limbs.\n",
		ui.ColorCyan(), cfg.KaratsubaThreshold, ui.ColorReset(),
		ui.ColorCyan(), cfg.ParallelThreshold, ui.ColorReset())
	fmt.Fprintf(out, "\n")
}

// describeBase renders the configured radix, naming the inference mode.
func describeBase(base int) string {
	if base == 0 {
		return "auto (0x/0o/0b prefixes)"
	}
	return fmt.Sprintf("%d", base)
}
