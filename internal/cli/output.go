// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer] and
//     handle colorization.
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/orchestration"
	"github.com/agbru/bigint/internal/ui"
)

// OutputConfig holds the presentation settings for a result.
type OutputConfig struct {
	// Base is the output radix; 0 falls back to decimal.
	Base int
	// TruncateDigits caps the digits printed to the terminal. 0 applies
	// the default TruncationLimit; negative disables truncation.
	TruncateDigits int
	// OutputFile is the path receiving the full untruncated result
	// (empty for no file output).
	OutputFile string
	// Quiet suppresses everything except the bare result.
	Quiet bool
	// Verbose forces the full value even past the truncation limit.
	Verbose bool
}

// outputBase normalizes the configured radix.
func (c OutputConfig) outputBase() int {
	if c.Base < 2 || c.Base > bigint.MaxBase {
		return 10
	}
	return c.Base
}

// FormatTruncated shortens a digit string that exceeds limit, keeping edges
// digits at both ends: "123...789". Strings within the limit are returned
// unchanged.
func FormatTruncated(s string, limit, edges int) string {
	if limit <= 0 || len(s) <= limit || len(s) <= 2*edges {
		return s
	}
	return fmt.Sprintf("%s...%s", s[:edges], s[len(s)-edges:])
}

// FormatQuietResult renders a result as bare machine-readable text: the
// value alone, or "q r" for divmod.
func FormatQuietResult(res orchestration.Result, base int) string {
	if res.Rem != nil {
		return res.Value.Text(base) + " " + res.Rem.Text(base)
	}
	return res.Value.Text(base)
}

// DisplayQuietResult prints the bare result line for scripting.
func DisplayQuietResult(out io.Writer, res orchestration.Result, cfg OutputConfig) {
	fmt.Fprintln(out, FormatQuietResult(res, cfg.outputBase()))
}

// DisplayResult prints a result with duration and size details, truncating
// long values unless verbose output is requested.
func DisplayResult(out io.Writer, res orchestration.Result, cfg OutputConfig) {
	base := cfg.outputBase()
	limit := cfg.TruncateDigits
	if limit == 0 {
		limit = TruncationLimit
	}
	if cfg.Verbose {
		limit = -1
	}

	value := res.Value.Text(base)
	display := FormatTruncated(value, limit, DisplayEdges)
	if base == 10 {
		display = format.FormatNumberString(display)
	}

	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorCyan(), res.Op, ui.ColorReset(),
		ui.ColorGreen(), display, ui.ColorReset())
	if res.Rem != nil {
		rem := res.Rem.Text(base)
		remDisplay := FormatTruncated(rem, limit, DisplayEdges)
		if base == 10 {
			remDisplay = format.FormatNumberString(remDisplay)
		}
		fmt.Fprintf(out, "%srem%s = %s%s%s\n",
			ui.ColorCyan(), ui.ColorReset(),
			ui.ColorGreen(), remDisplay, ui.ColorReset())
	}
	fmt.Fprintf(out, "  %s%s%s, %d bits, %d digits\n",
		ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset(),
		res.Value.BitLen(), len(value))
	if len(display) < len(value) {
		fmt.Fprintf(out, "  %struncated; rerun with -v or -o to get the full value%s\n",
			ui.ColorGrey(), ui.ColorReset())
	}
}

// WriteResultToFile writes the full untruncated result to cfg.OutputFile,
// creating parent directories as needed. A nil is returned when no output
// file is configured.
func WriteResultToFile(res orchestration.Result, expr string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	base := cfg.outputBase()

	if dir := filepath.Dir(cfg.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# bigcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Expression: %s\n", expr)
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Bits: %d\n", res.Value.BitLen())
	fmt.Fprintf(file, "\n%s\n", res.Value.Text(base))
	if res.Rem != nil {
		fmt.Fprintf(file, "%s\n", res.Rem.Text(base))
	}
	return nil
}

// DisplayResultWithConfig is the unified result path: quiet or detailed
// display, plus optional file output.
func DisplayResultWithConfig(out io.Writer, res orchestration.Result, expr string, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, res, cfg)
	} else {
		DisplayResult(out, res, cfg)
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(res, expr, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
