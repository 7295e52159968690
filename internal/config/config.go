// Package config defines the calculator's runtime configuration and the
// flag/environment resolution chain that produces it.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// EnvPrefix is prepended to every environment variable the calculator
// reads, e.g. BIGCALC_BASE.
const EnvPrefix = "BIGCALC_"

// Default values for flags that have non-zero defaults.
const (
	DefaultBase           = 10
	DefaultTimeout        = 5 * time.Minute
	DefaultBackend        = "native"
	DefaultTruncateDigits = 80
)

// AppConfig holds the complete runtime configuration.
//
// Resolution priority, highest first: CLI flags, environment variables
// (BIGCALC_*), adaptive hardware estimation for the thresholds, static
// defaults.
type AppConfig struct {
	// Expr is an expression to evaluate non-interactively, e.g.
	// "mul 123456789 987654321". Empty selects the REPL (or the TUI).
	Expr string

	// Base is the input/output radix for non-interactive evaluation and
	// the REPL's starting radix. 0 infers the input base from prefixes.
	Base int

	// Timeout bounds a single evaluation.
	Timeout time.Duration

	// KaratsubaThreshold overrides the schoolbook/Karatsuba crossover in
	// limbs; 0 selects the adaptive estimate.
	KaratsubaThreshold int

	// ParallelThreshold overrides the limb count above which Karatsuba
	// sub-products run on separate goroutines; 0 selects the adaptive
	// estimate.
	ParallelThreshold int

	// Backend selects the arithmetic backend ("native", or "gmp" when
	// compiled in).
	Backend string

	// OutputFile, when non-empty, receives the full untruncated result.
	OutputFile string

	// TruncateDigits caps the digits printed to the terminal; the full
	// value is never truncated in OutputFile. 0 disables truncation.
	TruncateDigits int

	// MetricsAddr, when non-empty, serves Prometheus metrics on the
	// given address, e.g. ":9090".
	MetricsAddr string

	// Completion, when non-empty, emits a shell completion script for the
	// named shell (bash, zsh or fish) and exits.
	Completion string

	// Calibrate runs the multiplication threshold calibration and stores
	// the resulting profile instead of evaluating anything.
	Calibrate bool

	Verbose bool // debug-level logging
	Quiet   bool // result-only output
	TUI     bool // full-screen interactive mode
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags not set explicitly. Remaining positional
// arguments are joined into Expr. Usage and error text go to output.
func ParseConfig(args []string, output io.Writer) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet("bigcalc", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Base, "base", DefaultBase, "input/output radix (2-36, 0 infers from 0b/0o/0x prefixes)")
	fs.IntVar(&cfg.Base, "b", DefaultBase, "shorthand for -base")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "evaluation timeout")
	fs.IntVar(&cfg.KaratsubaThreshold, "karatsuba-threshold", 0, "schoolbook/Karatsuba crossover in limbs (0 = adaptive)")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", 0, "limbs above which Karatsuba recurses concurrently (0 = adaptive)")
	fs.StringVar(&cfg.Backend, "backend", DefaultBackend, "arithmetic backend")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the full result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.IntVar(&cfg.TruncateDigits, "truncate", DefaultTruncateDigits, "max digits shown on the terminal (0 = unlimited)")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (empty = off)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug-level logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.TUI, "tui", false, "full-screen interactive mode")
	fs.StringVar(&cfg.Completion, "completion", "", "emit a completion script for the named shell (bash, zsh, fish)")
	fs.BoolVar(&cfg.Calibrate, "calibrate", false, "measure and store the multiplication thresholds for this machine")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)
	cfg = ApplyAdaptiveThresholds(cfg)

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Expr = joinArgs(rest)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations no component could honor.
func (c AppConfig) Validate() error {
	if c.Base != 0 && (c.Base < 2 || c.Base > 36) {
		return fmt.Errorf("config: base %d out of range [2, 36]", c.Base)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.TruncateDigits < 0 {
		return fmt.Errorf("config: truncate must be non-negative, got %d", c.TruncateDigits)
	}
	if c.Backend == "" {
		return fmt.Errorf("config: backend must not be empty")
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("config: -verbose and -quiet are mutually exclusive")
	}
	switch c.Completion {
	case "", "bash", "zsh", "fish":
	default:
		return fmt.Errorf("config: unsupported completion shell %q", c.Completion)
	}
	return nil
}

// joinArgs rebuilds the expression from positional arguments, so both
// quoted ("mul 2 3") and bare (mul 2 3) invocations work.
func joinArgs(args []string) string {
	s := args[0]
	for _, a := range args[1:] {
		s += " " + a
	}
	return s
}
