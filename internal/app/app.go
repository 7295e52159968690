// Package app wires configuration, logging, metrics and the user interfaces
// into the bigcalc executable: one-shot expression evaluation, the REPL, the
// full-screen TUI, threshold calibration and shell completion.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/calibration"
	"github.com/agbru/bigint/internal/cli"
	"github.com/agbru/bigint/internal/config"
	apperrors "github.com/agbru/bigint/internal/errors"
	"github.com/agbru/bigint/internal/logging"
	"github.com/agbru/bigint/internal/metrics"
	"github.com/agbru/bigint/internal/server"
	"github.com/agbru/bigint/internal/tui"
	"github.com/agbru/bigint/internal/ui"
)

// Version is the release version stamped into builds via -ldflags.
var Version = "dev"

// Application is a fully parsed bigcalc invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New parses command-line arguments (without the program name) into an
// Application. A cached calibration profile, when present and compatible,
// refines thresholds the user did not set explicitly.
func New(args []string, errWriter io.Writer) (*Application, error) {
	cfg, err := config.ParseConfig(args, errWriter)
	if err != nil {
		return nil, err
	}
	if calibrated, ok := calibration.LoadCachedCalibration(cfg); ok {
		cfg = calibrated
	}
	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logging.NewDefaultLogger(),
	}, nil
}

// HasVersionFlag reports whether the arguments request the version. It is
// checked before flag parsing so that -version works regardless of the other
// flags present.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the release version.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bigcalc %s\n", Version)
}

// IsHelpError reports whether err came from the -h/-help flag.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the application in the configured mode and returns a process
// exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	if cfg.Completion != "" {
		return a.runCompletion(out)
	}

	switch {
	case cfg.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	config.InstallThresholds(cfg)
	metrics.InstallMulObserver()

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if cfg.Calibrate {
		return calibration.RunCalibration(ctx, out)
	}

	if cfg.MetricsAddr != "" {
		a.startMetricsServer(ctx)
	}

	if cfg.TUI {
		return tui.Run(ctx, cfg, a.ErrWriter)
	}
	if cfg.Expr != "" {
		return a.runExpression(ctx, out)
	}
	return a.runREPL(ctx)
}

// runCompletion emits a shell completion script.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, bigint.BackendKeys()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// startMetricsServer launches the Prometheus sidecar in the background. It
// shuts down with the run context.
func (a *Application) startMetricsServer(ctx context.Context) {
	backend, ok := bigint.NewBackend(a.Config.Backend)
	if !ok {
		backend, _ = bigint.NewBackend("native")
	}
	srv := server.New(a.Config.MetricsAddr, backend, logging.NewLogger(os.Stderr, "server"))
	go func() {
		if err := srv.Start(ctx); err != nil {
			a.Logger.Error("metrics server stopped", err)
		}
	}()
}

// runREPL starts the interactive session on the standard streams.
func (a *Application) runREPL(ctx context.Context) int {
	cfg := a.Config
	repl, err := cli.NewREPL(cli.REPLConfig{
		Base:           cfg.Base,
		Backend:        cfg.Backend,
		TruncateDigits: cfg.TruncateDigits,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	switch err := repl.Start(ctx); {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
}
