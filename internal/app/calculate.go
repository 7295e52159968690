package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/agbru/bigint"
	"github.com/agbru/bigint/internal/cli"
	apperrors "github.com/agbru/bigint/internal/errors"
	"github.com/agbru/bigint/internal/orchestration"
)

// runExpression evaluates the non-interactive expression and displays the
// result.
func (a *Application) runExpression(ctx context.Context, out io.Writer) int {
	cfg := a.Config

	backend, ok := bigint.NewBackend(cfg.Backend)
	if !ok {
		return apperrors.HandleEvaluationError(
			apperrors.NewConfigError("unknown backend %q (registered: %s)",
				cfg.Backend, strings.Join(bigint.BackendKeys(), ", ")),
			0, a.ErrWriter, cli.CLIColorProvider{})
	}

	req, err := orchestration.ParseRequest(strings.Fields(cfg.Expr), cfg.Base)
	if err != nil {
		return apperrors.HandleEvaluationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	if !cfg.Quiet {
		cli.PrintExecutionConfig(cfg, out)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	// Spinner runs alongside the evaluation; instantaneous operations
	// stop it before the first repaint.
	var wg sync.WaitGroup
	done := make(chan struct{})
	if !cfg.Quiet {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cli.DisplayProgress(done, "evaluating", out)
		}()
	}

	start := time.Now()
	res, err := orchestration.Evaluate(ctx, backend, req)
	close(done)
	wg.Wait()

	if err != nil {
		return apperrors.HandleEvaluationError(err, time.Since(start), a.ErrWriter, cli.CLIColorProvider{})
	}

	outputCfg := cli.OutputConfig{
		Base:           cfg.Base,
		TruncateDigits: cfg.TruncateDigits,
		OutputFile:     cfg.OutputFile,
		Quiet:          cfg.Quiet,
		Verbose:        cfg.Verbose,
	}
	if err := cli.DisplayResultWithConfig(out, res, cfg.Expr, outputCfg); err != nil {
		return apperrors.HandleEvaluationError(err, res.Duration, a.ErrWriter, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}
