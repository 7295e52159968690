package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bigint/internal/config"
	apperrors "github.com/agbru/bigint/internal/errors"
)

// Run starts the full-screen dashboard and blocks until the user quits or
// the context is canceled. It returns a process exit code.
func Run(ctx context.Context, cfg config.AppConfig, errOut io.Writer) int {
	model, err := NewModel(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
			return apperrors.ExitErrorCanceled
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
