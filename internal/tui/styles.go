package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigint/internal/ui"
)

// Styles groups the lipgloss styles of the dashboard, derived from the
// active ui theme.
type Styles struct {
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Prompt    lipgloss.Style
	Expr      lipgloss.Style
	Result    lipgloss.Style
	Error     lipgloss.Style
	Dim       lipgloss.Style
	StatLabel lipgloss.Style
	Spark     lipgloss.Style
	Footer    lipgloss.Style
}

// NewStyles builds the style set from the current TUI theme.
func NewStyles() Styles {
	theme := ui.GetCurrentTUITheme()
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Prompt:    lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Expr:      lipgloss.NewStyle().Foreground(theme.Dim),
		Result:    lipgloss.NewStyle().Foreground(theme.Success),
		Error:     lipgloss.NewStyle().Foreground(theme.Error),
		Dim:       lipgloss.NewStyle().Foreground(theme.Dim),
		StatLabel: lipgloss.NewStyle().Foreground(theme.Info),
		Spark:     lipgloss.NewStyle().Foreground(theme.Warning),
		Footer:    lipgloss.NewStyle().Foreground(theme.Dim).Padding(0, 1),
	}
}
