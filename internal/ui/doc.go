// Package ui provides terminal color themes shared by the CLI and the TUI.
//
// The CLI uses raw ANSI escape codes through the Color* accessors, while the
// TUI consumes lipgloss-compatible palettes via GetCurrentTUITheme. Both views
// honor the NO_COLOR convention (https://no-color.org/) through InitTheme.
package ui
