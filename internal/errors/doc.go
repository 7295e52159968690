// Package apperrors defines the application-level error types and process
// exit codes shared by the CLI, the REPL and the TUI.
//
// The error types here classify failures of the surrounding program
// (configuration, timeouts, backend disagreement); arithmetic errors such as
// division by zero are defined by the bigint package itself and only pass
// through this layer.
package apperrors
