// Package orchestration coordinates the evaluation of calculator requests
// against one or more arithmetic backends.
//
// It owns the textual request format shared by the CLI, the REPL and the TUI
// ("op x y [m]"), drives single evaluations with timeout support, and runs
// cross-backend comparisons that verify all registered backends agree on a
// result.
package orchestration
