// Command bigcalc is an arbitrary-precision integer calculator. With an
// expression argument it evaluates once and exits; without one it starts an
// interactive session (line-based by default, full-screen with -tui).
package main

import (
	"context"
	"os"

	"github.com/agbru/bigint/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args[1:], os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	exitCode := application.Run(context.Background(), os.Stdout)
	os.Exit(exitCode)
}
