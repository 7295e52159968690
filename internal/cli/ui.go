package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigint/internal/format"
)

const (
	// TruncationLimit is the digit threshold from which a result is
	// truncated in standard output to avoid flooding the terminal.
	TruncationLimit = 100
	// DisplayEdges is the number of digits shown at each end of a
	// truncated number.
	DisplayEdges = 25
	// SpinnerRefreshRate is the spinner animation interval.
	SpinnerRefreshRate = 200 * time.Millisecond
)

// Spinner abstracts a terminal spinner so the display loop can be tested
// without driving a real terminal animation.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text displayed after the spinner glyph.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner is a construction hook replaced by tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress animates a spinner with the elapsed time until done is
// closed. It is meant to run in its own goroutine alongside an evaluation
// and returns once the channel closes.
func DisplayProgress(done <-chan struct{}, label string, out io.Writer) {
	sp := newSpinner(spinner.WithWriter(out))
	start := time.Now()
	sp.UpdateSuffix(fmt.Sprintf(" %s...", label))
	sp.Start()
	defer sp.Stop()

	ticker := time.NewTicker(SpinnerRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			sp.UpdateSuffix(fmt.Sprintf(" %s... (%s)", label, format.FormatExecutionDuration(time.Since(start))))
		}
	}
}
