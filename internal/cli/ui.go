//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/perfphylo/internal/format"
	"github.com/agbru/perfphylo/internal/orchestration"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the progress observer to be tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner. The
// spinner goroutine reads Suffix, so the write happens under its lock.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerObserver shows a spinner with a progress bar and ETA while the
// completions of a resolution are evaluated.
type SpinnerObserver struct {
	out      io.Writer
	mode     orchestration.Mode
	spinner  Spinner
	progress *format.CandidateProgress
}

var _ orchestration.Observer = (*SpinnerObserver)(nil)

// NewSpinnerObserver returns an observer drawing on out.
func NewSpinnerObserver(out io.Writer) *SpinnerObserver {
	return &SpinnerObserver{out: out}
}

// ResolutionStarted starts the spinner unless there is nothing to evaluate.
func (o *SpinnerObserver) ResolutionStarted(mode orchestration.Mode, candidates int) {
	o.mode = mode
	o.progress = format.NewCandidateProgress(candidates)
	if candidates == 0 {
		return
	}
	o.spinner = newSpinner(spinner.WithWriter(o.out))
	o.spinner.UpdateSuffix(progressSuffix(mode, o.progress))
	o.spinner.Start()
}

// CandidateEvaluated advances the progress bar.
func (o *SpinnerObserver) CandidateEvaluated(c orchestration.Candidate, done, total int) {
	if o.spinner == nil || o.progress == nil {
		return
	}
	o.progress.Update(done)
	o.spinner.UpdateSuffix(progressSuffix(o.mode, o.progress))
}

// ResolutionFinished stops the spinner.
func (o *SpinnerObserver) ResolutionFinished(*orchestration.Resolution) {
	o.Close()
}

// Close stops the spinner if it is running. Resolve does not call
// ResolutionFinished when it fails, so callers close the observer on error.
func (o *SpinnerObserver) Close() {
	if o.spinner == nil {
		return
	}
	o.spinner.Stop()
	o.spinner = nil
}

func progressSuffix(mode orchestration.Mode, p *format.CandidateProgress) string {
	return fmt.Sprintf(" Evaluating %s completions %d/%d %s", mode, p.Done(), p.Total(),
		format.FormatProgressBarWithETA(p.Fraction(), p.ETA(), ProgressBarWidth))
}
