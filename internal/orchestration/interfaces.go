//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
)

// Observer receives resolution lifecycle notifications. This interface
// decouples the resolver from progress display and metrics collection.
//
// Resolve serializes calls to an Observer, so implementations need no
// locking of their own for state touched only from these methods.
type Observer interface {
	// ResolutionStarted is called once the candidate list is known.
	//
	// Parameters:
	//   - mode: The completion mode in use.
	//   - candidates: The number of completions that will be evaluated.
	ResolutionStarted(mode Mode, candidates int)

	// CandidateEvaluated is called after each completion went through the
	// pipeline.
	//
	// Parameters:
	//   - c: The evaluated candidate.
	//   - done: How many candidates finished so far, this one included.
	//   - total: The number of candidates in this resolution.
	CandidateEvaluated(c Candidate, done, total int)

	// ResolutionFinished is called once with the complete resolution.
	ResolutionFinished(res *Resolution)
}

// NullObserver is a no-op implementation of Observer.
// Useful for quiet mode or testing.
type NullObserver struct{}

// ResolutionStarted does nothing.
func (NullObserver) ResolutionStarted(Mode, int) {}

// CandidateEvaluated does nothing.
func (NullObserver) CandidateEvaluated(Candidate, int, int) {}

// ResolutionFinished does nothing.
func (NullObserver) ResolutionFinished(*Resolution) {}

// MultiObserver fans every notification out to several observers in order.
type MultiObserver []Observer

// ResolutionStarted forwards to every observer.
func (m MultiObserver) ResolutionStarted(mode Mode, candidates int) {
	for _, o := range m {
		o.ResolutionStarted(mode, candidates)
	}
}

// CandidateEvaluated forwards to every observer.
func (m MultiObserver) CandidateEvaluated(c Candidate, done, total int) {
	for _, o := range m {
		o.CandidateEvaluated(c, done, total)
	}
}

// ResolutionFinished forwards to every observer.
func (m MultiObserver) ResolutionFinished(res *Resolution) {
	for _, o := range m {
		o.ResolutionFinished(res)
	}
}

// lockedObserver serializes calls to an Observer shared by worker goroutines.
type lockedObserver struct {
	mu sync.Mutex
	o  Observer
}

func (l *lockedObserver) ResolutionStarted(mode Mode, candidates int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.o.ResolutionStarted(mode, candidates)
}

func (l *lockedObserver) CandidateEvaluated(c Candidate, done, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.o.CandidateEvaluated(c, done, total)
}

func (l *lockedObserver) ResolutionFinished(res *Resolution) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.o.ResolutionFinished(res)
}

// PresentationOptions configures how a resolution is presented to the user.
type PresentationOptions struct {
	// Source names the matrix input.
	Source string
	// Marker is the token printed for ambiguous cells.
	Marker  string
	Verbose bool
	Quiet   bool
}

// ResultPresenter defines the interface for presenting resolution results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the resolver.
type ResultPresenter interface {
	// PresentResolution displays the summary of a resolution.
	PresentResolution(res *Resolution, opts PresentationOptions, out io.Writer)

	// HandleError displays an error and returns the matching exit code.
	HandleError(err error, out io.Writer) int
}
