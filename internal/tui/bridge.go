package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/perfphylo/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the resolver goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). Without a
// program the message is dropped.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIObserver implements orchestration.Observer by forwarding progress as
// bubbletea messages.
type TUIObserver struct {
	ref        *programRef
	generation uint64
}

// Verify interface compliance.
var _ orchestration.Observer = (*TUIObserver)(nil)

// ResolutionStarted sends a ResolutionStartedMsg.
func (t *TUIObserver) ResolutionStarted(mode orchestration.Mode, candidates int) {
	t.ref.Send(ResolutionStartedMsg{Mode: mode, Total: candidates, Generation: t.generation})
}

// CandidateEvaluated sends a CandidateMsg.
func (t *TUIObserver) CandidateEvaluated(c orchestration.Candidate, done, total int) {
	t.ref.Send(CandidateMsg{Candidate: c, Done: done, Total: total, Generation: t.generation})
}

// ResolutionFinished does nothing: the resolve command returns the
// resolution as its own message.
func (t *TUIObserver) ResolutionFinished(*orchestration.Resolution) {}
