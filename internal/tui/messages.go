package tui

import (
	"time"

	"github.com/agbru/perfphylo/internal/metrics"
	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/sysmon"
)

// Every resolution message carries the generation of the run that sent it;
// the model drops messages from runs it already replaced.

// ResolutionStartedMsg announces the number of completions to evaluate.
type ResolutionStartedMsg struct {
	Mode       orchestration.Mode
	Total      int
	Generation uint64
}

// CandidateMsg reports one evaluated completion.
type CandidateMsg struct {
	Candidate  orchestration.Candidate
	Done       int
	Total      int
	Generation uint64
}

// ResolutionDoneMsg carries the finished resolution.
type ResolutionDoneMsg struct {
	Resolution *orchestration.Resolution
	Generation uint64
}

// ErrorMsg reports a failed resolution.
type ErrorMsg struct {
	Err        error
	Generation uint64
}

// TickMsg drives periodic sampling while a resolution runs. Each run owns
// one tick chain, identified by its generation.
type TickMsg struct {
	Time       time.Time
	Generation uint64
}

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg metrics.MemorySnapshot

// SysStatsMsg carries a host resource sample.
type SysStatsMsg sysmon.Stats
