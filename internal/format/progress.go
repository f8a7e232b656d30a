package format

import (
	"fmt"
	"strings"
	"time"
)

// CandidateProgress tracks how many completions of a resolution finished and
// extrapolates the remaining time linearly. It is not safe for concurrent
// use; the resolver serializes observer calls.
type CandidateProgress struct {
	total int
	done  int
	start time.Time
	now   func() time.Time
}

// NewCandidateProgress starts tracking total candidates.
func NewCandidateProgress(total int) *CandidateProgress {
	return &CandidateProgress{total: total, start: time.Now(), now: time.Now}
}

// Update records done finished candidates and returns the completed
// fraction with the estimated remaining time.
func (p *CandidateProgress) Update(done int) (float64, time.Duration) {
	if done > p.total {
		done = p.total
	}
	if done > p.done {
		p.done = done
	}
	return p.Fraction(), p.ETA()
}

// Fraction returns the completed share in [0, 1]. An empty resolution is
// complete.
func (p *CandidateProgress) Fraction() float64 {
	if p.total <= 0 {
		return 1
	}
	return float64(p.done) / float64(p.total)
}

// ETA returns the remaining time estimate, or 0 before the first candidate.
func (p *CandidateProgress) ETA() time.Duration {
	if p.done == 0 || p.done >= p.total {
		return 0
	}
	elapsed := p.now().Sub(p.start)
	perCandidate := elapsed / time.Duration(p.done)
	return perCandidate * time.Duration(p.total-p.done)
}

// Done returns the number of finished candidates.
func (p *CandidateProgress) Done() int { return p.done }

// Total returns the number of candidates.
func (p *CandidateProgress) Total() int { return p.total }

// ProgressBar renders a textual bar of the given width.
func ProgressBar(progress float64, width int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(width))
	var builder strings.Builder
	builder.Grow(width * 3)
	for i := 0; i < width; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgressBarWithETA renders "[bar] 50.0% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
