package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/perfphylo/internal/orchestration"
)

func TestMetricsModel_Counters(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(80, 7)
	m.Start(orchestration.ModeExhaustive, 2)
	if m.Progress() != 0 {
		t.Errorf("Progress() = %f, want 0", m.Progress())
	}

	res, err := orchestration.Resolve(context.Background(), singleAmbiguity(), orchestration.Options{})
	if err != nil {
		t.Fatal(err)
	}
	m.AddCandidate(res.Candidates[0], 1, 2)
	m.AddCandidate(res.Candidates[3], 2, 2)

	if m.feasible != 1 {
		t.Errorf("feasible = %d, want 1", m.feasible)
	}
	if m.Progress() != 1 {
		t.Errorf("Progress() = %f, want 1", m.Progress())
	}
	view := m.View()
	for _, want := range []string{"Heap:", "exhaustive", "1/2", "Timings:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMetricsModel_FinishFillsTimings(t *testing.T) {
	res := &orchestration.Resolution{
		Mode: orchestration.ModeFirstRest,
		Candidates: []orchestration.Candidate{
			{Index: 0, Duration: time.Millisecond},
			{Index: 1, Duration: 2 * time.Millisecond},
		},
	}
	m := NewMetricsModel()
	m.Finish(res)
	if m.done != 2 || m.total != 2 || m.feasible != 0 {
		t.Errorf("counters = %d/%d feasible %d", m.done, m.total, m.feasible)
	}
	if m.durations.Len() != 2 {
		t.Errorf("durations = %d, want 2", m.durations.Len())
	}
}

func TestMetricsModel_NoCandidates(t *testing.T) {
	m := NewMetricsModel()
	if m.Progress() != 1 {
		t.Errorf("Progress() with nothing to evaluate = %f, want 1", m.Progress())
	}
	m.UpdateMemStats(MemStatsMsg{HeapAlloc: 2048, Sys: 3 << 20, NumGC: 4})
	m.SetSize(80, 7)
	view := m.View()
	if !strings.Contains(view, "2.0 KB / 3.0 MB") {
		t.Errorf("view missing heap figures:\n%s", view)
	}
	if strings.Contains(view, "Timings:") {
		t.Error("timings row should be hidden without samples")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
		{3 << 30, "3.0 GB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeaderModel_View(t *testing.T) {
	h := NewHeaderModel("dev", "stdin")
	h.SetWidth(80)
	h.SetDone()
	view := h.View()
	if !strings.Contains(view, "perfphylo") || strings.Contains(view, "dev") {
		t.Errorf("unexpected header %q", view)
	}
	if !strings.Contains(view, "stdin") || !strings.Contains(view, "Elapsed:") {
		t.Errorf("header missing source or elapsed time: %q", view)
	}
	frozen := h.Elapsed()
	time.Sleep(2 * time.Millisecond)
	if h.Elapsed() != frozen {
		t.Error("elapsed time should be frozen after SetDone")
	}
}

func TestMetricsModel_SysStats(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(80, 8)
	m.UpdateSysStats(SysStatsMsg{CPUPercent: 12.5, MemPercent: 40, ProcessRSS: 10 << 20})
	view := m.View()
	for _, want := range []string{"12.5%", "40.0%", "RSS:", "10.0 MB"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
