package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/perfphylo/internal/format"
	"github.com/agbru/perfphylo/internal/orchestration"
)

// durationSamples bounds the per-completion timing history.
const durationSamples = 48

// MetricsModel displays resolution progress, runtime and host resource
// usage, and the timing history of evaluated completions.
type MetricsModel struct {
	heapAlloc uint64
	sys       uint64
	numGC     uint32
	cpu       float64
	memUsed   float64
	rss       uint64
	mode      orchestration.Mode
	done      int
	total     int
	feasible  int
	durations *RingBuffer
	width     int
	height    int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{durations: NewRingBuffer(durationSamples)}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.heapAlloc = msg.HeapAlloc
	m.sys = msg.Sys
	m.numGC = msg.NumGC
}

// UpdateSysStats updates host usage and the process resident size.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.cpu = msg.CPUPercent
	m.memUsed = msg.MemPercent
	m.rss = msg.ProcessRSS
}

// Start resets the counters for a resolution of total completions.
func (m *MetricsModel) Start(mode orchestration.Mode, total int) {
	m.mode = mode
	m.total = total
	m.done = 0
	m.feasible = 0
	m.durations.Reset()
}

// AddCandidate records one evaluated completion.
func (m *MetricsModel) AddCandidate(c orchestration.Candidate, done, total int) {
	m.done = done
	m.total = total
	if c.Perfect() {
		m.feasible++
	}
	m.durations.Push(float64(c.Duration))
}

// Finish aligns the counters with a finished resolution, which matters when
// progress messages were dropped.
func (m *MetricsModel) Finish(res *orchestration.Resolution) {
	m.mode = res.Mode
	m.total = len(res.Candidates)
	m.done = m.total
	m.feasible = len(res.Feasible())
	if m.durations.Len() == 0 {
		for _, c := range res.Candidates {
			m.durations.Push(float64(c.Duration))
		}
	}
}

// Progress returns the completed fraction in [0, 1].
func (m MetricsModel) Progress() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.done) / float64(m.total)
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	heapStr := metricValueStyle.Render(formatBytes(m.heapAlloc) + " / " + formatBytes(m.sys))
	gcStr := metricValueStyle.Render(fmt.Sprintf("%d", m.numGC))
	pipe := metricLabelStyle.Render(" | ")
	rows.WriteString(fmt.Sprintf("  %s %s%s%s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		pipe,
		metricLabelStyle.Render("GC:"), gcStr,
		pipe,
		metricLabelStyle.Render("RSS:"), metricValueStyle.Render(formatBytes(m.rss))))

	colWidth := (m.width - 6) / 2
	mode := string(m.mode)
	if mode == "" {
		mode = "-"
	}
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Mode:", mode, colWidth))
	rows.WriteString(formatMetricCol("Feasible:", fmt.Sprintf("%d/%d", m.feasible, m.total), colWidth))
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("CPU:", fmt.Sprintf("%.1f%%", m.cpu), colWidth))
	rows.WriteString(formatMetricCol("Memory:", fmt.Sprintf("%.1f%%", m.memUsed), colWidth))

	barWidth := max(m.width-24, 10)
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Progress:", format.ProgressBar(m.Progress(), barWidth), colWidth))

	if samples := m.durations.Slice(); len(samples) > 0 {
		rows.WriteString("\n")
		rows.WriteString(fmt.Sprintf(" %s %s",
			metricLabelStyle.Render(fmt.Sprintf("%-12s", "Timings:")),
			sparklineStyle.Render(RenderSparkline(ScalePercent(samples)))))
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	// Pad to fixed column width using lipgloss-aware width
	visible := lipgloss.Width(cell)
	if visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}

func formatBytes(b uint64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
