// Package tui provides a terminal browser for resolution results: the
// baseline and every evaluated completion in a list, the selected matrix
// and tree in a scrollable pane, and live progress while completions run.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/perfphylo/internal/config"
	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/format"
	"github.com/agbru/perfphylo/internal/metrics"
	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/phylogeny"
	"github.com/agbru/perfphylo/internal/render"
	"github.com/agbru/perfphylo/internal/sysmon"
)

// Layout constants for the result browser.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 6
	ListPanelWidthPercent = 35
	MetricsPanelHeight    = 8
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	err        error
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

// listWidth returns the width allocated to the result list.
func (l LayoutManager) listWidth() int {
	return l.width * ListPanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column (metrics + detail).
func (l LayoutManager) rightWidth() int {
	return l.width - l.listWidth()
}

// metricsHeight returns the height allocated to the metrics panel.
func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

// detailHeight returns the height allocated to the detail pane.
func (l LayoutManager) detailHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// entry is one selectable row of the result list.
type entry struct {
	title      string
	assignment []phylogeny.Cell
	result     *phylogeny.Result
}

// Model is the root bubbletea model of the result browser.
type Model struct {
	header  HeaderModel
	metrics MetricsModel
	detail  viewport.Model

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	matrix    phylogeny.Matrix
	options   orchestration.Options
	format    render.Format
	dot       render.DOTOptions
	marker    string
	ref       *programRef

	resolution *orchestration.Resolution
	entries    []entry
	cursor     int
}

// NewModel creates a new TUI model analyzing m with the settings of cfg.
// cfg is expected to be validated.
func NewModel(parentCtx context.Context, m phylogeny.Matrix, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	mode, err := orchestration.ParseMode(cfg.Mode)
	if err != nil {
		mode = orchestration.ModeFirstRest
	}
	f, err := render.ParseFormat(cfg.Format)
	if err != nil {
		f = render.DOT
	}

	return Model{
		header:  NewHeaderModel(version, cfg.Input),
		metrics: NewMetricsModel(),
		detail:  viewport.New(0, 0),
		keymap:  DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		matrix:    m,
		options: orchestration.Options{
			Mode:        mode,
			Internal:    cfg.Internal,
			Parallelism: cfg.Parallel,
		},
		format: f,
		dot:    render.DOTOptions{KeepUnderscores: cfg.KeepUnderscores},
		marker: cfg.Marker,
		ref:    &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.generation),
		resolveCmd(m.ref, m.ctx, m.matrix, m.options, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ResolutionStartedMsg:
		if msg.Generation == m.generation {
			m.metrics.Start(msg.Mode, msg.Total)
		}
		return m, nil

	case CandidateMsg:
		if msg.Generation == m.generation {
			m.metrics.AddCandidate(msg.Candidate, msg.Done, msg.Total)
		}
		return m, nil

	case ResolutionDoneMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a replaced run
		}
		m.done = true
		m.header.SetDone()
		m.setResolution(msg.Resolution)
		m.exitCode = apperrors.ExitSuccess
		if !msg.Resolution.Perfect() {
			m.exitCode = apperrors.ExitNotPerfect
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.err = msg.Err
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		m.header.SetDone()
		m.detail.SetContent(statusErrorStyle.Render(fmt.Sprintf("Error: %v", msg.Err)))
		return m, nil

	case TickMsg:
		if m.done || msg.Generation != m.generation {
			return m, nil
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd(m.generation))

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.metrics.UpdateSysStats(msg)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refreshDetail()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.refreshDetail()
		}
		return m, nil

	case key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keymap.Internal):
		m.options.Internal = !m.options.Internal
		return m.restart()

	case key.Matches(msg, m.keymap.Rerun):
		return m.restart()
	}

	return m, nil
}

// restart cancels the current run and resolves the matrix again under a new
// generation, so late messages from the old run are ignored.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	ctx, cancel := context.WithCancel(m.parentCtx)
	m.ctx = ctx
	m.cancel = cancel

	m.header.Reset()
	m.metrics = NewMetricsModel()
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.done = false
	m.err = nil
	m.exitCode = apperrors.ExitSuccess
	m.resolution = nil
	m.entries = nil
	m.cursor = 0
	m.detail.SetContent("")

	return m, tea.Batch(
		tickCmd(m.generation),
		resolveCmd(m.ref, m.ctx, m.matrix, m.options, m.generation),
	)
}

// setResolution fills the list with the baseline followed by every
// completion in enumeration order.
func (m *Model) setResolution(res *orchestration.Resolution) {
	m.resolution = res
	m.metrics.Finish(res)
	m.entries = make([]entry, 0, len(res.Candidates)+1)
	m.entries = append(m.entries, entry{title: "Baseline", result: res.Baseline})
	for _, c := range res.Candidates {
		m.entries = append(m.entries, entry{
			title:      fmt.Sprintf("#%d %s", c.Index, format.FormatAssignment(res.Cells, c.Assignment)),
			assignment: c.Assignment,
			result:     c.Result,
		})
	}
	m.cursor = min(m.cursor, len(m.entries)-1)
	m.refreshDetail()
}

func (m *Model) refreshDetail() {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.detailContent(m.entries[m.cursor]))
	m.detail.GotoTop()
}

// detailContent renders the matrix, column order, verdict and tree of e.
func (m Model) detailContent(e entry) string {
	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render(e.title))
	sb.WriteString("\n\n")
	sb.WriteString(format.FormatMatrix(e.result.Matrix(), m.marker))
	fmt.Fprintf(&sb, "\nOrder: %s\n", format.FormatOrder(e.result.Order()))
	if !e.result.Perfect() {
		sb.WriteString(infeasibleStyle.Render("✗ no perfect phylogeny"))
		sb.WriteString("\n")
		return sb.String()
	}
	sb.WriteString(perfectStyle.Render("✓ perfect phylogeny"))
	sb.WriteString("\n\n")
	if err := render.Write(&sb, m.format, e.result, m.dot); err != nil {
		sb.WriteString(statusErrorStyle.Render(err.Error()))
	}
	return sb.String()
}

// View renders the entire browser.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.header.View()
	detail := panelStyle.
		Width(max(m.rightWidth()-2, 0)).
		Height(max(m.detailHeight()-2, 0)).
		Render(m.detail.View())
	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), detail)
	list := m.listView(lipgloss.Height(rightCol))
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footerView())
}

// listView renders the result list, scrolled so the cursor stays visible.
func (m Model) listView(height int) string {
	inner := max(height-2, 1)
	var lines []string
	if len(m.entries) == 0 {
		lines = append(lines, metricLabelStyle.Render(" waiting for results..."))
	}
	first := max(m.cursor-inner+1, 0)
	for i := first; i < len(m.entries) && len(lines) < inner; i++ {
		e := m.entries[i]
		mark := infeasibleStyle.Render("✗")
		if e.result.Perfect() {
			mark = perfectStyle.Render("✓")
		}
		style, pointer := itemStyle, "  "
		if i == m.cursor {
			style, pointer = selectedItemStyle, "▸ "
		}
		lines = append(lines, style.Render(pointer+e.title)+" "+mark)
	}
	return panelStyle.
		Width(max(m.listWidth()-2, 0)).
		Height(inner).
		Render(strings.Join(lines, "\n"))
}

func (m Model) footerView() string {
	var parts []string
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	help := strings.Join(parts, "  ")

	var status string
	switch {
	case m.err != nil:
		status = statusErrorStyle.Render("Error")
	case !m.done:
		status = statusRunningStyle.Render("Running")
	default:
		status = resolutionStatus(m.resolution)
	}
	if m.options.Internal {
		status += footerDescStyle.Render(" | internal labels")
	}

	gap := max(m.width-lipgloss.Width(help)-lipgloss.Width(status)-2, 1)
	return " " + help + spaces(gap) + status
}

// resolutionStatus reports the baseline verdict and, when the matrix has
// ambiguous cells, how many completions are perfect.
func resolutionStatus(res *orchestration.Resolution) string {
	var parts []string
	if res.Baseline.Perfect() {
		parts = append(parts, "Perfect")
	}
	if len(res.Candidates) > 0 {
		parts = append(parts, fmt.Sprintf("Feasible %d/%d", len(res.Feasible()), len(res.Candidates)))
	}
	if !res.Perfect() {
		return statusErrorStyle.Render("Not perfect")
	}
	return statusDoneStyle.Render(strings.Join(parts, " | "))
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.detail.Width = max(m.rightWidth()-4, 0)
	m.detail.Height = max(m.detailHeight()-2, 0)
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, m phylogeny.Matrix, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, m, cfg, version)
	defer model.cancel()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Input == "" || cfg.Input == config.StdinInput {
		// The matrix consumed stdin; read keys from the terminal instead.
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(model, programOpts...)
	// Inject the program reference before running so resolver goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitCodeFor(ctx.Err())
		}
		return apperrors.ExitErrorGeneric
	}

	if fm, ok := finalModel.(Model); ok {
		fm.cancel()
		if !fm.done {
			return apperrors.ExitErrorCanceled
		}
		return fm.exitCode
	}
	return apperrors.ExitSuccess
}

// resolveCmd returns a tea.Cmd that runs the resolution and reports it as
// a ResolutionDoneMsg or an ErrorMsg.
func resolveCmd(ref *programRef, ctx context.Context, mat phylogeny.Matrix, opts orchestration.Options, gen uint64) tea.Cmd {
	return func() tea.Msg {
		opts.Observer = &TUIObserver{ref: ref, generation: gen}
		res, err := orchestration.Resolve(ctx, mat, opts)
		if err != nil {
			return ErrorMsg{Err: err, Generation: gen}
		}
		return ResolutionDoneMsg{Resolution: res, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg for gen after 500ms.
func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Generation: gen}
	})
}

// sampleSysStatsCmd reads host CPU and memory usage and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg(metrics.ReadMemory())
	}
}
