package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/format"
	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized summaries in the command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResolution displays the baseline verdict and, when the matrix has
// ambiguous cells, a table of the evaluated completions. Quiet mode prints
// only the verdict line.
func (CLIResultPresenter) PresentResolution(res *orchestration.Resolution, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		fmt.Fprintln(out, FormatQuietVerdict(res))
		return
	}

	m := res.Baseline.Matrix()
	fmt.Fprintf(out, "\n%s--- Perfect Phylogeny ---%s\n", ui.ColorBold(), ui.ColorReset())
	if opts.Source != "" {
		fmt.Fprintf(out, "Source:     %s\n", ui.Colorize(ui.ColorPrimary(), opts.Source))
	}
	fmt.Fprintf(out, "Matrix:     %d taxa x %d characters, %d ambiguous\n", m.Taxa(), m.Characters(), len(res.Cells))
	if opts.Verbose {
		fmt.Fprintf(out, "\n%s\n", format.FormatMatrix(m, opts.Marker))
	}
	fmt.Fprintf(out, "Order:      %s\n", format.FormatOrder(res.Baseline.Order()))
	fmt.Fprintf(out, "Baseline:   %s\n", verdict(res.Baseline.Perfect()))

	if len(res.Candidates) > 0 {
		presentCandidates(res, out)
	}
	fmt.Fprintf(out, "Total time: %s\n", ui.Colorize(ui.ColorYellow(), format.FormatExecutionDuration(res.Duration)))
}

// presentCandidates prints one row per completion with manual padding, since
// color codes break fmt width verbs.
func presentCandidates(res *orchestration.Resolution, out io.Writer) {
	fmt.Fprintf(out, "\n%s%s completions%s\n", ui.ColorBold(), res.Mode, ui.ColorReset())

	const assignHeader, durHeader = "Assignment", "Duration"
	maxAssign, maxDur := len(assignHeader), len(durHeader)
	assignments := make([]string, len(res.Candidates))
	durations := make([]string, len(res.Candidates))
	for i, c := range res.Candidates {
		assignments[i] = format.FormatAssignment(res.Cells, c.Assignment)
		durations[i] = candidateDuration(c)
		maxAssign = max(maxAssign, len(assignments[i]))
		maxDur = max(maxDur, len(durations[i]))
	}

	fmt.Fprintf(out, "  #   %s%s   %s%s   Status\n",
		assignHeader, padRight("", maxAssign-len(assignHeader)),
		durHeader, padRight("", maxDur-len(durHeader)))
	for i, c := range res.Candidates {
		fmt.Fprintf(out, "  %-3d %s%s   %s%s   %s\n",
			c.Index,
			ui.Colorize(ui.ColorPrimary(), assignments[i]), padRight("", maxAssign-len(assignments[i])),
			ui.Colorize(ui.ColorYellow(), durations[i]), padRight("", maxDur-len(durations[i])),
			verdict(c.Perfect()))
	}
	fmt.Fprintf(out, "Feasible:   %d of %d\n", len(res.Feasible()), len(res.Candidates))
}

func candidateDuration(c orchestration.Candidate) string {
	if c.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(c.Duration)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

func verdict(perfect bool) string {
	if perfect {
		return ui.Colorize(ui.ColorGreen(), "✅ perfect phylogeny")
	}
	return ui.Colorize(ui.ColorRed(), "❌ no perfect phylogeny")
}

// FormatQuietVerdict returns the single line printed in quiet mode:
// "perfect", "feasible <k>/<n>" or "not-perfect".
func FormatQuietVerdict(res *orchestration.Resolution) string {
	switch feasible := len(res.Feasible()); {
	case res.Baseline.Perfect():
		return "perfect"
	case feasible > 0:
		return fmt.Sprintf("feasible %d/%d", feasible, len(res.Candidates))
	default:
		return "not-perfect"
	}
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	code := apperrors.ExitCodeFor(err)
	switch code {
	case apperrors.ExitSuccess:
		return code
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "%sTimeout: the run exceeded its deadline.%s\n", ui.ColorRed(), ui.ColorReset())
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled.%s\n", ui.ColorYellow(), ui.ColorReset())
	case apperrors.ExitErrorInput:
		fmt.Fprintf(out, "%sInvalid matrix: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	case apperrors.ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return code
}
