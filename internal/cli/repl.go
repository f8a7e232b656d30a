// Package cli provides the command-line presentation layer: result summaries,
// progress display, tree files, shell completion and the interactive REPL
// for entering matrices.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/format"
	"github.com/agbru/perfphylo/internal/matrixio"
	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/phylogeny"
	"github.com/agbru/perfphylo/internal/render"
	"github.com/agbru/perfphylo/internal/ui"
)

// replSource names REPL input in parse errors.
const replSource = "input"

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Mode is the initial ambiguity resolution mode.
	Mode orchestration.Mode
	// Internal keeps taxon labels on internal nodes.
	Internal bool
	// Marker is the ambiguity token accepted in rows.
	Marker string
	// Timeout bounds each run.
	Timeout time.Duration
	// Parallelism bounds concurrent completion evaluations.
	Parallelism int
	// Output configures how trees are printed.
	Output OutputConfig
}

// REPL is an interactive session in which the user types matrix rows and
// analyzes them.
type REPL struct {
	config REPLConfig
	rows   []string
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	if config.Mode == "" {
		config.Mode = orchestration.ModeFirstRest
	}
	if config.Marker == "" {
		config.Marker = matrixio.DefaultMarker
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Output.Format == "" {
		config.Output.Format = render.DOT
	}
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It reads lines until "exit" or EOF.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"phylo> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}

		// A final line without newline still runs before EOF ends the session.
		input = strings.TrimSpace(input)
		if input != "" && !strings.HasPrefix(input, "#") && !r.processCommand(input) {
			return
		}
		if err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════╗%s\n", ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s      %sPerfect Phylogeny - Interactive Mode%s            %s║%s\n",
		ui.ColorPrimary(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorPrimary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════╝%s\n\n", ui.ColorPrimary(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	cmd := func(name, desc string) {
		fmt.Fprintf(r.out, "  %s%-22s%s - %s\n", ui.ColorYellow(), name, ui.ColorReset(), desc)
	}
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	cmd(fmt.Sprintf("<row>  e.g. 1 0 %s", r.config.Marker), "Append a taxon row (0, 1 or "+r.config.Marker+")")
	cmd("run", "Analyze the matrix entered so far")
	cmd("show", "Print the current matrix")
	cmd("undo", "Remove the last row")
	cmd("clear", "Discard all rows")
	cmd("internal on|off", "Keep taxon labels on internal nodes")
	cmd("mode <name>", "Change the resolution mode ("+modeList()+")")
	cmd("status", "Display current configuration")
	cmd("help", "Display this help")
	cmd("exit / quit", "Exit interactive mode")
}

func modeList() string {
	names := make([]string, 0, len(orchestration.Modes()))
	for _, m := range orchestration.Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	// Rows take precedence so that markers such as "?" or "X" are never read
	// as a command alias.
	if r.isRowToken(parts[0]) {
		r.addRow(input)
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "run", "r":
		r.cmdRun()
	case "show", "s":
		r.cmdShow()
	case "undo", "u":
		r.cmdUndo()
	case "clear":
		r.rows = nil
		fmt.Fprintln(r.out, "Matrix cleared.")
	case "internal":
		r.cmdInternal(args)
	case "mode", "m":
		r.cmdMode(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

func (r *REPL) isRowToken(tok string) bool {
	return tok == "0" || tok == "1" || tok == r.config.Marker
}

// addRow validates a row against the marker and the width of earlier rows
// before appending it.
func (r *REPL) addRow(line string) {
	candidate := append(append([]string(nil), r.rows...), line)
	if _, err := r.parse(candidate); err != nil {
		var inputErr apperrors.InputError
		if errors.As(err, &inputErr) {
			err = inputErr.Cause
		}
		fmt.Fprintf(r.out, "%sRejected row: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.rows = candidate
	fmt.Fprintf(r.out, "%s%s%s added.\n", ui.ColorDim(), phylogeny.TaxonID(len(r.rows)-1), ui.ColorReset())
}

func (r *REPL) parse(rows []string) (phylogeny.Matrix, error) {
	return matrixio.ParseString(strings.Join(rows, "\n"), replSource, matrixio.Options{Marker: r.config.Marker})
}

func (r *REPL) cmdRun() {
	if len(r.rows) == 0 {
		fmt.Fprintf(r.out, "%sNo rows entered yet.%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	m, err := r.parse(r.rows)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	res, err := orchestration.Resolve(ctx, m, orchestration.Options{
		Mode:        r.config.Mode,
		Internal:    r.config.Internal,
		Parallelism: r.config.Parallelism,
	})
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	CLIResultPresenter{}.PresentResolution(res, orchestration.PresentationOptions{Marker: r.config.Marker}, r.out)
	r.displayTree("Baseline tree", res.Baseline)
	for i, c := range res.Feasible() {
		r.displayTree(fmt.Sprintf("Completion %d (%s)", i, format.FormatAssignment(res.Cells, c.Assignment)), c.Result)
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) displayTree(title string, res *phylogeny.Result) {
	if err := DisplayTree(r.out, title, res, r.config.Output); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
}

func (r *REPL) cmdShow() {
	if len(r.rows) == 0 {
		fmt.Fprintf(r.out, "%s(empty matrix)%s\n", ui.ColorDim(), ui.ColorReset())
		return
	}
	m, err := r.parse(r.rows)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprint(r.out, format.FormatMatrix(m, r.config.Marker))
}

func (r *REPL) cmdUndo() {
	if len(r.rows) == 0 {
		fmt.Fprintf(r.out, "%sNothing to undo.%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.rows = r.rows[:len(r.rows)-1]
	fmt.Fprintf(r.out, "Removed %s.\n", phylogeny.TaxonID(len(r.rows)))
}

func (r *REPL) cmdInternal(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintf(r.out, "%sUsage: internal on|off%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	r.config.Internal = args[0] == "on"
	fmt.Fprintf(r.out, "Internal labels: %s%s%s\n", ui.ColorGreen(), args[0], ui.ColorReset())
}

func (r *REPL) cmdMode(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: mode <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available modes: %s\n", modeList())
		return
	}
	mode, err := orchestration.ParseMode(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown mode: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		fmt.Fprintf(r.out, "Available modes: %s\n", modeList())
		return
	}
	r.config.Mode = mode
	fmt.Fprintf(r.out, "Mode changed to: %s%s%s\n", ui.ColorGreen(), mode, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Rows:      %s%d%s\n", ui.ColorPrimary(), len(r.rows), ui.ColorReset())
	fmt.Fprintf(r.out, "  Mode:      %s%s%s\n", ui.ColorPrimary(), r.config.Mode, ui.ColorReset())
	fmt.Fprintf(r.out, "  Internal:  %s%s%s\n", ui.ColorPrimary(), onOff(r.config.Internal), ui.ColorReset())
	fmt.Fprintf(r.out, "  Marker:    %s%s%s\n", ui.ColorPrimary(), r.config.Marker, ui.ColorReset())
	fmt.Fprintf(r.out, "  Format:    %s%s%s\n", ui.ColorPrimary(), r.config.Output.Format, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:   %s%s%s\n", ui.ColorPrimary(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}
