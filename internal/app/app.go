// Package app wires configuration, input, resolution and presentation into
// the perfphylo command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/perfphylo/internal/cli"
	"github.com/agbru/perfphylo/internal/config"
	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/logging"
	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/render"
	"github.com/agbru/perfphylo/internal/tui"
	"github.com/agbru/perfphylo/internal/ui"
)

// Application represents the perfphylo application instance.
type Application struct {
	Config    config.AppConfig
	In        io.Reader
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used for stdin matrices and the REPL.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithLogger replaces the default console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// Choices returns the accepted modes and formats.
func Choices() config.Choices {
	var c config.Choices
	for _, m := range orchestration.Modes() {
		c.Modes = append(c.Modes, string(m))
	}
	for _, f := range render.Formats() {
		c.Formats = append(c.Formats, string(f))
	}
	return c
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{In: os.Stdin, ErrWriter: errWriter}

	programName := "perfphylo"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, Choices())
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveParallelism(cfg)

	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "perfphylo", app.Config.Verbose)
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Interactive {
		return a.runREPL(out)
	}
	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runAnalyze(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, Choices()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive matrix entry session.
func (a *Application) runREPL(out io.Writer) int {
	mode, err := orchestration.ParseMode(a.Config.Mode)
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(apperrors.NewConfigError("%v", err), a.ErrWriter)
	}
	format, err := render.ParseFormat(a.Config.Format)
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(apperrors.NewConfigError("%v", err), a.ErrWriter)
	}

	repl := cli.NewREPL(cli.REPLConfig{
		Mode:        mode,
		Internal:    a.Config.Internal,
		Marker:      a.Config.Marker,
		Timeout:     a.Config.Timeout,
		Parallelism: a.Config.Parallel,
		Output: cli.OutputConfig{
			Format:          format,
			KeepUnderscores: a.Config.KeepUnderscores,
		},
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive result browser.
func (a *Application) runTUI(ctx context.Context) int {
	m, err := a.readMatrix()
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, a.ErrWriter)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, m, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
