package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/perfphylo/internal/cli"
	"github.com/agbru/perfphylo/internal/config"
	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/format"
	"github.com/agbru/perfphylo/internal/logging"
	"github.com/agbru/perfphylo/internal/matrixio"
	"github.com/agbru/perfphylo/internal/metrics"
	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/phylogeny"
	"github.com/agbru/perfphylo/internal/render"
)

// runAnalyze reads the matrix, resolves it and reports the outcome: the
// summary on out, the trees as files (or on out when no directory is set)
// and optionally a metrics textfile.
func (a *Application) runAnalyze(ctx context.Context, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	m, err := a.readMatrix()
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}
	a.Logger.Debug("matrix loaded",
		logging.String("source", a.source()),
		logging.Int("taxa", m.Taxa()),
		logging.Int("characters", m.Characters()),
		logging.Int("ambiguous", len(m.AmbiguousCells())))

	mode, err := orchestration.ParseMode(a.Config.Mode)
	if err != nil {
		return presenter.HandleError(apperrors.NewConfigError("%v", err), a.ErrWriter)
	}
	outputCfg, err := a.outputConfig()
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	if !a.Config.Quiet {
		cli.DisplayExecutionConfig(a.Config, out)
	}

	collector := metrics.NewCollector()
	observers := orchestration.MultiObserver{collector}
	var spinner *cli.SpinnerObserver
	if !a.Config.Quiet {
		spinner = cli.NewSpinnerObserver(out)
		observers = append(observers, spinner)
	}

	opts := orchestration.Options{
		Mode:        mode,
		Internal:    a.Config.Internal,
		Parallelism: a.Config.Parallel,
		Observer:    observers,
	}
	if a.Config.Verbose {
		opts.Tracer = phylogeny.LogTracer(a.Logger)
	}

	res, err := orchestration.Resolve(ctx, m, opts)
	if err != nil {
		if spinner != nil {
			spinner.Close()
		}
		a.Logger.Error("resolution failed", err, logging.String("mode", string(mode)))
		return presenter.HandleError(err, a.ErrWriter)
	}
	a.Logger.Debug("resolution finished",
		logging.Int("candidates", len(res.Candidates)),
		logging.Int("feasible", len(res.Feasible())),
		logging.Duration("duration", res.Duration))

	presenter.PresentResolution(res, orchestration.PresentationOptions{
		Source:  a.source(),
		Marker:  a.Config.Marker,
		Verbose: a.Config.Verbose,
		Quiet:   a.Config.Quiet,
	}, out)

	if code := a.emitTrees(res, outputCfg, out); code != apperrors.ExitSuccess {
		return code
	}

	if a.Config.MetricsFile != "" {
		if err := collector.WriteTextfile(a.Config.MetricsFile); err != nil {
			return presenter.HandleError(fmt.Errorf("metrics: %w", err), a.ErrWriter)
		}
		a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	}

	if !res.Perfect() {
		return apperrors.ExitNotPerfect
	}
	return apperrors.ExitSuccess
}

// emitTrees writes the trees into the output directory, or prints them to
// out when none is configured. Quiet mode without a directory prints nothing.
func (a *Application) emitTrees(res *orchestration.Resolution, outputCfg cli.OutputConfig, out io.Writer) int {
	if outputCfg.Dir != "" {
		paths, err := cli.WriteTrees(res, cli.BaseName(a.Config.Input), outputCfg)
		if err != nil {
			return cli.CLIResultPresenter{}.HandleError(err, a.ErrWriter)
		}
		if !a.Config.Quiet {
			cli.DisplayWrittenFiles(out, paths)
		}
		return apperrors.ExitSuccess
	}
	if a.Config.Quiet {
		return apperrors.ExitSuccess
	}

	if err := cli.DisplayTree(out, "Baseline tree", res.Baseline, outputCfg); err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, a.ErrWriter)
	}
	for i, c := range res.Feasible() {
		title := fmt.Sprintf("Completion %d (%s)", i, format.FormatAssignment(res.Cells, c.Assignment))
		if err := cli.DisplayTree(out, title, c.Result, outputCfg); err != nil {
			return cli.CLIResultPresenter{}.HandleError(err, a.ErrWriter)
		}
	}
	return apperrors.ExitSuccess
}

// readMatrix parses the configured input; "-" reads from a.In.
func (a *Application) readMatrix() (phylogeny.Matrix, error) {
	opts := matrixio.Options{Marker: a.Config.Marker}
	if isStdin(a.Config.Input) {
		return matrixio.Parse(a.In, matrixio.StdinSource, opts)
	}
	return matrixio.ReadFile(a.Config.Input, opts)
}

func (a *Application) source() string {
	if isStdin(a.Config.Input) {
		return matrixio.StdinSource
	}
	return a.Config.Input
}

func (a *Application) outputConfig() (cli.OutputConfig, error) {
	f, err := render.ParseFormat(a.Config.Format)
	if err != nil {
		return cli.OutputConfig{}, apperrors.NewConfigError("%v", err)
	}
	return cli.OutputConfig{
		Dir:             a.Config.OutputDir,
		Format:          f,
		KeepUnderscores: a.Config.KeepUnderscores,
	}, nil
}

func isStdin(input string) bool {
	return input == "" || input == config.StdinInput
}
