// Package config parses and validates the perfphylo command-line
// configuration. Values are resolved with the priority
// CLI flags > environment (PERFPHYLO_*) > YAML config file > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/perfphylo/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "PERFPHYLO_"
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = 30 * time.Second
	// DefaultFormat is the rendering format.
	DefaultFormat = "dot"
	// DefaultMode is the ambiguity resolution mode.
	DefaultMode = "first-rest"
	// DefaultMarker is the ambiguity token in matrix files.
	DefaultMarker = "*"
	// StdinInput selects standard input as the matrix source.
	StdinInput = "-"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Input is the matrix source path, or "-" for standard input.
	Input string
	// OutputDir receives one rendered file per tree; empty disables files.
	OutputDir string
	// Format is the rendering format (dot, json, yaml).
	Format string
	// Internal keeps taxon labels on internal nodes.
	Internal bool
	// KeepUnderscores keeps identifiers such as S_1 intact in DOT output.
	KeepUnderscores bool
	// Mode is the ambiguity resolution mode.
	Mode string
	// Marker is the ambiguity token.
	Marker string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Parallel bounds concurrent completion evaluations; 0 picks a default.
	Parallel int
	// MetricsFile receives Prometheus metrics in textfile format.
	MetricsFile string
	// ConfigFile is an optional YAML file with defaults for the fields above.
	ConfigFile string
	// Verbose enables debug logging and pipeline trace events.
	Verbose bool
	// Quiet limits output to the essentials.
	Quiet bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI opens the interactive result browser.
	TUI bool
	// Interactive starts the REPL.
	Interactive bool
	// Completion names a shell whose completion script is printed instead
	// of running an analysis.
	Completion string
}

// Choices lists the accepted values of enumerated options.
type Choices struct {
	Modes   []string
	Formats []string
}

// ParseConfig parses the command-line arguments, applies the YAML file and
// environment overrides, and validates the result.
//
// Parameters:
//   - programName: The program name for usage messages.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Where usage and flag errors are written.
//   - choices: The accepted modes and formats.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, an apperrors.ConfigError
//     otherwise.
func ParseConfig(programName string, args []string, errorWriter io.Writer, choices Choices) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Input, "input", StdinInput, "Matrix file to read (\"-\" for stdin).")
	fs.StringVar(&config.Input, "i", StdinInput, "Matrix file to read (shorthand).")
	fs.StringVar(&config.OutputDir, "output", "", "Directory receiving one rendered file per tree.")
	fs.StringVar(&config.OutputDir, "o", "", "Output directory (shorthand).")
	fs.StringVar(&config.Format, "format", DefaultFormat, fmt.Sprintf("Output format (%s).", strings.Join(choices.Formats, ", ")))
	fs.BoolVar(&config.Internal, "internal", false, "Keep taxon labels on internal nodes.")
	fs.BoolVar(&config.KeepUnderscores, "keep-underscores", false, "Keep underscores in DOT identifiers.")
	fs.StringVar(&config.Mode, "mode", DefaultMode, fmt.Sprintf("Ambiguity resolution mode (%s).", strings.Join(choices.Modes, ", ")))
	fs.StringVar(&config.Marker, "marker", DefaultMarker, "Token denoting an ambiguous cell.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time for the whole run.")
	fs.IntVar(&config.Parallel, "parallel", 0, "Concurrent completion evaluations (0 = automatic).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.StringVar(&config.ConfigFile, "config", "", "YAML file with default option values.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and pipeline traces.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Minimal output.")
	fs.BoolVar(&config.Quiet, "q", false, "Minimal output (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.TUI, "tui", false, "Browse the results in an interactive terminal UI.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start an interactive session to enter matrices.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for the shell (bash, zsh, fish, powershell).")
	fs.Bool("version", false, "Print version information and exit.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options] [matrix-file]\n\n", programName)
		fmt.Fprintln(errorWriter, "Decides whether a binary character matrix admits a perfect phylogeny")
		fmt.Fprintln(errorWriter, "and renders the tree. Cells are 0, 1, or the ambiguity marker.")
		fmt.Fprintln(errorWriter, "\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if isFlagSetAny(fs, "input", "i") {
			return AppConfig{}, apperrors.NewConfigError("matrix file given both as -input and as argument")
		}
	default:
		return AppConfig{}, apperrors.NewConfigError("expected at most one matrix file, got %d", fs.NArg())
	}

	if config.ConfigFile != "" {
		if err := applyFileConfig(&config, fs, config.ConfigFile); err != nil {
			return AppConfig{}, err
		}
	}
	applyEnvOverrides(&config, fs)
	// A positional matrix file counts as a CLI flag.
	if fs.NArg() == 1 {
		config.Input = fs.Arg(0)
	}

	if err := config.Validate(choices); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration. An empty
// list in choices accepts any value for that option.
func (c AppConfig) Validate(choices Choices) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Parallel < 0 {
		return apperrors.NewConfigError("parallel must be zero or positive, got %d", c.Parallel)
	}
	if len(choices.Modes) > 0 && !slices.Contains(choices.Modes, strings.ToLower(c.Mode)) {
		return apperrors.NewConfigError("unknown mode %q (available: %s)", c.Mode, strings.Join(choices.Modes, ", "))
	}
	if len(choices.Formats) > 0 && !slices.Contains(choices.Formats, strings.ToLower(c.Format)) {
		return apperrors.NewConfigError("unknown format %q (available: %s)", c.Format, strings.Join(choices.Formats, ", "))
	}
	if c.Marker == "" || c.Marker == "0" || c.Marker == "1" || strings.ContainsAny(c.Marker, " \t#") {
		return apperrors.NewConfigError("invalid ambiguity marker %q", c.Marker)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}
	if c.TUI && c.Interactive {
		return apperrors.NewConfigError("-tui and -interactive are mutually exclusive")
	}
	return nil
}
