package config

import (
	"flag"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/perfphylo/internal/errors"
)

// FileConfig is the YAML schema of the -config file. Absent keys leave the
// flag default in place.
type FileConfig struct {
	Input           *string `yaml:"input"`
	Output          *string `yaml:"output"`
	Format          *string `yaml:"format"`
	Internal        *bool   `yaml:"internal"`
	KeepUnderscores *bool   `yaml:"keep_underscores"`
	Mode            *string `yaml:"mode"`
	Marker          *string `yaml:"marker"`
	Timeout         *string `yaml:"timeout"`
	Parallel        *int    `yaml:"parallel"`
	MetricsFile     *string `yaml:"metrics_file"`
	Verbose         *bool   `yaml:"verbose"`
	Quiet           *bool   `yaml:"quiet"`
	NoColor         *bool   `yaml:"no_color"`
}

// LoadFile reads and decodes a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewConfigError("open config file: %v", err)
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, apperrors.NewConfigError("parse config file %s: %v", path, err)
	}
	return &fc, nil
}

// applyFileConfig copies file values into config for flags that were not
// set on the command line.
func applyFileConfig(config *AppConfig, fs *flag.FlagSet, path string) error {
	fc, err := LoadFile(path)
	if err != nil {
		return err
	}

	setString := func(dst *string, v *string, flags ...string) {
		if v != nil && !isFlagSetAny(fs, flags...) {
			*dst = *v
		}
	}
	setBool := func(dst *bool, v *bool, flags ...string) {
		if v != nil && !isFlagSetAny(fs, flags...) {
			*dst = *v
		}
	}

	setString(&config.Input, fc.Input, "input", "i")
	setString(&config.OutputDir, fc.Output, "output", "o")
	setString(&config.Format, fc.Format, "format")
	setString(&config.Mode, fc.Mode, "mode")
	setString(&config.Marker, fc.Marker, "marker")
	setString(&config.MetricsFile, fc.MetricsFile, "metrics-file")
	setBool(&config.Internal, fc.Internal, "internal")
	setBool(&config.KeepUnderscores, fc.KeepUnderscores, "keep-underscores")
	setBool(&config.Verbose, fc.Verbose, "verbose", "v")
	setBool(&config.Quiet, fc.Quiet, "quiet", "q")
	setBool(&config.NoColor, fc.NoColor, "no-color")

	if fc.Parallel != nil && !isFlagSet(fs, "parallel") {
		config.Parallel = *fc.Parallel
	}
	if fc.Timeout != nil && !isFlagSet(fs, "timeout") {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return apperrors.NewConfigError("config file %s: invalid timeout %q", path, *fc.Timeout)
		}
		config.Timeout = d
	}
	return nil
}
