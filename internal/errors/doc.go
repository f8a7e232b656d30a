// Package apperrors defines the error types of perfphylo and the mapping from
// an error chain to a process exit code.
//
// ConfigError and ValidationError cover bad options, InputError a malformed
// matrix (with source and line), and ResolutionError a failed resolution run.
// Every wrapping type implements Unwrap, so callers test causes with
// errors.Is and errors.As; ExitCodeFor relies on that.
package apperrors
