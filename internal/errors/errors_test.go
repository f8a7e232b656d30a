// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("unknown mode %q for flag %s", "greedy", "--mode"),
			expected: `unknown mode "greedy" for flag --mode`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestInputError(t *testing.T) {
	t.Parallel()
	cause := errors.New(`invalid token "x"`)
	tests := []struct {
		name     string
		err      InputError
		expected string
	}{
		{"with line", InputError{Source: "matrix.txt", Line: 3, Cause: cause}, `matrix.txt:3: invalid token "x"`},
		{"without line", InputError{Source: "stdin", Cause: cause}, `stdin: invalid token "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, cause) {
				t.Error("errors.Is should find the cause through InputError")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "ambiguous", Message: "20 cells exceed the exhaustive limit of 16"}
	expected := `validation error for "ambiguous": 20 cells exceed the exhaustive limit of 16`
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}

	var validationErr ValidationError
	if !errors.As(WrapError(err, "resolve"), &validationErr) {
		t.Fatal("errors.As should find ValidationError through WrapError")
	}
	if validationErr.Field != "ambiguous" {
		t.Errorf("expected Field %q, got %q", "ambiguous", validationErr.Field)
	}
}

func TestResolutionError(t *testing.T) {
	t.Parallel()
	err := ResolutionError{Mode: "exhaustive", Cause: context.Canceled}
	if err.Error() != "exhaustive resolution failed: context canceled" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("errors.Is should find context.Canceled through ResolutionError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to open matrix",
			expectedMsg: "failed to open matrix: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "resolution timed out",
			expectedMsg: "resolution timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("permission denied"),
			format:      "write %s (%d of %d)",
			args:        []any{"tree_0.dot", 1, 4},
			expectedMsg: "write tree_0.dot (1 of 4): permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"validation", ValidationError{Field: "mode", Message: "unknown"}, ExitErrorConfig},
		{"input", InputError{Source: "m.txt", Line: 1, Cause: errors.New("bad")}, ExitErrorInput},
		{"wrapped input", WrapError(InputError{Source: "m.txt", Cause: errors.New("bad")}, "load"), ExitErrorInput},
		{"deadline", ResolutionError{Mode: "exhaustive", Cause: context.DeadlineExceeded}, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitNotPerfect":    ExitNotPerfect,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorInput":    ExitErrorInput,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
