package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agbru/perfphylo/internal/orchestration"
)

func runREPL(t *testing.T, config REPLConfig, script string) string {
	t.Helper()
	var out bytes.Buffer
	r := NewREPL(config)
	r.SetInput(strings.NewReader(script))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPL_RunSession(t *testing.T) {
	out := runREPL(t, REPLConfig{Timeout: 5 * time.Second}, "1 0\n0 1\n* 1\nshow\nrun\nexit\n")

	for _, want := range []string{
		"Perfect Phylogeny - Interactive Mode",
		"S_1 added.",
		"S_3 added.",
		"S_3 *   1",
		"Feasible:   2 of 4",
		"Baseline tree",
		"Completion 0 (S_3/C_1=0)",
		"Completion 1 (S_3/C_1=0)",
		`label = "Root"`,
		"Goodbye!",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Completion 2")
}

func TestREPL_RejectsBadRows(t *testing.T) {
	out := runREPL(t, REPLConfig{}, "1 0\n1 0 1\n1 x\nshow\n")

	assert.Contains(t, out, "Rejected row: row length mismatch: got 3 columns, want 2")
	assert.Contains(t, out, `Rejected row: invalid token "x" in column 2`)
	assert.Contains(t, out, "S_1 1   0")
	assert.NotContains(t, out, "S_2")
}

func TestREPL_InvalidToken(t *testing.T) {
	out := runREPL(t, REPLConfig{Marker: "?"}, "1 ?\n0 *\n")

	assert.Contains(t, out, "S_1 added.")
	assert.Contains(t, out, `Rejected row: invalid token "*" in column 2`)
}

func TestREPL_MarkerStartsRow(t *testing.T) {
	for _, marker := range []string{"X", "?", "h", "q", "r", "st"} {
		t.Run(marker, func(t *testing.T) {
			out := runREPL(t, REPLConfig{Marker: marker}, "1 0\n"+marker+" 1\nshow\nexit\n")

			assert.Contains(t, out, "S_2 added.")
			assert.Contains(t, out, "S_2 "+marker)
			assert.NotContains(t, out, "Unknown command")
			assert.Equal(t, 1, strings.Count(out, "Available commands:"), "help printed once by the banner")
			assert.Contains(t, out, "Goodbye!")
		})
	}
}

func TestREPL_Commands(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		contains []string
	}{
		{"run without rows", "run\n", []string{"No rows entered yet."}},
		{"show empty", "show\n", []string{"(empty matrix)"}},
		{"undo", "1 1\nundo\nundo\n", []string{"Removed S_1.", "Nothing to undo."}},
		{"clear", "1 1\nclear\nstatus\n", []string{"Matrix cleared.", "Rows:      0"}},
		{"internal", "internal on\nstatus\ninternal maybe\n", []string{"Internal labels: on", "Internal:  on", "Usage: internal on|off"}},
		{"mode", "mode exhaustive\nstatus\nmode greedy\nmode\n", []string{"Mode changed to: exhaustive", "Mode:      exhaustive", "Unknown mode: greedy", "Usage: mode <name>"}},
		{"help", "help\n", []string{"internal on|off"}},
		{"unknown", "frobnicate\n", []string{"Unknown command: frobnicate"}},
		{"eof without newline", "1 0", []string{"S_1 added.", "Goodbye!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runREPL(t, REPLConfig{}, tt.script)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestREPL_InternalLabelsReachTree(t *testing.T) {
	out := runREPL(t, REPLConfig{Mode: orchestration.ModeExhaustive}, "1 0\n1 1\n1 0\ninternal on\nrun\n")
	assert.Contains(t, out, `label = "S1 S3"`)
}
