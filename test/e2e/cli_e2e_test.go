package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary end to end: exit codes, summary
// output and rendered files.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "perfphylo"
	if runtime.GOOS == "windows" {
		binName = "perfphylo.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/perfphylo")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build perfphylo: %v", err)
	}

	outDir := filepath.Join(tmpDir, "trees")

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Perfect Matrix",
			args:     []string{"testdata/perfect.txt"},
			wantOut:  "✅ perfect phylogeny",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Ambiguous Matrix",
			args:     []string{"-input", "testdata/ambiguous.txt"},
			wantOut:  "Feasible:   2 of 4",
			wantCode: 0,
		},
		{
			name:     "Exhaustive Mode",
			args:     []string{"-mode", "exhaustive", "testdata/ambiguous.txt"},
			wantOut:  "exhaustive completions",
			wantCode: 0,
		},
		{
			name:     "Stdin Input",
			args:     []string{"-q"},
			stdin:    "1 0\n0 1\n",
			wantOut:  "perfect",
			wantCode: 0,
		},
		{
			name:     "Not Perfect",
			args:     []string{"-q", "testdata/conflicting.txt"},
			wantOut:  "not-perfect",
			wantCode: 3,
		},
		{
			name:     "Ragged Matrix",
			args:     []string{"testdata/ragged.txt"},
			wantOut:  "invalid matrix",
			wantCode: 5,
		},
		{
			name:     "Unknown Mode",
			args:     []string{"-mode", "greedy", "testdata/perfect.txt"},
			wantOut:  "unknown mode",
			wantCode: 4,
		},
		{
			name:     "Output Directory",
			args:     []string{"-o", outDir, "testdata/ambiguous.txt"},
			wantOut:  "3 file(s) written",
			wantCode: 0,
		},
		{
			name:     "Completion Script",
			args:     []string{"-completion", "zsh"},
			wantOut:  "#compdef perfphylo",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "perfphylo",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command did not run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("Exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}

	for _, name := range []string{"ambiguous.dot", "ambiguous_0.dot", "ambiguous_1.dot"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Errorf("expected %s: %v", name, err)
			continue
		}
		if !strings.HasPrefix(string(data), "digraph {") {
			t.Errorf("%s is not a DOT graph:\n%s", name, data)
		}
	}
}
