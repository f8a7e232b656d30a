package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/perfphylo/internal/config"
)

var testChoices = config.Choices{
	Modes:   []string{"first-rest", "exhaustive"},
	Formats: []string{"dot", "json", "yaml"},
}

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _perfphylo_completions perfphylo", "-mode)", `compgen -W "first-rest exhaustive"`, "-input|-i|-output|-o"}},
		{"zsh", []string{"#compdef perfphylo", "'-format[Output format]:format:(dot json yaml)'", "'(-v -verbose)'{-v,-verbose}"}},
		{"fish", []string{"complete -c perfphylo -o mode -d 'Ambiguity resolution mode' -xa 'first-rest exhaustive'", "complete -c perfphylo -s i -o input"}},
		{"powershell", []string{"Register-ArgumentCompleter -CommandName 'perfphylo'", "@('dot', 'json', 'yaml')", "Name = '-keep-underscores'"}},
		{"ps", []string{"Register-ArgumentCompleter"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, GenerateCompletion(&buf, tt.shell, testChoices))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestGenerateCompletion_EveryFlag(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, GenerateCompletion(&buf, "bash", testChoices))
	opts := buf.String()
	for _, f := range flagRegistry {
		assert.True(t, strings.Contains(opts, "-"+f.Long), "missing -%s", f.Long)
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(&bytes.Buffer{}, "tcsh", testChoices)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell: tcsh")
}
