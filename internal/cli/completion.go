package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/perfphylo/internal/config"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Long      string   // long flag name without "-" (e.g., "mode")
	Short     string   // short flag without "-" (e.g., "o")
	Help      string   // description text
	Values    []string // static suggestions (nil = boolean or free value)
	ValueName string   // label for the value in zsh (e.g., "file", "duration")
	IsFile    bool     // true if the flag takes a path
	Choice    string   // "mode" or "format": values come from config.Choices
}

// flagRegistry is the central list of perfphylo flags for completion scripts.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Long: "input", Short: "i", Help: "Matrix file to read", IsFile: true, ValueName: "file"},
	{Long: "output", Short: "o", Help: "Directory receiving rendered trees", IsFile: true, ValueName: "dir"},
	{Long: "format", Help: "Output format", Choice: "format", ValueName: "format"},
	{Long: "mode", Help: "Ambiguity resolution mode", Choice: "mode", ValueName: "mode"},
	{Long: "marker", Help: "Ambiguity token", ValueName: "token"},
	{Long: "internal", Help: "Keep taxon labels on internal nodes"},
	{Long: "keep-underscores", Help: "Keep underscores in DOT identifiers"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "parallel", Help: "Concurrent completion evaluations", Values: []string{"0", "1", "2", "4", "8"}, ValueName: "workers"},
	{Long: "metrics-file", Help: "Prometheus textfile output", IsFile: true, ValueName: "file"},
	{Long: "config", Help: "YAML file with default option values", IsFile: true, ValueName: "file"},
	{Long: "verbose", Short: "v", Help: "Debug logging and pipeline traces"},
	{Long: "quiet", Short: "q", Help: "Minimal output"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "tui", Help: "Browse results in a terminal UI"},
	{Long: "interactive", Help: "Start an interactive session"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell.
//
// Parameters:
//   - out: The writer receiving the script.
//   - shell: One of "bash", "zsh", "fish", "powershell" (or "ps").
//   - choices: The accepted modes and formats offered as suggestions.
//
// Returns:
//   - error: An error if the shell is not supported or the write fails.
func GenerateCompletion(out io.Writer, shell string, choices config.Choices) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, choices)
	case "zsh":
		return generateZshCompletion(out, choices)
	case "fish":
		return generateFishCompletion(out, choices)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, choices)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// completionValues resolves the suggestions of a flag.
func completionValues(f FlagCompletion, choices config.Choices) []string {
	switch f.Choice {
	case "mode":
		return choices.Modes
	case "format":
		return choices.Formats
	}
	return f.Values
}

func generateBashCompletion(out io.Writer, choices config.Choices) error {
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, flagPatterns(f)...)
	}

	var cases strings.Builder
	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			filePatterns = append(filePatterns, flagPatterns(f)...)
			continue
		}
		values := completionValues(f, choices)
		if len(values) == 0 {
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(flagPatterns(f), "|"), strings.Join(values, " "))
	}
	if len(filePatterns) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(filePatterns, "|"))
	}

	script := fmt.Sprintf(`# Bash completion script for perfphylo
# Add this to your ~/.bashrc or ~/.bash_completion

_perfphylo_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -f -- "${cur}") )
}

complete -F _perfphylo_completions perfphylo
`, strings.Join(opts, " "), cases.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// flagPatterns returns the single-dash spellings of a flag.
func flagPatterns(f FlagCompletion) []string {
	var out []string
	if f.Long != "" {
		out = append(out, "-"+f.Long)
	}
	if f.Short != "" {
		out = append(out, "-"+f.Short)
	}
	return out
}

func generateZshCompletion(out io.Writer, choices config.Choices) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f, completionValues(f, choices)))
	}
	args = append(args, "        '*:matrix file:_files'")

	script := fmt.Sprintf(`#compdef perfphylo

# Zsh completion script for perfphylo
# Add this to your ~/.zshrc or place in $fpath

_perfphylo() {
    _arguments -s \
%s
}

_perfphylo "$@"
`, strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a flag as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion, values []string) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s -%s)'{-%s,-%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func generateFishCompletion(out io.Writer, choices config.Choices) error {
	lines := []string{
		"# Fish completion script for perfphylo",
		"# Add this to ~/.config/fish/completions/perfphylo.fish",
		"",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, completionValues(f, choices)))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a flag as a fish complete command. Go's flag
// package accepts single-dash long names, which fish calls old-style (-o).
func fishCompleteLine(f FlagCompletion, values []string) string {
	parts := []string{"complete -c perfphylo"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-o "+f.Long)
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case len(values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func generatePowerShellCompletion(out io.Writer, choices config.Choices) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		for _, p := range flagPatterns(f) {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '%s'; Description = '%s' }", p, f.Help))
		}
	}

	var switchEntries []string
	for _, f := range flagRegistry {
		values := completionValues(f, choices)
		if f.IsFile || len(values) == 0 {
			continue
		}
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = fmt.Sprintf("'%s'", v)
		}
		switchEntries = append(switchEntries, fmt.Sprintf(`        '-%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}

	script := fmt.Sprintf(`# PowerShell completion script for perfphylo
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'perfphylo' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
