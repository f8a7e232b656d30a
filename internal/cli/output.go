// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayTree], [DisplayWrittenFiles].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietVerdict], [TreeFileName].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteTrees].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/phylogeny"
	"github.com/agbru/perfphylo/internal/render"
	"github.com/agbru/perfphylo/internal/ui"
)

// DefaultBaseName names output files when the matrix came from stdin.
const DefaultBaseName = "matrix"

// OutputConfig holds configuration for tree output.
type OutputConfig struct {
	// Dir is the directory receiving rendered trees (empty for no files).
	Dir string
	// Format is the rendering format.
	Format render.Format
	// KeepUnderscores keeps identifiers such as S_1 intact in DOT output.
	KeepUnderscores bool
}

func (c OutputConfig) dotOptions() render.DOTOptions {
	return render.DOTOptions{KeepUnderscores: c.KeepUnderscores}
}

// BaseName derives the output file stem from the matrix source: the file
// name without directory and extension, or DefaultBaseName for stdin.
func BaseName(source string) string {
	if source == "" || source == "-" || source == "stdin" {
		return DefaultBaseName
	}
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// TreeFileName returns "<base>.<ext>" for the baseline (index < 0) and
// "<base>_<index>.<ext>" for the index-th feasible completion.
func TreeFileName(base string, index int, f render.Format) string {
	if index < 0 {
		return fmt.Sprintf("%s.%s", base, f.Extension())
	}
	return fmt.Sprintf("%s_%d.%s", base, index, f.Extension())
}

// WriteTrees renders the baseline and every feasible completion into
// config.Dir. Completions are numbered by their position among the feasible
// ones, starting at zero.
//
// Parameters:
//   - res: The resolution to write.
//   - base: The file name stem, see BaseName.
//   - config: Output configuration.
//
// Returns:
//   - []string: The paths written, baseline first.
//   - error: An error if the directory or a file cannot be written.
func WriteTrees(res *orchestration.Resolution, base string, config OutputConfig) ([]string, error) {
	if config.Dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := []string{filepath.Join(config.Dir, TreeFileName(base, -1, config.Format))}
	if err := writeTreeFile(paths[0], res.Baseline, config); err != nil {
		return nil, err
	}
	for i, c := range res.Feasible() {
		path := filepath.Join(config.Dir, TreeFileName(base, i, config.Format))
		if err := writeTreeFile(path, c.Result, config); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTreeFile(path string, r *phylogeny.Result, config OutputConfig) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	if err := render.Write(file, config.Format, r, config.dotOptions()); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// DisplayTree renders a result's tree to out under a bold title, or prints
// a note when the matrix has no perfect phylogeny.
func DisplayTree(out io.Writer, title string, r *phylogeny.Result, config OutputConfig) error {
	fmt.Fprintf(out, "\n%s%s%s\n", ui.ColorBold(), title, ui.ColorReset())
	if !r.Perfect() {
		fmt.Fprintf(out, "%s(no perfect phylogeny)%s\n", ui.ColorDim(), ui.ColorReset())
		return nil
	}
	return render.Write(out, config.Format, r, config.dotOptions())
}

// DisplayWrittenFiles lists the files produced by WriteTrees.
func DisplayWrittenFiles(out io.Writer, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s✓ %d file(s) written:%s\n", ui.ColorGreen(), len(paths), ui.ColorReset())
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", ui.Colorize(ui.ColorPrimary(), p))
	}
}
