package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/perfphylo/internal/config"
	"github.com/agbru/perfphylo/internal/ui"
)

// DisplayExecutionConfig prints the settings of a run before it starts.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func DisplayExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Reading %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), cfg.Input, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorPrimary(), runtime.NumCPU(), ui.ColorReset(), ui.ColorPrimary(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Resolution: mode=%s%s%s, parallel=%s%d%s, internal labels=%s%t%s.\n",
		ui.ColorGreen(), cfg.Mode, ui.ColorReset(),
		ui.ColorPrimary(), cfg.Parallel, ui.ColorReset(),
		ui.ColorPrimary(), cfg.Internal, ui.ColorReset())
	if cfg.OutputDir != "" {
		fmt.Fprintf(out, "Output: %s%s%s files in %s%s%s.\n",
			ui.ColorPrimary(), cfg.Format, ui.ColorReset(), ui.ColorPrimary(), cfg.OutputDir, ui.ColorReset())
	}
}
