package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/perfphylo/internal/phylogeny"
)

// DOTOptions tunes the DOT renderer.
type DOTOptions struct {
	// KeepUnderscores preserves identifiers such as "S_1". By default they
	// are written without the underscore ("S1").
	KeepUnderscores bool
	// Name is the graph name; empty writes an anonymous digraph.
	Name string
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// FormatDOT returns the DOT description of t. Nodes are numbered densely in
// handle order, so removed arena slots never show up as gaps.
func FormatDOT(t *phylogeny.Tree, opts DOTOptions) string {
	var sb strings.Builder
	if opts.Name != "" {
		fmt.Fprintf(&sb, "digraph %q {\n", opts.Name)
	} else {
		sb.WriteString("digraph {\n")
	}

	label := func(s string) string {
		if !opts.KeepUnderscores {
			s = strings.ReplaceAll(s, "_", "")
		}
		return dotEscaper.Replace(s)
	}

	index := make(map[phylogeny.NodeID]int)
	for i, n := range t.Nodes() {
		index[n.ID] = i
		fmt.Fprintf(&sb, "    %d [ label = \"%s\" ]\n", i, label(n.Label))
	}
	for _, e := range t.Edges() {
		fmt.Fprintf(&sb, "    %d -> %d [ label = \"%s\" ]\n", index[e.From], index[e.To], label(e.Label))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// WriteDOT writes the DOT description of t to w.
func WriteDOT(w io.Writer, t *phylogeny.Tree, opts DOTOptions) error {
	_, err := io.WriteString(w, FormatDOT(t, opts))
	return err
}
