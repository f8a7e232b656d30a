package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/perfphylo/internal/phylogeny"
)

// Format names an output encoding.
type Format string

const (
	DOT  Format = "dot"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{DOT, JSON, YAML} }

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	if f == YAML {
		return "yaml"
	}
	return string(f)
}

// Write renders r to w in format f. DOT output carries only the tree.
func Write(w io.Writer, f Format, r *phylogeny.Result, opts DOTOptions) error {
	switch f {
	case DOT, "":
		return WriteDOT(w, r.Tree(), opts)
	case JSON:
		return WriteJSON(w, r)
	case YAML:
		return WriteYAML(w, r)
	}
	return fmt.Errorf("unknown output format %q", f)
}
