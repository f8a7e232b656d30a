package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agbru/perfphylo/internal/phylogeny"
)

// NodeExport describes one tree node.
type NodeExport struct {
	ID    int      `json:"id" yaml:"id"`
	Label string   `json:"label" yaml:"label"`
	Taxa  []string `json:"taxa,omitempty" yaml:"taxa,omitempty"`
}

// EdgeExport describes one tree edge. Characters splits a compacted label.
type EdgeExport struct {
	From       int      `json:"from" yaml:"from"`
	To         int      `json:"to" yaml:"to"`
	Label      string   `json:"label" yaml:"label"`
	Characters []string `json:"characters,omitempty" yaml:"characters,omitempty"`
}

// TreeExport is the serialized form of a tree. Root is -1 for an empty tree.
type TreeExport struct {
	Root  int          `json:"root" yaml:"root"`
	Nodes []NodeExport `json:"nodes" yaml:"nodes"`
	Edges []EdgeExport `json:"edges" yaml:"edges"`
}

// ResultExport is the serialized form of a pipeline result.
type ResultExport struct {
	Perfect bool       `json:"perfect" yaml:"perfect"`
	Matrix  []string   `json:"matrix" yaml:"matrix"`
	Order   []string   `json:"order" yaml:"order"`
	Tree    TreeExport `json:"tree" yaml:"tree"`
}

// ExportTree converts t with the same dense node numbering as FormatDOT.
func ExportTree(t *phylogeny.Tree) TreeExport {
	out := TreeExport{Root: -1, Nodes: []NodeExport{}, Edges: []EdgeExport{}}
	index := make(map[phylogeny.NodeID]int)
	for i, n := range t.Nodes() {
		index[n.ID] = i
		if n.ID == t.Root() {
			out.Root = i
		}
		out.Nodes = append(out.Nodes, NodeExport{ID: i, Label: n.Label, Taxa: n.Taxa})
	}
	for _, e := range t.Edges() {
		ee := EdgeExport{From: index[e.From], To: index[e.To], Label: e.Label}
		if e.Label != "" {
			ee.Characters = strings.Split(e.Label, ",")
		}
		out.Edges = append(out.Edges, ee)
	}
	return out
}

// ExportResult converts a pipeline result.
func ExportResult(r *phylogeny.Result) ResultExport {
	m := r.Matrix()
	rows := make([]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		rows[i] = strings.Join(cells, " ")
	}
	order := r.Order()
	chars := make([]string, len(order))
	for i, j := range order {
		chars[i] = phylogeny.CharacterID(j)
	}
	return ResultExport{
		Perfect: r.Perfect(),
		Matrix:  rows,
		Order:   chars,
		Tree:    ExportTree(r.Tree()),
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r *phylogeny.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ExportResult(r)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes r as a YAML document.
func WriteYAML(w io.Writer, r *phylogeny.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ExportResult(r)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
