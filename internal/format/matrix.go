package format

import (
	"fmt"
	"strings"

	"github.com/agbru/perfphylo/internal/phylogeny"
)

// FormatMatrix renders m as a table headed by character identifiers, one
// taxon per line. Ambiguous cells print as marker.
func FormatMatrix(m phylogeny.Matrix, marker string) string {
	if marker == "" {
		marker = "*"
	}
	width := len(phylogeny.TaxonID(m.Taxa() - 1))
	var sb strings.Builder
	line := func(label string, cells []string) {
		var lb strings.Builder
		fmt.Fprintf(&lb, "%-*s", width, label)
		for j, cell := range cells {
			fmt.Fprintf(&lb, " %-*s", len(phylogeny.CharacterID(j)), cell)
		}
		sb.WriteString(strings.TrimRight(lb.String(), " "))
		sb.WriteByte('\n')
	}

	header := make([]string, m.Characters())
	for j := range header {
		header[j] = phylogeny.CharacterID(j)
	}
	line("", header)
	for i, row := range m {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
			if c == phylogeny.Ambiguous {
				cells[j] = marker
			}
		}
		line(phylogeny.TaxonID(i), cells)
	}
	return sb.String()
}

// FormatOrder renders a character order as "C_2 > C_1 > C_3".
func FormatOrder(o phylogeny.Order) string {
	ids := make([]string, len(o))
	for i, j := range o {
		ids[i] = phylogeny.CharacterID(j)
	}
	return strings.Join(ids, " > ")
}

// FormatAssignment renders the values chosen for ambiguous cells as
// "S_3/C_1=0 S_2/C_2=1".
func FormatAssignment(cells []phylogeny.Position, values []phylogeny.Cell) string {
	parts := make([]string, len(cells))
	for k, pos := range cells {
		parts[k] = fmt.Sprintf("%s/%s=%s", phylogeny.TaxonID(pos.Row), phylogeny.CharacterID(pos.Col), values[k])
	}
	return strings.Join(parts, " ")
}
