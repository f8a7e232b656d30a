package orchestration

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/phylogeny"
)

// Mode selects how ambiguous cells are completed.
type Mode string

const (
	// ModeFirstRest assigns one value to the first ambiguous cell and one
	// shared value to all the others, giving four completions.
	ModeFirstRest Mode = "first-rest"
	// ModeExhaustive tries every assignment of every ambiguous cell.
	ModeExhaustive Mode = "exhaustive"
)

// MaxExhaustiveCells bounds the exhaustive search to 2^16 completions.
const MaxExhaustiveCells = 16

// firstRestPairs is the fixed evaluation order of ModeFirstRest.
var firstRestPairs = [4][2]phylogeny.Cell{
	{phylogeny.Absent, phylogeny.Absent},
	{phylogeny.Absent, phylogeny.Present},
	{phylogeny.Present, phylogeny.Absent},
	{phylogeny.Present, phylogeny.Present},
}

// Modes lists the supported modes in display order.
func Modes() []Mode { return []Mode{ModeFirstRest, ModeExhaustive} }

// ParseMode maps a user-supplied name to a Mode. Matching is case-insensitive
// and the empty string selects ModeFirstRest.
//
// Parameters:
//   - name: The mode name from flags, environment or the REPL.
//
// Returns:
//   - Mode: The selected mode.
//   - error: An apperrors.ValidationError for unknown names.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeFirstRest:
		return ModeFirstRest, nil
	case ModeExhaustive:
		return ModeExhaustive, nil
	}
	return "", apperrors.ValidationError{
		Field:   "mode",
		Message: fmt.Sprintf("unknown mode %q (want %s or %s)", name, ModeFirstRest, ModeExhaustive),
	}
}

// Completions enumerates the value assignments evaluated for n ambiguous
// cells, in evaluation order. Each assignment holds one value per cell in
// row-major cell order. No completion exists when n is zero.
func Completions(mode Mode, n int) ([][]phylogeny.Cell, error) {
	if n <= 0 {
		return nil, nil
	}
	switch mode {
	case ModeFirstRest, "":
		out := make([][]phylogeny.Cell, 0, len(firstRestPairs))
		for _, pair := range firstRestPairs {
			a := make([]phylogeny.Cell, n)
			a[0] = pair[0]
			for k := 1; k < n; k++ {
				a[k] = pair[1]
			}
			out = append(out, a)
		}
		return out, nil
	case ModeExhaustive:
		if n > MaxExhaustiveCells {
			return nil, apperrors.ValidationError{
				Field: "mode",
				Message: fmt.Sprintf("exhaustive search over %d ambiguous cells exceeds the limit of %d",
					n, MaxExhaustiveCells),
			}
		}
		total := 1 << n
		out := make([][]phylogeny.Cell, total)
		for mask := 0; mask < total; mask++ {
			a := make([]phylogeny.Cell, n)
			for k := 0; k < n; k++ {
				if mask&(1<<(n-1-k)) != 0 {
					a[k] = phylogeny.Present
				}
			}
			out[mask] = a
		}
		return out, nil
	}
	_, err := ParseMode(string(mode))
	return nil, err
}

// complete returns a copy of m with the given cells set to values.
func complete(m phylogeny.Matrix, cells []phylogeny.Position, values []phylogeny.Cell) phylogeny.Matrix {
	c := m.Clone()
	for k, pos := range cells {
		c[pos.Row][pos.Col] = values[k]
	}
	return c
}
