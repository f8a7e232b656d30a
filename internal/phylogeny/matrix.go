package phylogeny

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cell is a single taxon/character entry of a Matrix.
type Cell uint8

const (
	// Absent marks a character the taxon does not carry.
	Absent Cell = 0
	// Present marks a character the taxon carries.
	Present Cell = 1
	// Ambiguous is the reserved sentinel for entries whose value is unknown.
	// The pipeline treats it as not present; the resolver replaces it.
	Ambiguous Cell = 2
)

// String returns "0", "1" or "*".
func (c Cell) String() string {
	switch c {
	case Absent:
		return "0"
	case Present:
		return "1"
	case Ambiguous:
		return "*"
	}
	return strconv.Itoa(int(c))
}

// Sentinel errors returned by NewMatrix.
var (
	ErrEmptyMatrix  = errors.New("phylogeny: matrix has no rows or no columns")
	ErrRaggedMatrix = errors.New("phylogeny: rows have different lengths")
	ErrInvalidCell  = errors.New("phylogeny: cell value out of range")
)

// Matrix is a rectangular taxon-by-character grid. Rows index taxa,
// columns index characters.
type Matrix [][]Cell

// Position addresses one cell of a Matrix.
type Position struct {
	Row, Col int
}

// NewMatrix validates rows and returns a deep copy of them.
func NewMatrix(rows [][]Cell) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	width := len(rows[0])
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMatrix, i+1, len(row), width)
		}
		for j, c := range row {
			if c > Ambiguous {
				return nil, fmt.Errorf("%w: row %d column %d holds %d", ErrInvalidCell, i+1, j+1, c)
			}
		}
		m[i] = append([]Cell(nil), row...)
	}
	return m, nil
}

// MustMatrix builds a Matrix from plain ints and panics on invalid input.
// Intended for tests and literals.
func MustMatrix(rows ...[]int) Matrix {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, v := range row {
			cells[i][j] = Cell(v)
		}
	}
	m, err := NewMatrix(cells)
	if err != nil {
		panic(err)
	}
	return m
}

// Taxa returns the number of rows.
func (m Matrix) Taxa() int { return len(m) }

// Characters returns the number of columns.
func (m Matrix) Characters() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]Cell(nil), row...)
	}
	return out
}

// AmbiguousCells lists ambiguous positions in row-major order.
func (m Matrix) AmbiguousCells() []Position {
	var out []Position
	for i, row := range m {
		for j, c := range row {
			if c == Ambiguous {
				out = append(out, Position{Row: i, Col: j})
			}
		}
	}
	return out
}

// String renders the matrix one row per line, cells separated by a space.
func (m Matrix) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}

// TaxonID returns the identifier of row i (0-based): "S_<i+1>".
func TaxonID(i int) string { return "S_" + strconv.Itoa(i+1) }

// CharacterID returns the identifier of column j (0-based): "C_<j+1>".
func CharacterID(j int) string { return "C_" + strconv.Itoa(j+1) }
