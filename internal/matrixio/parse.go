// Package matrixio reads character matrices from text sources.
//
// The format is one line per taxon with whitespace-separated tokens: "0",
// "1", or the ambiguity marker. Blank lines and lines starting with '#' are
// ignored.
package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/phylogeny"
)

// DefaultMarker is the token that denotes an ambiguous cell.
const DefaultMarker = "*"

// StdinSource is the source name used for standard input.
const StdinSource = "stdin"

var (
	errInvalidToken = errors.New("invalid token")
	errRowLength    = errors.New("row length mismatch")
	errNoRows       = errors.New("no matrix rows")
)

// Options configures the parser.
type Options struct {
	// Marker is the ambiguity token. Empty means DefaultMarker.
	Marker string
}

// Parse reads a matrix from r. source names r in error messages.
// Every failure is returned as an apperrors.InputError.
func Parse(r io.Reader, source string, opts Options) (phylogeny.Matrix, error) {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	var rows [][]phylogeny.Cell
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseRow(text, marker)
		if err != nil {
			return nil, apperrors.InputError{Source: source, Line: line, Cause: err}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, apperrors.InputError{
				Source: source,
				Line:   line,
				Cause:  fmt.Errorf("%w: got %d columns, want %d", errRowLength, len(row), len(rows[0])),
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.InputError{Source: source, Line: line, Cause: err}
	}
	if len(rows) == 0 {
		return nil, apperrors.InputError{Source: source, Cause: errNoRows}
	}

	m, err := phylogeny.NewMatrix(rows)
	if err != nil {
		return nil, apperrors.InputError{Source: source, Cause: err}
	}
	return m, nil
}

func parseRow(text, marker string) ([]phylogeny.Cell, error) {
	fields := strings.Fields(text)
	row := make([]phylogeny.Cell, len(fields))
	for j, tok := range fields {
		switch tok {
		case "0":
			row[j] = phylogeny.Absent
		case "1":
			row[j] = phylogeny.Present
		case marker:
			row[j] = phylogeny.Ambiguous
		default:
			return nil, fmt.Errorf("%w %q in column %d", errInvalidToken, tok, j+1)
		}
	}
	return row, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s, source string, opts Options) (phylogeny.Matrix, error) {
	return Parse(strings.NewReader(s), source, opts)
}

// ReadFile parses the matrix stored at path; "-" reads standard input.
func ReadFile(path string, opts Options) (phylogeny.Matrix, error) {
	if path == "" || path == "-" {
		return Parse(os.Stdin, StdinSource, opts)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.InputError{Source: path, Cause: err}
	}
	defer f.Close()
	return Parse(f, path, opts)
}
