package phylogeny

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const maxGenCells = 24

// genMatrix builds a rows x cols binary matrix from the generated cells.
func genMatrix(cells []int, rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]Cell, cols)
		for j := range m[i] {
			m[i][j] = Cell(cells[i*cols+j])
		}
	}
	return m
}

func matrixGens() []gopter.Gen {
	return []gopter.Gen{
		gen.SliceOfN(maxGenCells, gen.IntRange(0, 1)),
		gen.IntRange(1, 4),
		gen.IntRange(1, 6),
	}
}

func rowCharacters(row []Cell) []string {
	var out []string
	for j, c := range row {
		if c == Present {
			out = append(out, CharacterID(j))
		}
	}
	sort.Strings(out)
	return out
}

func sortedPath(t *Tree, id NodeID) []string {
	out := t.PathCharacters(id)
	sort.Strings(out)
	return out
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// TestLaminarity_PropertyBased verifies the laminarity test is deterministic
// and independent of row order.
func TestLaminarity_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("IsLaminar is deterministic and row-order independent", prop.ForAll(
		func(cells []int, rows, cols int) bool {
			m := genMatrix(cells, rows, cols)
			order := OrderCharacters(m)
			first := IsLaminar(m, order, nil)
			if IsLaminar(m, order, nil) != first {
				return false
			}

			reversed := make(Matrix, len(m))
			for i := range m {
				reversed[len(m)-1-i] = m[i]
			}
			return IsLaminar(reversed, OrderCharacters(reversed), nil) == first
		},
		matrixGens()...,
	))

	properties.TestingRun(t)
}

// TestRawTreePaths_PropertyBased verifies that in the raw tree each taxon
// ends on a node whose root path carries exactly the taxon's characters.
func TestRawTreePaths_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("root path of each taxon equals its present characters", prop.ForAll(
		func(cells []int, rows, cols int) bool {
			m := genMatrix(cells, rows, cols)
			tree := buildTree(m, OrderCharacters(m))

			for i, row := range m {
				var found []NodeID
				for _, n := range tree.Nodes() {
					for _, taxon := range n.Taxa {
						if taxon == TaxonID(i) {
							found = append(found, n.ID)
						}
					}
				}
				if len(found) != 1 {
					return false
				}
				if !cmp.Equal(rowCharacters(row), sortedPath(tree, found[0])) {
					return false
				}
			}
			return true
		},
		matrixGens()...,
	))

	properties.TestingRun(t)
}

// TestNormalizedLeaves_PropertyBased verifies that after normalization every
// taxon owns exactly one leaf whose path carries exactly its characters,
// and that the structure is still a tree.
func TestNormalizedLeaves_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("one leaf per taxon with matching path", prop.ForAll(
		func(cells []int, rows, cols int, internal bool) bool {
			m := genMatrix(cells, rows, cols)
			res, err := Analyze(m, WithInternalLabels(internal))
			if err != nil {
				return false
			}
			if !res.Perfect() {
				return res.Tree().Empty()
			}
			tree := res.Tree()

			leaves := make(map[string]NodeID)
			for _, leaf := range tree.Leaves() {
				taxa := tree.Taxa(leaf)
				if len(taxa) != 1 {
					return false
				}
				if _, dup := leaves[taxa[0]]; dup {
					return false
				}
				leaves[taxa[0]] = leaf
			}
			if len(leaves) != len(m) {
				return false
			}
			for i, row := range m {
				leaf, ok := leaves[TaxonID(i)]
				if !ok || !cmp.Equal(rowCharacters(row), sortedPath(tree, leaf)) {
					return false
				}
			}
			for _, n := range tree.Nodes() {
				want := 1
				if n.ID == tree.Root() {
					want = 0
				}
				if tree.InDegree(n.ID) != want {
					return false
				}
			}
			return true
		},
		append(matrixGens(), gen.Bool())...,
	))

	properties.TestingRun(t)
}

// TestCompactionIdempotence_PropertyBased verifies a second compaction finds
// nothing to splice and leaves the tree unchanged.
func TestCompactionIdempotence_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("compact is idempotent", prop.ForAll(
		func(cells []int, rows, cols int) bool {
			m := genMatrix(cells, rows, cols)
			if !IsLaminar(m, OrderCharacters(m), nil) {
				return true
			}
			tree := buildTree(m, OrderCharacters(m))
			normalize(tree, false)

			nodes, edges := tree.Nodes(), tree.Edges()
			if compact(tree) != 0 {
				return false
			}
			return cmp.Equal(nodes, tree.Nodes()) && cmp.Equal(edges, tree.Edges())
		},
		matrixGens()...,
	))

	properties.TestingRun(t)
}
