package phylogeny

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leafPaths maps every leaf label to the comma-joined characters on its path.
func leafPaths(t *Tree) map[string]string {
	out := make(map[string]string)
	for _, id := range t.Leaves() {
		out[t.Label(id)] = strings.Join(t.PathCharacters(id), ",")
	}
	return out
}

func edgeLabels(t *Tree) []string {
	var out []string
	for _, e := range t.Edges() {
		out = append(out, e.Label)
	}
	sort.Strings(out)
	return out
}

func TestAnalyze_Trees(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		m         Matrix
		internal  bool
		wantPaths map[string]string
		wantEdges []string
		wantNodes int
	}{
		{
			name:      "shared leaf node is split",
			m:         MustMatrix([]int{1, 0}, []int{1, 1}, []int{1, 0}),
			wantPaths: map[string]string{"S_1": "C_1", "S_2": "C_1,C_2", "S_3": "C_1"},
			wantEdges: []string{"", "", "C_1", "C_2"},
			wantNodes: 5,
		},
		{
			name:      "pass-through chain collapses fully",
			m:         MustMatrix([]int{1, 1, 1}, []int{0, 0, 0}),
			wantPaths: map[string]string{"S_1": "C_1,C_2,C_3", "S_2": ""},
			wantEdges: []string{"", "C_1,C_2,C_3"},
			wantNodes: 3,
		},
		{
			name:      "compaction above an internal split",
			m:         MustMatrix([]int{1, 1, 0}, []int{1, 1, 1}),
			wantPaths: map[string]string{"S_1": "C_1,C_2", "S_2": "C_1,C_2,C_3"},
			wantEdges: []string{"", "C_1,C_2", "C_3"},
			wantNodes: 4,
		},
		{
			name:      "taxon without characters hangs off the root",
			m:         MustMatrix([]int{1, 0}, []int{0, 0}, []int{1, 1}),
			wantPaths: map[string]string{"S_1": "C_1", "S_2": "", "S_3": "C_1,C_2"},
			wantEdges: []string{"", "", "C_1", "C_2"},
			wantNodes: 5,
		},
		{
			name: "classic five taxa",
			m: MustMatrix(
				[]int{1, 1, 0, 0, 0},
				[]int{0, 0, 1, 0, 0},
				[]int{1, 1, 0, 0, 1},
				[]int{0, 0, 1, 1, 0},
				[]int{0, 1, 0, 0, 0},
			),
			wantPaths: map[string]string{
				"S_1": "C_2,C_1",
				"S_2": "C_3",
				"S_3": "C_2,C_1,C_5",
				"S_4": "C_3,C_4",
				"S_5": "C_2",
			},
			wantEdges: []string{"", "", "", "C_1", "C_2", "C_3", "C_4", "C_5"},
			wantNodes: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := Analyze(tt.m, WithInternalLabels(tt.internal))
			require.NoError(t, err)
			require.True(t, res.Perfect())

			tree := res.Tree()
			if diff := cmp.Diff(tt.wantPaths, leafPaths(tree)); diff != "" {
				t.Errorf("leaf paths mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantEdges, edgeLabels(tree)); diff != "" {
				t.Errorf("edge labels mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantNodes, tree.Len())
			assert.Equal(t, RootLabel, tree.Label(tree.Root()))
		})
	}
}

func TestAnalyze_NestedScenario(t *testing.T) {
	t.Parallel()
	m := MustMatrix([]int{1, 0}, []int{1, 1}, []int{1, 0})

	for _, internal := range []bool{false, true} {
		res, err := Analyze(m, WithInternalLabels(internal))
		require.NoError(t, err)
		tree := res.Tree()

		children := tree.Children(tree.Root())
		require.Len(t, children, 1, "root must have a single child")
		_, label, ok := tree.Parent(children[0])
		require.True(t, ok)
		assert.Equal(t, "C_1", label)
		assert.Len(t, tree.Leaves(), 3)

		want := ""
		if internal {
			want = "S_1 S_3"
		}
		assert.Equal(t, want, tree.Label(children[0]), "internal=%v", internal)
	}
}

func TestAnalyze_NotLaminar(t *testing.T) {
	t.Parallel()
	for _, m := range []Matrix{
		MustMatrix([]int{1, 0}, []int{0, 1}, []int{1, 1}),
		MustMatrix([]int{1, 0}, []int{1, 1}, []int{0, 1}),
	} {
		res, err := Analyze(m)
		require.NoError(t, err)
		assert.False(t, res.Perfect())
		assert.True(t, res.Tree().Empty())
		assert.Equal(t, NoNode, res.Tree().Root())
		assert.Empty(t, res.Tree().Edges())
		assert.Equal(t, Order{0, 1}, res.Order())
	}
}

func TestAnalyze_InvalidMatrix(t *testing.T) {
	t.Parallel()
	_, err := Analyze(Matrix{{1, 0}, {1}})
	assert.True(t, errors.Is(err, ErrRaggedMatrix))

	_, err = Analyze(nil)
	assert.True(t, errors.Is(err, ErrEmptyMatrix))
}

func TestResult_IsImmutable(t *testing.T) {
	t.Parallel()
	input := MustMatrix([]int{1, 0}, []int{1, 1})
	res, err := Analyze(input)
	require.NoError(t, err)

	input[0][0] = Absent
	got := res.Matrix()
	got[1][1] = Absent
	order := res.Order()
	order[0] = 99

	assert.Equal(t, MustMatrix([]int{1, 0}, []int{1, 1}), res.Matrix())
	assert.Equal(t, Order{0, 1}, res.Order())
}

func TestTree_StructureInvariants(t *testing.T) {
	t.Parallel()
	res, err := Analyze(MustMatrix(
		[]int{1, 1, 0, 0},
		[]int{1, 1, 0, 0},
		[]int{1, 0, 1, 0},
		[]int{0, 0, 0, 1},
	), WithInternalLabels(true))
	require.NoError(t, err)
	tree := res.Tree()

	for _, n := range tree.Nodes() {
		if n.ID == tree.Root() {
			assert.Zero(t, tree.InDegree(n.ID))
			continue
		}
		assert.Equal(t, 1, tree.InDegree(n.ID), "node %d", n.ID)
	}
	for _, leaf := range tree.Leaves() {
		assert.Len(t, tree.Taxa(leaf), 1, "leaf %d must carry exactly one taxon", leaf)
	}
}
