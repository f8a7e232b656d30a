package phylogeny

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCharacters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    Matrix
		want Order
	}{
		{"tie broken by index", MustMatrix([]int{1, 0}, []int{1, 1}, []int{0, 1}), Order{0, 1}},
		{"descending frequency", MustMatrix([]int{0, 1, 1}, []int{0, 1, 0}, []int{1, 1, 0}), Order{1, 0, 2}},
		{"ambiguous not counted", MustMatrix([]int{2, 1}, []int{2, 0}), Order{1, 0}},
		{"all zero", MustMatrix([]int{0, 0, 0}), Order{0, 1, 2}},
		{"ties after the leader keep index order", MustMatrix([]int{0, 1, 1}, []int{1, 0, 1}), Order{2, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, OrderCharacters(tt.m))
		})
	}
}

func TestIsLaminar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{
			name: "nested characters",
			m:    MustMatrix([]int{1, 0}, []int{1, 1}, []int{1, 0}),
			want: true,
		},
		{
			// Same rows as the conflict case below in another order; the
			// test does not depend on row order.
			name: "overlapping characters",
			m:    MustMatrix([]int{1, 0}, []int{1, 1}, []int{0, 1}),
			want: false,
		},
		{
			// With a 0-based marker (k = j) the marker of column 0 would be
			// indistinguishable from "absent" and this matrix would pass.
			name: "conflict through first column",
			m:    MustMatrix([]int{1, 0}, []int{0, 1}, []int{1, 1}),
			want: false,
		},
		{
			name: "disjoint characters",
			m:    MustMatrix([]int{1, 0}, []int{0, 1}),
			want: true,
		},
		{
			name: "empty column is vacuously consistent",
			m:    MustMatrix([]int{1, 0, 0}, []int{1, 1, 0}),
			want: true,
		},
		{
			name: "all absent",
			m:    MustMatrix([]int{0, 0}, []int{0, 0}),
			want: true,
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
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			order := OrderCharacters(tt.m)
			assert.Equal(t, tt.want, IsLaminar(tt.m, order, nil))
			assert.Equal(t, tt.want, IsLaminar(tt.m, order, NopTracer{}), "second run must agree")
		})
	}
}

func TestIsLaminar_ConflictEvent(t *testing.T) {
	t.Parallel()
	m := MustMatrix([]int{1, 0}, []int{0, 1}, []int{1, 1})

	var events []Event
	ok := IsLaminar(m, OrderCharacters(m), TracerFunc(func(ev Event) { events = append(events, ev) }))

	assert.False(t, ok)
	if assert.Len(t, events, 4) {
		assert.Equal(t, []int{-1, 0}, events[0].Markers)
		assert.Equal(t, []int{0, -1}, events[1].Markers)
		assert.Equal(t, []int{-1, 1}, events[2].Markers)
		assert.Equal(t, Event{Kind: EventConflict, Row: 2, Column: 1, Want: -1, Got: 1}, events[3])
	}
}
