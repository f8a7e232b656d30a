package phylogeny

import (
	"cmp"
	"slices"
)

// Order is the column visiting order shared by every pipeline stage that
// works on the same matrix.
type Order []int

// ColumnCounts returns, per column, the number of Present cells.
// Ambiguous cells are not counted.
func ColumnCounts(m Matrix) []int {
	counts := make([]int, m.Characters())
	for _, row := range m {
		for j, c := range row {
			if c == Present {
				counts[j]++
			}
		}
	}
	return counts
}

// OrderCharacters sorts columns by descending Present count, breaking ties
// by ascending column index.
func OrderCharacters(m Matrix) Order {
	counts := ColumnCounts(m)
	order := make(Order, len(counts))
	for j := range order {
		order[j] = j
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Or(cmp.Compare(counts[b], counts[a]), cmp.Compare(a, b))
	})
	return order
}

// Clone returns a copy of the order.
func (o Order) Clone() Order { return append(Order(nil), o...) }
