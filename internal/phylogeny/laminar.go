package phylogeny

// unsetMarker is the marker a row carries before its first present
// character. It must differ from 0, which means "not present".
const unsetMarker = -1

// IsLaminar reports whether the characters of m, visited in order, form a
// laminar family: every taxon that carries a character must reach it from
// the same preceding character.
//
// For each row the marker of a present character is the 1-based index of the
// previous present character in the order, or unsetMarker for the first one.
// A column is consistent when all of its non-zero markers agree.
func IsLaminar(m Matrix, order Order, tracer Tracer) bool {
	if tracer == nil {
		tracer = NopTracer{}
	}
	markers := make([][]int, len(m))
	for i, row := range m {
		markers[i] = make([]int, len(row))
		k := unsetMarker
		for _, j := range order {
			if row[j] == Present {
				markers[i][j] = k
				k = j + 1
			}
		}
		tracer.Trace(Event{Kind: EventRowMarkers, Row: i, Markers: markers[i]})
	}

	for j := 0; j < m.Characters(); j++ {
		ref := 0
		for i := range markers {
			v := markers[i][j]
			if v == 0 {
				continue
			}
			if ref == 0 {
				ref = v
				continue
			}
			if v != ref {
				tracer.Trace(Event{Kind: EventConflict, Row: i, Column: j, Want: ref, Got: v})
				return false
			}
		}
	}
	return true
}
