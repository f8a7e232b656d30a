//go:generate mockgen -source=trace.go -destination=mocks/mock_tracer.go -package=mocks

package phylogeny

import (
	"fmt"

	"github.com/agbru/perfphylo/internal/logging"
)

// EventKind identifies a pipeline trace event.
type EventKind int

const (
	// EventOrder is emitted once the character order is computed.
	EventOrder EventKind = iota
	// EventRowMarkers carries the laminarity markers recorded for one row.
	EventRowMarkers
	// EventConflict reports the column that broke laminarity.
	EventConflict
	// EventTreeBuilt is emitted after tree synthesis, before normalization.
	EventTreeBuilt
	// EventCompacted reports how many nodes compaction spliced out.
	EventCompacted
)

var eventKindNames = [...]string{
	EventOrder:      "order",
	EventRowMarkers: "row_markers",
	EventConflict:   "conflict",
	EventTreeBuilt:  "tree_built",
	EventCompacted:  "compacted",
}

func (k EventKind) String() string {
	if int(k) >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a structured diagnostic emitted by the pipeline.
// Fields not meaningful for a kind are left at their zero value.
type Event struct {
	Kind EventKind
	// Row is the taxon index for EventRowMarkers.
	Row int
	// Column is the offending column for EventConflict.
	Column int
	// Want and Got are the reference and mismatching markers of a conflict.
	Want, Got int
	// Markers holds the per-column markers of a row (0 = not present).
	Markers []int
	// Order is set on EventOrder.
	Order Order
	// Count holds node counts for EventTreeBuilt and splices for EventCompacted.
	Count int
}

// Tracer receives pipeline diagnostics. Implementations must not retain
// Event slices beyond the call.
type Tracer interface {
	Trace(ev Event)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(ev Event)

// Trace calls f(ev).
func (f TracerFunc) Trace(ev Event) { f(ev) }

// NopTracer discards every event.
type NopTracer struct{}

// Trace does nothing.
func (NopTracer) Trace(Event) {}

// LogTracer forwards events to a logger at debug level.
func LogTracer(logger logging.Logger) Tracer {
	return TracerFunc(func(ev Event) {
		fields := []logging.Field{logging.String("event", ev.Kind.String())}
		switch ev.Kind {
		case EventOrder:
			fields = append(fields, logging.String("order", fmt.Sprint([]int(ev.Order))))
		case EventRowMarkers:
			fields = append(fields, logging.Int("row", ev.Row), logging.String("markers", fmt.Sprint(ev.Markers)))
		case EventConflict:
			fields = append(fields, logging.Int("column", ev.Column), logging.Int("want", ev.Want), logging.Int("got", ev.Got))
		case EventTreeBuilt, EventCompacted:
			fields = append(fields, logging.Int("count", ev.Count))
		}
		logger.Debug("phylogeny trace", fields...)
	})
}
