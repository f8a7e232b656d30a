package phylogeny_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/perfphylo/internal/logging"
	"github.com/agbru/perfphylo/internal/phylogeny"
	"github.com/agbru/perfphylo/internal/phylogeny/mocks"
)

func recordKinds(t *testing.T, m phylogeny.Matrix, times int) []phylogeny.Event {
	t.Helper()
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)

	var events []phylogeny.Event
	tracer.EXPECT().Trace(gomock.Any()).Do(func(ev phylogeny.Event) {
		events = append(events, ev)
	}).Times(times)

	_, err := phylogeny.Analyze(m, phylogeny.WithTracer(tracer))
	require.NoError(t, err)
	return events
}

func kinds(events []phylogeny.Event) []phylogeny.EventKind {
	out := make([]phylogeny.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestAnalyze_TraceEvents_Laminar(t *testing.T) {
	events := recordKinds(t, phylogeny.MustMatrix([]int{1, 1, 0}, []int{1, 1, 1}), 5)

	assert.Equal(t, []phylogeny.EventKind{
		phylogeny.EventOrder,
		phylogeny.EventRowMarkers,
		phylogeny.EventRowMarkers,
		phylogeny.EventTreeBuilt,
		phylogeny.EventCompacted,
	}, kinds(events))
	assert.Equal(t, phylogeny.Order{0, 1, 2}, events[0].Order)
	assert.Equal(t, 4, events[3].Count, "raw tree has root and three character nodes")
	assert.Equal(t, 1, events[4].Count, "one pass-through node is spliced")
}

func TestAnalyze_TraceEvents_Conflict(t *testing.T) {
	events := recordKinds(t, phylogeny.MustMatrix([]int{1, 0}, []int{0, 1}, []int{1, 1}), 5)

	assert.Equal(t, phylogeny.EventConflict, events[4].Kind)
	assert.Equal(t, 1, events[4].Column)
}

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewConsoleLogger(&buf, "phylogeny", true)

	_, err := phylogeny.Analyze(
		phylogeny.MustMatrix([]int{1, 0}, []int{0, 1}, []int{1, 1}),
		phylogeny.WithTracer(phylogeny.LogTracer(logger)),
	)
	require.NoError(t, err)

	output := buf.String()
	for _, want := range []string{"event=order", "event=row_markers", "event=conflict", "column=1"} {
		assert.True(t, strings.Contains(output, want), "missing %q in %s", want, output)
	}
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "compacted", phylogeny.EventCompacted.String())
	assert.Equal(t, "EventKind(42)", phylogeny.EventKind(42).String())
}
