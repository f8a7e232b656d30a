package metrics

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/perfphylo/internal/orchestration"
	"github.com/agbru/perfphylo/internal/phylogeny"
)

func resolve(t *testing.T, c *Collector, mode orchestration.Mode, rows ...[]int) *orchestration.Resolution {
	t.Helper()
	res, err := orchestration.Resolve(context.Background(), phylogeny.MustMatrix(rows...),
		orchestration.Options{Mode: mode, Observer: c})
	require.NoError(t, err)
	return res
}

func TestCollector_CountsResolution(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	res := resolve(t, c, orchestration.ModeFirstRest, []int{1, 0}, []int{0, 1}, []int{2, 1})
	require.Len(t, res.Feasible(), 2)

	assert.Equal(t, 4.0, testutil.ToFloat64(c.candidates.WithLabelValues("first-rest")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.feasible.WithLabelValues("first-rest")))
	// Baseline and the two value-0 completions are perfect.
	assert.Equal(t, 3.0, testutil.ToFloat64(c.runs.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.runs.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ambiguousCells))
	assert.Positive(t, testutil.ToFloat64(c.heapAlloc))
}

func TestCollector_Accumulates(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	resolve(t, c, orchestration.ModeExhaustive, []int{1, 2})
	resolve(t, c, orchestration.ModeExhaustive, []int{2, 2})

	assert.Equal(t, 6.0, testutil.ToFloat64(c.candidates.WithLabelValues("exhaustive")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ambiguousCells))
}

func TestCollector_WriteTextfile(t *testing.T) {
	t.Parallel()
	c := NewCollector()
	resolve(t, c, orchestration.ModeFirstRest, []int{1, 1}, []int{2, 0})

	path := filepath.Join(t.TempDir(), "perfphylo.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)
	for _, want := range []string{
		"perfphylo_pipeline_runs_total",
		`perfphylo_completions_evaluated_total{mode="first-rest"} 4`,
		"perfphylo_resolution_duration_seconds_bucket",
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(body, want), "missing %q", want)
	}
}
