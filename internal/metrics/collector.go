package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/perfphylo/internal/orchestration"
)

const namespace = "perfphylo"

// Collector is an orchestration.Observer that turns resolution events into
// Prometheus metrics. Each Collector owns its registry, so several can live
// in one process (tests, REPL sessions) without duplicate registration.
type Collector struct {
	registry *prometheus.Registry

	runs               *prometheus.CounterVec
	candidates         *prometheus.CounterVec
	feasible           *prometheus.CounterVec
	candidateDuration  prometheus.Histogram
	resolutionDuration prometheus.Histogram
	ambiguousCells     prometheus.Gauge
	heapAlloc          prometheus.Gauge
}

// NewCollector creates a Collector with Go runtime metrics registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Pipeline runs on baselines and completions, by outcome.",
		}, []string{"perfect"}),
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_evaluated_total",
			Help:      "Completions of ambiguous cells evaluated, by mode.",
		}, []string{"mode"}),
		feasible: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_feasible_total",
			Help:      "Completions admitting a perfect phylogeny, by mode.",
		}, []string{"mode"}),
		candidateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidate_duration_seconds",
			Help:      "Pipeline time per completion.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		resolutionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolution_duration_seconds",
			Help:      "Wall time of a whole resolution.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}),
		ambiguousCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ambiguous_cells",
			Help:      "Ambiguous cells in the last resolved matrix.",
		}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Heap in use when the last resolution finished.",
		}),
	}
	c.registry.MustRegister(
		c.runs, c.candidates, c.feasible,
		c.candidateDuration, c.resolutionDuration,
		c.ambiguousCells, c.heapAlloc,
		collectors.NewGoCollector(),
	)
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ResolutionStarted implements orchestration.Observer.
func (c *Collector) ResolutionStarted(mode orchestration.Mode, _ int) {
	c.candidates.WithLabelValues(string(mode)).Add(0)
	c.feasible.WithLabelValues(string(mode)).Add(0)
}

// CandidateEvaluated implements orchestration.Observer.
func (c *Collector) CandidateEvaluated(cand orchestration.Candidate, _, _ int) {
	c.candidateDuration.Observe(cand.Duration.Seconds())
	c.runs.WithLabelValues(strconv.FormatBool(cand.Perfect())).Inc()
}

// ResolutionFinished implements orchestration.Observer.
func (c *Collector) ResolutionFinished(res *orchestration.Resolution) {
	mode := string(res.Mode)
	c.runs.WithLabelValues(strconv.FormatBool(res.Baseline.Perfect())).Inc()
	c.candidates.WithLabelValues(mode).Add(float64(len(res.Candidates)))
	c.feasible.WithLabelValues(mode).Add(float64(len(res.Feasible())))
	c.resolutionDuration.Observe(res.Duration.Seconds())
	c.ambiguousCells.Set(float64(len(res.Cells)))
	c.heapAlloc.Set(float64(ReadMemory().HeapAlloc))
}

// WriteTextfile writes every metric to path in the text exposition format,
// atomically, for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
