package orchestration

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/perfphylo/internal/errors"
	"github.com/agbru/perfphylo/internal/phylogeny"
)

var resolverTracer = otel.Tracer("perfphylo.orchestration")

// Options configures Resolve.
type Options struct {
	// Mode selects the completion strategy. Empty means ModeFirstRest.
	Mode Mode
	// Internal keeps taxon labels on internal nodes.
	Internal bool
	// Parallelism bounds concurrent candidate evaluations. Values below 1
	// mean runtime.NumCPU().
	Parallelism int
	// Tracer receives pipeline trace events for every run. It must be safe
	// for concurrent use.
	Tracer phylogeny.Tracer
	// Observer receives lifecycle notifications; nil discards them.
	Observer Observer
}

// Candidate is one evaluated completion of the ambiguous cells.
type Candidate struct {
	// Index is the position in enumeration order.
	Index int
	// Assignment holds the value chosen for each ambiguous cell, in
	// row-major cell order.
	Assignment []phylogeny.Cell
	// Result is the pipeline outcome on the completed matrix.
	Result *phylogeny.Result
	// Duration is the time spent in the pipeline.
	Duration time.Duration
}

// Matrix returns the completed matrix.
func (c Candidate) Matrix() phylogeny.Matrix { return c.Result.Matrix() }

// Perfect reports whether the completion admits a perfect phylogeny.
func (c Candidate) Perfect() bool { return c.Result != nil && c.Result.Perfect() }

// Resolution aggregates the baseline run and every evaluated completion.
type Resolution struct {
	// Mode is the completion mode that produced Candidates.
	Mode Mode
	// Cells lists the ambiguous positions in row-major order.
	Cells []phylogeny.Position
	// Baseline is the pipeline outcome on the matrix as given, where
	// ambiguous cells count as not present.
	Baseline *phylogeny.Result
	// Candidates holds every evaluated completion in enumeration order.
	Candidates []Candidate
	// Duration is the wall time of the whole resolution.
	Duration time.Duration
}

// Feasible returns the candidates that admit a perfect phylogeny, in
// enumeration order. It returns an empty slice when none does.
func (r *Resolution) Feasible() []Candidate {
	out := make([]Candidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		if c.Perfect() {
			out = append(out, c)
		}
	}
	return out
}

// Perfect reports whether the baseline or any completion is perfect.
func (r *Resolution) Perfect() bool {
	return r.Baseline.Perfect() || len(r.Feasible()) > 0
}

// Resolve runs the pipeline on m and on every completion of its ambiguous
// cells selected by opts.Mode.
//
// Completions are evaluated concurrently on an errgroup bounded by
// opts.Parallelism. Each goroutine works on its own copy of the matrix and
// stores its candidate by index, so the returned order never depends on
// scheduling. Cancelling ctx stops scheduling further candidates.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - m: The matrix to resolve; it is copied and never modified.
//   - opts: The resolution options.
//
// Returns:
//   - *Resolution: The baseline and every evaluated candidate.
//   - error: A validation error for malformed matrices, or an
//     apperrors.ResolutionError wrapping a mode or context failure.
func Resolve(ctx context.Context, m phylogeny.Matrix, opts Options) (*Resolution, error) {
	start := time.Now()
	m, err := phylogeny.NewMatrix(m)
	if err != nil {
		return nil, err
	}
	if opts.Mode == "" {
		opts.Mode = ModeFirstRest
	}
	cells := m.AmbiguousCells()

	ctx, span := resolverTracer.Start(ctx, "orchestration.Resolve",
		trace.WithAttributes(
			attribute.String("mode", string(opts.Mode)),
			attribute.Int("taxa", m.Taxa()),
			attribute.Int("characters", m.Characters()),
			attribute.Int("ambiguous_cells", len(cells)),
		),
	)
	defer span.End()

	fail := func(err error) (*Resolution, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, apperrors.ResolutionError{Mode: string(opts.Mode), Cause: err}
	}

	assignments, err := Completions(opts.Mode, len(cells))
	if err != nil {
		return fail(err)
	}

	pipelineOpts := phylogeny.Options{Internal: opts.Internal, Tracer: opts.Tracer}
	baseline, err := phylogeny.AnalyzeWith(m, pipelineOpts)
	if err != nil {
		return fail(err)
	}
	span.AddEvent("baseline_complete", trace.WithAttributes(
		attribute.Bool("perfect", baseline.Perfect()),
	))

	var observer Observer = NullObserver{}
	if opts.Observer != nil {
		observer = &lockedObserver{o: opts.Observer}
	}
	observer.ResolutionStarted(opts.Mode, len(assignments))

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	candidates := make([]Candidate, len(assignments))
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, values := range assignments {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := evaluate(gctx, m, cells, i, values, pipelineOpts)
			if err != nil {
				return err
			}
			candidates[i] = c
			observer.CandidateEvaluated(c, int(done.Add(1)), len(assignments))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fail(err)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res := &Resolution{
		Mode:       opts.Mode,
		Cells:      cells,
		Baseline:   baseline,
		Candidates: candidates,
		Duration:   time.Since(start),
	}
	span.AddEvent("resolution_complete", trace.WithAttributes(
		attribute.Int("candidates", len(candidates)),
		attribute.Int("feasible", len(res.Feasible())),
	))
	observer.ResolutionFinished(res)
	return res, nil
}

func evaluate(ctx context.Context, m phylogeny.Matrix, cells []phylogeny.Position, index int, values []phylogeny.Cell, opts phylogeny.Options) (Candidate, error) {
	_, span := resolverTracer.Start(ctx, "orchestration.Candidate",
		trace.WithAttributes(attribute.Int("index", index)),
	)
	defer span.End()

	start := time.Now()
	res, err := phylogeny.AnalyzeWith(complete(m, cells, values), opts)
	if err != nil {
		span.RecordError(err)
		return Candidate{}, err
	}
	span.SetAttributes(attribute.Bool("perfect", res.Perfect()))
	return Candidate{
		Index:      index,
		Assignment: values,
		Result:     res,
		Duration:   time.Since(start),
	}, nil
}
