package phylogeny

// Result bundles the outcome of one pipeline run. It owns private copies of
// its matrix and order; accessors return copies so a Result never changes
// after Analyze returns.
type Result struct {
	matrix  Matrix
	order   Order
	perfect bool
	tree    *Tree
}

// Matrix returns a copy of the analysed matrix.
func (r *Result) Matrix() Matrix { return r.matrix.Clone() }

// Order returns a copy of the character order used by every stage.
func (r *Result) Order() Order { return r.order.Clone() }

// Perfect reports whether the matrix admits a perfect phylogeny.
func (r *Result) Perfect() bool { return r.perfect }

// Tree returns the synthesized tree. It has no nodes when Perfect is false.
// The tree is read-only for callers.
func (r *Result) Tree() *Tree { return r.tree }

// Options configures a pipeline run.
type Options struct {
	// Internal keeps the taxon annotation on internal nodes after their
	// taxa were split into leaves.
	Internal bool
	// Tracer receives structured diagnostics; nil discards them.
	Tracer Tracer
}

// Option mutates Options.
type Option func(*Options)

// WithInternalLabels sets Options.Internal.
func WithInternalLabels(internal bool) Option {
	return func(o *Options) { o.Internal = internal }
}

// WithTracer sets Options.Tracer.
func WithTracer(t Tracer) Option {
	return func(o *Options) { o.Tracer = t }
}

// Analyze validates m and runs the full pipeline: character ordering,
// laminarity test, and, when laminar, tree synthesis and normalization.
// A non-laminar matrix is not an error; check Result.Perfect.
func Analyze(m Matrix, opts ...Option) (*Result, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return AnalyzeWith(m, o)
}

// AnalyzeWith is Analyze with an explicit Options value.
func AnalyzeWith(m Matrix, o Options) (*Result, error) {
	m, err := NewMatrix(m)
	if err != nil {
		return nil, err
	}
	tracer := o.Tracer
	if tracer == nil {
		tracer = NopTracer{}
	}

	order := OrderCharacters(m)
	tracer.Trace(Event{Kind: EventOrder, Order: order.Clone()})

	if !IsLaminar(m, order, tracer) {
		return &Result{matrix: m, order: order, tree: newEmptyTree()}, nil
	}

	tree := buildTree(m, order)
	tracer.Trace(Event{Kind: EventTreeBuilt, Count: tree.Len()})
	spliced := normalize(tree, o.Internal)
	tracer.Trace(Event{Kind: EventCompacted, Count: spliced})

	return &Result{matrix: m, order: order, perfect: true, tree: tree}, nil
}
