package cluster

import "errors"

var (
	// ErrNilFrame indicates a nil input frame.
	ErrNilFrame = errors.New("cluster: nil frame")

	// ErrBadClusterCount is returned when k is not in [1, rows]: zero or
	// negative k is meaningless, and more clusters than rows cannot all be
	// populated.
	ErrBadClusterCount = errors.New("cluster: k must be in [1, rows]")
)

// Labeling maps each row identity to its cluster id in [0, k).
// Every row of the clustered frame has exactly one entry. Label values are
// not meaningfully ordered: no label being smaller than another implies any
// similarity.
type Labeling map[string]int

// Defaults — single source of truth for option zero values.
const (
	// DefaultMaxIterations caps Lloyd iterations when assignments keep
	// changing. Reaching the cap returns the current labeling, not an error.
	DefaultMaxIterations = 300

	// DefaultNeighbors is the m of the m-nearest-neighbor affinity graph
	// used by Spectral, clamped to rows-1 for small inputs.
	DefaultNeighbors = 10
)

// Internal panic messages for option constructors (programmer errors only).
const (
	panicMaxIterationsInvalid = "cluster: WithMaxIterations: n must be > 0"
	panicNeighborsInvalid     = "cluster: WithNeighbors: m must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	maxIterations int // DefaultMaxIterations
	neighbors     int // DefaultNeighbors (Spectral only; KMeans ignores it)
}

// WithMaxIterations overrides the Lloyd iteration cap.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *options) { o.maxIterations = n }
}

// WithNeighbors overrides the affinity-graph neighbor count used by
// Spectral. Values larger than rows-1 are clamped at build time.
// Panics when m <= 0.
func WithNeighbors(m int) Option {
	if m <= 0 {
		panic(panicNeighborsInvalid)
	}

	return func(o *options) { o.neighbors = m }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
func gatherOptions(user ...Option) options {
	o := options{
		maxIterations: DefaultMaxIterations,
		neighbors:     DefaultNeighbors,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
