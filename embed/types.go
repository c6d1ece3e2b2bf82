package embed

import (
	"errors"
	"math/rand"
)

var (
	// ErrNilFrame indicates a nil input frame.
	ErrNilFrame = errors.New("embed: nil frame")
)

// Point is one 2D coordinate of an embedding.
type Point struct {
	X float64
	Y float64
}

// Embedding2D maps each row identity to its 2D coordinate. Every row of the
// embedded frame has exactly one entry.
type Embedding2D map[string]Point

// Defaults — single source of truth for TSNE option zero values.
const (
	// DefaultPerplexity is the target effective neighbor count for the
	// Gaussian bandwidth search, clamped to (rows-1)/3 for small inputs.
	DefaultPerplexity = 30.0

	// DefaultIterations is the gradient-descent budget. The full budget is
	// always run; there is no early-convergence exit.
	DefaultIterations = 1000

	// DefaultLearningRate scales each gradient step.
	DefaultLearningRate = 200.0

	// DefaultExaggeration multiplies the input similarities during the
	// early-exaggeration phase (the first tenth of the iteration budget),
	// letting clusters separate before fine-tuning.
	DefaultExaggeration = 12.0

	// exaggerationShare is the fraction of iterations spent exaggerated.
	exaggerationShare = 0.10

	// momentumEarly and momentumLate are the classic two-phase momentum
	// coefficients: conservative while exaggerated, aggressive after.
	momentumEarly = 0.5
	momentumLate  = 0.8

	// initScale is the standard deviation of the random initial layout.
	initScale = 1e-4

	// minProb floors similarity masses to keep log/division finite.
	minProb = 1e-12

	// bandwidthSearchSteps bounds the per-point binary search for the
	// Gaussian bandwidth matching the target perplexity.
	bandwidthSearchSteps = 50
)

// Internal panic messages for option constructors (programmer errors only).
const (
	panicPerplexityInvalid   = "embed: WithPerplexity: p must be > 0"
	panicIterationsInvalid   = "embed: WithIterations: n must be > 0"
	panicLearningRateInvalid = "embed: WithLearningRate: rate must be > 0"
)

// Option mutates internal TSNE options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective TSNE configuration.
type options struct {
	perplexity   float64 // DefaultPerplexity
	iterations   int     // DefaultIterations
	learningRate float64 // DefaultLearningRate
	exaggeration float64 // DefaultExaggeration
}

// WithPerplexity overrides the target perplexity. Panics when p <= 0.
func WithPerplexity(p float64) Option {
	if p <= 0 {
		panic(panicPerplexityInvalid)
	}

	return func(o *options) { o.perplexity = p }
}

// WithIterations overrides the gradient-descent budget. Panics when n <= 0.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *options) { o.iterations = n }
}

// WithLearningRate overrides the gradient step scale. Panics when rate <= 0.
func WithLearningRate(rate float64) Option {
	if rate <= 0 {
		panic(panicLearningRateInvalid)
	}

	return func(o *options) { o.learningRate = rate }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		perplexity:   DefaultPerplexity,
		iterations:   DefaultIterations,
		learningRate: DefaultLearningRate,
		exaggeration: DefaultExaggeration,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0,
// matching the cluster package's seed policy.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
