package quantile

// Reference selects the target distribution values are mapped onto.
type Reference int

const (
	// Uniform maps values onto their CDF position in [0,1]. Default.
	Uniform Reference = iota

	// Gaussian maps values onto the standard normal via the probit function.
	Gaussian
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultReference is the target distribution when no option is given.
	DefaultReference = Uniform

	// DefaultProbClamp bounds CDF positions away from {0,1} before the
	// probit transform, keeping Gaussian outputs finite.
	DefaultProbClamp = 1e-7
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	reference Reference // DefaultReference
	probClamp float64   // DefaultProbClamp
}

// WithUniformReference maps values onto the uniform [0,1] distribution (default).
func WithUniformReference() Option {
	return func(o *options) { o.reference = Uniform }
}

// WithGaussianReference maps values onto the standard normal distribution.
// CDF positions are clamped to [DefaultProbClamp, 1-DefaultProbClamp] before
// the probit transform so outputs stay finite.
func WithGaussianReference() Option {
	return func(o *options) { o.reference = Gaussian }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last-writer-wins; deterministic for a given setter sequence.
func gatherOptions(user ...Option) options {
	o := options{
		reference: DefaultReference,
		probClamp: DefaultProbClamp,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
