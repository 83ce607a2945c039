package ranef

// Minimum dataset size accepted by Fit.
const (
	MinSubjects = 2
	MinEdges    = 2
)

// NormEps is the Σ η² threshold below which η is treated as a zero
// interaction and left unscaled.
const NormEps = 1e-12

// DefaultConstraints enables the identifiability constraints.
const DefaultConstraints = true

// Options configures Fit.
type Options struct {
	Constraints bool
}

// Option mutates Options.
type Option func(*Options)

// WithConstraints toggles centering and normalisation of (η, ϖ).
// With constraints off the loadings are the raw √s₁·u₁, √s₁·v₁.
func WithConstraints(on bool) Option {
	return func(o *Options) { o.Constraints = on }
}

// DefaultOptions returns the Fit defaults.
func DefaultOptions() Options {
	return Options{Constraints: DefaultConstraints}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
