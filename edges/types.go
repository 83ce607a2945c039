package edges

// Pair is the (Row, Col) node pair of one edge, Row < Col.
type Pair struct {
	Row int
	Col int
}

// Options configures Flatten.
//
// Fields:
//   - CheckSymmetry — validate each subject matrix is symmetric within Eps.
//     The default trusts the caller, as the Matrix Source contract promises
//     symmetric input.
//   - Eps — tolerance for the symmetry check.
type Options struct {
	CheckSymmetry bool
	Eps           float64
}

// Option mutates Options.
type Option func(*Options)

// WithSymmetryCheck enables per-subject symmetry validation within eps.
// Panics when eps is negative or NaN (programmer error).
func WithSymmetryCheck(eps float64) Option {
	if eps < 0 || eps != eps {
		panic("edges: WithSymmetryCheck: eps must be non-negative")
	}
	return func(o *Options) {
		o.CheckSymmetry = true
		o.Eps = eps
	}
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
