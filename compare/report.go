package compare

import (
	"fmt"

	"github.com/katalvlaran/fcsc/ranef"
)

// Report holds the four effect correlations between FC and SC.
// NaN marks an undefined correlation.
type Report struct {
	RhoAlpha float64
	RhoBeta  float64
	RhoEta   float64
	RhoVarpi float64

	// RhoVarpiBeforeAlign is corr(ϖ) before any sign adjustment
	// (equal to RhoVarpi when alignment is off or no flip happened).
	RhoVarpiBeforeAlign float64
	// Flipped reports whether the FC interaction sign was flipped.
	Flipped bool
}

// Options configures Correlate.
type Options struct {
	SignAdjust bool
}

// DefaultSignAdjust enables FC-to-SC sign alignment.
const DefaultSignAdjust = true

// Option mutates Options.
type Option func(*Options)

// WithSignAdjust toggles sign alignment before correlating.
func WithSignAdjust(on bool) Option { return func(o *Options) { o.SignAdjust = on } }

func gatherOptions(opts ...Option) Options {
	o := Options{SignAdjust: DefaultSignAdjust}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Correlate computes the effect correlations between an FC and an SC model.
//
// Implementation:
//   - Stage 1: validate the pair.
//   - Stage 2: if sign adjustment is on, AlignSigns(fc, sc).
//   - Stage 3: SafeCorrelation on α, β, η and ϖ.
//
// Returns the report and the FC record the correlations were computed on
// (fc itself, or its flipped copy). sc is the reference and is never altered.
//
// Errors: ErrNilModel, ErrShapeMismatch.
func Correlate(fc, sc *ranef.Model, opts ...Option) (Report, *ranef.Model, error) {
	o := gatherOptions(opts...)
	if err := checkPair(fc, sc); err != nil {
		return Report{}, nil, fmt.Errorf("Correlate: %w", err)
	}

	var rep Report
	used := fc
	if o.SignAdjust {
		var al Alignment
		var err error
		if used, al, err = AlignSigns(fc, sc); err != nil {
			return Report{}, nil, fmt.Errorf("Correlate: %w", err)
		}
		rep.RhoVarpiBeforeAlign = al.Before
		rep.Flipped = al.Flipped
	}

	rep.RhoAlpha = SafeCorrelation(used.Alpha, sc.Alpha)
	rep.RhoBeta = SafeCorrelation(used.Beta, sc.Beta)
	rep.RhoEta = SafeCorrelation(used.Eta, sc.Eta)
	rep.RhoVarpi = SafeCorrelation(used.Varpi, sc.Varpi)
	if !o.SignAdjust {
		rep.RhoVarpiBeforeAlign = rep.RhoVarpi
	}

	return rep, used, nil
}
