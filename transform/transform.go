package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fcsc/matrix"
)

// FisherEps is the distance from ±1 at which FC values are clipped before atanh.
const FisherEps = 1e-8

// Options selects which transforms Apply runs.
type Options struct {
	Log     bool // log1p on SC (DefaultLog)
	FisherZ bool // clipped atanh on FC (DefaultFisherZ)
}

// Defaults mirror the reference analysis: both transforms on.
const (
	DefaultLog     = true
	DefaultFisherZ = true
)

// Option mutates Options.
type Option func(*Options)

// WithLog toggles the SC log1p transform.
func WithLog(on bool) Option { return func(o *Options) { o.Log = on } }

// WithFisherZ toggles the FC Fisher-z transform.
func WithFisherZ(on bool) Option { return func(o *Options) { o.FisherZ = on } }

func gatherOptions(opts ...Option) Options {
	o := Options{Log: DefaultLog, FisherZ: DefaultFisherZ}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Log1p returns log(1+x) element-wise. Missing entries stay missing.
func Log1p(X *matrix.Dense) (*matrix.Dense, error) {
	out, err := matrix.MapObserved(X, math.Log1p)
	if err != nil {
		return nil, fmt.Errorf("Log1p: %w", err)
	}
	return out, nil
}

// FisherZ clips X into [−1+FisherEps, 1−FisherEps] and returns atanh element-wise.
func FisherZ(X *matrix.Dense) (*matrix.Dense, error) {
	clipped, err := matrix.Clip(X, -1+FisherEps, 1-FisherEps)
	if err != nil {
		return nil, fmt.Errorf("FisherZ: %w", err)
	}
	out, err := matrix.MapObserved(clipped, math.Atanh)
	if err != nil {
		return nil, fmt.Errorf("FisherZ: %w", err)
	}
	return out, nil
}

// Apply transforms the SC and FC datasets independently.
// A disabled transform still returns a copy, so callers never alias inputs.
//
// Errors: matrix.ErrNilMatrix when either dataset is nil.
func Apply(sc, fc *matrix.Dense, opts ...Option) (*matrix.Dense, *matrix.Dense, error) {
	o := gatherOptions(opts...)

	var scOut, fcOut *matrix.Dense
	var err error
	if o.Log {
		scOut, err = Log1p(sc)
	} else {
		scOut, err = matrix.CloneDense(sc)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("Apply: SC: %w", err)
	}

	if o.FisherZ {
		fcOut, err = FisherZ(fc)
	} else {
		fcOut, err = matrix.CloneDense(fc)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("Apply: FC: %w", err)
	}

	return scOut, fcOut, nil
}
