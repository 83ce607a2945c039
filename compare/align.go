package compare

import (
	"fmt"

	"github.com/katalvlaran/fcsc/ranef"
)

// Alignment describes the sign decision taken by AlignSigns.
type Alignment struct {
	// Before is corr(ϖ_FC, ϖ_SC) on the models as fitted.
	Before float64
	// After is the same correlation on the returned FC record
	// (≥ 0 or NaN).
	After float64
	// Flipped reports whether the FC record was replaced by its Flipped copy.
	Flipped bool
}

// AlignSigns fixes the sign ambiguity of the FC interaction against SC.
//
// Implementation:
//   - Stage 1: ρ = SafeCorrelation(ϖ_FC, ϖ_SC).
//   - Stage 2: if ρ < 0, return fc.Flipped() and the recomputed ρ; else fc.
//
// An undefined ρ (NaN) never triggers a flip. Neither input is modified.
//
// Errors: ErrNilModel, ErrShapeMismatch.
func AlignSigns(fc, sc *ranef.Model) (*ranef.Model, Alignment, error) {
	if err := checkPair(fc, sc); err != nil {
		return nil, Alignment{}, fmt.Errorf("AlignSigns: %w", err)
	}

	rho := SafeCorrelation(fc.Varpi, sc.Varpi)
	al := Alignment{Before: rho, After: rho}
	if !(rho < 0) {
		return fc, al, nil
	}

	flipped, err := fc.Flipped()
	if err != nil {
		return nil, Alignment{}, fmt.Errorf("AlignSigns: %w", err)
	}
	al.Flipped = true
	al.After = SafeCorrelation(flipped.Varpi, sc.Varpi)

	return flipped, al, nil
}

func checkPair(fc, sc *ranef.Model) error {
	if fc == nil || sc == nil {
		return ErrNilModel
	}
	if fc.Subjects() != sc.Subjects() || fc.Edges() != sc.Edges() {
		return fmt.Errorf("FC %d×%d vs SC %d×%d: %w",
			fc.Subjects(), fc.Edges(), sc.Subjects(), sc.Edges(), ErrShapeMismatch)
	}
	return nil
}
