package ranef

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fcsc/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opInteraction = "Interaction"
	opConstrain   = "Constrain"
)

// Interaction extracts the rank-1 interaction of an additive residual R (S×E).
// MAIN DESCRIPTION:
//   - Leading singular triplet (s₁, u₁, v₁) of R; the energy is split evenly
//     between the two loadings so that outer(ϖ, η) = s₁·u₁·v₁ᵀ.
//
// Implementation:
//   - Stage 1: replace missing residuals by 0 (a copy; R is untouched).
//   - Stage 2: matrix.LeadingSingular (gonum thin SVD).
//   - Stage 3: ϖ = √s₁·u₁ (len S), η = √s₁·v₁ (len E).
//   - Stage 4: if constrain, apply Constrain(η, ϖ).
//   - Stage 5: rank1 = outer(ϖ, η).
//
// Returns:
//   - eta (len E), varpi (len S), rank1 (S×E).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrSVDFailed.
//
// Notes:
//   - A residual holding ±Inf has no meaningful decomposition: η, ϖ and
//     rank1 come back all NaN and surface as undefined statistics.
func Interaction(R *matrix.Dense, constrain bool) (eta, varpi []float64, rank1 *matrix.Dense, err error) {
	filled, err := matrix.FillMissing(R, 0)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", opInteraction, err)
	}

	sv, err := matrix.LeadingSingular(filled)
	if err != nil {
		if errors.Is(err, matrix.ErrSVDFailed) {
			return nil, nil, nil, fmt.Errorf("%s: %w: %w", opInteraction, ErrSVDFailed, err)
		}
		return nil, nil, nil, fmt.Errorf("%s: %w", opInteraction, err)
	}

	root := math.Sqrt(sv.Value)
	varpi = make([]float64, len(sv.U))
	eta = make([]float64, len(sv.V))
	floats.ScaleTo(varpi, root, sv.U)
	floats.ScaleTo(eta, root, sv.V)

	if constrain {
		eta, varpi = Constrain(eta, varpi)
	}

	if rank1, err = matrix.Outer(varpi, eta); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", opInteraction, err)
	}

	return eta, varpi, rank1, nil
}

// Constrain applies the identifiability constraints to a pair of loadings
// and returns new slices; the inputs are not modified.
//
//  1. Centering: η ← η − mean(η), ϖ ← ϖ − mean(ϖ).
//  2. Normalisation: if Σ η² > NormEps, η ← c·η and ϖ ← ϖ/c with
//     c = √(E / Σ η²), so that Σ η² = E afterwards.
//
// The sign of the pair is left as is.
func Constrain(eta, varpi []float64) ([]float64, []float64) {
	e := append([]float64(nil), eta...)
	w := append([]float64(nil), varpi...)

	center(e)
	center(w)

	ss := floats.Dot(e, e)
	if ss > NormEps { // false for NaN too
		c := math.Sqrt(float64(len(e)) / ss)
		floats.Scale(c, e)
		floats.Scale(1/c, w)
	}

	return e, w
}

// center subtracts the mean in place.
func center(xs []float64) {
	if len(xs) == 0 {
		return
	}
	floats.AddConst(-floats.Sum(xs)/float64(len(xs)), xs)
}
