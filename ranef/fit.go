package ranef

import (
	"fmt"

	"github.com/katalvlaran/fcsc/matrix"
)

const opFit = "Fit"

// Fit estimates the random-effects model on one S×E dataset.
// MAIN DESCRIPTION:
//   - Closed-form two-way decomposition: global mean, edge and subject
//     main effects, then a rank-1 interaction on the additive residual.
//
// Implementation:
//   - Stage 1: validate (non-nil, S ≥ MinSubjects, E ≥ MinEdges); derive the
//     validity mask of data.
//   - Stage 2: μ̂ = masked mean of all observed entries.
//   - Stage 3: α̂_j = masked column mean − μ̂; β̂_s = masked row mean − μ̂.
//   - Stage 4: Additive = AdditiveCombine(μ̂, α̂, β̂); R = data − Additive.
//   - Stage 5: (η̂, ϖ̂, Rank1) = Interaction(R, constraints).
//   - Stage 6: ε̂ = R − Rank1; Fitted = Additive + Rank1.
//
// μ̂, α̂ and β̂ are frozen after stage 3; nothing downstream revises them.
//
// Errors:
//   - ErrNilData, ErrTooSmall, ErrSVDFailed.
//
// Complexity:
//   - Time O(S·E·min(S,E)) (SVD-dominated), Space O(S·E).
//
// Notes:
//   - A column (row) with no observed entry yields a NaN α̂_j (β̂_s); its
//     residuals are missing and enter the SVD as zeros.
func Fit(data *matrix.Dense, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)

	if data == nil {
		return nil, fmt.Errorf("%s: %w", opFit, ErrNilData)
	}
	s, e := data.Shape()
	if s < MinSubjects || e < MinEdges {
		return nil, fmt.Errorf("%s: %d subjects × %d edges: %w", opFit, s, e, ErrTooSmall)
	}
	mk := matrix.MaskOf(data)

	mu, err := matrix.MaskedMean(data, mk)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	alpha, err := matrix.MaskedColMeans(data, mk)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	beta, err := matrix.MaskedRowMeans(data, mk)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	for j := range alpha {
		alpha[j] -= mu
	}
	for i := range beta {
		beta[i] -= mu
	}

	additive, err := matrix.AdditiveCombine(mu, alpha, beta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	resid, err := matrix.Residual(data, additive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	eta, varpi, rank1, err := Interaction(resid, o.Constraints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	epsilon, err := matrix.Sub(resid, rank1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}
	fitted, err := matrix.Add(additive, rank1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFit, err)
	}

	return &Model{
		Mu:          mu,
		Alpha:       alpha,
		Beta:        beta,
		Eta:         eta,
		Varpi:       varpi,
		Epsilon:     epsilon,
		Additive:    additive,
		Rank1:       rank1,
		Fitted:      fitted,
		Constrained: o.Constraints,
	}, nil
}
