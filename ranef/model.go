package ranef

import (
	"fmt"

	"github.com/katalvlaran/fcsc/matrix"
)

// Model is one fitted random-effects decomposition of an S×E dataset.
//
// Fields:
//   - Mu       – global mean μ̂.
//   - Alpha    – main edge effects α̂ (len E).
//   - Beta     – main subject effects β̂ (len S).
//   - Eta      – interaction edge loadings η̂ (len E).
//   - Varpi    – interaction subject loadings ϖ̂ (len S).
//   - Epsilon  – final residual ε̂ = data − Additive − Rank1 (S×E).
//   - Additive – μ̂ + α̂_j + β̂_s (S×E).
//   - Rank1    – interaction term outer(ϖ̂, η̂) (S×E).
//   - Fitted   – Additive + Rank1 (S×E).
//
// A Model is never modified after Fit returns; treat every slice and
// matrix as read-only. Use Flipped for the opposite-sign interaction.
type Model struct {
	Mu       float64
	Alpha    []float64
	Beta     []float64
	Eta      []float64
	Varpi    []float64
	Epsilon  *matrix.Dense
	Additive *matrix.Dense
	Rank1    *matrix.Dense
	Fitted   *matrix.Dense

	// Constrained records whether identifiability constraints were applied.
	Constrained bool
}

// Subjects returns S.
func (m *Model) Subjects() int { return len(m.Beta) }

// Edges returns E.
func (m *Model) Edges() int { return len(m.Alpha) }

// Flipped returns a new Model whose η, ϖ and Rank1 are negated.
// (−η, −ϖ) is an equally valid solution of the constrained fit. The
// additive part, Epsilon and Fitted are shared with m, not copied.
func (m *Model) Flipped() (*Model, error) {
	rank1, err := matrix.Negate(m.Rank1)
	if err != nil {
		return nil, fmt.Errorf("Flipped: %w", err)
	}
	out := *m
	out.Eta = negated(m.Eta)
	out.Varpi = negated(m.Varpi)
	out.Rank1 = rank1

	return &out, nil
}

// Reconstruct returns Fitted + Epsilon (Additive + Rank1 + Epsilon for a
// Fit result). It equals the fitted dataset on every observed entry and
// is missing elsewhere.
func (m *Model) Reconstruct() (*matrix.Dense, error) {
	sum, err := matrix.Add(m.Fitted, m.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}
	return sum, nil
}

func negated(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = -v
	}
	return out
}
