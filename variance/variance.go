package variance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fcsc/matrix"
	"github.com/katalvlaran/fcsc/ranef"
)

// TotalEps is the total variance under which percentages are all zero.
const TotalEps = 1e-12

// ErrNilInput is returned when the model or dataset is nil.
var ErrNilInput = errors.New("variance: nil model or dataset")

// Components are the raw variances of each model term.
type Components struct {
	Total       float64 // var(data − μ̂)
	Alpha       float64 // var(α̂)
	Beta        float64 // var(β̂)
	Interaction float64 // var(outer(ϖ̂, η̂))
	Epsilon     float64 // var(ε̂)
}

// Percentages express each component relative to Total (Total is 100).
type Percentages struct {
	Total       float64
	Alpha       float64
	Beta        float64
	Interaction float64
	Epsilon     float64
}

// Decomposition pairs raw components and percentages.
type Decomposition struct {
	Components  Components
	Percentages Percentages
}

// Analysis holds the FC and SC decompositions, computed independently.
type Analysis struct {
	FC Decomposition
	SC Decomposition
}

// ComputeComponents returns the variance components of m on its dataset.
//
// Implementation:
//   - Total: masked population variance of data − μ̂ over observed entries.
//   - Alpha, Beta: population variance of the observed effects.
//   - Interaction, Epsilon: masked population variance of Rank1 and ε̂.
//
// Errors: ErrNilInput, matrix.ErrDimensionMismatch (data is not S×E of m).
func ComputeComponents(m *ranef.Model, data *matrix.Dense) (Components, error) {
	if m == nil || data == nil || m.Rank1 == nil || m.Epsilon == nil {
		return Components{}, fmt.Errorf("ComputeComponents: %w", ErrNilInput)
	}
	if data.Rows() != m.Subjects() || data.Cols() != m.Edges() {
		return Components{}, fmt.Errorf("ComputeComponents: data %d×%d, model %d×%d: %w",
			data.Rows(), data.Cols(), m.Subjects(), m.Edges(), matrix.ErrDimensionMismatch)
	}

	centered, err := matrix.MapObserved(data, func(v float64) float64 { return v - m.Mu })
	if err != nil {
		return Components{}, fmt.Errorf("ComputeComponents: %w", err)
	}

	var c Components
	if c.Total, err = maskedVariance(centered); err != nil {
		return Components{}, fmt.Errorf("ComputeComponents: total: %w", err)
	}
	c.Alpha = matrix.VecPopVariance(m.Alpha)
	c.Beta = matrix.VecPopVariance(m.Beta)
	if c.Interaction, err = maskedVariance(m.Rank1); err != nil {
		return Components{}, fmt.Errorf("ComputeComponents: interaction: %w", err)
	}
	if c.Epsilon, err = maskedVariance(m.Epsilon); err != nil {
		return Components{}, fmt.Errorf("ComputeComponents: epsilon: %w", err)
	}

	return c, nil
}

func maskedVariance(X *matrix.Dense) (float64, error) {
	return matrix.PopVariance(X, matrix.MaskOf(X))
}

// Percent converts raw components into percentages of the total.
// A total below TotalEps (or undefined) yields all zeros.
func Percent(c Components) Percentages {
	if !(c.Total >= TotalEps) {
		return Percentages{}
	}
	scale := 100 / c.Total

	return Percentages{
		Total:       100,
		Alpha:       c.Alpha * scale,
		Beta:        c.Beta * scale,
		Interaction: c.Interaction * scale,
		Epsilon:     c.Epsilon * scale,
	}
}

// Sum returns Alpha + Beta + Interaction + Epsilon.
func (p Percentages) Sum() float64 {
	return p.Alpha + p.Beta + p.Interaction + p.Epsilon
}

// Decompose computes components and percentages for one model.
func Decompose(m *ranef.Model, data *matrix.Dense) (Decomposition, error) {
	c, err := ComputeComponents(m, data)
	if err != nil {
		return Decomposition{}, err
	}
	return Decomposition{Components: c, Percentages: Percent(c)}, nil
}

// Analyze decomposes the FC and SC models on their own datasets. There is
// no normalisation across the two.
func Analyze(fc, sc *ranef.Model, fcData, scData *matrix.Dense) (Analysis, error) {
	var a Analysis
	var err error
	if a.FC, err = Decompose(fc, fcData); err != nil {
		return Analysis{}, fmt.Errorf("Analyze: FC: %w", err)
	}
	if a.SC, err = Decompose(sc, scData); err != nil {
		return Analysis{}, fmt.Errorf("Analyze: SC: %w", err)
	}
	return a, nil
}
