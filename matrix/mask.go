// SPDX-License-Identifier: MIT

// Package matrix - explicit missing-value mask.
//
// A Dense stores NaN for a missing observation. Statistics never rely on
// NaN propagation: they take a Mask and filter through it, so "skip the
// missing entries" is a visible step at each call site.

package matrix

import "math"

// Mask is a row-major validity mask with the same shape as the matrix it
// was derived from. Observed(i,j) is false exactly where the source held NaN.
type Mask struct {
	r, c  int
	valid []bool
}

// MaskOf derives the validity mask of X (true = observed).
// Only NaN is treated as missing; ±Inf is an observed (if degenerate) value
// and propagates into the statistics.
//
// Complexity: O(r*c).
func MaskOf(X *Dense) Mask {
	valid := make([]bool, len(X.data))
	for idx, v := range X.data {
		valid[idx] = !math.IsNaN(v)
	}

	return Mask{r: X.r, c: X.c, valid: valid}
}

// Shape returns the mask dimensions.
func (mk Mask) Shape() (rows, cols int) { return mk.r, mk.c }

// Observed reports whether entry (i,j) holds a value.
// Out-of-range coordinates are reported as not observed.
func (mk Mask) Observed(i, j int) bool {
	if i < 0 || i >= mk.r || j < 0 || j >= mk.c {
		return false
	}

	return mk.valid[i*mk.c+j]
}

// Count returns the number of observed entries.
func (mk Mask) Count() int {
	n := 0
	for _, ok := range mk.valid {
		if ok {
			n++
		}
	}

	return n
}

// Complete reports whether every entry is observed.
func (mk Mask) Complete() bool {
	return mk.Count() == len(mk.valid)
}

// Observations filters xs through an explicit per-element validity test and
// returns the observed subset. It is the vector counterpart of Mask.
func Observations(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, v := range xs {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out
}

// PairedObservations keeps positions where both x[i] and y[i] are observed.
// x and y must have the same length; otherwise ErrDimensionMismatch.
func PairedObservations(x, y []float64) ([]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, matrixErrorf("PairedObservations", ErrDimensionMismatch)
	}
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}

	return xs, ys, nil
}
