// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide missing-aware statistics over Dense: global / per-row / per-column
//     means and population variances, each filtered through an explicit Mask.
//   - Delegate the numeric reductions on the filtered samples to gonum/stat.
//
// Exposed API:
//   - MaskedMean(X, mask)      -> mean over observed entries
//   - MaskedColMeans(X, mask)  -> per-column means (len=c)
//   - MaskedRowMeans(X, mask)  -> per-row means (len=r)
//   - PopVariance(X, mask)     -> population variance (ddof=0) over observed entries
//   - VecPopVariance(xs)       -> population variance of the observed subset of xs
//
// Policy:
//   - A reduction over zero observed samples yields NaN (undefined), never an error.
//   - Shape errors (mask vs matrix) are errors.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Operation name constants for unified error wrapping.
const (
	opMaskedMean     = "MaskedMean"
	opMaskedColMeans = "MaskedColMeans"
	opMaskedRowMeans = "MaskedRowMeans"
	opPopVariance    = "PopVariance"
)

// checkMask validates X and that mk has X's shape.
func checkMask(X *Dense, mk Mask) error {
	if err := ValidateNotNil(X); err != nil {
		return err
	}
	if mk.r != X.r || mk.c != X.c {
		return ErrDimensionMismatch
	}

	return nil
}

// observed gathers the observed entries of X in row-major order.
func observed(X *Dense, mk Mask) []float64 {
	out := make([]float64, 0, len(X.data))
	for idx, v := range X.data {
		if mk.valid[idx] {
			out = append(out, v)
		}
	}

	return out
}

// meanOf returns the arithmetic mean of xs, or NaN when xs is empty.
func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	return stat.Mean(xs, nil)
}

// MaskedMean returns the mean of all observed entries of X.
//
// Implementation:
//   - Stage 1: validate X and the mask shape.
//   - Stage 2: gather observed entries (explicit filter step), reduce with stat.Mean.
//
// Returns NaN when nothing is observed.
// Complexity: O(r*c).
func MaskedMean(X *Dense, mk Mask) (float64, error) {
	if err := checkMask(X, mk); err != nil {
		return 0, matrixErrorf(opMaskedMean, err)
	}

	return meanOf(observed(X, mk)), nil
}

// MaskedColMeans returns the mean of observed entries in each column (len = Cols()).
// A column with no observed entries yields NaN.
//
// Complexity: O(r*c).
func MaskedColMeans(X *Dense, mk Mask) ([]float64, error) {
	if err := checkMask(X, mk); err != nil {
		return nil, matrixErrorf(opMaskedColMeans, err)
	}
	sums := make([]float64, X.c)
	counts := make([]int, X.c)
	var i, j, base int
	for i = 0; i < X.r; i++ { // deterministic row order
		base = i * X.c
		for j = 0; j < X.c; j++ {
			if !mk.valid[base+j] {
				continue
			}
			sums[j] += X.data[base+j]
			counts[j]++
		}
	}
	for j = 0; j < X.c; j++ {
		if counts[j] == 0 {
			sums[j] = math.NaN()
			continue
		}
		sums[j] /= float64(counts[j])
	}

	return sums, nil
}

// MaskedRowMeans returns the mean of observed entries in each row (len = Rows()).
// A row with no observed entries yields NaN.
//
// Complexity: O(r*c).
func MaskedRowMeans(X *Dense, mk Mask) ([]float64, error) {
	if err := checkMask(X, mk); err != nil {
		return nil, matrixErrorf(opMaskedRowMeans, err)
	}
	means := make([]float64, X.r)
	row := make([]float64, 0, X.c)
	var i, j, base int
	for i = 0; i < X.r; i++ {
		row = row[:0]
		base = i * X.c
		for j = 0; j < X.c; j++ {
			if mk.valid[base+j] {
				row = append(row, X.data[base+j])
			}
		}
		means[i] = meanOf(row)
	}

	return means, nil
}

// PopVariance returns the population variance (divide by N) of the observed
// entries of X, or NaN when nothing is observed.
//
// Complexity: O(r*c).
func PopVariance(X *Dense, mk Mask) (float64, error) {
	if err := checkMask(X, mk); err != nil {
		return 0, matrixErrorf(opPopVariance, err)
	}

	return popVarianceOf(observed(X, mk)), nil
}

// VecPopVariance returns the population variance of the observed (non-NaN)
// values of xs, or NaN when none is observed.
func VecPopVariance(xs []float64) float64 {
	return popVarianceOf(Observations(xs))
}

func popVarianceOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	_, v := stat.PopMeanVariance(xs, nil)

	return v
}
