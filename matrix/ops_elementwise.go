// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide element-wise kernels (clip, map, fill-missing, closeness) shared
//     by the transform stage, the SVD bridge and the tests.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop orders on the row-major buffer.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

// Map returns a copy of X with f applied to every element.
// Missing entries (NaN) are passed to f like any other value; callers that
// must keep them missing should check math.IsNaN inside f or use MapObserved.
//
// Complexity: O(r*c).
func Map(X *Dense, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Map", err)
	}
	if f == nil {
		return nil, matrixErrorf("Map", ErrNilMatrix)
	}
	out := &Dense{r: X.r, c: X.c, data: make([]float64, len(X.data))}
	for idx, v := range X.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// MapObserved is Map restricted to observed entries: NaN stays NaN.
func MapObserved(X *Dense, f func(v float64) float64) (*Dense, error) {
	if f == nil {
		return nil, matrixErrorf("MapObserved", ErrNilMatrix)
	}

	return Map(X, func(v float64) float64 {
		if math.IsNaN(v) {
			return v
		}

		return f(v)
	})
}

// Clip copies X clamping each entry into [lo, hi] (both finite).
// NaN entries stay NaN (missing is not a value to clamp).
//
// Note: Bounds must be finite; if lo > hi, they are swapped (normalized).
// Complexity: O(r*c).
func Clip(X *Dense, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("Clip", err)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, matrixErrorf("Clip", ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := &Dense{r: X.r, c: X.c, data: make([]float64, len(X.data))}
	for idx, v := range X.data {
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		} // NaN fails both comparisons and is copied through
		out.data[idx] = v
	}

	return out, nil
}

// FillMissing copies X replacing every NaN by val (finite).
// Used to hand a complete matrix to factorisations that cannot skip entries.
//
// Complexity: O(r*c).
func FillMissing(X *Dense, val float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("FillMissing", err)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf("FillMissing", ErrNaNInf)
	}
	out := X.copyDense()
	for idx, v := range out.data {
		if math.IsNaN(v) {
			out.data[idx] = val
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Two NaN entries at the same position compare equal (both missing).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.IsNaN(av) || math.IsNaN(bv) {
				if math.IsNaN(av) && math.IsNaN(bv) {
					continue
				}
				return false, nil
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
