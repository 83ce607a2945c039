// SPDX-License-Identifier: MIT
// Package matrix provides the universal linear-algebra kernels used by the
// random-effects estimator: element-wise addition, subtraction, scaling,
// outer products and the additive combine μ + α_j + β_s. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opOuter    = "Outer"
	opAdditive = "AdditiveCombine"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - NaN (missing) in either operand yields NaN in the result, so missingness
//     survives residual arithmetic.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha*m as a fresh Dense.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			res.data[idx] = alpha * v
		}

		return res, nil
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// Outer returns the rank-1 matrix u·vᵀ with shape len(u)×len(v).
//
// Implementation:
//   - Stage 1: reject empty vectors (ErrInvalidDimensions via NewDense).
//   - Stage 2: fill row i with u[i]*v[j] in fixed i→j order.
//
// Complexity:
//   - Time O(len(u)*len(v)), Space O(len(u)*len(v)).
func Outer(u, v []float64) (*Dense, error) {
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	var i, j, base int
	for i = 0; i < len(u); i++ {
		base = i * len(v)
		for j = 0; j < len(v); j++ {
			res.data[base+j] = u[i] * v[j]
		}
	}

	return res, nil
}

// AdditiveCombine builds the S×E additive fit A[s,j] = mu + colEffects[j] + rowEffects[s].
// MAIN DESCRIPTION:
//   - The single named "outer-sum" used wherever a global mean, a per-column
//     (edge) effect and a per-row (subject) effect are broadcast together.
//
// Implementation:
//   - Stage 1: allocate len(rowEffects)×len(colEffects).
//   - Stage 2: for each row s cache mu+rowEffects[s], add colEffects[j] over j.
//
// Inputs:
//   - mu: global mean.
//   - colEffects: one value per column (edge), length E.
//   - rowEffects: one value per row (subject), length S.
//
// Errors:
//   - ErrInvalidDimensions when either effect vector is empty.
//
// Complexity:
//   - Time O(S*E), Space O(S*E).
func AdditiveCombine(mu float64, colEffects, rowEffects []float64) (*Dense, error) {
	s, e := len(rowEffects), len(colEffects)
	res, err := NewDense(s, e)
	if err != nil {
		return nil, matrixErrorf(opAdditive, err)
	}
	var i, j, base int
	var rowBase float64
	for i = 0; i < s; i++ {
		base = i * e
		rowBase = mu + rowEffects[i] // hoisted per row
		for j = 0; j < e; j++ {
			res.data[base+j] = rowBase + colEffects[j]
		}
	}

	return res, nil
}
