// SPDX-License-Identifier: MIT

// Package matrix - rank-1 singular value extraction.
//
// The leading singular triplet is computed with a thin SVD from gonum/mat;
// Dense is copied into a *mat.Dense once, the factorisation never sees the
// caller's buffer.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opLeadingSingular = "LeadingSingular"

// Singular holds the leading singular value σ₁ of a matrix X (r×c) and its
// left (U, length r) and right (V, length c) singular vectors, so that
// σ₁·U·Vᵀ is the best rank-1 approximation of X in Frobenius norm.
type Singular struct {
	Value float64
	U     []float64
	V     []float64
}

// LeadingSingular returns the leading singular triplet of X.
// MAIN DESCRIPTION:
//   - Thin SVD of X via gonum (LAPACK Dgesvd semantics), first column of U
//     and V, largest singular value.
//
// Implementation:
//   - Stage 1: validate X; X must be complete (no NaN) – callers fill missing first.
//   - Stage 2: if any entry is ±Inf, return an all-NaN triplet (degenerate input
//     surfaces as undefined downstream, not as a failure).
//   - Stage 3: factorise with mat.SVDThin and extract σ₁, u₁, v₁.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (X holds NaN), ErrSVDFailed (no convergence).
//
// Complexity:
//   - Time O(min(r,c)·r·c), Space O(r·c).
//
// Notes:
//   - The sign of (U, V) is whatever the factorisation returns; it is not
//     canonicalised here.
func LeadingSingular(X *Dense) (Singular, error) {
	if err := ValidateNotNil(X); err != nil {
		return Singular{}, matrixErrorf(opLeadingSingular, err)
	}
	for _, v := range X.data {
		if math.IsNaN(v) {
			return Singular{}, matrixErrorf(opLeadingSingular, ErrNaNInf)
		}
		if math.IsInf(v, 0) {
			return undefinedSingular(X.r, X.c), nil
		}
	}

	a := mat.NewDense(X.r, X.c, X.Values())
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return Singular{}, matrixErrorf(opLeadingSingular, ErrSVDFailed)
	}

	values := svd.Values(nil) // sorted in decreasing order
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return Singular{
		Value: values[0],
		U:     mat.Col(nil, 0, &u),
		V:     mat.Col(nil, 0, &v),
	}, nil
}

func undefinedSingular(r, c int) Singular {
	u := make([]float64, r)
	v := make([]float64, c)
	for i := range u {
		u[i] = math.NaN()
	}
	for j := range v {
		v[j] = math.NaN()
	}

	return Singular{Value: math.NaN(), U: u, V: v}
}
