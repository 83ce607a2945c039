// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication — each facade delegates to the canonical implementation.

package matrix

// CloneDense returns a deep copy of d keeping the concrete type.
func CloneDense(d *Dense) (*Dense, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf("CloneDense", err)
	}

	return d.copyDense(), nil
}

// Negate returns −m. It is Scale(m, −1) with an intention-revealing name.
func Negate(m Matrix) (*Dense, error) { return Scale(m, -1) }

// Residual returns data − fit. Alias of Sub used by the estimators.
func Residual(data, fit Matrix) (*Dense, error) { return Sub(data, fit) }
