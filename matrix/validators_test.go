// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fcsc/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
}

func TestValidateSymmetric(t *testing.T) {
	sym := NewFilledDense(t, 3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	asym := NewFilledDense(t, 2, 2, []float64{0, 1, 1.1, 0})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2))

	missing := NewFilledDense(t, 2, 2, []float64{0, math.NaN(), math.NaN(), 0})
	require.NoError(t, matrix.ValidateSymmetric(missing, 0))
	oneSided := NewFilledDense(t, 2, 2, []float64{0, math.NaN(), 1, 0})
	require.ErrorIs(t, matrix.ValidateSymmetric(oneSided, 0), matrix.ErrAsymmetry)

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.Inf(1)), matrix.ErrNaNInf)
}
