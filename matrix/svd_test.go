// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fcsc/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadingSingular_RecoversRankOne(t *testing.T) {
	u := []float64{1, -2, 3}
	v := []float64{0.5, 0.25, -1, 2}
	X, err := matrix.Outer(u, v)
	require.NoError(t, err)

	sv, err := matrix.LeadingSingular(X)
	require.NoError(t, err)

	normU := math.Sqrt(1 + 4 + 9)
	normV := math.Sqrt(0.25 + 0.0625 + 1 + 4)
	assert.InDelta(t, normU*normV, sv.Value, 1e-9)

	// σ₁·u₁·v₁ᵀ reproduces X regardless of the sign convention.
	for i := range u {
		for j := range v {
			assert.InDelta(t, MustAt(t, X, i, j), sv.Value*sv.U[i]*sv.V[j], 1e-9)
		}
	}
}

func TestLeadingSingular_UnitVectors(t *testing.T) {
	X := NewFilledDense(t, 3, 2, []float64{3, 1, 1, 3, 0, 2})
	sv, err := matrix.LeadingSingular(X)
	require.NoError(t, err)

	var nu, nv float64
	for _, x := range sv.U {
		nu += x * x
	}
	for _, x := range sv.V {
		nv += x * x
	}
	assert.InDelta(t, 1.0, nu, 1e-12)
	assert.InDelta(t, 1.0, nv, 1e-12)
	assert.Len(t, sv.U, 3)
	assert.Len(t, sv.V, 2)
}

func TestLeadingSingular_MissingRejectedInfUndefined(t *testing.T) {
	X := NewFilledDense(t, 2, 2, []float64{1, math.NaN(), 0, 1})
	_, err := matrix.LeadingSingular(X)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	Y := NewFilledDense(t, 2, 2, []float64{1, math.Inf(-1), 0, 1})
	sv, err := matrix.LeadingSingular(Y)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(sv.Value))
	assert.True(t, math.IsNaN(sv.U[0]))
	assert.True(t, math.IsNaN(sv.V[1]))
}
