package ranef_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fcsc/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// planted builds y[s,j] = mu + alpha[j] + beta[s].
func planted(t *testing.T, mu float64, alpha, beta []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.AdditiveCombine(mu, alpha, beta)
	require.NoError(t, err)
	return d
}

// noisy returns an s×e dataset with an additive part, a planted rank-1
// interaction and Gaussian noise, all from a fixed seed.
func noisy(t testing.TB, s, e int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	alpha := make([]float64, e)
	eta := make([]float64, e)
	for j := range alpha {
		alpha[j] = rng.NormFloat64() * 0.3
		eta[j] = rng.NormFloat64()
	}
	beta := make([]float64, s)
	varpi := make([]float64, s)
	for i := range beta {
		beta[i] = rng.NormFloat64() * 0.2
		varpi[i] = rng.NormFloat64() * 0.5
	}
	d, err := matrix.NewDense(s, e)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < s; i++ {
		for j := 0; j < e; j++ {
			v := 1.0 + alpha[j] + beta[i] + varpi[i]*eta[j] + 0.05*rng.NormFloat64()
			if err = d.Set(i, j, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	return d
}

func sumSquares(xs []float64) float64 {
	var ss float64
	for _, v := range xs {
		ss += v * v
	}
	return ss
}

func mean(xs []float64) float64 {
	var s float64
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

func allNaN(xs []float64) bool {
	for _, v := range xs {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
