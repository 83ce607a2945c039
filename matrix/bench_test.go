// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fcsc/matrix"
)

// randomDense fills an r×c Dense with a fixed-seed uniform stream.
func randomDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()
	}
	d, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		b.Fatalf("NewDenseFrom: %v", err)
	}

	return d
}

// BenchmarkLeadingSingular_300x1225 mirrors a 300-subject, 50-node dataset.
func BenchmarkLeadingSingular_300x1225(b *testing.B) {
	X := randomDense(b, 300, 1225)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.LeadingSingular(X); err != nil {
			b.Fatalf("LeadingSingular: %v", err)
		}
	}
}

func BenchmarkMaskedColMeans_300x1225(b *testing.B) {
	X := randomDense(b, 300, 1225)
	mk := matrix.MaskOf(X)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MaskedColMeans(X, mk); err != nil {
			b.Fatalf("MaskedColMeans: %v", err)
		}
	}
}
