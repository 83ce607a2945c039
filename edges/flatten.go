package edges

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fcsc/matrix"
)

// Count returns the number of edges of an n-node matrix, n(n−1)/2.
// Returns 0 for n < 2.
func Count(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Nodes inverts Count: the n with n(n−1)/2 == e.
// Returns ErrBadEdgeCount when e is not triangular or e < 1.
func Nodes(e int) (int, error) {
	if e < 1 {
		return 0, fmt.Errorf("Nodes(%d): %w", e, ErrBadEdgeCount)
	}
	// n = (1 + sqrt(1+8e)) / 2
	n := int(math.Round((1 + math.Sqrt(1+8*float64(e))) / 2))
	if Count(n) != e {
		return 0, fmt.Errorf("Nodes(%d): %w", e, ErrBadEdgeCount)
	}
	return n, nil
}

// Pairs lists the node pair of every edge index for an n-node matrix,
// in the canonical row-major upper-triangle order.
func Pairs(n int) []Pair {
	out := make([]Pair, 0, Count(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{Row: i, Col: j})
		}
	}
	return out
}

// Vector extracts the edge vector of one connectivity matrix.
//
// The diagonal is treated as zero and never read; only entries with
// column > row are collected, row by row. The input is not modified.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(N²).
func Vector(m *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Vector: %w", err)
	}
	n := m.Rows()
	out := make([]float64, 0, Count(n))
	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("Vector: %w", err)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// Flatten stacks the edge vectors of S subject matrices into an S×E dataset.
//
// Stages:
//  1. Validate: at least one subject; every slice square with the same N.
//     Optional symmetry check (WithSymmetryCheck).
//  2. Execute: row s of the result is Vector(mats[s]).
//
// Returns the dataset and E. A single-node matrix has no edge and is
// rejected through matrix.ErrInvalidDimensions.
//
// Errors: ErrEmpty, matrix.ErrNonSquare, ErrNodeMismatch, matrix.ErrAsymmetry,
// matrix.ErrInvalidDimensions.
func Flatten(mats []*matrix.Dense, opts ...Option) (*matrix.Dense, int, error) {
	o := gatherOptions(opts...)
	if len(mats) == 0 {
		return nil, 0, ErrEmpty
	}
	if err := matrix.ValidateSquare(mats[0]); err != nil {
		return nil, 0, fmt.Errorf("Flatten: subject 0: %w", err)
	}
	n := mats[0].Rows()
	nEdges := Count(n)

	data, err := matrix.NewDense(len(mats), nEdges)
	if err != nil {
		return nil, 0, fmt.Errorf("Flatten: %d nodes: %w", n, err)
	}

	var vec []float64
	for s, m := range mats {
		if err = matrix.ValidateSquare(m); err != nil {
			return nil, 0, fmt.Errorf("Flatten: subject %d: %w", s, err)
		}
		if m.Rows() != n {
			return nil, 0, fmt.Errorf("Flatten: subject %d has %d nodes, want %d: %w", s, m.Rows(), n, ErrNodeMismatch)
		}
		if o.CheckSymmetry {
			if err = matrix.ValidateSymmetric(m, o.Eps); err != nil {
				return nil, 0, fmt.Errorf("Flatten: subject %d: %w", s, err)
			}
		}
		if vec, err = Vector(m); err != nil {
			return nil, 0, fmt.Errorf("Flatten: subject %d: %w", s, err)
		}
		for e, v := range vec {
			_ = data.Set(s, e, v) // in range by construction
		}
	}

	return data, nEdges, nil
}

// Unflatten rebuilds the symmetric n×n matrix whose edge vector is vec.
// The diagonal is zero. len(vec) must equal Count(n).
//
// Errors: matrix.ErrInvalidDimensions (n < 2), matrix.ErrDimensionMismatch.
func Unflatten(vec []float64, n int) (*matrix.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("Unflatten: %d nodes: %w", n, matrix.ErrInvalidDimensions)
	}
	if len(vec) != Count(n) {
		return nil, fmt.Errorf("Unflatten: %d values for %d nodes: %w", len(vec), n, matrix.ErrDimensionMismatch)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for e, p := range Pairs(n) {
		_ = m.Set(p.Row, p.Col, vec[e])
		_ = m.Set(p.Col, p.Row, vec[e])
	}
	return m, nil
}
