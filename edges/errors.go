package edges

import "errors"

var (
	// ErrEmpty is returned when no subject matrix is supplied.
	ErrEmpty = errors.New("edges: no connectivity matrices")

	// ErrNodeMismatch is returned when subject matrices differ in node count.
	ErrNodeMismatch = errors.New("edges: node count differs between subjects")

	// ErrBadEdgeCount is returned when an edge count is not N(N−1)/2 for any N ≥ 2.
	ErrBadEdgeCount = errors.New("edges: edge count is not triangular")
)
