// Package edges turns per-subject connectivity matrices into edge vectors.
//
// An edge is an unordered pair of distinct nodes (i, j), i < j. For N nodes
// there are E = N(N−1)/2 edges, enumerated row-major over the strict upper
// triangle:
//
//	    0  1  2  3
//	0   ·  e0 e1 e2
//	1   ·  ·  e3 e4
//	2   ·  ·  ·  e5
//	3   ·  ·  ·  ·
//
// The same enumeration is used for every subject and for both FC and SC,
// so edge index e always refers to the same anatomical pair.
//
// Usage:
//
//	data, nEdges, err := edges.Flatten(mats)               // S×E
//	pairs := edges.Pairs(n)                                // e → (i,j)
//	node, err := edges.Unflatten(model.Alpha, n)           // E → N×N
//
// Complexity: Flatten is O(S·N²) time, O(S·E) memory.
package edges
