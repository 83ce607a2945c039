// Package matrix provides the dense numeric containers and kernels used by
// the FC–SC random-effects pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with safe At/Set accessors and
//     flat fast-paths for hot loops (subject×edge datasets, residuals).
//   - Mask: an explicit validity mask. A NaN entry in a Dense means
//     "missing"; every missing-aware statistic filters through a Mask
//     instead of relying on NaN propagation.
//   - Kernels: Add/Sub/Scale, Outer, AdditiveCombine (μ + α_j + β_s),
//     Clip/Map element-wise transforms and masked means/variances.
//   - LeadingSingular: the rank-1 SVD term, computed with gonum/mat.
//
// All kernels allocate a fresh result and never mutate their inputs.
// Loops run in a fixed i→j order, so results are reproducible bit-for-bit.
//
// See the examples in this package for usage patterns.
package matrix
