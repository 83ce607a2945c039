// Package transform applies the variance-stabilising transforms used before
// model fitting:
//
//   - SC (streamline counts, FA): x → log(1+x). No domain guard: values
//     below −1 yield NaN, −1 yields −Inf, and both propagate downstream.
//   - FC (correlations): clip to [−1+ε, 1−ε] with ε = 1e-8, then the
//     Fisher-z transform x → atanh(x). Clipping keeps perfect correlations
//     (including a unit diagonal that slipped through) finite.
//
// Both transforms return fresh copies and leave missing entries missing.
package transform
