// Package compare relates two fitted models (FC and SC) effect by effect.
//
// Pearson correlations are taken between corresponding parameter vectors:
// α (edges), β (subjects), η (edges) and ϖ (subjects). Correlations are
// "safe": pairs with a missing side are dropped, and fewer than two pairs
// or a near-constant side (population standard deviation < StdEps) yields
// NaN instead of an error.
//
// Because (η, ϖ) is identified only up to sign, the FC interaction is
// first aligned to the SC one: when corr(ϖ_FC, ϖ_SC) < 0 the FC model is
// replaced by its Flipped copy. SC is always the reference. Alignment is
// a pure operation; the caller receives the record to keep.
package compare
