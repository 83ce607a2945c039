// Package pipeline runs one complete FC–SC analysis:
//
//	Source → Flatten → Transform → Fit(FC) ∥ Fit(SC) → Correlate, Decompose → Result
//
// The two fits share nothing and run concurrently unless Config.Parallel
// is false; alignment and variance decomposition wait for both.
package pipeline
