// Package fcsc decomposes paired functional (FC) and structural (SC) brain
// connectivity into a two-way random-effects model and compares the two.
//
// 🚀 What is fcsc?
//
//	For every connectivity type, each subject's N×N matrix is reduced to its
//	E = N(N−1)/2 edges and the S×E dataset is modelled as
//
//		y[s,j] = μ + α_j + β_s + η_j·ϖ_s + ε[s,j]
//
//	with a global mean μ, edge effects α, subject effects β and a rank-1
//	edge×subject interaction η·ϖ taken from the SVD of the additive residual.
//	The variance of each term is reported as a share of the total, and the
//	FC and SC effects are correlated term by term.
//
// ✨ Properties
//
//   - Closed form – three means and one thin SVD; no iteration.
//   - Missing-aware – NaN entries are masked out of every statistic.
//   - Sign-safe – the FC interaction is aligned to SC as a pure operation.
//   - Deterministic – synthetic cohorts are seeded; reports are reproducible.
//
// Packages, leaf first:
//
//	matrix/    — row-major Dense, validity Mask, masked statistics, SVD bridge
//	edges/     — upper-triangle edge flattening and its inverse
//	transform/ — log1p (SC) and clipped Fisher z (FC)
//	ranef/     — the estimator and identifiability constraints
//	compare/   — safe correlation, sign alignment, effect correlations
//	variance/  — variance components and percentages
//	source/    — datasets: YAML/JSON files, synthetic cohorts, alignment by ID
//	report/    — text, JSON and slog reporters
//	pipeline/  — end-to-end run with concurrent FC/SC fits
//	config/    — YAML run configuration
//	cmd/fcsc   — command line (run, synth, version)
//
// Quick start:
//
//	go run ./cmd/fcsc run --subjects 100 --nodes 20 --seed 7
//	go run ./cmd/fcsc synth --out cohort.yaml && go run ./cmd/fcsc run --input cohort.yaml
package fcsc
