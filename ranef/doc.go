// Package ranef fits the two-way random-effects model used for both
// connectivity types:
//
//	y[s,j] = μ + α_j + β_s + η_j·ϖ_s + ε[s,j]
//
// on an S×E dataset (S subjects, E edges). The additive part (μ, α, β) is
// estimated by missing-aware means; the interaction is the leading rank-1
// term of the additive residual, obtained by SVD and made identifiable
// (up to sign) by centering η and ϖ and pinning Σ η² = E.
//
// What:
//
//   - Fit(data, opts...)   – full model (μ, α, β, η, ϖ, ε and derived fits).
//   - Interaction(R, on)   – rank-1 SVD interaction on a residual matrix.
//   - Constrain(η, ϖ)      – identifiability constraints on loadings.
//   - Model.Flipped()      – sign-flipped copy of the interaction.
//
// Estimation is closed form: three means, one thin SVD. There is no
// iteration and no likelihood. The sign of (η, ϖ) is whatever the SVD
// returns; package compare fixes it across a pair of models.
//
// Missing entries (NaN) are skipped by the means through matrix.Mask. For
// the SVD only, missing residuals are replaced by 0 (their expected value
// under the additive fit); ε keeps them missing.
package ranef
