// Package cur performs CUR decomposition on a supplied matrix: a low-rank
// approximation A ≈ A_c·S·A_r built from actual columns and rows of A, so the
// factors stay interpretable in the original feature space.
//
// The cur package provides:
//
//   - New — wraps a dense matrix with a selection strategy (SVD leverage by
//     default, PCovR or a custom selection.Strategy via options), detects
//     symmetric input within a tolerance, and optionally precomputes indices.
//   - Compute — resolves the selected columns/rows and the middle matrix
//     S = A_c⁺·A·A_r⁺.
//   - Loss — relative Frobenius reconstruction error, non-increasing as the
//     selection grows; sweep it to pick a target rank.
//   - Projector — an embedding of the selected latent subspace for
//     downstream models.
//   - Approximate — one-shot reconstruction from caller-chosen index sets.
//
// Selection state is cached and monotone: a request covered by previously
// computed indices reuses them, a larger request extends the cached prefix
// without recomputing it. Symmetric input reuses the column selection for the
// rows; feature-select mode skips row compression entirely and keeps the full
// matrix as the row factor.
//
// A CUR value is not safe for concurrent mutation; run independent instances
// in parallel instead, each owns private copies of its inputs.
//
// References:
//  1. G. Imbalzano, A. Anelli, D. Giofre, S. Klees, J. Behler, and
//     M. Ceriotti, J. Chem. Phys. 148, 241730 (2018).
package cur
