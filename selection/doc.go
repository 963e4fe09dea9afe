// Package selection implements greedy column selection for CUR decomposition.
//
// The selection package provides:
//
//   - Strategy — the closed extension point: anything that can turn
//     (matrix, count, resume prefix) into an ordered index list.
//   - SVDLeverage — unsupervised selection by statistical leverage: each
//     column is scored by its weight in the top-k right-singular vectors of
//     the (deflated) working matrix.
//   - PCovR — hybrid selection scoring columns against the Principal
//     Covariates Regression covariance, which blends the PCA covariance
//     of X with a regression covariance against a property matrix Y via a
//     mixing weight alpha (alpha=1 is pure PCA, alpha=0 fully supervised).
//
// Both strategies share the same Gram–Schmidt deflation step: after a column
// is picked, its direction is projected out of every remaining column, so the
// next round scores only residual information. PCovR additionally deflates Y,
// replacing it with the residual after regressing on the columns selected so
// far, which keeps the supervised part of the score target-aware.
//
// Determinism & resumability:
//
//   - Ties on the importance score break toward the LOWEST index; given a
//     fixed input and resume prefix the selected list is fully deterministic.
//   - Passing indices returned from an earlier call as the resume prefix
//     replays deflation over the prefix and extends it; selecting n then n+m
//     columns across two calls yields the same list as one call for n+m.
//
// Rank exhaustion is never fatal: when the residual spectrum is numerically
// empty both strategies stop early and return the indices gathered so far
// with a nil error. Callers observe the shortfall as len(result) < n.
package selection
