// Package curmat is a small, deterministic toolkit for CUR matrix
// decomposition — low-rank approximation built from actual columns and rows
// of the input, so every factor stays interpretable in the original feature
// space.
//
// 🚀 What is curmat?
//
//	A pure-Go library (dense linear algebra via gonum) that brings together:
//		• Greedy column/row selection with Gram–Schmidt deflation
//		• SVD leverage-score selection (unsupervised importance)
//		• PCovR hybrid selection (blends variance capture with a supervised target)
//		• The CUR reconstruction A ≈ A_c·S·A_r with pseudoinverse middle matrix
//		• Latent-space projectors for downstream regression/embedding models
//
// ✨ Why choose curmat?
//
//   - Deterministic – fixed tie-breaking, resumable selection, no hidden randomness
//   - Explicit errors – sentinel errors checked with errors.Is, no panics on user input
//   - Pure Go – gonum under the hood, no cgo
//   - Extensible – plug in your own selection.Strategy for custom importance scores
//
// Everything is organized under three subpackages:
//
//	linalg/    — sorted eigendecomposition, truncated SVD, Moore–Penrose pseudoinverse
//	selection/ — deflation, PCovR covariance, Strategy implementations
//	cur/       — the CUR orchestrator: Compute, Loss, Projector, Approximate
//
// Quick sketch:
//
//	    A (n×m) ──select columns──▶ A_c ┐
//	    A (n×m) ──select rows────▶ A_r ┼──▶ S = A_c⁺ · A · A_r⁺ ──▶ A ≈ A_c·S·A_r
//
// Dive into the package examples for end-to-end usage.
//
//	go get github.com/vtraverse/curmat/cur
package curmat
