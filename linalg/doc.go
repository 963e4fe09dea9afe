// Package linalg wraps the handful of dense numerical kernels the curmat
// library relies on, all delegated to gonum:
//
//   - SortedEig — symmetric eigendecomposition sorted by descending
//     eigenvalue, with optional top-n truncation and strict eigenvalue
//     thresholding.
//   - TruncatedSVD — thin SVD truncated to the k leading singular values and
//     right-singular vectors.
//   - PInv — Moore–Penrose pseudoinverse with the standard
//     eps·max(m,n)·σmax cutoff for small singular values.
//   - Symmetrize — averages a near-symmetric product into a mat.SymDense so
//     spectral routines can rely on exact symmetry.
//
// The package implements no factorization itself; it fixes the ordering,
// truncation and tolerance conventions that the selection and cur packages
// depend on for reproducibility.
package linalg
