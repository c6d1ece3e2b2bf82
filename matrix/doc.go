// Package matrix provides the dense numeric core shared by every stage of
// the mixcluster pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) element access, used as
//     the backing store for labeled frames, affinity graphs, Laplacians and
//     covariance matrices.
//   - Basic linear algebra (Mul, Transpose, MatVec) with strict shape
//     validation and sentinel errors.
//   - Column statistics (CenterColumns, Covariance) used by PCA and the
//     quantile normalizer's diagnostics.
//
// Heavier symmetric-matrix routines (Jacobi eigendecomposition) live in the
// ops subpackage.
//
// All operations are deterministic: fixed i→j traversal order, no hidden
// randomness, no global state.
package matrix
