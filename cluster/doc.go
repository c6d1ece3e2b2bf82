// Package cluster assigns every row of a frame a discrete cluster label via
// centroid-based (K-means) or graph-spectral clustering.
//
// The cluster package provides:
//
//   - KMeans — k-means++ seeded Lloyd iterations over Euclidean distance,
//     with documented tie-break (lowest centroid index wins) and documented
//     empty-cluster handling (reseed to the point farthest from its nearest
//     centroid).
//   - Spectral — m-nearest-neighbor affinity graph, symmetric normalized
//     Laplacian, Jacobi eigendecomposition (matrix/ops), k smallest
//     eigenvectors row-normalized, then KMeans on that embedding.
//
// Determinism: every stochastic step is driven by the caller's seed through
// a single RNG factory (rng.go); the same seed, input and platform always
// reproduce the same labeling. Near-ties in distances or eigenvalues may
// order differently across floating-point environments — that divergence is
// accepted and documented, not a bug.
//
// Cluster labels are arbitrary names for the partition: label values carry
// no order or similarity meaning, and independent runs with different seeds
// may permute them.
//
// Hitting the iteration cap is a completion, not a failure: the labeling at
// the cap is returned without error.
package cluster
