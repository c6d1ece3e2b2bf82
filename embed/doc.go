// Package embed projects a frame to two dimensions for inspection by an
// external plotting collaborator.
//
// The embed package provides:
//
//   - PCA — variance-maximizing linear projection: center columns, take the
//     covariance matrix's top-2 eigenvectors (Jacobi, matrix/ops), project.
//     ExplainedVarianceRatios exposes the normalized eigenvalue spectrum for
//     scree diagnostics.
//   - TSNE — a t-SNE-style probabilistic neighbor embedding: per-point
//     Gaussian bandwidths found by binary search against a target
//     perplexity, Student-t similarities in the plane, and seeded
//     momentum gradient descent on the KL divergence with an
//     early-exaggeration phase.
//
// Embeddings preserve neighbor structure (TSNE) or directions of maximal
// variance (PCA) — not distances. A TSNE result is only meaningful for the
// exact input it was computed on; adding rows requires recomputation from
// scratch, and exhausting the iteration budget is a completion, not an error.
package embed
