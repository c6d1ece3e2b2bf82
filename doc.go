// Package mixcluster turns relational cocktail records into numeric feature
// matrices and groups similar cocktails with from-scratch clustering and
// dimensionality-reduction algorithms.
//
// 🍸 What is mixcluster?
//
//	A deterministic, pure-Go numeric pipeline:
//		• feature/  — relational records → labeled feature matrices
//		              (ingredient volumes, one-hot style attributes,
//		              primary-alcohol-type labels)
//		• quantile/ — per-column quantile normalization (uniform or Gaussian
//		              reference distribution)
//		• cluster/  — K-means (k-means++ init) and spectral clustering
//		              (m-NN affinity graph + normalized Laplacian)
//		• embed/    — PCA and a t-SNE-style neighbor embedding, both to 2D
//
// Supporting layers:
//
//	frame/      — dense float64 matrix with stable row/column identities
//	matrix/     — row-major dense core + column statistics
//	matrix/ops/ — Jacobi eigendecomposition for symmetric matrices
//
// ✨ Design rules
//
//   - Pure transformations – every operation depends only on its explicit
//     inputs (matrix, k, seed, quantileCount); no global state.
//   - Explicit seeds – all stochastic steps (centroid init, embedding init)
//     take a seed parameter; same seed ⇒ same result on one platform.
//   - Strict sentinels – invalid parameters fail fast with errors.Is-able
//     sentinels; iteration caps are completions, not failures.
//   - No I/O – reading tables and rendering plots belong to external
//     collaborators; mixcluster only produces matrices, labelings and
//     2D coordinates for them.
//
// Data flows strictly forward:
//
//	records → frame → normalized frame → (labels, 2D embedding)
//
// See each package's doc.go and example_test.go for usage.
package mixcluster
