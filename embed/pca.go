package embed

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mixcluster/frame"
	"github.com/katalvlaran/mixcluster/matrix"
	"github.com/katalvlaran/mixcluster/matrix/ops"
)

// PCA projects the rows of f onto the two directions of maximal variance.
//
// Pipeline: center columns, sample covariance, Jacobi eigendecomposition
// (matrix/ops), project centered rows onto the eigenvectors of the two
// largest eigenvalues (eigenvalue descending, original index on ties).
//
// Degenerate inputs are well-defined, never faults:
//   - A zero-variance matrix centers to all-zero rows, so every point lands
//     at the origin.
//   - A single-column frame embeds on the X axis with Y = 0.
//
// Stage 1 (Validate): frame non-nil.
// Stage 2 (Prepare): covariance + sorted eigenpairs.
// Stage 3 (Execute): project onto the top-2 eigenvector columns.
// Complexity: O(r·c² + c³) time, O(c²) memory.
func PCA(f *frame.Frame) (Embedding2D, error) {
	// Stage 1: Validate
	if err := frame.Validate(f); err != nil {
		return nil, ErrNilFrame
	}

	// Stage 2: Center and decompose the covariance.
	centered, _, err := matrix.CenterColumns(f.Dense())
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}
	cov, _, err := matrix.Covariance(f.Dense())
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}
	_, vecs, err := ops.EigenSorted(cov, 0, 0, false)
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}

	// Stage 3: Build the c×2 projection (second column zero when c == 1)
	// and project the centered rows.
	c := f.Cols()
	proj, err := matrix.NewDense(c, 2)
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}
	var i int
	var v float64
	components := 2
	if c < 2 {
		components = c
	}
	for j := 0; j < components; j++ {
		for i = 0; i < c; i++ {
			v, _ = vecs.At(i, j)
			_ = proj.Set(i, j, v)
		}
	}
	coords, err := matrix.Mul(centered, proj)
	if err != nil {
		return nil, fmt.Errorf("PCA: %w", err)
	}

	// Zip coordinates with row identities.
	out := make(Embedding2D, f.Rows())
	for i, id := range f.RowIDs() {
		x, _ := coords.At(i, 0)
		y, _ := coords.At(i, 1)
		out[id] = Point{X: x, Y: y}
	}

	return out, nil
}

// ExplainedVarianceRatios returns the covariance eigenvalues of f normalized
// by their sum and sorted in non-increasing order — the scree-plot feed for
// an external diagnostics collaborator. The slice has one entry per column
// and sums to at most 1.
//
// Negative eigenvalues (numerical noise around zero) are clamped to 0 before
// normalization; an all-zero spectrum (no variance anywhere) yields all-zero
// ratios instead of dividing by zero.
// Complexity: O(r·c² + c³) time, O(c²) memory.
func ExplainedVarianceRatios(f *frame.Frame) ([]float64, error) {
	// Stage 1: Validate
	if err := frame.Validate(f); err != nil {
		return nil, ErrNilFrame
	}

	// Stage 2: Covariance spectrum.
	cov, _, err := matrix.Covariance(f.Dense())
	if err != nil {
		return nil, fmt.Errorf("ExplainedVarianceRatios: %w", err)
	}
	vals, _, err := ops.Eigen(cov, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("ExplainedVarianceRatios: %w", err)
	}

	// Stage 3: Clamp, normalize, sort descending.
	var total float64
	ratios := make([]float64, len(vals))
	for i, v := range vals {
		if v < 0 {
			v = 0 // numerical noise below zero carries no variance
		}
		ratios[i] = v
		total += v
	}
	if total > 0 {
		inv := 1.0 / total
		for i := range ratios {
			ratios[i] *= inv
		}
	} // else: zero-variance input, all ratios stay 0
	sort.Sort(sort.Reverse(sort.Float64Slice(ratios)))

	return ratios, nil
}
