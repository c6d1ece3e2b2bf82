package ops_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mixcluster/matrix"
	"github.com/katalvlaran/mixcluster/matrix/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// symDense builds an n×n Dense from row-major values.
func symDense(t *testing.T, n int, values []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, values[i*n+j]))
		}
	}

	return m
}

// TestEigen_Known2x2 verifies the analytically known spectrum of
// [[2,1],[1,2]]: eigenvalues 1 and 3.
func TestEigen_Known2x2(t *testing.T) {
	m := symDense(t, 2, []float64{2, 1, 1, 2})

	vals, vecs, err := ops.Eigen(m, 0, 0)
	require.NoError(t, err, "a 2×2 symmetric matrix converges in one sweep")
	require.Len(t, vals, 2)
	require.NotNil(t, vecs)

	sorted := []float64{vals[0], vals[1]}
	if sorted[0] > sorted[1] {
		sorted[0], sorted[1] = sorted[1], sorted[0]
	}
	assert.InDelta(t, 1.0, sorted[0], 1e-9)
	assert.InDelta(t, 3.0, sorted[1], 1e-9)
}

// TestEigen_Diagonal verifies that a diagonal matrix is its own spectrum and
// the eigenvector matrix stays the identity.
func TestEigen_Diagonal(t *testing.T) {
	m := symDense(t, 3, []float64{5, 0, 0, 0, -2, 0, 0, 0, 7})

	vals, vecs, err := ops.Eigen(m, 0, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, -2, 7}, vals, 1e-12)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			v, _ := vecs.At(i, j)
			assert.InDelta(t, want, v, 1e-12, "no rotations needed")
		}
	}
}

// TestEigen_Reconstruction verifies A ≈ Q·diag(λ)·Qᵀ for a 3×3 matrix and
// the orthonormality of the eigenvector columns.
func TestEigen_Reconstruction(t *testing.T) {
	m := symDense(t, 3, []float64{
		4, 1, -2,
		1, 2, 0,
		-2, 0, 3,
	})

	vals, vecs, err := ops.Eigen(m, 0, 0)
	require.NoError(t, err)

	// Column orthonormality: QᵀQ = I.
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			var dot float64
			for i := 0; i < 3; i++ {
				va, _ := vecs.At(i, a)
				vb, _ := vecs.At(i, b)
				dot += va * vb
			}
			want := 0.0
			if a == b {
				want = 1.0
			}
			assert.InDelta(t, want, dot, 1e-8, "eigenvector columns must be orthonormal")
		}
	}

	// Reconstruction: A[i][j] = Σ_k λ_k · Q[i][k] · Q[j][k].
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				qik, _ := vecs.At(i, k)
				qjk, _ := vecs.At(j, k)
				sum += vals[k] * qik * qjk
			}
			orig, _ := m.At(i, j)
			assert.InDelta(t, orig, sum, 1e-8)
		}
	}

	// Trace is preserved: Σλ = tr(A) = 9.
	assert.InDelta(t, 9.0, vals[0]+vals[1]+vals[2], 1e-8)
}

// TestEigen_Errors covers the non-square and asymmetric rejections.
func TestEigen_Errors(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = ops.Eigen(rect, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	asym := symDense(t, 2, []float64{1, 2, 3, 4})
	_, _, err = ops.Eigen(asym, 0, 0)
	assert.ErrorIs(t, err, ops.ErrNotSymmetric)

	_, _, err = ops.Eigen(nil, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEigen_SingleElement verifies the 1×1 shortcut.
func TestEigen_SingleElement(t *testing.T) {
	m := symDense(t, 1, []float64{42})

	vals, vecs, err := ops.Eigen(m, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{42.0}, vals)
	v, _ := vecs.At(0, 0)
	assert.Equal(t, 1.0, v)
}

// TestEigenSorted_Order verifies both sort directions on a diagonal matrix
// whose spectrum is unambiguous.
func TestEigenSorted_Order(t *testing.T) {
	m := symDense(t, 3, []float64{5, 0, 0, 0, -2, 0, 0, 0, 7})

	asc, _, err := ops.EigenSorted(m, 0, 0, true)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, 5, 7}, asc, 1e-12, "ascending for Laplacian use")

	desc, _, err := ops.EigenSorted(m, 0, 0, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{7, 5, -2}, desc, 1e-12, "descending for variance use")
}

// TestEigenSorted_ColumnsFollowValues verifies that eigenvector columns are
// permuted together with their eigenvalues.
func TestEigenSorted_ColumnsFollowValues(t *testing.T) {
	m := symDense(t, 3, []float64{5, 0, 0, 0, -2, 0, 0, 0, 7})

	vals, vecs, err := ops.EigenSorted(m, 0, 0, false)
	require.NoError(t, err)

	// Largest eigenvalue 7 came from basis column 2: its sorted column must
	// be ±e₂.
	require.InDelta(t, 7.0, vals[0], 1e-12)
	v, _ := vecs.At(2, 0)
	assert.InDelta(t, 1.0, math.Abs(v), 1e-12)
	v, _ = vecs.At(0, 0)
	assert.InDelta(t, 0.0, v, 1e-12)
	v, _ = vecs.At(1, 0)
	assert.InDelta(t, 0.0, v, 1e-12)
}

// TestEigenSorted_StableOnTies verifies the index-ascending tie-break: a
// repeated eigenvalue keeps its original column order.
func TestEigenSorted_StableOnTies(t *testing.T) {
	m := symDense(t, 3, []float64{3, 0, 0, 0, 3, 0, 0, 0, 1})

	vals, vecs, err := ops.EigenSorted(m, 0, 0, false)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 3, 1}, vals, 1e-12)

	// The tied pair keeps basis order: column 0 is ±e₀, column 1 is ±e₁.
	v, _ := vecs.At(0, 0)
	assert.InDelta(t, 1.0, math.Abs(v), 1e-12)
	v, _ = vecs.At(1, 1)
	assert.InDelta(t, 1.0, math.Abs(v), 1e-12)
}
