// Package ops provides advanced matrix operations for the mixcluster/matrix
// package. Eigen computes all eigenvalues and eigenvectors of a real
// symmetric matrix using the cyclic Jacobi rotation method.
package ops

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mixcluster/matrix"
)

// ErrNotSymmetric is returned when the input matrix is not symmetric.
var ErrNotSymmetric = errors.New("ops: matrix is not symmetric")

// ErrEigenFailed is returned if the algorithm does not converge within the
// sweep budget.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// Default convergence parameters for Eigen. A cyclic Jacobi sweep reduces
// the off-diagonal norm quadratically near convergence; covariance and
// Laplacian matrices of a few hundred rows settle well inside these bounds.
const (
	// DefaultEigenTol is the off-diagonal Frobenius-norm threshold at which
	// the diagonal is accepted as the eigenvalue set.
	DefaultEigenTol = 1e-10

	// DefaultEigenMaxSweeps caps the number of full cyclic sweeps.
	DefaultEigenMaxSweeps = 100
)

// Eigen performs cyclic Jacobi eigenvalue decomposition on a symmetric
// matrix m. It returns the eigenvalues (unsorted, diagonal order) and the
// matrix Q whose COLUMNS are the corresponding eigenvectors.
//
// tol is the convergence threshold on the off-diagonal Frobenius norm;
// maxSweeps caps the number of full cyclic sweeps. Pass tol<=0 or
// maxSweeps<=0 to use the documented defaults.
//
// Stage 1 (Validate): square, symmetric within tol.
// Stage 2 (Prepare): working copy A, Q=I.
// Stage 3 (Execute): cyclic sweeps of (p,q) rotations until off(A) < tol.
// Stage 4 (Finalize): eigenvalues from diag(A).
//
// Returns matrix.ErrNonSquare, ErrNotSymmetric, or ErrEigenFailed.
// Complexity: O(n³) time per sweep, worst-case O(maxSweeps·n³); Memory: O(n²).
func Eigen(m matrix.Matrix, tol float64, maxSweeps int) ([]float64, *matrix.Dense, error) {
	// Stage 1: Validate input
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	var (
		n    = m.Rows() // number of rows
		cols = m.Cols() // number of columns
	)
	if n != cols { // must be square
		return nil, nil, fmt.Errorf("Eigen: non-square %dx%d: %w", n, cols, matrix.ErrNonSquare)
	}
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenMaxSweeps
	}
	// check symmetry m[i][j] == m[j][i] within a loose multiple of tol
	var (
		i, j     int
		aij, aji float64
	)
	symTol := math.Max(tol, 1e-8)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > symTol {
				return nil, nil, ErrNotSymmetric // fail-fast on asymmetry
			}
		}
	}

	// Stage 2: Prepare A (work) and Q (eigenvector accumulator)
	A := m.Clone()
	Q, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	if n == 1 {
		v, _ := A.At(0, 0)

		return []float64{v}, Q, nil
	}

	// Stage 3: Execute cyclic Jacobi sweeps
	var (
		sweep              int
		p, q               int
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, qip, qiq float64
		offNorm            float64
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		// off-diagonal Frobenius norm for the convergence test
		offNorm = 0.0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				apq, _ = A.At(i, j)
				offNorm += 2 * apq * apq
			}
		}
		if math.Sqrt(offNorm) < tol {
			break // converged
		}

		// one cyclic sweep: rotate every (p,q) pair in fixed order
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq, _ = A.At(p, q)
				if math.Abs(apq) < tol/float64(n*n) {
					continue // already negligible
				}
				app, _ = A.At(p, p)
				aqq, _ = A.At(q, q)

				// rotation angle: tan(2φ) = 2·apq / (aqq − app)
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
				c = 1.0 / math.Sqrt(t*t+1) // cosine
				s = t * c                  // sine

				// apply the rotation to rows/columns p and q of A
				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, _ = A.At(i, p)
					aiq, _ = A.At(i, q)
					_ = A.Set(i, p, c*aip-s*aiq)
					_ = A.Set(p, i, c*aip-s*aiq)
					_ = A.Set(i, q, s*aip+c*aiq)
					_ = A.Set(q, i, s*aip+c*aiq)
				}
				// update the 2×2 pivot block
				_ = A.Set(p, p, app-t*apq)
				_ = A.Set(q, q, aqq+t*apq)
				_ = A.Set(p, q, 0.0)
				_ = A.Set(q, p, 0.0)

				// accumulate the rotation into Q
				for i = 0; i < n; i++ {
					qip, _ = Q.At(i, p)
					qiq, _ = Q.At(i, q)
					_ = Q.Set(i, p, c*qip-s*qiq)
					_ = Q.Set(i, q, s*qip+c*qiq)
				}
			}
		}
	}
	if sweep == maxSweeps {
		return nil, nil, ErrEigenFailed // did not converge
	}

	// Stage 4: Finalize eigenvalues from the diagonal
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i], _ = A.At(i, i)
	}

	return eigs, Q, nil
}

// EigenSorted runs Eigen and returns the eigenpairs sorted by eigenvalue.
// ascending=true yields smallest-first (spectral clustering); false yields
// largest-first (PCA). Equal eigenvalues keep their original column order
// (stable sort, index-ascending tie-break).
//
// The returned vectors matrix has the sorted eigenvectors as COLUMNS.
// Complexity: Eigen + O(n log n) sort + O(n²) column permutation.
func EigenSorted(m matrix.Matrix, tol float64, maxSweeps int, ascending bool) ([]float64, *matrix.Dense, error) {
	// Stage 1: Decompose.
	vals, vecs, err := Eigen(m, tol, maxSweeps)
	if err != nil {
		return nil, nil, err
	}
	n := len(vals)

	// Stage 2: Build a stable permutation of column indices.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		if ascending {
			return vals[perm[a]] < vals[perm[b]]
		}

		return vals[perm[a]] > vals[perm[b]]
	})

	// Stage 3: Apply the permutation to values and vector columns.
	sortedVals := make([]float64, n)
	sortedVecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("EigenSorted: %w", err)
	}
	var i, j int
	var v float64
	for j = 0; j < n; j++ {
		sortedVals[j] = vals[perm[j]]
		for i = 0; i < n; i++ {
			v, _ = vecs.At(i, perm[j])
			_ = sortedVecs.Set(i, j, v)
		}
	}

	return sortedVals, sortedVecs, nil
}
