// SPDX-License-Identifier: MIT
// Package matrix: column statistics used by the PCA reducer.
//
// Exposed API:
//   - ColumnMeans(X)   -> means                 // per-column arithmetic mean
//   - CenterColumns(X) -> (Xc, means)           // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)          // sample covariance: (Xcᵀ Xc)/(r-1)
//
// Determinism:
//   - Fixed i→j traversal for all loops; stable results.
//   - Single-row input yields a zero covariance matrix (no r-1 division).

package matrix

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnMeans computes the per-column arithmetic mean of X.
// Complexity: O(r·c) time, O(c) memory.
func ColumnMeans(X Matrix) ([]float64, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	// Stage 2: Execute — accumulate sums into means, then divide by r.
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ { // deterministic row order
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var (
			v   float64
			err error
		)
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3: Finalize
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the means (so callers can un-center later).
// Complexity: O(r·c) time and memory.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	// Stage 1: Compute means (validates X).
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 2: Prepare output.
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 3: Execute broadcast subtraction.
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - means[j]
			}
		}
	} else {
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
				out.data[i*c+j] = v - means[j]
			}
		}
	}

	return out, means, nil
}

// Covariance computes the sample covariance matrix of the columns of X:
// Cov = (Xcᵀ Xc)/(r-1) where Xc is the column-centered copy of X.
// For r <= 1 the covariance is all zeros (a single observation has no
// spread; avoids division by zero).
// Complexity: O(r·c²) time, O(c²) memory.
func Covariance(X Matrix) (*Dense, []float64, error) {
	// Stage 1: Center columns (validates X).
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Stage 2: Prepare output.
	r, c := Xc.Rows(), Xc.Cols()
	cov, err := NewDense(c, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if r <= 1 {
		return cov, means, nil // zero spread by definition
	}

	// Stage 3: Execute — symmetric accumulation over the upper triangle,
	// mirrored into the lower triangle afterwards.
	var (
		i, j, k int
		s       float64
		inv     = 1.0 / float64(r-1)
	)
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			s = 0.0
			for i = 0; i < r; i++ {
				s += Xc.data[i*c+j] * Xc.data[i*c+k]
			}
			s *= inv
			cov.data[j*c+k] = s
			cov.data[k*c+j] = s // mirror for exact symmetry
		}
	}

	return cov, means, nil
}
