// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels (Mul, Transpose, MatVec).
//
// Determinism & Performance:
//   - Fixed i→k→j traversal for Mul; fixed i→j elsewhere.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Strict validation first; only sentinel errors from errors.go.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with the operation tag, preserving errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a usable matrix value.
// Returns ErrNilMatrix for nil interfaces or nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// Mul computes the matrix product a×b.
// Stage 1 (Validate): non-nil operands, a.Cols == b.Rows.
// Stage 2 (Prepare): allocate result r×c.
// Stage 3 (Execute): accumulate with fixed i→k→j order (cache-friendly for
// row-major operands).
// Complexity: O(r·n·c) time, O(r·c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Prepare
	var (
		r = a.Rows() // result rows
		n = a.Cols() // shared dimension
		c = b.Cols() // result columns
	)
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Execute
	da, aDense := a.(*Dense)
	db, bDense := b.(*Dense)
	if aDense && bDense {
		// Dense fast-path over flat buffers.
		var i, k, j int
		var aik float64
		for i = 0; i < r; i++ {
			for k = 0; k < n; k++ {
				aik = da.data[i*n+k]
				if aik == 0 {
					continue // skip zero contributions (sparse-ish inputs)
				}
				for j = 0; j < c; j++ {
					out.data[i*c+j] += aik * db.data[k*c+j]
				}
			}
		}

		return out, nil
	}

	// Interface fallback with full error propagation.
	var (
		i, k, j  int
		av, bv   float64
		innerErr error
	)
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			if av, innerErr = a.At(i, k); innerErr != nil {
				return nil, matrixErrorf(opMul, innerErr)
			}
			for j = 0; j < c; j++ {
				if bv, innerErr = b.At(k, j); innerErr != nil {
					return nil, matrixErrorf(opMul, innerErr)
				}
				out.data[i*c+j] += av * bv
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a new matrix.
// Complexity: O(r·c) time and memory.
func Transpose(m Matrix) (Matrix, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 2: Prepare
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 3: Execute
	if d, ok := m.(*Dense); ok {
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out.data[j*r+i] = d.data[i*c+j]
			}
		}

		return out, nil
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			out.data[j*r+i] = v
		}
	}

	return out, nil
}

// MatVec computes the matrix-vector product m·x.
// Stage 1 (Validate): non-nil m, len(x) == m.Cols().
// Stage 2 (Execute): accumulate per row.
// Complexity: O(r·c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	r, c := m.Rows(), m.Cols()
	if len(x) != c {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	// Stage 2: Execute
	out := make([]float64, r)
	if d, ok := m.(*Dense); ok {
		var i, j int
		var s float64
		for i = 0; i < r; i++ {
			s = 0.0
			base := i * c // cache row base offset
			for j = 0; j < c; j++ {
				s += d.data[base+j] * x[j]
			}
			out[i] = s
		}

		return out, nil
	}
	var (
		i, j int
		v, s float64
		err  error
	)
	for i = 0; i < r; i++ {
		s = 0.0
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			s += v * x[j]
		}
		out[i] = s
	}

	return out, nil
}
