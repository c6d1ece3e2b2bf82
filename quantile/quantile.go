package quantile

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mixcluster/frame"
)

var (
	// ErrNilFrame indicates a nil input frame.
	ErrNilFrame = errors.New("quantile: nil frame")

	// ErrBadQuantileCount is returned when quantileCount is not in [1, rows].
	// More quantile points than rows cannot be estimated from the data.
	ErrBadQuantileCount = errors.New("quantile: quantileCount must be in [1, rows]")
)

// Transform maps every column of f onto the reference distribution using
// quantileCount empirical quantile points estimated from that column.
//
// quantileCount must satisfy 1 <= quantileCount <= f.Rows(); pass f.Rows()
// for full resolution (exact rank mapping). The result is a new frame with
// the same row/column identities; f is not modified.
//
// Degenerate behavior (no division by zero anywhere):
//   - A constant column maps every row to the reference midpoint
//     (0.5 uniform, 0 Gaussian).
//   - quantileCount == 1 degenerates every column the same way.
//
// Stage 1 (Validate): frame non-nil, quantileCount in range.
// Stage 2 (Prepare): reference probabilities, output frame.
// Stage 3 (Execute): per column — sort, take quantiles, map each value.
// Complexity: O(c·r log r) time, O(r·c) memory.
func Transform(f *frame.Frame, quantileCount int, opts ...Option) (*frame.Frame, error) {
	// Stage 1: Validate
	if err := frame.Validate(f); err != nil {
		return nil, ErrNilFrame
	}
	rows, cols := f.Rows(), f.Cols()
	if quantileCount < 1 || quantileCount > rows {
		return nil, fmt.Errorf("Transform: quantileCount=%d rows=%d: %w", quantileCount, rows, ErrBadQuantileCount)
	}
	o := gatherOptions(opts...)

	// Stage 2: Prepare — evenly spaced reference probabilities in [0,1].
	refs := referenceProbs(quantileCount)
	out := f.EmptyLike()

	// Stage 3: Execute per column.
	var (
		j, i int
		col  []float64
		err  error
	)
	for j = 0; j < cols; j++ {
		if col, err = f.Column(j); err != nil {
			return nil, fmt.Errorf("Transform: %w", err)
		}

		// Empirical quantiles of this column at the reference probabilities.
		sorted := make([]float64, len(col))
		copy(sorted, col)
		sort.Float64s(sorted)
		qs := make([]float64, quantileCount)
		for i = 0; i < quantileCount; i++ {
			qs[i] = interpolatedQuantile(sorted, refs[i])
		}

		// Map every value to its CDF position, then into the reference.
		var p, v float64
		for i = 0; i < rows; i++ {
			p = cdfPosition(qs, refs, col[i])
			if o.reference == Gaussian {
				v = probit(clamp(p, o.probClamp, 1-o.probClamp))
			} else {
				v = p
			}
			_ = out.Set(i, j, v) // indices in range by construction
		}
	}

	return out, nil
}

// referenceProbs returns quantileCount evenly spaced probabilities spanning
// [0,1]. A single point degenerates to the midpoint 0.5.
func referenceProbs(quantileCount int) []float64 {
	refs := make([]float64, quantileCount)
	if quantileCount == 1 {
		refs[0] = 0.5

		return refs
	}
	step := 1.0 / float64(quantileCount-1)
	for i := range refs {
		refs[i] = float64(i) * step
	}
	refs[quantileCount-1] = 1.0 // exact upper bound despite FP step error

	return refs
}

// interpolatedQuantile evaluates the empirical quantile of sorted values at
// probability p by linear interpolation between order statistics (the same
// convention as numpy's default).
// Complexity: O(1).
func interpolatedQuantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	fracStep := h - float64(lo)

	return sorted[lo] + fracStep*(sorted[lo+1]-sorted[lo])
}

// cdfPosition maps value x to its cumulative position through the fitted
// quantile curve (qs ascending, refs the matching probabilities).
//
// Plateau policy: when x lands on a run of equal quantile values, the
// midpoint of that run's probability span is returned. This keeps constant
// columns at 0.5 and ties deterministic.
// Complexity: O(log m) search + O(m) worst-case plateau scan.
func cdfPosition(qs, refs []float64, x float64) float64 {
	m := len(qs)
	if m == 1 {
		return refs[0] // single quantile point: everything maps to it
	}
	if x <= qs[0] {
		if x == qs[0] {
			return plateauMid(qs, refs, 0)
		}

		return refs[0]
	}
	if x >= qs[m-1] {
		if x == qs[m-1] {
			// scan the plateau backwards from the upper edge
			first := m - 1
			for first > 0 && qs[first-1] == x {
				first--
			}

			return (refs[first] + refs[m-1]) / 2
		}

		return refs[m-1]
	}

	// First index with qs[i] >= x; 0 < i < m by the guards above.
	i := sort.SearchFloat64s(qs, x)
	if qs[i] == x {
		return plateauMid(qs, refs, i)
	}

	// Strictly inside a non-flat segment (qs[i-1] < x < qs[i]).
	fracStep := (x - qs[i-1]) / (qs[i] - qs[i-1])

	return refs[i-1] + fracStep*(refs[i]-refs[i-1])
}

// plateauMid returns the probability midpoint of the run of quantile values
// equal to qs[first] that starts at index first.
func plateauMid(qs, refs []float64, first int) float64 {
	last := first
	for last+1 < len(qs) && qs[last+1] == qs[first] {
		last++
	}

	return (refs[first] + refs[last]) / 2
}

// probit is the standard normal inverse CDF, Φ⁻¹(p) = √2·erfinv(2p−1).
func probit(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
