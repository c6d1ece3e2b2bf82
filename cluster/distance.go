package cluster

import "github.com/katalvlaran/mixcluster/frame"

// sqDist returns the squared Euclidean distance between equal-length vectors.
// Squared form is used everywhere internally: monotone in the true distance,
// and avoids the sqrt in hot loops.
// Complexity: O(d).
func sqDist(a, b []float64) float64 {
	var s, d float64
	for i := range a {
		d = a[i] - b[i]
		s += d * d
	}

	return s
}

// rowsOf copies the frame's rows into a point slice for the numeric cores.
// Complexity: O(r·d) time and memory.
func rowsOf(f *frame.Frame) [][]float64 {
	n := f.Rows()
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		points[i], _ = f.Row(i) // index in range by construction
	}

	return points
}

// labelingFor zips row identities with the core's index-based assignment.
func labelingFor(rowIDs []string, assign []int) Labeling {
	out := make(Labeling, len(rowIDs))
	for i, id := range rowIDs {
		out[id] = assign[i]
	}

	return out
}
