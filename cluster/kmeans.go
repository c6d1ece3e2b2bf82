package cluster

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mixcluster/frame"
)

// KMeans partitions the rows of f into k clusters by Lloyd iterations over
// Euclidean distance, with k-means++ initialization seeded by seed.
//
// Documented policies:
//   - Initialization: k-means++ (D²-weighted sampling). This is the only
//     initialization offered; no uniform-random variant.
//   - Assignment tie-break: equidistant points go to the lowest centroid
//     index (strict less-than comparison during the scan).
//   - Empty clusters: a centroid that receives zero points is reseeded to
//     the point farthest from its nearest centroid (first such point wins
//     on a tie), so no cluster stays dead.
//   - Stopping: assignments unchanged, or the iteration cap
//     (DefaultMaxIterations, override with WithMaxIterations). Hitting the
//     cap returns the current labeling — by contract that is a completion,
//     not an error.
//
// Determinism: fixed seed ⇒ fixed labeling on one platform. Near-equal
// distances may resolve differently across floating-point environments;
// that divergence is accepted.
//
// Stage 1 (Validate): frame non-nil, 1 <= k <= rows.
// Stage 2 (Prepare): copy rows, seed RNG, k-means++ centroids.
// Stage 3 (Execute): Lloyd iterations until stable or capped.
// Complexity: O(iter·n·k·d) time, O(n·d + k·d) memory.
func KMeans(f *frame.Frame, k int, seed int64, opts ...Option) (Labeling, error) {
	// Stage 1: Validate
	if err := frame.Validate(f); err != nil {
		return nil, ErrNilFrame
	}
	n := f.Rows()
	if k < 1 || k > n {
		return nil, fmt.Errorf("KMeans: k=%d rows=%d: %w", k, n, ErrBadClusterCount)
	}
	o := gatherOptions(opts...)

	// Stage 2 + 3: delegate to the index-based core.
	points := rowsOf(f)
	assign := lloyd(points, k, rngFromSeed(seed), o.maxIterations)

	return labelingFor(f.RowIDs(), assign), nil
}

// lloyd runs k-means++ initialization followed by Lloyd iterations on raw
// points. Preconditions (checked by callers): 1 <= k <= len(points).
// Returns the per-point cluster index.
func lloyd(points [][]float64, k int, rng *rand.Rand, maxIterations int) []int {
	n := len(points)
	dim := len(points[0])

	// k-means++ seeding.
	centroids := seedPlusPlus(points, k, rng)

	assign := make([]int, n)
	counts := make([]int, k)
	var (
		iter, i, c, j int
		best          int
		bestD, d      float64
		changed       bool
	)
	for iter = 0; iter < maxIterations; iter++ {
		// (a) Assign each point to its nearest centroid; ties resolve to the
		// lowest centroid index because only a strictly smaller distance wins.
		changed = false
		for i = 0; i < n; i++ {
			best = 0
			bestD = sqDist(points[i], centroids[0])
			for c = 1; c < k; c++ {
				d = sqDist(points[i], centroids[c])
				if d < bestD {
					bestD = d
					best = c
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break // assignments stable: converged
		}

		// (b) Recompute each centroid as the mean of its assigned points.
		for c = 0; c < k; c++ {
			counts[c] = 0
			for j = 0; j < dim; j++ {
				centroids[c][j] = 0
			}
		}
		for i = 0; i < n; i++ {
			c = assign[i]
			counts[c]++
			for j = 0; j < dim; j++ {
				centroids[c][j] += points[i][j]
			}
		}
		for c = 0; c < k; c++ {
			if counts[c] == 0 {
				continue // handled below
			}
			inv := 1.0 / float64(counts[c])
			for j = 0; j < dim; j++ {
				centroids[c][j] *= inv
			}
		}

		// (c) Reseed empty clusters to the point farthest from its nearest
		// non-empty centroid; deterministic (first argmax wins).
		for c = 0; c < k; c++ {
			if counts[c] > 0 {
				continue
			}
			far := farthestPoint(points, centroids, counts)
			copy(centroids[c], points[far])
			counts[c] = 1 // mark as occupied so a second empty picks anew
		}
	}

	return assign
}

// seedPlusPlus picks k initial centroids with D²-weighted sampling
// (k-means++): the first uniformly at random, each next proportional to the
// squared distance from the nearest already-chosen centroid. A zero total
// weight (all points coincide with chosen centroids) falls back to a
// uniform draw.
// Complexity: O(k·n·d) time, O(k·d + n) memory.
func seedPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	dim := len(points[0])

	centroids := make([][]float64, k)
	for c := range centroids {
		centroids[c] = make([]float64, dim)
	}
	copy(centroids[0], points[rng.Intn(n)])

	// minD2[i] tracks the squared distance to the nearest chosen centroid.
	minD2 := make([]float64, n)
	for i := 0; i < n; i++ {
		minD2[i] = sqDist(points[i], centroids[0])
	}

	var (
		c, i   int
		total  float64
		target float64
	)
	for c = 1; c < k; c++ {
		total = 0.0
		for i = 0; i < n; i++ {
			total += minD2[i]
		}
		if total == 0 {
			// Degenerate cloud: every remaining point duplicates a centroid.
			copy(centroids[c], points[rng.Intn(n)])
		} else {
			// Inverse-CDF sampling over the D² weights.
			target = rng.Float64() * total
			i = 0
			for ; i < n-1; i++ {
				target -= minD2[i]
				if target <= 0 {
					break
				}
			}
			copy(centroids[c], points[i])
		}

		// Fold the new centroid into the nearest-distance tracker.
		for i = 0; i < n; i++ {
			if d := sqDist(points[i], centroids[c]); d < minD2[i] {
				minD2[i] = d
			}
		}
	}

	return centroids
}

// farthestPoint returns the index of the point with the largest squared
// distance to its nearest occupied centroid (counts[c] > 0). The first
// maximum wins, keeping reseeding deterministic.
// Complexity: O(n·k·d).
func farthestPoint(points, centroids [][]float64, counts []int) int {
	var (
		bestIdx  int
		bestDist = -1.0
		nearest  float64
		d        float64
	)
	for i := range points {
		nearest = -1.0
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			d = sqDist(points[i], centroids[c])
			if nearest < 0 || d < nearest {
				nearest = d
			}
		}
		if nearest > bestDist {
			bestDist = nearest
			bestIdx = i
		}
	}

	return bestIdx
}
