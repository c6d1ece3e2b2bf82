package cluster

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mixcluster/frame"
	"github.com/katalvlaran/mixcluster/matrix"
	"github.com/katalvlaran/mixcluster/matrix/ops"
)

// spectralStream identifies the derived RNG stream used to seed the inner
// K-means run, keeping it decorrelated from any future stochastic step.
const spectralStream uint64 = 0x5bec

// Spectral clusters the rows of f through the eigenstructure of a
// nearest-neighbor affinity graph, which separates non-convex groupings
// that defeat plain K-means.
//
// Pipeline:
//  1. m-nearest-neighbor graph over rows by Euclidean distance
//     (m = DefaultNeighbors, override with WithNeighbors; clamped to
//     rows-1). Edges are symmetrized by union and weighted 1.
//  2. Symmetric normalized Laplacian L = I − D^{-1/2}·A·D^{-1/2}; an
//     isolated vertex keeps a plain identity row (degree guard, no division
//     by zero).
//  3. Jacobi eigendecomposition (matrix/ops); the k eigenvectors of the k
//     smallest eigenvalues form an n×k embedding (eigenvalue ascending,
//     original index on ties).
//  4. Rows of the embedding are L2-normalized (zero rows stay zero), then
//     labeled by KMeans with a seed derived from the caller's seed.
//
// A graph with fewer than k connected components cannot cleanly satisfy the
// requested cluster count; the eigendecomposition still succeeds and the
// inner K-means splits components as best it can — documented, not an error.
//
// Determinism: fixed seed ⇒ fixed labeling on one platform; near-equal
// eigenvalues may order differently across floating-point environments
// (accepted nondeterminism).
//
// Complexity: O(n²·d) graph + O(n³) eigen + inner K-means; memory O(n²).
func Spectral(f *frame.Frame, k int, seed int64, opts ...Option) (Labeling, error) {
	// Stage 1: Validate
	if err := frame.Validate(f); err != nil {
		return nil, ErrNilFrame
	}
	n := f.Rows()
	if k < 1 || k > n {
		return nil, fmt.Errorf("Spectral: k=%d rows=%d: %w", k, n, ErrBadClusterCount)
	}
	o := gatherOptions(opts...)

	// Single-row frame: the only possible labeling.
	if n == 1 {
		return labelingFor(f.RowIDs(), []int{0}), nil
	}

	// Stage 2: Affinity graph and normalized Laplacian.
	points := rowsOf(f)
	adj := neighborAffinity(points, o.neighbors)
	lap, err := normalizedLaplacian(adj)
	if err != nil {
		return nil, fmt.Errorf("Spectral: %w", err)
	}

	// Stage 3: k smallest eigenvectors → row-normalized spectral embedding.
	vals, vecs, err := ops.EigenSorted(lap, 0, 0, true)
	if err != nil {
		return nil, fmt.Errorf("Spectral: %w", err)
	}
	_ = vals // eigenvalues only order the embedding; magnitudes are not needed

	embedding := make([][]float64, n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		row := make([]float64, k)
		for j = 0; j < k; j++ {
			v, _ = vecs.At(i, j) // indices in range by construction
			row[j] = v
		}
		normalizeL2(row)
		embedding[i] = row
	}

	// Stage 4: centroid clustering on the embedding with a derived stream.
	assign := lloyd(embedding, k, deriveRNG(seed, spectralStream), o.maxIterations)

	return labelingFor(f.RowIDs(), assign), nil
}

// neighborAffinity builds the symmetrized m-nearest-neighbor adjacency over
// points: A[i][j] = 1 when j is among i's m nearest rows (self excluded) or
// vice versa. Distance ties resolve to the lower row index via a stable
// (distance, index) sort.
// Complexity: O(n²·d + n²·log n) time, O(n²) memory.
func neighborAffinity(points [][]float64, m int) [][]float64 {
	n := len(points)
	if m > n-1 {
		m = n - 1 // cannot have more neighbors than other rows
	}

	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}

	dists := make([]float64, n)
	order := make([]int, n)
	var i, j, r int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			dists[j] = sqDist(points[i], points[j])
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool {
			return dists[order[a]] < dists[order[b]]
		})

		// The first entry is i itself (distance 0, lowest index on ties is
		// guaranteed by stability); connect the next m.
		taken := 0
		for r = 0; r < n && taken < m; r++ {
			if order[r] == i {
				continue
			}
			adj[i][order[r]] = 1.0
			adj[order[r]][i] = 1.0 // union symmetrization
			taken++
		}
	}

	return adj
}

// normalizedLaplacian assembles L = I − D^{-1/2}·A·D^{-1/2} from the dense
// adjacency. Isolated vertices (zero degree) contribute a bare identity row,
// guarding the division.
// Complexity: O(n²) time and memory.
func normalizedLaplacian(adj [][]float64) (*matrix.Dense, error) {
	n := len(adj)
	invSqrt := make([]float64, n)
	var i, j int
	var deg float64
	for i = 0; i < n; i++ {
		deg = 0.0
		for j = 0; j < n; j++ {
			deg += adj[i][j]
		}
		if deg > 0 {
			invSqrt[i] = 1.0 / math.Sqrt(deg)
		} // else isolated: leave 0, the row reduces to identity
	}

	lap, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	var off float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || adj[i][j] == 0 {
				continue
			}
			off = -invSqrt[i] * adj[i][j] * invSqrt[j]
			_ = lap.Set(i, j, off)
		}
	}

	return lap, nil
}

// normalizeL2 scales v to unit Euclidean norm in place; zero vectors are
// left untouched (degenerate embedding rows stay at the origin).
// Complexity: O(d).
func normalizeL2(v []float64) {
	var s float64
	for _, x := range v {
		s += x * x
	}
	if s == 0 {
		return
	}
	inv := 1.0 / math.Sqrt(s)
	for i := range v {
		v[i] *= inv
	}
}
