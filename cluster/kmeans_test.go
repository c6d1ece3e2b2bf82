package cluster_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mixcluster/cluster"
	"github.com/katalvlaran/mixcluster/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointFrame builds an n×d frame from raw points, rows named p0, p1, …
func pointFrame(t *testing.T, points [][]float64) *frame.Frame {
	t.Helper()
	rows := make([]string, len(points))
	for i := range rows {
		rows[i] = fmt.Sprintf("p%d", i)
	}
	cols := make([]string, len(points[0]))
	for j := range cols {
		cols[j] = fmt.Sprintf("d%d", j)
	}
	f, err := frame.New(rows, cols)
	require.NoError(t, err)
	for i, p := range points {
		for j, v := range p {
			require.NoError(t, f.Set(i, j, v))
		}
	}

	return f
}

// blobs generates per-center Gaussian point clouds with a fixed generator,
// returning the points and the true blob index of each.
func blobs(centers [][]float64, perBlob int, spread float64, rngSeed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(rngSeed))
	var points [][]float64
	var truth []int
	for b, c := range centers {
		for i := 0; i < perBlob; i++ {
			p := make([]float64, len(c))
			for j := range c {
				p[j] = c[j] + rng.NormFloat64()*spread
			}
			points = append(points, p)
			truth = append(truth, b)
		}
	}

	return points, truth
}

// assertBlobsRecovered checks that every blob is label-pure and distinct
// blobs carry distinct labels.
func assertBlobsRecovered(t *testing.T, labels cluster.Labeling, truth []int, nBlobs int) {
	t.Helper()
	blobLabel := make(map[int]int, nBlobs)
	for i, b := range truth {
		got, ok := labels[fmt.Sprintf("p%d", i)]
		require.True(t, ok, "every row must be labeled")
		if want, seen := blobLabel[b]; seen {
			assert.Equal(t, want, got, "points of one blob must share a label")
		} else {
			blobLabel[b] = got
		}
	}
	distinct := make(map[int]struct{}, nBlobs)
	for _, lb := range blobLabel {
		distinct[lb] = struct{}{}
	}
	assert.Len(t, distinct, nBlobs, "distinct blobs must get distinct labels")
}

// TestKMeans_Validation covers the nil-frame and cluster-count guards.
func TestKMeans_Validation(t *testing.T) {
	_, err := cluster.KMeans(nil, 2, 1)
	assert.ErrorIs(t, err, cluster.ErrNilFrame)

	f := pointFrame(t, [][]float64{{0}, {1}, {2}})
	_, err = cluster.KMeans(f, 0, 1)
	assert.ErrorIs(t, err, cluster.ErrBadClusterCount)
	_, err = cluster.KMeans(f, 4, 1)
	assert.ErrorIs(t, err, cluster.ErrBadClusterCount, "more clusters than rows")
}

// TestKMeans_SingleCluster verifies k==1: every row gets label 0.
func TestKMeans_SingleCluster(t *testing.T) {
	f := pointFrame(t, [][]float64{{0, 0}, {5, 5}, {-3, 7}})

	labels, err := cluster.KMeans(f, 1, 42)
	require.NoError(t, err)
	require.Len(t, labels, 3, "one entry per row")
	for id, lb := range labels {
		assert.Equal(t, 0, lb, "row %s", id)
	}
}

// TestKMeans_Determinism verifies the fixed-seed contract: identical inputs
// and seed produce the identical labeling.
func TestKMeans_Determinism(t *testing.T) {
	points, _ := blobs([][]float64{{0, 0}, {10, 10}}, 12, 1.0, 7)
	f := pointFrame(t, points)

	first, err := cluster.KMeans(f, 2, 99)
	require.NoError(t, err)
	second, err := cluster.KMeans(f, 2, 99)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestKMeans_SeparatedBlobs verifies exact recovery of three well-separated
// Gaussian blobs.
func TestKMeans_SeparatedBlobs(t *testing.T) {
	centers := [][]float64{{0, 0}, {100, 100}, {-100, 100}}
	points, truth := blobs(centers, 15, 1.0, 3)
	f := pointFrame(t, points)

	labels, err := cluster.KMeans(f, 3, 1)
	require.NoError(t, err)
	assertBlobsRecovered(t, labels, truth, 3)
}

// TestKMeans_LabelsInRange verifies labels stay in [0, k) and every row is
// present even with a tight iteration budget (cap is a completion).
func TestKMeans_LabelsInRange(t *testing.T) {
	points, _ := blobs([][]float64{{0, 0}, {8, 0}, {4, 7}}, 10, 2.0, 11)
	f := pointFrame(t, points)

	labels, err := cluster.KMeans(f, 3, 5, cluster.WithMaxIterations(1))
	require.NoError(t, err, "hitting the iteration cap is not an error")
	require.Len(t, labels, len(points))
	for id, lb := range labels {
		assert.GreaterOrEqual(t, lb, 0, "row %s", id)
		assert.Less(t, lb, 3, "row %s", id)
	}
}

// TestKMeans_DuplicatePoints verifies the degenerate all-identical cloud:
// seeding and reseeding must terminate and label everything.
func TestKMeans_DuplicatePoints(t *testing.T) {
	points := [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	f := pointFrame(t, points)

	labels, err := cluster.KMeans(f, 2, 13)
	require.NoError(t, err)
	require.Len(t, labels, 4)
	for _, lb := range labels {
		assert.GreaterOrEqual(t, lb, 0)
		assert.Less(t, lb, 2)
	}
}

// TestKMeans_OptionPanics verifies the programmer-error contract of the
// option constructors.
func TestKMeans_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { cluster.WithMaxIterations(0) })
	assert.Panics(t, func() { cluster.WithNeighbors(-1) })
}
