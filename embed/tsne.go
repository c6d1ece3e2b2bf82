package embed

import (
	"math"

	"github.com/katalvlaran/mixcluster/frame"
)

// TSNE computes a 2D probabilistic neighbor embedding of the rows of f,
// seeded by seed.
//
// Algorithm outline (t-SNE):
//  1. High-dimensional similarities: per-point Gaussian kernels whose
//     bandwidths are found by binary search so each point's conditional
//     distribution has the target perplexity (effective neighbor count);
//     conditionals are symmetrized into a joint P.
//  2. Low-dimensional similarities: Student-t kernel with one degree of
//     freedom between embedded points.
//  3. Minimize KL(P‖Q) by gradient descent with momentum
//     (momentumEarly → momentumLate), an early-exaggeration phase for the
//     first tenth of the budget, and per-iteration recentering.
//
// The embedding is initialized from a seeded Gaussian (initScale); the full
// iteration budget always runs and the final layout is returned — there is
// no convergence test and no failure mode at the cap. Coordinates are only
// meaningful for this exact input set: new rows require recomputation.
//
// Perplexity is clamped to (rows-1)/3 when the input is small, keeping the
// bandwidth search solvable.
//
// Stage 1 (Validate): frame non-nil.
// Stage 2 (Prepare): joint similarities P, seeded initial layout.
// Stage 3 (Execute): momentum gradient descent on KL divergence.
// Complexity: O(iterations·n²) time, O(n²) memory.
func TSNE(f *frame.Frame, seed int64, opts ...Option) (Embedding2D, error) {
	// Stage 1: Validate
	if err := frame.Validate(f); err != nil {
		return nil, ErrNilFrame
	}
	o := gatherOptions(opts...)
	n := f.Rows()
	ids := f.RowIDs()

	// A single row has nothing to embed against: place it at the origin.
	if n == 1 {
		return Embedding2D{ids[0]: {}}, nil
	}

	// Stage 2: joint similarities and seeded initial layout.
	points := make([][]float64, n)
	for i := 0; i < n; i++ {
		points[i], _ = f.Row(i) // index in range by construction
	}
	P := jointSimilarities(points, clampPerplexity(o.perplexity, n))

	rng := rngFromSeed(seed)
	y := make([][2]float64, n)
	for i := range y {
		y[i][0] = rng.NormFloat64() * initScale
		y[i][1] = rng.NormFloat64() * initScale
	}

	// Stage 3: gradient descent with momentum and early exaggeration.
	var (
		update   = make([][2]float64, n) // momentum accumulator
		num      = make([][]float64, n)  // Student-t numerators (1+d²)⁻¹
		grad     [2]float64
		exagEnd  = int(float64(o.iterations) * exaggerationShare)
		momentum float64
		pij      float64
	)
	for i := range num {
		num[i] = make([]float64, n)
	}

	for iter := 0; iter < o.iterations; iter++ {
		// Student-t numerators and their total mass Z.
		var z float64
		for i := 0; i < n; i++ {
			num[i][i] = 0
			for j := i + 1; j < n; j++ {
				dx := y[i][0] - y[j][0]
				dy := y[i][1] - y[j][1]
				q := 1.0 / (1.0 + dx*dx + dy*dy)
				num[i][j] = q
				num[j][i] = q
				z += 2 * q
			}
		}
		if z < minProb {
			z = minProb
		}

		exaggerate := 1.0
		if iter < exagEnd {
			exaggerate = o.exaggeration
		}
		momentum = momentumLate
		if iter < exagEnd {
			momentum = momentumEarly
		}

		// Gradient: dC/dy_i = 4·Σ_j (p_ij − q_ij)·num_ij·(y_i − y_j).
		for i := 0; i < n; i++ {
			grad[0], grad[1] = 0, 0
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				pij = P[i][j] * exaggerate
				coeff := 4 * (pij - num[i][j]/z) * num[i][j]
				grad[0] += coeff * (y[i][0] - y[j][0])
				grad[1] += coeff * (y[i][1] - y[j][1])
			}
			update[i][0] = momentum*update[i][0] - o.learningRate*grad[0]
			update[i][1] = momentum*update[i][1] - o.learningRate*grad[1]
		}
		var cx, cy float64
		for i := 0; i < n; i++ {
			y[i][0] += update[i][0]
			y[i][1] += update[i][1]
			cx += y[i][0]
			cy += y[i][1]
		}
		// Recenter so the layout does not drift.
		cx /= float64(n)
		cy /= float64(n)
		for i := 0; i < n; i++ {
			y[i][0] -= cx
			y[i][1] -= cy
		}
	}

	out := make(Embedding2D, n)
	for i, id := range ids {
		out[id] = Point{X: y[i][0], Y: y[i][1]}
	}

	return out, nil
}

// clampPerplexity bounds the target perplexity for n points: at most
// (n-1)/3 (the classic solvability rule of thumb) and strictly positive.
func clampPerplexity(p float64, n int) float64 {
	limit := float64(n-1) / 3.0
	if p > limit {
		p = limit
	}
	if p < 0.01 {
		p = 0.01
	}

	return p
}

// jointSimilarities builds the symmetrized joint distribution P over point
// pairs: per-point Gaussian conditionals at the target perplexity, then
// P = (P_cond + P_condᵀ)/(2n), floored at minProb.
// Complexity: O(n²·(d + bandwidthSearchSteps)) time, O(n²) memory.
func jointSimilarities(points [][]float64, perplexity float64) [][]float64 {
	n := len(points)

	// Pairwise squared distances.
	d2 := make([][]float64, n)
	for i := range d2 {
		d2[i] = make([]float64, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := sqDist(points[i], points[j])
			d2[i][j] = d
			d2[j][i] = d
		}
	}

	// Per-point conditionals at the target entropy.
	cond := make([][]float64, n)
	logPerp := math.Log(perplexity)
	for i = 0; i < n; i++ {
		cond[i] = conditionalRow(d2[i], i, logPerp)
	}

	// Symmetrize into the joint distribution.
	P := make([][]float64, n)
	for i = range P {
		P[i] = make([]float64, n)
	}
	inv := 1.0 / (2.0 * float64(n))
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			p := (cond[i][j] + cond[j][i]) * inv
			if p < minProb {
				p = minProb
			}
			P[i][j] = p
		}
	}

	return P
}

// conditionalRow finds the Gaussian conditional distribution of point i over
// all other points whose entropy matches logPerp, by binary search on the
// precision beta = 1/(2σ²).
// Complexity: O(bandwidthSearchSteps·n).
func conditionalRow(d2 []float64, i int, logPerp float64) []float64 {
	n := len(d2)
	row := make([]float64, n)

	var (
		beta                = 1.0
		betaMin             = math.Inf(-1)
		betaMax             = math.Inf(1)
		sumP, entropy, diff float64
	)
	for step := 0; step < bandwidthSearchSteps; step++ {
		// Evaluate the conditional at the current precision.
		sumP = 0
		var weighted float64
		for j := 0; j < n; j++ {
			if j == i {
				row[j] = 0

				continue
			}
			row[j] = math.Exp(-beta * d2[j])
			sumP += row[j]
			weighted += d2[j] * row[j]
		}
		if sumP < minProb {
			sumP = minProb
		}
		// Shannon entropy of the row: H = log ΣP + β·Σ(d²·p)/ΣP.
		entropy = math.Log(sumP) + beta*weighted/sumP

		diff = entropy - logPerp
		if math.Abs(diff) < 1e-5 {
			break // matched the target perplexity
		}
		if diff > 0 {
			// Distribution too flat: raise precision.
			betaMin = beta
			if math.IsInf(betaMax, 1) {
				beta *= 2
			} else {
				beta = (beta + betaMax) / 2
			}
		} else {
			// Distribution too peaked: lower precision.
			betaMax = beta
			if math.IsInf(betaMin, -1) {
				beta /= 2
			} else {
				beta = (beta + betaMin) / 2
			}
		}
	}

	// Normalize the final conditional.
	for j := 0; j < n; j++ {
		row[j] /= sumP
	}

	return row
}

// sqDist returns the squared Euclidean distance between equal-length vectors.
// Complexity: O(d).
func sqDist(a, b []float64) float64 {
	var s, d float64
	for i := range a {
		d = a[i] - b[i]
		s += d * d
	}

	return s
}
