package rank

import (
	"github.com/katalvlaran/lvlrank/core"
)

// PowerIteration computes the PageRank distribution of g by fixed-point
// iteration and writes it into the caller-allocated result slice.
//
// Algorithm (per iteration, all reads from the previous iteration's vector —
// a synchronous/Jacobi update, never a partial in-place one):
//  1. Every entry starts at the teleportation baseline (1−alpha)/V.
//  2. The combined mass of dangling nodes is redistributed uniformly:
//     each entry gains alpha·danglingSum/V.
//  3. Every edge (s → t), in input order, contributes alpha·pr[s]/outDegree(s)
//     to t. Parallel edges contribute once each.
//  4. The new vector replaces the old one wholesale.
//
// The loop always runs exactly Options.Iterations times; precision is
// controlled by the caller through the step count, not by a convergence
// check. After the loop the vector is normalized (see Normalize) and copied
// into result.
//
// Determinism: no randomness is involved — identical inputs yield
// bit-identical output.
//
// Progress: OnProgress receives the completion percentage every 10 iterations.
//
// Complexity: O(Iterations·(V+E)) time, O(V) extra space.
func PowerIteration(g *core.Graph, result []float64, opts ...Option) error {
	o := buildOptions(opts)

	if g == nil {
		return ErrNilGraph
	}
	if len(result) != g.NodeCount() {
		return ErrResultLength
	}
	if o.Alpha <= 0 || o.Alpha >= 1 {
		return ErrBadAlpha
	}
	if o.Iterations < 0 {
		return ErrNegativeIterations
	}

	n := g.NodeCount()
	nf := float64(n)
	dangling := g.Dangling()

	// Start from the uniform distribution.
	pr := make([]float64, n)
	newPr := make([]float64, n)
	for i := range pr {
		pr[i] = 1.0 / nf
	}

	teleport := (1.0 - o.Alpha) / nf

	var (
		iter, i, s, t int
		danglingSum   float64
		contribution  float64
	)
	for iter = 0; iter < o.Iterations; iter++ {
		// 1) Teleportation baseline.
		for i = range newPr {
			newPr[i] = teleport
		}

		// 2) Dangling nodes act as if they linked to every node equally;
		//    without this their mass would leak out of the distribution.
		danglingSum = 0
		for _, i = range dangling {
			danglingSum += pr[i]
		}
		if danglingSum != 0 {
			contribution = o.Alpha * danglingSum / nf
			for i = range newPr {
				newPr[i] += contribution
			}
		}

		// 3) Edge contributions in input order: each source spreads its mass
		//    equally across its outgoing edges.
		for i = 0; i < g.EdgeCount(); i++ {
			s, t = g.Edge(i)
			newPr[t] += o.Alpha * pr[s] / float64(g.OutDegree(s))
		}

		// 4) Full vector swap.
		pr, newPr = newPr, pr

		if (iter+1)%progressIterationStride == 0 {
			o.OnProgress((iter + 1) * 100 / o.Iterations)
		}
	}

	// Rescale residual floating-point drift and hand the vector to the caller.
	Normalize(pr)
	copy(result, pr)

	return nil
}
