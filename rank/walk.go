package rank

import (
	"math/rand"

	"github.com/katalvlaran/lvlrank/core"
)

// RandomWalk estimates the PageRank distribution of g by Monte Carlo
// simulation and writes it into the caller-allocated result slice.
//
// From every node it starts Options.WalksPerNode independent trajectories:
//
//   - The starting node is visited once.
//   - Each step continues with probability alpha (walk lengths are geometric).
//   - At a dangling node the surfer teleports to one uniformly chosen node,
//     that visit is recorded, and the walk ends — intentionally different
//     from PowerIteration's per-iteration dangling redistribution.
//   - Otherwise the surfer moves to a neighbor picked uniformly from the
//     adjacency list; parallel edges make their target proportionally more
//     likely.
//
// The per-node visit shares of all V·WalksPerNode walks form the estimate,
// normalized as in PowerIteration. If no visit was recorded at all
// (WalksPerNode == 0), the result is exactly the uniform distribution 1/V.
//
// Reproducibility: the generator is instance-local and seeded from
// Options.Seed, so identical inputs and seed reproduce the output exactly,
// regardless of call history or concurrent invocations.
//
// Progress: OnProgress fires after roughly every 10% of start nodes.
//
// Complexity: expected O(V·WalksPerNode/(1−alpha)) visits, O(V) extra space.
func RandomWalk(g *core.Graph, result []float64, opts ...Option) error {
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
	if o.WalksPerNode < 0 {
		return ErrNegativeWalks
	}

	n := g.NodeCount()

	// Instance-local generator: process-global state would break
	// reproducibility across calls and race under concurrent invocations.
	rng := rand.New(rand.NewSource(int64(o.Seed)))

	// Wide counters: V·WalksPerNode walks of geometric length can pile up
	// far beyond int32 territory.
	visitCount := make([]uint64, n)

	progressStride := n/10 + 1

	var (
		start, walk, current int
		neighbors            []int
	)
	for start = 0; start < n; start++ {
		for walk = 0; walk < o.WalksPerNode; walk++ {
			current = start
			visitCount[current]++

			// Continue with probability alpha; stop otherwise.
			for rng.Float64() < o.Alpha {
				neighbors = g.Neighbors(current)

				// Dangling: one uniform teleport visit, then the walk ends.
				if len(neighbors) == 0 {
					current = rng.Intn(n)
					visitCount[current]++

					break
				}

				current = neighbors[rng.Intn(len(neighbors))]
				visitCount[current]++
			}
		}

		if (start+1)%progressStride == 0 {
			o.OnProgress((start + 1) * 100 / n)
		}
	}

	var totalVisits uint64
	for _, c := range visitCount {
		totalVisits += c
	}

	// Degenerate case: nothing was sampled, fall back to uniform.
	if totalVisits == 0 {
		for i := range result {
			result[i] = 1.0 / float64(n)
		}

		return nil
	}

	for i := range result {
		result[i] = float64(visitCount[i]) / float64(totalVisits)
	}
	Normalize(result)

	return nil
}
