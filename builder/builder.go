// SPDX-License-Identifier: MIT
// Package: lvlrank/builder
//
// builder.go - the four topology constructors and their sentinel errors.
//
// Determinism:
//   - Star/Cycle/Complete emit edges in increasing source order.
//   - RandomSparse draws targets from a rand.Rand seeded explicitly, so a
//     fixed (n, degree, seed) triple always yields the same graph.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlrank/core"
)

// Sentinel errors for topology construction.
var (
	// ErrTooFewNodes indicates a node count below the topology's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")

	// ErrNegativeDegree indicates a negative per-node out-degree request.
	ErrNegativeDegree = errors.New("builder: degree must be non-negative")
)

// File-local constants (stable method tags, no magic numbers).
const (
	methodStar     = "Star"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodSparse   = "RandomSparse"

	hubNodeID    = 0
	minStarNodes = 2
	minRingNodes = 2
	minFullNodes = 2
	minAnyNodes  = 1
)

// Star builds a star with hub node 0 and n−1 leaves: every leaf i (1..n−1)
// emits a single spoke i → 0. The hub has no outgoing edges, which makes it
// the canonical dangling node. Requires n ≥ 2.
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	sources := make([]int, 0, n-1)
	targets := make([]int, 0, n-1)
	for leaf := 1; leaf < n; leaf++ {
		sources = append(sources, leaf)
		targets = append(targets, hubNodeID)
	}

	return core.NewGraph(n, sources, targets)
}

// Cycle builds a directed ring: i → (i+1) mod n for every node.
// Every node has out-degree 1 and in-degree 1. Requires n ≥ 2.
func Cycle(n int) (*core.Graph, error) {
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minRingNodes, ErrTooFewNodes)
	}

	sources := make([]int, 0, n)
	targets := make([]int, 0, n)
	for i := 0; i < n; i++ {
		sources = append(sources, i)
		targets = append(targets, (i+1)%n)
	}

	return core.NewGraph(n, sources, targets)
}

// Complete builds the complete directed graph on n nodes: one edge for every
// ordered pair (i, j) with i ≠ j, emitted in increasing (i, j) order.
// Requires n ≥ 2.
func Complete(n int) (*core.Graph, error) {
	if n < minFullNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minFullNodes, ErrTooFewNodes)
	}

	edgeCount := n * (n - 1)
	sources := make([]int, 0, edgeCount)
	targets := make([]int, 0, edgeCount)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			sources = append(sources, i)
			targets = append(targets, j)
		}
	}

	return core.NewGraph(n, sources, targets)
}

// RandomSparse builds a graph where every node emits exactly degree edges
// whose targets are drawn uniformly (self-loops and duplicates allowed — the
// core graph is a multigraph). The generator is instance-local and seeded by
// seed, so the topology is reproducible. Requires n ≥ 1 and degree ≥ 0.
func RandomSparse(n, degree int, seed uint64) (*core.Graph, error) {
	if n < minAnyNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSparse, n, minAnyNodes, ErrTooFewNodes)
	}
	if degree < 0 {
		return nil, fmt.Errorf("%s: degree=%d: %w", methodSparse, degree, ErrNegativeDegree)
	}

	rng := rand.New(rand.NewSource(int64(seed)))

	edgeCount := n * degree
	sources := make([]int, 0, edgeCount)
	targets := make([]int, 0, edgeCount)
	for i := 0; i < n; i++ {
		for d := 0; d < degree; d++ {
			sources = append(sources, i)
			targets = append(targets, rng.Intn(n))
		}
	}

	return core.NewGraph(n, sources, targets)
}
