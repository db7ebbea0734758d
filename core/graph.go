package core

import "fmt"

// NewGraph builds a Graph from nodeCount and the parallel edge slices
// sources/targets, where edge i runs sources[i] → targets[i].
//
// The inputs are copied: the returned Graph never aliases caller memory, so
// the caller is free to reuse or mutate its slices after the call.
//
// Validation (in order):
//  1. nodeCount ≥ 1                      (ErrNonPositiveNodeCount)
//  2. len(sources) == len(targets)       (ErrEdgeLengthMismatch)
//  3. every endpoint in [0, nodeCount)   (ErrNodeOutOfRange, with edge index)
//
// Complexity: O(V + E) time, O(V + E) space.
func NewGraph(nodeCount int, sources, targets []int) (*Graph, error) {
	if nodeCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveNodeCount, nodeCount)
	}
	if len(sources) != len(targets) {
		return nil, fmt.Errorf("%w: %d sources vs %d targets",
			ErrEdgeLengthMismatch, len(sources), len(targets))
	}

	edgeCount := len(sources)
	g := &Graph{
		nodeCount:   nodeCount,
		edgeSources: make([]int, edgeCount),
		edgeTargets: make([]int, edgeCount),
		outDegree:   make([]int, nodeCount),
		adjacency:   make([][]int, nodeCount),
	}

	var s, t int
	for i := 0; i < edgeCount; i++ {
		s, t = sources[i], targets[i]
		if s < 0 || s >= nodeCount || t < 0 || t >= nodeCount {
			return nil, fmt.Errorf("%w: edge %d (%d→%d), nodeCount=%d",
				ErrNodeOutOfRange, i, s, t, nodeCount)
		}
		g.edgeSources[i] = s
		g.edgeTargets[i] = t
		g.outDegree[s]++
		g.adjacency[s] = append(g.adjacency[s], t)
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edgeSources) }

// Edge returns the endpoints of edge i in input order.
// i must lie in [0, EdgeCount); out-of-range indices panic like any slice access.
func (g *Graph) Edge(i int) (source, target int) {
	return g.edgeSources[i], g.edgeTargets[i]
}

// OutDegree returns the number of outgoing edges of node v.
func (g *Graph) OutDegree(v int) int { return g.outDegree[v] }

// Neighbors returns the edge targets of v in edge-insertion order.
// The returned slice is shared with the Graph and must not be modified;
// it is nil for nodes without outgoing edges.
func (g *Graph) Neighbors(v int) []int { return g.adjacency[v] }

// Dangling returns the ids of all nodes with zero outgoing edges,
// in ascending order. A fresh slice is returned on every call.
func (g *Graph) Dangling() []int {
	var dangling []int
	for v := 0; v < g.nodeCount; v++ {
		if g.outDegree[v] == 0 {
			dangling = append(dangling, v)
		}
	}

	return dangling
}
