// Package core types and sentinel errors for the dense graph representation.
package core

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrNonPositiveNodeCount indicates a node count below one; the engines
	// divide by the node count, so an empty graph is rejected up front.
	ErrNonPositiveNodeCount = errors.New("core: node count must be positive")

	// ErrEdgeLengthMismatch indicates the parallel edge slices disagree in length.
	ErrEdgeLengthMismatch = errors.New("core: edge source and target slices differ in length")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, nodeCount).
	ErrNodeOutOfRange = errors.New("core: edge endpoint out of range")
)

// Graph is a directed multigraph over the dense node id space 0..nodeCount-1.
//
// It is immutable after construction: NewGraph copies the caller's slices and
// no method mutates internal state, so one Graph may serve any number of
// concurrent algorithm invocations.
type Graph struct {
	// nodeCount is the number of nodes; node ids are 0..nodeCount-1.
	nodeCount int

	// edgeSources and edgeTargets hold the edge list in input order.
	// Input order is observable: deterministic engines iterate edges in
	// exactly this sequence.
	edgeSources []int
	edgeTargets []int

	// outDegree[v] counts edges whose source is v (duplicates included).
	outDegree []int

	// adjacency[v] lists edge targets of v in edge-insertion order.
	// Duplicate targets appear once per parallel edge.
	adjacency [][]int
}
