// Package core defines the dense directed-multigraph representation shared
// by every estimation engine in lvlrank.
//
// Overview:
//
//   - Nodes are identified by contiguous integers 0..NodeCount-1.
//   - A Graph is built once from parallel edge-source/edge-target slices —
//     the flat exchange format a host runtime hands over — and is immutable
//     afterwards.
//   - Construction records three views of the same edge set:
//     the original edge sequence in input order (drives deterministic
//     edge-contribution passes), per-node out-degrees, and adjacency lists in
//     edge-insertion order (drives uniform neighbor sampling).
//   - Duplicate (source, target) pairs are kept: the graph is a multigraph,
//     and a repeated edge doubles its target's share during both contribution
//     and sampling. Self-loops are kept as well.
//
// Concurrency:
//
//   - A Graph never changes after NewGraph returns, so any number of
//     concurrent algorithm invocations may read it without locking.
//
// Errors (sentinel):
//
//   - ErrNonPositiveNodeCount — nodeCount < 1.
//   - ErrEdgeLengthMismatch   — source and target slices differ in length.
//   - ErrNodeOutOfRange       — an edge endpoint lies outside [0, nodeCount).
//
// Complexity:
//
//   - NewGraph: O(V + E) time and space.
//   - All getters: O(1), except Dangling which scans out-degrees in O(V).
package core
