// SPDX-License-Identifier: MIT
// Package: lvlrank/builder
//
// Package builder constructs canonical graph topologies for the lvlrank
// engines: deterministic fixtures for tests, examples, and benchmarks.
//
// Contract (all constructors):
//   - Emit edges in a documented, stable order, so the resulting core.Graph
//     is identical across runs (RandomSparse additionally fixes its RNG seed).
//   - Validate parameter domains up front and return only sentinel errors;
//     never panic at runtime.
//   - Return a fully built, immutable *core.Graph.
//
// Topologies:
//   - Star(n)               — n−1 leaves each linking to hub node 0; the hub
//     itself has no outgoing edges (canonical dangling-node scenario).
//   - Cycle(n)              — directed ring i → (i+1) mod n.
//   - Complete(n)           — every ordered pair (i, j), i ≠ j.
//   - RandomSparse(n, d, s) — d out-edges per node with targets drawn from an
//     instance-local generator seeded by s.
//
// Complexity: O(V + E) time and space per constructor.
package builder
