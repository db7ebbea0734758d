// Package lvlrank computes node-importance scores over directed graphs
// using the PageRank model — the stationary distribution of the classic
// "random surfer" Markov chain.
//
// 🚀 What is lvlrank?
//
//	A small, precise, pure-Go numeric kernel offering two independent
//	estimators of the same distribution:
//		• Power Iteration — deterministic fixed-point computation via repeated
//		  synchronous (Jacobi-style) updates of the transition equation
//		• Random Walk — Monte Carlo estimation via simulated surfer
//		  trajectories with geometric walk lengths
//
// ✨ Why choose lvlrank?
//
//   - Deterministic by construction – Power Iteration is bit-reproducible;
//     Random Walk is reproducible per seed via an instance-local generator
//   - Caller-owned buffers – engines write into a pre-allocated result slice,
//     never retain it, never reallocate it
//   - Pure Go – no cgo, no hidden deps
//   - Host-friendly – optional fire-and-forget progress hook for UI feedback
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — dense directed-multigraph representation built from parallel
//	           edge-source/edge-target slices, with out-degrees and adjacency
//	rank/    — the two estimation engines plus the shared sum-normalization
//	builder/ — deterministic canonical graphs (star, cycle, complete, random
//	           sparse) for tests, examples, and benchmarks
//
// Quick ASCII example:
//
//	    1───▶0◀───2
//	          ▲
//	          │
//	          3
//
//	a 4-node star: three leaves each link to the hub (node 0), which has no
//	outgoing edges of its own — the canonical dangling-node scenario both
//	engines must handle without losing probability mass.
//
// Dive into each subpackage's doc.go for contracts, complexity, and the
// exact numeric semantics the engines guarantee.
//
//	go get github.com/katalvlaran/lvlrank
package lvlrank
