// Package rank provides two independent estimators of the PageRank
// stationary distribution over a core.Graph: a deterministic Power Iteration
// engine and a Monte Carlo Random Walk engine.
//
// Overview:
//
//   - Both engines model the same "random surfer": with probability alpha the
//     surfer follows a uniformly chosen outgoing edge, with probability
//     1−alpha it teleports to a uniformly chosen node.
//   - PowerIteration computes the distribution by running the transition
//     equation for exactly Iterations synchronous (Jacobi-style) update
//     steps. Same inputs ⇒ bit-identical output; precision is controlled
//     purely by Iterations — there is no convergence early-exit.
//   - RandomWalk estimates the distribution by simulating
//     NodeCount × WalksPerNode surfer trajectories whose lengths follow a
//     geometric law with continuation probability alpha, then normalizing
//     per-node visit counts. Reproducible per Seed via an instance-local
//     generator.
//
// Dangling nodes (zero outgoing edges) are handled differently by design:
//
//   - PowerIteration redistributes their probability mass uniformly over all
//     nodes on every iteration, so no mass ever leaks.
//   - RandomWalk teleports the surfer to one uniformly chosen node, records
//     that visit, and ends the walk.
//
// The two treatments are distinct approximations of the same Markov chain;
// unifying them would change the numeric output of one engine.
//
// When to use:
//
//   - PowerIteration for exact, reproducible scores at O(Iterations·(V+E)).
//   - RandomWalk for cheap approximate scores on large graphs, or when a
//     sampling-based estimate is preferable, at O(V·WalksPerNode/(1−alpha))
//     expected visits.
//
// Guarantees (both engines):
//
//   - The result is a probability distribution: every entry is non-negative
//     and the entries sum to 1 within SumTolerance (residual floating-point
//     drift is rescaled away by Normalize).
//   - The caller-allocated result slice is written in place, never retained,
//     never reallocated.
//   - All working state is call-scoped; concurrent invocations over the same
//     immutable Graph are safe.
//
// Host feedback:
//
//   - WithProgress registers a fire-and-forget percentage hook, invoked every
//     10 iterations by PowerIteration and roughly every 10% of start nodes by
//     RandomWalk. Correctness never depends on the hook.
//
// Errors (sentinel):
//
//   - ErrNilGraph          — the graph pointer is nil.
//   - ErrResultLength      — len(result) differs from the graph's node count.
//   - ErrBadAlpha          — alpha outside the open interval (0,1).
//   - ErrNegativeIterations — Iterations < 0.
//   - ErrNegativeWalks     — WalksPerNode < 0.
package rank
