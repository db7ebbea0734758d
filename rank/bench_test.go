package rank_test

import (
	"testing"

	"github.com/katalvlaran/lvlrank/builder"
	"github.com/katalvlaran/lvlrank/core"
	"github.com/katalvlaran/lvlrank/rank"
)

// benchmarkGraph builds a reproducible sparse graph of n nodes with degree
// out-edges per node, failing the benchmark on construction errors.
func benchmarkGraph(b *testing.B, n, degree int) *core.Graph {
	g, err := builder.RandomSparse(n, degree, 1)
	if err != nil {
		b.Fatalf("RandomSparse(%d, %d) failed: %v", n, degree, err)
	}

	return g
}

// benchmarkPowerIteration runs the exact engine with the given step count.
func benchmarkPowerIteration(b *testing.B, n, degree, iterations int) {
	g := benchmarkGraph(b, n, degree)
	result := make([]float64, n)

	b.ResetTimer() // ignore graph construction
	for i := 0; i < b.N; i++ {
		if err := rank.PowerIteration(g, result, rank.WithIterations(iterations)); err != nil {
			b.Fatalf("PowerIteration failed: %v", err)
		}
	}
}

// benchmarkRandomWalk runs the Monte Carlo engine with the given walk count.
func benchmarkRandomWalk(b *testing.B, n, degree, walks int) {
	g := benchmarkGraph(b, n, degree)
	result := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := rank.RandomWalk(g, result, rank.WithWalksPerNode(walks)); err != nil {
			b.Fatalf("RandomWalk failed: %v", err)
		}
	}
}

// BenchmarkPowerIteration_Small benchmarks 100 iterations on 1k nodes / 8k edges.
func BenchmarkPowerIteration_Small(b *testing.B) {
	benchmarkPowerIteration(b, 1_000, 8, 100)
}

// BenchmarkPowerIteration_Medium benchmarks 100 iterations on 10k nodes / 80k edges.
func BenchmarkPowerIteration_Medium(b *testing.B) {
	benchmarkPowerIteration(b, 10_000, 8, 100)
}

// BenchmarkRandomWalk_Small benchmarks 100 walks per node on 1k nodes / 8k edges.
func BenchmarkRandomWalk_Small(b *testing.B) {
	benchmarkRandomWalk(b, 1_000, 8, 100)
}

// BenchmarkRandomWalk_Medium benchmarks 100 walks per node on 10k nodes / 80k edges.
func BenchmarkRandomWalk_Medium(b *testing.B) {
	benchmarkRandomWalk(b, 10_000, 8, 100)
}
