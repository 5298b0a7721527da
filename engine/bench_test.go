package engine_test

import (
	"testing"

	"github.com/katalvlaran/pairpath/adjacency"
	"github.com/katalvlaran/pairpath/builder"
	"github.com/katalvlaran/pairpath/engine"
)

// gridFixture builds a 50×50 weighted lattice once per benchmark.
func gridFixture(b *testing.B) *adjacency.List[int] {
	b.Helper()
	l, err := builder.Build(nil,
		[]builder.Option{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
		builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}

	return l
}

// BenchmarkDijkstra_Grid measures an uncached single-source run.
func BenchmarkDijkstra_Grid(b *testing.B) {
	l := gridFixture(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := engine.New[int](l.Vertices(), l)
		if _, err := e.ShortestPathLen(0, 2499); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrim_Grid measures one spanning-tree computation.
func BenchmarkPrim_Grid(b *testing.B) {
	l := gridFixture(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.New[int](l.Vertices(), l).SpanningTree()
	}
}
