package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/ghs/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 nodes and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures the same graph, always starting Prim from node 1.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 1)
	}
}
