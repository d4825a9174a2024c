package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/gridgraph"
)

// randomWorld returns an n×n world with roughly a quarter of cells blocked.
func randomWorld(n int, seed int64) *gridWorld {
	rng := rand.New(rand.NewSource(seed))
	w := openWorld(n, n)
	for i := range w.costs {
		if rng.Intn(4) == 0 {
			w.costs[i] = 0
		}
	}
	return w
}

// BenchmarkBuild measures full construction on a 256×256 world.
// Complexity: O(W×H×8)
func BenchmarkBuild(b *testing.B) {
	w := randomWorld(256, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Build(w)
	}
}

// BenchmarkRebuildAround measures a single-cell patch on a 256×256 world.
// Complexity: O(8²)
func BenchmarkRebuildAround(b *testing.B) {
	w := randomWorld(256, 42)
	g, err := gridgraph.Build(w)
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}
	c := gridgraph.C(128, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			w.set(c, 0)
		} else {
			w.set(c, 1)
		}
		_ = g.RebuildAround(c)
	}
}
