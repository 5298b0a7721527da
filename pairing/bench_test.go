package pairing_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pairpath/pairing"
)

// BenchmarkInsertDeleteMin measures a fill-then-drain cycle of 1k elements.
func BenchmarkInsertDeleteMin(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	keys := make([]int64, 1000)
	for i := range keys {
		keys[i] = r.Int63()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pairing.New[int64, struct{}]()
		for _, k := range keys {
			h.Insert(k, struct{}{})
		}
		for !h.IsEmpty() {
			h.DeleteMin()
		}
	}
}

// BenchmarkDecreaseKey measures UpdateKey interleaved with DeleteMin, the
// access pattern of Dijkstra and Prim.
func BenchmarkDecreaseKey(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := pairing.New[int64, int]()
		handles := make([]pairing.Handle, n)
		for j := range handles {
			handles[j] = h.Insert(1<<40, j)
		}
		for j := 0; j < n; j++ {
			hd := handles[r.Intn(n)]
			if k, ok := h.Key(hd); ok && k > 0 {
				h.UpdateKey(hd, k-r.Int63n(k))
			}
			if j%4 == 0 {
				h.DeleteMin()
			}
		}
	}
}
