package engine

import (
	"fmt"

	"github.com/katalvlaran/pairpath/pairing"
)

// dijkstra computes single-source shortest distances from src.
//
// Steps:
//  1. Insert every enumerated vertex into a pairing heap: src at 0, the rest at Infinity.
//  2. Pop the minimum; drop its handle (settled). A popped Infinity means the
//     remaining vertices are unreachable, so stop.
//  3. For each outgoing edge to a vertex still in the heap, relax with
//     saturating addition and decrease its key on strict improvement.
func (e *Engine[V]) dijkstra(src V) (*paths[V], error) {
	h := pairing.New[int64, V]()
	dist := make(map[V]int64)
	prev := make(map[V]V)
	handles := make(map[V]pairing.Handle)

	for v := range e.vertices {
		if _, dup := handles[v]; dup {
			continue
		}
		d := Infinity
		if v == src {
			d = 0
		}
		dist[v] = d
		handles[v] = h.Insert(d, v)
	}

	for {
		d, u, ok := h.DeleteMin()
		if !ok || d == Infinity {
			break
		}
		delete(handles, u)
		e.opts.Metrics.settle(algoDijkstra)

		for n, w := range e.neighbors(u) {
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, n, w)
			}
			hn, open := handles[n]
			if !open {
				continue
			}
			cand := addSat(d, w)
			if cand >= dist[n] {
				continue
			}
			dist[n] = cand
			prev[n] = u
			h.UpdateKey(hn, cand)
			e.opts.Metrics.relax(algoDijkstra)
		}
	}

	return &paths[V]{src: src, dist: dist, prev: prev}, nil
}
