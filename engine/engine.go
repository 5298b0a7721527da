// Package engine runs Dijkstra's shortest-path and Prim's spanning-tree
// algorithms over a caller-supplied graph view, using the addressable
// pairing heap for true decrease-key instead of lazy duplicate pushes.
//
// The graph is described by two capabilities only:
//
//   - a restartable vertex sequence (iter.Seq[V]), walked on every traversal;
//   - an Adjacency yielding the outgoing (neighbor, weight) pairs of a vertex.
//
// The engine owns neither; it owns its result caches. After the underlying
// graph changes, call Reset.
//
// Complexity (V vertices, E edges):
//
//   - Dijkstra: O(V log V + E) amortized per uncached source.
//   - Prim:     O(V log V + E) amortized, computed once.
//   - Cached answers: O(1).
//
// Caller contract:
//
//	Querying a vertex that the sequence never yields is a precondition
//	violation; the result is unspecified and not checked. Vertices that only
//	appear as neighbors, never in the sequence, are ignored during relaxation.
//
// Thread safety:
//
//	An Engine is not safe for concurrent use.
package engine

import (
	"fmt"
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Engine answers shortest-path and spanning-tree queries and caches results.
type Engine[V comparable] struct {
	vertices iter.Seq[V]
	adj      Adjacency[V]
	opts     Options
	paths    *lru.Cache[V, *paths[V]] // source → settled distances
	tree     *Tree[V]                 // nil until SpanningTree runs
}

// paths is the outcome of one Dijkstra run.
type paths[V comparable] struct {
	src  V
	dist map[V]int64
	prev map[V]V
}

// New builds an Engine over vertices and adj.
// It panics with ErrNilAdjacency if adj is nil; a nil vertices sequence is
// treated as an empty graph.
func New[V comparable](vertices iter.Seq[V], adj Adjacency[V], opts ...Option) *Engine[V] {
	if adj == nil {
		panic(ErrNilAdjacency)
	}
	if vertices == nil {
		vertices = func(func(V) bool) {}
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine[V]{
		vertices: vertices,
		adj:      adj,
		opts:     cfg,
	}
	e.paths = e.newCache()

	return e
}

// newCache sizes the per-source cache. Without an explicit size every
// enumerated vertex gets a slot.
func (e *Engine[V]) newCache() *lru.Cache[V, *paths[V]] {
	size := e.opts.CacheSize
	if size <= 0 {
		for range e.vertices {
			size++
		}
		if size == 0 {
			size = 1
		}
	}

	cache, err := lru.New[V, *paths[V]](size)
	// lru.New only fails on a non-positive size, which is excluded above.
	if err != nil {
		panic(err)
	}

	return cache
}

// Reset drops every cached result. Use it after the graph behind the
// vertex sequence or adjacency has changed.
func (e *Engine[V]) Reset() {
	e.paths = e.newCache()
	e.tree = nil
}

// ShortestPathLen returns the length of the shortest path from src to dst,
// or Infinity if dst is unreachable.
//
// The first query for a given src runs Dijkstra and caches the full distance
// map; later queries from the same src are O(1) lookups.
//
// Errors:
//   - ErrNegativeWeight (wrapped with the offending edge) if a negative
//     weight is relaxed. Nothing is cached in that case.
func (e *Engine[V]) ShortestPathLen(src, dst V) (int64, error) {
	p, err := e.lookup(src)
	if err != nil {
		return Infinity, err
	}
	d, ok := p.dist[dst]
	if !ok {
		return Infinity, nil
	}

	return d, nil
}

// ShortestPaths returns a copy of the distance map from src to every
// enumerated vertex (Infinity for unreachable ones).
func (e *Engine[V]) ShortestPaths(src V) (map[V]int64, error) {
	p, err := e.lookup(src)
	if err != nil {
		return nil, err
	}
	out := make(map[V]int64, len(p.dist))
	for v, d := range p.dist {
		out[v] = d
	}

	return out, nil
}

// ShortestPath returns one shortest path from src to dst (both included)
// and its length. It returns ErrUnreachable if there is none.
func (e *Engine[V]) ShortestPath(src, dst V) ([]V, int64, error) {
	p, err := e.lookup(src)
	if err != nil {
		return nil, Infinity, err
	}
	d, ok := p.dist[dst]
	if !ok || d == Infinity {
		return nil, Infinity, fmt.Errorf("%w: %v → %v", ErrUnreachable, src, dst)
	}

	path := []V{dst}
	for v := dst; v != p.src; {
		v = p.prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// SpanningTree returns the minimum spanning tree grown by Prim's algorithm
// from the first enumerated vertex. It is computed once and cached.
// Vertices in other components keep no parent; an empty graph yields an
// empty tree.
func (e *Engine[V]) SpanningTree() *Tree[V] {
	if e.tree != nil {
		e.opts.Metrics.query(algoPrim, resultHit)
		return e.tree
	}
	e.opts.Metrics.query(algoPrim, resultMiss)
	e.tree = e.prim()

	return e.tree
}

// lookup returns cached Dijkstra results for src, computing them on a miss.
func (e *Engine[V]) lookup(src V) (*paths[V], error) {
	if p, ok := e.paths.Get(src); ok {
		e.opts.Metrics.query(algoDijkstra, resultHit)
		return p, nil
	}
	e.opts.Metrics.query(algoDijkstra, resultMiss)

	p, err := e.dijkstra(src)
	if err != nil {
		return nil, err
	}
	e.paths.Add(src, p)

	return p, nil
}

// neighbors guards against adjacencies that return a nil sequence.
func (e *Engine[V]) neighbors(v V) iter.Seq2[V, int64] {
	if seq := e.adj.Neighbors(v); seq != nil {
		return seq
	}

	return func(func(V, int64) bool) {}
}

// addSat returns a+w, clamped to Infinity. w must be non-negative.
func addSat(a, w int64) int64 {
	if a >= Infinity-w {
		return Infinity
	}

	return a + w
}
