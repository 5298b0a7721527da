// SPDX-License-Identifier: MIT
//
// File: list.go
// Role: minimal thread-safe weighted adjacency list.
// Policy:
//   - One edge per ordered vertex pair; adding it again overwrites the weight.
//   - Undirected lists store the mirror arc as well.
//   - Iteration order is insertion order (deterministic for equal inputs).
//   - Iterators snapshot under the read lock and yield without holding it.

package adjacency

import (
	"fmt"
	"iter"
	"sync"
)

// arc is one outgoing edge.
type arc[V comparable] struct {
	to     V
	weight int64
}

// List is a weighted adjacency list over vertices of type V.
// All methods are safe for concurrent use.
type List[V comparable] struct {
	mu sync.RWMutex

	directed bool
	loops    bool

	order []V            // vertices in insertion order
	out   map[V][]arc[V] // vertex → outgoing arcs in insertion order
	edges int            // logical edge count (mirror arcs not counted)
}

// NewList creates an empty list. By default it is undirected and rejects self-loops.
// Complexity: O(len(opts)).
func NewList[V comparable](opts ...Option) *List[V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &List[V]{
		directed: cfg.directed,
		loops:    cfg.loops,
		out:      make(map[V][]arc[V]),
	}
}

// Directed reports whether edges are one-way.
func (l *List[V]) Directed() bool { return l.directed }

// AddVertex inserts v if absent. Complexity: O(1).
func (l *List[V]) AddVertex(v V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.addVertexLocked(v)
}

func (l *List[V]) addVertexLocked(v V) {
	if _, ok := l.out[v]; ok {
		return
	}
	l.out[v] = nil
	l.order = append(l.order, v)
}

// HasVertex reports whether v was added. Complexity: O(1).
func (l *List[V]) HasVertex(v V) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.out[v]
	return ok
}

// AddEdge adds from→to with weight w, creating missing endpoints.
// Undirected lists add to→from too. Re-adding an existing edge overwrites its weight.
//
// Errors:
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//
// Complexity: O(deg(from) + deg(to)).
func (l *List[V]) AddEdge(from, to V, w int64) error {
	if from == to && !l.loops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.addVertexLocked(from)
	l.addVertexLocked(to)

	if !l.setArcLocked(from, to, w) {
		l.edges++
	}
	if !l.directed && from != to {
		l.setArcLocked(to, from, w)
	}

	return nil
}

// setArcLocked sets the weight of from→to, appending the arc if needed.
// It reports whether the arc already existed.
func (l *List[V]) setArcLocked(from, to V, w int64) bool {
	arcs := l.out[from]
	for i := range arcs {
		if arcs[i].to == to {
			arcs[i].weight = w
			return true
		}
	}
	l.out[from] = append(arcs, arc[V]{to: to, weight: w})

	return false
}

// RemoveEdge deletes from→to (and the mirror arc for undirected lists).
//
// Errors:
//   - ErrEdgeNotFound if the edge does not exist.
func (l *List[V]) RemoveEdge(from, to V) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.dropArcLocked(from, to) {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}
	if !l.directed && from != to {
		l.dropArcLocked(to, from)
	}
	l.edges--

	return nil
}

func (l *List[V]) dropArcLocked(from, to V) bool {
	arcs := l.out[from]
	for i := range arcs {
		if arcs[i].to == to {
			l.out[from] = append(arcs[:i:i], arcs[i+1:]...)
			return true
		}
	}

	return false
}

// HasEdge reports whether from→to exists.
func (l *List[V]) HasEdge(from, to V) bool {
	_, err := l.Weight(from, to)
	return err == nil
}

// Weight returns the weight of from→to.
//
// Errors:
//   - ErrVertexNotFound if from is unknown.
//   - ErrEdgeNotFound   if there is no such edge.
func (l *List[V]) Weight(from, to V) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	arcs, ok := l.out[from]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, from)
	}
	for _, a := range arcs {
		if a.to == to {
			return a.weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// VertexCount reports the number of vertices.
func (l *List[V]) VertexCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.order)
}

// EdgeCount reports the number of edges; an undirected edge counts once.
func (l *List[V]) EdgeCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.edges
}

// Vertices yields every vertex in insertion order. The sequence is
// restartable; each range takes a fresh snapshot.
func (l *List[V]) Vertices() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.mu.RLock()
		snap := make([]V, len(l.order))
		copy(snap, l.order)
		l.mu.RUnlock()

		for _, v := range snap {
			if !yield(v) {
				return
			}
		}
	}
}

// Neighbors yields the outgoing (neighbor, weight) pairs of v in insertion
// order. Unknown vertices yield nothing.
func (l *List[V]) Neighbors(v V) iter.Seq2[V, int64] {
	return func(yield func(V, int64) bool) {
		l.mu.RLock()
		snap := make([]arc[V], len(l.out[v]))
		copy(snap, l.out[v])
		l.mu.RUnlock()

		for _, a := range snap {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}
