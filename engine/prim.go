package engine

import (
	"github.com/katalvlaran/pairpath/pairing"
)

// Tree is a spanning tree (or, for a disconnected graph, the tree of the
// root's component) stored as a parent pointer per vertex.
type Tree[V comparable] struct {
	root    V
	hasRoot bool
	parent  map[V]V
	weight  map[V]int64 // weight of the edge to parent
	edges   []Edge[V]   // in the order vertices joined the tree
}

// Root returns the vertex the tree was grown from. ok is false for an empty graph.
func (t *Tree[V]) Root() (root V, ok bool) { return t.root, t.hasRoot }

// Parent returns v's parent. ok is false for the root, for vertices outside
// the root's component and for unknown vertices.
func (t *Tree[V]) Parent(v V) (p V, ok bool) {
	p, ok = t.parent[v]
	return p, ok
}

// Weight returns the weight of the edge joining v to its parent.
func (t *Tree[V]) Weight(v V) (w int64, ok bool) {
	w, ok = t.weight[v]
	return w, ok
}

// Edges returns a copy of the tree edges (parent → child).
func (t *Tree[V]) Edges() []Edge[V] {
	out := make([]Edge[V], len(t.edges))
	copy(out, t.edges)

	return out
}

// TotalWeight sums the weights of all tree edges.
func (t *Tree[V]) TotalWeight() int64 {
	var sum int64
	for _, e := range t.edges {
		sum += e.Weight
	}

	return sum
}

// Len reports how many vertices the tree spans, root included.
func (t *Tree[V]) Len() int {
	if !t.hasRoot {
		return 0
	}

	return len(t.edges) + 1
}

// prim grows a minimum spanning tree from the first enumerated vertex.
//
// Heap keys are the cheapest known edge weight into the tree (not a path
// length). On each pop the vertex joins the tree via its recorded parent; then
// every neighbor still in the heap whose connecting edge is strictly cheaper
// than its key gets that vertex as parent and a decreased key. A popped
// Infinity key ends the run, leaving other components parentless.
func (e *Engine[V]) prim() *Tree[V] {
	t := &Tree[V]{
		parent: make(map[V]V),
		weight: make(map[V]int64),
	}

	h := pairing.New[int64, V]()
	key := make(map[V]int64)
	handles := make(map[V]pairing.Handle)

	for v := range e.vertices {
		if _, dup := handles[v]; dup {
			continue
		}
		k := Infinity
		if !t.hasRoot {
			t.root, t.hasRoot = v, true
			k = 0
		}
		key[v] = k
		handles[v] = h.Insert(k, v)
	}

	for {
		k, u, ok := h.DeleteMin()
		if !ok || k == Infinity {
			break
		}
		delete(handles, u)
		e.opts.Metrics.settle(algoPrim)

		if p, has := t.parent[u]; has {
			t.edges = append(t.edges, Edge[V]{From: p, To: u, Weight: k})
		}

		for n, w := range e.neighbors(u) {
			hn, open := handles[n]
			if !open || w >= key[n] {
				continue
			}
			key[n] = w
			t.parent[n] = u
			t.weight[n] = w
			h.UpdateKey(hn, w)
			e.opts.Metrics.relax(algoPrim)
		}
	}

	return t
}
