// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: arena-backed tree nodes and the O(1) restructuring primitives
// (orphan, addChild, link) plus the two-pass mergePairs reassembly.
//
// Nodes never leave the arena. Links are slot indices; nilIndex marks "none".
// A freed slot bumps its generation so that old Handles fail validation.

package pairing

import "golang.org/x/exp/constraints"

// nilIndex marks an absent link.
const nilIndex int32 = -1

// node is one key/value element of the tree.
//
// Siblings form a doubly linked list: prev of a first child is nilIndex and
// the parent's child field points at it. Every child carries its parent index.
type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	parent int32
	child  int32 // first child
	prev   int32
	next   int32
	gen    uint32
	live   bool
}

// alloc places a singleton node into a free slot (or a new one) and returns its index.
func (h *Heap[K, V]) alloc(key K, value V) int32 {
	var i int32
	if n := len(h.free); n > 0 {
		i = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		h.nodes = append(h.nodes, node[K, V]{})
		i = int32(len(h.nodes) - 1)
	}

	n := &h.nodes[i]
	n.key = key
	n.value = value
	n.parent, n.child, n.prev, n.next = nilIndex, nilIndex, nilIndex, nilIndex
	n.live = true

	return i
}

// release returns slot i to the free list. Key and value are zeroed so the
// arena does not pin them for the garbage collector.
func (h *Heap[K, V]) release(i int32) {
	var (
		zk K
		zv V
	)
	n := &h.nodes[i]
	n.key, n.value = zk, zv
	n.parent, n.child, n.prev, n.next = nilIndex, nilIndex, nilIndex, nilIndex
	n.live = false
	n.gen++
	h.free = append(h.free, i)
}

// orphan detaches i from its parent's child list and clears its own
// parent/sibling links. Its subtree stays attached to it.
// For a root this only clears links that are already nilIndex.
func (h *Heap[K, V]) orphan(i int32) {
	n := &h.nodes[i]
	if n.prev != nilIndex {
		h.nodes[n.prev].next = n.next
	} else if n.parent != nilIndex {
		// i was the first child.
		h.nodes[n.parent].child = n.next
	}
	if n.next != nilIndex {
		h.nodes[n.next].prev = n.prev
	}
	n.parent, n.prev, n.next = nilIndex, nilIndex, nilIndex
}

// addChild pushes c at the head of p's child list.
// Caller guarantees key(c) >= key(p) and that c is detached.
func (h *Heap[K, V]) addChild(p, c int32) {
	pn := &h.nodes[p]
	cn := &h.nodes[c]
	cn.parent = p
	cn.prev = nilIndex
	cn.next = pn.child
	if pn.child != nilIndex {
		h.nodes[pn.child].prev = c
	}
	pn.child = c
}

// link merges the trees rooted at a and b and returns the new root.
// The larger key becomes a child of the smaller; on equal keys a stays on top.
func (h *Heap[K, V]) link(a, b int32) int32 {
	switch {
	case a == nilIndex:
		return b
	case b == nilIndex:
		return a
	}

	h.orphan(a)
	h.orphan(b)
	if h.nodes[b].key < h.nodes[a].key {
		a, b = b, a
	}
	h.addChild(a, b)

	return a
}

// mergePairs reassembles the sibling list starting at first into one tree:
// link neighbours left to right, then fold the results right to left.
// Returns nilIndex for an empty list.
func (h *Heap[K, V]) mergePairs(first int32) int32 {
	if first == nilIndex {
		return nilIndex
	}

	// Detach every sibling up front so link never walks a half-dismantled list.
	s := h.scratch[:0]
	for i := first; i != nilIndex; {
		next := h.nodes[i].next
		n := &h.nodes[i]
		n.parent, n.prev, n.next = nilIndex, nilIndex, nilIndex
		s = append(s, i)
		i = next
	}

	// Pass 1: pairwise, left to right.
	j := 0
	for i := 0; i+1 < len(s); i += 2 {
		s[j] = h.link(s[i], s[i+1])
		j++
	}
	if len(s)%2 == 1 {
		s[j] = s[len(s)-1]
		j++
	}

	// Pass 2: right to left.
	root := s[j-1]
	for k := j - 2; k >= 0; k-- {
		root = h.link(s[k], root)
	}

	h.scratch = s[:0]

	return root
}
