// SPDX-License-Identifier: MIT
//
// File: heap.go
// Role: public Heap API (insert, find-min, delete-min, merge, decrease-key).
//
// Complexity:
//   - Insert, FindMin, Merge (per relocated slot), UpdateKey: O(1) amortized.
//   - DeleteMin: O(log n) amortized.

package pairing

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Heap is an addressable min pairing heap keyed by K and carrying values V.
//
// Use New or NewWithEntry; the zero Heap is not ready for use.
// A Heap is not safe for concurrent mutation.
type Heap[K constraints.Ordered, V any] struct {
	nodes   []node[K, V] // arena
	free    []int32      // released slots, reused LIFO
	scratch []int32      // reusable buffer for mergePairs
	root    int32
	size    int
	id      HeapID
}

// New returns an empty heap with a fresh identity.
func New[K constraints.Ordered, V any]() *Heap[K, V] {
	return &Heap[K, V]{
		root: nilIndex,
		id:   nextHeapID(),
	}
}

// NewWithEntry returns a heap holding exactly one element, and its handle.
func NewWithEntry[K constraints.Ordered, V any](key K, value V) (*Heap[K, V], Handle) {
	h := New[K, V]()

	return h, h.Insert(key, value)
}

// ID reports the identity stamped on every Handle this heap issues.
func (h *Heap[K, V]) ID() HeapID { return h.id }

// Len reports the number of elements.
func (h *Heap[K, V]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[K, V]) IsEmpty() bool { return h.root == nilIndex }

// Insert adds (key, value) and returns a Handle for later UpdateKey calls.
func (h *Heap[K, V]) Insert(key K, value V) Handle {
	i := h.alloc(key, value)
	h.root = h.link(h.root, i)
	h.size++

	return Handle{index: i, gen: h.nodes[i].gen, heap: h.id}
}

// FindMin returns the smallest key and its value without removing them.
// ok is false iff the heap is empty.
func (h *Heap[K, V]) FindMin() (key K, value V, ok bool) {
	if h.root == nilIndex {
		return key, value, false
	}
	n := &h.nodes[h.root]

	return n.key, n.value, true
}

// DeleteMin removes and returns the smallest key and its value.
// ok is false iff the heap is empty. Handles to the removed element become stale.
func (h *Heap[K, V]) DeleteMin() (key K, value V, ok bool) {
	if h.root == nilIndex {
		return key, value, false
	}

	r := h.root
	n := &h.nodes[r]
	key, value = n.key, n.value
	first := n.child
	n.child = nilIndex

	h.root = h.mergePairs(first)
	h.release(r)
	h.size--

	return key, value, true
}

// Merge moves every element of other into h.
//
// other is consumed: it is left empty and receives a fresh identity, so
// handles it issued earlier are rejected by both heaps from now on.
// A nil other is a no-op; merging h into itself panics with ErrSelfMerge.
func (h *Heap[K, V]) Merge(other *Heap[K, V]) {
	if other == nil {
		return
	}
	if other == h {
		panic(ErrSelfMerge)
	}

	if other.root != nilIndex {
		offset := int32(len(h.nodes))
		shift := func(i int32) int32 {
			if i == nilIndex {
				return nilIndex
			}
			return i + offset
		}

		for _, n := range other.nodes {
			n.parent = shift(n.parent)
			n.child = shift(n.child)
			n.prev = shift(n.prev)
			n.next = shift(n.next)
			h.nodes = append(h.nodes, n)
		}
		for _, i := range other.free {
			h.free = append(h.free, i+offset)
		}

		h.root = h.link(h.root, other.root+offset)
		h.size += other.size
	}

	other.nodes = nil
	other.free = nil
	other.scratch = nil
	other.root = nilIndex
	other.size = 0
	other.id = nextHeapID()
}

// UpdateKey lowers the key of the element behind handle to key.
//
// It panics (with an error wrapping ErrForeignHandle, ErrStaleHandle or
// ErrKeyIncrease) when the handle was not issued by h, refers to a deleted
// element, or key is greater than the current key. The heap is left
// unchanged in every panicking case.
func (h *Heap[K, V]) UpdateKey(handle Handle, key K) {
	if err := h.TryUpdateKey(handle, key); err != nil {
		panic(err)
	}
}

// TryUpdateKey behaves like UpdateKey but reports precondition violations
// as an error instead of panicking.
func (h *Heap[K, V]) TryUpdateKey(handle Handle, key K) error {
	i, err := h.resolve(handle)
	if err != nil {
		return err
	}

	n := &h.nodes[i]
	if key > n.key {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncrease, key, n.key)
	}
	n.key = key

	// Heap order may now be broken against the old parent only; cut the
	// subtree out and link it against the global root.
	if i != h.root {
		h.orphan(i)
		h.root = h.link(h.root, i)
	}

	return nil
}

// Contains reports whether handle refers to a live element of h.
func (h *Heap[K, V]) Contains(handle Handle) bool {
	_, err := h.resolve(handle)

	return err == nil
}

// Key returns the current key of the element behind handle.
// ok is false if the handle is foreign or stale.
func (h *Heap[K, V]) Key(handle Handle) (key K, ok bool) {
	i, err := h.resolve(handle)
	if err != nil {
		return key, false
	}

	return h.nodes[i].key, true
}

// Clear removes every element. All outstanding handles become stale.
func (h *Heap[K, V]) Clear() {
	for i := range h.nodes {
		if h.nodes[i].live {
			h.release(int32(i))
		}
	}
	h.root = nilIndex
	h.size = 0
}

// Drain returns an iterator that pops elements in non-decreasing key order
// until the heap is empty. An element handed to a yield that returns false
// has already been removed.
func (h *Heap[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := h.DeleteMin()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// resolve validates handle against h and returns its arena slot.
func (h *Heap[K, V]) resolve(handle Handle) (int32, error) {
	if handle.heap != h.id {
		return nilIndex, fmt.Errorf("%w: %s presented to heap %d", ErrForeignHandle, handle, h.id)
	}
	i := handle.index
	if i < 0 || int(i) >= len(h.nodes) {
		return nilIndex, fmt.Errorf("%w: %s", ErrStaleHandle, handle)
	}
	if n := &h.nodes[i]; !n.live || n.gen != handle.gen {
		return nilIndex, fmt.Errorf("%w: %s", ErrStaleHandle, handle)
	}

	return i, nil
}
