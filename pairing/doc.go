// Package pairing provides an addressable, mergeable min pairing heap.
//
// Overview:
//
//   - Heap[K, V] orders elements by key K (any constraints.Ordered type) and
//     carries an arbitrary value V alongside each key.
//   - Insert returns a Handle that can later lower that element's key with
//     UpdateKey (decrease-key). Increase-key and arbitrary removal are not supported.
//   - Merge melds two heaps; the argument heap is consumed.
//
// Complexity:
//
//   - Insert, FindMin, UpdateKey: O(1) (UpdateKey adds O(log n) amortized work
//     to later DeleteMin calls).
//   - DeleteMin: O(log n) amortized, via two-pass pairwise merging of the
//     removed root's children.
//   - Merge: O(1) tree work plus relocation of the other heap's arena slots.
//
// Storage:
//
//	Nodes live in a per-heap arena slice and link to each other by index
//	(parent, first child, previous and next sibling). Deleting an element
//	frees its slot and bumps the slot's generation counter.
//
// Handles:
//
//	A Handle records the slot, its generation and the identity of the issuing
//	heap. Identities come from a process-wide atomic counter, so they are
//	unique even when heaps are built on different goroutines. UpdateKey
//	rejects, by panicking:
//
//	  – a handle from another heap          (ErrForeignHandle)
//	  – a handle whose element was deleted  (ErrStaleHandle)
//	  – a key larger than the current one   (ErrKeyIncrease)
//
//	TryUpdateKey reports the same conditions as errors.
//
// Ties:
//
//	When two trees with equal root keys are linked, the left operand stays on
//	top. Insert links (root, new), so among equal keys an older root keeps
//	its place. Ordering among equal keys is otherwise unspecified.
//
// Thread safety:
//
//	A Heap must not be used from several goroutines without external locking.
//
// Example:
//
//	h := pairing.New[int64, string]()
//	a := h.Insert(7, "a")
//	h.Insert(3, "b")
//	h.UpdateKey(a, 1)
//	k, v, _ := h.DeleteMin() // 1, "a"
package pairing
