// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, heap identity and the opaque Handle type.

package pairing

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for heap precondition violations.
// UpdateKey and Merge panic with a value wrapping one of these;
// TryUpdateKey returns them instead.
var (
	// ErrForeignHandle indicates a Handle was presented to a heap that did not issue it.
	ErrForeignHandle = errors.New("pairing: handle belongs to a different heap")

	// ErrStaleHandle indicates the element behind a Handle was already deleted.
	ErrStaleHandle = errors.New("pairing: handle refers to a deleted element")

	// ErrKeyIncrease indicates UpdateKey was asked to make a key larger.
	ErrKeyIncrease = errors.New("pairing: new key is greater than current key")

	// ErrSelfMerge indicates a heap was merged into itself.
	ErrSelfMerge = errors.New("pairing: cannot merge a heap into itself")

	// ErrIdentityExhausted indicates the global identity counter wrapped around.
	ErrIdentityExhausted = errors.New("pairing: heap identity space exhausted")
)

// HeapID is a process-unique heap identity. Zero is never assigned.
type HeapID uint64

// lastHeapID is the last identity handed out by nextHeapID.
var lastHeapID atomic.Uint64

// nextHeapID returns a fresh identity. Safe for concurrent use.
func nextHeapID() HeapID {
	id := lastHeapID.Add(1)
	if id == 0 {
		panic(ErrIdentityExhausted)
	}

	return HeapID(id)
}

// Handle addresses one element inside the heap that returned it.
// It is only meaningful as an argument to that heap's UpdateKey, TryUpdateKey,
// Contains and Key. The zero Handle is never valid.
type Handle struct {
	index int32
	gen   uint32
	heap  HeapID
}

// Heap reports the identity of the heap that issued h.
func (h Handle) Heap() HeapID { return h.heap }

// String implements fmt.Stringer for diagnostics.
func (h Handle) String() string {
	return fmt.Sprintf("handle{heap=%d slot=%d gen=%d}", h.heap, h.index, h.gen)
}
