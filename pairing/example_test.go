// Package pairing_test provides runnable examples for the pairing heap.
package pairing_test

import (
	"fmt"

	"github.com/katalvlaran/pairpath/pairing"
)

// ExampleHeap_UpdateKey shows decrease-key through a Handle.
func ExampleHeap_UpdateKey() {
	h := pairing.New[int, string]()
	h.Insert(5, "five")
	slow := h.Insert(10, "ten")
	h.Insert(3, "three")

	// "ten" becomes the most urgent element.
	h.UpdateKey(slow, 1)

	for k, v := range h.Drain() {
		fmt.Println(k, v)
	}
	// Output:
	// 1 ten
	// 3 three
	// 5 five
}

// ExampleHeap_Merge melds two heaps; the argument is consumed.
func ExampleHeap_Merge() {
	odd := pairing.New[int, struct{}]()
	for _, k := range []int{1, 3, 5} {
		odd.Insert(k, struct{}{})
	}
	even := pairing.New[int, struct{}]()
	for _, k := range []int{2, 4} {
		even.Insert(k, struct{}{})
	}

	odd.Merge(even)
	fmt.Println("even empty:", even.IsEmpty())
	var keys []int
	for k := range odd.Drain() {
		keys = append(keys, k)
	}
	fmt.Println(keys)
	// Output:
	// even empty: true
	// [1 2 3 4 5]
}
