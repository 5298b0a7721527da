// Package engine_test provides runnable examples for the engine.
package engine_test

import (
	"fmt"

	"github.com/katalvlaran/pairpath/adjacency"
	"github.com/katalvlaran/pairpath/engine"
)

// ExampleEngine_ShortestPath finds a route on a small directed road map.
func ExampleEngine_ShortestPath() {
	roads := adjacency.NewList[string](adjacency.WithDirected(true))
	_ = roads.AddEdge("depot", "market", 4)
	_ = roads.AddEdge("depot", "bridge", 1)
	_ = roads.AddEdge("bridge", "market", 2)
	_ = roads.AddEdge("market", "harbor", 5)
	roads.AddVertex("island")

	e := engine.New[string](roads.Vertices(), roads)

	path, d, err := e.ShortestPath("depot", "harbor")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, d)

	d, _ = e.ShortestPathLen("depot", "island")
	fmt.Println("island reachable:", d != engine.Infinity)
	// Output:
	// [depot bridge market harbor] 8
	// island reachable: false
}

// ExampleEngine_SpanningTree connects four sites with the cheapest cabling.
func ExampleEngine_SpanningTree() {
	sites := adjacency.NewList[string]()
	_ = sites.AddEdge("A", "B", 1)
	_ = sites.AddEdge("B", "C", 2)
	_ = sites.AddEdge("A", "C", 3)
	_ = sites.AddEdge("C", "D", 1)

	tree := engine.New[string](sites.Vertices(), sites).SpanningTree()
	for _, e := range tree.Edges() {
		fmt.Printf("%s-%s %d\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", tree.TotalWeight())
	// Output:
	// A-B 1
	// B-C 2
	// C-D 1
	// total: 4
}
