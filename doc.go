// Package pairpath is an in-memory toolkit for shortest paths and minimum
// spanning trees driven by an addressable pairing heap.
//
// What is inside?
//
//	pairing/   — arena-backed pairing heap with handles, decrease-key and merge
//	engine/    — Dijkstra (cached per source) and Prim (cached once) over any Adjacency
//	adjacency/ — thread-safe weighted adjacency list implementing engine.Adjacency
//	builder/   — deterministic topology generators (cycle, grid, G(n,p), …)
//	examples/  — runnable scenarios that print results and engine counters
//
// Quick example:
//
//	    A─1─B
//	    │   │
//	    3   2
//	    │   │
//	    C─1─D
//
//	l := adjacency.NewList[string]()
//	_ = l.AddEdge("A", "B", 1)
//	_ = l.AddEdge("B", "D", 2)
//	_ = l.AddEdge("A", "C", 3)
//	_ = l.AddEdge("C", "D", 1)
//	e := engine.New[string](l.Vertices(), l)
//	d, _ := e.ShortestPathLen("A", "D") // 3
//	t := e.SpanningTree()                // total weight 4
//
// Results are memoized. Call Engine.Reset after mutating the graph.
//
//	go get github.com/katalvlaran/pairpath
package pairpath
