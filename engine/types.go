// Package engine defines the adjacency capability, options and sentinel
// errors for the shortest-path / spanning-tree Engine.
package engine

import (
	"errors"
	"iter"
	"math"
)

// Infinity is the distance reported for unreachable vertices. Relaxation uses
// saturating addition, so no finite sum ever exceeds it.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned (or panicked with) by the engine.
var (
	// ErrNegativeWeight indicates Dijkstra met an edge with negative weight.
	ErrNegativeWeight = errors.New("engine: negative edge weight encountered")

	// ErrUnreachable indicates ShortestPath was asked for a vertex with no path from the source.
	ErrUnreachable = errors.New("engine: destination unreachable from source")

	// ErrNilAdjacency indicates New was called without an adjacency capability.
	ErrNilAdjacency = errors.New("engine: adjacency is nil")

	// ErrBadCacheSize indicates WithCacheSize received a non-positive capacity.
	ErrBadCacheSize = errors.New("engine: cache size must be positive")
)

// Adjacency is the only view of the graph the engine needs: the outgoing
// (neighbor, weight) pairs of a vertex. A vertex with no entry yields an
// empty (or nil) sequence.
type Adjacency[V comparable] interface {
	Neighbors(v V) iter.Seq2[V, int64]
}

// AdjacencyFunc adapts an ordinary function to Adjacency.
type AdjacencyFunc[V comparable] func(v V) iter.Seq2[V, int64]

// Neighbors calls f(v).
func (f AdjacencyFunc[V]) Neighbors(v V) iter.Seq2[V, int64] { return f(v) }

// Edge is one edge of a spanning tree: From is the parent, To the child.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight int64
}

// Options configures an Engine.
//
// CacheSize – capacity of the per-source shortest-path cache. Zero means
//
//	"one slot per enumerated vertex", i.e. nothing is ever evicted.
//
// Metrics   – optional Prometheus instrumentation; nil disables it.
type Options struct {
	CacheSize int
	Metrics   *Metrics
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the zero configuration: unbounded cache, no metrics.
func DefaultOptions() Options {
	return Options{
		CacheSize: 0,
		Metrics:   nil,
	}
}

// WithCacheSize bounds the per-source cache to n entries (least recently used
// sources are evicted first). n must be positive; otherwise it panics with
// ErrBadCacheSize.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadCacheSize)
		}
		o.CacheSize = n
	}
}

// WithMetrics attaches Prometheus counters to the engine.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
