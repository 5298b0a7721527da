// Package adjacency provides a small, thread-safe weighted adjacency list
// that satisfies engine.Adjacency and supplies the restartable vertex
// sequence engine.New expects.
//
// Errors:
//
//	ErrLoopNotAllowed  - self-loop when loops are disabled.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrVertexNotFound  - requested vertex does not exist.
package adjacency

import "errors"

// Sentinel errors for adjacency list operations.
var (
	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("adjacency: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("adjacency: edge not found")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("adjacency: vertex not found")
)

// config holds construction-time flags.
type config struct {
	directed bool
	loops    bool
}

func defaultConfig() config {
	return config{directed: false, loops: false}
}

// Option configures a List before creation.
type Option func(*config)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() Option {
	return func(c *config) { c.loops = true }
}
