// SPDX-License-Identifier: MIT
// Package: pairpath/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: Build(lopts, bopts, cons...). Creates the list, resolves cfg, runs cons in order.
//   - Topology constructors live in impl_*.go.
//   - Vertices are ints 0..n-1 (Grid uses r*cols+c).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical lists.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pairpath/adjacency"
)

// Constructor applies a deterministic mutation to l using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors instead of panicking.
type Constructor func(l *adjacency.List[int], cfg builderConfig) error

// Build creates a new adjacency list with lopts, resolves the builder
// configuration from bopts and applies every constructor in order.
// A constructor error is wrapped as "Build: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func Build(lopts []adjacency.Option, bopts []Option, cons ...Constructor) (*adjacency.List[int], error) {
	l := adjacency.NewList[int](lopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return l, nil
}

// addVertices inserts 0..n-1 in ascending order.
func addVertices(l *adjacency.List[int], n int) {
	for i := 0; i < n; i++ {
		l.AddVertex(i)
	}
}

// addEdge adds u→v with the next generated weight, tagging errors with method.
func addEdge(l *adjacency.List[int], cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if err := l.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
