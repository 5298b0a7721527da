// SPDX-License-Identifier: MIT
// Package: pairpath/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1.
//   • Undirected lists consider each pair i < j once; directed lists consider
//     every ordered pair i ≠ j. Pairs are visited in ascending order and one
//     rng draw decides each, so a fixed seed gives a fixed graph.
//
// Complexity: O(n²) draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pairpath/adjacency"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps each candidate edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(l *adjacency.List[int], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		addVertices(l, n)

		directed := l.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(l, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
