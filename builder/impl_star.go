// SPDX-License-Identifier: MIT
// Package: pairpath/builder
//
// impl_star.go - Star(n) and Complete(n).
//
// Contract:
//   • Star: n ≥ 2, center 0, edges 0 → i for i = 1..n-1.
//   • Complete: n ≥ 1, edges i → j for every i < j (and j → i too on directed lists).
//
// Complexity: Star O(n); Complete O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pairpath/adjacency"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with center 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(l *adjacency.List[int], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(l, n)
		for i := 1; i < n; i++ {
			if err := addEdge(l, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(l *adjacency.List[int], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(l, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(l, cfg, methodComplete, i, j); err != nil {
					return err
				}
				if l.Directed() {
					if err := addEdge(l, cfg, methodComplete, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
