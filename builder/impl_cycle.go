// SPDX-License-Identifier: MIT
// Package: pairpath/builder
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3, edges i → (i+1)%n for i = 0..n-1.
//   • Path:  n ≥ 2, edges i → i+1 for i = 0..n-2.
//   • Weights come from cfg.weightFn in emission order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pairpath/adjacency"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds the n-vertex cycle C_n.
func Cycle(n int) Constructor {
	return func(l *adjacency.List[int], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(l, n)
		for i := 0; i < n; i++ {
			if err := addEdge(l, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the n-vertex path P_n.
func Path(n int) Constructor {
	return func(l *adjacency.List[int], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(l, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(l, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
