// SPDX-License-Identifier: MIT
// Package: pairpath/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   • rows, cols ≥ 1.
//   • Cell (r, c) is vertex r*cols + c.
//   • Each cell links right and down; directed lists get both orientations
//     with the same weight.
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pairpath/adjacency"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(l *adjacency.List[int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		addVertices(l, rows*cols)

		link := func(u, v int) error {
			w := cfg.weightFn(cfg.rng)
			if err := l.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodGrid, u, v, w, err)
			}
			if l.Directed() {
				if err := l.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodGrid, v, u, w, err)
				}
			}
			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
