// Package dfs provides topological sort on directed adjacency matrices.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle (self-loops included), ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V²) (each matrix row scanned once)
//   - Memory: O(V)  (frame stack and state slice)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/matrix"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *matrix.Adjacency // the graph being sorted
	state []int             // visitation state: White, Gray, Black
	order []int             // recorded post-order sequence
	stack []frame
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are tried in ascending index order, so the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected wrapped with the closing edge.
func TopologicalSort(g *matrix.Adjacency) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Initialize sorter state
	n := g.Order()
	sorter := &topoSorter{
		graph: g,
		state: make([]int, n),    // all vertices start as White (0)
		order: make([]int, 0, n), // capacity hint for post-order
	}

	// 3. Drive DFS from every unvisited vertex
	for v := 0; v < n; v++ {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit runs an explicit-stack DFS from root, marking states and detecting back edges.
func (t *topoSorter) visit(root int) error {
	if err := t.push(root); err != nil {
		return err
	}

	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.cursor < len(top.nbs) {
			nb := top.nbs[top.cursor]
			top.cursor++

			switch t.state[nb] {
			case Gray:
				// back edge onto the current path
				return fmt.Errorf("%w: edge %d→%d", ErrCycleDetected, top.v, nb)
			case White:
				if err := t.push(nb); err != nil {
					return err
				}
			}
			continue
		}

		// Mark as fully explored (Black) and record in post-order
		t.state[top.v] = Black
		t.order = append(t.order, top.v)
		t.stack = t.stack[:len(t.stack)-1]
	}

	return nil
}

func (t *topoSorter) push(v int) error {
	nbs, err := t.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	t.state[v] = Gray
	t.stack = append(t.stack, frame{v: v, nbs: nbs})

	return nil
}
