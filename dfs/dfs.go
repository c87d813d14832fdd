// Package dfs implements depth‑first search (single‑source and forest) on matrix.Adjacency.
//
// Key features:
//   - Walk(g, start, visited, sink): the bare traversal over a caller-owned visited set
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order) & OnExit (post‑order) with error aborts
//   - Limits: MaxDepth
//
// Complexity:
//
//   - Time:   O(V²) on an adjacency matrix, plus overhead of hooks.
//   - Memory: O(V) for the frame stack and metadata slices.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/matrix"
)

// frame is one entry of the explicit traversal stack: a vertex, its
// ascending neighbor list, and the cursor of the next neighbor to try.
type frame struct {
	v      int
	depth  int
	nbs    []int
	cursor int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *matrix.Adjacency // underlying graph
	opts    DFSOptions        // traversal options
	visited []bool            // shared with the caller for Walk
	res     *DFSResult        // result collector
	stack   []frame
}

// Walk performs the classic depth-first traversal of g from start.
//
// It marks start in visited and emits it to sink, then for every neighbor in
// ascending index order that is still unvisited it does the same, depth first.
// start itself is emitted even if visited[start] was already set.
// visited is owned by the caller and must have length g.Order(); vertices
// already marked are treated as explored and are not entered again.
// A nil sink is allowed.
//
// Each vertex reachable from start through unvisited vertices is emitted
// exactly once. A sink error aborts the walk and is returned wrapped.
func Walk(g *matrix.Adjacency, start int, visited []bool, sink func(v int) error) error {
	// 1. Validate input
	if g == nil {
		return ErrGraphNil
	}
	if start < 0 || start >= g.Order() {
		return fmt.Errorf("%w: %d (order %d)", ErrStartOutOfRange, start, g.Order())
	}
	if len(visited) != g.Order() {
		return fmt.Errorf("%w: got %d, want %d", ErrVisitedSize, len(visited), g.Order())
	}

	// 2. Traverse over the caller's visited set
	opts := DefaultOptions()
	opts.OnVisit = sink
	w := newWalker(g, opts, visited)

	return w.traverse(start)
}

// DFS performs depth‑first search on graph g from start with a fresh visited
// set. If opts include WithFullTraversal, it then covers every remaining
// vertex in ascending order; otherwise only start's tree is explored.
// Returns DFSResult, or the partial result and an error if aborted by a hook.
func DFS(g *matrix.Adjacency, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Order() {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrStartOutOfRange, start, g.Order())
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Traverse: single tree first
	w := newWalker(g, dopts, make([]bool, g.Order()))
	if err := w.traverse(start); err != nil {
		return w.res, err
	}

	// 4. Forest mode: restart from each unvisited vertex
	if dopts.FullTraversal {
		for v := 0; v < g.Order(); v++ {
			if !w.visited[v] {
				if err := w.traverse(v); err != nil {
					return w.res, err
				}
			}
		}
	}

	return w.res, nil
}

func newWalker(g *matrix.Adjacency, opts DFSOptions, visited []bool) *dfsWalker {
	n := g.Order()
	res := &DFSResult{
		Order:     make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Visited:   visited,
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return &dfsWalker{graph: g, opts: opts, visited: visited, res: res}
}

// traverse explores the tree rooted at root. It produces the same pre- and
// post-order as the recursive formulation: a neighbor's visited flag is
// checked only when the cursor reaches it.
func (w *dfsWalker) traverse(root int) error {
	if err := w.enter(root, 0, -1); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// 1. Advance to the next unvisited neighbor
		if top.cursor < len(top.nbs) {
			nb := top.nbs[top.cursor]
			top.cursor++
			if !w.visited[nb] {
				if err := w.enter(nb, top.depth+1, top.v); err != nil {
					return err
				}
			}
			continue
		}

		// 2. All neighbors done: pop and finish the vertex
		v := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if err := w.exit(v); err != nil {
			return err
		}
	}

	return nil
}

// enter marks v visited, records it and pushes its frame.
// Vertices beyond MaxDepth are left untouched.
func (w *dfsWalker) enter(v, depth, parent int) error {
	// 1. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Mark visited and record depth
	w.visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)

	// 3. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			// abort and clear post‑order
			w.res.PostOrder = nil
			w.stack = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Fetch neighbors once
	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		w.res.PostOrder = nil
		w.stack = nil

		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, depth: depth, nbs: nbs})

	return nil
}

// exit runs the post-order hook and records the finish order.
func (w *dfsWalker) exit(v int) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.PostOrder = nil
			w.stack = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, v)

	return nil
}
