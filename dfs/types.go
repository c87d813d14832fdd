// Package dfs defines types and options for depth-first search traversal,
// including pre-/post-order hooks, depth limiting and full-graph (forest) traversal.
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the traversal stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *matrix.Adjacency is passed to
	// Walk, DFS or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start vertex index is not in the graph.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")

	// ErrVisitedSize indicates a visited set whose length differs from the vertex count.
	ErrVisitedSize = errors.New("dfs: visited set size mismatch")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.PostOrder.
	// Returning an error aborts traversal and leaves PostOrder empty.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal, if true, continues from every unvisited vertex in
	// ascending order once the start vertex's tree is done. Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:       nil,
		OnExit:        nil,
		MaxDepth:      -1,
		FullTraversal: false,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex’s descendants have been fully explored.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex, covering disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// Slices are indexed by vertex and have length V.
type DFSResult struct {
	// Order records vertices in the sequence they were discovered (pre-order).
	// This is the emission order of the OnVisit hook.
	Order []int

	// PostOrder records vertices in the sequence they finished.
	PostOrder []int

	// Depth holds each vertex's distance (#edges) from its tree root, or -1 if unreached.
	Depth []int

	// Parent holds the vertex from which each vertex was first discovered,
	// or -1 for tree roots and unreached vertices.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool
}
