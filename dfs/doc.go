// Package dfs implements depth‑first search traversal and topological sort
// on a matrix.Adjacency.
//
// What:
//
//   - Walk: the classic traversal. Marks the start vertex in a caller-owned
//     visited set, emits it to a sink, then descends into every unvisited
//     neighbor in ascending index order.
//   - DFS: the same traversal with a fresh visited set per call and a full
//     DFSResult (pre-order, post-order, depth, parent). Supports:
//   - Pre‑order and post‑order hooks
//   - Depth limiting
//   - Full-graph (forest) traversal
//   - TopologicalSort: reverse post-order over all vertices, returning
//     ErrCycleDetected if a back edge exists.
//
// All traversals run on an explicit stack of frames rather than Go
// recursion, so stack usage stays constant however deep the graph is, while
// the visitation order is exactly that of the recursive formulation.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds hooks, MaxDepth, FullTraversal
//   - DFSResult: Order, PostOrder, Depth, Parent, Visited
//
// Complexity:
//
//   - Walk, DFS:       Time O(V²) on a matrix (each row scanned once), Memory O(V)
//   - TopologicalSort: Time O(V²), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartOutOfRange   start vertex not in [0, V)
//   - ErrVisitedSize       visited set length differs from V
//   - ErrCycleDetected     cycle discovered by TopologicalSort
//   - hook errors          propagated from OnVisit or OnExit
package dfs
