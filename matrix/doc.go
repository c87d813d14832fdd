// Package matrix offers the adjacency-matrix graph representation used by
// the traversal packages.
//
// The matrix package provides:
//
//   - Adjacency: a fixed-order, read-only 0/1 matrix with O(1) edge queries
//     and O(V) ascending neighbor listing.
//   - NewAdjacency: validated construction from a caller-owned [][]int.
//
// Entry (i, j) = 1 means an edge i→j exists. Undirected graphs are simply
// symmetric matrices; no symmetry is enforced. Self-loops (i, i) are allowed.
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
package matrix
