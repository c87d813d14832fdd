package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/matrix"
)

// buildChain creates a directed chain matrix of length n: 0→1→2→…→n-1
func buildChain(tb testing.TB, n int) *matrix.Adjacency {
	tb.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		if i+1 < n {
			rows[i][i+1] = 1
		}
	}
	m, err := matrix.NewAdjacency(rows)
	require.NoError(tb, err)

	return m
}

// buildBinaryTree creates a complete binary tree of depth d (nodes = 2^d-1),
// heap-numbered from 0: children of i are 2i+1 and 2i+2.
func buildBinaryTree(tb testing.TB, depth int) *matrix.Adjacency {
	tb.Helper()
	n := (1 << depth) - 1
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for i := 1; i < n; i++ {
		rows[(i-1)/2][i] = 1
	}
	m, err := matrix.NewAdjacency(rows)
	require.NoError(tb, err)

	return m
}

// fromEdges builds an n-vertex matrix; undirected mirrors every edge.
func fromEdges(tb testing.TB, n int, undirected bool, edges ...[2]int) *matrix.Adjacency {
	tb.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for _, e := range edges {
		rows[e[0]][e[1]] = 1
		if undirected {
			rows[e[1]][e[0]] = 1
		}
	}
	m, err := matrix.NewAdjacency(rows)
	require.NoError(tb, err)

	return m
}

// recursiveWalk is the textbook recursive traversal, used as the reference order.
func recursiveWalk(g *matrix.Adjacency, v int, visited []bool, out *[]int) {
	visited[v] = true
	*out = append(*out, v)
	for i := 0; i < g.Order(); i++ {
		if g.HasEdge(v, i) && !visited[i] {
			recursiveWalk(g, i, visited, out)
		}
	}
}
