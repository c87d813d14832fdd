package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/dfs"
	"github.com/katalvlaran/lvlalgo/matrix"
)

// ExampleWalk prints each vertex as it is visited, like the classic driver.
// Graph structure (undirected):
//
//	0───1───3
//	│   │
//	2───4
//
// Starting at 0, ascending neighbors give: 0 1 3 4 2
func ExampleWalk() {
	g, err := matrix.NewAdjacency([][]int{
		{0, 1, 1, 0, 0},
		{1, 0, 0, 1, 1},
		{1, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
		{0, 1, 1, 0, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	visited := make([]bool, g.Order())
	_ = dfs.Walk(g, 0, visited, func(v int) error {
		fmt.Print(v, " ")
		return nil
	})
	fmt.Println()
	// Output:
	// 0 1 3 4 2
}

// ExampleDFS shows the pre- and post-order of a directed diamond.
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
func ExampleDFS() {
	g, _ := matrix.NewAdjacency([][]int{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("pre: ", res.Order)
	fmt.Println("post:", res.PostOrder)
	// Output:
	// pre:  [0 1 3 2]
	// post: [3 1 2 0]
}

// ExampleTopologicalSort orders the same diamond so every edge points forward.
func ExampleTopologicalSort() {
	g, _ := matrix.NewAdjacency([][]int{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	})

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [0 2 1 3]
}
