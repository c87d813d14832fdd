package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/search"
)

func ExampleBinarySearch() {
	arr := []int{2, 3, 4, 10, 40}
	fmt.Println("Element found at index:", search.BinarySearch(arr, 10))
	fmt.Println("Missing:", search.BinarySearch(arr, 11))
	// Output:
	// Element found at index: 3
	// Missing: -1
}

func ExampleLookup() {
	if i, ok := search.Lookup([]int{1, 3, 5}, 5); ok {
		fmt.Println("found at", i)
	}
	// Output:
	// found at 2
}
