package linkedlist_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalgo/linkedlist"
)

func ExampleReverse() {
	head := linkedlist.FromSlice([]int{1, 2, 3})
	fmt.Println(head)
	head = linkedlist.Reverse(head)
	fmt.Println(head)
	// Output:
	// 1 -> 2 -> 3
	// 3 -> 2 -> 1
}
