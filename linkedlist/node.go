package linkedlist

import (
	"strconv"
	"strings"
)

// Node is one element of a singly-linked list.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a chain holding vals in order and returns its head,
// or nil for an empty slice.
func FromSlice(vals []int) *Node {
	var head *Node
	for i := len(vals) - 1; i >= 0; i-- {
		head = &Node{Val: vals[i], Next: head}
	}

	return head
}

// Values returns the chain's values from n to the tail. A nil receiver yields nil.
func (n *Node) Values() []int {
	var out []int
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}

	return out
}

// Len counts the nodes from n to the tail.
func (n *Node) Len() int {
	c := 0
	for cur := n; cur != nil; cur = cur.Next {
		c++
	}

	return c
}

// String renders the chain as "1 -> 2 -> 3"; an empty chain is "nil".
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var b strings.Builder
	for cur := n; cur != nil; cur = cur.Next {
		if cur != n {
			b.WriteString(" -> ")
		}
		b.WriteString(strconv.Itoa(cur.Val))
	}

	return b.String()
}
