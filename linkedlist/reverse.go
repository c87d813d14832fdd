package linkedlist

// Reverse reverses the chain starting at head in place and returns the new head.
// A nil head returns nil.
//
// Time Complexity: O(n). Memory: O(1).
func Reverse(head *Node) *Node {
	var prev *Node
	cur := head
	for cur != nil {
		next := cur.Next // detach the rest of the chain
		cur.Next = prev
		prev = cur
		cur = next
	}

	return prev
}
