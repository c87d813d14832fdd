package sorting

// BubbleSort sorts a in ascending order, in place.
//
// Pass i compares the pairs (a[j], a[j+1]) for j in [0, n-i-1) and swaps
// them when a[j] > a[j+1]; after the pass a[n-i-1] holds its final value.
//
// Time Complexity: O(n²). Memory: O(1).
func BubbleSort(a []int) {
	n := len(a)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}

// BubbleSortWithStats sorts a like BubbleSort but stops as soon as a pass
// makes no swaps, and reports the passes and swaps it performed.
// The resulting order is identical to BubbleSort.
func BubbleSortWithStats(a []int) Stats {
	var st Stats
	n := len(a)
	for i := 0; i < n-1; i++ {
		// 1. Sweep the unsorted prefix
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				st.Swaps++
				swapped = true
			}
		}
		st.Passes++

		// 2. A clean pass means the prefix is already ordered
		if !swapped {
			break
		}
	}

	return st
}

// IsSorted reports whether every element of a is ≤ its successor.
// Empty and single-element slices are sorted.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}

	return true
}
