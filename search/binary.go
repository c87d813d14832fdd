package search

// NotFound is returned by BinarySearch when target is absent.
const NotFound = -1

// Lookup bisects the ascending slice a for target.
// It returns (i, true) with a[i] == target, or (0, false) when target is absent.
// With duplicates, any matching index may be returned.
func Lookup(a []int, target int) (int, bool) {
	left, right := 0, len(a)-1
	for left <= right {
		// midpoint without left+right overflow
		mid := left + (right-left)/2

		switch {
		case a[mid] == target:
			return mid, true
		case a[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return 0, false
}

// BinarySearch returns the index of target in the ascending slice a,
// or NotFound if target does not occur.
func BinarySearch(a []int, target int) int {
	if i, ok := Lookup(a, target); ok {
		return i
	}

	return NotFound
}
