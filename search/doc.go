// Package search implements binary search over ascending-sorted integer slices.
//
// Two entry points are offered:
//
//   - Lookup(a, target) (int, bool): explicit "found at k" / "not found" result.
//   - BinarySearch(a, target) int: the classic sentinel form returning NotFound (-1).
//
// Absence is a normal outcome, never an error.
//
// Caller contract: a must already be sorted ascending. The slice is not
// checked; on unsorted input the result is unspecified (but the call still
// terminates and never indexes out of range).
//
// Complexity:
//
//   - Time:   O(log n)
//   - Memory: O(1)
package search
