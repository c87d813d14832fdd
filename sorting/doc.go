// Package sorting implements in-place comparison sorting of integer slices.
//
// What:
//
//   - BubbleSort: repeatedly sweeps the slice, swapping adjacent elements that
//     are out of order, until the largest remaining element has bubbled to the
//     end of the unsorted prefix.
//   - BubbleSortWithStats: the same sweep with early exit on a swap-free pass,
//     reporting how many passes and swaps were made.
//   - IsSorted: ascending-order check.
//
// Guarantees:
//
//   - Ascending order on return.
//   - Stable: equal elements are never swapped.
//   - Empty and single-element slices are left untouched.
//
// Complexity:
//
//   - Time:   O(n²) comparisons in the worst case, O(n) for BubbleSortWithStats
//     on already-sorted input.
//   - Memory: O(1) extra.
package sorting
