// Package subarray finds the maximum-sum contiguous subarray of an int slice
// using Kadane's algorithm.
//
// Algorithm:
//  1. running = best = a[0].
//  2. For each following x: running = max(x, running+x); best = max(best, running).
//  3. Return best.
//
// All-negative input returns its largest (least negative) element, never 0,
// since the empty subarray is not a candidate.
//
// Errors:
//
//   - ErrEmptySequence  the input has no elements
//
// Complexity:
//
//   - Time:   O(n)
//   - Memory: O(1)
package subarray
