// Package lvlalgo is a small playground of canonical algorithms and data
// structures, written for demonstration and for checking exercise solutions.
//
// 🚀 What is inside?
//
//	One package per routine family; only dfs builds on matrix:
//		• sorting    : in-place bubble sort
//		• search     : binary search with sentinel or (index, ok) result
//		• recursion  : factorial and Fibonacci (rolling and tabulated)
//		• text       : palindrome check with ASCII normalization
//		• linkedlist : singly-linked list and in-place reversal
//		• subarray   : maximum-sum contiguous subarray (Kadane)
//		• matrix     : validated 0/1 adjacency matrix
//		• dfs        : depth-first walk and topological sort over a matrix
//		• numtheory  : Euclidean GCD and LCM
//
// ✨ Conventions
//
//   - Pure functions or in-place mutation of caller-owned arguments; no
//     package keeps state between calls.
//   - Precondition failures that are cheap to detect return sentinel errors
//     (errors.Is); absence, as in search, is a value, not an error.
//   - No recursion on input-sized depth: traversals use explicit stacks.
//
// Quick ASCII example (dfs):
//
//	0───1───3
//	│   │
//	2───4
//
// walked from 0 with ascending neighbors visits 0 1 3 4 2.
//
// The cmd/lvlalgo driver runs every routine on the demonstration inputs:
//
//	go run ./cmd/lvlalgo demo
package lvlalgo
