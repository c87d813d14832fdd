// Package recursion provides the classic recursively-defined integer
// sequences: factorial and Fibonacci.
//
// Both are computed iteratively so that call-stack depth stays constant for
// any n; the multiplication and addition order is the one the textbook
// recursion performs while unwinding.
//
// Fixed-width results use int64. The largest inputs that fit are exported as
// MaxFactorialN (20) and MaxFibonacciN (92); beyond them ErrOverflow is
// returned instead of a silently wrapped value. FactorialBig and FibonacciBig
// lift the limit using math/big.
//
// Errors:
//
//   - ErrNegative  n < 0
//   - ErrOverflow  result does not fit in int64
//
// Complexity:
//
//   - Factorial:      Time O(n), Memory O(1)
//   - Fibonacci:      Time O(n), Memory O(1) (two rolling accumulators)
//   - FibonacciTable: Time O(n), Memory O(n) (bottom-up tabulation)
package recursion
