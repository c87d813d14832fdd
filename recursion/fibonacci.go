package recursion

import (
	"fmt"
	"math/big"
)

// Fibonacci returns F(n) with F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2).
// Valid for 0 ≤ n ≤ MaxFibonacciN.
//
// Two rolling accumulators replace the n+1 table of FibonacciTable;
// the values produced are identical.
func Fibonacci(n int) (int64, error) {
	if err := checkFibonacci(n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return int64(n), nil
	}

	prev, curr := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr, nil
}

// FibonacciTable returns the bottom-up table [F(0), F(1), …, F(n)] of length n+1.
func FibonacciTable(n int) ([]int64, error) {
	if err := checkFibonacci(n); err != nil {
		return nil, err
	}

	// 1. Seed the base cases
	table := make([]int64, n+1)
	if n >= 1 {
		table[1] = 1
	}

	// 2. Fill each cell from the two below it
	for i := 2; i <= n; i++ {
		table[i] = table[i-1] + table[i-2]
	}

	return table, nil
}

// FibonacciBig returns F(n) with arbitrary precision.
func FibonacciBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: fibonacci(%d)", ErrNegative, n)
	}

	prev, curr := big.NewInt(0), big.NewInt(1)
	if n == 0 {
		return prev, nil
	}
	for i := 2; i <= n; i++ {
		prev.Add(prev, curr)
		prev, curr = curr, prev
	}

	return curr, nil
}

func checkFibonacci(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: fibonacci(%d)", ErrNegative, n)
	}
	if n > MaxFibonacciN {
		return fmt.Errorf("%w: fibonacci(%d), max n is %d", ErrOverflow, n, MaxFibonacciN)
	}

	return nil
}
