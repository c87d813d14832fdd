package recursion

import (
	"fmt"
	"math/big"
)

// Factorial returns n! for 0 ≤ n ≤ MaxFactorialN.
// Factorial(0) = Factorial(1) = 1.
//
// The product is accumulated bottom-up (2·1, 3·2!, …) in int64, the same
// order the recursive definition n·(n-1)! unwinds in.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial(%d)", ErrNegative, n)
	}
	if n > MaxFactorialN {
		return 0, fmt.Errorf("%w: factorial(%d), max n is %d", ErrOverflow, n, MaxFactorialN)
	}

	acc := int64(1)
	for k := 2; k <= n; k++ {
		acc *= int64(k) // widen k before multiplying
	}

	return acc, nil
}

// FactorialBig returns n! with arbitrary precision.
func FactorialBig(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial(%d)", ErrNegative, n)
	}

	// MulRange(1, 0) is the empty product, 1.
	return new(big.Int).MulRange(1, int64(n)), nil
}
