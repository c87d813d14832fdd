package recursion

import "errors"

const (
	// MaxFactorialN is the largest n with n! representable as int64.
	MaxFactorialN = 20

	// MaxFibonacciN is the largest n with F(n) representable as int64.
	MaxFibonacciN = 92
)

var (
	// ErrNegative indicates a negative argument.
	ErrNegative = errors.New("recursion: n must be non-negative")

	// ErrOverflow indicates the result exceeds the int64 range.
	ErrOverflow = errors.New("recursion: result overflows int64")
)
