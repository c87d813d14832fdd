package numtheory

// GCD returns the greatest common divisor of a and b by repeated remainder
// reduction (a, b) ← (b, a mod b) until b is zero.
// When the result would be |math.MinInt|, which no int can hold, it returns
// math.MinInt, the one negative result.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	// Go's % keeps the dividend's sign
	if a < 0 {
		return -a
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// A result above math.MaxInt wraps.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}
