// Package numtheory provides greatest common divisor and least common
// multiple over machine ints using the Euclidean algorithm.
//
// Results are non-negative whenever they fit in an int: GCD(-48, 18) = 6,
// and GCD(0, 0) = 0.
//
// Limits: |math.MinInt| has no int representation, so GCD(math.MinInt, 0)
// and GCD(math.MinInt, math.MinInt) return math.MinInt. LCM wraps silently
// when the true result exceeds math.MaxInt; use math/big for such inputs.
package numtheory
