package numtheory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlalgo/numtheory"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{48, 18, 6},
		{18, 48, 6},
		{17, 5, 1},
		{0, 9, 9},
		{9, 0, 9},
		{0, 0, 0},
		{-48, 18, 6},
		{48, -18, 6},
		{-48, -18, 6},
		{270, 192, 6},
		{7, 7, 7},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, numtheory.GCD(tc.a, tc.b), "GCD(%d, %d)", tc.a, tc.b)
	}
}

// TestGCD_DividesBoth checks the result divides both operands over a small grid.
func TestGCD_DividesBoth(t *testing.T) {
	for a := -20; a <= 20; a++ {
		for b := -20; b <= 20; b++ {
			g := numtheory.GCD(a, b)
			if g == 0 {
				assert.True(t, a == 0 && b == 0)
				continue
			}
			assert.Zero(t, a%g)
			assert.Zero(t, b%g)
		}
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 144, numtheory.LCM(48, 18))
	assert.Equal(t, 144, numtheory.LCM(-48, 18))
	assert.Equal(t, 0, numtheory.LCM(0, 5))
	assert.Equal(t, 35, numtheory.LCM(5, 7))
}

// TestGCD_MinInt pins the documented limit: the magnitude of math.MinInt
// does not fit in an int, so negation leaves it unchanged.
func TestGCD_MinInt(t *testing.T) {
	assert.Equal(t, math.MinInt, numtheory.GCD(math.MinInt, 0))
	assert.Equal(t, math.MinInt, numtheory.GCD(0, math.MinInt))
	assert.Equal(t, math.MinInt, numtheory.GCD(math.MinInt, math.MinInt))
	assert.Equal(t, 2, numtheory.GCD(math.MinInt, 6))
	assert.Equal(t, 1, numtheory.GCD(math.MinInt, 3))
}
