package subarray

// MaxSubarraySum returns the largest sum of any non-empty contiguous subarray of a.
func MaxSubarraySum(a []int) (int, error) {
	if len(a) == 0 {
		return 0, ErrEmptySequence
	}

	best, running := a[0], a[0]
	for _, x := range a[1:] {
		running = max(x, running+x)
		best = max(best, running)
	}

	return best, nil
}

// MaxSubarray runs the same scan as MaxSubarraySum and also reports where the
// maximum lies. Among equal sums the earliest-ending subarray wins, and a run
// is extended rather than restarted when both choices tie.
func MaxSubarray(a []int) (Span, error) {
	if len(a) == 0 {
		return Span{}, ErrEmptySequence
	}

	best := Span{Start: 0, End: 1, Sum: a[0]}
	start, running := 0, a[0]
	for i := 1; i < len(a); i++ {
		// 1. Restart the run when the prefix only drags the sum down
		if running < 0 {
			start, running = i, a[i]
		} else {
			running += a[i]
		}

		// 2. Record a strictly better run
		if running > best.Sum {
			best = Span{Start: start, End: i + 1, Sum: running}
		}
	}

	return best, nil
}
