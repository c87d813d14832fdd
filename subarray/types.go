package subarray

import "errors"

// ErrEmptySequence indicates an empty input slice.
var ErrEmptySequence = errors.New("subarray: input sequence must be non-empty")

// Span is a maximum-sum subarray a[Start:End] together with its Sum.
type Span struct {
	Start int // first index, inclusive
	End   int // last index, exclusive
	Sum   int
}
