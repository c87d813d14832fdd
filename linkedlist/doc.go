// Package linkedlist provides a minimal singly-linked list of ints and
// in-place reversal.
//
// Each Node owns the node behind its Next pointer; a chain is referenced by
// its head. Reverse re-points every Next edge in a single pass without
// allocating or freeing nodes, so the original direction is lost after the
// call and callers must continue from the returned head.
//
// FromSlice, Values, Len and String exist to build and inspect chains in tests
// and drivers.
package linkedlist
