// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and indexers return these sentinels, wrapped with
// positional context via %w; callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the input has no rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a row's length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBadEntry signals an entry other than 0 or 1.
	ErrBadEntry = errors.New("matrix: entry must be 0 or 1")

	// ErrOutOfRange indicates a vertex index outside [0, Order()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Adjacency receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
