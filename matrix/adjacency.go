package matrix

import "fmt"

// defaultReserve is the initial capacity for neighbor slices
const defaultReserve = 8

// Adjacency is an immutable N×N 0/1 adjacency matrix over vertices 0..N-1.
//
// Memory: O(V²) booleans.
type Adjacency struct {
	n    int
	data []bool // row-major, data[i*n+j] reports edge i→j
}

// NewAdjacency validates rows and copies them into a new Adjacency.
// Later changes to rows do not affect the matrix.
//
// Returns ErrBadShape for zero rows, ErrNonSquare for a row of the wrong
// length and ErrBadEntry for a value outside {0, 1}.
//
// Time Complexity: O(V²)
func NewAdjacency(rows [][]int) (*Adjacency, error) {
	// 1. Validate shape
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}

	// 2. Copy row by row, validating as we go
	data := make([]bool, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				data[i*n+j] = true
			default:
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrBadEntry, i, j, v)
			}
		}
	}

	return &Adjacency{n: n, data: data}, nil
}

// Order returns the number of vertices. A nil matrix has order 0.
func (m *Adjacency) Order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// HasEdge reports whether edge i→j exists. Out-of-range indices report false.
func (m *Adjacency) HasEdge(i, j int) bool {
	if m == nil || i < 0 || j < 0 || i >= m.n || j >= m.n {
		return false
	}

	return m.data[i*m.n+j]
}

// Neighbors returns every j with edge i→j, in ascending order.
//
// Time Complexity: O(V)
func (m *Adjacency) Neighbors(i int) ([]int, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("%w: vertex %d, order %d", ErrOutOfRange, i, m.n)
	}

	out := make([]int, 0, defaultReserve)
	row := m.data[i*m.n : (i+1)*m.n]
	for j, ok := range row {
		if ok {
			out = append(out, j)
		}
	}

	return out, nil
}

// Rows returns a fresh [][]int copy of the matrix.
func (m *Adjacency) Rows() [][]int {
	if m == nil {
		return nil
	}
	rows := make([][]int, m.n)
	for i := range rows {
		rows[i] = make([]int, m.n)
		for j := range rows[i] {
			if m.data[i*m.n+j] {
				rows[i][j] = 1
			}
		}
	}

	return rows
}
