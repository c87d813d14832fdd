package exercise

import "errors"

// ErrUnknownKey is returned by Load and Decode when the file holds keys that
// map to no exercise field, which is almost always a typo.
var ErrUnknownKey = errors.New("exercise: unknown key")

// Exercises holds the inputs for one run of every routine.
type Exercises struct {
	Sort       Values     `toml:"sort"`
	Search     Search     `toml:"search"`
	Factorial  Number     `toml:"factorial"`
	Fibonacci  Number     `toml:"fibonacci"`
	Palindrome Palindrome `toml:"palindrome"`
	Reverse    Values     `toml:"reverse"`
	Subarray   Values     `toml:"subarray"`
	GCD        Pair       `toml:"gcd"`
	DFS        Graph      `toml:"dfs"`
}

// Values is a plain integer sequence input.
type Values struct {
	Values []int `toml:"values"`
}

// Search is an ascending sequence and the value to look for.
type Search struct {
	Values []int `toml:"values"`
	Target int   `toml:"target"`
}

// Number is a single non-negative argument.
type Number struct {
	N int `toml:"n"`
}

// Palindrome lists the strings to test.
type Palindrome struct {
	Texts []string `toml:"texts"`
}

// Pair is a two-argument input.
type Pair struct {
	A int `toml:"a"`
	B int `toml:"b"`
}

// Graph is a 0/1 adjacency matrix and the traversal start vertex.
type Graph struct {
	Start  int     `toml:"start"`
	Matrix [][]int `toml:"matrix"`
}

// Default returns the classic demonstration inputs. Each call returns fresh slices.
func Default() *Exercises {
	return &Exercises{
		Sort:      Values{Values: []int{64, 34, 25, 12, 22, 11, 90}},
		Search:    Search{Values: []int{2, 3, 4, 10, 40}, Target: 10},
		Factorial: Number{N: 5},
		Fibonacci: Number{N: 10},
		Palindrome: Palindrome{Texts: []string{
			"racecar",
			"A man, a plan, a canal: Panama",
			"hello",
		}},
		Reverse:  Values{Values: []int{1, 2, 3}},
		Subarray: Values{Values: []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}},
		GCD:      Pair{A: 48, B: 18},
		DFS: Graph{
			Start: 0,
			Matrix: [][]int{
				{0, 1, 1, 0, 0},
				{1, 0, 0, 1, 1},
				{1, 0, 0, 0, 1},
				{0, 1, 0, 0, 0},
				{0, 1, 1, 0, 0},
			},
		},
	}
}
