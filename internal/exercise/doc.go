// Package exercise runs every lvlalgo routine on a set of literal inputs and
// reports the results as text, one line per routine.
//
// Inputs come from Default (the classic demonstration values) or from a TOML
// exercise file decoded over the defaults, so a file only needs the sections
// it wants to change:
//
//	[search]
//	values = [1, 3, 5, 7, 9]
//	target = 7
//
//	[dfs]
//	start  = 0
//	matrix = [[0, 1], [1, 0]]
//
// Results go to the Runner's writer; progress and timings go to its logger.
package exercise
