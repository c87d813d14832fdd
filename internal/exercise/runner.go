package exercise

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlalgo/dfs"
	"github.com/katalvlaran/lvlalgo/linkedlist"
	"github.com/katalvlaran/lvlalgo/matrix"
	"github.com/katalvlaran/lvlalgo/numtheory"
	"github.com/katalvlaran/lvlalgo/recursion"
	"github.com/katalvlaran/lvlalgo/search"
	"github.com/katalvlaran/lvlalgo/sorting"
	"github.com/katalvlaran/lvlalgo/subarray"
	"github.com/katalvlaran/lvlalgo/text"
)

// Runner executes routines and writes one result line each to its writer.
type Runner struct {
	out    io.Writer
	logger *log.Logger
}

// NewRunner returns a Runner writing results to out.
// A nil logger discards log output.
func NewRunner(out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Runner{out: out, logger: logger}
}

// RunAll runs every routine on ex in a fixed order and stops at the first error.
// Cancellation of ctx is checked before each routine; a canceled run returns
// an error wrapping ctx.Err().
func (r *Runner) RunAll(ctx context.Context, ex *Exercises) error {
	start := time.Now()
	steps := []struct {
		name string
		run  func() error
	}{
		{"sort", func() error { return r.Sort(ex.Sort.Values) }},
		{"search", func() error { return r.Search(ex.Search.Values, ex.Search.Target) }},
		{"factorial", func() error { return r.Factorial(ex.Factorial.N) }},
		{"fibonacci", func() error { return r.Fibonacci(ex.Fibonacci.N) }},
		{"palindrome", func() error { return r.Palindrome(ex.Palindrome.Texts...) }},
		{"reverse", func() error { return r.Reverse(ex.Reverse.Values) }},
		{"subarray", func() error { return r.MaxSubarray(ex.Subarray.Values) }},
		{"gcd", func() error { return r.GCD(ex.GCD.A, ex.GCD.B) }},
		{"dfs", func() error { return r.DFS(ex.DFS.Matrix, ex.DFS.Start) }},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	r.logger.Infof("Ran %d exercises (%s)", len(steps), time.Since(start).Round(time.Microsecond))

	return nil
}

// Sort sorts a copy of values and prints it.
func (r *Runner) Sort(values []int) error {
	a := append([]int(nil), values...)
	st := sorting.BubbleSortWithStats(a)
	r.logger.Debug("bubble sort", "n", len(a), "passes", st.Passes, "swaps", st.Swaps)

	return r.printf("Sorted array: %s\n", joinInts(a))
}

// Search looks for target in the ascending values.
func (r *Runner) Search(values []int, target int) error {
	if !sorting.IsSorted(values) {
		r.logger.Warn("search input is not ascending, result is unspecified", "values", values)
	}
	i, ok := search.Lookup(values, target)
	if !ok {
		return r.printf("Element %d not found (index %d)\n", target, search.NotFound)
	}

	return r.printf("Element found at index: %d\n", i)
}

// Factorial prints n!.
func (r *Runner) Factorial(n int) error {
	f, err := recursion.Factorial(n)
	if err != nil {
		return err
	}

	return r.printf("Factorial of %d: %d\n", n, f)
}

// Fibonacci prints F(n).
func (r *Runner) Fibonacci(n int) error {
	f, err := recursion.Fibonacci(n)
	if err != nil {
		return err
	}

	return r.printf("Fibonacci number %d: %d\n", n, f)
}

// Palindrome prints one verdict per text.
func (r *Runner) Palindrome(texts ...string) error {
	for _, s := range texts {
		r.logger.Debug("normalized", "text", s, "norm", text.Normalize(s))
		if err := r.printf("Is '%s' a palindrome? %t\n", s, text.IsPalindrome(s)); err != nil {
			return err
		}
	}

	return nil
}

// Reverse builds a chain from values, reverses it and prints it.
func (r *Runner) Reverse(values []int) error {
	head := linkedlist.Reverse(linkedlist.FromSlice(values))
	r.logger.Debug("reversed list", "len", head.Len())

	return r.printf("Reversed list: %s\n", joinInts(head.Values()))
}

// MaxSubarray prints the maximum subarray sum and where it lies.
func (r *Runner) MaxSubarray(values []int) error {
	sp, err := subarray.MaxSubarray(values)
	if err != nil {
		return err
	}
	r.logger.Debug("max subarray", "start", sp.Start, "end", sp.End)

	return r.printf("Maximum subarray sum: %d\n", sp.Sum)
}

// GCD prints gcd(a, b).
func (r *Runner) GCD(a, b int) error {
	return r.printf("GCD of %d and %d: %d\n", a, b, numtheory.GCD(a, b))
}

// DFS walks the graph from start and prints the visit order.
// Nothing is written when the walk fails.
func (r *Runner) DFS(rows [][]int, start int) error {
	g, err := matrix.NewAdjacency(rows)
	if err != nil {
		return err
	}

	var line strings.Builder
	fmt.Fprintf(&line, "DFS from %d:", start)
	visited := make([]bool, g.Order())
	err = dfs.Walk(g, start, visited, func(v int) error {
		fmt.Fprintf(&line, " %d", v)
		return nil
	})
	if err != nil {
		return err
	}

	return r.printf("%s\n", line.String())
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)

	return err
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
