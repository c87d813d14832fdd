package exercise_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalgo/dfs"
	"github.com/katalvlaran/lvlalgo/internal/exercise"
	"github.com/katalvlaran/lvlalgo/matrix"
	"github.com/katalvlaran/lvlalgo/recursion"
	"github.com/katalvlaran/lvlalgo/subarray"
)

func TestRunAll_Default(t *testing.T) {
	var out bytes.Buffer
	r := exercise.NewRunner(&out, nil)

	require.NoError(t, r.RunAll(context.Background(), exercise.Default()))

	want := []string{
		"Sorted array: 11 12 22 25 34 64 90",
		"Element found at index: 3",
		"Factorial of 5: 120",
		"Fibonacci number 10: 55",
		"Is 'racecar' a palindrome? true",
		"Is 'A man, a plan, a canal: Panama' a palindrome? true",
		"Is 'hello' a palindrome? false",
		"Reversed list: 3 2 1",
		"Maximum subarray sum: 6",
		"GCD of 48 and 18: 6",
		"DFS from 0: 0 1 3 4 2",
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunAll output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAll_DoesNotMutateInputs(t *testing.T) {
	ex := exercise.Default()
	r := exercise.NewRunner(&bytes.Buffer{}, nil)
	require.NoError(t, r.RunAll(context.Background(), ex))
	assert.Equal(t, exercise.Default().Sort.Values, ex.Sort.Values)
}

func TestRunAll_StopsAtFirstError(t *testing.T) {
	ex := exercise.Default()
	ex.Factorial.N = 30

	var out bytes.Buffer
	err := exercise.NewRunner(&out, nil).RunAll(context.Background(), ex)
	assert.ErrorIs(t, err, recursion.ErrOverflow)
	assert.ErrorContains(t, err, "factorial:")
	assert.NotContains(t, out.String(), "Fibonacci", "later steps must not run")
}

func TestRunAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := exercise.NewRunner(&out, nil).RunAll(ctx, exercise.Default())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "sort:")
	assert.Empty(t, out.String())
}

func TestRunAll_CanceledMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &cancelAfter{cancel: cancel, lines: 2}

	err := exercise.NewRunner(w, nil).RunAll(ctx, exercise.Default())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "factorial:")
	assert.Equal(t, "Sorted array: 11 12 22 25 34 64 90\nElement found at index: 3\n", w.buf.String())
}

// cancelAfter cancels its context once it has received the given number of writes.
type cancelAfter struct {
	buf    bytes.Buffer
	cancel context.CancelFunc
	lines  int
}

func (w *cancelAfter) Write(p []byte) (int, error) {
	n, err := w.buf.Write(p)
	if w.lines--; w.lines == 0 {
		w.cancel()
	}
	return n, err
}

func TestRunner_DFSFailureWritesNothing(t *testing.T) {
	var out bytes.Buffer
	r := exercise.NewRunner(&out, nil)

	assert.ErrorIs(t, r.DFS([][]int{{0, 1}, {1, 0}}, 2), dfs.ErrStartOutOfRange)
	assert.ErrorIs(t, r.DFS([][]int{{0, 1}, {1, 0}}, -1), dfs.ErrStartOutOfRange)
	assert.Empty(t, out.String())

	require.NoError(t, r.DFS([][]int{{0, 1}, {1, 0}}, 1))
	assert.Equal(t, "DFS from 1: 1 0\n", out.String())
}

func TestRunner_Errors(t *testing.T) {
	r := exercise.NewRunner(&bytes.Buffer{}, nil)

	assert.ErrorIs(t, r.MaxSubarray(nil), subarray.ErrEmptySequence)
	assert.ErrorIs(t, r.Fibonacci(-1), recursion.ErrNegative)
	assert.ErrorIs(t, r.DFS([][]int{{0, 1}}, 0), matrix.ErrNonSquare)
	assert.ErrorIs(t, r.DFS([][]int{{0}}, 4), dfs.ErrStartOutOfRange)
}

func TestRunner_SearchMissingAndUnsorted(t *testing.T) {
	var out, logs bytes.Buffer
	r := exercise.NewRunner(&out, log.New(&logs))

	require.NoError(t, r.Search([]int{1, 2, 3}, 9))
	assert.Equal(t, "Element 9 not found (index -1)\n", out.String())

	require.NoError(t, r.Search([]int{3, 1, 2}, 1))
	assert.Contains(t, logs.String(), "not ascending")
}

func TestRunner_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	r := exercise.NewRunner(&bytes.Buffer{}, logger)

	require.NoError(t, r.Sort([]int{3, 2, 1}))
	assert.Contains(t, logs.String(), "swaps=3")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestRunner_WriterErrorPropagates(t *testing.T) {
	r := exercise.NewRunner(failWriter{}, nil)
	assert.ErrorContains(t, r.GCD(4, 6), "sink closed")
	assert.ErrorContains(t, r.DFS([][]int{{0}}, 0), "sink closed")
}
