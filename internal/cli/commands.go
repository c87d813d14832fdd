package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalgo/internal/exercise"
)

// runner returns a Runner printing to c.Out and logging through the
// logger carried by ctx.
func (c *CLI) runner(ctx context.Context) *exercise.Runner {
	return exercise.NewRunner(c.Out, loggerFromContext(ctx))
}

// loadExercises returns the defaults, or the TOML file at path when set.
func (c *CLI) loadExercises(ctx context.Context, path string) (*exercise.Exercises, error) {
	if path == "" {
		return exercise.Default(), nil
	}
	loggerFromContext(ctx).Debug("loading exercises", "path", path)

	return exercise.Load(path)
}

func (c *CLI) demoCommand() *cobra.Command {
	var inputs string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every routine on the demonstration inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := c.loadExercises(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).RunAll(cmd.Context(), ex)
		},
	}
	cmd.Flags().StringVarP(&inputs, "inputs", "i", "", "TOML exercise file overriding the defaults")

	return cmd
}

func (c *CLI) sortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort N...",
		Short: "Bubble sort the given integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).Sort(values)
		},
	}
}

func (c *CLI) searchCommand() *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "search --target T N...",
		Short: "Binary search ascending integers for a target",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).Search(values, target)
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "value to look for")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func (c *CLI) factorialCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "factorial N",
		Short: "Compute N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).Factorial(n)
		},
	}
}

func (c *CLI) fibonacciCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fibonacci N",
		Short: "Compute the Nth Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).Fibonacci(n)
		},
	}
}

func (c *CLI) palindromeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome TEXT...",
		Short: "Check whether each text is a palindrome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runner(cmd.Context()).Palindrome(args...)
		},
	}
}

func (c *CLI) reverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse N...",
		Short: "Reverse a linked list built from the given integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).Reverse(values)
		},
	}
}

func (c *CLI) maxsubCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maxsub N...",
		Short: "Maximum contiguous subarray sum (Kadane)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).MaxSubarray(values)
		},
	}
}

func (c *CLI) gcdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd A B",
		Short: "Greatest common divisor of A and B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ab, err := parseInts(args)
			if err != nil {
				return err
			}

			return c.runner(cmd.Context()).GCD(ab[0], ab[1])
		},
	}
}

func (c *CLI) dfsCommand() *cobra.Command {
	var (
		inputs string
		start  int
	)
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first walk of the exercise graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := c.loadExercises(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("start") {
				ex.DFS.Start = start
			}

			return c.runner(cmd.Context()).DFS(ex.DFS.Matrix, ex.DFS.Start)
		},
	}
	cmd.Flags().StringVarP(&inputs, "inputs", "i", "", "TOML exercise file holding the [dfs] graph")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start vertex (overrides the file)")

	return cmd
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}

	return v, nil
}
