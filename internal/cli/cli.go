// Package cli implements the lvlalgo command-line driver.
//
// The driver runs the library routines on literal inputs and prints one
// result line per routine. It is built with cobra and logs through
// charmbracelet/log; results go to the CLI's output writer (stdout) and logs
// to its log writer (stderr).
//
// # Commands
//
//   - demo: run every routine on the default or a TOML exercise file
//   - sort, search, factorial, fibonacci, palindrome, reverse, maxsub, gcd:
//     run one routine on command-line arguments
//   - dfs: walk the graph of a TOML exercise file
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Version is reported by --version; set via -ldflags at build time.
var Version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Out    io.Writer
	Logger *log.Logger
}

// New creates a CLI printing results to out and logging to logw at level.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{Out: out, Logger: newLogger(logw, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lvlalgo",
		Short:        "lvlalgo runs classic algorithm exercises",
		Long:         `lvlalgo demonstrates canonical sorting, searching, recursion, string, list, array, graph and number-theory routines on literal inputs.`,
		Version:      Version,
		SilenceUsage: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.factorialCommand())
	root.AddCommand(c.fibonacciCommand())
	root.AddCommand(c.palindromeCommand())
	root.AddCommand(c.reverseCommand())
	root.AddCommand(c.maxsubCommand())
	root.AddCommand(c.gcdCommand())
	root.AddCommand(c.dfsCommand())

	return root
}
