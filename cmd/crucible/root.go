package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "crucible",
	Short: "Crucible - constrained shortest-path solver for cost grids",
	Long: `Crucible computes the minimum accumulated cost of moving from the top-left
to the bottom-right cell of a digit grid, when the mover may not reverse
and must respect a per-policy minimum and maximum straight-line run.

Two policies are built in:
  - standard: turn at will, at most 3 steps in a straight line
  - extended: at least 4 and at most 10 steps before turning or stopping`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "crucible.yaml", "config file path (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
