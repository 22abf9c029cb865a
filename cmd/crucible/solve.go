package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/crucible/astar"
	"github.com/katalvlaran/crucible/gridcost"
	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/internal/logging"
	"github.com/katalvlaran/crucible/internal/telemetry"
)

var solveFlags struct {
	input         string
	policies      []string
	path          bool
	metrics       bool
	maxExpansions int
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a cost grid under one or more move policies",
	Long: `Read a grid of single-digit costs, one row per line, and print the
minimum heat loss from the top-left to the bottom-right cell for each policy.

Output is one line per policy: "<name>: <cost>", or "<name>: unreachable"
when no route satisfies the policy.

Examples:
  # Both built-in policies
  crucible solve --input day17.txt

  # Only the extended policy, with its route
  crucible solve -i day17.txt --policy extended --path

  # Dump Prometheus metrics to stderr after solving
  crucible solve -i day17.txt --metrics`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFlags.input, "input", "i", "", "grid file (overrides config input)")
	solveCmd.Flags().StringSliceVarP(&solveFlags.policies, "policy", "p", nil, "policy names to run (default: all configured)")
	solveCmd.Flags().BoolVar(&solveFlags.path, "path", false, "print the route taken")
	solveCmd.Flags().BoolVar(&solveFlags.metrics, "metrics", false, "write Prometheus metrics to stderr")
	solveCmd.Flags().IntVar(&solveFlags.maxExpansions, "max-expansions", 0, "abort a search after this many expansions (0 = unlimited)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return &ConfigError{Source: cfgFile, Err: err}
	}

	// Flags override the file.
	if solveFlags.input != "" {
		cfg.Input = solveFlags.input
	}
	if cfg.Input == "" {
		return &ConfigError{Source: "input", Err: errNoInput}
	}
	if err := cfg.Select(solveFlags.policies); err != nil {
		return &ConfigError{Source: "--policy", Err: err}
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if solveFlags.metrics {
		cfg.Metrics.Enabled = true
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return &ConfigError{Source: "logging", Err: err}
	}
	logger, _ = logging.WithRunID(logger)

	policies, err := cfg.SearchPolicies()
	if err != nil {
		return &ConfigError{Source: "policies", Err: err}
	}

	g, err := loadGrid(cfg.Input)
	if err != nil {
		return &SolveError{Stage: "grid", Err: err}
	}
	logger.Debug("grid loaded",
		"input", cfg.Input,
		"width", g.Width,
		"height", g.Height,
		"min_cost", g.MinCost(),
	)
	for _, p := range policies {
		logger.Debug("policy configured",
			"policy", p.String(),
			"max_states", p.MaxStates(g.Width, g.Height),
		)
	}

	var opts []astar.Option
	if solveFlags.path {
		opts = append(opts, astar.WithReturnPath())
	}
	if solveFlags.maxExpansions != 0 {
		opts = append(opts, astar.WithMaxExpansions(solveFlags.maxExpansions))
	}

	results, err := astar.SolveAll(g, policies, opts...)
	if err != nil {
		return &SolveError{Stage: "search", Err: err}
	}

	collector := telemetry.NewCollector(cfg.Metrics)
	out := cmd.OutOrStdout()
	for _, res := range results {
		collector.Observe(res)
		logResult(logger, res)
		writeResult(out, res, solveFlags.path)
	}

	if collector.Enabled() {
		if err := collector.WriteText(cmd.ErrOrStderr()); err != nil {
			return &SolveError{Stage: "metrics", Err: err}
		}
	}

	return nil
}

func loadGrid(path string) (*gridcost.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid: %w", err)
	}
	defer f.Close()

	g, err := gridcost.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse grid %q: %w", path, err)
	}

	return g, nil
}

func logResult(logger *slog.Logger, res astar.Result) {
	logger.Info("search finished",
		"policy", res.Policy.String(),
		"status", res.Status.String(),
		"cost", res.Cost,
		"expanded", res.Expanded,
		"pushed", res.Pushed,
		"stale", res.Stale,
		"elapsed", res.Elapsed,
	)
}

func writeResult(w io.Writer, res astar.Result, withPath bool) {
	if !res.Reachable() {
		fmt.Fprintf(w, "%s: unreachable\n", res.Policy.Name)
		return
	}
	fmt.Fprintf(w, "%s: %d\n", res.Policy.Name, res.Cost)

	if withPath && len(res.Path) > 0 {
		steps := make([]string, len(res.Path))
		for i, s := range res.Path {
			steps[i] = s.Pos.String()
		}
		fmt.Fprintf(w, "  path: %s\n", strings.Join(steps, " "))
	}
}
