// Copyright 2026 The quadpi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command quadpi estimates pi by parallel Simpson's-Rule quadrature in
// fixed-precision decimal arithmetic.
//
// Usage:
//
//	quadpi [iterations [workers [digits]]]
//
// All three arguments are optional; values that do not parse or are
// below 1 fall back to the defaults (20000 iterations, 8 workers, 25
// digits). Pass --v=2 for per-worker progress logging.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sjmudd/stopwatch"
	"github.com/spf13/cobra"

	"quadpi/quad"
)

const (
	defaultIterations = 20000
	defaultWorkers    = 8
	defaultDigits     = 25
)

// parseArgs maps up to three positional integer arguments onto a run
// configuration. Mirroring the atol-based reference CLI, anything that
// does not parse as a positive integer selects the default.
func parseArgs(args []string) quad.Config {
	cfg := quad.Config{
		Iterations: defaultIterations,
		Workers:    defaultWorkers,
		Prec:       defaultDigits,
	}
	if len(args) > 0 {
		if v, err := strconv.ParseInt(args[0], 10, 64); err == nil && v >= 1 {
			cfg.Iterations = v
		}
	}
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil && v >= 1 {
			cfg.Workers = v
		}
	}
	if len(args) > 2 {
		if v, err := strconv.Atoi(args[2]); err == nil && v >= 1 {
			cfg.Prec = v
		}
	}
	return cfg
}

func run(cmd *cobra.Command, args []string) error {
	cfg := parseArgs(args)

	timer := stopwatch.NewNamedStopwatch()
	timer.AddMany([]string{"calc"})
	timer.Start("calc")
	pi, err := quad.Estimate(cmd.Context(), cfg)
	timer.Stop("calc")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "The calculated value of pi is %s\n", pi.Text(0))
	fmt.Fprintf(out, "The actual value of pi is     %s\n", quad.Reference(cfg.Prec-1))
	fmt.Fprintf(out, "The time taken to calculate this was %.2f seconds\n",
		timer.Elapsed("calc").Seconds())
	return nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "quadpi [iterations [workers [digits]]]",
		Short:        "estimate pi by parallel fixed-precision quadrature",
		Args:         cobra.MaximumNArgs(3),
		RunE:         run,
		SilenceUsage: true,
	}
	// adopt glog's flags (--v, --logtostderr, ...) onto the command
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	return cmd
}

func main() {
	// glog registers itself on the standard flag set and logs to files
	// unless told otherwise; default to stderr and mark the set parsed
	// so glog stops complaining about it.
	_ = goflag.Set("logtostderr", "true")
	_ = goflag.CommandLine.Parse(nil)

	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
