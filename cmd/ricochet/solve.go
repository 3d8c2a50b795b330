package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/ricochet-research/internal/plan"
	"github.com/elektrokombinacija/ricochet-research/internal/solver"
)

var (
	solveFrom    string
	solveBackend string
	solveTrace   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [problem-file]",
	Short: "Run an external solver and print the validated plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := readProblem(argOrStdin(args), solveFrom)
		if err != nil {
			return err
		}
		s, err := solver.New(solveBackend, cfg, log)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Timeout))
		defer cancel()

		start := time.Now()
		moves, err := s.Solve(ctx, p)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}
		log.WithFields(logrus.Fields{
			"solver":  s.Name(),
			"cost":    moves.Cost(),
			"elapsed": time.Since(start),
		}).Info("solved")

		if solveTrace {
			trace, err := plan.Trace(p, moves)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), trace)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cost %d\n", moves.Cost())
		for _, m := range moves {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveFrom, "from", "", "input format (default: sniff)")
	solveCmd.Flags().StringVarP(&solveBackend, "solver", "s", "ricli", "backend: asp, pddl or ricli")
	solveCmd.Flags().BoolVar(&solveTrace, "trace", false, "print a board trace of the plan")
	rootCmd.AddCommand(solveCmd)
}
