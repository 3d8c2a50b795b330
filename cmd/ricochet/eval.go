package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

var (
	evalFrom   string
	evalExpand bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <problem-file> <plan-file>",
	Short: "Validate a solver plan by replaying it on the board",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := readProblem(args[0], evalFrom)
		if err != nil {
			return err
		}
		text, err := readInput(args[1])
		if err != nil {
			return err
		}
		moves, err := readPlan(text)
		if err != nil {
			return err
		}

		if evalExpand {
			full, err := plan.Expand(p, moves)
			if err != nil {
				return err
			}
			for _, line := range full {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		}

		final, err := plan.Replay(p, moves)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "plan valid, cost %d, final positions %v\n", moves.Cost(), final)
		return nil
	},
}

// readPlan accepts any of the three plan shapes: PDDL skeleton actions,
// the domain-dependent solver's cost-and-moves output, or raw ASP
// solver logs.
func readPlan(text string) (plan.Plan, error) {
	if strings.Contains(text, "(go") {
		return plan.DecodePlanFile(text)
	}
	if moves, _, err := plan.DecodeSolverOutput(text); err == nil {
		return moves, nil
	}
	return plan.DecodeASPOutput(text)
}

func init() {
	evalCmd.Flags().StringVar(&evalFrom, "from", "", "problem format (default: sniff)")
	evalCmd.Flags().BoolVar(&evalExpand, "expand", false, "print the fully expanded ground plan")
	rootCmd.AddCommand(evalCmd)
}
