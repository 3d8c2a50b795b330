package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/ricochet-research/internal/render"
)

var (
	drawFrom  string
	drawWide  bool
	drawColor bool
)

var drawCmd = &cobra.Command{
	Use:   "draw [problem-file]",
	Short: "Draw a problem board as ASCII art",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := readProblem(argOrStdin(args), drawFrom)
		if err != nil {
			return err
		}

		var out string
		if drawWide {
			out = render.Wide(p.Board, p.Robots, p.Goal, "")
		} else {
			out = render.Compact(p.Board, p.Robots, p.Goal)
		}
		if drawColor {
			out = render.Colorize(out, termenv.ColorProfile())
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	drawCmd.Flags().StringVar(&drawFrom, "from", "", "input format (default: sniff)")
	drawCmd.Flags().BoolVar(&drawWide, "wide", false, "two characters per cell")
	drawCmd.Flags().BoolVar(&drawColor, "color", false, "tint robots with terminal colors")
	rootCmd.AddCommand(drawCmd)
}
