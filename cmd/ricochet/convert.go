package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert [problem-file]",
	Short: "Convert a problem between the asp, pddl and compact formats",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := readProblem(argOrStdin(args), convertFrom)
		if err != nil {
			return err
		}
		out, err := encoding.Encode(p, convertTo)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "input format (default: sniff)")
	convertCmd.Flags().StringVar(&convertTo, "to", encoding.FormatASP, "output format: asp, pddl or compact")
	rootCmd.AddCommand(convertCmd)
}
