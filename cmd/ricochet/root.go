package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/config"
	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
)

var (
	cfgPath string
	verbose bool

	cfg *config.Config
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "ricochet",
	Short: "Ricochet Robots research toolchain",
	Long: `Convert Ricochet Robots problems between the ASP, PDDL and compact
solver formats, draw boards, run external solvers and validate the
plans they produce.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if cfgPath == "" {
			cfg = config.Default()
			return nil
		}
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "solver configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// readInput reads a file argument, with "" and "-" meaning stdin.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// readProblem loads a problem file, sniffing the format when none is
// forced.
func readProblem(path, format string) (*board.Problem, error) {
	text, err := readInput(path)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = encoding.Sniff(text)
		log.WithField("format", format).Debug("sniffed problem format")
	}
	return encoding.Decode(text, format)
}

func argOrStdin(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}
