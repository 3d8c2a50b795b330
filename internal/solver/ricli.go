package solver

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/config"
	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

// Ricli runs the domain-dependent solver, which takes the compact board
// format on stdin and prints the cost followed by one move per line.
type Ricli struct {
	cfg config.Ricli
	log *logrus.Entry
}

// NewRicli returns a domain-dependent backend for the given
// configuration.
func NewRicli(cfg config.Ricli, log *logrus.Logger) *Ricli {
	return &Ricli{cfg: cfg, log: log.WithField("solver", "ricli")}
}

// Name implements Solver.
func (s *Ricli) Name() string { return "ricli" }

// Solve implements Solver.
func (s *Ricli) Solve(ctx context.Context, p *board.Problem) (plan.Plan, error) {
	text, err := encoding.EncodeCompact(p)
	if err != nil {
		return nil, err
	}

	out, runErr := run(ctx, s.log, s.cfg.Bin, s.cfg.Args, strings.NewReader(text))

	moves, _, err := plan.DecodeSolverOutput(out)
	if err != nil {
		if runErr != nil {
			return nil, runErr
		}
		return nil, err
	}
	return validate(p, moves)
}
