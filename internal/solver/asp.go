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

// ASP runs an answer-set solver. The problem is passed as facts on
// stdin; the game encoding file, if configured, is appended to the
// argument list.
type ASP struct {
	cfg config.ASPSolver
	log *logrus.Entry
}

// NewASP returns an ASP backend for the given configuration.
func NewASP(cfg config.ASPSolver, log *logrus.Logger) *ASP {
	return &ASP{cfg: cfg, log: log.WithField("solver", "asp")}
}

// Name implements Solver.
func (s *ASP) Name() string { return "asp" }

// Solve implements Solver.
func (s *ASP) Solve(ctx context.Context, p *board.Problem) (plan.Plan, error) {
	facts, err := encoding.EncodeASP(p)
	if err != nil {
		return nil, err
	}

	args := s.cfg.Args
	if s.cfg.Encoding != "" {
		args = append(append([]string(nil), args...), s.cfg.Encoding)
	}
	out, runErr := run(ctx, s.log, s.cfg.Bin, args, strings.NewReader(facts))

	moves, err := plan.DecodeASPOutput(out)
	if err != nil {
		// Unsatisfiable or garbage output; the exec error, when
		// present, is the more telling of the two.
		if runErr != nil {
			return nil, runErr
		}
		return nil, err
	}
	return validate(p, moves)
}
