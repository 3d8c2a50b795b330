package solver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/config"
	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

// Planner runs a PDDL planner. The generated problem is written to a
// temporary file and passed, together with the domain file, as the last
// two arguments. The plan is read from the planner's stdout.
type Planner struct {
	cfg config.Planner
	log *logrus.Entry
}

// NewPlanner returns a PDDL backend for the given configuration.
func NewPlanner(cfg config.Planner, log *logrus.Logger) *Planner {
	return &Planner{cfg: cfg, log: log.WithField("solver", "pddl")}
}

// Name implements Solver.
func (s *Planner) Name() string { return "pddl" }

// Solve implements Solver.
func (s *Planner) Solve(ctx context.Context, p *board.Problem) (plan.Plan, error) {
	text, err := encoding.EncodePDDL(p)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "ricochet-pddl-")
	if err != nil {
		return nil, fmt.Errorf("planner workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	problem := filepath.Join(dir, "problem.pddl")
	if err := os.WriteFile(problem, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("write problem file: %w", err)
	}

	args := append(append([]string(nil), s.cfg.Args...), s.cfg.Domain, problem)
	out, runErr := run(ctx, s.log, s.cfg.Bin, args, nil)

	moves, err := plan.DecodePlanFile(out)
	if err != nil {
		if runErr != nil {
			return nil, runErr
		}
		return nil, err
	}
	if cost, ok := plan.DeclaredCost(out); ok && cost != moves.Cost() {
		return nil, &plan.InvalidPlanError{
			Reason: fmt.Sprintf("planner declared cost %d but emitted %d actions", cost, moves.Cost()),
		}
	}
	return validate(p, moves)
}
