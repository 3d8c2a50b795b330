// Package solver runs external solvers on encoded problems and decodes
// their output into validated plans.
package solver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/config"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

// Solver is the interface for solver backends.
type Solver interface {
	// Solve encodes the problem, runs the backend and returns the
	// decoded, replay-validated plan.
	Solve(ctx context.Context, p *board.Problem) (plan.Plan, error)

	// Name returns the backend name.
	Name() string
}

// New returns the named backend from the configuration.
func New(name string, cfg *config.Config, log *logrus.Logger) (Solver, error) {
	switch name {
	case "asp":
		return NewASP(cfg.ASP, log), nil
	case "pddl":
		return NewPlanner(cfg.Planner, log), nil
	case "ricli":
		return NewRicli(cfg.Ricli, log), nil
	}
	return nil, fmt.Errorf("unknown solver %q (want asp, pddl or ricli)", name)
}

// run executes a solver binary with the given stdin and returns its
// stdout. Non-zero exits do not fail here: some solvers signal
// satisfiability through the exit code, so the caller decides after
// trying to decode the output.
func run(ctx context.Context, log *logrus.Entry, bin string, args []string, stdin io.Reader) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"bin":     bin,
		"elapsed": elapsed,
	}).Debug("solver finished")

	if ctx.Err() != nil {
		return stdout.String(), fmt.Errorf("%s: %w", bin, ctx.Err())
	}
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return stdout.String(), err
		}
		return "", fmt.Errorf("run %s: %w", bin, err)
	}
	return stdout.String(), nil
}

// validate replays the decoded plan against the problem so a defective
// solver cannot hand back a plan the board model rejects.
func validate(p *board.Problem, moves plan.Plan) (plan.Plan, error) {
	if _, err := plan.Replay(p, moves); err != nil {
		return nil, err
	}
	return moves, nil
}
