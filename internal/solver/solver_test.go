package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/config"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

// Backends are exercised against shell fakes standing in for the real
// binaries, so these tests need a POSIX sh on PATH.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// testProblem is solvable by the single move "red east".
func testProblem(t *testing.T) *board.Problem {
	t.Helper()
	b, err := board.NewBoard(16)
	require.NoError(t, err)
	robots := board.RobotPositions{
		board.Red:    {X: 0, Y: 0},
		board.Blue:   {X: 15, Y: 15},
		board.Green:  {X: 0, Y: 15},
		board.Yellow: {X: 7, Y: 15},
	}
	p, err := board.NewProblem(b, robots, board.Goal{Color: board.Red, Cell: board.Pos{X: 15, Y: 0}})
	require.NoError(t, err)
	return p
}

var wantPlan = plan.Plan{{Robot: board.Red, Dir: board.East}}

func TestASP_Solve(t *testing.T) {
	s := NewASP(config.ASPSolver{
		Bin:  "sh",
		Args: []string{"-c", `cat >/dev/null; echo "Answer: 1"; echo "go(red,east,1)"; exit 30`},
	}, testLogger())

	got, err := s.Solve(context.Background(), testProblem(t))
	require.NoError(t, err)
	assert.Equal(t, wantPlan, got)
}

func TestASP_Unsatisfiable(t *testing.T) {
	s := NewASP(config.ASPSolver{
		Bin:  "sh",
		Args: []string{"-c", `cat >/dev/null; echo UNSATISFIABLE; exit 20`},
	}, testLogger())

	_, err := s.Solve(context.Background(), testProblem(t))
	assert.Error(t, err)
}

func TestPlanner_Solve(t *testing.T) {
	s := NewPlanner(config.Planner{
		Bin:    "sh",
		Args:   []string{"-c", `printf ';; Optimal cost: 1\n(go robot-1 east)\n'`},
		Domain: "domain.pddl",
	}, testLogger())

	got, err := s.Solve(context.Background(), testProblem(t))
	require.NoError(t, err)
	assert.Equal(t, wantPlan, got)
}

func TestPlanner_CostMismatch(t *testing.T) {
	s := NewPlanner(config.Planner{
		Bin:  "sh",
		Args: []string{"-c", `printf ';; Optimal cost: 2\n(go robot-1 east)\n'`},
	}, testLogger())

	_, err := s.Solve(context.Background(), testProblem(t))
	var ipe *plan.InvalidPlanError
	require.ErrorAs(t, err, &ipe)
	assert.Contains(t, ipe.Reason, "declared cost 2")
}

func TestRicli_Solve(t *testing.T) {
	s := NewRicli(config.Ricli{
		Bin:  "sh",
		Args: []string{"-c", `cat >/dev/null; printf '1\nRed Right\n'`},
	}, testLogger())

	got, err := s.Solve(context.Background(), testProblem(t))
	require.NoError(t, err)
	assert.Equal(t, wantPlan, got)
}

func TestRicli_RejectsNoOpPlan(t *testing.T) {
	// Red starts on the west edge, so "Red Left" cannot move it.
	s := NewRicli(config.Ricli{
		Bin:  "sh",
		Args: []string{"-c", `cat >/dev/null; printf '1\nRed Left\n'`},
	}, testLogger())

	_, err := s.Solve(context.Background(), testProblem(t))
	var ipe *plan.InvalidPlanError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, 1, ipe.Step)
}

func TestSolve_Timeout(t *testing.T) {
	s := NewRicli(config.Ricli{Bin: "sleep", Args: []string{"5"}}, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Solve(ctx, testProblem(t))
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	for _, name := range []string{"asp", "pddl", "ricli"} {
		s, err := New(name, cfg, testLogger())
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}
	_, err := New("sat", cfg, testLogger())
	assert.Error(t, err)
}
