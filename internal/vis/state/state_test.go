package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

func newTestState(t *testing.T, moves plan.Plan) *State {
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
	st, err := NewState(p, moves)
	require.NoError(t, err)
	return st
}

func TestNewState_RejectsNoOpPlan(t *testing.T) {
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

	_, err = NewState(p, plan.Plan{{Robot: board.Red, Dir: board.West}})
	assert.Error(t, err)
}

func TestPositionsAt_Interpolates(t *testing.T) {
	st := newTestState(t, plan.Plan{{Robot: board.Red, Dir: board.East}})

	// Red slides from (0,0) to (15,0); halfway through the move it is
	// at x=7.5 while everyone else is parked.
	pts := st.PositionsAt(0.5)
	assert.InDelta(t, 7.5, pts[board.Red.Index()-1].X, 1e-9)
	assert.InDelta(t, 0.0, pts[board.Red.Index()-1].Y, 1e-9)
	assert.Equal(t, Point{X: 15, Y: 15}, pts[board.Blue.Index()-1])

	// At the end of the move it sits on the target cell.
	pts = st.PositionsAt(1)
	assert.Equal(t, Point{X: 15, Y: 0}, pts[board.Red.Index()-1])
}

func TestMoveAt(t *testing.T) {
	st := newTestState(t, plan.Plan{{Robot: board.Red, Dir: board.East}})

	_, inMove := st.MoveAt(0)
	assert.False(t, inMove)

	m, inMove := st.MoveAt(0.3)
	require.True(t, inMove)
	assert.Equal(t, board.Move{Robot: board.Red, Dir: board.East}, m)
}

func TestSolved(t *testing.T) {
	assert.True(t, newTestState(t, plan.Plan{{Robot: board.Red, Dir: board.East}}).Solved())
	assert.False(t, newTestState(t, nil).Solved())
}

func TestPlayback_Stepping(t *testing.T) {
	pb := NewPlayback(3)

	pb.StepForward()
	assert.Equal(t, 1.0, pb.CurrentTime)
	pb.StepForward()
	pb.StepForward()
	pb.StepForward() // clamped at the end
	assert.Equal(t, 3.0, pb.CurrentTime)

	pb.StepBack()
	assert.Equal(t, 2.0, pb.CurrentTime)

	// Mid-move stepping back snaps to the move's start first.
	pb.SetTime(2.4)
	pb.StepBack()
	assert.Equal(t, 2.0, pb.CurrentTime)
}

func TestPlayback_TogglePlayRestartsAtEnd(t *testing.T) {
	pb := NewPlayback(2)
	pb.SetTime(2)

	pb.TogglePlay()
	assert.True(t, pb.Playing)
	assert.Equal(t, 0.0, pb.CurrentTime)
}
