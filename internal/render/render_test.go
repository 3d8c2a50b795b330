package render

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// testProblem builds a 3x3 board with robots in three corners, a wall
// east of the red robot and the red goal in the center.
func testProblem(t *testing.T) (*board.Board, board.RobotPositions, board.Goal) {
	t.Helper()
	b, err := board.NewBoard(3)
	require.NoError(t, err)
	require.NoError(t, b.SetWall(board.Pos{X: 0, Y: 0}, board.East))

	robots := board.RobotPositions{
		board.Red:    {X: 0, Y: 0},
		board.Blue:   {X: 2, Y: 0},
		board.Green:  {X: 0, Y: 2},
		board.Yellow: {X: 2, Y: 2},
	}
	return b, robots, board.Goal{Color: board.Red, Cell: board.Pos{X: 1, Y: 1}}
}

func TestCompact(t *testing.T) {
	b, robots, goal := testProblem(t)

	want := "" +
		"+x+x+x+\n" +
		"x1x |2x\n" +
		"+-+-+-+\n" +
		"x |a| x\n" +
		"+-+-+-+\n" +
		"x3| |4x\n" +
		"+x+x+x+\n"
	assert.Equal(t, want, Compact(b, robots, goal))
}

func TestCompact_RobotOnOwnGoal(t *testing.T) {
	b, robots, goal := testProblem(t)
	robots[board.Red] = goal.Cell

	got := Compact(b, robots, goal)
	assert.Contains(t, got, "A")
	assert.NotContains(t, got, "a")
}

func TestCompact_WildcardGoal(t *testing.T) {
	b, robots, _ := testProblem(t)
	goal := board.Goal{Any: true, Cell: board.Pos{X: 1, Y: 1}}

	assert.Contains(t, Compact(b, robots, goal), "*")
}

func TestWide(t *testing.T) {
	b, robots, goal := testProblem(t)

	want := "" +
		";; +xx+xx+xx+\n" +
		";; xR1x  |R2x\n" +
		";; +--+--+--+\n" +
		";; x  |G1|  x\n" +
		";; +--+--+--+\n" +
		";; xR3|  |R4x\n" +
		";; +xx+xx+xx+\n"
	assert.Equal(t, want, Wide(b, robots, goal, ";; "))
}

func TestSideBySide(t *testing.T) {
	left := "ab\ncd\n"
	right := "ef\ngh\n"

	got := SideBySide(left, right, "move 1")
	assert.Equal(t, "ab    move 1    ef\ncd              gh\n", got)
}

func TestColorize_AsciiProfileIsIdentity(t *testing.T) {
	b, robots, goal := testProblem(t)
	s := Compact(b, robots, goal)

	assert.Equal(t, s, Colorize(s, termenv.Ascii))
}

func TestColorize_AddsEscapes(t *testing.T) {
	got := Colorize("x1x", termenv.ANSI)
	assert.NotEqual(t, "x1x", got)
	assert.Contains(t, got, "1")
}
