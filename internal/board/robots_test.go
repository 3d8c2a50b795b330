package board

import (
	"errors"
	"testing"
)

// startPositions puts the robots in the four corners of a 16x16 board.
func startPositions() RobotPositions {
	return RobotPositions{
		Red:    {0, 0},
		Blue:   {15, 0},
		Green:  {0, 15},
		Yellow: {15, 15},
	}
}

func TestSlide_ToBoardEdge(t *testing.T) {
	b := mustBoard(t, 16)
	robots := RobotPositions{
		Red:    {5, 5},
		Blue:   {0, 15},
		Green:  {1, 15},
		Yellow: {2, 15},
	}

	tests := []struct {
		robot Color
		dir   Direction
		want  Pos
	}{
		{Red, North, Pos{5, 0}},
		{Red, South, Pos{5, 15}},
		{Red, East, Pos{15, 5}},
		{Red, West, Pos{0, 5}},
	}

	for _, tt := range tests {
		got := Slide(b, robots, tt.robot, tt.dir)
		if got != tt.want {
			t.Errorf("Slide(%v, %v) = %v, want %v", tt.robot, tt.dir, got, tt.want)
		}
	}
}

func TestSlide_StopsAtWall(t *testing.T) {
	b := mustBoard(t, 16)
	// Wall on the east edge of (5,0): a robot sliding east along row 0
	// must stop at column 5.
	if err := b.SetWall(Pos{5, 0}, East); err != nil {
		t.Fatalf("SetWall: %v", err)
	}
	robots := startPositions()

	got := Slide(b, robots, Red, East)
	if (got != Pos{5, 0}) {
		t.Errorf("Slide(red, east) = %v, want (5,0)", got)
	}
}

func TestSlide_StopsBeforeRobot(t *testing.T) {
	b := mustBoard(t, 16)
	robots := startPositions()

	// Red slides east along row 0 and must stop next to blue at (15,0).
	got := Slide(b, robots, Red, East)
	if (got != Pos{14, 0}) {
		t.Errorf("Slide(red, east) = %v, want (14,0)", got)
	}
}

func TestSlide_BlockedImmediately(t *testing.T) {
	b := mustBoard(t, 16)
	robots := startPositions()

	// Red in the corner cannot move north or west at all.
	for _, d := range []Direction{North, West} {
		got := Slide(b, robots, Red, d)
		if got != robots[Red] {
			t.Errorf("Slide(red, %v) = %v, want start cell %v", d, got, robots[Red])
		}
	}
}

func TestApply_NoEffect(t *testing.T) {
	b := mustBoard(t, 16)
	robots := startPositions()

	_, err := Apply(b, robots, Move{Robot: Red, Dir: North})
	if !errors.Is(err, ErrNoEffect) {
		t.Errorf("Apply(red, north) error = %v, want ErrNoEffect", err)
	}
}

func TestApply_MovesOnlyOneRobot(t *testing.T) {
	b := mustBoard(t, 16)
	robots := startPositions()

	next, err := Apply(b, robots, Move{Robot: Red, Dir: South})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if (next[Red] != Pos{0, 14}) {
		t.Errorf("red moved to %v, want (0,14)", next[Red])
	}
	for _, c := range []Color{Blue, Green, Yellow} {
		if next[c] != robots[c] {
			t.Errorf("%v moved to %v, want unchanged %v", c, next[c], robots[c])
		}
	}
	// The input value is untouched.
	if (robots[Red] != Pos{0, 0}) {
		t.Errorf("input positions mutated: red at %v", robots[Red])
	}
}

func TestMoves_SkipsBlocked(t *testing.T) {
	b := mustBoard(t, 16)
	robots := startPositions()

	moves := Moves(b, robots)
	for _, m := range moves {
		if _, err := Apply(b, robots, m); err != nil {
			t.Errorf("enumerated move %v is not applicable: %v", m, err)
		}
	}
	// Each corner robot has exactly 2 productive directions, except
	// where a neighbor in the same row/column shortens, never removes,
	// a move. 4 robots x 2 directions.
	if len(moves) != 8 {
		t.Errorf("len(Moves) = %d, want 8", len(moves))
	}
}

func TestGoal_Reached(t *testing.T) {
	robots := startPositions()

	tests := []struct {
		goal Goal
		want bool
	}{
		{Goal{Color: Red, Cell: Pos{0, 0}}, true},
		{Goal{Color: Red, Cell: Pos{15, 0}}, false},  // blue's cell
		{Goal{Any: true, Cell: Pos{15, 0}}, true},    // wildcard: any robot
		{Goal{Any: true, Cell: Pos{7, 7}}, false},
	}

	for _, tt := range tests {
		if got := tt.goal.Reached(robots); got != tt.want {
			t.Errorf("Goal%v.Reached = %v, want %v", tt.goal, got, tt.want)
		}
	}
}

func TestNewProblem_Validation(t *testing.T) {
	b := mustBoard(t, 16)

	shared := startPositions()
	shared[Blue] = shared[Red]

	outside := startPositions()
	outside[Yellow] = Pos{16, 3}

	tests := []struct {
		name   string
		robots RobotPositions
		goal   Goal
		ok     bool
	}{
		{"valid", startPositions(), Goal{Color: Red, Cell: Pos{7, 7}}, true},
		{"shared cell", shared, Goal{Color: Red, Cell: Pos{7, 7}}, false},
		{"robot outside", outside, Goal{Color: Red, Cell: Pos{7, 7}}, false},
		{"goal outside", startPositions(), Goal{Color: Red, Cell: Pos{7, 16}}, false},
	}

	for _, tt := range tests {
		_, err := NewProblem(b, tt.robots, tt.goal)
		if (err == nil) != tt.ok {
			t.Errorf("%s: NewProblem error = %v, want ok=%v", tt.name, err, tt.ok)
		}
		if err != nil {
			var mbe *MalformedBoardError
			if !errors.As(err, &mbe) {
				t.Errorf("%s: error type %T, want MalformedBoardError", tt.name, err)
			}
		}
	}
}
