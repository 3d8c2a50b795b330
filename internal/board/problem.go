package board

import "fmt"

// Goal designates the cell a robot has to reach. A goal with Any set is
// satisfied by any robot; otherwise only the robot of the goal's color
// counts.
type Goal struct {
	Color Color
	Any   bool
	Cell  Pos
}

func (g Goal) String() string {
	if g.Any {
		return fmt.Sprintf("any@%v", g.Cell)
	}
	return fmt.Sprintf("%s@%v", g.Color, g.Cell)
}

// Reached reports whether the goal is satisfied by the given positions.
func (g Goal) Reached(robots RobotPositions) bool {
	if g.Any {
		return robots.Occupied(g.Cell)
	}
	return robots[g.Color] == g.Cell
}

// Problem is one round of the puzzle: an immutable board, the robots'
// starting cells, and the goal. All derived states share the board and
// goal; only RobotPositions values change.
type Problem struct {
	Board  *Board
	Robots RobotPositions
	Goal   Goal
}

// NewProblem validates the geometry and builds a problem. Robots and
// the goal must lie on the board and no two robots may share a cell.
func NewProblem(b *Board, robots RobotPositions, goal Goal) (*Problem, error) {
	for _, c := range Colors {
		if !b.InBounds(robots[c]) {
			return nil, &MalformedBoardError{
				Reason: fmt.Sprintf("%s robot at %v outside %dx%d board", c, robots[c], b.Size(), b.Size()),
			}
		}
		for _, o := range Colors {
			if o > c && robots[c] == robots[o] {
				return nil, &MalformedBoardError{
					Reason: fmt.Sprintf("%s and %s robots share cell %v", c, o, robots[c]),
				}
			}
		}
	}
	if !b.InBounds(goal.Cell) {
		return nil, &MalformedBoardError{
			Reason: fmt.Sprintf("goal cell %v outside %dx%d board", goal.Cell, b.Size(), b.Size()),
		}
	}
	return &Problem{Board: b, Robots: robots, Goal: goal}, nil
}

// Apply executes one move and returns the resulting positions. A move
// whose slide does not leave the start cell yields ErrNoEffect and the
// input positions unchanged.
func Apply(b *Board, robots RobotPositions, m Move) (RobotPositions, error) {
	dest := Slide(b, robots, m.Robot, m.Dir)
	if dest == robots[m.Robot] {
		return robots, fmt.Errorf("%v from %v: %w", m, robots[m.Robot], ErrNoEffect)
	}
	return robots.With(m.Robot, dest), nil
}

// Solved reports whether the problem's goal holds in its start state.
func (p *Problem) Solved() bool {
	return p.Goal.Reached(p.Robots)
}
