package board

import "fmt"

// Color identifies one of the four robots.
type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
)

// Colors lists all robots in their canonical order. Encoders and move
// enumeration iterate in this order for deterministic output.
var Colors = [4]Color{Red, Blue, Green, Yellow}

func (c Color) String() string {
	return [...]string{"red", "blue", "green", "yellow"}[c]
}

// Index returns the 1-based robot index used by the PDDL encoding.
func (c Color) Index() int {
	return int(c) + 1
}

// Letter returns the single-letter color code of the compact encoding.
func (c Color) Letter() string {
	return [...]string{"r", "b", "g", "y"}[c]
}

// ParseColor maps a lowercase color name to a Color.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown robot color %q", s)
}

// ColorFromIndex maps a 1-based PDDL robot index to a Color.
func ColorFromIndex(i int) (Color, error) {
	if i < 1 || i > len(Colors) {
		return 0, fmt.Errorf("robot index %d out of range 1..%d", i, len(Colors))
	}
	return Color(i - 1), nil
}

// ColorFromLetter maps a single-letter color code to a Color.
func ColorFromLetter(s string) (Color, error) {
	for _, c := range Colors {
		if c.Letter() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown robot letter %q", s)
}

// RobotPositions holds the cell of every robot, indexed by Color. It is
// a comparable value: two states of one problem are equal exactly when
// their RobotPositions are.
type RobotPositions [4]Pos

// RobotAt returns the robot occupying the position, if any.
func (r RobotPositions) RobotAt(p Pos) (Color, bool) {
	for _, c := range Colors {
		if r[c] == p {
			return c, true
		}
	}
	return 0, false
}

// Occupied reports whether any robot is on the position.
func (r RobotPositions) Occupied(p Pos) bool {
	_, ok := r.RobotAt(p)
	return ok
}

// With returns a copy with one robot moved to a new position.
func (r RobotPositions) With(c Color, p Pos) RobotPositions {
	r[c] = p
	return r
}

// Slide computes the cell a robot stops in when pushed in a direction:
// it advances while the edge ahead has no wall and the next cell is
// free, and stops at the last reachable cell. The result equals the
// start cell when the very first step is blocked.
func Slide(b *Board, robots RobotPositions, robot Color, d Direction) Pos {
	cur := robots[robot]
	for !b.WallBetween(cur, d) && !robots.Occupied(cur.Step(d)) {
		cur = cur.Step(d)
	}
	return cur
}

// Move is a single sliding action of one robot.
type Move struct {
	Robot Color
	Dir   Direction
}

func (m Move) String() string {
	return fmt.Sprintf("go(%s,%s)", m.Robot, m.Dir)
}

// Moves enumerates every productive move from the given positions, in
// Colors x Directions order. Moves whose slide stops on the start cell
// are skipped.
func Moves(b *Board, robots RobotPositions) []Move {
	var moves []Move
	for _, c := range Colors {
		for _, d := range Directions {
			if Slide(b, robots, c, d) != robots[c] {
				moves = append(moves, Move{Robot: c, Dir: d})
			}
		}
	}
	return moves
}
