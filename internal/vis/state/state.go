// Package state holds the visualizer's model: the problem being shown
// and the playback position within a plan.
package state

import (
	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/plan"
)

// Point is a board position in fractional cell coordinates, used while
// a robot is animated between two cells.
type Point struct {
	X, Y float64
}

// State is the visualizer model.
type State struct {
	Problem  *board.Problem
	Plan     plan.Plan
	Playback *Playback

	// frames[i] holds the robot positions after the first i moves.
	frames []board.RobotPositions
}

// NewState validates the plan against the problem and precomputes the
// position frame after every move. An empty plan is allowed; the board
// is then shown static.
func NewState(p *board.Problem, moves plan.Plan) (*State, error) {
	frames := []board.RobotPositions{p.Robots}
	robots := p.Robots
	for _, m := range moves {
		next, err := board.Apply(p.Board, robots, m)
		if err != nil {
			return nil, err
		}
		frames = append(frames, next)
		robots = next
	}
	return &State{
		Problem:  p,
		Plan:     moves,
		Playback: NewPlayback(len(moves)),
		frames:   frames,
	}, nil
}

// PositionsAt returns the four robot positions at playback time t,
// measured in moves. The robot executing the move in progress is
// interpolated between its start and stop cell; all others sit on
// their frame positions.
func (s *State) PositionsAt(t float64) [4]Point {
	step, frac := splitTime(t, len(s.Plan))

	var pts [4]Point
	for _, c := range board.Colors {
		p := s.frames[step][c]
		pts[c.Index()-1] = Point{X: float64(p.X), Y: float64(p.Y)}
	}
	if frac > 0 && step < len(s.Plan) {
		m := s.Plan[step]
		from := s.frames[step][m.Robot]
		to := s.frames[step+1][m.Robot]
		pts[m.Robot.Index()-1] = Point{
			X: float64(from.X) + frac*float64(to.X-from.X),
			Y: float64(from.Y) + frac*float64(to.Y-from.Y),
		}
	}
	return pts
}

// MoveAt returns the move in progress at playback time t, if any.
func (s *State) MoveAt(t float64) (board.Move, bool) {
	step, frac := splitTime(t, len(s.Plan))
	if frac > 0 && step < len(s.Plan) {
		return s.Plan[step], true
	}
	return board.Move{}, false
}

// Solved reports whether the plan's end state satisfies the goal.
func (s *State) Solved() bool {
	return s.Problem.Goal.Reached(s.frames[len(s.frames)-1])
}

// splitTime decomposes a playback time into a completed-move count and
// the fraction of the next move.
func splitTime(t float64, moves int) (step int, frac float64) {
	if t <= 0 {
		return 0, 0
	}
	if t >= float64(moves) {
		return moves, 0
	}
	step = int(t)
	return step, t - float64(step)
}
