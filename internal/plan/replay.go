package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/render"
)

// Replay validates a plan by applying every move to the problem's
// start state. It fails if any move is a no-op, meaning the solver
// claimed a move the board model rejects, or if the final state does
// not satisfy the goal. On success it returns the final positions.
func Replay(p *board.Problem, moves Plan) (board.RobotPositions, error) {
	robots := p.Robots
	for i, m := range moves {
		next, err := board.Apply(p.Board, robots, m)
		if err != nil {
			if errors.Is(err, board.ErrNoEffect) {
				return robots, &InvalidPlanError{Step: i + 1, Move: m, Reason: "move has no effect"}
			}
			return robots, err
		}
		robots = next
	}
	if !p.Goal.Reached(robots) {
		return robots, &InvalidPlanError{
			Reason: fmt.Sprintf("goal %v not reached, final positions %v", p.Goal, robots),
		}
	}
	return robots, nil
}

// Expand reconstructs the full ground plan from a validated skeleton:
// each sliding move becomes a (go ...) action, one (step ...) per cell
// traversed, and a closing (stop-at-robot ...) or (stop-at-barrier ...)
// action, using the PDDL domain's naming.
func Expand(p *board.Problem, moves Plan) ([]string, error) {
	if _, err := Replay(p, moves); err != nil {
		return nil, err
	}

	var out []string
	robots := p.Robots
	for _, m := range moves {
		robot := fmt.Sprintf("robot-%d", m.Robot.Index())
		out = append(out, fmt.Sprintf("(go %s %s)", robot, m.Dir))

		cur := robots[m.Robot]
		for {
			if p.Board.WallBetween(cur, m.Dir) {
				out = append(out, fmt.Sprintf("(stop-at-barrier %s %s %s)", robot, pddlCell(cur), m.Dir))
				break
			}
			next := cur.Step(m.Dir)
			if robots.Occupied(next) {
				out = append(out, fmt.Sprintf("(stop-at-robot %s %s %s %s)", robot, pddlCell(cur), pddlCell(next), m.Dir))
				break
			}
			out = append(out, fmt.Sprintf("(step %s %s %s %s)", robot, pddlCell(cur), pddlCell(next), m.Dir))
			cur = next
		}
		robots = robots.With(m.Robot, cur)
	}
	return out, nil
}

func pddlCell(p board.Pos) string {
	return fmt.Sprintf("cell-%d-%d", p.X+1, p.Y+1)
}

// Trace renders a validated plan as a sequence of before/after board
// pairs with the move description in between, for human inspection.
func Trace(p *board.Problem, moves Plan) (string, error) {
	if _, err := Replay(p, moves); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(render.Compact(p.Board, p.Robots, p.Goal))
	sb.WriteByte('\n')

	robots := p.Robots
	for _, m := range moves {
		next, err := board.Apply(p.Board, robots, m)
		if err != nil {
			return "", err
		}

		var text strings.Builder
		fmt.Fprintf(&text, "GO %s %s\n", m.Robot, m.Dir)
		for cur := robots[m.Robot]; cur != next[m.Robot]; cur = cur.Step(m.Dir) {
			fmt.Fprintf(&text, "Step %s %d %d %s\n", m.Robot, cur.Y, cur.X, m.Dir)
		}

		before := render.Compact(p.Board, robots, p.Goal)
		after := render.Compact(p.Board, next, p.Goal)
		sb.WriteString(render.SideBySide(before, after, text.String()))
		sb.WriteByte('\n')
		robots = next
	}
	return sb.String(), nil
}
