package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
)

// EncodeCompact serializes a problem in the board format read by the
// domain-dependent solver on stdin: the side length, 0-indexed wall
// lines ("x y d" for a wall below a cell, "x y r" for a wall to its
// right), a "T" separator, the target line and the four robot lines in
// red/blue/green/yellow order.
//
// The solver identifies the target robot by a color letter, so
// wildcard goals cannot be expressed in this format.
func EncodeCompact(p *board.Problem) (string, error) {
	if err := validate(p, FormatCompact); err != nil {
		return "", err
	}
	if p.Goal.Any {
		return "", &EncodeError{Format: FormatCompact, Reason: "wildcard target not representable"}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", p.Board.Size())
	for y := 0; y < p.Board.Size(); y++ {
		for x := 0; x < p.Board.Size(); x++ {
			p0 := board.Pos{X: x, Y: y}
			if p.Board.WallBetween(p0, board.South) && y < p.Board.Size()-1 {
				fmt.Fprintf(&sb, "%d %d d\n", x, y)
			}
			if p.Board.WallBetween(p0, board.East) && x < p.Board.Size()-1 {
				fmt.Fprintf(&sb, "%d %d r\n", x, y)
			}
		}
	}
	sb.WriteString("T\n")
	fmt.Fprintf(&sb, "%d %d %s\n", p.Goal.Cell.X, p.Goal.Cell.Y, p.Goal.Color.Letter())
	for _, c := range board.Colors {
		fmt.Fprintf(&sb, "%d %d %s\n", p.Robots[c].X, p.Robots[c].Y, c.Letter())
	}
	return sb.String(), nil
}

// DecodeCompact parses the compact board format back into a problem.
func DecodeCompact(text string) (*board.Problem, error) {
	var lines []factLine
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, factLine{num: i + 1, text: l})
	}
	if len(lines) == 0 {
		return nil, &DecodeError{Format: FormatCompact, Reason: "empty input"}
	}

	size, err := strconv.Atoi(lines[0].text)
	if err != nil {
		return nil, &DecodeError{Format: FormatCompact, Line: lines[0].num, Reason: "expected board size, got " + lines[0].text}
	}
	b, berr := board.NewBoard(size)
	if berr != nil {
		return nil, berr
	}

	// Wall lines up to the "T" separator.
	i := 1
	for ; i < len(lines); i++ {
		if lines[i].text == "T" {
			break
		}
		x, y, tag, perr := parseCompactLine(lines[i].text)
		if perr != nil {
			return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: perr.Error()}
		}
		var dir board.Direction
		switch tag {
		case "d":
			dir = board.South
		case "r":
			dir = board.East
		default:
			return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: fmt.Sprintf("unknown wall tag %q", tag)}
		}
		if err := b.SetWall(board.Pos{X: x, Y: y}, dir); err != nil {
			return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: err.Error()}
		}
	}
	if i == len(lines) {
		return nil, &DecodeError{Format: FormatCompact, Reason: "missing T separator"}
	}
	i++ // skip "T"

	if i == len(lines) {
		return nil, &DecodeError{Format: FormatCompact, Reason: "missing target line"}
	}
	tx, ty, tc, perr := parseCompactLine(lines[i].text)
	if perr != nil {
		return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: perr.Error()}
	}
	goalColor, cerr := board.ColorFromLetter(tc)
	if cerr != nil {
		return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: cerr.Error()}
	}
	goal := board.Goal{Color: goalColor, Cell: board.Pos{X: tx, Y: ty}}
	i++

	var (
		robots board.RobotPositions
		seen   [4]bool
	)
	for ; i < len(lines); i++ {
		x, y, rc, perr := parseCompactLine(lines[i].text)
		if perr != nil {
			return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: perr.Error()}
		}
		c, cerr := board.ColorFromLetter(rc)
		if cerr != nil {
			return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: cerr.Error()}
		}
		if seen[c] {
			return nil, &DecodeError{Format: FormatCompact, Line: lines[i].num, Reason: fmt.Sprintf("duplicate robot line for %s", c)}
		}
		robots[c] = board.Pos{X: x, Y: y}
		seen[c] = true
	}
	for _, c := range board.Colors {
		if !seen[c] {
			return nil, &DecodeError{Format: FormatCompact, Reason: fmt.Sprintf("missing robot line for %s", c)}
		}
	}

	return board.NewProblem(b, robots, goal)
}

// parseCompactLine splits an "x y tag" line.
func parseCompactLine(l string) (x, y int, tag string, err error) {
	parts := strings.Fields(l)
	if len(parts) != 3 {
		return 0, 0, "", fmt.Errorf("expected \"x y tag\", got %q", l)
	}
	x, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, "", err
	}
	y, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, "", err
	}
	return x, y, parts[2], nil
}
